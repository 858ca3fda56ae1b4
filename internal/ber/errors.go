package ber

import (
	"errors"
	"fmt"
)

// Error kinds. Every decoding error and every rejected value matches
// exactly one of these with errors.Is.
var (
	// ErrStructural marks truncated or oversized headers and unexpected
	// trailing content.
	ErrStructural = errors.New("ber: structural error")

	// ErrTagMismatch marks an expected tag or class that was not found.
	ErrTagMismatch = errors.New("ber: tag mismatch")

	// ErrValueFormat marks malformed input at an encode boundary.
	ErrValueFormat = errors.New("ber: invalid value format")
)

// Decoder causes, wrapped by StructuralError.
var (
	// ErrUnexpectedEOF is returned when the decoder encounters truncated data.
	ErrUnexpectedEOF = errors.New("ber: unexpected end of data")

	// ErrInvalidLength is returned when a length value is malformed.
	ErrInvalidLength = errors.New("ber: invalid length encoding")

	// ErrIndefiniteLength is returned when indefinite length encoding is
	// encountered where it is not allowed.
	ErrIndefiniteLength = errors.New("ber: indefinite length not allowed")

	// ErrTrailingData is returned when a scope that must be exhausted still
	// holds unread bytes.
	ErrTrailingData = errors.New("ber: unexpected trailing data")

	// ErrNotMinimal is returned in strict DER mode for non-minimal encodings.
	ErrNotMinimal = errors.New("ber: non-minimal encoding")

	// ErrNestingDepth is returned when indefinite-length content nests deeper
	// than the configured limit.
	ErrNestingDepth = errors.New("ber: nesting too deep")

	// ErrNotSingleObject is returned when an explicit wrapper does not hold
	// exactly one object.
	ErrNotSingleObject = errors.New("ber: explicit tag must wrap exactly one object")

	// ErrInvalidBoolean is returned when a boolean value has invalid length.
	ErrInvalidBoolean = errors.New("ber: invalid boolean encoding")

	// ErrInvalidInteger is returned when an integer value is malformed.
	ErrInvalidInteger = errors.New("ber: invalid integer encoding")

	// ErrInvalidNull is returned when a null value has non-zero length.
	ErrInvalidNull = errors.New("ber: invalid null encoding")
)

// Encoder causes.
var (
	ErrInvalidTagClass  = errors.New("ber: invalid tag class")
	ErrInvalidTagNumber = errors.New("ber: invalid tag number")
	ErrLengthOverflow   = errors.New("ber: length value overflow")
	ErrNegativeLength   = errors.New("ber: negative length not allowed")

	// ErrUnbalanced is returned when open/close calls on an Encoder do not pair up.
	ErrUnbalanced = errors.New("ber: unbalanced constructed scopes")
)

// StructuralError reports malformed framing at a byte offset of the root buffer.
type StructuralError struct {
	Offset  int    // Byte offset where the error occurred
	Message string // Human-readable error description
	Err     error  // Underlying error
}

// Error implements the error interface.
func (e *StructuralError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ber: decode error at offset %d: %s: %v", e.Offset, e.Message, e.Err)
	}
	return fmt.Sprintf("ber: decode error at offset %d: %s", e.Offset, e.Message)
}

// Unwrap returns the underlying error.
func (e *StructuralError) Unwrap() error {
	return e.Err
}

// Is allows StructuralError to match ErrStructural with errors.Is.
func (e *StructuralError) Is(target error) bool {
	return target == ErrStructural
}

// NewStructuralError creates a new StructuralError with the given parameters.
func NewStructuralError(offset int, message string, err error) *StructuralError {
	return &StructuralError{
		Offset:  offset,
		Message: message,
		Err:     err,
	}
}

// TagMismatchError provides detailed information about a tag mismatch.
type TagMismatchError struct {
	Offset   int
	Expected Tag
	Actual   Tag
	Context  string
}

// Error implements the error interface.
func (e *TagMismatchError) Error() string {
	msg := fmt.Sprintf("ber: tag mismatch at offset %d: expected %s, got %s", e.Offset, e.Expected, e.Actual)
	if e.Context != "" {
		msg += " (" + e.Context + ")"
	}
	return msg
}

// Is allows TagMismatchError to match ErrTagMismatch with errors.Is.
func (e *TagMismatchError) Is(target error) bool {
	return target == ErrTagMismatch
}

// ValueFormatError reports a textual value that cannot be encoded as the
// declared kind.
type ValueFormatError struct {
	Kind  string // e.g. "IPv4 address", "IA5String"
	Value string
	Err   error
}

// Error implements the error interface.
func (e *ValueFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ber: invalid %s %q: %v", e.Kind, e.Value, e.Err)
	}
	return fmt.Sprintf("ber: invalid %s %q", e.Kind, e.Value)
}

// Unwrap returns the underlying error.
func (e *ValueFormatError) Unwrap() error {
	return e.Err
}

// Is allows ValueFormatError to match ErrValueFormat with errors.Is.
func (e *ValueFormatError) Is(target error) bool {
	return target == ErrValueFormat
}

// NewValueFormatError creates a new ValueFormatError.
func NewValueFormatError(kind, value string, err error) *ValueFormatError {
	return &ValueFormatError{Kind: kind, Value: value, Err: err}
}
