package ber

import (
	"fmt"
)

// Class is the tag class held in bits 7-8 of the identifier octet.
type Class int

// Tag class constants (bits 7-8 of the tag byte)
const (
	ClassUniversal       Class = 0x00 // 00xxxxxx
	ClassApplication     Class = 0x40 // 01xxxxxx
	ClassContextSpecific Class = 0x80 // 10xxxxxx
	ClassPrivate         Class = 0xC0 // 11xxxxxx
)

// String returns the X.690 name of the class.
func (c Class) String() string {
	switch c {
	case ClassUniversal:
		return "UNIVERSAL"
	case ClassApplication:
		return "APPLICATION"
	case ClassContextSpecific:
		return "CONTEXT_SPECIFIC"
	case ClassPrivate:
		return "PRIVATE"
	default:
		return fmt.Sprintf("CLASS(%#x)", int(c))
	}
}

// Constructed flag (bit 6 of the tag byte)
const (
	TypePrimitive   = 0x00 // xx0xxxxx
	TypeConstructed = 0x20 // xx1xxxxx
)

// Universal tag numbers
const (
	TagEOC             = 0x00
	TagBoolean         = 0x01
	TagInteger         = 0x02
	TagBitString       = 0x03
	TagOctetString     = 0x04
	TagNull            = 0x05
	TagOID             = 0x06
	TagEnumerated      = 0x0A
	TagUTF8String      = 0x0C
	TagSequence        = 0x10
	TagSet             = 0x11
	TagNumericString   = 0x12
	TagPrintableString = 0x13
	TagT61String       = 0x14
	TagIA5String       = 0x16
	TagUTCTime         = 0x17
	TagGeneralizedTime = 0x18
	TagVisibleString   = 0x1A
	TagUniversalString = 0x1C
	TagBMPString       = 0x1E
)

// Length encoding constants
const (
	// LengthLongFormBit indicates long form length encoding (bit 8 set)
	LengthLongFormBit = 0x80
	// MaxShortFormLength is the maximum length encodable in short form (0-127)
	MaxShortFormLength = 127
	// MaxLowTagNumber is the largest tag number that fits the single-octet form.
	MaxLowTagNumber = 30

	highTagEscape = 0x1F
)

// Tag identifies an encoded value: class, constructed flag and tag number.
// Tag numbers above MaxLowTagNumber use the multi-octet identifier form.
type Tag struct {
	Class       Class
	Number      int
	Constructed bool
}

// Common universal tags.
var (
	Sequence = Tag{Class: ClassUniversal, Number: TagSequence, Constructed: true}
	Set      = Tag{Class: ClassUniversal, Number: TagSet, Constructed: true}
)

// Universal returns a primitive UNIVERSAL tag with the given number.
func Universal(number int) Tag {
	return Tag{Class: ClassUniversal, Number: number}
}

// ContextSpecific returns a primitive CONTEXT_SPECIFIC tag with the given number.
func ContextSpecific(number int) Tag {
	return Tag{Class: ClassContextSpecific, Number: number}
}

// Explicit returns the constructed CONTEXT_SPECIFIC tag used to wrap an
// explicitly tagged value.
func Explicit(number int) Tag {
	return Tag{Class: ClassContextSpecific, Number: number, Constructed: true}
}

// AsConstructed returns t with the constructed flag set.
func (t Tag) AsConstructed() Tag {
	t.Constructed = true
	return t
}

// AsPrimitive returns t with the constructed flag cleared.
func (t Tag) AsPrimitive() Tag {
	t.Constructed = false
	return t
}

// String renders the tag as e.g. "UNIVERSAL 16 (constructed)" or
// "[2] (primitive)".
func (t Tag) String() string {
	form := "primitive"
	if t.Constructed {
		form = "constructed"
	}
	if t.Class == ClassContextSpecific {
		return fmt.Sprintf("[%d] (%s)", t.Number, form)
	}
	return fmt.Sprintf("%s %d (%s)", t.Class, t.Number, form)
}

func (t Tag) validate() error {
	switch t.Class {
	case ClassUniversal, ClassApplication, ClassContextSpecific, ClassPrivate:
	default:
		return ErrInvalidTagClass
	}
	if t.Number < 0 {
		return ErrInvalidTagNumber
	}
	return nil
}

// appendTag writes the identifier octet(s) of t.
// class: ClassUniversal, ClassApplication, ClassContextSpecific, or ClassPrivate
// number: tag number (0-30 for short form, >30 for long form)
func appendTag(buf []byte, t Tag) ([]byte, error) {
	if err := t.validate(); err != nil {
		return buf, err
	}

	lead := byte(t.Class)
	if t.Constructed {
		lead |= TypeConstructed
	}

	// Short form: tag number fits in 5 bits (0-30)
	if t.Number <= MaxLowTagNumber {
		return append(buf, lead|byte(t.Number)), nil
	}

	// Long form: escape value followed by base-128 digits
	buf = append(buf, lead|highTagEscape)
	return appendBase128(buf, t.Number), nil
}

// appendBase128 encodes an integer in base-128 format (high bit indicates continuation)
func appendBase128(buf []byte, value int) []byte {
	if value == 0 {
		return append(buf, 0)
	}

	var digits [10]byte
	n := 0
	for value > 0 {
		digits[n] = byte(value & 0x7F)
		value >>= 7
		n++
	}

	// Write digits most significant first with continuation bits
	for i := n - 1; i >= 0; i-- {
		b := digits[i]
		if i > 0 {
			b |= 0x80
		}
		buf = append(buf, b)
	}
	return buf
}

// appendLength writes a definite length. Short form for 0-127, otherwise the
// minimal big-endian long form.
func appendLength(buf []byte, length int) ([]byte, error) {
	if length < 0 {
		return buf, ErrNegativeLength
	}

	if length <= MaxShortFormLength {
		return append(buf, byte(length)), nil
	}

	numBytes := 0
	for temp := length; temp > 0; temp >>= 8 {
		numBytes++
	}

	// The initial octet can only announce up to 126 subsequent bytes
	if numBytes > 126 {
		return buf, ErrLengthOverflow
	}

	buf = append(buf, byte(LengthLongFormBit|numBytes))
	for i := numBytes - 1; i >= 0; i-- {
		buf = append(buf, byte(length>>(i*8)))
	}
	return buf, nil
}

// appendHeader writes identifier and length octets for a value of the given
// content length.
func appendHeader(buf []byte, t Tag, length int) ([]byte, error) {
	buf, err := appendTag(buf, t)
	if err != nil {
		return buf, err
	}
	return appendLength(buf, length)
}
