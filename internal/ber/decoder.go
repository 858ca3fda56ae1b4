package ber

import (
	"fmt"
	"math"
)

// DefaultMaxDepth bounds how deeply indefinite-length values may nest.
const DefaultMaxDepth = 64

// DecoderOption configures a Decoder.
type DecoderOption func(*decoderConfig)

type decoderConfig struct {
	strict   bool
	maxDepth int
}

// WithStrictDER makes the decoder reject encodings DER forbids: the
// indefinite length form, non-minimal length octets and non-minimal tag
// numbers, and non-canonical BOOLEAN and INTEGER contents.
func WithStrictDER() DecoderOption {
	return func(c *decoderConfig) { c.strict = true }
}

// WithMaxDepth sets the nesting limit used while scanning indefinite-length
// content.
func WithMaxDepth(n int) DecoderOption {
	return func(c *decoderConfig) { c.maxDepth = n }
}

// Decoder is a pull-based cursor over an immutable byte buffer. Each
// Decoder covers one scope: the whole input, or the content of a single
// constructed object. Nothing past the object currently requested is
// interpreted.
type Decoder struct {
	data   []byte
	offset int
	base   int // position of data[0] in the root buffer
	cfg    decoderConfig
}

// NewDecoder creates a decoder for the given data.
func NewDecoder(data []byte, opts ...DecoderOption) *Decoder {
	cfg := decoderConfig{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxDepth <= 0 {
		cfg.maxDepth = DefaultMaxDepth
	}
	return &Decoder{data: data, cfg: cfg}
}

// Offset returns the current read position relative to the root buffer.
func (d *Decoder) Offset() int {
	return d.base + d.offset
}

// Remaining returns the number of unread bytes in the current scope.
func (d *Decoder) Remaining() int {
	return len(d.data) - d.offset
}

// Strict reports whether the decoder enforces DER.
func (d *Decoder) Strict() bool {
	return d.cfg.strict
}

// MoreItems reports whether unread bytes remain in the current scope.
func (d *Decoder) MoreItems() bool {
	return d.offset < len(d.data)
}

// VerifyEnd fails with a StructuralError if unread bytes remain.
func (d *Decoder) VerifyEnd() error {
	if d.offset < len(d.data) {
		return NewStructuralError(d.Offset(), fmt.Sprintf("%d unread bytes in scope", d.Remaining()), ErrTrailingData)
	}
	return nil
}

// GetNextObject reads one TLV and advances past it. Constructed content is
// returned as raw bytes, not recursed into.
func (d *Decoder) GetNextObject() (Object, error) {
	obj, err := d.objectAt(d.offset)
	if err != nil {
		return Object{}, err
	}
	d.offset += obj.Len()
	return obj, nil
}

// PeekNextObject reads the next TLV without advancing.
func (d *Decoder) PeekNextObject() (Object, error) {
	return d.objectAt(d.offset)
}

// Discard skips the next TLV.
func (d *Decoder) Discard() error {
	_, err := d.GetNextObject()
	return err
}

// Descend returns a decoder scoped to the content of obj, which must have
// been produced by this decoder or one of its ancestors.
func (d *Decoder) Descend(obj Object) *Decoder {
	return &Decoder{
		data: obj.Value,
		base: obj.Offset + obj.HeaderLen,
		cfg:  d.cfg,
	}
}

// StartCons reads the next TLV, which must carry the expected tag in its
// constructed form, and returns a decoder over its content. The outer TLV
// is consumed from this decoder. On mismatch nothing is consumed.
func (d *Decoder) StartCons(expected Tag) (*Decoder, error) {
	expected.Constructed = true

	obj, err := d.PeekNextObject()
	if err != nil {
		return nil, err
	}
	if err := obj.Expect(expected, "constructed"); err != nil {
		return nil, err
	}

	d.offset += obj.Len()
	return d.Descend(obj), nil
}

// StartSequence is StartCons(Sequence).
func (d *Decoder) StartSequence() (*Decoder, error) {
	return d.StartCons(Sequence)
}

// StartSet is StartCons(Set).
func (d *Decoder) StartSet() (*Decoder, error) {
	return d.StartCons(Set)
}

// EndCons asserts that the scope returned by StartCons was fully consumed.
func (d *Decoder) EndCons() error {
	return d.VerifyEnd()
}

// StartExplicit unwraps one EXPLICIT context-specific tag. The wrapper must
// be constructed and must hold exactly one complete object; the returned
// decoder is positioned on that object.
func (d *Decoder) StartExplicit(number int) (*Decoder, error) {
	obj, err := d.PeekNextObject()
	if err != nil {
		return nil, err
	}
	if err := obj.Expect(Explicit(number), "explicit"); err != nil {
		return nil, err
	}

	inner := d.Descend(obj)
	if len(obj.Value) == 0 {
		return nil, NewStructuralError(obj.Offset, "empty explicit wrapper", ErrNotSingleObject)
	}
	first, err := inner.PeekNextObject()
	if err != nil {
		return nil, err
	}
	if first.Len() != len(obj.Value) {
		return nil, NewStructuralError(first.End(), "explicit wrapper holds more than one object", ErrNotSingleObject)
	}

	d.offset += obj.Len()
	return inner, nil
}

// EndExplicit asserts that the single wrapped object was consumed.
func (d *Decoder) EndExplicit() error {
	return d.VerifyEnd()
}

// Decode lets v read itself from the decoder.
func (d *Decoder) Decode(v Decodable) error {
	return v.DecodeFrom(d)
}

// DecodeOptional consumes the next object if it carries tag t. It returns
// false without consuming anything when the scope is exhausted or the next
// tag differs.
func (d *Decoder) DecodeOptional(t Tag) (Object, bool, error) {
	if !d.MoreItems() {
		return Object{}, false, nil
	}
	obj, err := d.PeekNextObject()
	if err != nil {
		return Object{}, false, err
	}
	if obj.Tag != t {
		return Object{}, false, nil
	}
	d.offset += obj.Len()
	return obj, true, nil
}

type header struct {
	tag        Tag
	length     int
	indefinite bool
	size       int
}

// objectAt reads the TLV starting at pos without moving the cursor.
func (d *Decoder) objectAt(pos int) (Object, error) {
	h, err := d.readHeader(pos)
	if err != nil {
		return Object{}, err
	}

	contentStart := pos + h.size
	contentEnd := contentStart + h.length
	end := contentEnd
	if h.indefinite {
		contentEnd, err = d.findEOC(contentStart, 1)
		if err != nil {
			return Object{}, err
		}
		end = contentEnd + 2
	}

	return Object{
		Tag:        h.tag,
		Value:      d.data[contentStart:contentEnd:contentEnd],
		Offset:     d.base + pos,
		HeaderLen:  h.size,
		Indefinite: h.indefinite,
		raw:        d.data[pos:end:end],
	}, nil
}

// readHeader parses the identifier and length octets at pos and checks that
// a definite length fits in the current scope.
func (d *Decoder) readHeader(pos int) (header, error) {
	var h header
	start := pos

	if pos >= len(d.data) {
		return h, NewStructuralError(d.base+start, "cannot read tag", ErrUnexpectedEOF)
	}

	first := d.data[pos]
	pos++

	h.tag.Class = Class(first & 0xC0)
	h.tag.Constructed = first&TypeConstructed != 0
	h.tag.Number = int(first & highTagEscape)

	// Long form tag: subsequent base-128 digits
	if h.tag.Number == highTagEscape {
		number, next, err := d.readBase128(pos)
		if err != nil {
			return h, NewStructuralError(d.base+start, "cannot read long form tag number", err)
		}
		if d.cfg.strict && number <= MaxLowTagNumber {
			return h, NewStructuralError(d.base+start, "long form used for low tag number", ErrNotMinimal)
		}
		h.tag.Number = number
		pos = next
	}

	if pos >= len(d.data) {
		return h, NewStructuralError(d.base+start, "cannot read length", ErrUnexpectedEOF)
	}

	lead := d.data[pos]
	pos++

	switch {
	case lead&LengthLongFormBit == 0:
		h.length = int(lead)

	case lead == LengthLongFormBit:
		if d.cfg.strict {
			return h, NewStructuralError(d.base+start, "indefinite length encoding", ErrIndefiniteLength)
		}
		if !h.tag.Constructed {
			return h, NewStructuralError(d.base+start, "indefinite length on primitive object", ErrIndefiniteLength)
		}
		h.indefinite = true

	case lead == 0xFF:
		return h, NewStructuralError(d.base+start, "reserved length octet", ErrInvalidLength)

	default:
		numBytes := int(lead & 0x7F)
		if pos+numBytes > len(d.data) {
			return h, NewStructuralError(d.base+start, "truncated length encoding", ErrUnexpectedEOF)
		}
		if d.cfg.strict && d.data[pos] == 0 {
			return h, NewStructuralError(d.base+start, "leading zero in length", ErrNotMinimal)
		}
		if numBytes > 8 {
			return h, NewStructuralError(d.base+start, "length value overflow", ErrInvalidLength)
		}

		// Compared as uint64 before conversion, int may be 32 bits wide
		var length uint64
		for i := 0; i < numBytes; i++ {
			length = (length << 8) | uint64(d.data[pos])
			pos++
		}
		if d.cfg.strict && length <= MaxShortFormLength {
			return h, NewStructuralError(d.base+start, "long form used for short length", ErrNotMinimal)
		}
		if length > uint64(len(d.data)-pos) {
			return h, NewStructuralError(d.base+start, "declared length exceeds remaining data", ErrUnexpectedEOF)
		}
		h.length = int(length)
	}

	h.size = pos - start
	if !h.indefinite && h.length > len(d.data)-pos {
		return h, NewStructuralError(d.base+start, "declared length exceeds remaining data", ErrUnexpectedEOF)
	}
	return h, nil
}

// readBase128 reads a base-128 encoded integer (used for long form tags).
func (d *Decoder) readBase128(pos int) (int, int, error) {
	result := 0
	for i := 0; ; i++ {
		if pos >= len(d.data) {
			return 0, pos, ErrUnexpectedEOF
		}

		b := d.data[pos]
		pos++

		if i == 0 && b == 0x80 && d.cfg.strict {
			return 0, pos, ErrNotMinimal
		}

		// Tag numbers stay within 31 bits on every platform
		if result > math.MaxInt32>>7 {
			return 0, pos, ErrInvalidTagNumber
		}

		result = (result << 7) | int(b&0x7F)

		if b&0x80 == 0 {
			return result, pos, nil
		}
	}
}

// findEOC returns the position of the end-of-contents octets closing the
// indefinite-length content that starts at pos.
func (d *Decoder) findEOC(pos, depth int) (int, error) {
	if depth > d.cfg.maxDepth {
		return 0, NewStructuralError(d.base+pos, "indefinite length content", ErrNestingDepth)
	}

	for {
		if pos+1 < len(d.data) && d.data[pos] == 0 && d.data[pos+1] == 0 {
			return pos, nil
		}
		if pos >= len(d.data) {
			return 0, NewStructuralError(d.base+pos, "missing end-of-contents", ErrUnexpectedEOF)
		}

		h, err := d.readHeader(pos)
		if err != nil {
			return 0, err
		}

		next := pos + h.size + h.length
		if h.indefinite {
			eoc, err := d.findEOC(pos+h.size, depth+1)
			if err != nil {
				return 0, err
			}
			next = eoc + 2
		}
		pos = next
	}
}
