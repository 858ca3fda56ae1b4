package ber

// Object is one decoded TLV. Value and Raw alias the decoder's input buffer
// and must be treated as read-only.
type Object struct {
	Tag Tag

	// Value holds the content octets, excluding any end-of-contents marker.
	Value []byte

	// Offset is the position of the identifier octet in the root buffer.
	Offset int

	// HeaderLen is the number of identifier and length octets.
	HeaderLen int

	// Indefinite is set when the object used the indefinite length form.
	Indefinite bool

	raw []byte
}

// Class returns the tag class of the object.
func (o Object) Class() Class { return o.Tag.Class }

// Number returns the tag number of the object.
func (o Object) Number() int { return o.Tag.Number }

// IsConstructed reports whether the constructed flag is set.
func (o Object) IsConstructed() bool { return o.Tag.Constructed }

// Is reports whether the object carries exactly the given tag.
func (o Object) Is(t Tag) bool { return o.Tag == t }

// IsA reports whether the object has the given number and class, ignoring
// the constructed flag.
func (o Object) IsA(number int, class Class) bool {
	return o.Tag.Number == number && o.Tag.Class == class
}

// Raw returns the complete encoding of the object: header, content and, for
// the indefinite form, the end-of-contents octets.
func (o Object) Raw() []byte { return o.raw }

// Len returns the number of bytes the object spans in the source buffer.
func (o Object) Len() int { return len(o.raw) }

// End returns the offset one past the last byte of the object.
func (o Object) End() int { return o.Offset + len(o.raw) }

// Expect returns a TagMismatchError unless the object carries tag t.
func (o Object) Expect(t Tag, context string) error {
	if o.Tag == t {
		return nil
	}
	return &TagMismatchError{Offset: o.Offset, Expected: t, Actual: o.Tag, Context: context}
}
