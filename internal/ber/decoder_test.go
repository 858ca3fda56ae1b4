package ber

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecoder_GetNextObject(t *testing.T) {
	data := []byte{0x02, 0x01, 0x05, 0x82, 0x03, 'a', '.', 'b'}
	dec := NewDecoder(data)

	first, err := dec.GetNextObject()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Tag != Universal(TagInteger) {
		t.Errorf("expected INTEGER tag, got %s", first.Tag)
	}
	if first.Offset != 0 || first.HeaderLen != 2 || first.Len() != 3 || first.End() != 3 {
		t.Errorf("unexpected framing: offset=%d header=%d len=%d", first.Offset, first.HeaderLen, first.Len())
	}
	if !bytes.Equal(first.Value, []byte{0x05}) {
		t.Errorf("expected value 05, got %X", first.Value)
	}

	second, err := dec.GetNextObject()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.IsA(2, ClassContextSpecific) || second.IsConstructed() {
		t.Errorf("expected primitive [2], got %s", second.Tag)
	}
	if second.Offset != 3 {
		t.Errorf("expected offset 3, got %d", second.Offset)
	}
	if !bytes.Equal(second.Raw(), data[3:]) {
		t.Errorf("expected raw %X, got %X", data[3:], second.Raw())
	}
	if string(second.Value) != "a.b" {
		t.Errorf("expected value a.b, got %q", second.Value)
	}

	if dec.MoreItems() {
		t.Error("expected no more items")
	}
	if err := dec.VerifyEnd(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDecoder_Tags(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected Tag
	}{
		{"universal sequence", []byte{0x30, 0x00}, Sequence},
		{"context primitive", []byte{0x87, 0x00}, ContextSpecific(7)},
		{"context constructed", []byte{0xA0, 0x00}, Explicit(0)},
		{"application", []byte{0x45, 0x00}, Tag{Class: ClassApplication, Number: 5}},
		{"private constructed", []byte{0xE3, 0x00}, Tag{Class: ClassPrivate, Number: 3, Constructed: true}},
		{"high tag 31", []byte{0x9F, 0x1F, 0x00}, ContextSpecific(31)},
		{"high tag 128", []byte{0x9F, 0x81, 0x00, 0x00}, ContextSpecific(128)},
		{"universal high tag 201", []byte{0x1F, 0x81, 0x49, 0x00}, Universal(201)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, err := NewDecoder(tt.input, WithStrictDER()).GetNextObject()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if obj.Tag != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, obj.Tag)
			}
			if obj.HeaderLen != len(tt.input) {
				t.Errorf("expected header length %d, got %d", len(tt.input), obj.HeaderLen)
			}
		})
	}
}

func TestDecoder_LongFormLength(t *testing.T) {
	content := bytes.Repeat([]byte{0xAB}, 300)
	data := append([]byte{0x04, 0x82, 0x01, 0x2C}, content...)

	obj, err := NewDecoder(data, WithStrictDER()).GetNextObject()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obj.HeaderLen != 4 {
		t.Errorf("expected header length 4, got %d", obj.HeaderLen)
	}
	if !bytes.Equal(obj.Value, content) {
		t.Error("content mismatch")
	}
}

func TestDecoder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		wantErr error
	}{
		{"empty", nil, ErrUnexpectedEOF},
		{"tag only", []byte{0x04}, ErrUnexpectedEOF},
		{"truncated high tag", []byte{0x1F, 0x81}, ErrUnexpectedEOF},
		{"length exceeds data", []byte{0x04, 0x05, 0x01}, ErrUnexpectedEOF},
		{"truncated long length", []byte{0x04, 0x82, 0x01}, ErrUnexpectedEOF},
		{"reserved length octet", []byte{0x04, 0xFF}, ErrInvalidLength},
		{"indefinite primitive", []byte{0x04, 0x80, 0x00, 0x00}, ErrIndefiniteLength},
		{"missing end-of-contents", []byte{0x30, 0x80, 0x02, 0x01, 0x01}, ErrUnexpectedEOF},
		{"truncated inside indefinite", []byte{0x30, 0x80, 0x02, 0x05, 0x01}, ErrUnexpectedEOF},
		{"four octet length with top bit set", []byte{0x04, 0x84, 0x80, 0x00, 0x00, 0x00}, ErrUnexpectedEOF},
		{"four octet maximum length", []byte{0x04, 0x84, 0xFF, 0xFF, 0xFF, 0xFF}, ErrUnexpectedEOF},
		{"eight octet maximum length", []byte{0x04, 0x88, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, ErrUnexpectedEOF},
		{"nine length octets", []byte{0x04, 0x89, 0x01, 0, 0, 0, 0, 0, 0, 0, 0}, ErrInvalidLength},
		{"tag number overflow", []byte{0x1F, 0xFF, 0xFF, 0xFF, 0xFF, 0x7F, 0x00}, ErrInvalidTagNumber},
		{"huge length inside indefinite", []byte{0x30, 0x80, 0x04, 0x84, 0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x00}, ErrUnexpectedEOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := NewDecoder(tt.input)
			_, err := dec.GetNextObject()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if !errors.Is(err, ErrStructural) {
				t.Errorf("expected a structural error, got %T", err)
			}
			if errors.Is(err, ErrTagMismatch) || errors.Is(err, ErrValueFormat) {
				t.Errorf("error matches more than one kind: %v", err)
			}
			if dec.Offset() != 0 {
				t.Errorf("cursor moved to %d on error", dec.Offset())
			}
		})
	}
}

func TestDecoder_StrictDER(t *testing.T) {
	long := append([]byte{0x04, 0x82, 0x00, 0x80}, make([]byte, 128)...)

	tests := []struct {
		name    string
		input   []byte
		wantErr error
	}{
		{"indefinite length", []byte{0x30, 0x80, 0x00, 0x00}, ErrIndefiniteLength},
		{"long form for short length", []byte{0x04, 0x81, 0x05, 1, 2, 3, 4, 5}, ErrNotMinimal},
		{"leading zero in length", long, ErrNotMinimal},
		{"high tag form for low number", []byte{0x1F, 0x1E, 0x00}, ErrNotMinimal},
		{"leading zero in tag number", []byte{0x1F, 0x80, 0x01, 0x00}, ErrNotMinimal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewDecoder(tt.input).GetNextObject(); err != nil {
				t.Fatalf("lenient decoder rejected input: %v", err)
			}
			_, err := NewDecoder(tt.input, WithStrictDER()).GetNextObject()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if !errors.Is(err, ErrStructural) {
				t.Errorf("expected a structural error, got %T", err)
			}
		})
	}
}

func TestDecoder_IndefiniteLength(t *testing.T) {
	data := []byte{
		0x30, 0x80,
		0x02, 0x01, 0x01,
		0x30, 0x80, 0x00, 0x00,
		0x00, 0x00,
	}

	dec := NewDecoder(data)
	outer, err := dec.GetNextObject()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !outer.Indefinite {
		t.Error("expected indefinite flag")
	}
	if outer.Len() != len(data) {
		t.Errorf("expected total length %d, got %d", len(data), outer.Len())
	}
	if !bytes.Equal(outer.Value, data[2:9]) {
		t.Errorf("expected content %X, got %X", data[2:9], outer.Value)
	}

	inner := dec.Descend(outer)
	v, err := inner.DecodeInteger()
	if err != nil || v != 1 {
		t.Fatalf("expected 1, got %d (%v)", v, err)
	}
	nested, err := inner.GetNextObject()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nested.Offset != 5 || !nested.Indefinite || len(nested.Value) != 0 {
		t.Errorf("unexpected nested object: offset=%d indefinite=%v value=%X", nested.Offset, nested.Indefinite, nested.Value)
	}
	if err := inner.VerifyEnd(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDecoder_NestingDepth(t *testing.T) {
	data := []byte{0x30, 0x80, 0x30, 0x80, 0x30, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}

	if _, err := NewDecoder(data).GetNextObject(); err != nil {
		t.Fatalf("unexpected error with default depth: %v", err)
	}
	_, err := NewDecoder(data, WithMaxDepth(2)).GetNextObject()
	if !errors.Is(err, ErrNestingDepth) {
		t.Errorf("expected ErrNestingDepth, got %v", err)
	}
}

func TestDecoder_PeekAndDiscard(t *testing.T) {
	dec := NewDecoder([]byte{0x05, 0x00, 0x01, 0x01, 0xFF})

	peeked, err := dec.PeekNextObject()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dec.Offset() != 0 {
		t.Errorf("peek advanced cursor to %d", dec.Offset())
	}
	if !peeked.Is(Universal(TagNull)) {
		t.Errorf("expected NULL, got %s", peeked.Tag)
	}

	if err := dec.Discard(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dec.Offset() != 2 || dec.Remaining() != 3 {
		t.Errorf("expected offset 2 remaining 3, got %d %d", dec.Offset(), dec.Remaining())
	}
	if err := dec.VerifyEnd(); !errors.Is(err, ErrTrailingData) {
		t.Errorf("expected ErrTrailingData, got %v", err)
	}

	v, err := dec.DecodeBoolean()
	if err != nil || !v {
		t.Fatalf("expected true, got %v (%v)", v, err)
	}
	if err := dec.VerifyEnd(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDecoder_StartCons(t *testing.T) {
	t.Run("nested offsets", func(t *testing.T) {
		data := []byte{0x30, 0x08, 0x02, 0x01, 0x01, 0x30, 0x03, 0x01, 0x01, 0xFF}
		dec := NewDecoder(data)

		seq, err := dec.StartSequence()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seq.Offset() != 2 {
			t.Errorf("expected scope offset 2, got %d", seq.Offset())
		}
		if _, err := seq.DecodeInteger(); err != nil {
			t.Fatal(err)
		}
		inner, err := seq.StartSequence()
		if err != nil {
			t.Fatal(err)
		}
		if inner.Offset() != 7 {
			t.Errorf("expected inner offset 7, got %d", inner.Offset())
		}
		if _, err := inner.DecodeBoolean(); err != nil {
			t.Fatal(err)
		}
		for _, scope := range []*Decoder{inner, seq, dec} {
			if err := scope.EndCons(); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}
	})

	t.Run("mismatch consumes nothing", func(t *testing.T) {
		dec := NewDecoder([]byte{0x31, 0x00})
		_, err := dec.StartSequence()
		var mismatch *TagMismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("expected TagMismatchError, got %v", err)
		}
		if mismatch.Expected != Sequence || mismatch.Actual != Set {
			t.Errorf("unexpected tags: expected %s actual %s", mismatch.Expected, mismatch.Actual)
		}
		if dec.Offset() != 0 {
			t.Errorf("cursor moved to %d", dec.Offset())
		}
		if _, err := dec.StartSet(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("primitive form rejected", func(t *testing.T) {
		_, err := NewDecoder([]byte{0x10, 0x00}).StartSequence()
		if !errors.Is(err, ErrTagMismatch) {
			t.Errorf("expected ErrTagMismatch, got %v", err)
		}
	})

	t.Run("unread content", func(t *testing.T) {
		seq, err := NewDecoder([]byte{0x30, 0x03, 0x02, 0x01, 0x01}).StartSequence()
		if err != nil {
			t.Fatal(err)
		}
		err = seq.EndCons()
		if !errors.Is(err, ErrTrailingData) {
			t.Fatalf("expected ErrTrailingData, got %v", err)
		}
		var se *StructuralError
		if !errors.As(err, &se) || se.Offset != 2 {
			t.Errorf("expected structural error at offset 2, got %v", err)
		}
	})
}

func TestDecoder_StartExplicit(t *testing.T) {
	t.Run("single object", func(t *testing.T) {
		dec := NewDecoder([]byte{0xA0, 0x03, 0x02, 0x01, 0x05})
		inner, err := dec.StartExplicit(0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		v, err := inner.DecodeInteger()
		if err != nil || v != 5 {
			t.Fatalf("expected 5, got %d (%v)", v, err)
		}
		if err := inner.EndExplicit(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if dec.MoreItems() {
			t.Error("wrapper not consumed")
		}
	})

	tests := []struct {
		name    string
		input   []byte
		number  int
		wantErr error
	}{
		{"empty wrapper", []byte{0xA0, 0x00}, 0, ErrNotSingleObject},
		{"two objects", []byte{0xA0, 0x06, 0x02, 0x01, 0x05, 0x02, 0x01, 0x06}, 0, ErrNotSingleObject},
		{"primitive wrapper", []byte{0x80, 0x01, 0x05}, 0, ErrTagMismatch},
		{"wrong number", []byte{0xA1, 0x03, 0x02, 0x01, 0x05}, 0, ErrTagMismatch},
		{"truncated inner object", []byte{0xA0, 0x02, 0x02, 0x05}, 0, ErrUnexpectedEOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := NewDecoder(tt.input)
			if _, err := dec.StartExplicit(tt.number); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if dec.Offset() != 0 {
				t.Errorf("cursor moved to %d", dec.Offset())
			}
		})
	}
}

func TestDecoder_DecodeOptional(t *testing.T) {
	dec := NewDecoder([]byte{0x01, 0x01, 0xFF, 0x04, 0x00})

	obj, ok, err := dec.DecodeOptional(Universal(TagBoolean))
	if err != nil || !ok {
		t.Fatalf("expected BOOLEAN present, got ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(obj.Value, []byte{0xFF}) {
		t.Errorf("expected FF, got %X", obj.Value)
	}

	_, ok, err = dec.DecodeOptional(Universal(TagBoolean))
	if err != nil || ok {
		t.Fatalf("expected BOOLEAN absent, got ok=%v err=%v", ok, err)
	}
	if dec.Offset() != 3 {
		t.Errorf("absent optional moved cursor to %d", dec.Offset())
	}

	if _, err := dec.DecodeOctetString(); err != nil {
		t.Fatal(err)
	}
	_, ok, err = dec.DecodeOptional(Universal(TagOctetString))
	if err != nil || ok {
		t.Errorf("expected nothing at end of scope, got ok=%v err=%v", ok, err)
	}
}

func TestDecoder_DecodeBoolean(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		strict   bool
		expected bool
		wantErr  error
	}{
		{"true", []byte{0x01, 0x01, 0xFF}, true, true, nil},
		{"false", []byte{0x01, 0x01, 0x00}, true, false, nil},
		{"lenient non-canonical true", []byte{0x01, 0x01, 0x01}, false, true, nil},
		{"strict non-canonical true", []byte{0x01, 0x01, 0x01}, true, false, ErrInvalidBoolean},
		{"empty", []byte{0x01, 0x00}, false, false, ErrInvalidBoolean},
		{"too long", []byte{0x01, 0x02, 0xFF, 0xFF}, false, false, ErrInvalidBoolean},
		{"wrong tag", []byte{0x02, 0x01, 0xFF}, false, false, ErrTagMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []DecoderOption
			if tt.strict {
				opts = append(opts, WithStrictDER())
			}
			dec := NewDecoder(tt.input, opts...)
			got, err := dec.DecodeBoolean()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if dec.Offset() != 0 {
					t.Errorf("cursor moved to %d on error", dec.Offset())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestDecoder_DecodeInteger(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		strict   bool
		expected int64
		wantErr  error
	}{
		{"zero", []byte{0x02, 0x01, 0x00}, true, 0, nil},
		{"positive", []byte{0x02, 0x02, 0x01, 0x00}, true, 256, nil},
		{"negative", []byte{0x02, 0x02, 0xFF, 0x7F}, true, -129, nil},
		{"lenient padded", []byte{0x02, 0x02, 0x00, 0x7F}, false, 127, nil},
		{"strict padded", []byte{0x02, 0x02, 0x00, 0x7F}, true, 0, ErrNotMinimal},
		{"strict redundant sign", []byte{0x02, 0x02, 0xFF, 0x80}, true, 0, ErrNotMinimal},
		{"empty", []byte{0x02, 0x00}, false, 0, ErrInvalidInteger},
		{"too large", []byte{0x02, 0x09, 0x01, 0, 0, 0, 0, 0, 0, 0, 0}, false, 0, ErrInvalidInteger},
		{"wrong tag", []byte{0x04, 0x01, 0x00}, false, 0, ErrTagMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []DecoderOption
			if tt.strict {
				opts = append(opts, WithStrictDER())
			}
			got, err := NewDecoder(tt.input, opts...).DecodeInteger()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestDecoder_DecodeOctetStringCopies(t *testing.T) {
	data := []byte{0x04, 0x02, 0xAA, 0xBB}
	got, err := NewDecoder(data).DecodeOctetString()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got[0] = 0x00
	if data[2] != 0xAA {
		t.Error("decoded octet string aliases the input buffer")
	}
}

func TestDecoder_DecodeNull(t *testing.T) {
	if err := NewDecoder([]byte{0x05, 0x00}).DecodeNull(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := NewDecoder([]byte{0x05, 0x01, 0x00}).DecodeNull(); !errors.Is(err, ErrInvalidNull) {
		t.Errorf("expected ErrInvalidNull, got %v", err)
	}
}

func TestTag_String(t *testing.T) {
	tests := []struct {
		tag      Tag
		expected string
	}{
		{Sequence, "UNIVERSAL 16 (constructed)"},
		{Universal(TagInteger), "UNIVERSAL 2 (primitive)"},
		{ContextSpecific(2), "[2] (primitive)"},
		{Explicit(0), "[0] (constructed)"},
		{Tag{Class: ClassApplication, Number: 1}, "APPLICATION 1 (primitive)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.tag.String(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"structural", NewStructuralError(4, "bad", ErrUnexpectedEOF), ErrStructural},
		{"tag mismatch", &TagMismatchError{Expected: Sequence, Actual: Set}, ErrTagMismatch},
		{"value format", NewValueFormatError("IPv4 address", "1.2.3", nil), ErrValueFormat},
	}

	kinds := []error{ErrStructural, ErrTagMismatch, ErrValueFormat}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range kinds {
				if got := errors.Is(tt.err, k); got != (k == tt.kind) {
					t.Errorf("errors.Is(%v, %v) = %v", tt.err, k, got)
				}
			}
		})
	}
}
