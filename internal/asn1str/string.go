// Package asn1str implements the ASN.1 character string types. Values are
// held as UTF-8 and checked against the character set of their declared type.
package asn1str

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/achenxu/botan/internal/ber"
)

// Errors describing why a value does not fit its declared type.
var (
	ErrCharacterSet = errors.New("asn1str: character outside declared set")
	ErrNotString    = errors.New("asn1str: not a string type")
	ErrEncoding     = errors.New("asn1str: malformed content octets")
)

var typeNames = map[int]string{
	ber.TagUTF8String:      "UTF8String",
	ber.TagNumericString:   "NumericString",
	ber.TagPrintableString: "PrintableString",
	ber.TagT61String:       "T61String",
	ber.TagIA5String:       "IA5String",
	ber.TagVisibleString:   "VisibleString",
	ber.TagUniversalString: "UniversalString",
	ber.TagBMPString:       "BMPString",
}

// IsStringType reports whether number is a supported UNIVERSAL string tag.
func IsStringType(number int) bool {
	_, ok := typeNames[number]
	return ok
}

// TypeName returns the ASN.1 name of a string tag number.
func TypeName(number int) string {
	if name, ok := typeNames[number]; ok {
		return name
	}
	return fmt.Sprintf("UNIVERSAL %d", number)
}

// TypeFromName returns the tag number for an ASN.1 string type name.
func TypeFromName(name string) (int, bool) {
	for number, n := range typeNames {
		if n == name {
			return number, true
		}
	}
	return 0, false
}

// String is a character string together with its declared ASN.1 type.
type String struct {
	Value string
	Type  int
}

// New returns a String after checking value against the character set of typ.
func New(value string, typ int) (String, error) {
	if err := Validate(value, typ); err != nil {
		return String{}, err
	}
	return String{Value: value, Type: typ}, nil
}

// Choose picks PrintableString when value fits it, UTF8String otherwise.
func Choose(value string) String {
	if Validate(value, ber.TagPrintableString) == nil {
		return String{Value: value, Type: ber.TagPrintableString}
	}
	return String{Value: value, Type: ber.TagUTF8String}
}

// String returns the UTF-8 value.
func (s String) String() string {
	return s.Value
}

// Validate checks value against the character set of typ.
func Validate(value string, typ int) error {
	if !IsStringType(typ) {
		return ber.NewValueFormatError(TypeName(typ), value, ErrNotString)
	}
	if !utf8.ValidString(value) {
		return ber.NewValueFormatError(TypeName(typ), value, ErrEncoding)
	}
	for _, r := range value {
		if !allowed(r, typ) {
			return ber.NewValueFormatError(TypeName(typ), value, ErrCharacterSet)
		}
	}
	return nil
}

func allowed(r rune, typ int) bool {
	switch typ {
	case ber.TagNumericString:
		return r == ' ' || (r >= '0' && r <= '9')
	case ber.TagPrintableString:
		return isPrintable(r)
	case ber.TagIA5String:
		return r < 0x80
	case ber.TagVisibleString:
		return r >= 0x20 && r <= 0x7E
	case ber.TagT61String:
		return r <= 0xFF
	case ber.TagBMPString:
		return r <= 0xFFFF && !utf16.IsSurrogate(r)
	default:
		return true
	}
}

func isPrintable(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	switch r {
	case ' ', '\'', '(', ')', '+', ',', '-', '.', '/', ':', '=', '?':
		return true
	}
	return false
}

// Content returns the content octets of s in the representation of its type.
func (s String) Content() ([]byte, error) {
	if err := Validate(s.Value, s.Type); err != nil {
		return nil, err
	}

	switch s.Type {
	case ber.TagT61String:
		out := make([]byte, 0, len(s.Value))
		for _, r := range s.Value {
			out = append(out, byte(r))
		}
		return out, nil
	case ber.TagBMPString:
		units := utf16.Encode([]rune(s.Value))
		out := make([]byte, 0, 2*len(units))
		for _, u := range units {
			out = append(out, byte(u>>8), byte(u))
		}
		return out, nil
	case ber.TagUniversalString:
		out := make([]byte, 0, 4*len(s.Value))
		for _, r := range s.Value {
			out = append(out, byte(r>>24), byte(r>>16), byte(r>>8), byte(r))
		}
		return out, nil
	default:
		return []byte(s.Value), nil
	}
}

// FromContent converts content octets of the given type to a String.
func FromContent(content []byte, typ int) (String, error) {
	var value string

	switch typ {
	case ber.TagT61String:
		runes := make([]rune, len(content))
		for i, b := range content {
			runes[i] = rune(b)
		}
		value = string(runes)
	case ber.TagBMPString:
		if len(content)%2 != 0 {
			return String{}, ber.NewValueFormatError(TypeName(typ), fmt.Sprintf("%x", content), ErrEncoding)
		}
		units := make([]uint16, len(content)/2)
		for i := range units {
			units[i] = uint16(content[2*i])<<8 | uint16(content[2*i+1])
		}
		value = string(utf16.Decode(units))
	case ber.TagUniversalString:
		if len(content)%4 != 0 {
			return String{}, ber.NewValueFormatError(TypeName(typ), fmt.Sprintf("%x", content), ErrEncoding)
		}
		runes := make([]rune, len(content)/4)
		for i := range runes {
			c := content[4*i:]
			runes[i] = rune(uint32(c[0])<<24 | uint32(c[1])<<16 | uint32(c[2])<<8 | uint32(c[3]))
			if !utf8.ValidRune(runes[i]) {
				return String{}, ber.NewValueFormatError(TypeName(typ), fmt.Sprintf("%x", content), ErrEncoding)
			}
		}
		value = string(runes)
	default:
		value = string(content)
	}

	return New(value, typ)
}

// EncodeInto writes s under its UNIVERSAL string tag.
func (s String) EncodeInto(enc *ber.Encoder) error {
	content, err := s.Content()
	if err != nil {
		return err
	}
	return enc.AddObject(s.Type, ber.ClassUniversal, content)
}

// DecodeFrom reads any supported UNIVERSAL string.
func (s *String) DecodeFrom(dec *ber.Decoder) error {
	obj, err := dec.PeekNextObject()
	if err != nil {
		return err
	}
	if obj.Class() != ber.ClassUniversal || obj.IsConstructed() || !IsStringType(obj.Number()) {
		return &ber.TagMismatchError{
			Offset:   obj.Offset,
			Expected: ber.Universal(ber.TagUTF8String),
			Actual:   obj.Tag,
			Context:  "character string",
		}
	}

	decoded, err := FromContent(obj.Value, obj.Number())
	if err != nil {
		return err
	}
	if err := dec.Discard(); err != nil {
		return err
	}
	*s = decoded
	return nil
}
