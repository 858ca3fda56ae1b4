// Package asn1dump renders BER/DER data as an indented tree of TLVs.
package asn1dump

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/achenxu/botan/internal/asn1str"
	"github.com/achenxu/botan/internal/ber"
	"github.com/achenxu/botan/internal/oid"
)

// DefaultWidth is the number of content bytes per hex line.
const DefaultWidth = 16

// Options controls Dump.
type Options struct {
	// Width is the number of bytes per hex line. Zero means DefaultWidth.
	Width int
	// Strict rejects encodings DER forbids.
	Strict bool
	// NoEncapsulated disables looking for nested DER inside OCTET STRINGs.
	NoEncapsulated bool
}

var universalNames = map[int]string{
	ber.TagEOC:             "EOC",
	ber.TagBoolean:         "BOOLEAN",
	ber.TagInteger:         "INTEGER",
	ber.TagBitString:       "BIT STRING",
	ber.TagOctetString:     "OCTET STRING",
	ber.TagNull:            "NULL",
	ber.TagOID:             "OBJECT IDENTIFIER",
	ber.TagEnumerated:      "ENUMERATED",
	ber.TagSequence:        "SEQUENCE",
	ber.TagSet:             "SET",
	ber.TagUTCTime:         "UTCTime",
	ber.TagGeneralizedTime: "GeneralizedTime",
}

// Dump writes one line per TLV in data. Constructed values are expanded
// with increasing indentation.
func Dump(w io.Writer, data []byte, opts Options) error {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	var decOpts []ber.DecoderOption
	if opts.Strict {
		decOpts = append(decOpts, ber.WithStrictDER())
	}

	p := &printer{w: w, opts: opts}
	if err := p.level(ber.NewDecoder(data, decOpts...), 0); err != nil {
		return err
	}
	return p.err
}

type printer struct {
	w    io.Writer
	opts Options
	err  error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) level(dec *ber.Decoder, depth int) error {
	for dec.MoreItems() && p.err == nil {
		obj, err := dec.GetNextObject()
		if err != nil {
			return err
		}
		if err := p.object(dec, obj, depth); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) object(dec *ber.Decoder, obj ber.Object, depth int) error {
	prefix := fmt.Sprintf("%5d: %s", obj.Offset, strings.Repeat("  ", depth))
	name := TagName(obj.Tag)

	if obj.IsConstructed() {
		length := fmt.Sprint(len(obj.Value))
		if obj.Indefinite {
			length = "indefinite"
		}
		p.printf("%s%s len=%s\n", prefix, name, length)
		return p.level(dec.Descend(obj), depth+1)
	}

	if text, ok := describe(obj); ok {
		if text == "" {
			p.printf("%s%s\n", prefix, name)
		} else {
			p.printf("%s%s %s\n", prefix, name, text)
		}
		return nil
	}

	p.printf("%s%s len=%d\n", prefix, name, len(obj.Value))
	if obj.Is(ber.Universal(ber.TagOctetString)) && !p.opts.NoEncapsulated && encapsulates(obj.Value) {
		p.printf("%5s  %s  encapsulates\n", "", strings.Repeat("  ", depth))
		return p.level(dec.Descend(obj), depth+1)
	}
	p.hexLines(obj.Value, depth+1)
	return nil
}

func (p *printer) hexLines(b []byte, depth int) {
	indent := strings.Repeat("  ", depth)
	for i := 0; i < len(b); i += p.opts.Width {
		end := min(i+p.opts.Width, len(b))
		p.printf("%5s  %s%s\n", "", indent, strings.ToUpper(hex.EncodeToString(b[i:end])))
	}
}

// TagName returns a readable name for t.
func TagName(t ber.Tag) string {
	if t.Class != ber.ClassUniversal {
		return t.String()
	}
	if name, ok := universalNames[t.Number]; ok {
		return name
	}
	if asn1str.IsStringType(t.Number) {
		return asn1str.TypeName(t.Number)
	}
	return t.String()
}

// describe renders the content of well-known primitive values on one line.
func describe(obj ber.Object) (string, bool) {
	if obj.Class() != ber.ClassUniversal {
		if len(obj.Value) > 0 && isText(obj.Value) {
			return fmt.Sprintf("%q", obj.Value), true
		}
		return "", false
	}

	single := ber.NewDecoder(obj.Raw())
	switch obj.Number() {
	case ber.TagBoolean:
		if v, err := single.DecodeBoolean(); err == nil {
			return fmt.Sprint(v), true
		}
	case ber.TagInteger:
		if v, err := single.DecodeInteger(); err == nil {
			return fmt.Sprint(v), true
		}
	case ber.TagNull:
		if err := single.DecodeNull(); err == nil {
			return "", true
		}
	case ber.TagOID:
		if id, err := oid.FromContent(obj.Value); err == nil {
			if name, ok := oid.Name(id); ok {
				return fmt.Sprintf("%s (%s)", id, name), true
			}
			return id.String(), true
		}
	default:
		if asn1str.IsStringType(obj.Number()) {
			if s, err := asn1str.FromContent(obj.Value, obj.Number()); err == nil {
				return fmt.Sprintf("%q", s.Value), true
			}
		}
	}
	return "", false
}

// encapsulates reports whether b is exactly one strictly encoded TLV.
func encapsulates(b []byte) bool {
	if len(b) < 2 {
		return false
	}
	dec := ber.NewDecoder(b, ber.WithStrictDER())
	if _, err := dec.GetNextObject(); err != nil {
		return false
	}
	return dec.VerifyEnd() == nil
}

func isText(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}
	for _, c := range b {
		if c < 0x20 || c == 0x7F {
			return false
		}
	}
	return true
}
