// Package oid implements the ASN.1 OBJECT IDENTIFIER type and a read-only
// registry of well-known identifiers.
package oid

import (
	encoding_asn1 "encoding/asn1"
	"errors"
	"strconv"
	"strings"

	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/achenxu/botan/internal/ber"
)

// ErrInvalidOID is the cause attached to malformed identifiers.
var ErrInvalidOID = errors.New("oid: invalid object identifier")

// OID is an object identifier as a list of arcs.
type OID []int

// New returns an OID made of the given arcs.
func New(arcs ...int) OID {
	return OID(arcs)
}

// Parse reads dotted-decimal text such as "2.5.29.17".
func Parse(s string) (OID, error) {
	if s == "" {
		return nil, ber.NewValueFormatError("object identifier", s, ErrInvalidOID)
	}
	parts := strings.Split(s, ".")
	o := make(OID, len(parts))
	for i, p := range parts {
		// Reject signs and leading zeros that Atoi would accept
		if p == "" || p[0] == '+' || p[0] == '-' || (len(p) > 1 && p[0] == '0') {
			return nil, ber.NewValueFormatError("object identifier", s, ErrInvalidOID)
		}
		v, err := strconv.Atoi(p)
		if err != nil || v > 1<<31-1 {
			return nil, ber.NewValueFormatError("object identifier", s, ErrInvalidOID)
		}
		o[i] = v
	}
	if !o.IsValid() {
		return nil, ber.NewValueFormatError("object identifier", s, ErrInvalidOID)
	}
	return o, nil
}

// MustParse is Parse for package-level tables; it panics on malformed input.
func MustParse(s string) OID {
	o, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return o
}

// IsValid reports whether o can be encoded: at least two arcs, a first arc
// of 0, 1 or 2, a second arc below 40 under the first two roots, and no
// negative arcs.
func (o OID) IsValid() bool {
	if len(o) < 2 {
		return false
	}
	if o[0] < 0 || o[0] > 2 || (o[0] < 2 && o[1] >= 40) {
		return false
	}
	for _, v := range o {
		if v < 0 {
			return false
		}
	}
	return true
}

// String returns the dotted-decimal form.
func (o OID) String() string {
	var sb strings.Builder
	for i, v := range o {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

// Equal reports whether o and other have the same arcs.
func (o OID) Equal(other OID) bool {
	if len(o) != len(other) {
		return false
	}
	for i := range o {
		if o[i] != other[i] {
			return false
		}
	}
	return true
}

// EncodeInto writes o as a UNIVERSAL OBJECT IDENTIFIER.
func (o OID) EncodeInto(enc *ber.Encoder) error {
	if !o.IsValid() {
		return ber.NewValueFormatError("object identifier", o.String(), ErrInvalidOID)
	}

	var b cryptobyte.Builder
	b.AddASN1ObjectIdentifier(encoding_asn1.ObjectIdentifier(o))
	raw, err := b.Bytes()
	if err != nil {
		return ber.NewValueFormatError("object identifier", o.String(), err)
	}
	return enc.AddRaw(raw)
}

// DecodeFrom reads a UNIVERSAL OBJECT IDENTIFIER.
func (o *OID) DecodeFrom(dec *ber.Decoder) error {
	obj, err := dec.PeekNextObject()
	if err != nil {
		return err
	}
	if err := obj.Expect(ber.Universal(ber.TagOID), "OBJECT IDENTIFIER"); err != nil {
		return err
	}

	parsed, err := FromContent(obj.Value)
	if err != nil {
		return ber.NewStructuralError(obj.Offset, "malformed object identifier", err)
	}
	if err := dec.Discard(); err != nil {
		return err
	}
	*o = parsed
	return nil
}

// FromContent parses the content octets of an OBJECT IDENTIFIER.
func FromContent(content []byte) (OID, error) {
	var b cryptobyte.Builder
	b.AddASN1(cryptobyte_asn1.OBJECT_IDENTIFIER, func(c *cryptobyte.Builder) {
		c.AddBytes(content)
	})
	raw, err := b.Bytes()
	if err != nil {
		return nil, err
	}

	var out encoding_asn1.ObjectIdentifier
	s := cryptobyte.String(raw)
	if !s.ReadASN1ObjectIdentifier(&out) || !s.Empty() {
		return nil, ErrInvalidOID
	}
	return OID(out), nil
}
