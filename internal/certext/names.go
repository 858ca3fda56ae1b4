package certext

import (
	"github.com/achenxu/botan/internal/ber"
	"github.com/achenxu/botan/internal/oid"
)

// SubjectAlternativeName is the subjectAltName extension (2.5.29.17).
type SubjectAlternativeName struct {
	Names AlternativeName
}

// OID implements ExtensionValue.
func (s *SubjectAlternativeName) OID() oid.OID { return oid.SubjectAltName }

// EncodeInto implements ber.Encodable.
func (s *SubjectAlternativeName) EncodeInto(enc *ber.Encoder) error {
	return s.Names.EncodeInto(enc)
}

// DecodeFrom implements ber.Decodable.
func (s *SubjectAlternativeName) DecodeFrom(dec *ber.Decoder) error {
	return s.Names.DecodeFrom(dec)
}

// IssuerAlternativeName is the issuerAltName extension (2.5.29.18).
type IssuerAlternativeName struct {
	Names AlternativeName
}

// OID implements ExtensionValue.
func (i *IssuerAlternativeName) OID() oid.OID { return oid.IssuerAltName }

// EncodeInto implements ber.Encodable.
func (i *IssuerAlternativeName) EncodeInto(enc *ber.Encoder) error {
	return i.Names.EncodeInto(enc)
}

// DecodeFrom implements ber.Decodable.
func (i *IssuerAlternativeName) DecodeFrom(dec *ber.Decoder) error {
	return i.Names.DecodeFrom(dec)
}
