package certext

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/achenxu/botan/internal/asn1str"
	"github.com/achenxu/botan/internal/ber"
	"github.com/achenxu/botan/internal/ipv4"
	"github.com/achenxu/botan/internal/oid"
)

// Attribute kinds understood by AlternativeName.
const (
	KindEmail = "RFC822"
	KindDNS   = "DNS"
	KindURI   = "URI"
	KindIP    = "IP"
)

// GeneralName context tag numbers (RFC 5280, 4.2.1.6).
const (
	tagOtherName = 0
	tagRFC822    = 1
	tagDNS       = 2
	tagURI       = 6
	tagIP        = 7
)

// generalNames lists the attribute kinds in the order they are encoded.
var generalNames = []struct {
	kind string
	tag  int
}{
	{KindEmail, tagRFC822},
	{KindDNS, tagDNS},
	{KindURI, tagURI},
	{KindIP, tagIP},
}

// AlternativeName is the GeneralNames structure used by the subject and
// issuer alternative name extensions.
//
// Attributes are deduplicated per (kind, value); otherName entries are not.
// Kinds other than RFC822, DNS, URI and IP may be stored but are not encoded.
type AlternativeName struct {
	attrs  AttributeStore
	others OtherNameStore
}

// NewAlternativeName builds a name from optional email, URI, DNS and IPv4
// values. Empty arguments are ignored.
func NewAlternativeName(email, uri, dns, ip string) *AlternativeName {
	a := &AlternativeName{}
	a.AddAttribute(KindEmail, email)
	a.AddAttribute(KindDNS, dns)
	a.AddAttribute(KindURI, uri)
	a.AddAttribute(KindIP, ip)
	return a
}

// AddAttribute stores value under kind. Empty values and exact duplicates
// are ignored.
func (a *AlternativeName) AddAttribute(kind, value string) {
	a.attrs.Add(kind, value)
}

// AddOtherName stores an otherName whose value is encoded with the given
// UNIVERSAL string type. An empty value is ignored.
func (a *AlternativeName) AddOtherName(id oid.OID, value string, typ int) error {
	if value == "" {
		return nil
	}
	if !id.IsValid() {
		return ber.NewValueFormatError("object identifier", id.String(), oid.ErrInvalidOID)
	}
	if !asn1str.IsStringType(typ) {
		return ber.NewValueFormatError("string type", asn1str.TypeName(typ), asn1str.ErrNotString)
	}
	s, err := asn1str.New(value, typ)
	if err != nil {
		return err
	}
	a.others.Add(id, s)
	return nil
}

// HasField reports whether an attribute is stored under kind. otherName
// entries are only visible through Contents and OtherNames.
func (a *AlternativeName) HasField(kind string) bool {
	return a.attrs.Has(kind)
}

// GetAttribute returns the attribute values stored under kind in insertion
// order.
func (a *AlternativeName) GetAttribute(kind string) []string {
	return a.attrs.Get(kind)
}

// GetFirstAttribute returns the earliest attribute value stored under kind,
// or "".
func (a *AlternativeName) GetFirstAttribute(kind string) string {
	v, _ := a.attrs.First(kind)
	return v
}

// HasItems reports whether the name holds any entry.
func (a *AlternativeName) HasItems() bool {
	return a.attrs.Len() > 0 || a.others.Len() > 0
}

// Attributes returns the (kind, value) pairs in insertion order.
func (a *AlternativeName) Attributes() []Attribute {
	return a.attrs.Entries()
}

// OtherNames returns the otherName entries in insertion order.
func (a *AlternativeName) OtherNames() []OtherName {
	return a.others.Entries()
}

// Contents merges attributes and otherNames into one view. otherName keys
// are the registered OID name, or the dotted form when none is registered.
func (a *AlternativeName) Contents() *Multimap {
	var m Multimap
	for _, e := range a.attrs.entries {
		m.insert(e.Kind, e.Value)
	}
	for _, on := range a.others.entries {
		m.insert(oid.Lookup(on.OID), on.Value.Value)
	}
	return &m
}

// Equal reports whether a and b hold the same values per kind, in the same
// order within each kind, and the same otherName sequence.
func (a *AlternativeName) Equal(b *AlternativeName) bool {
	keys := a.attrs.Keys()
	if !slices.Equal(sortedCopy(keys), sortedCopy(b.attrs.Keys())) {
		return false
	}
	for _, k := range keys {
		if !slices.Equal(a.attrs.Get(k), b.attrs.Get(k)) {
			return false
		}
	}
	return slices.EqualFunc(a.others.entries, b.others.entries, func(x, y OtherName) bool {
		return x.OID.Equal(y.OID) && x.Value == y.Value
	})
}

func sortedCopy(s []string) []string {
	out := slices.Clone(s)
	slices.Sort(out)
	return out
}

// EncodeInto writes the GeneralNames SEQUENCE: email, DNS, URI and IP
// entries in that order, then the otherNames.
func (a *AlternativeName) EncodeInto(enc *ber.Encoder) error {
	return enc.Cons(ber.Sequence, func(enc *ber.Encoder) error {
		for _, gn := range generalNames {
			for _, value := range a.attrs.Get(gn.kind) {
				content, err := generalNameContent(gn.kind, value)
				if err != nil {
					return errors.Wrapf(err, "encoding %s name", gn.kind)
				}
				if err := enc.AddObject(gn.tag, ber.ClassContextSpecific, content); err != nil {
					return err
				}
			}
		}
		for _, on := range a.others.entries {
			if err := encodeOtherName(enc, on); err != nil {
				return errors.Wrapf(err, "encoding otherName %s", on.OID)
			}
		}
		return nil
	})
}

func generalNameContent(kind, value string) ([]byte, error) {
	if kind == KindIP {
		octets, err := ipv4.ToOctets(value)
		if err != nil {
			return nil, ber.NewValueFormatError("IPv4 address", value, err)
		}
		return octets, nil
	}
	return asn1str.String{Value: value, Type: ber.TagIA5String}.Content()
}

// encodeOtherName writes [0] { type-id, [0] EXPLICIT value }.
func encodeOtherName(enc *ber.Encoder, on OtherName) error {
	return enc.Cons(ber.Explicit(tagOtherName), func(enc *ber.Encoder) error {
		if err := enc.Encode(on.OID); err != nil {
			return err
		}
		return enc.Explicit(0, func(enc *ber.Encoder) error {
			return enc.Encode(on.Value)
		})
	})
}

// DecodeFrom reads a GeneralNames SEQUENCE. Names of unsupported forms are
// skipped: entries outside the context-specific class, unknown tags, IP
// addresses that are not 4 octets, and otherNames whose value is not a
// character string. A malformed otherName fails the whole decode.
func (a *AlternativeName) DecodeFrom(dec *ber.Decoder) error {
	names, err := dec.StartSequence()
	if err != nil {
		return err
	}

	var decoded AlternativeName
	for names.MoreItems() {
		obj, err := names.GetNextObject()
		if err != nil {
			return errors.Wrap(err, "reading GeneralName")
		}
		if obj.Class() != ber.ClassContextSpecific {
			continue
		}

		switch obj.Number() {
		case tagOtherName:
			if err := decoded.decodeOtherName(names, obj); err != nil {
				return errors.Wrap(err, "decoding otherName")
			}
		case tagRFC822, tagDNS, tagURI:
			if obj.IsConstructed() {
				continue
			}
			decoded.AddAttribute(kindForTag(obj.Number()), string(obj.Value))
		case tagIP:
			if ip, ok := ipv4.FromOctets(obj.Value); ok && !obj.IsConstructed() {
				decoded.AddAttribute(KindIP, ip)
			}
		}
	}
	if err := names.EndCons(); err != nil {
		return err
	}

	*a = decoded
	return nil
}

func kindForTag(number int) string {
	for _, gn := range generalNames {
		if gn.tag == number {
			return gn.kind
		}
	}
	return ""
}

func (a *AlternativeName) decodeOtherName(parent *ber.Decoder, obj ber.Object) error {
	if !obj.IsConstructed() {
		return &ber.TagMismatchError{
			Offset:   obj.Offset,
			Expected: ber.Explicit(tagOtherName),
			Actual:   obj.Tag,
			Context:  "otherName",
		}
	}

	on := parent.Descend(obj)
	var typeID oid.OID
	if err := on.Decode(&typeID); err != nil {
		return err
	}
	if !on.MoreItems() {
		return nil
	}

	inner, err := on.StartExplicit(0)
	if err != nil {
		return err
	}
	value, err := inner.GetNextObject()
	if err != nil {
		return err
	}
	if err := inner.EndExplicit(); err != nil {
		return err
	}
	if err := on.VerifyEnd(); err != nil {
		return err
	}

	if value.Class() != ber.ClassUniversal || value.IsConstructed() || !asn1str.IsStringType(value.Number()) {
		return nil
	}
	s, err := asn1str.FromContent(value.Value, value.Number())
	if err != nil {
		return err
	}
	a.others.Add(typeID, s)
	return nil
}
