package certext

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/achenxu/botan/internal/ber"
	"github.com/achenxu/botan/internal/oid"
)

// ErrDuplicateExtension is reported when an identifier appears twice in one
// Extensions list.
var ErrDuplicateExtension = errors.New("certext: duplicate extension")

// Extension is the X.509 Extension SEQUENCE. Value holds the DER encoding
// carried inside extnValue.
type Extension struct {
	ID       oid.OID
	Critical bool
	Value    []byte
}

// ExtensionValue is a typed extension payload.
type ExtensionValue interface {
	ber.Codec
	OID() oid.OID
}

// NewExtension encodes v and wraps it in an Extension.
func NewExtension(v ExtensionValue, critical bool) (Extension, error) {
	value, err := ber.Marshal(v)
	if err != nil {
		return Extension{}, errors.Wrapf(err, "encoding extension %s", oid.Lookup(v.OID()))
	}
	return Extension{ID: v.OID(), Critical: critical, Value: value}, nil
}

// Name returns the registered name of the extension identifier.
func (e Extension) Name() string {
	return oid.Lookup(e.ID)
}

// Equal reports whether two extensions are identical.
func (e Extension) Equal(other Extension) bool {
	return e.ID.Equal(other.ID) && e.Critical == other.Critical && bytes.Equal(e.Value, other.Value)
}

// EncodeInto writes the Extension. A false critical flag is omitted.
func (e Extension) EncodeInto(enc *ber.Encoder) error {
	return enc.Cons(ber.Sequence, func(enc *ber.Encoder) error {
		if err := enc.Encode(e.ID); err != nil {
			return err
		}
		if e.Critical {
			if err := enc.EncodeBoolean(true); err != nil {
				return err
			}
		}
		return enc.EncodeOctetString(e.Value)
	})
}

// DecodeFrom reads an Extension.
func (e *Extension) DecodeFrom(dec *ber.Decoder) error {
	seq, err := dec.StartSequence()
	if err != nil {
		return err
	}

	var id oid.OID
	if err := seq.Decode(&id); err != nil {
		return errors.Wrap(err, "extension identifier")
	}

	critical := false
	if seq.MoreItems() {
		next, err := seq.PeekNextObject()
		if err != nil {
			return err
		}
		if next.Is(ber.Universal(ber.TagBoolean)) {
			if critical, err = seq.DecodeBoolean(); err != nil {
				return errors.Wrapf(err, "extension %s critical flag", id)
			}
		}
	}

	value, err := seq.DecodeOctetString()
	if err != nil {
		return errors.Wrapf(err, "extension %s value", id)
	}
	if err := seq.EndCons(); err != nil {
		return err
	}

	*e = Extension{ID: id, Critical: critical, Value: value}
	return nil
}

// Extensions is an ordered list of extensions with unique identifiers.
type Extensions struct {
	list []Extension
}

// Add encodes v and appends it.
func (x *Extensions) Add(v ExtensionValue, critical bool) error {
	ext, err := NewExtension(v, critical)
	if err != nil {
		return err
	}
	return x.AddExtension(ext)
}

// AddExtension appends an already encoded extension.
func (x *Extensions) AddExtension(ext Extension) error {
	if _, ok := x.Get(ext.ID); ok {
		return errors.Wrapf(ErrDuplicateExtension, "%s", ext.ID)
	}
	x.list = append(x.list, ext)
	return nil
}

// Get returns the extension with the given identifier.
func (x *Extensions) Get(id oid.OID) (Extension, bool) {
	for _, ext := range x.list {
		if ext.ID.Equal(id) {
			return ext, true
		}
	}
	return Extension{}, false
}

// List returns the extensions in order.
func (x *Extensions) List() []Extension {
	return append([]Extension(nil), x.list...)
}

// Len returns the number of extensions.
func (x *Extensions) Len() int {
	return len(x.list)
}

// EncodeInto writes the Extensions SEQUENCE.
func (x *Extensions) EncodeInto(enc *ber.Encoder) error {
	return enc.Cons(ber.Sequence, func(enc *ber.Encoder) error {
		for _, ext := range x.list {
			if err := enc.Encode(ext); err != nil {
				return err
			}
		}
		return nil
	})
}

// DecodeFrom reads an Extensions SEQUENCE. A repeated identifier is a
// structural error.
func (x *Extensions) DecodeFrom(dec *ber.Decoder) error {
	seq, err := dec.StartSequence()
	if err != nil {
		return err
	}

	var decoded Extensions
	for seq.MoreItems() {
		offset := seq.Offset()
		var ext Extension
		if err := seq.Decode(&ext); err != nil {
			return err
		}
		if err := decoded.AddExtension(ext); err != nil {
			return ber.NewStructuralError(offset, "repeated extension "+ext.ID.String(), ErrDuplicateExtension)
		}
	}
	if err := seq.EndCons(); err != nil {
		return err
	}

	*x = decoded
	return nil
}
