package certext

import (
	"github.com/pkg/errors"

	"github.com/achenxu/botan/internal/ber"
	"github.com/achenxu/botan/internal/logging"
	"github.com/achenxu/botan/internal/oid"
)

// Constructor returns a fresh, empty extension value.
type Constructor func() ExtensionValue

// Registry maps extension identifiers to their typed values. It is built
// once and read-only afterwards.
type Registry struct {
	ctors  map[string]Constructor
	logger logging.Logger
}

// NewRegistry builds a registry from constructors. A nil logger discards
// output.
func NewRegistry(logger logging.Logger, ctors ...Constructor) *Registry {
	if logger == nil {
		logger = logging.NewNop()
	}
	r := &Registry{
		ctors:  make(map[string]Constructor, len(ctors)),
		logger: logger,
	}
	for _, ctor := range ctors {
		r.ctors[ctor().OID().String()] = ctor
	}
	return r
}

// DefaultRegistry knows the subject and issuer alternative name extensions.
func DefaultRegistry(logger logging.Logger) *Registry {
	return NewRegistry(logger,
		func() ExtensionValue { return &SubjectAlternativeName{} },
		func() ExtensionValue { return &IssuerAlternativeName{} },
	)
}

// New returns an empty value for id.
func (r *Registry) New(id oid.OID) (ExtensionValue, bool) {
	ctor, ok := r.ctors[id.String()]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// Parse decodes the value of ext. Unrecognized extensions are reported as
// not ok and left raw.
func (r *Registry) Parse(ext Extension, opts ...ber.DecoderOption) (ExtensionValue, bool, error) {
	v, ok := r.New(ext.ID)
	if !ok {
		if ext.Critical {
			r.logger.Warn("unrecognized critical extension", "oid", ext.ID.String())
		} else {
			r.logger.Debug("unrecognized extension kept raw", "oid", ext.ID.String(), "length", len(ext.Value))
		}
		return nil, false, nil
	}
	if err := ber.Unmarshal(ext.Value, v, opts...); err != nil {
		return nil, false, errors.Wrapf(err, "decoding %s", ext.Name())
	}
	r.logger.Debug("decoded extension", "oid", ext.ID.String(), "name", ext.Name())
	return v, true, nil
}
