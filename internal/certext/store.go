package certext

import (
	"github.com/achenxu/botan/internal/asn1str"
	"github.com/achenxu/botan/internal/oid"
)

// Attribute is one (kind, value) pair, e.g. ("DNS", "example.com").
type Attribute struct {
	Kind  string
	Value string
}

// Multimap is an ordered list of (key, value) pairs with a per-key index.
// Iteration follows insertion order.
type Multimap struct {
	entries []Attribute
	index   map[string][]int
}

func (m *Multimap) insert(key, value string) {
	if m.index == nil {
		m.index = make(map[string][]int)
	}
	m.index[key] = append(m.index[key], len(m.entries))
	m.entries = append(m.entries, Attribute{Kind: key, Value: value})
}

func (m *Multimap) contains(key, value string) bool {
	for _, i := range m.index[key] {
		if m.entries[i].Value == value {
			return true
		}
	}
	return false
}

// Get returns the values stored under key in insertion order.
func (m *Multimap) Get(key string) []string {
	positions := m.index[key]
	if len(positions) == 0 {
		return nil
	}
	out := make([]string, len(positions))
	for i, p := range positions {
		out[i] = m.entries[p].Value
	}
	return out
}

// First returns the earliest value stored under key.
func (m *Multimap) First(key string) (string, bool) {
	positions := m.index[key]
	if len(positions) == 0 {
		return "", false
	}
	return m.entries[positions[0]].Value, true
}

// Has reports whether key has at least one value.
func (m *Multimap) Has(key string) bool {
	return len(m.index[key]) > 0
}

// Keys returns the distinct keys in order of first insertion.
func (m *Multimap) Keys() []string {
	var keys []string
	seen := make(map[string]bool, len(m.index))
	for _, e := range m.entries {
		if !seen[e.Kind] {
			seen[e.Kind] = true
			keys = append(keys, e.Kind)
		}
	}
	return keys
}

// Entries returns a copy of all pairs in insertion order.
func (m *Multimap) Entries() []Attribute {
	return append([]Attribute(nil), m.entries...)
}

// Len returns the number of pairs.
func (m *Multimap) Len() int {
	return len(m.entries)
}

// AttributeStore holds alternative names by kind. Empty kinds or values are
// ignored and an exact (kind, value) pair is stored only once.
type AttributeStore struct {
	Multimap
}

// Add stores (kind, value) and reports whether anything was inserted.
func (s *AttributeStore) Add(kind, value string) bool {
	if kind == "" || value == "" {
		return false
	}
	if s.contains(kind, value) {
		return false
	}
	s.insert(kind, value)
	return true
}

// OtherName is a typed value identified by an OID.
type OtherName struct {
	OID   oid.OID
	Value asn1str.String
}

// OtherNameStore keeps otherName entries in insertion order. Unlike
// AttributeStore it never collapses duplicates.
type OtherNameStore struct {
	entries []OtherName
	index   map[string][]int
}

// Add appends an entry.
func (s *OtherNameStore) Add(id oid.OID, value asn1str.String) {
	if s.index == nil {
		s.index = make(map[string][]int)
	}
	key := id.String()
	s.index[key] = append(s.index[key], len(s.entries))
	s.entries = append(s.entries, OtherName{OID: append(oid.OID(nil), id...), Value: value})
}

// Get returns the values stored under id in insertion order.
func (s *OtherNameStore) Get(id oid.OID) []asn1str.String {
	positions := s.index[id.String()]
	if len(positions) == 0 {
		return nil
	}
	out := make([]asn1str.String, len(positions))
	for i, p := range positions {
		out[i] = s.entries[p].Value
	}
	return out
}

// Entries returns a copy of all entries in insertion order.
func (s *OtherNameStore) Entries() []OtherName {
	return append([]OtherName(nil), s.entries...)
}

// Len returns the number of entries.
func (s *OtherNameStore) Len() int {
	return len(s.entries)
}
