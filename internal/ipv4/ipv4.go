// Package ipv4 converts between dotted-quad text and the 32-bit address
// value carried in certificate names.
package ipv4

import (
	"errors"
	"fmt"
	"net/netip"

	"github.com/achenxu/botan/internal/endian"
)

// ErrInvalidAddress is returned for text that is not a dotted-quad IPv4 address.
var ErrInvalidAddress = errors.New("ipv4: invalid dotted-quad address")

// Parse converts "a.b.c.d" into its big-endian 32-bit value. Leading zeros,
// IPv6 forms and zones are rejected.
func Parse(s string) (uint32, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if !addr.Is4() {
		return 0, fmt.Errorf("%w: %q is not IPv4", ErrInvalidAddress, s)
	}
	b := addr.As4()
	return endian.Load[uint32](b[:]), nil
}

// Format renders v as dotted-quad text.
func Format(v uint32) string {
	var b [4]byte
	endian.Store(v, b[:])
	return netip.AddrFrom4(b).String()
}

// ToOctets parses s and returns its 4 network-order octets.
func ToOctets(s string) ([]byte, error) {
	v, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return endian.Bytes(v), nil
}

// FromOctets formats exactly 4 octets as dotted-quad text. It reports false
// for any other length.
func FromOctets(b []byte) (string, bool) {
	if len(b) != 4 {
		return "", false
	}
	return Format(endian.Load[uint32](b)), true
}
