// Package endian converts fixed-width unsigned integers to and from
// big-endian byte slices.
package endian

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Size returns the width of T in bytes.
func Size[T constraints.Unsigned]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// Store writes v into the first Size[T]() bytes of out, most significant
// byte first. It panics if out is too short.
func Store[T constraints.Unsigned](v T, out []byte) {
	n := Size[T]()
	_ = out[n-1]
	for i := 0; i < n; i++ {
		out[i] = byte(v >> (8 * (n - 1 - i)))
	}
}

// Load reads a T from the first Size[T]() bytes of in. It panics if in is
// too short.
func Load[T constraints.Unsigned](in []byte) T {
	n := Size[T]()
	_ = in[n-1]
	var v T
	for i := 0; i < n; i++ {
		v = v<<8 | T(in[i])
	}
	return v
}

// Bytes returns the big-endian encoding of v.
func Bytes[T constraints.Unsigned](v T) []byte {
	out := make([]byte, Size[T]())
	Store(v, out)
	return out
}
