package endian

import (
	"bytes"
	"testing"
)

func TestStoreLoad_Uint32(t *testing.T) {
	buf := make([]byte, 4)
	Store(uint32(0xC0000201), buf)

	expected := []byte{0xC0, 0x00, 0x02, 0x01}
	if !bytes.Equal(buf, expected) {
		t.Errorf("expected %x, got %x", expected, buf)
	}
	if got := Load[uint32](buf); got != 0xC0000201 {
		t.Errorf("expected 0xC0000201, got %#x", got)
	}
}

func TestSize(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"uint8", Size[uint8](), 1},
		{"uint16", Size[uint16](), 2},
		{"uint32", Size[uint32](), 4},
		{"uint64", Size[uint64](), 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, tt.got)
			}
		})
	}
}

func TestBytes(t *testing.T) {
	if got := Bytes(uint16(0x0102)); !bytes.Equal(got, []byte{0x01, 0x02}) {
		t.Errorf("unexpected uint16 encoding %x", got)
	}
	if got := Bytes(uint64(1)); !bytes.Equal(got, []byte{0, 0, 0, 0, 0, 0, 0, 1}) {
		t.Errorf("unexpected uint64 encoding %x", got)
	}
}

func TestLoad_IgnoresExtraBytes(t *testing.T) {
	in := []byte{0x12, 0x34, 0xFF, 0xFF}
	if got := Load[uint16](in); got != 0x1234 {
		t.Errorf("expected 0x1234, got %#x", got)
	}
}

func TestStore_ShortBufferPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for short buffer")
		}
	}()
	Store(uint32(1), make([]byte, 3))
}
