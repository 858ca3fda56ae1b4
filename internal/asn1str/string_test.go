package asn1str

import (
	"bytes"
	"errors"
	"testing"

	"github.com/achenxu/botan/internal/ber"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		typ     int
		wantErr bool
	}{
		{name: "ia5 ascii", value: "user@example.com", typ: ber.TagIA5String},
		{name: "ia5 non-ascii", value: "usér@example.com", typ: ber.TagIA5String, wantErr: true},
		{name: "printable", value: "Example Org (EU) 2024", typ: ber.TagPrintableString},
		{name: "printable at sign", value: "a@b", typ: ber.TagPrintableString, wantErr: true},
		{name: "numeric", value: "0123 456", typ: ber.TagNumericString},
		{name: "numeric letter", value: "12a", typ: ber.TagNumericString, wantErr: true},
		{name: "visible", value: "tab-free~", typ: ber.TagVisibleString},
		{name: "visible control", value: "a\tb", typ: ber.TagVisibleString, wantErr: true},
		{name: "utf8", value: "Grüße 世界", typ: ber.TagUTF8String},
		{name: "bmp", value: "世界", typ: ber.TagBMPString},
		{name: "bmp astral", value: "😀", typ: ber.TagBMPString, wantErr: true},
		{name: "t61 latin1", value: "café", typ: ber.TagT61String},
		{name: "t61 beyond latin1", value: "€", typ: ber.TagT61String, wantErr: true},
		{name: "not a string type", value: "x", typ: ber.TagInteger, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.value, tt.typ)
			if tt.wantErr {
				if !errors.Is(err, ber.ErrValueFormat) {
					t.Fatalf("expected ErrValueFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestChoose(t *testing.T) {
	if s := Choose("Example"); s.Type != ber.TagPrintableString {
		t.Errorf("expected PrintableString, got %s", TypeName(s.Type))
	}
	if s := Choose("user@example.com"); s.Type != ber.TagUTF8String {
		t.Errorf("expected UTF8String, got %s", TypeName(s.Type))
	}
}

func TestString_Encode(t *testing.T) {
	tests := []struct {
		name string
		s    String
		want []byte
	}{
		{
			name: "utf8",
			s:    String{Value: "hi", Type: ber.TagUTF8String},
			want: []byte{0x0C, 0x02, 'h', 'i'},
		},
		{
			name: "ia5",
			s:    String{Value: "a.com", Type: ber.TagIA5String},
			want: []byte{0x16, 0x05, 'a', '.', 'c', 'o', 'm'},
		},
		{
			name: "bmp",
			s:    String{Value: "hé", Type: ber.TagBMPString},
			want: []byte{0x1E, 0x04, 0x00, 'h', 0x00, 0xE9},
		},
		{
			name: "universal",
			s:    String{Value: "A", Type: ber.TagUniversalString},
			want: []byte{0x1C, 0x04, 0x00, 0x00, 0x00, 'A'},
		},
		{
			name: "t61",
			s:    String{Value: "é", Type: ber.TagT61String},
			want: []byte{0x14, 0x01, 0xE9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ber.Marshal(tt.s)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("expected %x, got %x", tt.want, got)
			}

			var decoded String
			if err := ber.Unmarshal(got, &decoded); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if decoded != tt.s {
				t.Errorf("expected %+v, got %+v", tt.s, decoded)
			}
		})
	}
}

func TestString_EncodeRejectsCharacterSet(t *testing.T) {
	_, err := ber.Marshal(String{Value: "naïve", Type: ber.TagIA5String})
	if !errors.Is(err, ErrCharacterSet) {
		t.Errorf("expected ErrCharacterSet, got %v", err)
	}
}

func TestString_DecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{name: "integer", data: []byte{0x02, 0x01, 0x01}, wantErr: ber.ErrTagMismatch},
		{name: "context tag", data: []byte{0x82, 0x01, 'a'}, wantErr: ber.ErrTagMismatch},
		{name: "odd bmp", data: []byte{0x1E, 0x03, 0x00, 'a', 0x00}, wantErr: ErrEncoding},
		{name: "ia5 high bit", data: []byte{0x16, 0x01, 0xC3}, wantErr: ber.ErrValueFormat},
		{name: "bad utf8", data: []byte{0x0C, 0x01, 0xFF}, wantErr: ErrEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s String
			err := ber.Unmarshal(tt.data, &s)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if s != (String{}) {
				t.Errorf("receiver modified on error: %+v", s)
			}
		})
	}
}

func TestTypeNames(t *testing.T) {
	if !IsStringType(ber.TagIA5String) || IsStringType(ber.TagOctetString) {
		t.Error("unexpected IsStringType result")
	}
	n, ok := TypeFromName("UTF8String")
	if !ok || n != ber.TagUTF8String {
		t.Errorf("expected UTF8String tag, got %d (ok=%v)", n, ok)
	}
	if TypeName(99) != "UNIVERSAL 99" {
		t.Errorf("unexpected fallback name %q", TypeName(99))
	}
}
