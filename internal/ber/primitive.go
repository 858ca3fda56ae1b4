package ber

// EncodeBoolean writes a BOOLEAN. DER encodes TRUE as 0xFF.
func (e *Encoder) EncodeBoolean(v bool) error {
	content := []byte{0x00}
	if v {
		content[0] = 0xFF
	}
	return e.AddObject(TagBoolean, ClassUniversal, content)
}

// EncodeInteger writes an INTEGER using the minimum number of octets.
func (e *Encoder) EncodeInteger(v int64) error {
	return e.AddObject(TagInteger, ClassUniversal, encodeInteger(v))
}

// EncodeOctetString writes a primitive OCTET STRING.
func (e *Encoder) EncodeOctetString(v []byte) error {
	return e.AddObject(TagOctetString, ClassUniversal, v)
}

// EncodeNull writes a NULL.
func (e *Encoder) EncodeNull() error {
	return e.AddObject(TagNull, ClassUniversal, nil)
}

// encodeInteger encodes an int64 as a minimal two's complement byte slice.
func encodeInteger(v int64) []byte {
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (56 - 8*i))
	}

	// Drop leading octets that only repeat the sign bit
	start := 0
	for start < 7 {
		b, next := buf[start], buf[start+1]
		if (b == 0x00 && next&0x80 == 0) || (b == 0xFF && next&0x80 != 0) {
			start++
			continue
		}
		break
	}

	out := make([]byte, 8-start)
	copy(out, buf[start:])
	return out
}

// DecodeBoolean reads a BOOLEAN.
func (d *Decoder) DecodeBoolean() (bool, error) {
	obj, err := d.PeekNextObject()
	if err != nil {
		return false, err
	}
	if err := obj.Expect(Universal(TagBoolean), "BOOLEAN"); err != nil {
		return false, err
	}

	// Boolean must have length 1
	if len(obj.Value) != 1 {
		return false, NewStructuralError(obj.Offset, "boolean must have length 1", ErrInvalidBoolean)
	}
	v := obj.Value[0]
	if d.cfg.strict && v != 0x00 && v != 0xFF {
		return false, NewStructuralError(obj.Offset, "DER boolean must be 0x00 or 0xFF", ErrInvalidBoolean)
	}

	d.offset += obj.Len()
	// Per X.690, FALSE is 0x00, TRUE is any non-zero value
	return v != 0x00, nil
}

// DecodeInteger reads an INTEGER that fits in an int64.
func (d *Decoder) DecodeInteger() (int64, error) {
	obj, err := d.PeekNextObject()
	if err != nil {
		return 0, err
	}
	if err := obj.Expect(Universal(TagInteger), "INTEGER"); err != nil {
		return 0, err
	}

	content := obj.Value
	if len(content) == 0 {
		return 0, NewStructuralError(obj.Offset, "integer must have at least 1 byte", ErrInvalidInteger)
	}
	if len(content) > 8 {
		return 0, NewStructuralError(obj.Offset, "integer too large for int64", ErrInvalidInteger)
	}
	if d.cfg.strict && len(content) > 1 {
		if (content[0] == 0x00 && content[1]&0x80 == 0) || (content[0] == 0xFF && content[1]&0x80 != 0) {
			return 0, NewStructuralError(obj.Offset, "integer not minimally encoded", ErrNotMinimal)
		}
	}

	d.offset += obj.Len()
	return decodeInteger(content), nil
}

// decodeInteger decodes two's complement content octets.
func decodeInteger(content []byte) int64 {
	var result int64

	// If high bit is set, the number is negative (two's complement)
	if content[0]&0x80 != 0 {
		result = -1
	}
	for _, b := range content {
		result = (result << 8) | int64(b)
	}
	return result
}

// DecodeOctetString reads a primitive OCTET STRING. The returned slice is a
// copy.
func (d *Decoder) DecodeOctetString() ([]byte, error) {
	obj, err := d.PeekNextObject()
	if err != nil {
		return nil, err
	}
	if err := obj.Expect(Universal(TagOctetString), "OCTET STRING"); err != nil {
		return nil, err
	}

	d.offset += obj.Len()
	value := make([]byte, len(obj.Value))
	copy(value, obj.Value)
	return value, nil
}

// DecodeNull reads a NULL.
func (d *Decoder) DecodeNull() error {
	obj, err := d.PeekNextObject()
	if err != nil {
		return err
	}
	if err := obj.Expect(Universal(TagNull), "NULL"); err != nil {
		return err
	}
	if len(obj.Value) != 0 {
		return NewStructuralError(obj.Offset, "null must have length 0", ErrInvalidNull)
	}
	d.offset += obj.Len()
	return nil
}
