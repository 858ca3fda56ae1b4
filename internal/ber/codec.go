package ber

// Encodable is implemented by values that can write their own TLV(s).
type Encodable interface {
	EncodeInto(enc *Encoder) error
}

// Decodable is implemented by values that can read themselves from a
// decoder. An implementation must leave the receiver unchanged when it
// returns an error.
type Decodable interface {
	DecodeFrom(dec *Decoder) error
}

// Codec is the full object contract.
type Codec interface {
	Encodable
	Decodable
}

// Marshal encodes v with a fresh encoder. No bytes are returned on failure.
func Marshal(v Encodable) ([]byte, error) {
	enc := NewEncoder(0)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return enc.Bytes()
}

// Unmarshal decodes data, which must hold exactly one TLV, into v.
// Trailing bytes are rejected before v is touched.
func Unmarshal(data []byte, v Decodable, opts ...DecoderOption) error {
	dec := NewDecoder(data, opts...)
	obj, err := dec.PeekNextObject()
	if err != nil {
		return err
	}
	if obj.Len() != len(data) {
		return NewStructuralError(obj.End(), "data after top-level object", ErrTrailingData)
	}
	if err := dec.Decode(v); err != nil {
		return err
	}
	return dec.VerifyEnd()
}
