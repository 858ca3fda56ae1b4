// Package ber implements ASN.1 BER decoding and DER encoding as specified
// in ITU-T X.690.
//
// Certificates and keys arrive from network peers, so decoding is strict
// about bounds and tags, and encoding is deterministic: signatures are
// computed over the exact bytes an Encoder produces.
//
// # Tag Classes
//
// BER uses four tag classes to identify data types:
//
//   - Universal (0x00): Standard ASN.1 types like INTEGER, BOOLEAN, SEQUENCE
//   - Application (0x40): Application-wide types
//   - Context-specific (0x80): Context-dependent types within a structure
//   - Private (0xC0): Organization-specific types
//
// A Tag combines the class, the constructed flag and the tag number. Numbers
// up to 30 use a single identifier octet, larger numbers the escape value
// 0x1F followed by base-128 digits.
//
// # Encoding
//
// Use Encoder to build DER. Constructed values are opened and closed with
// matching calls; the encoder computes the definite length when a scope is
// closed:
//
//	enc := ber.NewEncoder(256)
//	enc.StartSequence()
//	enc.EncodeInteger(1)
//	enc.AddObject(2, ber.ClassContextSpecific, []byte("example.com"))
//	enc.EndSequence()
//	data, err := enc.Bytes()
//
// Cons and Explicit do the same around a callback and discard the partial
// value when the callback fails.
//
// # Decoding
//
// Decoder is a pull-based cursor. GetNextObject returns one TLV without
// interpreting its content; StartCons and StartExplicit return a decoder
// scoped to the content of a constructed value:
//
//	dec := ber.NewDecoder(data)
//	seq, err := dec.StartSequence()
//	if err != nil {
//	    // handle error
//	}
//	for seq.MoreItems() {
//	    obj, err := seq.GetNextObject()
//	    // ...
//	}
//	err = seq.EndCons()
//
// Indefinite-length input is accepted for constructed values unless the
// decoder was created with WithStrictDER. The encoder never produces it.
//
// # Object Contract
//
// Types implement Encodable and Decodable to take part in the codec.
// Marshal and Unmarshal drive a value against a fresh encoder or decoder.
//
// # Errors
//
// Failures are reported as *StructuralError, *TagMismatchError or
// *ValueFormatError, matching ErrStructural, ErrTagMismatch and
// ErrValueFormat respectively under errors.Is.
//
// # References
//
//   - ITU-T X.690: ASN.1 encoding rules
//   - RFC 5280: Internet X.509 Public Key Infrastructure Certificate Profile
package ber
