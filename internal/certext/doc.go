// Package certext implements the X.509 alternative name extensions on top of
// package ber.
//
// AlternativeName models GeneralNames (RFC 5280, 4.2.1.6). Email, DNS and
// URI names are IA5 text, IP names are IPv4 dotted quads, and otherName
// entries pair an OID with a character string:
//
//	name := certext.NewAlternativeName("admin@example.com", "", "example.com", "192.0.2.1")
//	_ = name.AddOtherName(oid.MSUserPrincipal, "user@example.com", ber.TagUTF8String)
//	der, err := ber.Marshal(name)
//
// Decoding skips name forms it does not model, such as registeredID,
// directoryName and IPv6 addresses. A malformed otherName fails the decode.
//
// Extension and Extensions carry the surrounding X.509 framing, and Registry
// turns an extension back into its typed value.
package certext
