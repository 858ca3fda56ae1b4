package oid

// Well-known identifiers used by the certificate extension code.
var (
	SubjectAltName = New(2, 5, 29, 17)
	IssuerAltName  = New(2, 5, 29, 18)

	XMPPAddr          = New(1, 3, 6, 1, 5, 5, 7, 8, 5)
	SmtpUTF8Mailbox   = New(1, 3, 6, 1, 5, 5, 7, 8, 9)
	MSUserPrincipal   = New(1, 3, 6, 1, 4, 1, 311, 20, 2, 3)
	PKCS9EmailAddress = New(1, 2, 840, 113549, 1, 9, 1)
)

// Entry pairs an identifier with its display name.
type Entry struct {
	OID  OID
	Name string
}

// builtin is the table behind the package-level lookup functions.
var builtin = []Entry{
	// X.509v3 extensions (RFC 5280)
	{New(2, 5, 29, 14), "X509v3.SubjectKeyIdentifier"},
	{New(2, 5, 29, 15), "X509v3.KeyUsage"},
	{New(2, 5, 29, 16), "X509v3.PrivateKeyUsagePeriod"},
	{SubjectAltName, "X509v3.SubjectAlternativeName"},
	{IssuerAltName, "X509v3.IssuerAlternativeName"},
	{New(2, 5, 29, 19), "X509v3.BasicConstraints"},
	{New(2, 5, 29, 20), "X509v3.CRLNumber"},
	{New(2, 5, 29, 21), "X509v3.ReasonCode"},
	{New(2, 5, 29, 30), "X509v3.NameConstraints"},
	{New(2, 5, 29, 31), "X509v3.CRLDistributionPoints"},
	{New(2, 5, 29, 32), "X509v3.CertificatePolicies"},
	{New(2, 5, 29, 35), "X509v3.AuthorityKeyIdentifier"},
	{New(2, 5, 29, 37), "X509v3.ExtendedKeyUsage"},
	{New(1, 3, 6, 1, 5, 5, 7, 1, 1), "PKIX.AuthorityInformationAccess"},

	// Extended key usages
	{New(1, 3, 6, 1, 5, 5, 7, 3, 1), "PKIX.ServerAuth"},
	{New(1, 3, 6, 1, 5, 5, 7, 3, 2), "PKIX.ClientAuth"},
	{New(1, 3, 6, 1, 5, 5, 7, 3, 3), "PKIX.CodeSigning"},
	{New(1, 3, 6, 1, 5, 5, 7, 3, 4), "PKIX.EmailProtection"},
	{New(1, 3, 6, 1, 5, 5, 7, 3, 8), "PKIX.TimeStamping"},
	{New(1, 3, 6, 1, 5, 5, 7, 3, 9), "PKIX.OCSPSigning"},

	// otherName types
	{New(1, 3, 6, 1, 5, 5, 7, 8, 3), "PKIX.PermanentIdentifier"},
	{New(1, 3, 6, 1, 5, 5, 7, 8, 4), "PKIX.HardwareModuleName"},
	{XMPPAddr, "PKIX.XMPPAddr"},
	{New(1, 3, 6, 1, 5, 5, 7, 8, 7), "PKIX.SRVName"},
	{SmtpUTF8Mailbox, "PKIX.SmtpUTF8Mailbox"},
	{MSUserPrincipal, "Microsoft.UserPrincipalName"},

	// Distinguished name attributes
	{New(2, 5, 4, 3), "X520.CommonName"},
	{New(2, 5, 4, 5), "X520.SerialNumber"},
	{New(2, 5, 4, 6), "X520.Country"},
	{New(2, 5, 4, 7), "X520.Locality"},
	{New(2, 5, 4, 8), "X520.State"},
	{New(2, 5, 4, 10), "X520.Organization"},
	{New(2, 5, 4, 11), "X520.OrganizationalUnit"},
	{PKCS9EmailAddress, "PKCS9.EmailAddress"},
}

// Registry maps identifiers to display names. It is built once and never
// modified, so it is safe for concurrent use.
type Registry struct {
	byOID  map[string]string
	byName map[string]OID
}

// NewRegistry builds a registry from entries. Later entries win on
// duplicate identifiers or names.
func NewRegistry(entries []Entry) *Registry {
	r := &Registry{
		byOID:  make(map[string]string, len(entries)),
		byName: make(map[string]OID, len(entries)),
	}
	for _, e := range entries {
		r.byOID[e.OID.String()] = e.Name
		r.byName[e.Name] = append(OID(nil), e.OID...)
	}
	return r
}

// Name returns the display name registered for o.
func (r *Registry) Name(o OID) (string, bool) {
	name, ok := r.byOID[o.String()]
	return name, ok
}

// Lookup returns the display name for o, or its dotted form when o is not
// registered.
func (r *Registry) Lookup(o OID) string {
	if name, ok := r.Name(o); ok {
		return name
	}
	return o.String()
}

// FromName returns the identifier registered under name.
func (r *Registry) FromName(name string) (OID, bool) {
	o, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	return append(OID(nil), o...), true
}

// Len returns the number of registered identifiers.
func (r *Registry) Len() int {
	return len(r.byOID)
}

var defaultRegistry = NewRegistry(builtin)

// Default returns the built-in registry.
func Default() *Registry {
	return defaultRegistry
}

// Lookup resolves o against the built-in registry.
func Lookup(o OID) string {
	return defaultRegistry.Lookup(o)
}

// Name returns the built-in display name for o.
func Name(o OID) (string, bool) {
	return defaultRegistry.Name(o)
}

// FromName resolves a display name against the built-in registry.
func FromName(name string) (OID, bool) {
	return defaultRegistry.FromName(name)
}
