package config

// Config holds the complete altname configuration.
type Config struct {
	Logging  LogConfig
	Encoding EncodingConfig
	AltName  AltNameConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Format string
	Output string
}

// EncodingConfig controls how encoded output is written and input is read.
type EncodingConfig struct {
	// Format is one of hex, base64, pem or der.
	Format string
	// Strict rejects BER input that is not valid DER.
	Strict bool
}

// AltNameConfig describes the alternative name extension to build.
type AltNameConfig struct {
	Email []string
	DNS   []string
	URI   []string
	IP    []string

	// Issuer selects issuerAltName instead of subjectAltName.
	Issuer   bool
	Critical bool

	OtherNames []OtherNameConfig
}

// OtherNameConfig is one otherName entry.
type OtherNameConfig struct {
	OID   string
	Value string
	// Type is an ASN.1 string type name such as UTF8String.
	Type string
}

// fileConfig is the on-disk TOML shape.
type fileConfig struct {
	Logging struct {
		Level  string `toml:"level"`
		Format string `toml:"format"`
		Output string `toml:"output"`
	} `toml:"logging"`

	Encoding struct {
		Format string `toml:"format"`
		Strict bool   `toml:"strict"`
	} `toml:"encoding"`

	AltName struct {
		Email     []string `toml:"email"`
		DNS       []string `toml:"dns"`
		URI       []string `toml:"uri"`
		IP        []string `toml:"ip"`
		Issuer    bool     `toml:"issuer"`
		Critical  bool     `toml:"critical"`
		OtherName []struct {
			OID   string `toml:"oid"`
			Value string `toml:"value"`
			Type  string `toml:"type"`
		} `toml:"othername"`
	} `toml:"altname"`
}
