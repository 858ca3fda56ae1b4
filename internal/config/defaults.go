package config

// Supported output formats.
const (
	FormatHex    = "hex"
	FormatBase64 = "base64"
	FormatPEM    = "pem"
	FormatDER    = "der"
)

// DefaultOtherNameType is used when an otherName entry names no type.
const DefaultOtherNameType = "UTF8String"

// EnvLogLevel overrides logging.level when set.
const EnvLogLevel = "ALTNAME_LOG_LEVEL"

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Logging: LogConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		Encoding: EncodingConfig{
			Format: FormatHex,
			Strict: false,
		},
	}
}
