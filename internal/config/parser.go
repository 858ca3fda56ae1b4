package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// Parser errors.
var (
	ErrFileNotFound      = errors.New("configuration file not found")
	ErrMissingConfigFile = errors.New("config file path is required")
)

// LoadConfig loads configuration from a file path.
// It reads the file, substitutes environment variables, parses TOML,
// and applies defaults for missing values.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, ErrMissingConfigFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}

	return ParseConfig(data)
}

// ParseConfig parses configuration from TOML data.
// Only keys present in data override the defaults.
func ParseConfig(data []byte) (*Config, error) {
	// Substitute environment variables
	data = substituteEnvVars(data)

	var raw fileConfig
	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse config: unknown key %q", undecoded[0].String())
	}

	config := DefaultConfig()

	if meta.IsDefined("logging", "level") {
		config.Logging.Level = strings.TrimSpace(raw.Logging.Level)
	}
	if meta.IsDefined("logging", "format") {
		config.Logging.Format = strings.TrimSpace(raw.Logging.Format)
	}
	if meta.IsDefined("logging", "output") {
		config.Logging.Output = strings.TrimSpace(raw.Logging.Output)
	}

	if meta.IsDefined("encoding", "format") {
		config.Encoding.Format = strings.ToLower(strings.TrimSpace(raw.Encoding.Format))
	}
	if meta.IsDefined("encoding", "strict") {
		config.Encoding.Strict = raw.Encoding.Strict
	}

	alt := &config.AltName
	alt.Email = trimAll(raw.AltName.Email)
	alt.DNS = trimAll(raw.AltName.DNS)
	alt.URI = trimAll(raw.AltName.URI)
	alt.IP = trimAll(raw.AltName.IP)
	alt.Issuer = raw.AltName.Issuer
	alt.Critical = raw.AltName.Critical
	for _, on := range raw.AltName.OtherName {
		typ := strings.TrimSpace(on.Type)
		if typ == "" {
			typ = DefaultOtherNameType
		}
		alt.OtherNames = append(alt.OtherNames, OtherNameConfig{
			OID:   strings.TrimSpace(on.OID),
			Value: on.Value,
			Type:  typ,
		})
	}

	ApplyEnv(config)
	return config, nil
}

// ApplyEnv applies environment overrides to config.
func ApplyEnv(config *Config) {
	if level := strings.TrimSpace(os.Getenv(EnvLogLevel)); level != "" {
		config.Logging.Level = strings.ToLower(level)
	}
}

func trimAll(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

var envPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// substituteEnvVars replaces ${VAR} and ${VAR:-default} patterns with environment variable values.
func substituteEnvVars(data []byte) []byte {
	return envPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		// Extract content between ${ and }
		content := string(match[2 : len(match)-1])

		// Check for default value syntax: VAR:-default
		if idx := strings.Index(content, ":-"); idx != -1 {
			varName := content[:idx]
			defaultVal := content[idx+2:]
			if val := os.Getenv(varName); val != "" {
				return []byte(val)
			}
			return []byte(defaultVal)
		}

		// Simple variable substitution
		return []byte(os.Getenv(content))
	})
}
