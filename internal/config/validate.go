package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/achenxu/botan/internal/asn1str"
	"github.com/achenxu/botan/internal/ber"
	"github.com/achenxu/botan/internal/ipv4"
	"github.com/achenxu/botan/internal/oid"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig validates the configuration and returns a list of validation errors.
// An empty slice indicates the configuration is valid.
func ValidateConfig(config *Config) []error {
	var errs []error

	errs = append(errs, validateLogConfig(&config.Logging)...)
	errs = append(errs, validateEncodingConfig(&config.Encoding)...)
	errs = append(errs, validateAltNameConfig(&config.AltName)...)

	return errs
}

// validateLogConfig validates logging configuration.
func validateLogConfig(config *LogConfig) []error {
	var errs []error

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "disabled": true, "off": true}
	if config.Level != "" && !validLevels[strings.ToLower(config.Level)] {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: "must be debug, info, warn, error, or off",
		})
	}

	// Validate log format
	validFormats := map[string]bool{"text": true, "json": true}
	if config.Format != "" && !validFormats[strings.ToLower(config.Format)] {
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Message: "must be text or json",
		})
	}

	// Validate output
	if config.Output != "" && config.Output != "stdout" && config.Output != "stderr" {
		dir := filepath.Dir(config.Output)
		if !filepath.IsAbs(config.Output) {
			errs = append(errs, ValidationError{
				Field:   "logging.output",
				Message: "must be stdout, stderr, or an absolute file path",
			})
		} else if _, err := os.Stat(dir); os.IsNotExist(err) {
			errs = append(errs, ValidationError{
				Field:   "logging.output",
				Message: fmt.Sprintf("directory %s does not exist", dir),
			})
		}
	}

	return errs
}

// validateEncodingConfig validates encoding configuration.
func validateEncodingConfig(config *EncodingConfig) []error {
	switch config.Format {
	case FormatHex, FormatBase64, FormatPEM, FormatDER:
		return nil
	}
	return []error{ValidationError{
		Field:   "encoding.format",
		Message: "must be hex, base64, pem, or der",
	}}
}

// validateAltNameConfig checks every value the encoder would reject.
func validateAltNameConfig(config *AltNameConfig) []error {
	var errs []error

	for i, ip := range config.IP {
		if _, err := ipv4.Parse(ip); err != nil {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("altname.ip[%d]", i),
				Message: fmt.Sprintf("%q is not a dotted-quad IPv4 address", ip),
			})
		}
	}

	ia5 := []struct {
		field  string
		values []string
	}{
		{"altname.email", config.Email},
		{"altname.dns", config.DNS},
		{"altname.uri", config.URI},
	}
	for _, group := range ia5 {
		for i, v := range group.values {
			if _, err := asn1str.New(v, ber.TagIA5String); err != nil {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("%s[%d]", group.field, i),
					Message: "must be IA5 (ASCII) text",
				})
			}
		}
	}

	for i, on := range config.OtherNames {
		field := fmt.Sprintf("altname.othername[%d]", i)
		if _, err := oid.Parse(on.OID); err != nil {
			errs = append(errs, ValidationError{
				Field:   field + ".oid",
				Message: fmt.Sprintf("%q is not a dotted object identifier", on.OID),
			})
		}
		typ, ok := asn1str.TypeFromName(on.Type)
		if !ok {
			errs = append(errs, ValidationError{
				Field:   field + ".type",
				Message: fmt.Sprintf("unknown string type %q", on.Type),
			})
			continue
		}
		if err := asn1str.Validate(on.Value, typ); err != nil {
			errs = append(errs, ValidationError{
				Field:   field + ".value",
				Message: fmt.Sprintf("not a valid %s", on.Type),
			})
		}
	}

	return errs
}
