package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/achenxu/botan/internal/asn1dump"
	"github.com/achenxu/botan/internal/asn1str"
	"github.com/achenxu/botan/internal/ber"
	"github.com/achenxu/botan/internal/certext"
	"github.com/achenxu/botan/internal/config"
	"github.com/achenxu/botan/internal/logging"
	"github.com/achenxu/botan/internal/oid"
)

// PEM block types written by encode.
const (
	pemExtension    = "X509 EXTENSION"
	pemGeneralNames = "GENERAL NAMES"
)

// encodeCmd handles the encode command.
func encodeCmd(args []string) int {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "Path to configuration file")
	format := fs.String("format", "", "Output format: hex, base64, pem, der")
	outPath := fs.String("out", "", "Output file path")
	valueOnly := fs.Bool("value", false, "Write only the GeneralNames value")
	help := fs.Bool("h", false, "Show help message")
	helpLong := fs.Bool("help", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help || *helpLong {
		printEncodeUsage(stdout)
		return 0
	}

	if *configPath == "" {
		fmt.Fprintln(stderr, "Error: -config is required")
		return 1
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}
	if *format != "" {
		cfg.Encoding.Format = strings.ToLower(*format)
	}
	if errs := config.ValidateConfig(cfg); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(stderr, "Error: %v\n", e)
		}
		return 1
	}

	logger := newLogger(cfg)
	logger.Debug("loaded config", "path", *configPath, "format", cfg.Encoding.Format)

	value, err := buildExtensionValue(cfg.AltName)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	var data []byte
	label := pemExtension
	if *valueOnly {
		label = pemGeneralNames
		data, err = ber.Marshal(value)
	} else {
		var ext certext.Extension
		ext, err = certext.NewExtension(value, cfg.AltName.Critical)
		if err == nil {
			data, err = ber.Marshal(ext)
		}
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error encoding: %v\n", err)
		return 1
	}

	out, err := formatOutput(cfg.Encoding.Format, label, data)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if *outPath == "" {
		_, err = stdout.Write(out)
	} else {
		err = os.WriteFile(*outPath, out, 0644)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error writing output: %v\n", err)
		return 1
	}

	logger.Info("encoded extension",
		"oid", value.OID().String(),
		"critical", cfg.AltName.Critical,
		"bytes", len(data),
	)
	return 0
}

// decodeCmd handles the decode command.
func decodeCmd(args []string) int {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "Path to configuration file")
	inPath := fs.String("in", "", "Input file path")
	inform := fs.String("inform", "", "Input format: pem, hex, base64, der (default: detect)")
	strict := fs.Bool("strict", false, "Reject input that is not valid DER")
	extension := fs.Bool("extension", false, "Input is a complete X.509 Extension")
	help := fs.Bool("h", false, "Show help message")
	helpLong := fs.Bool("help", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help || *helpLong {
		printDecodeUsage(stdout)
		return 0
	}

	cfg, ok := loadOptionalConfig(*configPath)
	if !ok {
		return 1
	}
	logger := newLogger(cfg)

	der, err := loadInput(*inPath, strings.ToLower(*inform))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	var opts []ber.DecoderOption
	if *strict || cfg.Encoding.Strict {
		opts = append(opts, ber.WithStrictDER())
	}

	if !*extension {
		var names certext.AlternativeName
		if err := ber.Unmarshal(der, &names, opts...); err != nil {
			fmt.Fprintf(stderr, "Error decoding: %v\n", err)
			return 1
		}
		printNames(&names)
		return 0
	}

	var ext certext.Extension
	if err := ber.Unmarshal(der, &ext, opts...); err != nil {
		fmt.Fprintf(stderr, "Error decoding: %v\n", err)
		return 1
	}

	name := ext.Name()
	if name != ext.ID.String() {
		name = fmt.Sprintf("%s (%s)", name, ext.ID)
	}
	fmt.Fprintf(stdout, "Extension: %s\n", name)
	fmt.Fprintf(stdout, "Critical:  %v\n", ext.Critical)

	value, ok, err := certext.DefaultRegistry(logger).Parse(ext, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "Error decoding: %v\n", err)
		return 1
	}
	if !ok {
		fmt.Fprintf(stdout, "Value:     %X\n", ext.Value)
		return 0
	}

	switch v := value.(type) {
	case *certext.SubjectAlternativeName:
		printNames(&v.Names)
	case *certext.IssuerAlternativeName:
		printNames(&v.Names)
	}
	return 0
}

// dumpCmd handles the dump command.
func dumpCmd(args []string) int {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "Path to configuration file")
	inPath := fs.String("in", "", "Input file path")
	inform := fs.String("inform", "", "Input format: pem, hex, base64, der (default: detect)")
	strict := fs.Bool("strict", false, "Reject input that is not valid DER")
	width := fs.Int("width", asn1dump.DefaultWidth, "Bytes per hex line")
	help := fs.Bool("h", false, "Show help message")
	helpLong := fs.Bool("help", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help || *helpLong {
		printDumpUsage(stdout)
		return 0
	}

	cfg, ok := loadOptionalConfig(*configPath)
	if !ok {
		return 1
	}

	der, err := loadInput(*inPath, strings.ToLower(*inform))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	opts := asn1dump.Options{Width: *width, Strict: *strict || cfg.Encoding.Strict}
	if err := asn1dump.Dump(stdout, der, opts); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// buildExtensionValue turns the [altname] section into an extension value.
func buildExtensionValue(alt config.AltNameConfig) (certext.ExtensionValue, error) {
	var names certext.AlternativeName
	for _, v := range alt.Email {
		names.AddAttribute(certext.KindEmail, v)
	}
	for _, v := range alt.DNS {
		names.AddAttribute(certext.KindDNS, v)
	}
	for _, v := range alt.URI {
		names.AddAttribute(certext.KindURI, v)
	}
	for _, v := range alt.IP {
		names.AddAttribute(certext.KindIP, v)
	}
	for _, on := range alt.OtherNames {
		id, err := oid.Parse(on.OID)
		if err != nil {
			return nil, err
		}
		typ, ok := asn1str.TypeFromName(on.Type)
		if !ok {
			return nil, fmt.Errorf("unknown string type %q", on.Type)
		}
		if err := names.AddOtherName(id, on.Value, typ); err != nil {
			return nil, err
		}
	}

	if alt.Issuer {
		return &certext.IssuerAlternativeName{Names: names}, nil
	}
	return &certext.SubjectAlternativeName{Names: names}, nil
}

// printNames writes one "kind: value" line per entry.
func printNames(names *certext.AlternativeName) {
	if !names.HasItems() {
		fmt.Fprintln(stdout, "(no names)")
		return
	}
	contents := names.Contents()
	for _, key := range contents.Keys() {
		for _, v := range contents.Get(key) {
			fmt.Fprintf(stdout, "%s: %s\n", key, v)
		}
	}
}

// loadOptionalConfig loads and validates path, or returns the defaults with
// the environment applied when path is empty. Errors are printed to stderr.
func loadOptionalConfig(path string) (*config.Config, bool) {
	if path == "" {
		cfg := config.DefaultConfig()
		config.ApplyEnv(cfg)
		return cfg, true
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return nil, false
	}
	if errs := config.ValidateConfig(cfg); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(stderr, "Error: %v\n", e)
		}
		return nil, false
	}
	return cfg, true
}

func newLogger(cfg *config.Config) logging.Logger {
	return logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}
