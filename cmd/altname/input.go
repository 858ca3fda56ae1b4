package main

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/achenxu/botan/internal/config"
)

var (
	errEmptyInput   = errors.New("empty input")
	errUnknownInput = errors.New("input is not PEM, hex, base64 or DER")
)

// loadInput reads path, or stdin for "" and "-", and returns DER bytes.
// An empty inform detects the representation.
func loadInput(path, inform string) ([]byte, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	if inform == "" {
		return decodeInput(data)
	}
	return decodeInputAs(data, inform)
}

// decodeInput detects the input representation: binary data is returned
// unchanged, then PEM, hex and base64 are tried in that order. Text that is
// valid as both hex and base64 is read as hex; use decodeInputAs to force a
// format.
func decodeInput(data []byte) ([]byte, error) {
	text := bytes.TrimSpace(data)
	if len(text) == 0 {
		return nil, errEmptyInput
	}
	if !isText(text) {
		return data, nil
	}

	if block, _ := pem.Decode(text); block != nil {
		return block.Bytes, nil
	}

	compact := compactText(text)
	if b, err := hex.DecodeString(compact); err == nil {
		return b, nil
	}
	if b, err := base64.StdEncoding.DecodeString(compact); err == nil {
		return b, nil
	}
	return nil, errUnknownInput
}

// decodeInputAs decodes data in the given format.
func decodeInputAs(data []byte, format string) ([]byte, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errEmptyInput
	}

	switch format {
	case config.FormatDER:
		return data, nil
	case config.FormatPEM:
		block, _ := pem.Decode(data)
		if block == nil {
			return nil, errors.New("no PEM block found")
		}
		return block.Bytes, nil
	case config.FormatHex:
		b, err := hex.DecodeString(compactText(data))
		if err != nil {
			return nil, fmt.Errorf("invalid hex input: %w", err)
		}
		return b, nil
	case config.FormatBase64:
		b, err := base64.StdEncoding.DecodeString(compactText(data))
		if err != nil {
			return nil, fmt.Errorf("invalid base64 input: %w", err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unsupported input format %q", format)
	}
}

// compactText drops whitespace and the colons of "30:03:..." style hex.
func compactText(text []byte) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n', ':':
			return -1
		}
		return r
	}, string(text))
}

func isText(b []byte) bool {
	for _, c := range b {
		if c == '\n' || c == '\r' || c == '\t' {
			continue
		}
		if c < 0x20 || c > 0x7E {
			return false
		}
	}
	return true
}

// formatOutput renders data in the requested output format.
func formatOutput(format, label string, data []byte) ([]byte, error) {
	switch format {
	case config.FormatHex:
		return []byte(strings.ToUpper(hex.EncodeToString(data)) + "\n"), nil
	case config.FormatBase64:
		return []byte(base64.StdEncoding.EncodeToString(data) + "\n"), nil
	case config.FormatPEM:
		return pem.EncodeToMemory(&pem.Block{Type: label, Bytes: data}), nil
	case config.FormatDER:
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}
