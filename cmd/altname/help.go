package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage information to the given writer.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `altname - X.509 alternative name encoder and decoder

Usage:
  altname <command> [options]

Commands:
  encode      Build an alternative name extension from a config file
  decode      Decode an alternative name or extension
  dump        Print the TLV structure of BER/DER data
  version     Show version information

Use "altname <command> -h" for more information about a command.
`)
}

// printEncodeUsage prints the encode command usage.
func printEncodeUsage(w io.Writer) {
	fmt.Fprint(w, `Build an alternative name extension from a config file

Usage:
  altname encode -config <file> [options]

Options:
  -config string
        Path to TOML configuration file (required)
  -format string
        Output format: hex, base64, pem, der (overrides config)
  -out string
        Output file path (default stdout)
  -value
        Write only the GeneralNames value, without the Extension wrapper
  -h, -help
        Show this help message

Environment Variables:
  ALTNAME_LOG_LEVEL        Override log level
`)
}

// printDecodeUsage prints the decode command usage.
func printDecodeUsage(w io.Writer) {
	fmt.Fprint(w, `Decode an alternative name or extension

Input may be PEM, hex, base64 or raw DER.

Usage:
  altname decode [options]

Options:
  -config string
        Path to TOML configuration file ([encoding] strict and [logging])
  -in string
        Input file path (default stdin)
  -inform string
        Input format: pem, hex, base64, der (default: detect)
  -strict
        Reject input that is not valid DER (also set by [encoding] strict)
  -extension
        Input is a complete X.509 Extension
  -h, -help
        Show this help message
`)
}

// printDumpUsage prints the dump command usage.
func printDumpUsage(w io.Writer) {
	fmt.Fprint(w, `Print the TLV structure of BER/DER data

Usage:
  altname dump [options]

Options:
  -config string
        Path to TOML configuration file ([encoding] strict and [logging])
  -in string
        Input file path (default stdin)
  -inform string
        Input format: pem, hex, base64, der (default: detect)
  -strict
        Reject input that is not valid DER (also set by [encoding] strict)
  -width int
        Bytes per hex line (default 16)
  -h, -help
        Show this help message
`)
}

// printVersionUsage prints the version command usage.
func printVersionUsage(w io.Writer) {
	fmt.Fprint(w, `Show version information

Usage:
  altname version [options]

Options:
  -short
        Show only version number
  -h, -help
        Show this help message
`)
}
