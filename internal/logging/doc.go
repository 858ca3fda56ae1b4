// Package logging provides structured logging for the altname tool.
//
// # Overview
//
// Logger is a small key-value interface backed by zerolog. It supports:
//
//   - Multiple log levels (debug, info, warn, error)
//   - Text (console) and JSON output formats
//   - Field-based contextual logging
//
// # Creating a Logger
//
// Create a logger with configuration:
//
//	logger := logging.New(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	    Output: "stderr",
//	})
//
// Or use defaults:
//
//	logger := logging.NewDefault() // Info level, text format, stderr
//
// For testing, use a no-op logger or capture output:
//
//	logger := logging.NewNop()
//	logger = logging.NewWithWriter(cfg, &buf)
//
// # Log Levels
//
//	logger.Debug("detailed debugging info", "key", "value")
//	logger.Info("informational message", "key", "value")
//	logger.Warn("warning message", "key", "value")
//	logger.Error("error message", "key", "value")
//
// Unknown level names parse as info.
//
// # Contextual Fields
//
//	extLogger := logger.WithFields("oid", "2.5.29.17")
//	extLogger.Debug("parsed extension")
//
// Values that implement error are logged with their message.
package logging
