// Package logging provides structured logging for the ldif2csv tool.
//
// # Overview
//
// The logging package provides a small structured logging interface with:
//
//   - Four levels (debug, info, warn, error)
//   - Text and JSON output formats
//   - Contextual key-value fields
//
// # Creating a Logger
//
//	logger := logging.New(logging.Config{
//	    Level:  "info",
//	    Format: "text",
//	    Output: os.Stderr,
//	})
//
//	logger.Info("conversion finished", "records", 1204, "duration", elapsed)
//
// For tests, use a no-op logger:
//
//	logger := logging.NewNop()
package logging
