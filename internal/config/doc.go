// Package config loads ldif2csv configuration.
//
// Settings are resolved in order of precedence: command-line flags,
// LDIF2CSV_* environment variables, an optional ldif2csv.yaml file
// (current directory or ~/.config/ldif2csv), then built-in defaults.
package config
