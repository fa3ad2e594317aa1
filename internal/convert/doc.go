// Package convert wires LDIF parsing to output sinks.
//
// A Converter opens an input stream (plain, gzip or zstd compressed, or
// stdin), drives an ldif.Parser over it, and hands each record to a
// Sink. Sinks are provided for CSV, JSON Lines and normalized LDIF
// output.
package convert
