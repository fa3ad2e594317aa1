// Package ldif parses LDIF (LDAP Data Interchange Format, RFC 2849) text
// streams into directory records.
//
// # Overview
//
// The package provides:
//
//   - A streaming Parser that unfolds continuation lines, decodes base64
//     values, skips comments, and dispatches one record per dn: boundary
//   - A Handler extension point for consuming completed records
//   - A RecordList handler that collects all records into a slice
//   - DN syntax validation and the RFC 2849 safe-string predicate
//   - A Writer that emits records back out as LDIF text
//
// # Parsing
//
// Implement Handler to receive records as they are parsed:
//
//	parser := ldif.NewParser(file, handler, &ldif.Options{
//	    IgnoredAttrTypes: []string{"userPassword"},
//	    MaxEntries:       1000,
//	})
//	if err := parser.Parse(); err != nil {
//	    // duplicate dn:, invalid DN syntax, bad base64, ...
//	}
//
// Or collect everything with a RecordList:
//
//	list := &ldif.RecordList{}
//	parser := ldif.NewParser(file, list, nil)
//	err := parser.Parse()
//
// # Value encodings
//
// Attribute lines use one of three encodings:
//
//	attr: value      plain value, leading whitespace stripped
//	attr:: dmFsdWU=  base64-encoded value
//	attr:< file:///  URL reference (dereferencing is disabled; the line
//	                 is skipped and produces no attribute)
//
// # Limits
//
// The parser validates changetype: tokens but does not apply change
// records, and performs no schema validation beyond DN syntax.
package ldif
