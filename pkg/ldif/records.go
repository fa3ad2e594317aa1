package ldif

import "io"

// RecordList is a Handler that collects every record of an LDIF input
// into a single slice. It retains all records in memory, proportional to
// the input size; bounding that is the caller's concern.
type RecordList struct {
	// Records holds the collected records in input order.
	Records []Record
}

// Handle appends one record to the list.
func (l *RecordList) Handle(dn string, entry *Entry) error {
	l.Records = append(l.Records, Record{DN: dn, Entry: entry})
	return nil
}

// ParseLDIF parses all LDIF records from r and returns them in input
// order. ignoredAttrTypes and maxEntries behave as in Options.
//
// Deprecated: construct a Parser with a RecordList handler instead.
func ParseLDIF(r io.Reader, ignoredAttrTypes []string, maxEntries int) ([]Record, error) {
	list := &RecordList{}
	parser := NewParser(r, list, &Options{
		IgnoredAttrTypes: ignoredAttrTypes,
		MaxEntries:       maxEntries,
	})
	if err := parser.Parse(); err != nil {
		return nil, err
	}
	return list.Records, nil
}
