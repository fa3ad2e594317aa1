package ldif

import (
	"encoding/base64"
	"fmt"
	"io"
)

// maxLineWidth is the RFC 2849 output line length before folding.
const maxLineWidth = 76

// Writer emits records as LDIF text. Values that fail the safe-string
// rules are base64-encoded, lines longer than 76 columns are folded with
// single-space continuations, and records are separated by one blank
// line. Output written through a Writer parses back to the same records.
type Writer struct {
	w       io.Writer
	lineSep string

	recordsWritten int
}

// NewWriter creates a Writer emitting to w with lineSep as the line
// separator. An empty lineSep defaults to "\n".
func NewWriter(w io.Writer, lineSep string) *Writer {
	if lineSep == "" {
		lineSep = "\n"
	}
	return &Writer{w: w, lineSep: lineSep}
}

// RecordsWritten returns the number of records written so far.
func (w *Writer) RecordsWritten() int {
	return w.recordsWritten
}

// WriteRecord writes one record: its dn: line followed by every
// attribute value in entry order, then a blank separator line.
func (w *Writer) WriteRecord(dn string, entry *Entry) error {
	if err := w.writeAttr("dn", []byte(dn)); err != nil {
		return err
	}

	for _, attrType := range entry.Types() {
		for _, value := range entry.Get(attrType) {
			if err := w.writeAttr(attrType, value); err != nil {
				return err
			}
		}
	}

	if _, err := io.WriteString(w.w, w.lineSep); err != nil {
		return err
	}

	w.recordsWritten++
	return nil
}

// WriteRecords writes records in order.
func (w *Writer) WriteRecords(records []Record) error {
	for _, record := range records {
		if err := w.WriteRecord(record.DN, record.Entry); err != nil {
			return err
		}
	}
	return nil
}

// writeAttr writes one folded attribute line, choosing plain or base64
// encoding by the safe-string rules.
func (w *Writer) writeAttr(attrType string, value []byte) error {
	var line string
	if NeedsBase64(value) {
		line = fmt.Sprintf("%s:: %s", attrType, base64.StdEncoding.EncodeToString(value))
	} else {
		line = fmt.Sprintf("%s: %s", attrType, value)
	}
	return w.writeFolded(line)
}

// writeFolded writes line, folding at maxLineWidth columns. Continuation
// lines carry the single leading space the parser strips back out.
func (w *Writer) writeFolded(line string) error {
	width := maxLineWidth
	for len(line) > width {
		if _, err := io.WriteString(w.w, line[:width]+w.lineSep+" "); err != nil {
			return err
		}
		line = line[width:]
		// Continuation lines lose one column to the leading space.
		width = maxLineWidth - 1
	}
	_, err := io.WriteString(w.w, line+w.lineSep)
	return err
}
