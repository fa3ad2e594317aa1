package convert

import (
	"encoding/base64"
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	json "github.com/goccy/go-json"

	"github.com/Q24/ldif2csv/pkg/ldif"
)

// ErrNoColumns is returned when a CSV sink is created without columns.
var ErrNoColumns = errors.New("csv output requires a column list")

// CSVSink writes one CSV row per record. The column list selects
// attribute types; the column name "dn" selects the record DN.
// Multi-valued attributes are joined with the value separator, absent
// attributes produce empty cells.
type CSVSink struct {
	w           *csv.Writer
	columns     []string
	valueSep    string
	wroteHeader bool
}

// NewCSVSink creates a CSVSink writing to w with the given columns.
// valueSep defaults to "|".
func NewCSVSink(w io.Writer, columns []string, valueSep string) (*CSVSink, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	if valueSep == "" {
		valueSep = "|"
	}
	return &CSVSink{
		w:        csv.NewWriter(w),
		columns:  columns,
		valueSep: valueSep,
	}, nil
}

// Handle writes the header on first call, then one row per record.
func (s *CSVSink) Handle(dn string, entry *ldif.Entry) error {
	if err := s.writeHeader(); err != nil {
		return err
	}

	row := make([]string, len(s.columns))
	for i, column := range s.columns {
		if column == "dn" {
			row[i] = dn
			continue
		}
		row[i] = strings.Join(entry.GetStrings(column), s.valueSep)
	}
	return s.w.Write(row)
}

// Flush writes the header if no record arrived, then flushes the CSV
// writer.
func (s *CSVSink) Flush() error {
	if err := s.writeHeader(); err != nil {
		return err
	}
	s.w.Flush()
	return s.w.Error()
}

func (s *CSVSink) writeHeader() error {
	if s.wroteHeader {
		return nil
	}
	s.wroteHeader = true
	return s.w.Write(s.columns)
}

// JSONSink writes one JSON object per record (JSON Lines). Each object
// carries "dn" plus one key per attribute type with a string array of
// values; values that are not valid UTF-8 are emitted base64-encoded.
type JSONSink struct {
	w io.Writer
}

// NewJSONSink creates a JSONSink writing to w.
func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{w: w}
}

// Handle writes one record as a JSON line.
func (s *JSONSink) Handle(dn string, entry *ldif.Entry) error {
	obj := make(map[string]any, entry.Len()+1)
	obj["dn"] = dn

	for _, attrType := range entry.Types() {
		values := entry.Get(attrType)
		out := make([]string, len(values))
		for i, value := range values {
			if utf8.Valid(value) {
				out[i] = string(value)
			} else {
				out[i] = base64.StdEncoding.EncodeToString(value)
			}
		}
		obj[attrType] = out
	}

	data, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	_, err = s.w.Write(append(data, '\n'))
	return err
}

// Flush is a no-op; JSONSink writes through.
func (s *JSONSink) Flush() error {
	return nil
}

// LDIFSink re-emits records as normalized LDIF: unfolded input comes
// out refolded at 76 columns with canonical value encodings.
type LDIFSink struct {
	w *ldif.Writer
}

// NewLDIFSink creates an LDIFSink writing to w with lineSep as the line
// separator.
func NewLDIFSink(w io.Writer, lineSep string) *LDIFSink {
	return &LDIFSink{w: ldif.NewWriter(w, lineSep)}
}

// Handle writes one record as LDIF text.
func (s *LDIFSink) Handle(dn string, entry *ldif.Entry) error {
	return s.w.WriteRecord(dn, entry)
}

// Flush is a no-op; LDIFSink writes through.
func (s *LDIFSink) Flush() error {
	return nil
}

// DiscardSink counts records without emitting anything. It backs the
// validate command.
type DiscardSink struct{}

// Handle drops the record.
func (DiscardSink) Handle(string, *ldif.Entry) error {
	return nil
}

// Flush is a no-op.
func (DiscardSink) Flush() error {
	return nil
}
