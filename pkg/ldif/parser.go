package ldif

import (
	"bufio"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Parser errors.
var (
	ErrDuplicateDN         = errors.New("two dn: lines in one record")
	ErrInvalidDN           = errors.New("invalid distinguished name")
	ErrChangeTypeBeforeDN  = errors.New("changetype: before dn: line")
	ErrDuplicateChangeType = errors.New("two changetype: lines in one record")
	ErrInvalidChangeType   = errors.New("invalid changetype value")
	ErrInvalidBase64       = errors.New("invalid base64 encoding")
)

// validChangeTypes are the change record markers accepted on a
// changetype: line. Matching is case-sensitive.
var validChangeTypes = map[string]struct{}{
	"add":    {},
	"delete": {},
	"modify": {},
	"modrdn": {},
}

// Handler receives completed records from a Parser. Handle is invoked
// once per non-empty record, in input order, synchronously within Parse.
// A non-nil error aborts the parse and is returned by Parse unmodified.
type Handler interface {
	Handle(dn string, entry *Entry) error
}

// Options configures a Parser. The zero value is a valid configuration.
type Options struct {
	// IgnoredAttrTypes lists attribute types to drop silently.
	// Matching is case-insensitive.
	IgnoredAttrTypes []string

	// MaxEntries caps the number of records dispatched. Zero means
	// unlimited. The cap is checked before starting a new record, so
	// the record that reaches it is still completed and dispatched.
	MaxEntries int

	// ProcessURLSchemes is reserved. URL dereferencing of attr:< lines
	// is disabled; such lines never produce an attribute.
	ProcessURLSchemes []string

	// LineSep is the line separator used by LDIF producers such as
	// Writer. The parser itself accepts \n and \r\n regardless.
	// Defaults to "\n".
	LineSep string
}

// Parser reads LDIF records from a line-oriented stream and dispatches
// them to a Handler. A Parser drives one stream to exhaustion; it is not
// re-entrant mid-stream and holds no state shared between instances.
type Parser struct {
	reader           *bufio.Reader
	handler          Handler
	ignoredAttrTypes map[string]struct{}
	maxEntries       int

	// line buffers the one physical line read ahead of the unfolder.
	line        string
	recordsRead int
}

// NewParser creates a Parser reading from r and dispatching to handler.
// opts may be nil for defaults. ProcessURLSchemes and LineSep are
// accepted for configuration parity but not consumed by the parser.
func NewParser(r io.Reader, handler Handler, opts *Options) *Parser {
	if opts == nil {
		opts = &Options{}
	}

	return &Parser{
		reader:           bufio.NewReader(r),
		handler:          handler,
		ignoredAttrTypes: lowerSet(opts.IgnoredAttrTypes),
		maxEntries:       opts.MaxEntries,
	}
}

// RecordsRead returns the number of records dispatched so far.
func (p *Parser) RecordsRead() int {
	return p.recordsRead
}

// Parse reads the stream to exhaustion, or until MaxEntries records have
// been dispatched, invoking the handler once per completed non-empty
// record. Records whose entry holds no attributes beyond dn/changetype
// are discarded without dispatch. Calling Parse again on an exhausted
// stream is a no-op.
func (p *Parser) Parse() error {
	line, err := p.readLine()
	if err != nil {
		return err
	}
	p.line = line

	for p.line != "" && (p.maxEntries == 0 || p.recordsRead < p.maxEntries) {
		if err := p.parseRecord(); err != nil {
			return err
		}
	}

	return nil
}

// parseRecord consumes attribute lines up to the next record boundary
// and dispatches the result when it carries any attributes.
func (p *Parser) parseRecord() error {
	var (
		dn         string
		dnSeen     bool
		changeType string
	)
	entry := NewEntry()

	for {
		attrType, value, end, err := p.nextAttr()
		if err != nil {
			return err
		}
		if end {
			break
		}
		if value == nil {
			// Malformed line or URL reference: no attribute produced.
			continue
		}

		switch attrType {
		case "dn":
			if dnSeen {
				return fmt.Errorf("%w (dn %q)", ErrDuplicateDN, dn)
			}
			if !IsDN(string(value)) {
				return fmt.Errorf("%w: %q", ErrInvalidDN, value)
			}
			dn = string(value)
			dnSeen = true
		case "changetype":
			if !dnSeen {
				return ErrChangeTypeBeforeDN
			}
			if changeType != "" {
				return fmt.Errorf("%w (changetype %q)", ErrDuplicateChangeType, changeType)
			}
			if _, ok := validChangeTypes[string(value)]; !ok {
				return fmt.Errorf("%w: %q", ErrInvalidChangeType, value)
			}
			changeType = string(value)
		default:
			if _, ok := p.ignoredAttrTypes[strings.ToLower(attrType)]; ok {
				continue
			}
			entry.Add(attrType, value)
		}
	}

	if entry.Len() > 0 {
		if err := p.handler.Handle(dn, entry); err != nil {
			return err
		}
		p.recordsRead++
	}

	return nil
}

// nextAttr parses one attribute type and value pair from the stream.
// end is true at a record boundary (blank line or end of stream). A nil
// value with end false means the line produced no attribute: it had no
// colon, or referenced a URL (dereferencing is disabled).
func (p *Parser) nextAttr() (attrType string, value []byte, end bool, err error) {
	line, err := p.unfoldLine()
	if err != nil {
		return "", nil, false, err
	}

	// Comments may themselves be folded, so skip them only after
	// unfolding.
	for line != "" && line[0] == '#' {
		line, err = p.unfoldLine()
		if err != nil {
			return "", nil, false, err
		}
	}

	if line == "" {
		return "", nil, true, nil
	}

	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		// Malformed line without a colon: treated as non-existent.
		return "", nil, false, nil
	}

	attrType = line[:colon]
	rest := line[colon+1:]

	switch {
	case strings.HasPrefix(rest, ":"):
		// attr:: base64-encoded value.
		decoded, derr := base64.StdEncoding.DecodeString(strings.TrimSpace(rest[1:]))
		if derr != nil {
			return "", nil, false, fmt.Errorf("%w: %v", ErrInvalidBase64, derr)
		}
		if decoded == nil {
			decoded = []byte{}
		}
		return attrType, decoded, false, nil
	case strings.HasPrefix(rest, "<"):
		// attr:< URL reference. Dereferencing is disabled, so the line
		// produces no attribute regardless of ProcessURLSchemes.
		return attrType, nil, false, nil
	case rest == "":
		// attr: at end of line is an explicit empty value, distinct
		// from "no attribute".
		return attrType, []byte{}, false, nil
	default:
		trimmed := strings.TrimLeft(rest, " \t")
		return attrType, append([]byte{}, trimmed...), false, nil
	}
}

// unfoldLine joins the buffered physical line with any continuation
// lines (leading space) into one logical line. The first physical line
// that does not continue the current one stays buffered for the next
// call.
func (p *Parser) unfoldLine() (string, error) {
	var unfolded strings.Builder
	unfolded.WriteString(stripLineSep(p.line))

	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	p.line = line

	for p.line != "" && p.line[0] == ' ' {
		unfolded.WriteString(stripLineSep(p.line[1:]))

		line, err = p.readLine()
		if err != nil {
			return "", err
		}
		p.line = line
	}

	return unfolded.String(), nil
}

// readLine reads one physical line including its terminator. It returns
// an empty string at end of stream; read errors propagate unmodified.
func (p *Parser) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return line, nil
}

// stripLineSep removes one trailing \r\n or \n, but no other trailing
// whitespace.
func stripLineSep(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	if strings.HasSuffix(s, "\n") {
		return s[:len(s)-1]
	}
	return s
}

// lowerSet builds a case-insensitive lookup set, normalizing keys to
// lowercase at insertion.
func lowerSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = struct{}{}
	}
	return set
}
