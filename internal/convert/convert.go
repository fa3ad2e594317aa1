package convert

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/Q24/ldif2csv/internal/logging"
	"github.com/Q24/ldif2csv/pkg/ldif"
)

// Sink consumes parsed records and flushes buffered output once the
// input is exhausted.
type Sink interface {
	ldif.Handler

	// Flush writes out anything the sink has buffered.
	Flush() error
}

// Converter runs LDIF inputs through a parser into a sink.
type Converter struct {
	log logging.Logger
}

// New creates a Converter logging through log.
func New(log logging.Logger) *Converter {
	if log == nil {
		log = logging.NewNop()
	}
	return &Converter{log: log}
}

// Run parses the LDIF input at path into sink and returns the number of
// records dispatched. path follows the Open conventions.
func (c *Converter) Run(path string, sink Sink, opts *ldif.Options) (int, error) {
	in, err := Open(path)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	start := time.Now()
	parser := ldif.NewParser(in, sink, opts)

	if err := parser.Parse(); err != nil {
		return parser.RecordsRead(), fmt.Errorf("parse %s: %w", path, err)
	}
	if err := sink.Flush(); err != nil {
		return parser.RecordsRead(), fmt.Errorf("flush output: %w", err)
	}

	c.log.Info("conversion finished",
		"input", path,
		"records", parser.RecordsRead(),
		"duration", time.Since(start).Round(time.Millisecond))

	return parser.RecordsRead(), nil
}

// Open opens path for reading. "-" means stdin. Files ending in .gz or
// .zst are decompressed transparently. The caller closes the returned
// stream; closing also closes the underlying file.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("open gzip %s: %w", path, err)
		}
		return &stackedCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("open zstd %s: %w", path, err)
		}
		return &stackedCloser{Reader: zr, closers: []io.Closer{zr.IOReadCloser(), f}}, nil
	default:
		return f, nil
	}
}

// stackedCloser closes a decompressor and its underlying file in order.
type stackedCloser struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedCloser) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
