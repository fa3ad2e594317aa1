package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

// Level represents the logging level.
type Level int

const (
	// LevelDebug is the most verbose level.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel parses a string into a Level. Unknown strings map to
// LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger is the interface for structured logging.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keysAndValues ...any)
	// Info logs an info message with optional key-value pairs.
	Info(msg string, keysAndValues ...any)
	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keysAndValues ...any)
	// Error logs an error message with optional key-value pairs.
	Error(msg string, keysAndValues ...any)
	// With returns a logger that includes the given fields on every
	// message.
	With(keysAndValues ...any) Logger
}

// Config holds the logger configuration.
type Config struct {
	// Level is one of debug, info, warn, error. Defaults to info.
	Level string
	// Format is "text" or "json". Defaults to text.
	Format string
	// Output is the destination. Defaults to os.Stderr.
	Output io.Writer
}

// field is one contextual key-value pair. Fields keep their attach
// order in the output.
type field struct {
	key   string
	value any
}

type logger struct {
	level  Level
	json   bool
	mu     *sync.Mutex
	out    io.Writer
	fields []field
}

// New creates a Logger from cfg.
func New(cfg Config) Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	return &logger{
		level: ParseLevel(cfg.Level),
		json:  strings.ToLower(cfg.Format) == "json",
		mu:    &sync.Mutex{},
		out:   out,
	}
}

// NewNop creates a logger that discards all output.
func NewNop() Logger {
	return nopLogger{}
}

func (l *logger) Debug(msg string, keysAndValues ...any) { l.log(LevelDebug, msg, keysAndValues) }
func (l *logger) Info(msg string, keysAndValues ...any)  { l.log(LevelInfo, msg, keysAndValues) }
func (l *logger) Warn(msg string, keysAndValues ...any)  { l.log(LevelWarn, msg, keysAndValues) }
func (l *logger) Error(msg string, keysAndValues ...any) { l.log(LevelError, msg, keysAndValues) }

func (l *logger) With(keysAndValues ...any) Logger {
	return &logger{
		level:  l.level,
		json:   l.json,
		mu:     l.mu,
		out:    l.out,
		fields: append(append([]field(nil), l.fields...), pairs(keysAndValues)...),
	}
}

func (l *logger) log(level Level, msg string, keysAndValues []any) {
	if level < l.level {
		return
	}

	fields := append(append([]field(nil), l.fields...), pairs(keysAndValues)...)
	ts := time.Now().UTC().Format(time.RFC3339)

	var line string
	if l.json {
		line = formatJSON(ts, level, msg, fields)
	} else {
		line = formatText(ts, level, msg, fields)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, line)
}

// pairs converts a flat key-value list into fields, skipping non-string
// keys and a trailing key without a value.
func pairs(keysAndValues []any) []field {
	fields := make([]field, 0, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields = append(fields, field{key: key, value: keysAndValues[i+1]})
	}
	return fields
}

func formatText(ts string, level Level, msg string, fields []field) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] %s", ts, level, msg)
	for _, f := range fields {
		fmt.Fprintf(&b, " %s=%v", f.key, f.value)
	}
	return b.String()
}

func formatJSON(ts string, level Level, msg string, fields []field) string {
	entry := make(map[string]any, len(fields)+3)
	entry["ts"] = ts
	entry["level"] = level.String()
	entry["msg"] = msg
	for _, f := range fields {
		entry[f.key] = f.value
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Sprintf(`{"ts":%q,"level":"error","msg":"failed to marshal log entry"}`, ts)
	}
	return string(data)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
func (nopLogger) With(...any) Logger   { return nopLogger{} }
