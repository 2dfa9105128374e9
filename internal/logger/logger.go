// Package logger provides leveled diagnostic logging for sitemux.
//
// Log lines go to stderr and never influence what a client receives: the
// dispatch engine reports failures to clients only through HTTP status and
// body, and uses this package to explain why.
//
// # Output Format
//
//	[LEVEL] YYYY-MM-DD HH:MM:SS message key=value ...
//	[DEBUG] 2026-02-03 10:30:45 dispatch host=example.com outcome=page path=/
//
// Field keys are sorted so lines are stable across runs.
//
// # Usage
//
//	logger.Init(verbose)
//	logger.Warn("config %s: %v", path, err)
//
//	log := logger.With(logger.Fields{"request_id": id, "host": host})
//	log.Debug("static rule %s matched", prefix)
//	log.Info("dispatched", logger.Fields{"outcome": "redirect"})
package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level represents a logging severity level.
type Level int

// Log levels from least to most severe.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Fields are key/value pairs appended to a log line.
type Fields map[string]interface{}

// merge returns a new map holding f overlaid with extra.
func (f Fields) merge(extra Fields) Fields {
	out := make(Fields, len(f)+len(extra))
	for k, v := range f {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// Logger writes leveled lines to an output, safe for concurrent use.
type Logger struct {
	mu     sync.Mutex
	level  Level
	output io.Writer
	now    func() time.Time
}

var std = &Logger{
	level:  LevelWarn,
	output: os.Stderr,
	now:    time.Now,
}

// Init sets the global level from the --verbose flag.
func Init(verbose bool) {
	if verbose {
		SetLevel(LevelDebug)
		return
	}
	SetLevel(LevelWarn)
}

// SetLevel sets the minimum log level for the global logger.
func SetLevel(level Level) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.level = level
}

// SetOutput redirects the global logger. A nil writer restores stderr.
func SetOutput(w io.Writer) {
	std.mu.Lock()
	defer std.mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	std.output = w
}

// GetLevel returns the current log level.
func GetLevel() Level {
	std.mu.Lock()
	defer std.mu.Unlock()
	return std.level
}

// Enabled reports whether lines at level would be written.
func Enabled(level Level) bool {
	return level >= GetLevel()
}

func (l *Logger) write(level Level, msg string, fields Fields) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	var b strings.Builder
	b.WriteString("[")
	b.WriteString(level.String())
	b.WriteString("] ")
	b.WriteString(l.now().Format("2006-01-02 15:04:05"))
	b.WriteString(" ")
	b.WriteString(msg)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	b.WriteString("\n")

	_, _ = io.WriteString(l.output, b.String())
}

// Entry is a logger bound to a fixed set of fields, typically one request.
type Entry struct {
	fields Fields
}

// With returns an Entry that adds fields to every line it writes.
func With(fields Fields) *Entry {
	return &Entry{fields: Fields{}.merge(fields)}
}

// With returns a child entry carrying the receiver's fields plus fields.
func (e *Entry) With(fields Fields) *Entry {
	return &Entry{fields: e.fields.merge(fields)}
}

// Debug logs a formatted debug line with the entry's fields.
func (e *Entry) Debug(format string, args ...interface{}) {
	std.write(LevelDebug, fmt.Sprintf(format, args...), e.fields)
}

// Info logs msg with the entry's fields and any extra fields.
func (e *Entry) Info(msg string, extra Fields) {
	std.write(LevelInfo, msg, e.fields.merge(extra))
}

// Warn logs a formatted warning with the entry's fields.
func (e *Entry) Warn(format string, args ...interface{}) {
	std.write(LevelWarn, fmt.Sprintf(format, args...), e.fields)
}

// Debug logs a debug message.
func Debug(format string, args ...interface{}) {
	std.write(LevelDebug, fmt.Sprintf(format, args...), nil)
}

// Info logs an informational message.
func Info(format string, args ...interface{}) {
	std.write(LevelInfo, fmt.Sprintf(format, args...), nil)
}

// Warn logs a warning message.
func Warn(format string, args ...interface{}) {
	std.write(LevelWarn, fmt.Sprintf(format, args...), nil)
}

// Error logs an error message.
func Error(format string, args ...interface{}) {
	std.write(LevelError, fmt.Sprintf(format, args...), nil)
}

// DebugFields logs a debug message with structured fields.
func DebugFields(msg string, fields Fields) {
	std.write(LevelDebug, msg, fields)
}

// LogError logs err with a context message; nil errors are ignored.
func LogError(err error, msg string) {
	if err == nil {
		return
	}
	std.write(LevelError, fmt.Sprintf("%s: %v", msg, err), nil)
}
