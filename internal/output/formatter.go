package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
	labelColor   = color.New(color.Bold)
)

// Printer writes command output to one writer.
type Printer struct {
	w io.Writer
}

// NewPrinter returns a Printer writing to w, or stdout when w is nil.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{w: w}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// JSON outputs data as indented JSON
func (p *Printer) JSON(data interface{}) error {
	encoder := json.NewEncoder(p.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Table outputs data as a formatted table
func (p *Printer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	line := func(cells []string) {
		out := make([]string, len(headers))
		for i := range headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			out[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		fmt.Fprintln(p.w, strings.TrimRight(strings.Join(out, "  "), " "))
	}

	line(headers)
	sep := make([]string, len(headers))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}
	line(sep)
	for _, row := range rows {
		line(row)
	}
}

// Field prints an aligned "label: value" line.
func (p *Printer) Field(label string, value interface{}) {
	_, _ = labelColor.Fprintf(p.w, "%-16s", label+":")
	fmt.Fprintf(p.w, "%v\n", value)
}

// Success prints a success message
func (p *Printer) Success(format string, args ...interface{}) {
	_, _ = successColor.Fprintf(p.w, "✓ "+format+"\n", args...)
}

// Error prints an error message
func (p *Printer) Error(format string, args ...interface{}) {
	_, _ = errorColor.Fprintf(p.w, "✗ "+format+"\n", args...)
}

// Warn prints a warning message
func (p *Printer) Warn(format string, args ...interface{}) {
	_, _ = warnColor.Fprintf(p.w, "! "+format+"\n", args...)
}

// Info prints an info message
func (p *Printer) Info(format string, args ...interface{}) {
	_, _ = infoColor.Fprintf(p.w, "→ "+format+"\n", args...)
}

// Print prints a plain message
func (p *Printer) Print(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

var std = NewPrinter(nil)

// JSON outputs data as JSON on stdout
func JSON(data interface{}) error { return std.JSON(data) }

// Table outputs a table on stdout
func Table(headers []string, rows [][]string) { std.Table(headers, rows) }

// Success prints a success message on stdout
func Success(format string, args ...interface{}) { std.Success(format, args...) }

// Error prints an error message on stdout
func Error(format string, args ...interface{}) { std.Error(format, args...) }

// Warn prints a warning message on stdout
func Warn(format string, args ...interface{}) { std.Warn(format, args...) }

// Info prints an info message on stdout
func Info(format string, args ...interface{}) { std.Info(format, args...) }

// Print prints a plain message on stdout
func Print(format string, args ...interface{}) { std.Print(format, args...) }
