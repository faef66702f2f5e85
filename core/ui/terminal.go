// Package ui - Terminal user interface
// Styled CLI output with headers, tables, and warnings.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rivo/uniseg"
)

// Palette used for styled output
const (
	Cyan   = "#22d3ee"
	Green  = "#4ade80"
	Yellow = "#facc15"
	Blue   = "#60a5fa"
)

// Writer is the UI output destination
type Writer struct {
	out       *termenv.Output
	verbosity int
}

// NewWriter creates a UI writer. With noColor set, or when out is not a
// terminal, everything is written as plain text.
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	var opts []termenv.OutputOption
	if noColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &Writer{
		out:       termenv.NewOutput(out, opts...),
		verbosity: 1,
	}
}

// SetVerbosity sets output verbosity (0=quiet, 1=normal, 2=verbose)
func (w *Writer) SetVerbosity(level int) {
	w.verbosity = level
}

func (w *Writer) style(text, color string, bold bool) string {
	s := w.out.String(text)
	if color != "" {
		s = s.Foreground(w.out.Color(color))
	}
	if bold {
		s = s.Bold()
	}
	return s.String()
}

// Println writes a line with newline
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("")
	w.Println("%s", w.style("━━━ "+title+" ━━━", Cyan, true))
	w.Println("")
}

// SubHeader prints a subsection header
func (w *Writer) SubHeader(title string) {
	w.Println("%s", w.style("▸ "+title, "", true))
}

// Field prints an indented label/value pair
func (w *Writer) Field(label, value string) {
	w.Println("  %s %s", w.style(label+":", Blue, false), value)
}

// Success prints a success message
func (w *Writer) Success(format string, args ...interface{}) {
	w.Println("%s%s", w.style("✓ ", Green, false), fmt.Sprintf(format, args...))
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...interface{}) {
	w.Println("%s%s", w.style("⚠ ", Yellow, false), fmt.Sprintf(format, args...))
}

// Info prints an info message
func (w *Writer) Info(format string, args ...interface{}) {
	if w.verbosity < 1 {
		return
	}
	w.Println("%s%s", w.style("ℹ ", Blue, false), fmt.Sprintf(format, args...))
}

// Debug prints a debug message
func (w *Writer) Debug(format string, args ...interface{}) {
	if w.verbosity < 2 {
		return
	}
	w.Println("  %s", w.out.String(fmt.Sprintf(format, args...)).Faint().String())
}

// Table renders a table
type Table struct {
	w       *Writer
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = uniseg.StringWidth(h)
	}
	return &Table{
		w:       w,
		headers: headers,
		widths:  widths,
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if n := uniseg.StringWidth(row[i]); n > t.widths[i] {
			t.widths[i] = n
		}
	}
	t.rows = append(t.rows, row)
}

func (t *Table) line(cells []string) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c + strings.Repeat(" ", t.widths[i]-uniseg.StringWidth(c))
	}
	return strings.TrimRight(strings.Join(parts, " │ "), " ")
}

// Render prints the table
func (t *Table) Render() {
	t.w.Println("%s", t.w.style(t.line(t.headers), "", true))

	sep := make([]string, len(t.widths))
	for i, w := range t.widths {
		sep[i] = strings.Repeat("─", w)
	}
	t.w.Println("%s", strings.Join(sep, "─┼─"))

	for _, row := range t.rows {
		t.w.Println("%s", t.line(row))
	}
}
