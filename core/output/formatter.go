// Package output provides output formatting interfaces.
// This package produces human and machine-readable outputs.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"home-load/core/types"
	"home-load/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal report
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"

	// FormatXLSX is an Excel workbook
	FormatXLSX Format = "xlsx"
)

// Binary reports whether the format should not be written to a terminal
func (f Format) Binary() bool {
	return f == FormatXLSX
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given summary
	Render(w io.Writer, summary *types.Summary) error
}

// Options tune the built-in formatters
type Options struct {
	// Color enables terminal styling in the cli format
	Color bool

	// RenderMarkdown passes the markdown format through a terminal renderer
	RenderMarkdown bool

	// ShowDetails lists per-appliance lines under each room
	ShowDetails bool
}

// Registry manages formatter registration
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[Format]Formatter)}
}

// NewDefaultRegistry creates a registry holding every built-in formatter
func NewDefaultRegistry(opts Options) *Registry {
	r := NewRegistry()
	_ = r.Register(NewCLIFormatter(opts.Color, opts.ShowDetails))
	_ = r.Register(NewJSONFormatter())
	_ = r.Register(NewMarkdownFormatter(opts.RenderMarkdown, opts.ShowDetails))
	_ = r.Register(NewXLSXFormatter())
	return r
}

// Register adds a formatter to the registry
func (r *Registry) Register(f Formatter) error {
	if _, exists := r.formatters[f.Format()]; exists {
		return fmt.Errorf("formatter %q already registered", f.Format())
	}
	r.formatters[f.Format()] = f
	return nil
}

// Get returns the formatter for a format name
func (r *Registry) Get(name string) (Formatter, error) {
	f, ok := r.formatters[Format(strings.ToLower(name))]
	if !ok {
		return nil, errors.NotSupported(fmt.Sprintf("output format %q (available: %s)", name, strings.Join(r.Names(), ", ")))
	}
	return f, nil
}

// Names returns the registered format names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.formatters))
	for f := range r.formatters {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// Money renders an amount with the currency prefix and two decimals
func Money(c types.Currency, amount decimal.Decimal) string {
	return c.Symbol() + amount.StringFixed(2)
}
