package output

import (
	"encoding/json"
	"io"

	"home-load/core/types"
)

// JSONFormatter writes the summary as indented JSON
type JSONFormatter struct{}

// NewJSONFormatter creates the JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format returns FormatJSON
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the summary
func (f *JSONFormatter) Render(w io.Writer, s *types.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(s)
}
