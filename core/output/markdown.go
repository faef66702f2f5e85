package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"home-load/core/advisor"
	"home-load/core/types"
)

// MarkdownFormatter writes a markdown report, optionally rendered for a terminal
type MarkdownFormatter struct {
	render  bool
	details bool
}

// NewMarkdownFormatter creates the markdown formatter
func NewMarkdownFormatter(render, details bool) *MarkdownFormatter {
	return &MarkdownFormatter{render: render, details: details}
}

// Format returns FormatMarkdown
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// Render writes the report
func (f *MarkdownFormatter) Render(w io.Writer, s *types.Summary) error {
	md := f.document(s)
	if f.render {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
		if err != nil {
			return fmt.Errorf("markdown renderer: %w", err)
		}
		if md, err = r.Render(md); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
	}
	_, err := io.WriteString(w, md)
	return err
}

func (f *MarkdownFormatter) document(s *types.Summary) string {
	var b strings.Builder

	b.WriteString("# Home Load Estimation\n\n")
	b.WriteString("## Room-wise Load Summary\n\n")
	b.WriteString("| Room | Load (kW) | Current (A) | Circuit Breaker | Cable Size |\n")
	b.WriteString("|---|---:|---:|---|---|\n")
	for _, r := range s.Rooms {
		fmt.Fprintf(&b, "| %s | %.2f | %.2f | %s | %s |\n", escapeCell(r.Label), r.LoadKw, r.Amperes, r.Breaker, r.Cable)
	}
	b.WriteString("\n")

	for _, r := range s.Rooms {
		if r.Overload {
			fmt.Fprintf(&b, "> **%s:** %s\n\n", escapeCell(r.Label), advisor.OverloadMessage)
		}
	}

	if f.details {
		for _, r := range s.Rooms {
			if len(r.Lines) == 0 {
				continue
			}
			fmt.Fprintf(&b, "### %s\n\n", r.Label)
			b.WriteString("| Appliance | Qty | Rated kW | Load kW |\n|---|---:|---:|---:|\n")
			for _, l := range r.Lines {
				fmt.Fprintf(&b, "| %s | %d | %.3f | %.3f |\n", escapeCell(l.Appliance), l.Quantity, l.RatedKw, l.LoadKw)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("## Total Summary\n\n")
	fmt.Fprintf(&b, "- **Total Load:** %.2f kW (%.2f A)\n", s.TotalLoadKw, s.TotalAmperes)
	fmt.Fprintf(&b, "- **Main Circuit Breaker:** %s\n", s.MainBreaker)
	fmt.Fprintf(&b, "- **Main Cable Size:** %s\n", s.MainCable)
	fmt.Fprintf(&b, "- **Estimated Monthly Energy Cost:** %s (at %s/unit)\n", Money(s.Currency, s.MonthlyCost), Money(s.Currency, s.UnitCost))

	return b.String()
}

// escapeCell keeps pipes in user-supplied labels from breaking table rows
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
