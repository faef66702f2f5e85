package output

import (
	"fmt"
	"io"

	"home-load/core/advisor"
	"home-load/core/types"
	"home-load/core/ui"
)

// CLIFormatter renders the room-by-room report for a terminal
type CLIFormatter struct {
	color   bool
	details bool
}

// NewCLIFormatter creates the terminal formatter
func NewCLIFormatter(color, details bool) *CLIFormatter {
	return &CLIFormatter{color: color, details: details}
}

// Format returns FormatCLI
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the report
func (f *CLIFormatter) Render(w io.Writer, s *types.Summary) error {
	out := ui.NewWriter(w, !f.color)

	out.Header("Room-wise Load Summary")
	for _, room := range s.Rooms {
		out.SubHeader(room.Label)
		out.Field("Load", fmt.Sprintf("%.2f kW (%.2f A)", room.LoadKw, room.Amperes))
		out.Field("Suggested Circuit Breaker", room.Breaker)
		out.Field("Suggested Cable Size", room.Cable)
		if room.Overload {
			out.Warning(advisor.OverloadMessage)
		}
		if f.details && len(room.Lines) > 0 {
			tbl := out.NewTable("Appliance", "Qty", "Rated kW", "Load kW")
			for _, l := range room.Lines {
				tbl.AddRow(l.Appliance, fmt.Sprintf("%d", l.Quantity), fmt.Sprintf("%.3f", l.RatedKw), fmt.Sprintf("%.3f", l.LoadKw))
			}
			tbl.Render()
		}
		out.Println("")
	}

	out.Header("Total Summary")
	out.Field("Total Load", fmt.Sprintf("%.2f kW (%.2f A)", s.TotalLoadKw, s.TotalAmperes))
	out.Field("Main Circuit Breaker", s.MainBreaker)
	out.Field("Main Cable Size", s.MainCable)
	out.Field("Estimated Monthly Energy Cost",
		fmt.Sprintf("%s (at %s/unit)", Money(s.Currency, s.MonthlyCost), Money(s.Currency, s.UnitCost)))
	if s.Overload {
		out.Warning(advisor.OverloadMessage)
	}
	return nil
}
