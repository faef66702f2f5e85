// Package cmd - catalog listing commands
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"home-load/core/advisor"
	"home-load/core/catalog"
	"home-load/core/load"
	"home-load/core/ui"
	"home-load/internal/config"
)

// appliancesCmd lists the appliance catalog
var appliancesCmd = &cobra.Command{
	Use:   "appliances",
	Short: "List the known appliances and their rated power",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := newWriter(cmd)
		w.Header("Appliances")

		table := w.NewTable("Appliance", "Rated (kW)", "Description")
		for _, spec := range catalog.Default().All() {
			table.AddRow(spec.Name, fmt.Sprintf("%.3f", spec.RatedKw), spec.Description)
		}
		table.Render()
		return nil
	},
}

// templatesCmd lists the room templates with their default load
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the room templates and what they draw by default",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := newWriter(cmd)
		tc := catalog.DefaultTemplates()
		calc := load.NewCalculator(nil)

		for _, name := range tc.Names() {
			t, err := tc.Lookup(name)
			if err != nil {
				return err
			}
			kw, err := calc.TotalLoad(t.Quantities())
			if err != nil {
				return err
			}
			rec := advisor.ForLoad(kw)

			lines, err := calc.Breakdown(t.Quantities())
			if err != nil {
				return err
			}

			w.SubHeader(t.Name)
			for _, e := range t.Entries {
				w.Field(e.Appliance, fmt.Sprintf("%d", e.Quantity))
			}
			for _, l := range lines {
				w.Debug("%s: %d x %.3f kW = %.3f kW", l.Appliance, l.Quantity, l.RatedKw, l.LoadKw)
			}
			w.Field("Load", fmt.Sprintf("%.2f kW (%.2f A)", kw, rec.Amperes))
			w.Field("Breaker", rec.Breaker())
			w.Field("Cable", rec.Cable())
			w.Println("")
		}
		w.Info("Choose %q in estimate to enter every appliance by hand", catalog.Custom)
		return nil
	},
}

func newWriter(cmd *cobra.Command) *ui.Writer {
	color := config.Get().Output.Color && term.IsTerminal(int(os.Stdout.Fd()))
	w := ui.NewWriter(cmd.OutOrStdout(), !color)
	if verbose {
		w.SetVerbosity(2)
	}
	return w
}
