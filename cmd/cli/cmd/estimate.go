// Package cmd - estimate command
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"home-load/adapters/plan"
	"home-load/adapters/prompt"
	"home-load/core/catalog"
	"home-load/core/output"
	"home-load/core/session"
	"home-load/core/types"
	"home-load/core/ui"
	"home-load/internal/config"
	"home-load/internal/errors"
	"home-load/internal/logging"
)

var (
	planFile     string
	outputFormat string
	outFile      string
	showDetails  bool
	unitCost     float64
	hoursPerDay  float64
	noColor      bool
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate load, protection and monthly cost",
	Long: `Collect rooms and appliances, then report load, breaker, cable and cost.

Without --plan the rooms are collected interactively, which needs a terminal
on stdin. A plan file (.hcl, .yaml or .yml) describes the rooms up front.

Examples:
  homeload estimate
  homeload estimate --unit-cost 9.5
  homeload estimate --plan house.hcl --details
  homeload estimate --plan house.yaml --format json
  homeload estimate --plan house.yaml --format xlsx --out house.xlsx`,
	Args: cobra.NoArgs,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&planFile, "plan", "p", "", "plan file describing the rooms (.hcl, .yaml, .yml)")
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, markdown, xlsx)")
	estimateCmd.Flags().StringVarP(&outFile, "out", "o", "", "write the report to a file instead of stdout")
	estimateCmd.Flags().BoolVarP(&showDetails, "details", "d", false, "list the appliances of every room")
	estimateCmd.Flags().Float64Var(&unitCost, "unit-cost", 0, "cost per kWh (default from config)")
	estimateCmd.Flags().Float64Var(&hoursPerDay, "hours", 0, "daily usage hours of the full load (default from config)")
	estimateCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := *config.Get()
	if cmd.Flags().Changed("unit-cost") {
		if err := config.CheckUnitCost(unitCost); err != nil {
			return err
		}
		cfg.Estimate.UnitCost = unitCost
	}
	if cmd.Flags().Changed("hours") {
		if err := config.CheckHoursPerDay(hoursPerDay); err != nil {
			return err
		}
		cfg.Estimate.HoursPerDay = hoursPerDay
	}

	format := outputFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	registry := output.NewDefaultRegistry(output.Options{
		Color:          cfg.Output.Color && !noColor && outFile == "" && term.IsTerminal(int(os.Stdout.Fd())),
		RenderMarkdown: cfg.Output.RenderMarkdown && outFile == "",
		ShowDetails:    showDetails,
	})
	formatter, err := registry.Get(format)
	if err != nil {
		return err
	}
	if formatter.Format().Binary() && outFile == "" {
		return errors.InvalidInput("out", "the %s format needs --out", format)
	}

	req, err := collectRequest(ctx, cmd, &cfg)
	if err != nil {
		return err
	}

	logging.Debug("running session",
		zap.String("mode", string(req.Mode)),
		zap.Int("rooms", len(req.Rooms)),
		zap.String("format", format))

	summary, err := session.New(session.WithLogger(logging.Logger)).Run(ctx, req)
	if err != nil {
		return err
	}

	if outFile == "" {
		w := cmd.OutOrStdout()
		if req.Mode != session.ModePlan {
			fmt.Fprintln(w)
		}
		return formatter.Render(w, summary)
	}

	if err := writeReport(outFile, formatter, summary); err != nil {
		return err
	}
	logging.Info("report written", zap.String("path", outFile), zap.String("format", format))
	ui.NewWriter(cmd.ErrOrStderr(), !term.IsTerminal(int(os.Stderr.Fd()))).Success("Report written to %s", outFile)
	return nil
}

// writeReport renders to path. A failed render removes the partial file.
func writeReport(path string, formatter output.Formatter, summary *types.Summary) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Internal("failed to create "+path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Internal("failed to close "+path, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return formatter.Render(f, summary)
}

// collectRequest reads the rooms from the plan file or, on a terminal, from
// interactive prompts.
func collectRequest(ctx context.Context, cmd *cobra.Command, cfg *config.Config) (*session.Request, error) {
	if planFile != "" {
		p, err := plan.Load(planFile)
		if err != nil {
			return nil, err
		}
		// flags win over values in the plan
		if cmd.Flags().Changed("unit-cost") {
			p.UnitCost = &cfg.Estimate.UnitCost
		}
		if cmd.Flags().Changed("hours") {
			p.HoursPerDay = &cfg.Estimate.HoursPerDay
		}
		return p.Request(catalog.DefaultTemplates(), cfg)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.InvalidInput("plan", "stdin is not a terminal, pass --plan to estimate non-interactively")
	}

	p := prompt.New(cmd.InOrStdin(), cmd.ErrOrStderr(), prompt.WithLogger(logging.Logger))
	return p.Collect(ctx, cfg)
}
