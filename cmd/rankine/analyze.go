package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rankine-dev/rankine/internal/application/dto"
	"github.com/rankine-dev/rankine/internal/domain/services"
)

// AnalyzeOptions holds the analyze command flags.
type AnalyzeOptions struct {
	Name   string
	Common CommonOptions
	PLow   float64
	PHigh  float64
}

func newAnalyzeCmd() *cobra.Command {
	opts := AnalyzeOptions{Common: DefaultCommonOptions()}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyse a single ideal Rankine cycle",
		Long: `Compute one ideal Rankine cycle between a condenser pressure (--p-low) and
a boiler pressure (--p-high), both in kPa.

The turbine inlet is saturated vapor unless --t-high (°C) or
--superheat-ratio (multiple of the saturation temperature) is given.`,
		Example: `  rankine analyze --p-high 8000 --p-low 8
  rankine analyze --p-high 8000 --p-low 8 --t-high 500 --name "Rankine Cycle 2"
  rankine analyze --p-high 8000 --p-low 8 --superheat-ratio 1.7 --format json`,
		Args: cobra.NoArgs,
		RunE: withContainer(func(c *CommandContext, cmd *cobra.Command, _ []string) error {
			return runAnalyze(c, cmd, &opts)
		}),
	}

	cmd.Flags().Float64Var(&opts.PHigh, "p-high", 8000, pressureUsage("Boiler pressure"))
	cmd.Flags().Float64Var(&opts.PLow, "p-low", 8, pressureUsage("Condenser pressure"))
	cmd.Flags().Float64("t-high", 0, "Turbine inlet temperature in °C")
	cmd.Flags().Float64("superheat-ratio", 0, "Turbine inlet temperature as a multiple of Tsat(p-high)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "Cycle name")
	cmd.MarkFlagsMutuallyExclusive("t-high", "superheat-ratio")
	opts.Common.RegisterFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(newAnalyzeCmd())
}

func runAnalyze(c *CommandContext, cmd *cobra.Command, opts *AnalyzeOptions) error {
	opts.Common.ResolveFormat(c.Container.SystemConfig().Output.Format)
	if err := opts.Common.ValidateFlags(); err != nil {
		return err
	}

	ctx, cancel := opts.Common.ApplyToContext(c.Context)
	defer cancel()

	resp, err := c.Container.CycleAnalysis().Analyze(ctx, dto.AnalyzeCycleRequest{
		Name:           opts.Name,
		PLow:           opts.PLow,
		PHigh:          opts.PHigh,
		THigh:          optionalFloat(cmd, "t-high"),
		SuperheatRatio: optionalFloat(cmd, "superheat-ratio"),
		Metadata:       dto.RequestMetadata{RequestID: uuid.NewString()},
	})
	if err != nil {
		return err
	}

	status := services.NewStatusAggregator().ClassifyResult(resp.Result)
	report := dto.NewCycleReport(resp.Result, status, time.Now())
	report.Duration = resp.Metadata.Duration

	if err := writeReport(c.Container.Formatters(), opts.Common, c.Container.SystemConfig().Output.Color, report); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return reportOutcome(report)
}
