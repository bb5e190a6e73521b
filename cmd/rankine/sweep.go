package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rankine-dev/rankine/internal/application/dto"
)

// SweepOptions holds the sweep command flags.
type SweepOptions struct {
	Name      string
	PHighs    []float64
	Common    CommonOptions
	Execution dto.ExecutionOptions
	PLow      float64
}

func newSweepCmd() *cobra.Command {
	opts := SweepOptions{
		Common:    DefaultCommonOptions(),
		Execution: dto.ExecutionOptions{Parallel: true},
	}

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Analyse a cycle over a list of boiler pressures",
		Long: `Compute one cycle per boiler pressure at a fixed condenser pressure and
turbine inlet condition, to show how efficiency trends with p_high.`,
		Example: `  rankine sweep --p-low 8 --p-high-list 1000,2000,4000,8000,14000
  rankine sweep --p-low 10 --p-high-list 2000,6000,10000 --t-high 550 --format yaml`,
		Args: cobra.NoArgs,
		RunE: withContainer(func(c *CommandContext, cmd *cobra.Command, _ []string) error {
			return runSweep(c, cmd, &opts)
		}),
	}

	cmd.Flags().Float64Var(&opts.PLow, "p-low", 8, pressureUsage("Condenser pressure"))
	cmd.Flags().Float64SliceVar(&opts.PHighs, "p-high-list", nil, pressureUsage("Boiler pressures, comma-separated,"))
	cmd.Flags().Float64("t-high", 0, "Turbine inlet temperature in °C")
	cmd.Flags().Float64("superheat-ratio", 0, "Turbine inlet temperature as a multiple of Tsat(p-high)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "Cycle name")
	cmd.Flags().BoolVar(&opts.Execution.Parallel, "parallel", opts.Execution.Parallel, "Compute cycles concurrently")
	cmd.Flags().IntVar(&opts.Execution.MaxConcurrent, "max-concurrent", 0, "Maximum concurrent cycles (0 = config default)")
	cmd.Flags().BoolVar(&opts.Execution.FailFast, "fail-fast", false, "Stop at the first failed cycle")
	cmd.MarkFlagsMutuallyExclusive("t-high", "superheat-ratio")
	_ = cmd.MarkFlagRequired("p-high-list")
	opts.Common.RegisterFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(newSweepCmd())
}

func runSweep(c *CommandContext, cmd *cobra.Command, opts *SweepOptions) error {
	opts.Common.ResolveFormat(c.Container.SystemConfig().Output.Format)
	if err := opts.Common.ValidateFlags(); err != nil {
		return err
	}

	ctx, cancel := opts.Common.ApplyToContext(c.Context)
	defer cancel()

	resp, err := c.Container.Studies().Sweep(ctx, dto.SweepRequest{
		Name:           opts.Name,
		PLow:           opts.PLow,
		PHighs:         opts.PHighs,
		THigh:          optionalFloat(cmd, "t-high"),
		SuperheatRatio: optionalFloat(cmd, "superheat-ratio"),
		Execution:      opts.Execution,
		Metadata:       dto.RequestMetadata{RequestID: uuid.NewString()},
	})
	if err != nil {
		return err
	}

	if err := writeReport(c.Container.Formatters(), opts.Common, c.Container.SystemConfig().Output.Color, resp.Report); err != nil {
		return err
	}
	return reportOutcome(resp.Report)
}
