package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rankine-dev/rankine/internal/application/dto"
)

// StudyOptions holds the study command flags.
type StudyOptions struct {
	Filters    dto.FilterOptions
	Common     CommonOptions
	Execution  dto.ExecutionOptions
	SkipSchema bool
}

func newStudyCmd() *cobra.Command {
	opts := StudyOptions{
		Common:    DefaultCommonOptions(),
		Execution: dto.ExecutionOptions{Parallel: true},
	}

	cmd := &cobra.Command{
		Use:   "study <study.yaml>",
		Short: "Analyse every cycle of a study file",
		Long: `Load a study file and compute each of its cycles.

Studies may extend other studies, declare vars referenced as ${name}, and
set defaults applied to every cycle.

Filtering:
  --tags superheated            Run cycles with any of these tags
  --cycle sat,hot               Run only these cycles (exclusive)
  --exclude-tags slow           Skip cycles with these tags
  --exclude-cycle hot           Skip these cycles
  --filter "p_high >= 4000"     Expression over id, name, tags, p_low, p_high, t_high`,
		Example: `  rankine study plant.yaml
  rankine study plant.yaml --tags superheated --format json
  rankine study plant.yaml --filter "p_high >= 4000 && 'superheated' in tags"`,
		Args: cobra.ExactArgs(1),
		RunE: withContainer(func(c *CommandContext, _ *cobra.Command, args []string) error {
			return runStudy(c, args[0], &opts)
		}),
	}

	cmd.Flags().StringSliceVar(&opts.Filters.IncludeTags, "tags", nil, "Run cycles with these tags (comma-separated)")
	cmd.Flags().StringSliceVar(&opts.Filters.IncludeCycleIDs, "cycle", nil, "Run specific cycles by ID (exclusive, comma-separated)")
	cmd.Flags().StringSliceVar(&opts.Filters.ExcludeTags, "exclude-tags", nil, "Exclude cycles with these tags (comma-separated)")
	cmd.Flags().StringSliceVar(&opts.Filters.ExcludeCycleIDs, "exclude-cycle", nil, "Exclude specific cycles by ID (comma-separated)")
	cmd.Flags().StringVar(&opts.Filters.FilterExpression, "filter", "", "Filter expression (e.g. \"p_high >= 4000\")")
	cmd.Flags().BoolVar(&opts.Execution.Parallel, "parallel", opts.Execution.Parallel, "Compute cycles concurrently")
	cmd.Flags().IntVar(&opts.Execution.MaxConcurrent, "max-concurrent", 0, "Maximum concurrent cycles (0 = config default)")
	cmd.Flags().BoolVar(&opts.Execution.FailFast, "fail-fast", false, "Stop at the first failed cycle")
	cmd.Flags().BoolVar(&opts.SkipSchema, "skip-schema-validation", false, "Skip JSON schema validation of the study file")
	opts.Common.RegisterFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(newStudyCmd())
}

func runStudy(c *CommandContext, path string, opts *StudyOptions) error {
	opts.Common.ResolveFormat(c.Container.SystemConfig().Output.Format)
	if err := opts.Common.ValidateFlags(); err != nil {
		return err
	}

	ctx, cancel := opts.Common.ApplyToContext(c.Context)
	defer cancel()

	resp, err := c.Container.Studies().Run(ctx, dto.RunStudyRequest{
		StudyPath: path,
		Metadata:  dto.RequestMetadata{RequestID: uuid.NewString()},
		Filters:   opts.Filters,
		Execution: opts.Execution,
		Options:   dto.StudyOptions{SkipSchemaValidation: opts.SkipSchema},
	})
	if err != nil {
		return err
	}

	if err := writeReport(c.Container.Formatters(), opts.Common, c.Container.SystemConfig().Output.Color, resp.Report); err != nil {
		return err
	}
	return reportOutcome(resp.Report)
}
