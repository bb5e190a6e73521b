package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/rankine-dev/rankine/internal/application/ports"
	"github.com/rankine-dev/rankine/internal/domain/entities"
	"github.com/rankine-dev/rankine/internal/domain/services"
)

// Inlet modes offered by init.
const (
	inletSaturated   = "saturated"
	inletTemperature = "temperature"
	inletRatio       = "ratio"
)

// InitOptions holds the answers used to generate a starter study.
type InitOptions struct {
	Name           string
	InletMode      string
	OutputPath     string
	PHighs         []float64
	PLow           float64
	THigh          float64
	SuperheatRatio float64
	NoInteractive  bool
	Force          bool
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a starter study file",
	Long: `Generate a study file with one cycle per boiler pressure.

Without --no-interactive, values not given as flags are asked for.`,
	Example: `  rankine init
  rankine init --no-interactive --name "Plant A" --p-low 8 --p-high-list 4000,8000 --t-high 500`,
	Args: cobra.NoArgs,
	RunE: withContainer(func(c *CommandContext, cmd *cobra.Command, _ []string) error {
		return runInit(c, cmd)
	}),
}

func init() {
	initCmd.Flags().String("name", "", "Study name")
	initCmd.Flags().Float64("p-low", 8, pressureUsage("Condenser pressure"))
	initCmd.Flags().Float64Slice("p-high-list", nil, pressureUsage("Boiler pressures, comma-separated,"))
	initCmd.Flags().Float64("t-high", 0, "Turbine inlet temperature in °C")
	initCmd.Flags().Float64("superheat-ratio", 0, "Turbine inlet temperature as a multiple of Tsat(p_high)")
	initCmd.Flags().String("output", "study.yaml", "Output file path")
	initCmd.Flags().Bool("force", false, "Overwrite an existing file")
	initCmd.Flags().Bool("no-interactive", false, "Disable interactive prompts")
	initCmd.MarkFlagsMutuallyExclusive("t-high", "superheat-ratio")

	rootCmd.AddCommand(initCmd)
}

func runInit(c *CommandContext, cmd *cobra.Command) error {
	opts := InitOptions{InletMode: inletSaturated}
	opts.Name, _ = cmd.Flags().GetString("name")
	opts.PLow, _ = cmd.Flags().GetFloat64("p-low")
	opts.PHighs, _ = cmd.Flags().GetFloat64Slice("p-high-list")
	opts.OutputPath, _ = cmd.Flags().GetString("output")
	opts.Force, _ = cmd.Flags().GetBool("force")
	opts.NoInteractive, _ = cmd.Flags().GetBool("no-interactive")
	if cmd.Flags().Changed("t-high") {
		opts.InletMode = inletTemperature
		opts.THigh, _ = cmd.Flags().GetFloat64("t-high")
	}
	if cmd.Flags().Changed("superheat-ratio") {
		opts.InletMode = inletRatio
		opts.SuperheatRatio, _ = cmd.Flags().GetFloat64("superheat-ratio")
	}

	if !opts.NoInteractive {
		if err := promptInit(c, cmd, &opts); err != nil {
			return err
		}
	}

	if !opts.Force {
		if _, err := os.Stat(opts.OutputPath); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", opts.OutputPath)
		}
	}

	study, err := buildStudy(opts)
	if err != nil {
		return err
	}
	if err := saveStudy(study, opts.OutputPath); err != nil {
		return fmt.Errorf("failed to save study: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Study with %d cycles saved to %s\n", len(study.Cycles), opts.OutputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Run 'rankine study %s' to analyse it.\n", opts.OutputPath)
	return nil
}

func promptInit(c *CommandContext, cmd *cobra.Command, opts *InitOptions) error {
	if opts.Name == "" {
		if err := huh.NewInput().
			Title("Study name").
			Value(&opts.Name).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("name is required")
				}
				return nil
			}).
			Run(); err != nil {
			return err
		}
	}

	if !cmd.Flags().Changed("p-low") {
		pLow := strconv.FormatFloat(opts.PLow, 'f', -1, 64)
		if err := huh.NewInput().
			Title("Condenser pressure (kPa)").
			Value(&pLow).
			Validate(validatePositive).
			Run(); err != nil {
			return err
		}
		opts.PLow, _ = strconv.ParseFloat(strings.TrimSpace(pLow), 64)
	}

	if len(opts.PHighs) == 0 {
		list := "2000,4000,8000"
		if err := huh.NewInput().
			Title("Boiler pressures (kPa, comma-separated)").
			Value(&list).
			Validate(func(s string) error {
				_, err := parsePressureList(s)
				return err
			}).
			Run(); err != nil {
			return err
		}
		opts.PHighs, _ = parsePressureList(list)
	}

	if opts.InletMode != inletSaturated {
		return nil
	}

	if err := huh.NewSelect[string]().
		Title("Turbine inlet").
		Options(
			huh.NewOption("Saturated vapor", inletSaturated),
			huh.NewOption("Superheated to a temperature", inletTemperature),
			huh.NewOption("Superheated to a multiple of Tsat", inletRatio),
		).
		Value(&opts.InletMode).
		Run(); err != nil {
		return err
	}

	hint := saturationHint(c.Context, c.Container.Properties(), opts.PHighs)

	switch opts.InletMode {
	case inletTemperature:
		t := "500"
		if err := huh.NewInput().
			Title("Turbine inlet temperature (°C)").
			Description(hint).
			Value(&t).
			Validate(validatePositive).
			Run(); err != nil {
			return err
		}
		opts.THigh, _ = strconv.ParseFloat(strings.TrimSpace(t), 64)
	case inletRatio:
		r := "1.5"
		if err := huh.NewInput().
			Title("Superheat ratio (× Tsat)").
			Description(hint).
			Value(&r).
			Run(); err != nil {
			return err
		}
		opts.SuperheatRatio, _ = strconv.ParseFloat(strings.TrimSpace(r), 64)
	}
	return nil
}

// saturationHint reports Tsat over the boiler pressures, or "" when a
// pressure is outside the tables.
func saturationHint(ctx context.Context, props ports.PropertyService, pHighs []float64) string {
	if len(pHighs) == 0 {
		return ""
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range pHighs {
		tsat, err := props.SaturationTemperature(ctx, p)
		if err != nil {
			return ""
		}
		lo, hi = math.Min(lo, tsat), math.Max(hi, tsat)
	}
	if lo == hi {
		return fmt.Sprintf("Tsat at p_high: %.2f °C", lo)
	}
	return fmt.Sprintf("Tsat at p_high: %.2f-%.2f °C", lo, hi)
}

// buildStudy turns init answers into a compiled study.
func buildStudy(opts InitOptions) (*entities.Study, error) {
	if len(opts.PHighs) == 0 {
		return nil, errors.New("at least one boiler pressure is required")
	}

	name := opts.Name
	if name == "" {
		name = "Rankine study"
	}

	pLow := opts.PLow
	study := &entities.Study{
		Metadata: entities.StudyMetadata{
			Name:    name,
			Version: "1.0.0",
		},
		Defaults: &entities.StudyDefaults{PLow: &pLow},
	}

	for _, p := range opts.PHighs {
		pHigh := p
		cycle := entities.StudyCycle{
			ID:    entities.PressureCycleID(p),
			PHigh: &pHigh,
		}
		switch opts.InletMode {
		case inletTemperature:
			t := opts.THigh
			cycle.THigh = &t
			cycle.Tags = []string{"superheated"}
		case inletRatio:
			r := opts.SuperheatRatio
			cycle.SuperheatRatio = &r
			cycle.Tags = []string{"superheated"}
		default:
			cycle.Tags = []string{"saturated"}
		}
		study.Cycles = append(study.Cycles, cycle)
	}

	if _, err := services.NewStudyCompiler().Compile(study); err != nil {
		return nil, err
	}
	return study, nil
}

func saveStudy(study *entities.Study, path string) error {
	data, err := yaml.Marshal(study)
	if err != nil {
		return err
	}
	//nolint:gosec // G306: study files are meant to be shared
	return os.WriteFile(path, data, 0o644)
}

func parsePressureList(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", part)
		}
		if v <= 0 {
			return nil, fmt.Errorf("pressure must be positive, got %g", v)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, errors.New("at least one pressure is required")
	}
	return out, nil
}

func validatePositive(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	if v <= 0 {
		return errors.New("must be positive")
	}
	return nil
}
