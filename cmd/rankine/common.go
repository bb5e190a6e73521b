package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rankine-dev/rankine/internal/application/dto"
	"github.com/rankine-dev/rankine/internal/application/ports"
	"github.com/rankine-dev/rankine/internal/infrastructure/steam"
)

// CommonOptions contains output and execution flags shared by commands
// that produce a report.
type CommonOptions struct {
	Format  string
	OutFile string
	Timeout time.Duration
	NoColor bool
}

// DefaultCommonOptions returns sensible defaults.
// An empty Format defers to the config file.
func DefaultCommonOptions() CommonOptions {
	return CommonOptions{
		Timeout: time.Minute,
	}
}

// RegisterFlags adds common flags to a cobra command.
func (opts *CommonOptions) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&opts.Format, "format", opts.Format,
		"Output format: table, json, yaml (default from config, else table)")
	cmd.Flags().StringVarP(&opts.OutFile, "output", "o", opts.OutFile,
		"Output file path (default: stdout)")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", opts.Timeout,
		"Global timeout for the command (0 to disable)")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", opts.NoColor,
		"Disable colored table output")
}

// ApplyToContext applies timeout to context.
// Returns new context and cancel function.
func (opts *CommonOptions) ApplyToContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if opts.Timeout > 0 {
		return context.WithTimeout(ctx, opts.Timeout)
	}
	return ctx, func() {}
}

// ResolveFormat fills an unset format from RANKINE_OUTPUT_FORMAT or the
// config file.
func (opts *CommonOptions) ResolveFormat(configured string) {
	if opts.Format != "" {
		return
	}
	if v := viper.GetString("output.format"); v != "" {
		opts.Format = v
		return
	}
	opts.Format = configured
}

// ValidateFlags validates common options.
func (opts *CommonOptions) ValidateFlags() error {
	validFormats := map[string]bool{"table": true, "json": true, "yaml": true}
	if !validFormats[opts.Format] {
		return fmt.Errorf("invalid format: %s (valid: table, json, yaml)", opts.Format)
	}
	if opts.Timeout < 0 {
		return fmt.Errorf("--timeout must not be negative")
	}
	return nil
}

// writeReport renders the report to stdout or the output file.
func writeReport(
	factory ports.ReportFormatterFactory,
	opts CommonOptions,
	colorEnabled bool,
	report *dto.Report,
) error {
	var writer io.Writer = os.Stdout
	if opts.OutFile != "" {
		//nolint:gosec // G304: User-controlled output file path is intentional
		file, err := os.Create(opts.OutFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			_ = file.Close() // Best-effort cleanup
		}()
		writer = file
		colorEnabled = false
		slog.Info("writing output", "file", opts.OutFile, "format", opts.Format)
	}

	formatter, err := factory.Create(opts.Format, writer, ports.FormatterOptions{
		Indent: true,
		Color:  colorEnabled && !opts.NoColor,
	})
	if err != nil {
		return err
	}
	if err := formatter.Format(report); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return nil
}

// reportOutcome turns failed cycles into a non-zero exit.
func reportOutcome(report *dto.Report) error {
	if report.HasFailures() {
		return fmt.Errorf("analysis failed: %d ok, %d non-physical, %d errors",
			report.Summary.Succeeded,
			report.Summary.NonPhysical,
			report.Summary.Failed)
	}
	return nil
}

// pressureUsage describes a pressure flag with the tabulated range.
func pressureUsage(what string) string {
	lo, hi := steam.PressureRange()
	return fmt.Sprintf("%s in kPa (tables cover %g-%g)", what, lo, hi)
}
