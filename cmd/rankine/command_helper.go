package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rankine-dev/rankine/internal/infrastructure/container"
)

// CommandContext provides common command dependencies.
// Eliminates repetitive container initialization across CLI commands.
type CommandContext struct {
	Container *container.Container
	Logger    *slog.Logger
	Context   context.Context
}

// CommandHandler is a function that executes with initialized dependencies.
type CommandHandler func(*CommandContext, *cobra.Command, []string) error

// withContainer wraps a command handler with container initialization.
// The --strict-validation flag wins over RANKINE_ANALYSIS_STRICT_VALIDATION,
// which wins over the config file.
func withContainer(handler CommandHandler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger := slog.Default()

		opts := container.Options{
			SystemConfigPath: cfgFile,
			Logger:           logger,
			StrictValidation: strictOverride(cmd),
		}
		if n := viper.GetInt("study.max_concurrent"); n > 0 {
			opts.MaxConcurrent = n
		}

		c, err := container.New(opts)
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		c.Logger().Debug("system config", "path", c.SystemConfigPath())

		return handler(&CommandContext{
			Container: c,
			Logger:    c.Logger(),
			Context:   ctx,
		}, cmd, args)
	}
}

func strictOverride(cmd *cobra.Command) *bool {
	if f := cmd.Flags().Lookup("strict-validation"); f != nil && f.Changed {
		strict, _ := cmd.Flags().GetBool("strict-validation")
		return &strict
	}
	if viper.IsSet("analysis.strict_validation") {
		strict := viper.GetBool("analysis.strict_validation")
		return &strict
	}
	return nil
}

// optionalFloat returns the flag value when it was set on the command line.
func optionalFloat(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetFloat64(name)
	if err != nil {
		return nil
	}
	return &v
}
