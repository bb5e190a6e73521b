package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rankine-dev/rankine/internal/infrastructure/container"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd is the application entry point.
var rootCmd = &cobra.Command{
	Use:   "rankine",
	Short: "Ideal Rankine cycle analysis",
	Long: `Rankine computes the thermal efficiency, turbine work, pump work and heat
input of ideal Rankine steam cycles from built-in water/steam tables.

Single cycles are analysed with 'analyze', batches with 'study' (YAML study
files) and 'sweep' (a list of boiler pressures).`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.rankine/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().Bool("strict-validation", true, "reject cycles with p_high < p_low")
}

// initConfig loads configuration from the config file and environment.
// Environment variables use the RANKINE_ prefix, e.g.
// RANKINE_OUTPUT_FORMAT=json or RANKINE_ANALYSIS_STRICT_VALIDATION=false.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if path := container.DefaultSystemConfigPath(); path != "" {
		viper.SetConfigFile(path)
	}
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("RANKINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "file", viper.ConfigFileUsed())
	}
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// Using TextHandler for CLI friendliness
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
