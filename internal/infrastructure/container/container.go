// Package container provides dependency injection for the application.
package container

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rankine-dev/rankine/internal/application/ports"
	"github.com/rankine-dev/rankine/internal/application/services"
	"github.com/rankine-dev/rankine/internal/infrastructure/config"
	"github.com/rankine-dev/rankine/internal/infrastructure/output"
	"github.com/rankine-dev/rankine/internal/infrastructure/persistence/memory"
	"github.com/rankine-dev/rankine/internal/infrastructure/steam"
	"github.com/rankine-dev/rankine/internal/infrastructure/system"
	"github.com/rankine-dev/rankine/internal/infrastructure/validation"
	"github.com/rankine-dev/rankine/internal/version"
)

// Container holds all application dependencies.
type Container struct {
	properties    ports.PropertyService
	formatters    ports.ReportFormatterFactory
	analysis      *services.CycleAnalysisService
	studies       *services.StudyService
	systemCfg     *system.Config
	logger        *slog.Logger
	systemCfgPath string
}

// Options configure the container.
type Options struct {
	Logger *slog.Logger
	// StrictValidation overrides analysis.strict_validation when set
	StrictValidation *bool
	SystemConfigPath string
	// MaxConcurrent overrides study.max_concurrent when positive
	MaxConcurrent int
}

// DefaultSystemConfigPath returns ~/.rankine/config.yaml, or "" when the
// home directory is unknown.
func DefaultSystemConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".rankine", "config.yaml")
}

// New creates a new dependency injection container.
func New(opts Options) (*Container, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	configPath := opts.SystemConfigPath
	if configPath == "" {
		configPath = DefaultSystemConfigPath()
	}

	// Load system config
	systemCfg := system.DefaultConfig()
	if configPath != "" {
		loaded, err := system.NewConfigLoader().LoadConfig(context.Background(), configPath)
		if err != nil {
			// An explicitly requested config must load
			if opts.SystemConfigPath != "" {
				return nil, err
			}
			opts.Logger.Debug("failed to load system config, using defaults", "error", err)
		} else {
			systemCfg = loaded
		}
	}

	strict := systemCfg.Analysis.IsStrict()
	if opts.StrictValidation != nil {
		strict = *opts.StrictValidation
	}
	maxConcurrent := systemCfg.Study.MaxConcurrent
	if opts.MaxConcurrent > 0 {
		maxConcurrent = opts.MaxConcurrent
	}

	// Initialize adapters
	properties := steam.NewTableService()
	results := memory.NewCycleResultRepository()
	studyLoader := config.NewStudyLoader()
	studyValidator := validation.NewStudyValidator(version.Get().Version)

	// Wire up use cases
	analysis := services.NewCycleAnalysisService(properties, results, strict, opts.Logger)
	studies := services.NewStudyService(studyLoader, studyValidator, analysis, maxConcurrent, opts.Logger)

	opts.Logger.Debug("container initialized",
		"config", configPath,
		"strict_validation", strict,
		"max_concurrent", maxConcurrent)

	return &Container{
		properties:    properties,
		formatters:    output.NewFormatterFactory(),
		analysis:      analysis,
		studies:       studies,
		systemCfg:     systemCfg,
		logger:        opts.Logger,
		systemCfgPath: configPath,
	}, nil
}

// CycleAnalysis returns the single-cycle use case.
func (c *Container) CycleAnalysis() *services.CycleAnalysisService {
	return c.analysis
}

// Studies returns the study and sweep use case.
func (c *Container) Studies() *services.StudyService {
	return c.studies
}

// Properties returns the steam property service.
func (c *Container) Properties() ports.PropertyService {
	return c.properties
}

// Formatters returns the report formatter factory.
func (c *Container) Formatters() ports.ReportFormatterFactory {
	return c.formatters
}

// SystemConfig returns the system configuration.
func (c *Container) SystemConfig() *system.Config {
	return c.systemCfg
}

// SystemConfigPath returns the path the system config was read from.
func (c *Container) SystemConfigPath() string {
	return c.systemCfgPath
}

// Logger returns the configured logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}
