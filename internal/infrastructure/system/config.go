// Package system provides infrastructure for system-level configuration,
// loaded from ~/.rankine/config.yaml.
package system

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config represents the global configuration file (~/.rankine/config.yaml).
// Command-line flags override these values.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Study    StudyConfig    `yaml:"study"`
	Analysis AnalysisConfig `yaml:"analysis"`
}

// AnalysisConfig configures cycle validation.
type AnalysisConfig struct {
	// StrictValidation rejects p_high < p_low instead of computing a
	// non-physical cycle. Nil means the default (true).
	StrictValidation *bool `yaml:"strict_validation"`
}

// OutputConfig configures report rendering.
type OutputConfig struct {
	Format string `yaml:"format"`
	Color  bool   `yaml:"color"`
}

// StudyConfig configures batch execution.
type StudyConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Defaults applied when the config file omits a value.
const (
	DefaultOutputFormat  = "table"
	DefaultMaxConcurrent = 4
)

// IsStrict returns the effective strict-validation setting.
func (c *AnalysisConfig) IsStrict() bool {
	if c.StrictValidation == nil {
		return true
	}
	return *c.StrictValidation
}

// ConfigLoader loads system configuration from disk.
type ConfigLoader struct{}

// NewConfigLoader creates a new system config loader.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

// DefaultConfig returns a Config with defaults for all fields.
// This is used when no system config file exists.
func DefaultConfig() *Config {
	strict := true
	return &Config{
		Analysis: AnalysisConfig{StrictValidation: &strict},
		Output:   OutputConfig{Format: DefaultOutputFormat},
		Study:    StudyConfig{MaxConcurrent: DefaultMaxConcurrent},
	}
}

// Load loads the system configuration from the specified path.
// If the file does not exist, returns DefaultConfig().
func (l *ConfigLoader) Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	//nolint:gosec // G304: path is user-provided config file, validated to exist above
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read system config: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse system config: %w", err)
	}
	config.applyDefaults()

	return config, nil
}

// LoadConfig implements ports.SystemConfigProvider.
func (l *ConfigLoader) LoadConfig(_ context.Context, path string) (*Config, error) {
	return l.Load(path)
}

func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = DefaultOutputFormat
	}
	if c.Study.MaxConcurrent <= 0 {
		c.Study.MaxConcurrent = DefaultMaxConcurrent
	}
}
