// Package ports defines interfaces for infrastructure dependencies.
// These are the "ports" in hexagonal architecture - abstractions that
// the application layer depends on but doesn't implement.
package ports

import (
	"context"
	"io"

	"github.com/rankine-dev/rankine/internal/application/dto"
	"github.com/rankine-dev/rankine/internal/domain/entities"
	"github.com/rankine-dev/rankine/internal/domain/services"
	"github.com/rankine-dev/rankine/internal/infrastructure/system"
)

// PropertyService resolves water/steam states.
// Implementations must be safe for concurrent use.
type PropertyService interface {
	services.PropertyResolver

	// SaturationTemperature returns Tsat (°C) at the given pressure (kPa).
	SaturationTemperature(ctx context.Context, pressure float64) (float64, error)
}

// StudyLoader loads studies from storage, resolving inheritance and variables.
type StudyLoader interface {
	LoadStudy(path string) (*entities.Study, error)
}

// StudyValidator validates study structure and compatibility.
type StudyValidator interface {
	// Validate checks domain invariants and the requires constraint.
	Validate(study *entities.Study) error

	// ValidateSchema checks the study document against the JSON schema.
	ValidateSchema(ctx context.Context, study *entities.Study) error
}

// SystemConfigProvider loads system configuration.
type SystemConfigProvider interface {
	LoadConfig(ctx context.Context, path string) (*system.Config, error)
}

// ReportFormatter renders a report.
type ReportFormatter interface {
	Format(report *dto.Report) error
}

// FormatterOptions configures report formatters.
type FormatterOptions struct {
	// Indent pretty-prints structured output
	Indent bool
	// Color enables ANSI colors in table output
	Color bool
}

// ReportFormatterFactory creates formatters by name.
type ReportFormatterFactory interface {
	Create(format string, writer io.Writer, options FormatterOptions) (ReportFormatter, error)
	SupportedFormats() []string
}
