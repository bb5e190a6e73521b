// Package repositories defines interfaces for domain persistence.
package repositories

import (
	"context"
	"errors"

	"github.com/rankine-dev/rankine/internal/domain/entities"
	"github.com/rankine-dev/rankine/internal/domain/values"
)

// ErrNotFound is returned when no stored result matches.
var ErrNotFound = errors.New("cycle result not found")

// CycleResultRepository stores computed cycle results keyed by CycleSpec.Key.
// Only successful results are stored; failures are never cached.
type CycleResultRepository interface {
	// Save stores a result under its spec key, replacing any previous entry.
	Save(ctx context.Context, result *entities.CycleResult) error

	// FindByKey retrieves the result for a spec key.
	FindByKey(ctx context.Context, key string) (*entities.CycleResult, error)

	// FindByID retrieves a result by its analysis ID.
	FindByID(ctx context.Context, id values.AnalysisID) (*entities.CycleResult, error)

	// FindByName retrieves recent results for a cycle name, newest first.
	FindByName(ctx context.Context, name string, limit int) ([]*entities.CycleResult, error)

	// Delete removes the result for a spec key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}
