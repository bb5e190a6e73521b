// Package memory provides in-memory implementations of domain repositories.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rankine-dev/rankine/internal/domain/entities"
	"github.com/rankine-dev/rankine/internal/domain/repositories"
	"github.com/rankine-dev/rankine/internal/domain/values"
)

// Ensure interface compliance
var _ repositories.CycleResultRepository = (*CycleResultRepository)(nil)

// CycleResultRepository is an in-memory result store used as the analysis memo.
type CycleResultRepository struct {
	byKey map[string]*entities.CycleResult
	mu    sync.RWMutex
}

// NewCycleResultRepository creates a new in-memory repository.
func NewCycleResultRepository() *CycleResultRepository {
	return &CycleResultRepository{
		byKey: make(map[string]*entities.CycleResult),
	}
}

// Save stores a result under its spec key.
// Callers must not modify the result after saving.
func (r *CycleResultRepository) Save(_ context.Context, result *entities.CycleResult) error {
	if result == nil {
		return fmt.Errorf("cannot save nil cycle result")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byKey[result.Spec.Key()] = result
	return nil
}

// FindByKey retrieves the result for a spec key.
func (r *CycleResultRepository) FindByKey(_ context.Context, key string) (*entities.CycleResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, ok := r.byKey[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", repositories.ErrNotFound, key)
	}
	return result, nil
}

// FindByID retrieves a result by its analysis ID.
func (r *CycleResultRepository) FindByID(_ context.Context, id values.AnalysisID) (*entities.CycleResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, result := range r.byKey {
		if result.ID.Equals(id) {
			return result, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", repositories.ErrNotFound, id)
}

// FindByName retrieves recent results for a cycle name, newest first.
func (r *CycleResultRepository) FindByName(_ context.Context, name string, limit int) ([]*entities.CycleResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []*entities.CycleResult
	for _, result := range r.byKey {
		if result.Name() == name {
			matches = append(matches, result)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].ComputedAt.After(matches[j].ComputedAt)
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// Delete removes the result for a spec key.
func (r *CycleResultRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byKey, key)
	return nil
}

// Len returns the number of stored results.
func (r *CycleResultRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byKey)
}
