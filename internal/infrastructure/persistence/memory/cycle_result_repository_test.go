package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rankine-dev/rankine/internal/domain/entities"
	"github.com/rankine-dev/rankine/internal/domain/repositories"
	"github.com/rankine-dev/rankine/internal/domain/values"
)

func newResult(name string, pHigh float64, at time.Time) *entities.CycleResult {
	return &entities.CycleResult{
		ID:         values.NewAnalysisID(),
		Spec:       entities.NewCycleSpec(name, 8, pHigh, values.Saturated()),
		Efficiency: 37.07,
		ComputedAt: at,
	}
}

func TestCycleResultRepository_SaveAndFind(t *testing.T) {
	repo := NewCycleResultRepository()
	ctx := context.Background()

	result := newResult("plant", 8000, time.Now())
	require.NoError(t, repo.Save(ctx, result))

	byKey, err := repo.FindByKey(ctx, result.Spec.Key())
	require.NoError(t, err)
	assert.Same(t, result, byKey)

	byID, err := repo.FindByID(ctx, result.ID)
	require.NoError(t, err)
	assert.Same(t, result, byID)

	assert.Equal(t, 1, repo.Len())
}

func TestCycleResultRepository_NotFound(t *testing.T) {
	repo := NewCycleResultRepository()
	ctx := context.Background()

	_, err := repo.FindByKey(ctx, "missing")
	assert.True(t, errors.Is(err, repositories.ErrNotFound))

	_, err = repo.FindByID(ctx, values.NewAnalysisID())
	assert.True(t, errors.Is(err, repositories.ErrNotFound))

	assert.Error(t, repo.Save(ctx, nil))
}

func TestCycleResultRepository_FindByName(t *testing.T) {
	repo := NewCycleResultRepository()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	older := newResult("plant", 4000, base)
	newer := newResult("plant", 8000, base.Add(time.Hour))
	other := newResult("other", 8000, base)
	for _, r := range []*entities.CycleResult{older, newer, other} {
		require.NoError(t, repo.Save(ctx, r))
	}

	matches, err := repo.FindByName(ctx, "plant", 0)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Same(t, newer, matches[0])

	limited, err := repo.FindByName(ctx, "plant", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestCycleResultRepository_Delete(t *testing.T) {
	repo := NewCycleResultRepository()
	ctx := context.Background()

	result := newResult("plant", 8000, time.Now())
	require.NoError(t, repo.Save(ctx, result))
	require.NoError(t, repo.Delete(ctx, result.Spec.Key()))
	require.NoError(t, repo.Delete(ctx, result.Spec.Key()))

	_, err := repo.FindByKey(ctx, result.Spec.Key())
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCycleResultRepository_Concurrent(t *testing.T) {
	repo := NewCycleResultRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r := newResult("plant", float64(1000+i), time.Now())
			_ = repo.Save(ctx, r)
			_, _ = repo.FindByKey(ctx, r.Spec.Key())
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, repo.Len())
}
