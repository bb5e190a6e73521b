package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rankine-dev/rankine/internal/application/dto"
	apperrors "github.com/rankine-dev/rankine/internal/application/errors"
	"github.com/rankine-dev/rankine/internal/domain/entities"
	"github.com/rankine-dev/rankine/internal/domain/values"
	"github.com/rankine-dev/rankine/internal/infrastructure/persistence/memory"
	"github.com/rankine-dev/rankine/internal/infrastructure/steam"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// countingProps wraps the table service and counts Resolve calls.
type countingProps struct {
	*steam.TableService
	mu    sync.Mutex
	calls int
}

func (c *countingProps) Resolve(ctx context.Context, p float64, q values.PropertyQuery) (entities.ThermodynamicState, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return c.TableService.Resolve(ctx, p, q)
}

func (c *countingProps) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// gatedProps blocks every lookup until release is closed.
type gatedProps struct {
	*steam.TableService
	entered chan struct{}
	release chan struct{}
	once    sync.Once
	calls   atomic.Int32
}

func (g *gatedProps) Resolve(ctx context.Context, p float64, q values.PropertyQuery) (entities.ThermodynamicState, error) {
	g.once.Do(func() { close(g.entered) })
	g.calls.Add(1)
	<-g.release
	return g.TableService.Resolve(ctx, p, q)
}

func newAnalysis(strict bool) (*CycleAnalysisService, *countingProps, *memory.CycleResultRepository) {
	props := &countingProps{TableService: steam.NewTableService()}
	repo := memory.NewCycleResultRepository()
	return NewCycleAnalysisService(props, repo, strict, quietLogger()), props, repo
}

func f64(v float64) *float64 { return &v }

func TestCycleAnalysisService_Analyze(t *testing.T) {
	svc, _, _ := newAnalysis(true)

	resp, err := svc.Analyze(context.Background(), dto.AnalyzeCycleRequest{
		PLow:     8,
		PHigh:    8000,
		Metadata: dto.RequestMetadata{RequestID: "req-1"},
	})
	require.NoError(t, err)

	assert.InDelta(t, 37.07, resp.Result.Efficiency, 0.05)
	assert.Equal(t, entities.DefaultCycleName, resp.Result.Name())
	assert.Equal(t, "req-1", resp.Metadata.RequestID)
	assert.False(t, resp.Cached)
}

func TestCycleAnalysisService_Analyze_SuperheatRatio(t *testing.T) {
	svc, _, _ := newAnalysis(true)

	resp, err := svc.Analyze(context.Background(), dto.AnalyzeCycleRequest{
		PLow:           8,
		PHigh:          8000,
		SuperheatRatio: f64(1.7),
	})
	require.NoError(t, err)

	temp, ok := resp.Result.Spec.Inlet.Temperature()
	require.True(t, ok)
	assert.InDelta(t, 1.7*295.01, temp, 1e-9)
	assert.Greater(t, resp.Result.Efficiency, 37.07)
}

func TestCycleAnalysisService_ResolveSpec_Errors(t *testing.T) {
	tests := []struct {
		name   string
		tHigh  *float64
		ratio  *float64
		pHigh  float64
		field  string
		isData bool
	}{
		{name: "both inlet fields", tHigh: f64(500), ratio: f64(1.5), pHigh: 8000, field: "t_high"},
		{name: "ratio not above one", ratio: f64(1), pHigh: 8000, field: "superheat_ratio"},
		{name: "saturation out of range", ratio: f64(1.5), pHigh: 50000, isData: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newAnalysis(true)

			_, err := svc.ResolveSpec(context.Background(), "c", 8, tt.pHigh, tt.tHigh, tt.ratio)
			require.Error(t, err)

			if tt.isData {
				var outOfRange *entities.PropertyOutOfRangeError
				assert.True(t, errors.As(err, &outOfRange))
				return
			}
			var verr *apperrors.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestCycleAnalysisService_Summarize_Memoizes(t *testing.T) {
	svc, props, repo := newAnalysis(true)
	spec := entities.NewCycleSpec("memo", 8, 8000, values.Saturated())

	first, cached, err := svc.Summarize(context.Background(), spec)
	require.NoError(t, err)
	assert.False(t, cached)
	calls := props.Calls()
	assert.Equal(t, 4, calls)

	second, cached, err := svc.Summarize(context.Background(), spec)
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Same(t, first, second)
	assert.Equal(t, calls, props.Calls(), "memo hit must not touch the tables")
	assert.Equal(t, 1, repo.Len())

	require.NoError(t, svc.Invalidate(context.Background(), spec))
	_, cached, err = svc.Summarize(context.Background(), spec)
	require.NoError(t, err)
	assert.False(t, cached)
}

func TestCycleAnalysisService_Summarize_FailuresNotStored(t *testing.T) {
	svc, _, repo := newAnalysis(true)
	spec := entities.NewCycleSpec("degenerate", 100, 100, values.Saturated())

	_, _, err := svc.Summarize(context.Background(), spec)
	var degenerate *entities.DegenerateCycleError
	require.True(t, errors.As(err, &degenerate))
	assert.Equal(t, 0, repo.Len())
}

func TestCycleAnalysisService_Summarize_Concurrent(t *testing.T) {
	svc, _, repo := newAnalysis(true)
	spec := entities.NewCycleSpec("shared", 10, 4000, values.Superheated(400))

	var wg sync.WaitGroup
	results := make([]*entities.CycleResult, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, _, err := svc.Summarize(context.Background(), spec)
			assert.NoError(t, err)
			results[i] = r
		}()
	}
	wg.Wait()

	for _, r := range results[1:] {
		require.NotNil(t, r)
		assert.Equal(t, results[0].Efficiency, r.Efficiency)
	}
	assert.Equal(t, 1, repo.Len())
}

func TestCycleAnalysisService_Summarize_CancelledCallerDoesNotFailOthers(t *testing.T) {
	props := &gatedProps{
		TableService: steam.NewTableService(),
		entered:      make(chan struct{}),
		release:      make(chan struct{}),
	}
	repo := memory.NewCycleResultRepository()
	svc := NewCycleAnalysisService(props, repo, true, quietLogger())
	spec := entities.NewCycleSpec("", 8, 8000, values.Saturated())

	ctx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, _, err := svc.Summarize(ctx, spec)
		firstErr <- err
	}()

	<-props.entered
	cancel()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	type outcome struct {
		result *entities.CycleResult
		err    error
	}
	second := make(chan outcome, 1)
	go func() {
		result, _, err := svc.Summarize(context.Background(), spec)
		second <- outcome{result: result, err: err}
	}()

	close(props.release)
	got := <-second
	require.NoError(t, got.err)
	assert.InDelta(t, 37.07, got.result.Efficiency, 0.05)
	assert.Equal(t, int32(4), props.calls.Load(), "one shared computation")
	assert.Equal(t, 1, repo.Len())
}

func TestCycleAnalysisService_Lenient(t *testing.T) {
	svc, _, _ := newAnalysis(false)
	assert.False(t, svc.Strict())

	resp, err := svc.Analyze(context.Background(), dto.AnalyzeCycleRequest{PLow: 4000, PHigh: 2000})
	require.NoError(t, err)
	assert.Less(t, resp.Result.PumpWork, 0.0)
}
