// Package services contains application use cases.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/rankine-dev/rankine/internal/application/dto"
	apperrors "github.com/rankine-dev/rankine/internal/application/errors"
	"github.com/rankine-dev/rankine/internal/application/ports"
	"github.com/rankine-dev/rankine/internal/domain/entities"
	"github.com/rankine-dev/rankine/internal/domain/repositories"
	"github.com/rankine-dev/rankine/internal/domain/services"
	"github.com/rankine-dev/rankine/internal/domain/values"
)

// CycleAnalysisService computes cycles and memoizes their results.
// Results are keyed by CycleSpec.Key; failures are never stored.
type CycleAnalysisService struct {
	props   ports.PropertyService
	model   *services.CycleModel
	results repositories.CycleResultRepository
	flight  singleflight.Group
	logger  *slog.Logger
}

// NewCycleAnalysisService creates a new cycle analysis service.
func NewCycleAnalysisService(
	props ports.PropertyService,
	results repositories.CycleResultRepository,
	strict bool,
	logger *slog.Logger,
) *CycleAnalysisService {
	if logger == nil {
		logger = slog.Default()
	}

	return &CycleAnalysisService{
		props:   props,
		model:   services.NewCycleModel(props, services.WithStrictValidation(strict)),
		results: results,
		logger:  logger,
	}
}

// Analyze runs a single cycle analysis request.
func (s *CycleAnalysisService) Analyze(ctx context.Context, req dto.AnalyzeCycleRequest) (*dto.AnalyzeCycleResponse, error) {
	startTime := time.Now()

	spec, err := s.ResolveSpec(ctx, req.Name, req.PLow, req.PHigh, req.THigh, req.SuperheatRatio)
	if err != nil {
		return nil, err
	}

	s.logger.Info("analyzing cycle", "name", spec.Name, "p_low", spec.PLow, "p_high", spec.PHigh, "inlet", spec.Inlet.String())

	result, cached, err := s.Summarize(ctx, spec)
	if err != nil {
		return nil, apperrors.NewAnalysisError(spec.Name, "computing cycle", err)
	}

	s.logger.Info("cycle analyzed", "name", spec.Name, "efficiency", result.Efficiency, "cached", cached)

	return &dto.AnalyzeCycleResponse{
		Result: result,
		Cached: cached,
		Metadata: dto.ResponseMetadata{
			RequestID:   req.Metadata.RequestID,
			ProcessedAt: time.Now(),
			Duration:    time.Since(startTime),
		},
	}, nil
}

// ResolveSpec builds a cycle description from request fields.
// A superheat ratio fixes the inlet at ratio·Tsat(pHigh).
func (s *CycleAnalysisService) ResolveSpec(
	ctx context.Context,
	name string,
	pLow, pHigh float64,
	tHigh, superheatRatio *float64,
) (entities.CycleSpec, error) {
	if tHigh != nil && superheatRatio != nil {
		return entities.CycleSpec{}, apperrors.NewValidationError("t_high", "t_high and superheat_ratio are mutually exclusive")
	}

	inletTemperature := tHigh
	if superheatRatio != nil {
		if *superheatRatio <= 1 {
			return entities.CycleSpec{}, apperrors.NewValidationError("superheat_ratio", "must be greater than 1")
		}
		tsat, err := s.props.SaturationTemperature(ctx, pHigh)
		if err != nil {
			return entities.CycleSpec{}, apperrors.NewAnalysisError(name, "resolving saturation temperature", err)
		}
		t := *superheatRatio * tsat
		inletTemperature = &t
		s.logger.Debug("inlet from superheat ratio", "ratio", *superheatRatio, "t_sat", tsat, "t_high", t)
	}

	return entities.NewCycleSpec(name, pLow, pHigh, values.InletFromOptional(inletTemperature)), nil
}

// Summarize returns the memoized result for spec, computing it on a miss.
// Concurrent misses for the same spec share one computation.
// The boolean reports whether the result came from the memo.
func (s *CycleAnalysisService) Summarize(ctx context.Context, spec entities.CycleSpec) (*entities.CycleResult, bool, error) {
	key := spec.Key()

	if result, err := s.results.FindByKey(ctx, key); err == nil {
		s.logger.Debug("memo hit", "key", key)
		return result, true, nil
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, false, fmt.Errorf("reading memo: %w", err)
	}

	// The shared computation is detached from the first caller's
	// cancellation; each caller stops waiting on its own context.
	flightCtx := context.WithoutCancel(ctx)
	ch := s.flight.DoChan(key, func() (interface{}, error) {
		// another caller may have stored it while we waited
		if result, err := s.results.FindByKey(flightCtx, key); err == nil {
			return result, nil
		}

		result, err := s.model.ComputeEfficiency(flightCtx, spec)
		if err != nil {
			s.logger.Debug("cycle computation failed", "key", key, "error", err)
			return nil, err
		}
		if err := s.results.Save(flightCtx, result); err != nil {
			return nil, fmt.Errorf("storing memo: %w", err)
		}
		return result, nil
	})

	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, false, res.Err
		}
		return res.Val.(*entities.CycleResult), false, nil
	}
}

// Invalidate drops the memoized result for spec.
func (s *CycleAnalysisService) Invalidate(ctx context.Context, spec entities.CycleSpec) error {
	s.logger.Debug("memo invalidated", "key", spec.Key())
	return s.results.Delete(ctx, spec.Key())
}

// Strict reports whether inverted pressures are rejected.
func (s *CycleAnalysisService) Strict() bool {
	return s.model.Strict()
}
