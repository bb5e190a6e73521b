package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rankine-dev/rankine/internal/application/dto"
	apperrors "github.com/rankine-dev/rankine/internal/application/errors"
	"github.com/rankine-dev/rankine/internal/application/ports"
	"github.com/rankine-dev/rankine/internal/domain/entities"
	"github.com/rankine-dev/rankine/internal/domain/services"
	"github.com/rankine-dev/rankine/internal/domain/values"
)

// StudyService runs batches of cycles: study files and pressure sweeps.
// Cycles are computed concurrently; report entries keep definition order.
type StudyService struct {
	loader        ports.StudyLoader
	validator     ports.StudyValidator
	compiler      *services.StudyCompiler
	aggregator    *services.StatusAggregator
	analysis      *CycleAnalysisService
	logger        *slog.Logger
	maxConcurrent int
}

// NewStudyService creates a new study service.
// maxConcurrent is the default concurrency when a request does not set one.
func NewStudyService(
	loader ports.StudyLoader,
	validator ports.StudyValidator,
	analysis *CycleAnalysisService,
	maxConcurrent int,
	logger *slog.Logger,
) *StudyService {
	if logger == nil {
		logger = slog.Default()
	}
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &StudyService{
		loader:        loader,
		validator:     validator,
		compiler:      services.NewStudyCompiler(),
		aggregator:    services.NewStatusAggregator(),
		analysis:      analysis,
		logger:        logger,
		maxConcurrent: maxConcurrent,
	}
}

// Run loads, validates and evaluates a study file.
func (s *StudyService) Run(ctx context.Context, req dto.RunStudyRequest) (*dto.RunStudyResponse, error) {
	startTime := time.Now()

	s.logger.Info("loading study", "path", req.StudyPath)

	study, err := s.loadAndCompile(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("study compiled and validated", "name", study.Metadata.Name, "cycles", study.CycleCount())

	filter, err := s.buildFilter(study, req.Filters)
	if err != nil {
		return nil, err
	}

	report, err := s.evaluate(ctx, study.Cycles, filter, req.Execution)
	if err != nil {
		return nil, err
	}
	report.Title = study.Metadata.Name
	report.Version = study.Metadata.Version
	report.Description = study.Metadata.Description
	report.Duration = time.Since(startTime)

	s.logger.Info("study complete",
		"status", report.Status,
		"succeeded", report.Summary.Succeeded,
		"failed", report.Summary.Failed,
		"skipped", report.Summary.Skipped)

	return &dto.RunStudyResponse{
		Report:   report,
		Metadata: responseMetadata(req.Metadata, startTime),
	}, nil
}

// Sweep evaluates one cycle per high pressure at fixed low pressure and inlet.
func (s *StudyService) Sweep(ctx context.Context, req dto.SweepRequest) (*dto.SweepResponse, error) {
	startTime := time.Now()

	if len(req.PHighs) == 0 {
		return nil, apperrors.NewValidationError("p_high", "sweep needs at least one high pressure")
	}
	if req.THigh != nil && req.SuperheatRatio != nil {
		return nil, apperrors.NewValidationError("t_high", "t_high and superheat_ratio are mutually exclusive")
	}

	name := req.Name
	if name == "" {
		name = entities.DefaultCycleName
	}

	cycles := make([]entities.StudyCycle, 0, len(req.PHighs))
	seen := make(map[string]bool, len(req.PHighs))
	for _, p := range req.PHighs {
		id := entities.PressureCycleID(p)
		if seen[id] {
			return nil, apperrors.NewValidationError("p_high", fmt.Sprintf("duplicate sweep pressure %g", p))
		}
		seen[id] = true

		pLow, pHigh := req.PLow, p
		cycles = append(cycles, entities.StudyCycle{
			ID:             id,
			Name:           fmt.Sprintf("%s @ %g kPa", name, p),
			PLow:           &pLow,
			PHigh:          &pHigh,
			THigh:          req.THigh,
			SuperheatRatio: req.SuperheatRatio,
		})
	}

	s.logger.Info("running sweep", "name", name, "p_low", req.PLow, "points", len(cycles))

	report, err := s.evaluate(ctx, cycles, services.NewCycleFilter(), req.Execution)
	if err != nil {
		return nil, err
	}
	report.Title = name + " sweep"
	report.Duration = time.Since(startTime)

	return &dto.SweepResponse{
		Report:   report,
		Metadata: responseMetadata(req.Metadata, startTime),
	}, nil
}

func (s *StudyService) loadAndCompile(ctx context.Context, req dto.RunStudyRequest) (*entities.Study, error) {
	raw, err := s.loader.LoadStudy(req.StudyPath)
	if err != nil {
		return nil, apperrors.NewValidationError("study", "failed to load study", err.Error())
	}

	s.logger.Info("study loaded", "name", raw.Metadata.Name, "version", raw.Metadata.Version)

	if !req.Options.SkipSchemaValidation {
		if err := s.validator.ValidateSchema(ctx, raw); err != nil {
			return nil, apperrors.NewValidationError("study", "schema validation failed", err.Error())
		}
	}

	study, err := s.compiler.Compile(raw)
	if err != nil {
		return nil, apperrors.NewValidationError("study", "compilation failed", err.Error())
	}

	if err := s.validator.Validate(study); err != nil {
		return nil, apperrors.NewValidationError("study", "validation failed", err.Error())
	}
	return study, nil
}

// buildFilter checks that referenced cycles exist and compiles the expression.
func (s *StudyService) buildFilter(study *entities.Study, filters dto.FilterOptions) (*services.CycleFilter, error) {
	for _, id := range filters.IncludeCycleIDs {
		if !study.HasCycle(id) {
			return nil, apperrors.NewValidationError("filters", fmt.Sprintf("--cycle references non-existent cycle: %s", id))
		}
	}
	for _, id := range filters.ExcludeCycleIDs {
		if !study.HasCycle(id) {
			return nil, apperrors.NewValidationError("filters", fmt.Sprintf("--exclude-cycle references non-existent cycle: %s", id))
		}
	}

	filter := services.NewCycleFilter().
		WithExclusiveCycles(filters.IncludeCycleIDs).
		WithExcludedCycles(filters.ExcludeCycleIDs).
		WithIncludedTags(filters.IncludeTags).
		WithExcludedTags(filters.ExcludeTags)

	if filters.FilterExpression != "" {
		program, err := services.CompileFilter(filters.FilterExpression)
		if err != nil {
			return nil, apperrors.NewValidationError(
				"filters",
				fmt.Sprintf("%v\nExample: p_high >= 4000 && 'superheated' in tags", err),
			)
		}
		filter = filter.WithFilterExpression(program)
	}
	return filter, nil
}

// evaluate computes the selected cycles with bounded concurrency.
// A failed cycle becomes an error entry unless FailFast is set.
func (s *StudyService) evaluate(
	ctx context.Context,
	cycles []entities.StudyCycle,
	filter *services.CycleFilter,
	opts dto.ExecutionOptions,
) (*dto.Report, error) {
	limit := 1
	if opts.Parallel {
		limit = opts.MaxConcurrent
		if limit <= 0 {
			limit = s.maxConcurrent
		}
	}

	entries := make([]dto.ReportEntry, len(cycles))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, c := range cycles {
		if ok, reason := filter.ShouldRun(c); !ok {
			s.logger.Debug("cycle skipped", "id", c.ID, "reason", reason)
			entries[i] = dto.ReportEntry{ID: c.ID, Status: values.StatusSkipped, SkipReason: reason}
			continue
		}

		g.Go(func() error {
			entry, err := s.runCycle(gctx, c)
			entries[i] = entry
			if err != nil && opts.FailFast {
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	statuses := make([]values.Status, len(entries))
	for i, e := range entries {
		statuses[i] = e.Status
	}

	report := &dto.Report{
		GeneratedAt: time.Now(),
		Entries:     entries,
		Status:      s.aggregator.AggregateStudyStatus(statuses),
	}
	report.Summarize()
	return report, nil
}

func (s *StudyService) runCycle(ctx context.Context, c entities.StudyCycle) (dto.ReportEntry, error) {
	entry := dto.ReportEntry{ID: c.ID}

	spec, err := s.analysis.ResolveSpec(ctx, c.DisplayName(), deref(c.PLow), deref(c.PHigh), c.THigh, c.SuperheatRatio)
	if err == nil {
		entry.Spec = spec
		var result *entities.CycleResult
		result, _, err = s.analysis.Summarize(ctx, spec)
		entry.Result = result
	}

	if err != nil {
		s.logger.Warn("cycle failed", "id", c.ID, "error", err)
		entry.Status = values.StatusError
		entry.Error = err.Error()
		return entry, apperrors.NewAnalysisError(c.ID, "computing cycle", err)
	}

	entry.Status = s.aggregator.ClassifyResult(entry.Result)
	s.logger.Debug("cycle computed", "id", c.ID, "efficiency", entry.Result.Efficiency, "status", entry.Status)
	return entry, nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func responseMetadata(req dto.RequestMetadata, startTime time.Time) dto.ResponseMetadata {
	return dto.ResponseMetadata{
		RequestID:   req.RequestID,
		ProcessedAt: time.Now(),
		Duration:    time.Since(startTime),
	}
}
