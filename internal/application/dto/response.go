package dto

import (
	"time"

	"github.com/rankine-dev/rankine/internal/domain/entities"
	"github.com/rankine-dev/rankine/internal/domain/values"
)

// AnalyzeCycleResponse contains the result of a single analysis.
type AnalyzeCycleResponse struct {
	Result   *entities.CycleResult
	Metadata ResponseMetadata
	// Cached is true when the result came from the memo
	Cached bool
}

// RunStudyResponse contains the report of a study run.
type RunStudyResponse struct {
	Report   *Report
	Metadata ResponseMetadata
}

// SweepResponse contains the report of a pressure sweep.
type SweepResponse struct {
	Report   *Report
	Metadata ResponseMetadata
}

// ResponseMetadata contains metadata about the response.
type ResponseMetadata struct {
	// RequestID from the original request
	RequestID string

	// ProcessedAt is when the request was processed
	ProcessedAt time.Time

	// Duration is how long the request took
	Duration time.Duration
}

// Report is the formatter-facing view of one or more analysed cycles.
// Entries keep the order in which cycles were defined.
type Report struct {
	GeneratedAt time.Time     `json:"generated_at" yaml:"generated_at"`
	Title       string        `json:"title" yaml:"title"`
	Version     string        `json:"version,omitempty" yaml:"version,omitempty"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Status      values.Status `json:"status" yaml:"status"`
	Entries     []ReportEntry `json:"cycles" yaml:"cycles"`
	Summary     ReportSummary `json:"summary" yaml:"summary"`
	Duration    time.Duration `json:"duration_ns" yaml:"duration_ns"`
}

// ReportEntry is one cycle of a report.
type ReportEntry struct {
	Result     *entities.CycleResult `json:"result,omitempty" yaml:"result,omitempty"`
	ID         string                `json:"id" yaml:"id"`
	Status     values.Status         `json:"status" yaml:"status"`
	Error      string                `json:"error,omitempty" yaml:"error,omitempty"`
	SkipReason string                `json:"skip_reason,omitempty" yaml:"skip_reason,omitempty"`
	Spec       entities.CycleSpec    `json:"spec" yaml:"spec"`
}

// ReportSummary aggregates a report.
type ReportSummary struct {
	BestCycleID    string  `json:"best_cycle_id,omitempty" yaml:"best_cycle_id,omitempty"`
	Total          int     `json:"total" yaml:"total"`
	Succeeded      int     `json:"succeeded" yaml:"succeeded"`
	NonPhysical    int     `json:"non_physical" yaml:"non_physical"`
	Failed         int     `json:"failed" yaml:"failed"`
	Skipped        int     `json:"skipped" yaml:"skipped"`
	BestEfficiency float64 `json:"best_efficiency_pct" yaml:"best_efficiency_pct"`
	MeanEfficiency float64 `json:"mean_efficiency_pct" yaml:"mean_efficiency_pct"`
}

// HasFailures reports whether any cycle failed.
func (r *Report) HasFailures() bool {
	return r.Summary.Failed > 0
}

// Summarize recomputes the summary from the entries.
// Only results in the 0-100 % band take part in best/mean efficiency.
func (r *Report) Summarize() {
	s := ReportSummary{Total: len(r.Entries)}
	var sum float64
	for _, e := range r.Entries {
		switch e.Status {
		case values.StatusOK:
			s.Succeeded++
			sum += e.Result.Efficiency
			if s.BestCycleID == "" || e.Result.Efficiency > s.BestEfficiency {
				s.BestCycleID = e.ID
				s.BestEfficiency = e.Result.Efficiency
			}
		case values.StatusNonPhysical:
			s.NonPhysical++
		case values.StatusError:
			s.Failed++
		case values.StatusSkipped:
			s.Skipped++
		}
	}
	if s.Succeeded > 0 {
		s.MeanEfficiency = sum / float64(s.Succeeded)
	}
	r.Summary = s
}

// NewCycleReport wraps a single analysed cycle in a report.
func NewCycleReport(result *entities.CycleResult, status values.Status, generatedAt time.Time) *Report {
	r := &Report{
		GeneratedAt: generatedAt,
		Title:       result.Name(),
		Status:      status,
		Entries: []ReportEntry{{
			ID:     result.Name(),
			Status: status,
			Spec:   result.Spec,
			Result: result,
		}},
	}
	r.Summarize()
	return r
}
