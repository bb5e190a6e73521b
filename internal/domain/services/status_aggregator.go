package services

import (
	"github.com/rankine-dev/rankine/internal/domain/entities"
	"github.com/rankine-dev/rankine/internal/domain/values"
)

// StatusAggregator classifies cycle outcomes and rolls them up for a study.
type StatusAggregator struct{}

// NewStatusAggregator creates a new status aggregator service.
func NewStatusAggregator() *StatusAggregator {
	return &StatusAggregator{}
}

// ClassifyResult maps a computed result onto a status.
// A nil result means the computation failed.
func (s *StatusAggregator) ClassifyResult(result *entities.CycleResult) values.Status {
	if result == nil {
		return values.StatusError
	}
	if !result.IsPhysical() {
		return values.StatusNonPhysical
	}
	return values.StatusOK
}

// AggregateStudyStatus returns the highest-precedence status.
// Skipped cycles only decide the outcome when every cycle was skipped.
func (s *StatusAggregator) AggregateStudyStatus(statuses []values.Status) values.Status {
	if len(statuses) == 0 {
		return values.StatusSkipped
	}

	aggregate := values.StatusSkipped
	allSkipped := true
	for _, st := range statuses {
		if st == values.StatusSkipped {
			continue
		}
		if allSkipped || st.Precedence() > aggregate.Precedence() {
			aggregate = st
		}
		allSkipped = false
	}
	return aggregate
}
