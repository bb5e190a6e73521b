package services

import (
	"fmt"

	"github.com/rankine-dev/rankine/internal/domain/entities"
)

// StudyCompiler turns a loaded study into a validated one.
//
// Compilation steps:
// 1. Deep copy the raw study (prevent mutation)
// 2. Apply defaults to cycles
// 3. Validate invariants
type StudyCompiler struct{}

// NewStudyCompiler creates a new study compiler service.
func NewStudyCompiler() *StudyCompiler {
	return &StudyCompiler{}
}

// Compile returns a validated copy of raw. The input is not modified.
func (c *StudyCompiler) Compile(raw *entities.Study) (*entities.Study, error) {
	if raw == nil {
		return nil, fmt.Errorf("cannot compile nil study")
	}

	compiled := DeepCopyStudy(raw)
	c.applyDefaults(compiled)

	if err := compiled.Validate(); err != nil {
		return nil, fmt.Errorf("study validation failed: %w", err)
	}
	return compiled, nil
}

func (c *StudyCompiler) applyDefaults(study *entities.Study) {
	defaults := study.Defaults
	if defaults == nil {
		return
	}

	for i := range study.Cycles {
		cycle := &study.Cycles[i]
		if cycle.PLow == nil {
			cycle.PLow = copyFloat(defaults.PLow)
		}
		if cycle.PHigh == nil {
			cycle.PHigh = copyFloat(defaults.PHigh)
		}
		cycle.Tags = mergeStringSliceDedup(defaults.Tags, cycle.Tags)
	}
}
