package services

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/rankine-dev/rankine/internal/domain/entities"
)

// CycleSpecification decides whether a study cycle should be analysed.
// It returns false with a human-readable reason when the cycle is skipped.
type CycleSpecification interface {
	IsSatisfiedBy(c entities.StudyCycle) (bool, string)
}

// AndSpecification is satisfied when every child is.
type AndSpecification struct {
	specs []CycleSpecification
}

// NewAndSpecification combines specifications with AND.
func NewAndSpecification(specs ...CycleSpecification) *AndSpecification {
	return &AndSpecification{specs: specs}
}

// IsSatisfiedBy returns the first failing reason.
func (s *AndSpecification) IsSatisfiedBy(c entities.StudyCycle) (bool, string) {
	for _, spec := range s.specs {
		if ok, reason := spec.IsSatisfiedBy(c); !ok {
			return false, reason
		}
	}
	return true, ""
}

// ExclusiveCyclesSpecification keeps only the listed cycle IDs.
type ExclusiveCyclesSpecification struct {
	ids map[string]bool
}

// NewExclusiveCyclesSpecification creates a new ExclusiveCyclesSpecification.
func NewExclusiveCyclesSpecification(ids map[string]bool) *ExclusiveCyclesSpecification {
	return &ExclusiveCyclesSpecification{ids: ids}
}

// IsSatisfiedBy checks membership.
func (s *ExclusiveCyclesSpecification) IsSatisfiedBy(c entities.StudyCycle) (bool, string) {
	if s.ids[c.ID] {
		return true, ""
	}
	return false, "not selected by --cycle"
}

// ExcludedCyclesSpecification drops the listed cycle IDs.
type ExcludedCyclesSpecification struct {
	ids map[string]bool
}

// NewExcludedCyclesSpecification creates a new ExcludedCyclesSpecification.
func NewExcludedCyclesSpecification(ids map[string]bool) *ExcludedCyclesSpecification {
	return &ExcludedCyclesSpecification{ids: ids}
}

// IsSatisfiedBy checks non-membership.
func (s *ExcludedCyclesSpecification) IsSatisfiedBy(c entities.StudyCycle) (bool, string) {
	if s.ids[c.ID] {
		return false, "excluded by --exclude-cycle"
	}
	return true, ""
}

// IncludedTagsSpecification keeps cycles carrying any of the tags.
type IncludedTagsSpecification struct {
	tags map[string]bool
}

// NewIncludedTagsSpecification creates a new IncludedTagsSpecification.
func NewIncludedTagsSpecification(tags map[string]bool) *IncludedTagsSpecification {
	return &IncludedTagsSpecification{tags: tags}
}

// IsSatisfiedBy checks for any matching tag.
func (s *IncludedTagsSpecification) IsSatisfiedBy(c entities.StudyCycle) (bool, string) {
	for _, tag := range c.Tags {
		if s.tags[tag] {
			return true, ""
		}
	}
	return false, "no matching tags"
}

// ExcludedTagsSpecification drops cycles carrying any of the tags.
type ExcludedTagsSpecification struct {
	tags map[string]bool
}

// NewExcludedTagsSpecification creates a new ExcludedTagsSpecification.
func NewExcludedTagsSpecification(tags map[string]bool) *ExcludedTagsSpecification {
	return &ExcludedTagsSpecification{tags: tags}
}

// IsSatisfiedBy checks that no tag is excluded.
func (s *ExcludedTagsSpecification) IsSatisfiedBy(c entities.StudyCycle) (bool, string) {
	for _, tag := range c.Tags {
		if s.tags[tag] {
			return false, fmt.Sprintf("excluded by tag %q", tag)
		}
	}
	return true, ""
}

// ExpressionSpecification filters cycles using an expr program.
type ExpressionSpecification struct {
	program *vm.Program
}

// NewExpressionSpecification creates a new ExpressionSpecification.
func NewExpressionSpecification(program *vm.Program) *ExpressionSpecification {
	return &ExpressionSpecification{program: program}
}

// IsSatisfiedBy evaluates the program against the cycle.
func (s *ExpressionSpecification) IsSatisfiedBy(c entities.StudyCycle) (bool, string) {
	if s.program == nil {
		return true, ""
	}

	output, err := expr.Run(s.program, NewCycleEnv(c))
	if err != nil {
		return false, fmt.Sprintf("filter expression error: %v", err)
	}

	result, ok := output.(bool)
	if !ok {
		return false, fmt.Sprintf("filter expression did not return boolean: %v", output)
	}
	if !result {
		return false, "excluded by --filter expression"
	}
	return true, ""
}
