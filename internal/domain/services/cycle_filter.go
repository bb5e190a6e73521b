package services

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/rankine-dev/rankine/internal/domain/entities"
)

// CycleEnv defines the variables available to filter expressions.
// Unset pressures and temperatures are exposed as 0.
type CycleEnv struct {
	ID    string   `expr:"id"`
	Name  string   `expr:"name"`
	Tags  []string `expr:"tags"`
	PLow  float64  `expr:"p_low"`
	PHigh float64  `expr:"p_high"`
	THigh float64  `expr:"t_high"`
}

// NewCycleEnv builds the expression environment for a cycle.
func NewCycleEnv(c entities.StudyCycle) CycleEnv {
	env := CycleEnv{
		ID:   c.ID,
		Name: c.DisplayName(),
		Tags: c.Tags,
	}
	if c.PLow != nil {
		env.PLow = *c.PLow
	}
	if c.PHigh != nil {
		env.PHigh = *c.PHigh
	}
	if c.THigh != nil {
		env.THigh = *c.THigh
	}
	return env
}

// CompileFilter compiles a boolean filter expression over CycleEnv.
func CompileFilter(expression string) (*vm.Program, error) {
	program, err := expr.Compile(expression, expr.Env(CycleEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression %q: %w", expression, err)
	}
	return program, nil
}

// CycleFilter selects study cycles by ID, tag and expression.
type CycleFilter struct {
	exclusiveCycleIDs map[string]bool
	excludeCycleIDs   map[string]bool
	excludeTags       map[string]bool
	includeTags       map[string]bool
	filterProgram     *vm.Program
}

// NewCycleFilter initializes a new empty filter that accepts everything.
func NewCycleFilter() *CycleFilter {
	return &CycleFilter{
		exclusiveCycleIDs: make(map[string]bool),
		excludeCycleIDs:   make(map[string]bool),
		excludeTags:       make(map[string]bool),
		includeTags:       make(map[string]bool),
	}
}

// WithExclusiveCycles restricts the run to ONLY the listed cycle IDs.
// If set, all other filters are ignored.
func (f *CycleFilter) WithExclusiveCycles(ids []string) *CycleFilter {
	f.exclusiveCycleIDs = toSet(ids)
	return f
}

// WithExcludedCycles excludes specific cycle IDs.
func (f *CycleFilter) WithExcludedCycles(ids []string) *CycleFilter {
	f.excludeCycleIDs = toSet(ids)
	return f
}

// WithExcludedTags excludes cycles with any of these tags.
func (f *CycleFilter) WithExcludedTags(tags []string) *CycleFilter {
	f.excludeTags = toSet(tags)
	return f
}

// WithIncludedTags includes only cycles with any of these tags.
func (f *CycleFilter) WithIncludedTags(tags []string) *CycleFilter {
	f.includeTags = toSet(tags)
	return f
}

// WithFilterExpression applies a compiled expr program.
func (f *CycleFilter) WithFilterExpression(program *vm.Program) *CycleFilter {
	f.filterProgram = program
	return f
}

// ShouldRun reports whether the cycle matches, with a reason when skipped.
func (f *CycleFilter) ShouldRun(c entities.StudyCycle) (bool, string) {
	if len(f.exclusiveCycleIDs) > 0 {
		return NewExclusiveCyclesSpecification(f.exclusiveCycleIDs).IsSatisfiedBy(c)
	}

	var specs []CycleSpecification
	if len(f.excludeCycleIDs) > 0 {
		specs = append(specs, NewExcludedCyclesSpecification(f.excludeCycleIDs))
	}
	if len(f.excludeTags) > 0 {
		specs = append(specs, NewExcludedTagsSpecification(f.excludeTags))
	}
	if len(f.includeTags) > 0 {
		specs = append(specs, NewIncludedTagsSpecification(f.includeTags))
	}
	if f.filterProgram != nil {
		specs = append(specs, NewExpressionSpecification(f.filterProgram))
	}

	return NewAndSpecification(specs...).IsSatisfiedBy(c)
}

func toSet(slice []string) map[string]bool {
	s := make(map[string]bool, len(slice))
	for _, item := range slice {
		if item != "" {
			s[item] = true
		}
	}
	return s
}
