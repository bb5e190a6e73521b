package entities

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rankine-dev/rankine/internal/domain/values"
)

// Cycle ID must be alphanumeric with dashes and underscores
var cycleIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Study is a named batch of cycles analysed together.
// This is the aggregate root of a study file.
//
// Invariants Enforced:
// - Study name is required
// - At least one cycle
// - Cycle IDs are unique and well formed
// - Every cycle has both pressures once defaults are applied
// - A cycle fixes its inlet by at most one of t_high / superheat_ratio
type Study struct {
	Vars     map[string]interface{} `yaml:"vars,omitempty"`
	Defaults *StudyDefaults         `yaml:"defaults,omitempty"`
	Metadata StudyMetadata          `yaml:"study"`
	Extends  []string               `yaml:"extends,omitempty"`
	Cycles   []StudyCycle           `yaml:"cycles"`
}

// StudyMetadata contains metadata about the study.
type StudyMetadata struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version,omitempty"`
	Description string `yaml:"description,omitempty"`
	Requires    string `yaml:"requires,omitempty"`
}

// StudyDefaults defines values applied to every cycle that omits them.
type StudyDefaults struct {
	PLow  *float64 `yaml:"p_low,omitempty"`
	PHigh *float64 `yaml:"p_high,omitempty"`
	Tags  []string `yaml:"tags,omitempty"`
}

// StudyCycle is one cycle entry of a study.
// Pressures are in kPa, THigh in °C. SuperheatRatio fixes the inlet
// temperature as a multiple of the saturation temperature at PHigh.
type StudyCycle struct {
	PLow           *float64 `yaml:"p_low,omitempty"`
	PHigh          *float64 `yaml:"p_high,omitempty"`
	THigh          *float64 `yaml:"t_high,omitempty"`
	SuperheatRatio *float64 `yaml:"superheat_ratio,omitempty"`
	ID             string   `yaml:"id"`
	Name           string   `yaml:"name,omitempty"`
	Description    string   `yaml:"description,omitempty"`
	Tags           []string `yaml:"tags,omitempty"`
}

// Validate validates the whole study.
// Call it after defaults have been applied.
func (s *Study) Validate() error {
	if s.Metadata.Name == "" {
		return fmt.Errorf("study name cannot be empty")
	}
	if len(s.Cycles) == 0 {
		return fmt.Errorf("study must define at least one cycle")
	}

	ids := make(map[string]bool, len(s.Cycles))
	for i, c := range s.Cycles {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("cycle %d (%s): %w", i, c.ID, err)
		}
		if ids[c.ID] {
			return fmt.Errorf("duplicate cycle ID: %s", c.ID)
		}
		ids[c.ID] = true
	}

	return nil
}

// CycleCount returns the number of cycles.
func (s *Study) CycleCount() int {
	return len(s.Cycles)
}

// GetCycle returns the cycle with the given ID, or nil.
func (s *Study) GetCycle(id string) *StudyCycle {
	for i := range s.Cycles {
		if s.Cycles[i].ID == id {
			return &s.Cycles[i]
		}
	}
	return nil
}

// HasCycle reports whether a cycle with the given ID exists.
func (s *Study) HasCycle(id string) bool {
	return s.GetCycle(id) != nil
}

// Validate checks a single cycle entry.
func (c StudyCycle) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("cycle ID is required")
	}
	if !cycleIDPattern.MatchString(c.ID) {
		return fmt.Errorf("cycle ID %q is invalid (must be alphanumeric with dashes/underscores)", c.ID)
	}
	if c.PLow == nil {
		return fmt.Errorf("p_low is required (set it on the cycle or in defaults)")
	}
	if c.PHigh == nil {
		return fmt.Errorf("p_high is required (set it on the cycle or in defaults)")
	}
	if c.THigh != nil && c.SuperheatRatio != nil {
		return fmt.Errorf("t_high and superheat_ratio are mutually exclusive")
	}
	if c.SuperheatRatio != nil && *c.SuperheatRatio <= 1 {
		return fmt.Errorf("superheat_ratio must be greater than 1")
	}
	return nil
}

// PressureCycleID returns the cycle ID used for a generated cycle at the
// given boiler pressure, e.g. "p_high-8000" or "p_high-2500_5".
func PressureCycleID(pHigh float64) string {
	return "p_high-" + strings.ReplaceAll(strconv.FormatFloat(pHigh, 'f', -1, 64), ".", "_")
}

// DisplayName returns the name, falling back to the ID.
func (c StudyCycle) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID
}

// HasTag reports whether the cycle carries the tag.
func (c StudyCycle) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ToSpec converts the entry into a cycle description.
// inletTemperature overrides THigh when non-nil (used for superheat ratios,
// which need a saturation lookup the entity cannot do).
func (c StudyCycle) ToSpec(inletTemperature *float64) CycleSpec {
	var pLow, pHigh float64
	if c.PLow != nil {
		pLow = *c.PLow
	}
	if c.PHigh != nil {
		pHigh = *c.PHigh
	}

	t := c.THigh
	if inletTemperature != nil {
		t = inletTemperature
	}

	return NewCycleSpec(c.DisplayName(), pLow, pHigh, values.InletFromOptional(t))
}
