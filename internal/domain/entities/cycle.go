// Package entities contains domain entities for the Rankine cycle model.
// These are pure domain types with NO infrastructure dependencies.
package entities

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rankine-dev/rankine/internal/domain/values"
)

// State names used in reports, in cycle order.
const (
	StateTurbineInlet = "Turbine Inlet"
	StateTurbineExit  = "Turbine Exit"
	StatePumpInlet    = "Pump Inlet"
	StatePumpExit     = "Pump Exit"
)

// DefaultCycleName is used when a cycle is created without a name.
const DefaultCycleName = "Rankine Cycle"

// CycleSpec is the immutable description of one ideal Rankine cycle.
// Pressures are in kPa. Pass it by value; nothing in the model mutates it.
//
// Invariants (see Validate):
// - PLow > 0 and PHigh > 0
// - PHigh > PLow when validation is strict
type CycleSpec struct {
	Name  string                `json:"name" yaml:"name"`
	Inlet values.InletCondition `json:"inlet" yaml:"inlet"`
	PLow  float64               `json:"p_low_kpa" yaml:"p_low_kpa"`
	PHigh float64               `json:"p_high_kpa" yaml:"p_high_kpa"`
}

// NewCycleSpec creates a cycle description, defaulting the name.
func NewCycleSpec(name string, pLow, pHigh float64, inlet values.InletCondition) CycleSpec {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultCycleName
	}
	return CycleSpec{
		Name:  name,
		PLow:  pLow,
		PHigh: pHigh,
		Inlet: inlet,
	}
}

// Validate checks the pressure invariants.
// Non-positive or non-finite pressures are always rejected. Inverted
// pressures (PHigh < PLow) are rejected only when strict is set; otherwise
// they are computed and produce non-physical diagnostics.
// Equal pressures are not rejected here: the model reports them as degenerate.
func (s CycleSpec) Validate(strict bool) error {
	if err := validatePressure("p_low", s.PLow); err != nil {
		return err
	}
	if err := validatePressure("p_high", s.PHigh); err != nil {
		return err
	}
	if strict && s.PHigh < s.PLow {
		return NewInvalidCycleParametersError("p_high", s.PHigh, "must exceed p_low ("+formatFloat(s.PLow)+" kPa)")
	}
	if err := s.Inlet.Validate(); err != nil {
		t, _ := s.Inlet.Temperature()
		return NewInvalidCycleParametersError("t_high", t, err.Error())
	}
	return nil
}

func validatePressure(field string, p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return NewInvalidCycleParametersError(field, p, "must be finite")
	}
	if p <= 0 {
		return NewInvalidCycleParametersError(field, p, "must be positive")
	}
	return nil
}

// Key returns a canonical identity for memoization.
// Two specs with the same key always produce the same result.
func (s CycleSpec) Key() string {
	return s.Name + "|" + formatFloat(s.PLow) + "|" + formatFloat(s.PHigh) + "|" + s.Inlet.String()
}

// ThermodynamicState is a named snapshot of one point of the cycle.
// Units: kPa, °C, kJ/kg, kJ/kg·K, m³/kg.
type ThermodynamicState struct {
	Temperature    *float64     `json:"temperature_c,omitempty" yaml:"temperature_c,omitempty"`
	Quality        *float64     `json:"quality,omitempty" yaml:"quality,omitempty"`
	Name           string       `json:"name" yaml:"name"`
	Phase          values.Phase `json:"phase" yaml:"phase"`
	Pressure       float64      `json:"pressure_kpa" yaml:"pressure_kpa"`
	Enthalpy       float64      `json:"enthalpy_kj_kg" yaml:"enthalpy_kj_kg"`
	Entropy        float64      `json:"entropy_kj_kg_k" yaml:"entropy_kj_kg_k"`
	SpecificVolume float64      `json:"specific_volume_m3_kg" yaml:"specific_volume_m3_kg"`
}

// Named returns a copy of the state carrying the given name.
func (s ThermodynamicState) Named(name string) ThermodynamicState {
	s.Name = name
	return s
}

// TemperatureValue returns the temperature and whether it is known.
func (s ThermodynamicState) TemperatureValue() (float64, bool) {
	if s.Temperature == nil {
		return 0, false
	}
	return *s.Temperature, true
}

// QualityValue returns the quality and whether it is defined.
func (s ThermodynamicState) QualityValue() (float64, bool) {
	if s.Quality == nil {
		return 0, false
	}
	return *s.Quality, true
}

// CycleResult holds the four resolved states and the derived energy quantities.
// All energies are per unit mass (kJ/kg); Efficiency is a percentage and is
// not clamped, so non-physical inputs show up as out-of-band values.
//
//nolint:govet // field order follows the report layout
type CycleResult struct {
	ID            values.AnalysisID  `json:"id" yaml:"id"`
	Spec          CycleSpec          `json:"spec" yaml:"spec"`
	TurbineInlet  ThermodynamicState `json:"turbine_inlet" yaml:"turbine_inlet"`
	TurbineExit   ThermodynamicState `json:"turbine_exit" yaml:"turbine_exit"`
	PumpInlet     ThermodynamicState `json:"pump_inlet" yaml:"pump_inlet"`
	PumpExit      ThermodynamicState `json:"pump_exit" yaml:"pump_exit"`
	TurbineWork   float64            `json:"turbine_work_kj_kg" yaml:"turbine_work_kj_kg"`
	PumpWork      float64            `json:"pump_work_kj_kg" yaml:"pump_work_kj_kg"`
	HeatAdded     float64            `json:"heat_added_kj_kg" yaml:"heat_added_kj_kg"`
	NetWork       float64            `json:"net_work_kj_kg" yaml:"net_work_kj_kg"`
	Efficiency    float64            `json:"efficiency_pct" yaml:"efficiency_pct"`
	BackWorkRatio float64            `json:"back_work_ratio" yaml:"back_work_ratio"`
	ComputedAt    time.Time          `json:"computed_at" yaml:"computed_at"`
}

// Name returns the cycle name.
func (r *CycleResult) Name() string {
	return r.Spec.Name
}

// States returns the four states in cycle order.
func (r *CycleResult) States() []ThermodynamicState {
	return []ThermodynamicState{r.TurbineInlet, r.TurbineExit, r.PumpInlet, r.PumpExit}
}

// IsPhysical reports whether the efficiency lies in the 0-100 % band.
func (r *CycleResult) IsPhysical() bool {
	return r.Efficiency > 0 && r.Efficiency < 100
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
