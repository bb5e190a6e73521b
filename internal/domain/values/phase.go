package values

import "fmt"

// Phase labels the region of the water/steam diagram a state falls in.
type Phase string

const (
	// PhaseCompressedLiquid is liquid below its saturation temperature
	PhaseCompressedLiquid Phase = "compressed-liquid"
	// PhaseSaturatedLiquid is liquid on the saturation line (x = 0)
	PhaseSaturatedLiquid Phase = "saturated-liquid"
	// PhaseTwoPhase is a liquid-vapor mixture (0 < x < 1)
	PhaseTwoPhase Phase = "two-phase"
	// PhaseSaturatedVapor is vapor on the saturation line (x = 1)
	PhaseSaturatedVapor Phase = "saturated-vapor"
	// PhaseSuperheated is vapor above its saturation temperature
	PhaseSuperheated Phase = "superheated"
)

// PhaseForQuality returns the saturated phase matching a vapor mass fraction.
// x must already be within [0, 1].
func PhaseForQuality(x float64) Phase {
	switch x {
	case 0:
		return PhaseSaturatedLiquid
	case 1:
		return PhaseSaturatedVapor
	default:
		return PhaseTwoPhase
	}
}

// IsSaturated returns true for states on or inside the saturation dome.
func (p Phase) IsSaturated() bool {
	return p == PhaseSaturatedLiquid || p == PhaseTwoPhase || p == PhaseSaturatedVapor
}

// IsLiquid returns true for compressed or saturated liquid.
func (p Phase) IsLiquid() bool {
	return p == PhaseCompressedLiquid || p == PhaseSaturatedLiquid
}

// IsVapor returns true for saturated or superheated vapor.
func (p Phase) IsVapor() bool {
	return p == PhaseSaturatedVapor || p == PhaseSuperheated
}

// Validate returns an error if the phase value is invalid
func (p Phase) Validate() error {
	switch p {
	case PhaseCompressedLiquid, PhaseSaturatedLiquid, PhaseTwoPhase, PhaseSaturatedVapor, PhaseSuperheated:
		return nil
	default:
		return fmt.Errorf("invalid phase: %s", p)
	}
}

// String returns the string representation
func (p Phase) String() string {
	return string(p)
}
