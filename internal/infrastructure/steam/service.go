// Package steam implements the water/steam property service over
// saturation and superheated tables compiled into the binary.
package steam

import (
	"context"
	"math"

	"github.com/rankine-dev/rankine/internal/application/ports"
	"github.com/rankine-dev/rankine/internal/domain/entities"
	"github.com/rankine-dev/rankine/internal/domain/values"
)

// saturationTolerance is how close (°C) a temperature must be to Tsat to
// count as saturated vapor.
const saturationTolerance = 1e-6

// Ensure interface compliance
var _ ports.PropertyService = (*TableService)(nil)

// TableService resolves states by linear interpolation in the steam tables.
// It holds no state and is safe for concurrent use.
type TableService struct{}

// NewTableService creates a table-backed property service.
func NewTableService() *TableService {
	return &TableService{}
}

// PressureRange returns the tabulated saturation pressure range in kPa.
func PressureRange() (lo, hi float64) {
	return saturationTable[0].P, saturationTable[len(saturationTable)-1].P
}

// SaturationTemperature returns Tsat (°C) at pressure p (kPa).
func (s *TableService) SaturationTemperature(ctx context.Context, p float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	sat, err := saturationBy(p, byPressure, "pressure")
	if err != nil {
		return 0, err
	}
	return sat.T, nil
}

// Resolve returns the state at pressure p (kPa) fixed by the query.
//
// Quality must lie in [0, 1]. A temperature above Tsat is looked up in the
// superheated tables, within saturationTolerance of Tsat it is saturated
// vapor, and below Tsat it is compressed liquid approximated by saturated
// liquid at that temperature. An entropy between sf and sg is a two-phase
// mixture, above sg it is superheated, and below sf it is compressed liquid
// approximated by the saturated liquid with that entropy.
func (s *TableService) Resolve(ctx context.Context, p float64, q values.PropertyQuery) (entities.ThermodynamicState, error) {
	if err := ctx.Err(); err != nil {
		return entities.ThermodynamicState{}, err
	}
	if err := q.Validate(); err != nil {
		return entities.ThermodynamicState{}, err
	}

	sat, err := saturationBy(p, byPressure, "pressure")
	if err != nil {
		return entities.ThermodynamicState{}, err
	}
	// keep the caller's pressure exactly
	sat.P = p

	switch q.Kind() {
	case values.PropertyQuality:
		return byQuality(sat, q.Value())
	case values.PropertyTemperature:
		return byTemperatureQuery(sat, q.Value())
	default:
		return byEntropyQuery(sat, q.Value())
	}
}

func byQuality(sat saturationRow, x float64) (entities.ThermodynamicState, error) {
	if math.IsNaN(x) || x < 0 || x > 1 {
		return entities.ThermodynamicState{}, &entities.InvalidPropertyError{
			Property: "quality",
			Value:    x,
			Reason:   "must be within [0, 1]",
		}
	}
	return mixture(sat, x), nil
}

func byTemperatureQuery(sat saturationRow, t float64) (entities.ThermodynamicState, error) {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return entities.ThermodynamicState{}, outOfRange("temperature", t, saturationTable[0].T, superheatedMaxTemperature())
	}

	switch {
	case math.Abs(t-sat.T) <= saturationTolerance:
		return mixture(sat, 1), nil
	case t > sat.T:
		row, err := superheatedBy(sat.P, t, rowTemperature, "temperature")
		if err != nil {
			return entities.ThermodynamicState{}, err
		}
		return superheated(sat.P, t, row.H, row.S, row.V), nil
	default:
		liquid, err := saturationBy(t, byTemperature, "temperature")
		if err != nil {
			return entities.ThermodynamicState{}, err
		}
		return compressedLiquid(sat.P, t, liquid.Hf, liquid.Sf, liquid.Vf), nil
	}
}

func byEntropyQuery(sat saturationRow, entropy float64) (entities.ThermodynamicState, error) {
	if math.IsNaN(entropy) || math.IsInf(entropy, 0) {
		return entities.ThermodynamicState{}, outOfRange("entropy", entropy, saturationTable[0].Sf, superheatedTable[0].Rows[len(superheatedTable[0].Rows)-1].S)
	}

	switch {
	case entropy >= sat.Sf && entropy <= sat.Sg:
		x := fraction(entropy, sat.Sf, sat.Sg)
		state := mixture(sat, x)
		state.Entropy = entropy
		return state, nil
	case entropy > sat.Sg:
		row, err := superheatedBy(sat.P, entropy, rowEntropy, "entropy")
		if err != nil {
			return entities.ThermodynamicState{}, err
		}
		return superheated(sat.P, row.T, row.H, entropy, row.V), nil
	default:
		liquid, err := saturationBy(entropy, byLiquidEntropy, "entropy")
		if err != nil {
			return entities.ThermodynamicState{}, err
		}
		return compressedLiquid(sat.P, liquid.T, liquid.Hf, entropy, liquid.Vf), nil
	}
}

// mixture weights the saturated liquid and vapor properties by quality.
func mixture(sat saturationRow, x float64) entities.ThermodynamicState {
	t, q := sat.T, x
	return entities.ThermodynamicState{
		Pressure:       sat.P,
		Temperature:    &t,
		Quality:        &q,
		Enthalpy:       (1-x)*sat.Hf + x*sat.Hg,
		Entropy:        (1-x)*sat.Sf + x*sat.Sg,
		SpecificVolume: (1-x)*sat.Vf + x*sat.Vg,
		Phase:          values.PhaseForQuality(x),
	}
}

func superheated(p, t, h, s, v float64) entities.ThermodynamicState {
	return entities.ThermodynamicState{
		Pressure:       p,
		Temperature:    &t,
		Enthalpy:       h,
		Entropy:        s,
		SpecificVolume: v,
		Phase:          values.PhaseSuperheated,
	}
}

func compressedLiquid(p, t, h, s, v float64) entities.ThermodynamicState {
	return entities.ThermodynamicState{
		Pressure:       p,
		Temperature:    &t,
		Enthalpy:       h,
		Entropy:        s,
		SpecificVolume: v,
		Phase:          values.PhaseCompressedLiquid,
	}
}

func superheatedMaxTemperature() float64 {
	rows := superheatedTable[0].Rows
	return rows[len(rows)-1].T
}
