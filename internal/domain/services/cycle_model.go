// Package services contains domain services for the Rankine cycle model.
// These are stateless services that encapsulate the cycle thermodynamics.
package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rankine-dev/rankine/internal/domain/entities"
	"github.com/rankine-dev/rankine/internal/domain/values"
)

// degenerateHeatThreshold is the heat input (kJ/kg) below which efficiency is undefined.
const degenerateHeatThreshold = 1e-12

// PropertyResolver resolves a thermodynamic state from pressure and one
// other independent property. Implementations are pure lookups.
type PropertyResolver interface {
	Resolve(ctx context.Context, pressure float64, query values.PropertyQuery) (entities.ThermodynamicState, error)
}

// CycleModel computes ideal Rankine cycles against a property resolver.
// It holds no per-cycle state and is safe for concurrent use.
type CycleModel struct {
	props  PropertyResolver
	now    func() time.Time
	strict bool
}

// CycleModelOption configures a CycleModel.
type CycleModelOption func(*CycleModel)

// WithStrictValidation toggles rejection of inverted pressures.
func WithStrictValidation(strict bool) CycleModelOption {
	return func(m *CycleModel) {
		m.strict = strict
	}
}

// WithClock overrides the timestamp source for results.
func WithClock(now func() time.Time) CycleModelOption {
	return func(m *CycleModel) {
		m.now = now
	}
}

// NewCycleModel creates a cycle model. Strict validation is on by default.
func NewCycleModel(props PropertyResolver, opts ...CycleModelOption) *CycleModel {
	m := &CycleModel{
		props:  props,
		strict: true,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Strict reports whether inverted pressures are rejected.
func (m *CycleModel) Strict() bool {
	return m.strict
}

// ComputeEfficiency resolves the four states of the cycle and derives
// the energy balance.
//
// State 1: turbine inlet at PHigh (x=1, or the inlet temperature).
// State 2: turbine exit at PLow, isentropic from state 1.
// State 3: pump inlet, saturated liquid at PLow.
// State 4: pump exit at PHigh, isentropic from state 3. Its enthalpy is
// h3 + v3·(PHigh-PLow); the table lookup only supplies its labels.
//
// The first failing lookup aborts the computation.
func (m *CycleModel) ComputeEfficiency(ctx context.Context, spec entities.CycleSpec) (*entities.CycleResult, error) {
	if err := spec.Validate(m.strict); err != nil {
		return nil, err
	}
	if spec.PHigh == spec.PLow {
		return nil, &entities.DegenerateCycleError{
			Reason: fmt.Sprintf("p_high equals p_low (%g kPa): no pressure rise across the pump", spec.PLow),
		}
	}

	inletQuery := values.ByQuality(1)
	if t, ok := spec.Inlet.Temperature(); ok {
		inletQuery = values.ByTemperature(t)
	}

	s1, err := m.resolve(ctx, entities.StateTurbineInlet, spec.PHigh, inletQuery)
	if err != nil {
		return nil, err
	}

	s2, err := m.resolve(ctx, entities.StateTurbineExit, spec.PLow, values.ByEntropy(s1.Entropy))
	if err != nil {
		return nil, err
	}

	s3, err := m.resolve(ctx, entities.StatePumpInlet, spec.PLow, values.ByQuality(0))
	if err != nil {
		return nil, err
	}

	s4, err := m.resolve(ctx, entities.StatePumpExit, spec.PHigh, values.ByEntropy(s3.Entropy))
	if err != nil {
		return nil, err
	}
	s4.Enthalpy = s3.Enthalpy + s3.SpecificVolume*(spec.PHigh-spec.PLow)

	turbineWork := s1.Enthalpy - s2.Enthalpy
	pumpWork := s4.Enthalpy - s3.Enthalpy
	heatAdded := s1.Enthalpy - s4.Enthalpy

	if math.Abs(heatAdded) < degenerateHeatThreshold {
		return nil, &entities.DegenerateCycleError{
			Reason:    "heat added is zero",
			HeatAdded: heatAdded,
		}
	}

	netWork := turbineWork - pumpWork
	var backWork float64
	if turbineWork != 0 {
		backWork = pumpWork / turbineWork
	}

	return &entities.CycleResult{
		ID:            values.NewAnalysisID(),
		Spec:          spec,
		TurbineInlet:  s1,
		TurbineExit:   s2,
		PumpInlet:     s3,
		PumpExit:      s4,
		TurbineWork:   turbineWork,
		PumpWork:      pumpWork,
		HeatAdded:     heatAdded,
		NetWork:       netWork,
		Efficiency:    100 * netWork / heatAdded,
		BackWorkRatio: backWork,
		ComputedAt:    m.now(),
	}, nil
}

func (m *CycleModel) resolve(
	ctx context.Context,
	name string,
	pressure float64,
	query values.PropertyQuery,
) (entities.ThermodynamicState, error) {
	if err := ctx.Err(); err != nil {
		return entities.ThermodynamicState{}, err
	}
	state, err := m.props.Resolve(ctx, pressure, query)
	if err != nil {
		return entities.ThermodynamicState{}, fmt.Errorf("resolving %s state at %g kPa (%s): %w", name, pressure, query, err)
	}
	return state.Named(name), nil
}
