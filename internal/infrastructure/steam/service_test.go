package steam

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rankine-dev/rankine/internal/domain/entities"
	"github.com/rankine-dev/rankine/internal/domain/values"
)

func resolve(t *testing.T, p float64, q values.PropertyQuery) entities.ThermodynamicState {
	t.Helper()
	state, err := NewTableService().Resolve(context.Background(), p, q)
	require.NoError(t, err)
	return state
}

func TestTableService_Quality(t *testing.T) {
	t.Parallel()

	t.Run("saturated liquid at table row", func(t *testing.T) {
		state := resolve(t, 8, values.ByQuality(0))

		assert.Equal(t, 173.88, state.Enthalpy)
		assert.Equal(t, 0.5926, state.Entropy)
		assert.Equal(t, 0.0010084, state.SpecificVolume)
		assert.Equal(t, values.PhaseSaturatedLiquid, state.Phase)
		temp, ok := state.TemperatureValue()
		require.True(t, ok)
		assert.Equal(t, 41.51, temp)
		x, ok := state.QualityValue()
		require.True(t, ok)
		assert.Equal(t, 0.0, x)
	})

	t.Run("saturated vapor at table row", func(t *testing.T) {
		state := resolve(t, 8000, values.ByQuality(1))

		assert.Equal(t, 2758.7, state.Enthalpy)
		assert.Equal(t, 5.7450, state.Entropy)
		assert.Equal(t, values.PhaseSaturatedVapor, state.Phase)
	})

	t.Run("two-phase mixture", func(t *testing.T) {
		state := resolve(t, 100, values.ByQuality(0.5))

		assert.InDelta(t, 0.5*417.51+0.5*2675.0, state.Enthalpy, 1e-9)
		assert.Equal(t, values.PhaseTwoPhase, state.Phase)
	})

	t.Run("interpolated pressure", func(t *testing.T) {
		state := resolve(t, 8500, values.ByQuality(1))

		assert.InDelta(t, (2758.7+2742.9)/2, state.Enthalpy, 1e-9)
		assert.Equal(t, 8500.0, state.Pressure)
		temp, _ := state.TemperatureValue()
		assert.InDelta(t, (295.01+303.35)/2, temp, 1e-9)
	})
}

func TestTableService_InvalidQuality(t *testing.T) {
	t.Parallel()

	for _, x := range []float64{-0.1, 1.2, math.NaN()} {
		_, err := NewTableService().Resolve(context.Background(), 100, values.ByQuality(x))

		var invalid *entities.InvalidPropertyError
		require.True(t, errors.As(err, &invalid), "x=%v", x)
		assert.Equal(t, "quality", invalid.Property)
	}
}

func TestTableService_Temperature(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		pressure  float64
		temp      float64
		enthalpy  float64
		entropy   float64
		phase     values.Phase
		tolerance float64
	}{
		{name: "superheated table row", pressure: 8000, temp: 500, enthalpy: 3399.5, entropy: 6.7266, phase: values.PhaseSuperheated, tolerance: 1e-9},
		{name: "superheated between rows", pressure: 8000, temp: 1.7 * 295.01, enthalpy: 3403.18, entropy: 6.7311, phase: values.PhaseSuperheated, tolerance: 0.01},
		{name: "superheated between blocks", pressure: 9000, temp: 500, enthalpy: 3387.3, entropy: 6.66305, phase: values.PhaseSuperheated, tolerance: 1e-6},
		{name: "at saturation", pressure: 8000, temp: 295.01, enthalpy: 2758.7, entropy: 5.7450, phase: values.PhaseSaturatedVapor, tolerance: 1e-9},
		{name: "compressed liquid", pressure: 8000, temp: 41.51, enthalpy: 173.88, entropy: 0.5926, phase: values.PhaseCompressedLiquid, tolerance: 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := resolve(t, tt.pressure, values.ByTemperature(tt.temp))

			assert.InDelta(t, tt.enthalpy, state.Enthalpy, tt.tolerance)
			assert.InDelta(t, tt.entropy, state.Entropy, math.Max(tt.tolerance, 1e-4))
			assert.Equal(t, tt.phase, state.Phase)
		})
	}
}

func TestTableService_SuperheatedVolumeBetweenBlocks(t *testing.T) {
	t.Parallel()

	state := resolve(t, 9000, values.ByTemperature(500))

	expected := (8000*0.04177 + 10000*0.03281) / 2 / 9000
	assert.InDelta(t, expected, state.SpecificVolume, 1e-12)
}

func TestTableService_Entropy(t *testing.T) {
	t.Parallel()

	t.Run("two-phase turbine exit", func(t *testing.T) {
		state := resolve(t, 8, values.ByEntropy(5.745))

		x, ok := state.QualityValue()
		require.True(t, ok)
		assert.InDelta(t, (5.745-0.5926)/(8.2287-0.5926), x, 1e-12)
		assert.InDelta(t, 1795.37, state.Enthalpy, 0.02)
		assert.Equal(t, 5.745, state.Entropy)
		assert.Equal(t, values.PhaseTwoPhase, state.Phase)
	})

	t.Run("compressed liquid pump exit", func(t *testing.T) {
		state := resolve(t, 8000, values.ByEntropy(0.5926))

		temp, ok := state.TemperatureValue()
		require.True(t, ok)
		assert.Equal(t, 41.51, temp)
		assert.Equal(t, 173.88, state.Enthalpy)
		assert.Equal(t, values.PhaseCompressedLiquid, state.Phase)
		_, ok = state.QualityValue()
		assert.False(t, ok)
	})

	t.Run("superheated table row", func(t *testing.T) {
		state := resolve(t, 8000, values.ByEntropy(6.7266))

		temp, _ := state.TemperatureValue()
		assert.Equal(t, 500.0, temp)
		assert.Equal(t, 3399.5, state.Enthalpy)
		assert.Equal(t, values.PhaseSuperheated, state.Phase)
	})

	t.Run("superheated exit below 10 kPa", func(t *testing.T) {
		state := resolve(t, 5, values.ByEntropy(8.7722))

		temp, _ := state.TemperatureValue()
		assert.Equal(t, 100.0, temp)
		assert.Equal(t, 2688.6, state.Enthalpy)

		between := resolve(t, 8, values.ByEntropy(8.6))
		temp, _ = between.TemperatureValue()
		assert.Equal(t, values.PhaseSuperheated, between.Phase)
		assert.Greater(t, temp, 50.0)
		assert.Less(t, temp, 150.0)
		assert.Greater(t, between.Enthalpy, 2577.0)
	})

	t.Run("saturated liquid boundary", func(t *testing.T) {
		state := resolve(t, 100, values.ByEntropy(1.3028))
		assert.Equal(t, values.PhaseSaturatedLiquid, state.Phase)
	})
}

func TestTableService_OutOfRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pressure float64
		query    values.PropertyQuery
		property string
	}{
		{name: "pressure below table", pressure: 0.5, query: values.ByQuality(1), property: "pressure"},
		{name: "pressure above table", pressure: 25000, query: values.ByQuality(1), property: "pressure"},
		{name: "pressure nan", pressure: math.NaN(), query: values.ByQuality(1), property: "pressure"},
		{name: "temperature above table", pressure: 8000, query: values.ByTemperature(800), property: "temperature"},
		{name: "superheated below lowest block", pressure: 3, query: values.ByTemperature(300), property: "superheated pressure"},
		{name: "superheated above highest block", pressure: 18000, query: values.ByTemperature(500), property: "superheated pressure"},
		{name: "entropy above table", pressure: 10, query: values.ByEntropy(11), property: "entropy"},
		{name: "entropy below table", pressure: 8000, query: values.ByEntropy(0.05), property: "entropy"},
		{name: "liquid temperature below table", pressure: 100, query: values.ByTemperature(1), property: "temperature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTableService().Resolve(context.Background(), tt.pressure, tt.query)

			var outOfRange *entities.PropertyOutOfRangeError
			require.True(t, errors.As(err, &outOfRange), "got %v", err)
			assert.Equal(t, tt.property, outOfRange.Property)
		})
	}
}

func TestTableService_InvalidQuery(t *testing.T) {
	t.Parallel()

	_, err := NewTableService().Resolve(context.Background(), 100, values.PropertyQuery{})
	assert.Error(t, err)
}

func TestTableService_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewTableService().Resolve(ctx, 100, values.ByQuality(1))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = NewTableService().SaturationTemperature(ctx, 100)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTableService_SaturationTemperature(t *testing.T) {
	t.Parallel()
	svc := NewTableService()

	tsat, err := svc.SaturationTemperature(context.Background(), 8000)
	require.NoError(t, err)
	assert.Equal(t, 295.01, tsat)

	tsat, err = svc.SaturationTemperature(context.Background(), 8500)
	require.NoError(t, err)
	assert.InDelta(t, 299.18, tsat, 1e-9)

	_, err = svc.SaturationTemperature(context.Background(), 0)
	assert.Error(t, err)
}

func TestPressureRange(t *testing.T) {
	lo, hi := PressureRange()
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 20000.0, hi)
}
