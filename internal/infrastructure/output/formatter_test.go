package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rankine-dev/rankine/internal/application/dto"
	"github.com/rankine-dev/rankine/internal/domain/entities"
	"github.com/rankine-dev/rankine/internal/domain/values"
)

func fptr(v float64) *float64 { return &v }

func sampleResult(name string, efficiency float64) *entities.CycleResult {
	return &entities.CycleResult{
		ID:   values.NewAnalysisID(),
		Spec: entities.NewCycleSpec(name, 8, 8000, values.Saturated()),
		TurbineInlet: entities.ThermodynamicState{
			Name: entities.StateTurbineInlet, Phase: values.PhaseSaturatedVapor,
			Pressure: 8000, Temperature: fptr(295.01), Quality: fptr(1),
			Enthalpy: 2758.7, Entropy: 5.745, SpecificVolume: 0.023525,
		},
		TurbineExit: entities.ThermodynamicState{
			Name: entities.StateTurbineExit, Phase: values.PhaseTwoPhase,
			Pressure: 8, Temperature: fptr(41.51), Quality: fptr(0.6755),
			Enthalpy: 1795.366, Entropy: 5.745, SpecificVolume: 12.23,
		},
		PumpInlet: entities.ThermodynamicState{
			Name: entities.StatePumpInlet, Phase: values.PhaseSaturatedLiquid,
			Pressure: 8, Temperature: fptr(41.51), Quality: fptr(0),
			Enthalpy: 173.88, Entropy: 0.5926, SpecificVolume: 0.0010084,
		},
		PumpExit: entities.ThermodynamicState{
			Name: entities.StatePumpExit, Phase: values.PhaseCompressedLiquid,
			Pressure: 8000, Enthalpy: 181.939, Entropy: 0.5926, SpecificVolume: 0.0010084,
		},
		TurbineWork: 963.334,
		PumpWork:    8.0591,
		HeatAdded:   2576.761,
		NetWork:     955.275,
		Efficiency:  efficiency,
		ComputedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func sampleReport() *dto.Report {
	report := &dto.Report{
		GeneratedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Title:       "baseline",
		Version:     "1.0.0",
		Status:      values.StatusError,
		Duration:    1500 * time.Millisecond,
		Entries: []dto.ReportEntry{
			{ID: "sat", Status: values.StatusOK, Result: sampleResult("Rankine Cycle 1", 37.0727)},
			{ID: "broken", Status: values.StatusError, Error: "pressure 50000 out of range"},
			{ID: "cold", Status: values.StatusSkipped, SkipReason: "no matching tags"},
		},
	}
	report.Summarize()
	return report
}

func TestTableFormatter_SingleCycle(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := NewTableFormatter(buf)
	formatter.EnableColor = false

	result := sampleResult("Rankine Cycle 1", 37.0727)
	require.NoError(t, formatter.Format(dto.NewCycleReport(result, values.StatusOK, time.Now())))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Cycle Summary for: Rankine Cycle 1\n"))
	assert.Contains(t, out, "\tEfficiency: 37.073%\n")
	assert.Contains(t, out, "\tTurbine Work: 963.334 kJ/kg\n")
	assert.Contains(t, out, "\tPump Work: 8.059 kJ/kg\n")
	assert.Contains(t, out, "\tHeat Added: 2576.761 kJ/kg\n")
	for _, name := range []string{entities.StateTurbineInlet, entities.StateTurbineExit, entities.StatePumpInlet, entities.StatePumpExit} {
		assert.Contains(t, out, "\t"+name+" (")
	}
	assert.Contains(t, out, "x = 0.6755")
	assert.NotContains(t, out, "\033[")
	assert.NotContains(t, out, "Warning")
}

func TestTableFormatter_NonPhysicalWarning(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := NewTableFormatter(buf)
	formatter.EnableColor = false

	result := sampleResult("inverted", -3.2)
	require.NoError(t, formatter.Format(dto.NewCycleReport(result, values.StatusNonPhysical, time.Now())))

	assert.Contains(t, buf.String(), "Warning: efficiency outside 0-100 %")
}

func TestTableFormatter_Study(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := NewTableFormatter(buf)
	formatter.EnableColor = false

	require.NoError(t, formatter.Format(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "Study: baseline (v1.0.0)")
	assert.Contains(t, out, "Duration: 1.5s")
	assert.Contains(t, out, "✓ sat: OK")
	assert.Contains(t, out, "✗ broken: ERROR")
	assert.Contains(t, out, "Error: pressure 50000 out of range")
	assert.Contains(t, out, "⊘ cold: SKIPPED")
	assert.Contains(t, out, "Skip Reason: no matching tags")
	assert.Contains(t, out, "Cycles:       3 total")
	assert.Contains(t, out, "Best:  sat (37.073%)")

	// entries keep their order
	assert.Less(t, strings.Index(out, "sat: OK"), strings.Index(out, "broken: ERROR"))
	assert.Less(t, strings.Index(out, "broken: ERROR"), strings.Index(out, "cold: SKIPPED"))
}

func TestTableFormatter_Color(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, NewTableFormatter(buf).Format(sampleReport()))
	assert.Contains(t, buf.String(), colorGreen)
}

func TestTableFormatter_Empty(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := NewTableFormatter(buf)
	formatter.EnableColor = false

	require.NoError(t, formatter.Format(&dto.Report{Title: "empty"}))
	assert.Contains(t, buf.String(), "No cycles analysed.")
}

func TestJSONFormatter_Format(t *testing.T) {
	for _, indent := range []bool{false, true} {
		buf := &bytes.Buffer{}
		require.NoError(t, NewJSONFormatter(buf, indent).Format(sampleReport()))

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

		assert.Equal(t, "baseline", decoded["title"])
		assert.Equal(t, "error", decoded["status"])
		cycles := decoded["cycles"].([]interface{})
		require.Len(t, cycles, 3)

		first := cycles[0].(map[string]interface{})
		result := first["result"].(map[string]interface{})
		assert.InDelta(t, 37.0727, result["efficiency_pct"], 1e-9)
		assert.Equal(t, "Rankine Cycle 1", result["spec"].(map[string]interface{})["name"])

		summary := decoded["summary"].(map[string]interface{})
		assert.Equal(t, "sat", summary["best_cycle_id"])
		assert.True(t, strings.HasSuffix(buf.String(), "\n"))
	}
}

func TestYAMLFormatter_Format(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, NewYAMLFormatter(buf).Format(sampleReport()))

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "baseline", decoded["title"])
	cycles := decoded["cycles"].([]interface{})
	require.Len(t, cycles, 3)
	assert.Equal(t, "skipped", cycles[2].(map[string]interface{})["status"])
	assert.Equal(t, "no matching tags", cycles[2].(map[string]interface{})["skip_reason"])
}
