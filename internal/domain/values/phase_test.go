package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_PhaseForQuality(t *testing.T) {
	assert.Equal(t, PhaseSaturatedLiquid, PhaseForQuality(0))
	assert.Equal(t, PhaseSaturatedVapor, PhaseForQuality(1))
	assert.Equal(t, PhaseTwoPhase, PhaseForQuality(0.5))
}

func Test_Phase_Predicates(t *testing.T) {
	tests := []struct {
		phase     Phase
		saturated bool
		liquid    bool
		vapor     bool
	}{
		{PhaseCompressedLiquid, false, true, false},
		{PhaseSaturatedLiquid, true, true, false},
		{PhaseTwoPhase, true, false, false},
		{PhaseSaturatedVapor, true, false, true},
		{PhaseSuperheated, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			assert.Equal(t, tt.saturated, tt.phase.IsSaturated())
			assert.Equal(t, tt.liquid, tt.phase.IsLiquid())
			assert.Equal(t, tt.vapor, tt.phase.IsVapor())
			assert.NoError(t, tt.phase.Validate())
		})
	}
}

func Test_Phase_Validate_Invalid(t *testing.T) {
	assert.Error(t, Phase("plasma").Validate())
	assert.Error(t, Phase("").Validate())
}
