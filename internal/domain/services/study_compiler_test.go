package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rankine-dev/rankine/internal/domain/entities"
)

func TestStudyCompiler_Compile_AppliesDefaults(t *testing.T) {
	raw := &entities.Study{
		Metadata: entities.StudyMetadata{Name: "plant"},
		Defaults: &entities.StudyDefaults{PLow: f64(8), PHigh: f64(8000), Tags: []string{"baseline"}},
		Cycles: []entities.StudyCycle{
			{ID: "sat"},
			{ID: "hp", PHigh: f64(12000), Tags: []string{"high"}},
		},
	}

	compiled, err := NewStudyCompiler().Compile(raw)
	require.NoError(t, err)

	assert.Equal(t, 8.0, *compiled.Cycles[0].PLow)
	assert.Equal(t, 8000.0, *compiled.Cycles[0].PHigh)
	assert.Equal(t, []string{"baseline"}, compiled.Cycles[0].Tags)
	assert.Equal(t, 12000.0, *compiled.Cycles[1].PHigh)
	assert.Equal(t, []string{"baseline", "high"}, compiled.Cycles[1].Tags)

	assert.Nil(t, raw.Cycles[0].PLow, "raw study must not be mutated")
}

func TestStudyCompiler_Compile_Errors(t *testing.T) {
	_, err := NewStudyCompiler().Compile(nil)
	require.Error(t, err)

	_, err = NewStudyCompiler().Compile(&entities.Study{
		Metadata: entities.StudyMetadata{Name: "plant"},
		Cycles:   []entities.StudyCycle{{ID: "sat"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "p_low is required")
}
