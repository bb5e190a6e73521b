package steam

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaturationTable_Monotonic(t *testing.T) {
	for i := 1; i < len(saturationTable); i++ {
		prev, row := saturationTable[i-1], saturationTable[i]
		assert.Greater(t, row.P, prev.P, "pressure at row %d", i)
		assert.Greater(t, row.T, prev.T, "temperature at row %d", i)
		assert.Greater(t, row.Hf, prev.Hf, "hf at row %d", i)
		assert.Greater(t, row.Sf, prev.Sf, "sf at row %d", i)
		assert.Less(t, row.Sg, prev.Sg, "sg at row %d", i)
		assert.Greater(t, row.Sg, row.Sf, "sfg at row %d", i)
	}
}

func TestSuperheatedTable_Consistent(t *testing.T) {
	for i, block := range superheatedTable {
		if i > 0 {
			assert.Greater(t, block.P, superheatedTable[i-1].P)
		}
		for j := 1; j < len(block.Rows); j++ {
			prev, row := block.Rows[j-1], block.Rows[j]
			assert.Greater(t, row.T, prev.T, "block %v row %d", block.P, j)
			assert.Greater(t, row.H, prev.H, "block %v row %d", block.P, j)
			assert.Greater(t, row.S, prev.S, "block %v row %d", block.P, j)
		}

		// first row is saturated vapor at the block pressure
		sat, err := saturationBy(block.P, byPressure, "pressure")
		assert.NoError(t, err)
		assert.InDelta(t, sat.Hg, block.Rows[0].H, 1.0, "block %v", block.P)
		assert.InDelta(t, sat.Sg, block.Rows[0].S, 1e-3, "block %v", block.P)
		assert.InDelta(t, sat.T, block.Rows[0].T, 0.1, "block %v", block.P)
	}
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 5.0, lerp(1.5, 1, 4, 2, 6))
	assert.Equal(t, 4.0, lerp(1, 1, 4, 1, 6))
	assert.Equal(t, 0.0, fraction(3, 2, 2))
}
