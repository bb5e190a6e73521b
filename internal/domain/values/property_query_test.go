package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_PropertyQuery_Constructors(t *testing.T) {
	tests := []struct {
		query PropertyQuery
		kind  PropertyKind
		value float64
		str   string
	}{
		{ByTemperature(500), PropertyTemperature, 500, "temperature=500"},
		{ByQuality(1), PropertyQuality, 1, "quality=1"},
		{ByEntropy(5.745), PropertyEntropy, 5.745, "entropy=5.745"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.query.Kind())
			assert.Equal(t, tt.value, tt.query.Value())
			assert.Equal(t, tt.str, tt.query.String())
			assert.NoError(t, tt.query.Validate())
		})
	}
}

func Test_PropertyQuery_ZeroValueInvalid(t *testing.T) {
	var q PropertyQuery
	assert.Error(t, q.Validate())
}
