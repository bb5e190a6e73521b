package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Status_Precedence(t *testing.T) {
	tests := []struct {
		status     Status
		precedence int
	}{
		{StatusError, 3},
		{StatusNonPhysical, 2},
		{StatusSkipped, 1},
		{StatusOK, 0},
		{Status("unknown"), -1},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.precedence, tt.status.Precedence())
		})
	}
}

func Test_Status_Predicates(t *testing.T) {
	assert.True(t, StatusError.IsFailure())
	assert.False(t, StatusNonPhysical.IsFailure())

	assert.True(t, StatusOK.IsSuccess())
	assert.True(t, StatusNonPhysical.IsSuccess())
	assert.False(t, StatusSkipped.IsSuccess())

	assert.True(t, StatusSkipped.IsSkipped())
	assert.False(t, StatusOK.IsSkipped())
}

func Test_Status_Validate(t *testing.T) {
	for _, s := range []Status{StatusOK, StatusNonPhysical, StatusError, StatusSkipped} {
		assert.NoError(t, s.Validate())
	}
	assert.Error(t, Status("pass").Validate())
	assert.Equal(t, "ok", StatusOK.String())
}
