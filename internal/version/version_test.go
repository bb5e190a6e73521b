package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.Equal(t, info.Version, info.String())
	assert.True(t, strings.HasPrefix(info.Full(), "rankine "+info.Version))
}

func TestInfo_IsDevelopment(t *testing.T) {
	assert.True(t, Info{Version: "dev"}.IsDevelopment())
	assert.True(t, Info{}.IsDevelopment())
	assert.False(t, Info{Version: "0.3.1"}.IsDevelopment())
}
