package container

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rankine-dev/rankine/internal/application/dto"
	"github.com/rankine-dev/rankine/internal/infrastructure/system"
)

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_MissingConfigUsesDefaults(t *testing.T) {
	c, err := New(Options{
		Logger:           quiet(),
		SystemConfigPath: filepath.Join(t.TempDir(), "absent.yaml"),
	})
	require.NoError(t, err)

	assert.Equal(t, system.DefaultOutputFormat, c.SystemConfig().Output.Format)
	assert.True(t, c.CycleAnalysis().Strict())
	assert.NotNil(t, c.Studies())
	assert.NotNil(t, c.Properties())
	assert.Equal(t, []string{"table", "json", "yaml"}, c.Formatters().SupportedFormats())
}

func TestNew_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("analysis:\n  strict_validation: false\noutput:\n  format: json\n"), 0o600))

	c, err := New(Options{Logger: quiet(), SystemConfigPath: path})
	require.NoError(t, err)

	assert.Equal(t, "json", c.SystemConfig().Output.Format)
	assert.False(t, c.CycleAnalysis().Strict())
	assert.Equal(t, path, c.SystemConfigPath())
}

func TestNew_FlagOverridesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("analysis:\n  strict_validation: false\n"), 0o600))

	strict := true
	c, err := New(Options{Logger: quiet(), SystemConfigPath: path, StrictValidation: &strict})
	require.NoError(t, err)
	assert.True(t, c.CycleAnalysis().Strict())
}

func TestNew_InvalidExplicitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: [[["), 0o600))

	_, err := New(Options{Logger: quiet(), SystemConfigPath: path})
	require.Error(t, err)
}

func TestContainer_EndToEnd(t *testing.T) {
	c, err := New(Options{Logger: quiet(), SystemConfigPath: filepath.Join(t.TempDir(), "none.yaml")})
	require.NoError(t, err)

	resp, err := c.CycleAnalysis().Analyze(context.Background(), dto.AnalyzeCycleRequest{PLow: 8, PHigh: 8000})
	require.NoError(t, err)
	assert.InDelta(t, 37.07, resp.Result.Efficiency, 0.05)
}
