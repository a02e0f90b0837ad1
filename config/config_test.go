package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roverrun/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.True(t, cfg.Render.Costs)
	assert.False(t, cfg.Render.Colour)
}

func TestParse_Overlay(t *testing.T) {
	cfg, err := config.Parse([]byte("log:\n  level: debug\nrender:\n  colour: true\n"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "untouched keys keep defaults")
	assert.True(t, cfg.Render.Colour)
	assert.True(t, cfg.Render.Costs)
}

func TestParse_Errors(t *testing.T) {
	_, err := config.Parse([]byte("log: [unclosed"))
	assert.Error(t, err)

	_, err = config.Parse([]byte("log:\n  level: chatty\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Parse([]byte("log:\n  format: xml\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roverrun.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  format: json\nrender:\n  codes: true\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Render.Codes)

	_, err = config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
