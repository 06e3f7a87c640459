package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ".", cfg.InputRoot)
	assert.False(t, cfg.Verbose)
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EmptyPathYieldsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ReadsYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input_root: /data/aoc\nverbose: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/aoc", cfg.InputRoot)
	assert.True(t, cfg.Verbose)
}

func TestLoad_EmptyInputRootRestored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input_root: \"\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.InputRoot)
}

func TestLoad_MalformedYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input_root: [unclosed\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDayInput(t *testing.T) {
	cfg := Config{InputRoot: "/data/aoc"}
	assert.Equal(t, filepath.Join("/data/aoc", "day8", "input.txt"), cfg.DayInput(8))
	assert.Equal(t, filepath.Join("/data/aoc", "day13", "input.txt"), cfg.DayInput(13))
}
