package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))
}

func TestNew_Defaults(t *testing.T) {
	cfg, err := New(t.TempDir())
	require.NoError(t, err)

	assert.False(t, cfg.Quiet)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.TUI)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Equal(t, 2, cfg.DefaultPriority)
}

func TestNew_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
quiet = true
debug = true
tui = true
color = "never"
default_priority = 1
`)

	cfg, err := New(dir)
	require.NoError(t, err)

	assert.True(t, cfg.Quiet)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.TUI)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, 1, cfg.DefaultPriority)
	assert.Equal(t, filepath.Join(dir, FileName), cfg.Path())
}

func TestNew_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `quiet = true`)

	cfg, err := New(dir)
	require.NoError(t, err)

	assert.True(t, cfg.Quiet)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Equal(t, 2, cfg.DefaultPriority)
}

func TestNew_InvalidColor(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `color = "rainbow"`)

	_, err := New(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid color mode")
}

func TestNew_InvalidDefaultPriority(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `default_priority = 9`)

	_, err := New(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid default_priority")
}

func TestNew_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `quiet = `)

	_, err := New(dir)
	require.Error(t, err)
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", AppName), DefaultConfigDir())
}

func TestColorized(t *testing.T) {
	tests := []struct {
		name  string
		mode  string
		isTTY bool
		want  bool
	}{
		{name: "auto on tty", mode: ColorAuto, isTTY: true, want: true},
		{name: "auto off tty", mode: ColorAuto, isTTY: false, want: false},
		{name: "always without tty", mode: ColorAlways, isTTY: false, want: true},
		{name: "never on tty", mode: ColorNever, isTTY: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "")
			cfg := &Config{Color: tt.mode}
			assert.Equal(t, tt.want, cfg.Colorized(tt.isTTY))
		})
	}
}

func TestColorized_NoColorWins(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	cfg := &Config{Color: ColorAlways}
	assert.False(t, cfg.Colorized(true))
}
