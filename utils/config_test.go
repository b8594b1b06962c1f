package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/glife/render"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeFile(t, "glife.yml", `
root:
  max_gen: 40
  input_cfg: data/blinker.dat
text:
  fps: 4
image:
  generate_image: true
  bkg: WHITE
  alive: steel_blue
  block_size: 8
  path: out
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Root.MaxGenerations)
	assert.Equal(t, "data/blinker.dat", cfg.Root.InputConfig)
	assert.Equal(t, 4, cfg.Text.FPS)
	assert.True(t, cfg.Image.GenerateImage)
	assert.Equal(t, "out", cfg.Image.Path)

	style, err := cfg.Style()
	require.NoError(t, err)
	assert.Equal(t, render.Palette["white"], style.Background)
	assert.Equal(t, render.Palette["steel_blue"], style.Alive)
	assert.Equal(t, 8, style.BlockSize)
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	path := writeFile(t, "glife.json", `{"root": {"input_cfg": "x.dat"}}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	want := DefaultConfig()
	want.Root.InputConfig = "x.dat"
	assert.Equal(t, want, cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
		assert.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := LoadConfig(writeFile(t, "bad.yml", "root: [unterminated"))
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := LoadConfig(writeFile(t, "bad.yml", "text:\n  fps: 0\n"))
		assert.True(t, errors.Is(err, ErrInvalidConfig))
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative max_gen", func(c *Config) { c.Root.MaxGenerations = -1 }},
		{"empty input", func(c *Config) { c.Root.InputConfig = "" }},
		{"zero fps", func(c *Config) { c.Text.FPS = 0 }},
		{"zero block size", func(c *Config) { c.Image.BlockSize = 0 }},
		{"unknown background", func(c *Config) { c.Image.Background = "mauve" }},
		{"unknown alive color", func(c *Config) { c.Image.Alive = "" }},
	}

	require.NoError(t, DefaultConfig().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.True(t, errors.Is(cfg.Validate(), ErrInvalidConfig))
		})
	}
}

func TestGenerationCap(t *testing.T) {
	cfg := DefaultConfig()

	_, bounded := cfg.GenerationCap().Limit()
	assert.False(t, bounded)

	cfg.Root.MaxGenerations = 12
	limit, bounded := cfg.GenerationCap().Limit()
	assert.True(t, bounded)
	assert.Equal(t, 12, limit)
}

func TestFrameDelay(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Text.FPS = 4
	assert.Equal(t, 250*time.Millisecond, cfg.FrameDelay())

	cfg.Image.GenerateImage = true
	assert.Zero(t, cfg.FrameDelay())
}
