package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ".", cfg.Assets)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 800, cfg.Window.Height)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, float32(18), cfg.UI.FontSize)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 600*time.Millisecond, cfg.Timings.Fade())
	assert.Equal(t, 800*time.Millisecond, cfg.Timings.Spin())
	assert.Equal(t, 700*time.Millisecond, cfg.Timings.Focus())
	assert.NoError(t, cfg.Validate())
}

func TestParseOverridesOnlyGivenKeys(t *testing.T) {
	cfg, err := Parse([]byte(`
assets: /srv/attirra
window:
  width: 1920
timings:
  fade_ms: 300
featured:
  - model: models/showcase/bridal.glb
    title: Bridal Lehenga
    desc: Heavily embroidered
`))
	require.NoError(t, err)

	assert.Equal(t, "/srv/attirra", cfg.Assets)
	assert.Equal(t, 1920, cfg.Window.Width)
	assert.Equal(t, 800, cfg.Window.Height, "unset keys keep their defaults")
	assert.Equal(t, 300*time.Millisecond, cfg.Timings.Fade())
	assert.Equal(t, 800*time.Millisecond, cfg.Timings.Spin())
	require.Len(t, cfg.Featured, 1)
	assert.Equal(t, FeaturedOutfit{"models/showcase/bridal.glb", "Bridal Lehenga", "Heavily embroidered"}, cfg.Featured[0])
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejects(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown key":      "asset: typo\n",
		"bad type":         "workers: many\n",
		"no workers":       "workers: 0\n",
		"negative timing":  "timings:\n  spin_ms: -1\n",
		"zero width":       "window:\n  width: 0\n",
		"zero font size":   "ui:\n  font_size: 0\n",
		"featured no path": "featured:\n  - title: Nothing\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "viewer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err, "a named config file must exist")
}

func TestLoadWithoutDefaultFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
