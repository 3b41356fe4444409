package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"Attirra/internal/app"
	"Attirra/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (config.Config, error) {
	t.Helper()
	var got config.Config
	cmd := newRootCommand(func(_ context.Context, cfg config.Config) error {
		got = cfg
		return nil
	})
	cmd.SetArgs(args)
	cmd.SetOut(&nopWriter{})
	cmd.SetErr(&nopWriter{})
	err := cmd.ExecuteContext(context.Background())
	return got, err
}

type nopWriter struct{}

func (*nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "attirra.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	path := writeConfig(t, "assets: /from/file\nwindow:\n  width: 1600\n  height: 900\nworkers: 3\n")

	cfg, err := execute(t, "--config", path, "--width", "1024", "--log-level", "debug")

	require.NoError(t, err)
	assert.Equal(t, "/from/file", cfg.Assets, "unset flags keep the file value")
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 900, cfg.Window.Height)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Wireframe)

	cfg, err = execute(t, "--config", path, "--wireframe")
	require.NoError(t, err)
	assert.True(t, cfg.Wireframe)
}

func TestInvalidFlagValueFails(t *testing.T) {
	path := writeConfig(t, "")

	_, err := execute(t, "--config", path, "--workers", "0")

	assert.Error(t, err)
}

func TestMissingConfigFileFails(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}

func TestPositionalArgumentsRejected(t *testing.T) {
	path := writeConfig(t, "")

	_, err := execute(t, "--config", path, "extra")

	assert.Error(t, err)
}

func TestFeaturedOutfits(t *testing.T) {
	cfg := config.Default()
	cfg.Featured = []config.FeaturedOutfit{{Model: "models/showcase/bridal.glb", Title: "Bridal", Desc: "Red silk"}}

	assert.Equal(t, []app.Featured{{Model: "models/showcase/bridal.glb", Title: "Bridal", Desc: "Red silk"}}, featuredOutfits(cfg))
	assert.Empty(t, featuredOutfits(config.Default()))
}
