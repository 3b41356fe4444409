// Package config reads the viewer's settings from an optional YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFile is read from the working directory when no file is named.
const DefaultFile = "attirra.yaml"

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// UI picks the panel font. Without a font file the built-in one is used,
// which lacks typographic punctuation.
type UI struct {
	Font     string  `yaml:"font"` // TTF path, relative to the working directory
	FontSize float32 `yaml:"font_size"`
}

// Timings are the animation lengths in milliseconds.
type Timings struct {
	FadeMS  int `yaml:"fade_ms"`
	SpinMS  int `yaml:"spin_ms"`
	FocusMS int `yaml:"focus_ms"`
}

func (t Timings) Fade() time.Duration  { return time.Duration(t.FadeMS) * time.Millisecond }
func (t Timings) Spin() time.Duration  { return time.Duration(t.SpinMS) * time.Millisecond }
func (t Timings) Focus() time.Duration { return time.Duration(t.FocusMS) * time.Millisecond }

// FeaturedOutfit is shown on the outfits panel with a fixed model path.
type FeaturedOutfit struct {
	Model string `yaml:"model"`
	Title string `yaml:"title"`
	Desc  string `yaml:"desc"`
}

type Config struct {
	Assets   string           `yaml:"assets"` // Directory holding models/
	Window   Window           `yaml:"window"`
	UI       UI               `yaml:"ui"`
	LogLevel string           `yaml:"log_level"`
	Workers  int              `yaml:"workers"` // Background loaders
	Timings  Timings          `yaml:"timings"`
	Featured []FeaturedOutfit `yaml:"featured"`

	Wireframe bool `yaml:"-"` // Command line only
}

func Default() Config {
	return Config{
		Assets: ".",
		Window: Window{
			Width:  1280,
			Height: 800,
			Title:  "Attirra — Traditional Outfits of India",
		},
		UI:       UI{FontSize: 18},
		LogLevel: "info",
		Workers:  2,
		Timings: Timings{
			FadeMS:  600,
			SpinMS:  800,
			FocusMS: 700,
		},
	}
}

// Load reads path over the defaults. With an empty path the default file is
// used when it exists; a named file must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Assets == "":
		return errors.New("assets directory must be set")
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Workers < 1:
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	case c.UI.FontSize <= 0:
		return fmt.Errorf("font size must be positive, got %g", c.UI.FontSize)
	case c.Timings.FadeMS < 0 || c.Timings.SpinMS < 0 || c.Timings.FocusMS < 0:
		return errors.New("timings must not be negative")
	}
	for i, f := range c.Featured {
		if f.Model == "" {
			return fmt.Errorf("featured[%d]: model must be set", i)
		}
	}
	return nil
}
