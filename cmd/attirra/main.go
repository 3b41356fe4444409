package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"Attirra/internal/app"
	"Attirra/internal/catalog"
	"Attirra/internal/config"
	"Attirra/internal/engine"
	"Attirra/internal/gui"
	"Attirra/internal/loader"
	"Attirra/internal/logger"
	"Attirra/internal/scene"
	"Attirra/internal/ui"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	// GLFW and GL calls must stay on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	if err := newRootCommand(run).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

type flags struct {
	config   string
	assets   string
	logLevel string
	width    int
	height   int
	workers  int

	wireframe bool
}

// newRootCommand builds the CLI. start receives the merged configuration.
func newRootCommand(start func(ctx context.Context, cfg config.Config) error) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:          "attirra",
		Short:        "Browse traditional outfits of India on a 3D mannequin",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			cfg.Wireframe = f.wireframe
			return start(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&f.config, "config", "", "config file (default ./"+config.DefaultFile+" if present)")
	cmd.Flags().StringVar(&f.assets, "assets", "", "directory holding the models/ tree")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	cmd.Flags().IntVar(&f.width, "width", 0, "window width")
	cmd.Flags().IntVar(&f.height, "height", 0, "window height")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "background model loaders")
	cmd.Flags().BoolVar(&f.wireframe, "wireframe", false, "draw the scene in wireframe")
	return cmd
}

// loadConfig reads the config file and applies the flags given on the
// command line over it.
func loadConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return config.Config{}, err
	}

	set := cmd.Flags().Changed
	if set("assets") {
		cfg.Assets = f.assets
	}
	if set("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if set("width") {
		cfg.Window.Width = f.width
	}
	if set("height") {
		cfg.Window.Height = f.height
	}
	if set("workers") {
		cfg.Workers = f.workers
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func featuredOutfits(cfg config.Config) []app.Featured {
	featured := make([]app.Featured, 0, len(cfg.Featured))
	for _, f := range cfg.Featured {
		featured = append(featured, app.Featured{Model: f.Model, Title: f.Title, Desc: f.Desc})
	}
	return featured
}

func run(ctx context.Context, cfg config.Config) error {
	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}
	defer logger.Sync()

	if info, err := os.Stat(cfg.Assets); err != nil || !info.IsDir() {
		return fmt.Errorf("assets directory %q not found", cfg.Assets)
	}
	logger.Log.Info("Starting Attirra", zap.String("assets", cfg.Assets), zap.Int("workers", cfg.Workers))

	ctx, cancel := context.WithCancel(ctx)

	gopher := engine.NewGopher(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	scheduler := engine.NewScheduler(ctx, cfg.Workers)
	// Stop waits for running loads; cancel first so they end early.
	defer scheduler.Stop()
	defer cancel()
	gopher.SetScheduler(scheduler)
	gopher.SetDebugMode(cfg.Wireframe)

	opts := scene.Options{
		Fade:  cfg.Timings.Fade(),
		Spin:  cfg.Timings.Spin(),
		Focus: cfg.Timings.Focus(),
	}
	manager := scene.NewManager(gopher, loader.NewDirSource(cfg.Assets), scheduler, gopher.Camera, opts)
	viewer := app.New(ctx, catalog.Default(), ui.NewNavigator(), manager, gui.DialogAlerter{}, featuredOutfits(cfg))

	var panels *gui.GUI
	gopher.SetOnReadyCallback(func(_ *glfw.Window) error {
		if err := manager.Init(); err != nil {
			return err
		}
		gopher.Lights = manager.Lights

		var err error
		panels, err = gui.New(gopher, viewer, gui.Options{Font: cfg.UI.Font, FontSize: cfg.UI.FontSize})
		if err != nil {
			return err
		}
		gopher.SetOnRenderCallback(panels.Frame)
		return nil
	})
	gopher.SetOnUpdateCallback(manager.Update)
	gopher.SetOnCloseCallback(func() {
		if panels != nil {
			panels.Dispose()
		}
		manager.Dispose()
	})

	return gopher.Run()
}
