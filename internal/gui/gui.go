// Package gui draws the panel interface with Dear ImGui on top of the 3D scene.
package gui

import (
	"fmt"
	"os"

	"Attirra/internal/app"
	"Attirra/internal/engine"
	"Attirra/internal/logger"

	"github.com/inkyblackness/imgui-go/v4"
	"go.uber.org/zap"
)

type Options struct {
	Font     string // Optional TTF file
	FontSize float32
}

// GUI owns the ImGui context and its GLFW and OpenGL backends.
type GUI struct {
	context  *imgui.Context
	platform *Platform
	renderer *OpenGL3
	gopher   *engine.Gopher
	view     *view
}

// New attaches ImGui to the engine's window. It must run on the main thread
// after the GL context exists, i.e. from the engine's ready callback.
func New(gopher *engine.Gopher, a *app.App, opts Options) (*GUI, error) {
	window := gopher.GetWindow()
	if window == nil {
		return nil, fmt.Errorf("gui: window not open")
	}

	context := imgui.CreateContext(nil)
	io := imgui.CurrentIO()
	io.SetIniFilename("")

	glyphs := loadFont(io, opts.Font, opts.FontSize)
	applyTheme()

	platform := NewPlatform(window, io)
	renderer, err := NewOpenGL3(io)
	if err != nil {
		platform.Dispose()
		context.Destroy()
		return nil, fmt.Errorf("gui renderer: %w", err)
	}

	logger.Log.Info("ImGui initialized", zap.String("version", imgui.Version()), zap.Bool("customFont", glyphs))
	return &GUI{
		context:  context,
		platform: platform,
		renderer: renderer,
		gopher:   gopher,
		view:     &view{app: a, glyphs: glyphs},
	}, nil
}

// loadFont adds the configured font with Latin and general punctuation
// glyphs. It reports whether the font was loaded.
func loadFont(io imgui.IO, path string, size float32) bool {
	if path == "" {
		return false
	}
	if _, err := os.Stat(path); err != nil {
		logger.Log.Warn("UI font not available, using built-in font", zap.String("path", path), zap.Error(err))
		return false
	}

	var builder imgui.GlyphRangesBuilder
	builder.Add(0x0020, 0x00FF)
	builder.Add(0x2000, 0x206F)
	ranges := builder.Build()
	// The atlas is rasterised here so the ranges can be released straight away.
	defer ranges.Free()

	font := io.Fonts().AddFontFromFileTTFV(path, size, imgui.DefaultFontConfig, ranges.GlyphRanges)
	if font == imgui.DefaultFont {
		logger.Log.Warn("UI font could not be parsed, using built-in font", zap.String("path", path))
		return false
	}
	io.Fonts().TextureDataAlpha8()
	return true
}

// Frame draws the panels. It is the engine's render callback.
func (g *GUI) Frame(deltaTime float64) {
	g.platform.NewFrame()
	imgui.NewFrame()

	size := g.platform.DisplaySize()
	g.view.draw(imgui.Vec2{X: size[0], Y: size[1]})

	// The camera only gets the mouse when no panel is under it.
	io := imgui.CurrentIO()
	g.gopher.EnableCameraInput = !io.WantCaptureMouse() && !imgui.IsAnyItemActive()

	imgui.Render()
	g.renderer.Render(g.platform.DisplaySize(), g.platform.FramebufferSize(), imgui.RenderedDrawData())
}

func (g *GUI) Dispose() {
	g.renderer.Dispose()
	g.platform.Dispose()
	g.context.Destroy()
}
