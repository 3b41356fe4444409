package engine

import (
	"fmt"
	"runtime"
	"time"

	"Attirra/internal/logger"
	"Attirra/internal/renderer"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

var lastX, lastY float64
var firstMouse bool = true

// Gopher owns the window, the renderer and the frame loop. Everything it
// calls back into runs on the locked main OS thread.
type Gopher struct {
	Width             int32
	Height            int32
	Title             string
	Camera            *renderer.Camera
	Lights            []*renderer.Light
	EnableCameraInput bool // Cleared by the GUI while it wants the mouse

	rendererAPI      renderer.Render
	window           *glfw.Window
	scheduler        *Scheduler
	onReadyCallback  func(window *glfw.Window) error
	onUpdateCallback func(now time.Time)
	onRenderCallback func(deltaTime float64) // Drawn after the 3D scene, e.g. the panel UI
	onCloseCallback  func()
}

func NewGopher(width, height int32, title string) *Gopher {
	logger.Log.Info("Engine initializing", zap.Int32("width", width), zap.Int32("height", height))
	return &Gopher{
		Width:             width,
		Height:            height,
		Title:             title,
		Camera:            renderer.NewDefaultCamera(width, height),
		EnableCameraInput: true,
		rendererAPI:       &renderer.OpenGLRenderer{},
	}
}

// SetScheduler sets the queue drained at the start of every frame.
func (gopher *Gopher) SetScheduler(scheduler *Scheduler) {
	gopher.scheduler = scheduler
}

// SetOnReadyCallback runs once the GL context exists, before the first frame.
// An error aborts Run.
func (gopher *Gopher) SetOnReadyCallback(callback func(window *glfw.Window) error) {
	gopher.onReadyCallback = callback
}

// SetOnUpdateCallback runs every frame before the scene is drawn.
func (gopher *Gopher) SetOnUpdateCallback(callback func(now time.Time)) {
	gopher.onUpdateCallback = callback
}

// SetOnRenderCallback sets a callback that will be called each frame after the 3D scene is rendered
func (gopher *Gopher) SetOnRenderCallback(callback func(deltaTime float64)) {
	gopher.onRenderCallback = callback
}

// SetOnCloseCallback runs after the last frame while the GL context is still
// current, so GL objects can be released.
func (gopher *Gopher) SetOnCloseCallback(callback func()) {
	gopher.onCloseCallback = callback
}

// SetDebugMode switches the scene to wireframe.
func (gopher *Gopher) SetDebugMode(debug bool) {
	renderer.Debug = debug
}

// Run opens the window and blocks until it is closed. It must be called from
// the main goroutine.
func (gopher *Gopher) Run() error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("could not initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Samples, 4)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(gopher.Width), int(gopher.Height), gopher.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("could not create glfw window: %w", err)
	}
	defer window.Destroy()
	gopher.window = window

	window.MakeContextCurrent()
	glfw.SwapInterval(1)
	styleTitleBar(window)

	// The framebuffer can be larger than the window on HiDPI screens.
	fbWidth, fbHeight := window.GetFramebufferSize()
	gopher.rendererAPI.Init(int32(fbWidth), int32(fbHeight))
	gopher.Camera.SetViewport(int32(fbWidth), int32(fbHeight))

	window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	window.SetCursorPosCallback(gopher.mouseCallback)
	window.SetScrollCallback(gopher.scrollCallback)

	if gopher.onReadyCallback != nil {
		if err := gopher.onReadyCallback(window); err != nil {
			gopher.rendererAPI.Cleanup()
			return err
		}
	}

	gopher.RenderLoop()
	return nil
}

func (gopher *Gopher) RenderLoop() {
	var lastTime = glfw.GetTime()
	lastWidth, lastHeight := gopher.window.GetFramebufferSize()

	for !gopher.window.ShouldClose() {
		glfw.PollEvents()

		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastTime
		lastTime = currentTime

		width, height := gopher.window.GetSize()
		gopher.Width, gopher.Height = int32(width), int32(height)

		fbWidth, fbHeight := gopher.window.GetFramebufferSize()
		if fbWidth != lastWidth || fbHeight != lastHeight {
			gopher.rendererAPI.UpdateViewport(int32(fbWidth), int32(fbHeight))
			gopher.Camera.SetViewport(int32(fbWidth), int32(fbHeight))
			lastWidth, lastHeight = fbWidth, fbHeight
		}

		// Finished background loads land in the scene here, on this thread.
		if gopher.scheduler != nil {
			gopher.scheduler.Drain()
		}
		if gopher.onUpdateCallback != nil {
			gopher.onUpdateCallback(time.Now())
		}

		// A minimised window has a zero-sized framebuffer.
		if fbWidth > 0 && fbHeight > 0 {
			gopher.rendererAPI.Render(gopher.Camera, gopher.Lights)
			if gopher.onRenderCallback != nil {
				gopher.onRenderCallback(deltaTime)
			}
		}

		gopher.window.SwapBuffers()
	}
	if gopher.onCloseCallback != nil {
		gopher.onCloseCallback()
	}
	gopher.rendererAPI.Cleanup()
}

func (gopher *Gopher) AddModel(model *renderer.Model) {
	gopher.rendererAPI.AddModel(model)
}

func (gopher *Gopher) RemoveModel(model *renderer.Model) {
	gopher.rendererAPI.RemoveModel(model)
}

// GetWindow returns the GLFW window (for the GUI)
func (gopher *Gopher) GetWindow() *glfw.Window {
	return gopher.window
}

// Left drag orbits the camera around its target.
func (gopher *Gopher) mouseCallback(w *glfw.Window, xpos, ypos float64) {
	if gopher.EnableCameraInput && w.GetAttrib(glfw.Focused) == glfw.True && w.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press {
		if firstMouse {
			lastX = xpos
			lastY = ypos
			firstMouse = false
			return
		}

		xoffset := xpos - lastX
		yoffset := ypos - lastY
		lastX = xpos
		lastY = ypos

		gopher.Camera.Rotate(float32(xoffset), float32(yoffset))
	} else {
		firstMouse = true
	}
}

// Scrolling up zooms in.
func (gopher *Gopher) scrollCallback(_ *glfw.Window, _, yoff float64) {
	if gopher.EnableCameraInput {
		gopher.Camera.Zoom(float32(yoff))
	}
}
