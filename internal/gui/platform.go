package gui

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
)

var glfwButtonIndexByID = map[glfw.MouseButton]int{
	glfw.MouseButton1: 0,
	glfw.MouseButton2: 1,
	glfw.MouseButton3: 2,
}

var glfwButtonIDByIndex = map[int]glfw.MouseButton{
	0: glfw.MouseButton1,
	1: glfw.MouseButton2,
	2: glfw.MouseButton3,
}

// Platform feeds GLFW input into ImGui. It attaches to a window the engine
// already owns and forwards every event to the callback it replaced, so the
// camera keeps receiving scroll and mouse input.
type Platform struct {
	imguiIO imgui.IO
	window  *glfw.Window
	time    float64

	mouseJustPressed [3]bool

	prevMouseButton glfw.MouseButtonCallback
	prevScroll      glfw.ScrollCallback
	prevKey         glfw.KeyCallback
	prevChar        glfw.CharCallback
}

func NewPlatform(window *glfw.Window, io imgui.IO) *Platform {
	platform := &Platform{
		imguiIO: io,
		window:  window,
	}
	platform.setKeyMapping()
	platform.installCallbacks()
	io.SetClipboard(clipboard{window: window})
	return platform
}

// Dispose puts the replaced callbacks back.
func (platform *Platform) Dispose() {
	platform.window.SetMouseButtonCallback(platform.prevMouseButton)
	platform.window.SetScrollCallback(platform.prevScroll)
	platform.window.SetKeyCallback(platform.prevKey)
	platform.window.SetCharCallback(platform.prevChar)
}

// DisplaySize is the window size in screen coordinates.
func (platform *Platform) DisplaySize() [2]float32 {
	w, h := platform.window.GetSize()
	return [2]float32{float32(w), float32(h)}
}

// FramebufferSize is the window size in pixels.
func (platform *Platform) FramebufferSize() [2]float32 {
	w, h := platform.window.GetFramebufferSize()
	return [2]float32{float32(w), float32(h)}
}

// NewFrame updates display size, time step and mouse state for the next ImGui frame.
func (platform *Platform) NewFrame() {
	displaySize := platform.DisplaySize()
	platform.imguiIO.SetDisplaySize(imgui.Vec2{X: displaySize[0], Y: displaySize[1]})

	currentTime := glfw.GetTime()
	if platform.time > 0 {
		platform.imguiIO.SetDeltaTime(float32(currentTime - platform.time))
	} else {
		platform.imguiIO.SetDeltaTime(1.0 / 60.0)
	}
	platform.time = currentTime

	if platform.window.GetAttrib(glfw.Focused) != 0 {
		x, y := platform.window.GetCursorPos()
		platform.imguiIO.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	} else {
		platform.imguiIO.SetMousePosition(imgui.Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32})
	}

	// A click shorter than one frame still registers.
	for i := 0; i < len(platform.mouseJustPressed); i++ {
		down := platform.mouseJustPressed[i] || (platform.window.GetMouseButton(glfwButtonIDByIndex[i]) == glfw.Press)
		platform.imguiIO.SetMouseButtonDown(i, down)
		platform.mouseJustPressed[i] = false
	}
}

func (platform *Platform) setKeyMapping() {
	platform.imguiIO.KeyMap(imgui.KeyTab, int(glfw.KeyTab))
	platform.imguiIO.KeyMap(imgui.KeyLeftArrow, int(glfw.KeyLeft))
	platform.imguiIO.KeyMap(imgui.KeyRightArrow, int(glfw.KeyRight))
	platform.imguiIO.KeyMap(imgui.KeyUpArrow, int(glfw.KeyUp))
	platform.imguiIO.KeyMap(imgui.KeyDownArrow, int(glfw.KeyDown))
	platform.imguiIO.KeyMap(imgui.KeyPageUp, int(glfw.KeyPageUp))
	platform.imguiIO.KeyMap(imgui.KeyPageDown, int(glfw.KeyPageDown))
	platform.imguiIO.KeyMap(imgui.KeyHome, int(glfw.KeyHome))
	platform.imguiIO.KeyMap(imgui.KeyEnd, int(glfw.KeyEnd))
	platform.imguiIO.KeyMap(imgui.KeyInsert, int(glfw.KeyInsert))
	platform.imguiIO.KeyMap(imgui.KeyDelete, int(glfw.KeyDelete))
	platform.imguiIO.KeyMap(imgui.KeyBackspace, int(glfw.KeyBackspace))
	platform.imguiIO.KeyMap(imgui.KeySpace, int(glfw.KeySpace))
	platform.imguiIO.KeyMap(imgui.KeyEnter, int(glfw.KeyEnter))
	platform.imguiIO.KeyMap(imgui.KeyEscape, int(glfw.KeyEscape))
	platform.imguiIO.KeyMap(imgui.KeyA, int(glfw.KeyA))
	platform.imguiIO.KeyMap(imgui.KeyC, int(glfw.KeyC))
	platform.imguiIO.KeyMap(imgui.KeyV, int(glfw.KeyV))
	platform.imguiIO.KeyMap(imgui.KeyX, int(glfw.KeyX))
	platform.imguiIO.KeyMap(imgui.KeyY, int(glfw.KeyY))
	platform.imguiIO.KeyMap(imgui.KeyZ, int(glfw.KeyZ))
}

// GLFW keeps one callback per event type; the previous one is chained.
func (platform *Platform) installCallbacks() {
	platform.prevMouseButton = platform.window.SetMouseButtonCallback(platform.mouseButtonChange)
	platform.prevScroll = platform.window.SetScrollCallback(platform.mouseScrollChange)
	platform.prevKey = platform.window.SetKeyCallback(platform.keyChange)
	platform.prevChar = platform.window.SetCharCallback(platform.charChange)
}

func (platform *Platform) mouseButtonChange(window *glfw.Window, rawButton glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	buttonIndex, known := glfwButtonIndexByID[rawButton]
	if known && (action == glfw.Press) {
		platform.mouseJustPressed[buttonIndex] = true
	}
	if platform.prevMouseButton != nil {
		platform.prevMouseButton(window, rawButton, action, mods)
	}
}

func (platform *Platform) mouseScrollChange(window *glfw.Window, x, y float64) {
	platform.imguiIO.AddMouseWheelDelta(float32(x), float32(y))
	if platform.prevScroll != nil {
		platform.prevScroll(window, x, y)
	}
}

func (platform *Platform) keyChange(window *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Press {
		platform.imguiIO.KeyPress(int(key))
	}
	if action == glfw.Release {
		platform.imguiIO.KeyRelease(int(key))
	}

	platform.imguiIO.KeyCtrl(int(glfw.KeyLeftControl), int(glfw.KeyRightControl))
	platform.imguiIO.KeyShift(int(glfw.KeyLeftShift), int(glfw.KeyRightShift))
	platform.imguiIO.KeyAlt(int(glfw.KeyLeftAlt), int(glfw.KeyRightAlt))
	platform.imguiIO.KeySuper(int(glfw.KeyLeftSuper), int(glfw.KeyRightSuper))

	if platform.prevKey != nil {
		platform.prevKey(window, key, scancode, action, mods)
	}
}

func (platform *Platform) charChange(window *glfw.Window, char rune) {
	platform.imguiIO.AddInputCharacters(string(char))
	if platform.prevChar != nil {
		platform.prevChar(window, char)
	}
}

type clipboard struct {
	window *glfw.Window
}

func (c clipboard) Text() (string, error) {
	return c.window.GetClipboardString(), nil
}

func (c clipboard) SetText(text string) {
	c.window.SetClipboardString(text)
}
