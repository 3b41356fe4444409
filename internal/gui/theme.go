package gui

import "github.com/inkyblackness/imgui-go/v4"

var (
	// Saffron accent on a parchment base matching the ground disc.
	accent       = imgui.Vec4{X: 0.85, Y: 0.45, Z: 0.13, W: 1.0}
	accentHover  = imgui.Vec4{X: 0.85, Y: 0.45, Z: 0.13, W: 0.75}
	accentActive = imgui.Vec4{X: 0.72, Y: 0.36, Z: 0.08, W: 1.0}
	accentDim    = imgui.Vec4{X: 0.85, Y: 0.45, Z: 0.13, W: 0.35}

	textColor  = imgui.Vec4{X: 0.17, Y: 0.13, Z: 0.10, W: 1.0}
	mutedColor = imgui.Vec4{X: 0.45, Y: 0.40, Z: 0.35, W: 1.0}
)

func applyTheme() {
	style := imgui.CurrentStyle()

	style.SetColor(imgui.StyleColorText, textColor)
	style.SetColor(imgui.StyleColorTextDisabled, mutedColor)
	style.SetColor(imgui.StyleColorWindowBg, imgui.Vec4{X: 0.98, Y: 0.96, Z: 0.92, W: 0.94})
	style.SetColor(imgui.StyleColorChildBg, imgui.Vec4{X: 1.0, Y: 1.0, Z: 1.0, W: 0.55})
	style.SetColor(imgui.StyleColorBorder, imgui.Vec4{X: 0.80, Y: 0.74, Z: 0.64, W: 1.0})
	style.SetColor(imgui.StyleColorSeparator, accentDim)

	style.SetColor(imgui.StyleColorButton, imgui.Vec4{X: 0.93, Y: 0.89, Z: 0.82, W: 1.0})
	style.SetColor(imgui.StyleColorButtonHovered, accentHover)
	style.SetColor(imgui.StyleColorButtonActive, accentActive)

	style.SetColor(imgui.StyleColorFrameBg, imgui.Vec4{X: 1.0, Y: 1.0, Z: 1.0, W: 0.9})
	style.SetColor(imgui.StyleColorFrameBgHovered, imgui.Vec4{X: 1.0, Y: 0.97, Z: 0.92, W: 1.0})
	style.SetColor(imgui.StyleColorFrameBgActive, imgui.Vec4{X: 1.0, Y: 0.95, Z: 0.88, W: 1.0})

	style.SetColor(imgui.StyleColorScrollbarBg, imgui.Vec4{X: 0, Y: 0, Z: 0, W: 0})
	style.SetColor(imgui.StyleColorScrollbarGrab, accentDim)
	style.SetColor(imgui.StyleColorScrollbarGrabHovered, accentHover)
	style.SetColor(imgui.StyleColorScrollbarGrabActive, accent)
	style.SetColor(imgui.StyleColorTextSelectedBg, accentDim)

	style.SetWindowBorderSize(1.0)
	style.SetFrameBorderSize(1.0)
	style.SetWindowRounding(10.0)
	style.SetFrameRounding(6.0)
	style.SetWindowPadding(imgui.Vec2{X: 18, Y: 16})
	style.SetFramePadding(imgui.Vec2{X: 12, Y: 7})
	style.SetItemSpacing(imgui.Vec2{X: 8, Y: 8})
}
