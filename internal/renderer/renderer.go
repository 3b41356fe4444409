package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

var Debug bool = false // Draws the scene in wireframe
var DepthTestEnabled bool = true
var ClearColorR float32 = 0.96 // Warm off-white backdrop
var ClearColorG float32 = 0.94
var ClearColorB float32 = 0.91

const (
	HemisphereLight  = "hemisphere"
	DirectionalLight = "directional"
)

type Light struct {
	Position    mgl32.Vec3
	Direction   mgl32.Vec3 // Directional lights only, points from the light into the scene
	Color       mgl32.Vec3 // Sky colour for hemisphere lights
	GroundColor mgl32.Vec3 // Hemisphere lights only
	Intensity   float32
	Mode        string // "hemisphere", "directional"
}

// CreateHemisphereLight lights from above with sky, and from below with ground colour.
func CreateHemisphereLight(sky, ground mgl32.Vec3, intensity float32) *Light {
	return &Light{
		Position:    mgl32.Vec3{0, 1, 0},
		Color:       sky,
		GroundColor: ground,
		Intensity:   intensity,
		Mode:        HemisphereLight,
	}
}

// CreateDirectionalLight places a light at position shining towards the origin.
func CreateDirectionalLight(position, color mgl32.Vec3, intensity float32) *Light {
	direction := mgl32.Vec3{0, -1, 0}
	if position.Len() > 0 {
		direction = position.Mul(-1).Normalize()
	}
	return &Light{
		Position:  position,
		Direction: direction,
		Color:     color,
		Intensity: intensity,
		Mode:      DirectionalLight,
	}
}

// HexColor converts 0xRRGGBB to a linear 0..1 colour vector.
func HexColor(hex uint32) mgl32.Vec3 {
	return mgl32.Vec3{
		float32((hex>>16)&0xff) / 255,
		float32((hex>>8)&0xff) / 255,
		float32(hex&0xff) / 255,
	}
}

type Render interface {
	Init(width, height int32)
	Render(camera *Camera, lights []*Light)
	AddModel(model *Model)
	RemoveModel(model *Model)
	UpdateViewport(width, height int32)
	Cleanup()
}
