// camera.go
package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera orbits a target point. Position is derived from Target, Distance and
// the two spherical angles, so callers move the camera through Rotate, Zoom
// and MoveTo rather than by writing Position.
type Camera struct {
	// HOT DATA - Accessed every frame for view/projection calculations
	Position   mgl32.Vec3 // Camera position in world space
	Target     mgl32.Vec3 // Orbit centre
	Up         mgl32.Vec3 // Up direction vector
	Projection mgl32.Mat4 // Projection matrix
	Azimuth    float32    // Horizontal angle around the target, radians
	Polar      float32    // Angle from the vertical axis, radians
	Distance   float32    // Distance to the target

	// COLD DATA - Configuration and input handling, accessed less frequently
	MinDistance   float32
	MaxDistance   float32
	MaxPolarAngle float32
	Damping       float32 // Fraction of orbit velocity lost per frame
	Sensitivity   float32 // Radians per dragged pixel
	ZoomSpeed     float32
	Fov           float32 // Field of view, degrees
	Near          float32
	Far           float32
	AspectRatio   float32
	InvertMouse   bool

	azimuthVelocity float32
	polarVelocity   float32

	Name string
}

const minPolarAngle = 0.01

func NewDefaultCamera(width int32, height int32) *Camera {
	camera := Camera{
		Target:        mgl32.Vec3{0, 1.4, 0},
		Up:            mgl32.Vec3{0, 1, 0},
		MinDistance:   1.2,
		MaxDistance:   6,
		MaxPolarAngle: math.Pi * 0.49,
		Damping:       0.05,
		Sensitivity:   0.005,
		ZoomSpeed:     0.95,
		Fov:           40.0,
		Near:          0.1,
		Far:           100.0,
		AspectRatio:   aspect(width, height),
		Name:          "viewer",
	}
	camera.MoveTo(mgl32.Vec3{0, 1.6, 3.2})
	camera.UpdateProjection()
	return &camera
}

func aspect(width, height int32) float32 {
	if height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

func (c *Camera) UpdateProjection() {
	c.Projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.AspectRatio, c.Near, c.Far)
}

func (c *Camera) SetFov(fov float32) {
	c.Fov = fov
	c.UpdateProjection()
}

// SetViewport updates the aspect ratio after a window resize.
func (c *Camera) SetViewport(width, height int32) {
	c.AspectRatio = aspect(width, height)
	c.UpdateProjection()
}

func (c *Camera) GetViewProjection() mgl32.Mat4 {
	return c.Projection.Mul4(c.GetViewMatrix())
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return c.Projection
}

// MoveTo places the camera at position, keeping it within the orbit limits.
func (c *Camera) MoveTo(position mgl32.Vec3) {
	offset := position.Sub(c.Target)
	c.Distance = offset.Len()
	if c.Distance > 0 {
		c.Polar = float32(math.Acos(float64(mgl32.Clamp(offset.Y()/c.Distance, -1, 1))))
		c.Azimuth = float32(math.Atan2(float64(offset.X()), float64(offset.Z())))
	}
	c.updatePosition()
}

// Rotate adds orbit velocity from a mouse drag in pixels. Damping bleeds it off in Update.
func (c *Camera) Rotate(dx, dy float32) {
	if c.InvertMouse {
		dy = -dy
	}
	c.azimuthVelocity -= dx * c.Sensitivity
	c.polarVelocity -= dy * c.Sensitivity
}

// Zoom moves towards the target for positive steps and away for negative ones.
func (c *Camera) Zoom(steps float32) {
	c.Distance *= float32(math.Pow(float64(c.ZoomSpeed), float64(steps)))
	c.updatePosition()
}

// Update applies damped orbit velocity. Called once per frame.
func (c *Camera) Update() {
	c.Azimuth += c.azimuthVelocity
	c.Polar += c.polarVelocity
	c.azimuthVelocity *= 1 - c.Damping
	c.polarVelocity *= 1 - c.Damping
	if abs32(c.azimuthVelocity) < 1e-5 {
		c.azimuthVelocity = 0
	}
	if abs32(c.polarVelocity) < 1e-5 {
		c.polarVelocity = 0
	}
	c.updatePosition()
}

func (c *Camera) updatePosition() {
	c.Distance = mgl32.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
	c.Polar = mgl32.Clamp(c.Polar, minPolarAngle, c.MaxPolarAngle)

	sinPolar := float32(math.Sin(float64(c.Polar)))
	c.Position = c.Target.Add(mgl32.Vec3{
		c.Distance * sinPolar * float32(math.Sin(float64(c.Azimuth))),
		c.Distance * float32(math.Cos(float64(c.Polar))),
		c.Distance * sinPolar * float32(math.Cos(float64(c.Azimuth))),
	})
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
