package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewDefaultCamera(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	if cam == nil {
		t.Fatal("NewDefaultCamera returned nil")
	}

	want := mgl32.Vec3{0, 1.6, 3.2}
	if !cam.Position.ApproxEqualThreshold(want, 1e-4) {
		t.Errorf("Expected start position %v, got %v", want, cam.Position)
	}

	if cam.Target != (mgl32.Vec3{0, 1.4, 0}) {
		t.Errorf("Expected target (0,1.4,0), got %v", cam.Target)
	}

	if cam.Sensitivity <= 0 {
		t.Error("Camera sensitivity should be positive")
	}
}

func TestCameraGetViewMatrix(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	view := cam.GetViewMatrix()

	if view.At(3, 3) != 1.0 {
		t.Error("View matrix should be valid (w component = 1)")
	}

	// The target sits straight ahead in view space.
	p := view.Mul4x1(cam.Target.Vec4(1))
	if math.Abs(float64(p.X())) > 1e-4 || p.Z() >= 0 {
		t.Errorf("Target should be in front of the camera, got %v", p)
	}
}

func TestCameraGetProjectionMatrix(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	proj := cam.GetProjectionMatrix()

	if proj.At(3, 3) != 0.0 {
		t.Error("Perspective projection should have w=0 at (3,3)")
	}
}

func TestCameraGetViewProjection(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	vp := cam.GetViewProjection()

	zero := mgl32.Mat4{}
	if vp == zero {
		t.Error("ViewProjection should not be zero matrix")
	}
}

func TestCameraZoomClampsDistance(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	cam.Zoom(500)
	if cam.Distance != cam.MinDistance {
		t.Errorf("Expected distance clamped to %v, got %v", cam.MinDistance, cam.Distance)
	}

	cam.Zoom(-500)
	if cam.Distance != cam.MaxDistance {
		t.Errorf("Expected distance clamped to %v, got %v", cam.MaxDistance, cam.Distance)
	}
}

func TestCameraNeverGoesBelowGround(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	cam.Rotate(0, -100000)
	for i := 0; i < 200; i++ {
		cam.Update()
	}

	if cam.Polar > cam.MaxPolarAngle+1e-6 {
		t.Errorf("Polar angle %v exceeds limit %v", cam.Polar, cam.MaxPolarAngle)
	}
	if cam.Position.Y() < cam.Target.Y() {
		t.Errorf("Camera dropped below its target: %v", cam.Position)
	}
}

func TestCameraDampingStopsOrbit(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	cam.Rotate(40, 0)
	for i := 0; i < 1000; i++ {
		cam.Update()
	}
	before := cam.Azimuth
	cam.Update()

	if cam.Azimuth != before {
		t.Errorf("Orbit should come to rest, azimuth still moving from %v to %v", before, cam.Azimuth)
	}
}

func TestCameraMoveTo(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	target := mgl32.Vec3{0.5, 1.55, 2.4}
	cam.MoveTo(target)

	if !cam.Position.ApproxEqualThreshold(target, 1e-4) {
		t.Errorf("Expected %v, got %v", target, cam.Position)
	}
}

func TestCameraSetViewport(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	cam.SetViewport(1000, 500)
	if cam.AspectRatio != 2 {
		t.Errorf("Expected aspect 2, got %v", cam.AspectRatio)
	}

	cam.SetViewport(1000, 0)
	if cam.AspectRatio != 1 {
		t.Errorf("Zero height should fall back to aspect 1, got %v", cam.AspectRatio)
	}
}
