package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func triangle() *Model {
	return CreateModel(
		[]mgl32.Vec3{{-1, 0, 0}, {1, 0, 0}, {0, 2, -0.5}},
		nil,
		[]int32{0, 1, 2},
	)
}

func TestCreateModel(t *testing.T) {
	model := triangle()

	if len(model.InterleavedData) != 3*8 {
		t.Fatalf("Expected 24 interleaved floats, got %d", len(model.InterleavedData))
	}
	// Missing normals default to +Y.
	if model.InterleavedData[6] != 1 {
		t.Errorf("Expected default normal y=1, got %v", model.InterleavedData[6])
	}
	if model.BoundsMin != (mgl32.Vec3{-1, 0, -0.5}) || model.BoundsMax != (mgl32.Vec3{1, 2, 0}) {
		t.Errorf("Unexpected bounds %v %v", model.BoundsMin, model.BoundsMax)
	}
	if model.TriangleCount() != 1 {
		t.Errorf("Expected 1 triangle, got %d", model.TriangleCount())
	}
}

func TestModelYaw(t *testing.T) {
	model := triangle()

	model.SetYaw(math.Pi / 2)
	if math.Abs(float64(model.Yaw()-math.Pi/2)) > 1e-4 {
		t.Errorf("Expected yaw pi/2, got %v", model.Yaw())
	}

	model.SetYaw(0)
	if math.Abs(float64(model.Yaw())) > 1e-5 {
		t.Errorf("Expected yaw 0, got %v", model.Yaw())
	}
}

func TestModelAlphaDoesNotTouchDefaultMaterial(t *testing.T) {
	model := triangle()
	model.Material = DefaultMaterial

	model.SetAlpha(0.25)

	if model.Alpha() != 0.25 {
		t.Errorf("Expected alpha 0.25, got %v", model.Alpha())
	}
	if DefaultMaterial.Alpha != 1 {
		t.Errorf("DefaultMaterial alpha changed to %v", DefaultMaterial.Alpha)
	}
}

func TestModelAlphaAppliesToEveryGroup(t *testing.T) {
	model := triangle()
	model.MaterialGroups = []MaterialGroup{
		{Material: NewMaterial("a", mgl32.Vec3{1, 0, 0}, 0.5), IndexCount: 3},
		{Material: nil, IndexStart: 3},
	}

	model.SetAlpha(0)

	for i, mat := range model.Materials() {
		if mat.Alpha != 0 {
			t.Errorf("Group %d alpha = %v", i, mat.Alpha)
		}
	}
	if len(model.Materials()) != 2 {
		t.Errorf("Expected 2 materials, got %d", len(model.Materials()))
	}
}

func TestModelDispose(t *testing.T) {
	model := triangle()
	model.SetAlpha(0.5)
	mat := model.Material

	model.Dispose()
	model.Dispose()

	if !model.Disposed() || !mat.Disposed() {
		t.Error("Model and its material should be disposed")
	}
	if model.Faces != nil || model.InterleavedData != nil {
		t.Error("Geometry should be released")
	}
	if DefaultMaterial.Disposed() {
		t.Error("DefaultMaterial must never be disposed")
	}
}

func TestLights(t *testing.T) {
	dir := CreateDirectionalLight(mgl32.Vec3{2, 3, 1.5}, mgl32.Vec3{1, 1, 1}, 0.9)
	if dir.Mode != DirectionalLight {
		t.Errorf("Expected directional mode, got %s", dir.Mode)
	}
	if math.Abs(float64(dir.Direction.Len()-1)) > 1e-5 || dir.Direction.Y() >= 0 {
		t.Errorf("Direction should be normalised and point down, got %v", dir.Direction)
	}

	hemi := CreateHemisphereLight(HexColor(0xffffff), HexColor(0x777777), 0.95)
	if hemi.Mode != HemisphereLight || hemi.GroundColor.X() != float32(0x77)/255 {
		t.Errorf("Unexpected hemisphere light %+v", hemi)
	}
}
