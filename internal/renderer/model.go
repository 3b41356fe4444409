package renderer

import (
	"math"

	"Attirra/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// DefaultMaterial provides a basic material to fall back on
var DefaultMaterial = &Material{
	Name:          "default",
	DiffuseColor:  [3]float32{1.0, 1.0, 1.0},
	SpecularColor: [3]float32{1.0, 1.0, 1.0},
	Shininess:     32.0,
	Metallic:      0.0,
	Roughness:     0.5,
	Alpha:         1.0,
}

// MaterialGroup represents a submesh with a single material
type MaterialGroup struct {
	Material   *Material // Material for this group
	IndexStart int32     // Starting index in the index buffer
	IndexCount int32     // Number of indices for this group
}

type Model struct {
	// HOT DATA - Accessed every frame in render loop
	ModelMatrix mgl32.Mat4 // Transformation matrix
	Position    mgl32.Vec3 // Position in world space
	Scale       mgl32.Vec3 // Scale factors
	Rotation    mgl32.Quat // Rotation quaternion
	Material    *Material  // Used when there are no material groups
	VAO         uint32     // Vertex Array Object
	VBO         uint32     // Vertex Buffer Object
	EBO         uint32     // Element Buffer Object
	IsDirty     bool       // Needs recalculation flag

	// COLD DATA - Initialization only or rarely accessed
	Name            string
	SourcePath      string          // File the model was decoded from
	Vertices        []float32       // Vertex position data
	Normals         []float32       // Normal vectors
	Faces           []int32         // Triangle indices
	InterleavedData []float32       // position(3) uv(2) normal(3)
	MaterialGroups  []MaterialGroup // For multi-material models
	BoundsMin       mgl32.Vec3
	BoundsMax       mgl32.Vec3

	uploaded bool
	disposed bool
}

type Material struct {
	DiffuseColor  [3]float32 // Base color for lighting
	SpecularColor [3]float32 // Specular highlight color
	Shininess     float32    // Specular exponent
	Metallic      float32    // 0.0 = dielectric, 1.0 = metallic
	Roughness     float32    // 0.0 = mirror, 1.0 = completely rough
	Alpha         float32    // Transparency (0.0 = transparent, 1.0 = opaque)

	Name     string
	disposed bool
}

// NewMaterial returns an opaque material of the given colour.
func NewMaterial(name string, color mgl32.Vec3, roughness float32) *Material {
	return &Material{
		Name:          name,
		DiffuseColor:  [3]float32{color[0], color[1], color[2]},
		SpecularColor: [3]float32{1.0, 1.0, 1.0},
		Shininess:     32.0,
		Roughness:     roughness,
		Alpha:         1.0,
	}
}

// Dispose marks the material as released. A disposed material is never drawn again.
func (m *Material) Dispose() {
	m.disposed = true
}

func (m *Material) Disposed() bool {
	return m.disposed
}

// SetPosition sets the position of the model
func (m *Model) SetPosition(x, y, z float32) {
	m.Position = mgl32.Vec3{x, y, z}
	m.updateModelMatrix()
	m.IsDirty = true
}

// SetYaw replaces the rotation with a turn of radians around the vertical axis.
func (m *Model) SetYaw(radians float32) {
	m.Rotation = mgl32.QuatRotate(radians, mgl32.Vec3{0, 1, 0})
	m.updateModelMatrix()
	m.IsDirty = true
}

// Yaw returns the rotation around the vertical axis in radians.
func (m *Model) Yaw() float32 {
	q := m.rotation()
	return float32(math.Atan2(float64(2*(q.W*q.V[1]+q.V[0]*q.V[2])), float64(1-2*(q.V[1]*q.V[1]+q.V[0]*q.V[0]))))
}

func (m *Model) rotation() mgl32.Quat {
	if m.Rotation == (mgl32.Quat{}) {
		return mgl32.QuatIdent()
	}
	return m.Rotation
}

func (m *Model) updateModelMatrix() {
	// Matrix multiplication order: translation * rotation * scale
	scaleMatrix := mgl32.Scale3D(m.Scale[0], m.Scale[1], m.Scale[2])
	rotationMatrix := m.rotation().Mat4()
	translationMatrix := mgl32.Translate3D(m.Position[0], m.Position[1], m.Position[2])
	m.ModelMatrix = translationMatrix.Mul4(rotationMatrix).Mul4(scaleMatrix)
}

// Materials returns every material the model draws with.
func (m *Model) Materials() []*Material {
	if len(m.MaterialGroups) == 0 {
		if m.Material == nil {
			return nil
		}
		return []*Material{m.Material}
	}
	out := make([]*Material, 0, len(m.MaterialGroups))
	for _, g := range m.MaterialGroups {
		if g.Material != nil {
			out = append(out, g.Material)
		}
	}
	return out
}

// ensureMaterial gives the model its own material so that alpha or colour
// changes never leak into the shared DefaultMaterial.
func (m *Model) ensureMaterial() {
	if m.Material == nil {
		logger.Log.Debug("Creating new default material", zap.String("model", m.Name))
		m.Material = NewMaterial("default", mgl32.Vec3{1, 1, 1}, 0.5)
	} else if m.Material == DefaultMaterial {
		copied := *DefaultMaterial
		m.Material = &copied
	}
	for i := range m.MaterialGroups {
		if m.MaterialGroups[i].Material == nil || m.MaterialGroups[i].Material == DefaultMaterial {
			copied := *DefaultMaterial
			m.MaterialGroups[i].Material = &copied
		}
	}
}

// SetAlpha sets the opacity of every material of the model.
func (m *Model) SetAlpha(alpha float32) {
	m.ensureMaterial()
	for _, mat := range m.Materials() {
		mat.Alpha = alpha
	}
}

// Alpha is the opacity of the first material, 1 when there is none.
func (m *Model) Alpha() float32 {
	mats := m.Materials()
	if len(mats) == 0 {
		return 1
	}
	return mats[0].Alpha
}

// Dispose drops geometry and materials. The caller removes the model from the
// renderer first so that its GPU buffers are released too.
func (m *Model) Dispose() {
	if m.disposed {
		return
	}
	for _, mat := range m.Materials() {
		if mat != DefaultMaterial {
			mat.Dispose()
		}
	}
	m.Vertices = nil
	m.Normals = nil
	m.Faces = nil
	m.InterleavedData = nil
	m.disposed = true
}

func (m *Model) Disposed() bool {
	return m.disposed
}

// TriangleCount is the number of indexed triangles.
func (m *Model) TriangleCount() int {
	return len(m.Faces) / 3
}

// CreateModel interleaves positions and normals (nil for flat up-facing normals)
// into a model ready to be added to a renderer.
func CreateModel(vertices []mgl32.Vec3, normals []mgl32.Vec3, indices []int32) *Model {
	interleavedData := make([]float32, 0, len(vertices)*8)

	var boundsMin, boundsMax mgl32.Vec3
	for i, v := range vertices {
		interleavedData = append(interleavedData, v.X(), v.Y(), v.Z())
		interleavedData = append(interleavedData, 0.0, 0.0)

		n := mgl32.Vec3{0, 1, 0}
		if i < len(normals) {
			n = normals[i]
		}
		interleavedData = append(interleavedData, n.X(), n.Y(), n.Z())

		if i == 0 {
			boundsMin, boundsMax = v, v
			continue
		}
		for axis := 0; axis < 3; axis++ {
			boundsMin[axis] = float32(math.Min(float64(boundsMin[axis]), float64(v[axis])))
			boundsMax[axis] = float32(math.Max(float64(boundsMax[axis]), float64(v[axis])))
		}
	}

	model := &Model{
		Position:        mgl32.Vec3{0, 0, 0},
		Rotation:        mgl32.QuatIdent(),
		Scale:           mgl32.Vec3{1.0, 1.0, 1.0},
		Vertices:        flattenVertices(vertices),
		Normals:         flattenVertices(normals),
		Faces:           indices,
		InterleavedData: interleavedData,
		BoundsMin:       boundsMin,
		BoundsMax:       boundsMax,
	}
	model.updateModelMatrix()
	return model
}

// Helper to flatten Vec3 array
func flattenVertices(vertices []mgl32.Vec3) []float32 {
	flat := make([]float32, 0, len(vertices)*3)
	for _, v := range vertices {
		flat = append(flat, v.X(), v.Y(), v.Z())
	}
	return flat
}
