package loader

import (
	"errors"
	"math"

	"Attirra/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

// LoadDisk builds a flat, up-facing disk of the given radius centred on the
// origin in the XZ plane. Used as the floor under the mannequin.
func LoadDisk(radius float32, segments int) (*renderer.Model, error) {
	if segments < 3 {
		return nil, errors.New("segments must be at least 3")
	}
	if radius <= 0 {
		return nil, errors.New("radius must be positive")
	}

	vertices := make([]mgl32.Vec3, 0, segments+1)
	normals := make([]mgl32.Vec3, 0, segments+1)
	indices := make([]int32, 0, segments*3)

	vertices = append(vertices, mgl32.Vec3{0, 0, 0})
	normals = append(normals, mgl32.Vec3{0, 1, 0})
	for i := 0; i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		vertices = append(vertices, mgl32.Vec3{
			radius * float32(math.Cos(theta)),
			0,
			radius * float32(math.Sin(theta)),
		})
		normals = append(normals, mgl32.Vec3{0, 1, 0})
	}

	// Wound counter-clockwise when seen from above.
	for i := 0; i < segments; i++ {
		current := int32(i + 1)
		next := int32((i+1)%segments + 1)
		indices = append(indices, 0, next, current)
	}

	model := renderer.CreateModel(vertices, normals, indices)
	model.Name = "ground"
	return model, nil
}

// RecalculateNormals averages face normals into smooth per-vertex normals.
// Out-of-range indices are skipped.
func RecalculateNormals(vertices []mgl32.Vec3, faces []int32) []mgl32.Vec3 {
	normals := make([]mgl32.Vec3, len(vertices))
	if len(vertices) == 0 || len(faces) == 0 {
		return normals
	}

	n := int32(len(vertices))
	for i := 0; i+2 < len(faces); i += 3 {
		i0, i1, i2 := faces[i], faces[i+1], faces[i+2]
		if i0 < 0 || i1 < 0 || i2 < 0 || i0 >= n || i1 >= n || i2 >= n {
			continue
		}

		edge1 := vertices[i1].Sub(vertices[i0])
		edge2 := vertices[i2].Sub(vertices[i0])
		normal := edge1.Cross(edge2)

		normals[i0] = normals[i0].Add(normal)
		normals[i1] = normals[i1].Add(normal)
		normals[i2] = normals[i2].Add(normal)
	}

	for i, normal := range normals {
		if normal.Len() == 0 {
			normals[i] = mgl32.Vec3{0, 1, 0}
			continue
		}
		normals[i] = normal.Normalize()
	}
	return normals
}
