package loader

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"Attirra/internal/logger"
	"Attirra/internal/renderer"

	"github.com/g3n/engine/core"
	"github.com/g3n/engine/graphic"
	"github.com/g3n/engine/loader/gltf"
	"github.com/g3n/engine/math32"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// ErrNoGeometry is returned for files that decode but contain no triangles.
var ErrNoGeometry = errors.New("no triangle geometry")

// ErrBadIndex is returned when an index buffer points past its vertices.
var ErrBadIndex = errors.New("vertex index out of range")

// Source loads binary glTF assets from a file system rooted at the asset directory.
type Source struct {
	fsys fs.FS
}

// NewSource returns a Source reading from fsys.
func NewSource(fsys fs.FS) *Source {
	return &Source{fsys: fsys}
}

// NewDirSource returns a Source reading from dir on disk.
func NewDirSource(dir string) *Source {
	return NewSource(os.DirFS(dir))
}

// Load decodes the .glb at p into a single model. Every mesh node of the
// default scene is flattened into world space and each primitive becomes one
// material group. Malformed files are reported as errors, never as panics.
func (s *Source) Load(ctx context.Context, p string) (model *renderer.Model, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// The glTF decoder indexes buffers and views without bounds checks.
	defer func() {
		if r := recover(); r != nil {
			model, err = nil, fmt.Errorf("decode %s: %v", p, r)
		}
	}()

	f, err := s.fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", p, err)
	}
	defer f.Close()

	doc, err := gltf.ParseBinReader(bufio.NewReader(f), path.Dir(p))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", p, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b := newBuilder(doc)
	if err := b.scene(); err != nil {
		return nil, fmt.Errorf("build %s: %w", p, err)
	}
	if len(b.faces) == 0 {
		return nil, fmt.Errorf("%s: %w", p, ErrNoGeometry)
	}

	model = renderer.CreateModel(b.vertices, b.normals, b.faces)
	model.Name = path.Base(p)
	model.SourcePath = p
	model.MaterialGroups = b.groups

	logger.Log.Debug("Loaded model",
		zap.String("path", p),
		zap.Int("vertices", len(b.vertices)),
		zap.Int("triangles", model.TriangleCount()),
		zap.Int("groups", len(b.groups)))
	return model, nil
}

type builder struct {
	doc       *gltf.GLTF
	vertices  []mgl32.Vec3
	normals   []mgl32.Vec3
	faces     []int32
	groups    []renderer.MaterialGroup
	materials map[int]*renderer.Material
}

func newBuilder(doc *gltf.GLTF) *builder {
	return &builder{doc: doc, materials: make(map[int]*renderer.Material)}
}

func (b *builder) scene() error {
	if len(b.doc.Scenes) == 0 {
		return errors.New("no scenes")
	}
	idx := 0
	if b.doc.Scene != nil {
		idx = *b.doc.Scene
	}
	if idx < 0 || idx >= len(b.doc.Scenes) {
		return fmt.Errorf("scene %d out of range", idx)
	}
	for _, n := range b.doc.Scenes[idx].Nodes {
		if err := b.node(n, mgl32.Ident4(), 0); err != nil {
			return err
		}
	}
	return nil
}

// Deep enough for any sane rig, shallow enough to stop on cyclic node graphs.
const maxNodeDepth = 64

func (b *builder) node(idx int, parent mgl32.Mat4, depth int) error {
	if idx < 0 || idx >= len(b.doc.Nodes) {
		return fmt.Errorf("node %d out of range", idx)
	}
	if depth > maxNodeDepth {
		return fmt.Errorf("node %d nested deeper than %d", idx, maxNodeDepth)
	}
	n := b.doc.Nodes[idx]
	world := parent.Mul4(localMatrix(n))

	if n.Mesh != nil {
		if err := b.mesh(*n.Mesh, world); err != nil {
			return err
		}
	}
	for _, child := range n.Children {
		if err := b.node(child, world, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func localMatrix(n gltf.Node) mgl32.Mat4 {
	if n.Matrix != nil {
		return mgl32.Mat4(*n.Matrix)
	}
	m := mgl32.Ident4()
	if n.Translation != nil {
		t := *n.Translation
		m = m.Mul4(mgl32.Translate3D(t[0], t[1], t[2]))
	}
	if n.Rotation != nil {
		r := *n.Rotation
		m = m.Mul4(mgl32.Quat{W: r[3], V: mgl32.Vec3{r[0], r[1], r[2]}}.Normalize().Mat4())
	}
	if n.Scale != nil {
		s := *n.Scale
		m = m.Mul4(mgl32.Scale3D(s[0], s[1], s[2]))
	}
	return m
}

// mesh appends every primitive of mesh idx transformed by world.
func (b *builder) mesh(idx int, world mgl32.Mat4) error {
	if idx < 0 || idx >= len(b.doc.Meshes) {
		return fmt.Errorf("mesh %d out of range", idx)
	}
	inode, err := b.doc.LoadMesh(idx)
	if err != nil {
		return fmt.Errorf("mesh %d: %w", idx, err)
	}

	primitives := b.doc.Meshes[idx].Primitives
	normalMatrix := world.Mat3().Inv().Transpose()
	meshes := primitiveMeshes(inode)
	for i, m := range meshes {
		var material *int
		if len(primitives) == len(meshes) {
			material = primitives[i].Material
		}
		if err := b.primitive(m, world, normalMatrix, material); err != nil {
			return fmt.Errorf("mesh %d primitive %d: %w", idx, i, err)
		}
	}
	return nil
}

func primitiveMeshes(inode core.INode) []*graphic.Mesh {
	if m, ok := inode.(*graphic.Mesh); ok {
		return []*graphic.Mesh{m}
	}
	var out []*graphic.Mesh
	for _, child := range inode.GetNode().Children() {
		if m, ok := child.(*graphic.Mesh); ok {
			out = append(out, m)
		}
	}
	return out
}

func (b *builder) primitive(m *graphic.Mesh, world mgl32.Mat4, normalMatrix mgl32.Mat3, material *int) error {
	geom := m.GetGeometry()
	base := int32(len(b.vertices))

	var positions []mgl32.Vec3
	geom.ReadVertices(func(v math32.Vector3) bool {
		positions = append(positions, world.Mul4x1(mgl32.Vec3{v.X, v.Y, v.Z}.Vec4(1)).Vec3())
		return false
	})
	if len(positions) == 0 {
		return nil
	}

	var normals []mgl32.Vec3
	geom.ReadVertexNormals(func(n math32.Vector3) bool {
		normals = append(normals, normalMatrix.Mul3x1(mgl32.Vec3{n.X, n.Y, n.Z}).Normalize())
		return false
	})

	var indices []int32
	if geom.Indexed() {
		for _, i := range geom.Indices() {
			if int(i) >= len(positions) {
				return fmt.Errorf("%w: index %d with %d vertices", ErrBadIndex, i, len(positions))
			}
			indices = append(indices, int32(i))
		}
	} else {
		for i := range positions {
			indices = append(indices, int32(i))
		}
	}
	indices = indices[:len(indices)-len(indices)%3]
	if len(indices) == 0 {
		return nil
	}
	if len(normals) != len(positions) {
		normals = RecalculateNormals(positions, indices)
	}

	start := int32(len(b.faces))
	for _, i := range indices {
		b.faces = append(b.faces, base+i)
	}
	b.vertices = append(b.vertices, positions...)
	b.normals = append(b.normals, normals...)
	b.groups = append(b.groups, renderer.MaterialGroup{
		Material:   b.material(material),
		IndexStart: start,
		IndexCount: int32(len(indices)),
	})
	return nil
}

// material converts a glTF material to a renderer material. Primitives that
// share a glTF material share the converted one too.
func (b *builder) material(idx *int) *renderer.Material {
	key := -1
	if idx != nil {
		key = *idx
	}
	if mat, ok := b.materials[key]; ok {
		return mat
	}

	mat := renderer.NewMaterial("default", mgl32.Vec3{0.8, 0.8, 0.8}, 0.5)
	if key >= 0 && key < len(b.doc.Materials) {
		src := b.doc.Materials[key]
		if src.Name != "" {
			mat.Name = src.Name
		}
		if pbr := src.PbrMetallicRoughness; pbr != nil {
			if c := pbr.BaseColorFactor; c != nil {
				mat.DiffuseColor = [3]float32{c[0], c[1], c[2]}
			}
			mat.Metallic = 1
			if pbr.MetallicFactor != nil {
				mat.Metallic = *pbr.MetallicFactor
			}
			mat.Roughness = 1
			if pbr.RoughnessFactor != nil {
				mat.Roughness = *pbr.RoughnessFactor
			}
		}
	}
	b.materials[key] = mat
	return mat
}
