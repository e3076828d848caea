package scene

import (
	"github.com/Moksham-dev/OpenGL-Classroom-Simulation/core"
	"github.com/Moksham-dev/OpenGL-Classroom-Simulation/math"
)

// Mesh holds CPU-side geometry, its material, and the list of placements.
// Geometry and material are immutable after creation; the instance list is
// append-only during scene composition and read-only while rendering.
// GPU upload is managed by the renderer backend.
type Mesh struct {
	Name     string
	Vertices []core.Vertex
	Indices  []uint32

	// HasNormalMap is true iff the vertices carry tangent/bitangent data
	// and the material has normal+specular maps.
	HasNormalMap bool

	Material *Material

	// Instances are the world transforms of every placed copy, in
	// placement order.
	Instances []math.Mat4

	bucket    Bucket
	hasBucket bool

	// GPUData is set by the renderer backend. Do not access directly.
	GPUData interface{}
}

// NewMesh builds a mesh from loader output and a material. The normal-map
// invariant is derived from the material: callers wanting normal mapping
// must compute tangents afterwards via ComputeTangents.
func NewMesh(name string, data *core.MeshData, mat *Material) *Mesh {
	return &Mesh{
		Name:         name,
		Vertices:     data.Vertices,
		Indices:      data.Indices,
		Material:     mat,
		HasNormalMap: mat != nil && mat.HasNormalMap(),
	}
}

// AddInstance appends one placement transform.
func (m *Mesh) AddInstance(transform math.Mat4) {
	m.Instances = append(m.Instances, transform)
}

// Place appends an instance built from translation, an optional axis-angle
// rotation (degrees), and an optional non-uniform scale.
func (m *Mesh) Place(pos math.Vec3, rotDeg float32, rotAxis math.Vec3, scale math.Vec3) {
	model := math.Mat4Translation(pos)
	if rotDeg != 0 {
		model = model.Mul(math.Mat4RotationAxis(rotAxis, math.DegToRad(rotDeg)))
	}
	if scale != math.Vec3One {
		model = model.Mul(math.Mat4Scale(scale))
	}
	m.AddInstance(model)
}

// PlaceAt appends an unrotated, unscaled instance at pos.
func (m *Mesh) PlaceAt(pos math.Vec3) {
	m.Place(pos, 0, math.Vec3Up, math.Vec3One)
}

// InstanceCount reports how many copies of this mesh have been placed.
func (m *Mesh) InstanceCount() int {
	return len(m.Instances)
}

// IndexCount is the number of index-buffer elements.
func (m *Mesh) IndexCount() int {
	return len(m.Indices)
}

// Bucket returns the render bucket this mesh was assigned to.
// Valid only after Buckets.Add.
func (m *Mesh) Bucket() (Bucket, bool) {
	return m.bucket, m.hasBucket
}
