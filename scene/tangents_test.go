package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Moksham-dev/OpenGL-Classroom-Simulation/core"
	"github.com/Moksham-dev/OpenGL-Classroom-Simulation/math"
)

func TestComputeTangentsFlatQuad(t *testing.T) {
	// XY-plane quad with UVs aligned to the axes: tangent must follow +X
	// (U direction), bitangent +Y (V direction).
	data := &core.MeshData{
		Vertices: []core.Vertex{
			{Position: math.NewVec3(0, 0, 0), UV: math.NewVec2(0, 0), Normal: math.Vec3Front},
			{Position: math.NewVec3(1, 0, 0), UV: math.NewVec2(1, 0), Normal: math.Vec3Front},
			{Position: math.NewVec3(1, 1, 0), UV: math.NewVec2(1, 1), Normal: math.Vec3Front},
			{Position: math.NewVec3(0, 1, 0), UV: math.NewVec2(0, 1), Normal: math.Vec3Front},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
	m := NewMesh("quad", data, mappedMaterial())
	ComputeTangents(m)

	for i, v := range m.Vertices {
		assert.InDelta(t, 1, v.Tangent.X, 1e-5, "vertex %d tangent", i)
		assert.InDelta(t, 0, v.Tangent.Y, 1e-5, "vertex %d tangent", i)
		assert.InDelta(t, 1, v.Bitangent.Y, 1e-5, "vertex %d bitangent", i)
		assert.InDelta(t, 1, v.Tangent.Length(), 1e-5)
		assert.InDelta(t, 1, v.Bitangent.Length(), 1e-5)
		assert.InDelta(t, 0, v.Tangent.Dot(v.Normal), 1e-5)
	}
}

func TestComputeTangentsDegenerateUVs(t *testing.T) {
	// All UVs identical: the triangle contributes nothing, the fallback
	// still produces a unit frame perpendicular to the normal.
	data := &core.MeshData{
		Vertices: []core.Vertex{
			{Position: math.NewVec3(0, 0, 0), Normal: math.Vec3Up},
			{Position: math.NewVec3(1, 0, 0), Normal: math.Vec3Up},
			{Position: math.NewVec3(0, 0, 1), Normal: math.Vec3Up},
		},
		Indices: []uint32{0, 1, 2},
	}
	m := NewMesh("degenerate", data, mappedMaterial())
	ComputeTangents(m)

	for i, v := range m.Vertices {
		assert.InDelta(t, 1, v.Tangent.Length(), 1e-5, "vertex %d", i)
		assert.InDelta(t, 1, v.Bitangent.Length(), 1e-5, "vertex %d", i)
		assert.InDelta(t, 0, v.Tangent.Dot(v.Normal), 1e-5, "vertex %d", i)
	}
}
