package core

import (
	"github.com/Moksham-dev/OpenGL-Classroom-Simulation/math"
)

type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// Vertex is one interleaved vertex record as uploaded to the GPU.
// Attribute locations: 0=Position, 1=UV, 2=Normal, 3=Tangent, 4=Bitangent.
// Tangent and Bitangent are zero for meshes without a normal map; their
// attribute slots are never enabled for those meshes.
type Vertex struct {
	Position  math.Vec3
	UV        math.Vec2
	Normal    math.Vec3
	Tangent   math.Vec3
	Bitangent math.Vec3
}

// MeshData is loader output before GPU upload: indexed, deduplicated
// vertices and a triangle index list.
type MeshData struct {
	Vertices []Vertex
	Indices  []uint32
}
