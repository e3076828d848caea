package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Moksham-dev/OpenGL-Classroom-Simulation/core"
	"github.com/Moksham-dev/OpenGL-Classroom-Simulation/math"
)

// LoadGLTF reads a .gltf or .glb file and flattens every primitive into a
// single indexed mesh. Positions, UVs, and normals are extracted; material
// data is ignored because classroom materials are bound from separate
// texture files.
func LoadGLTF(path string) (*core.MeshData, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	data := &core.MeshData{}
	for _, mesh := range doc.Meshes {
		for _, prim := range mesh.Primitives {
			if err := appendPrimitive(doc, prim, data); err != nil {
				return nil, fmt.Errorf("gltf %q: %w", path, err)
			}
		}
	}
	if len(data.Vertices) == 0 || len(data.Indices) == 0 {
		return nil, fmt.Errorf("gltf %q: no triangle data", path)
	}
	return data, nil
}

func appendPrimitive(doc *gltf.Document, prim *gltf.Primitive, data *core.MeshData) error {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return fmt.Errorf("primitive has no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("read positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
		if err != nil {
			return fmt.Errorf("read normals: %w", err)
		}
	}

	var uvs [][2]float32
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
		if err != nil {
			return fmt.Errorf("read texcoords: %w", err)
		}
	}

	base := uint32(len(data.Vertices))
	for i, p := range positions {
		v := core.Vertex{Position: math.Vec3{X: p[0], Y: p[1], Z: p[2]}}
		if i < len(normals) {
			v.Normal = math.Vec3{X: normals[i][0], Y: normals[i][1], Z: normals[i][2]}
		}
		if i < len(uvs) {
			v.UV = math.Vec2{X: uvs[i][0], Y: uvs[i][1]}
		}
		data.Vertices = append(data.Vertices, v)
	}

	if prim.Indices != nil {
		indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return fmt.Errorf("read indices: %w", err)
		}
		for _, idx := range indices {
			data.Indices = append(data.Indices, base+idx)
		}
	} else {
		for i := range positions {
			data.Indices = append(data.Indices, base+uint32(i))
		}
	}
	return nil
}

// LoadMeshAsset loads geometry from disk, dispatching on file extension:
// .obj through the OBJ parser, .gltf/.glb through the glTF reader.
func LoadMeshAsset(path string) (*core.MeshData, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return LoadOBJ(path)
	case ".gltf", ".glb":
		return LoadGLTF(path)
	default:
		return nil, fmt.Errorf("unsupported model format %q", path)
	}
}
