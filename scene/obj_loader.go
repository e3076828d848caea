package scene

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Moksham-dev/OpenGL-Classroom-Simulation/core"
	"github.com/Moksham-dev/OpenGL-Classroom-Simulation/math"
)

// LoadOBJ parses a Wavefront .obj file into indexed mesh data.
// Face corners sharing the same v/vt/vn triplet are welded to one vertex,
// so the output is already deduplicated for GPU upload. Group and material
// statements are ignored; the classroom assets are one mesh per file.
func LoadOBJ(path string) (*core.MeshData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open OBJ %q: %w", path, err)
	}
	defer f.Close()

	var positions []math.Vec3
	var normals []math.Vec3
	var uvs []math.Vec2

	data := &core.MeshData{}
	vertexMap := make(map[string]uint32) // "v/vt/vn" -> output index

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		switch parts[0] {
		case "v":
			if len(parts) >= 4 {
				positions = append(positions, parseVec3(parts[1], parts[2], parts[3]))
			}
		case "vn":
			if len(parts) >= 4 {
				normals = append(normals, parseVec3(parts[1], parts[2], parts[3]))
			}
		case "vt":
			if len(parts) >= 3 {
				u, _ := strconv.ParseFloat(parts[1], 32)
				v, _ := strconv.ParseFloat(parts[2], 32)
				uvs = append(uvs, math.Vec2{X: float32(u), Y: float32(v)})
			}
		case "f":
			faceVerts := make([]uint32, 0, len(parts)-1)
			for _, corner := range parts[1:] {
				if idx, ok := vertexMap[corner]; ok {
					faceVerts = append(faceVerts, idx)
					continue
				}
				vertex, err := parseFaceVertex(corner, positions, normals, uvs)
				if err != nil {
					return nil, fmt.Errorf("OBJ %q: %w", path, err)
				}
				idx := uint32(len(data.Vertices))
				data.Vertices = append(data.Vertices, vertex)
				vertexMap[corner] = idx
				faceVerts = append(faceVerts, idx)
			}
			// Fan triangulation for n-gons
			for i := 2; i < len(faceVerts); i++ {
				data.Indices = append(data.Indices,
					faceVerts[0], faceVerts[i-1], faceVerts[i])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read OBJ %q: %w", path, err)
	}
	if len(data.Vertices) == 0 || len(data.Indices) == 0 {
		return nil, fmt.Errorf("OBJ %q: no face data", path)
	}
	return data, nil
}

func parseVec3(sx, sy, sz string) math.Vec3 {
	x, _ := strconv.ParseFloat(sx, 32)
	y, _ := strconv.ParseFloat(sy, 32)
	z, _ := strconv.ParseFloat(sz, 32)
	return math.Vec3{X: float32(x), Y: float32(y), Z: float32(z)}
}

// parseFaceVertex resolves one "v", "v/vt", "v//vn", or "v/vt/vn" face
// corner. OBJ indices are 1-based; negative indices count from the end.
func parseFaceVertex(corner string, positions, normals []math.Vec3, uvs []math.Vec2) (core.Vertex, error) {
	var vertex core.Vertex

	fields := strings.Split(corner, "/")
	resolve := func(s string, n int) (int, bool) {
		if s == "" {
			return 0, false
		}
		i, err := strconv.Atoi(s)
		if err != nil {
			return 0, false
		}
		if i < 0 {
			i = n + i + 1
		}
		if i < 1 || i > n {
			return 0, false
		}
		return i - 1, true
	}

	idx, ok := resolve(fields[0], len(positions))
	if !ok {
		return vertex, fmt.Errorf("bad face vertex %q", corner)
	}
	vertex.Position = positions[idx]

	if len(fields) > 1 {
		if idx, ok := resolve(fields[1], len(uvs)); ok {
			vertex.UV = uvs[idx]
		}
	}
	if len(fields) > 2 {
		if idx, ok := resolve(fields[2], len(normals)); ok {
			vertex.Normal = normals[idx]
		}
	}
	return vertex, nil
}
