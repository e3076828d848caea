package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOBJ(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mesh.obj")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOBJTriangle(t *testing.T) {
	path := writeOBJ(t, `
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1
`)
	data, err := LoadOBJ(path)
	require.NoError(t, err)

	assert.Len(t, data.Vertices, 3)
	assert.Equal(t, []uint32{0, 1, 2}, data.Indices)
	assert.InDelta(t, 1, data.Vertices[1].Position.X, 1e-6)
	assert.InDelta(t, 1, data.Vertices[2].UV.Y, 1e-6)
	assert.InDelta(t, 1, data.Vertices[0].Normal.Z, 1e-6)
}

func TestLoadOBJQuadTriangulation(t *testing.T) {
	path := writeOBJ(t, `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1 4/4/1
`)
	data, err := LoadOBJ(path)
	require.NoError(t, err)

	// Quad fans into two triangles; shared corners are deduplicated.
	assert.Len(t, data.Vertices, 4)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, data.Indices)
}

func TestLoadOBJNegativeIndices(t *testing.T) {
	path := writeOBJ(t, `
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vn 0 0 1
f -3/-1/-1 -2/-1/-1 -1/-1/-1
`)
	data, err := LoadOBJ(path)
	require.NoError(t, err)
	assert.Len(t, data.Vertices, 3)
	assert.InDelta(t, 1, data.Vertices[2].Position.Y, 1e-6)
}

func TestLoadOBJMissingFile(t *testing.T) {
	_, err := LoadOBJ(filepath.Join(t.TempDir(), "nope.obj"))
	assert.Error(t, err)
}

func TestLoadOBJBadFace(t *testing.T) {
	path := writeOBJ(t, "v 0 0 0\nf 1 2 3\n")
	_, err := LoadOBJ(path)
	assert.Error(t, err)
}
