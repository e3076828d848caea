package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Moksham-dev/OpenGL-Classroom-Simulation/core"
	"github.com/Moksham-dev/OpenGL-Classroom-Simulation/math"
	"github.com/Moksham-dev/OpenGL-Classroom-Simulation/scene"
)

func testMesh(name string, mapped bool) *scene.Mesh {
	var mat *scene.Material
	if mapped {
		mat = scene.NewNormalMappedMaterial(
			&scene.Texture{Name: "d"}, &scene.Texture{Name: "n"}, &scene.Texture{Name: "s"})
	} else {
		mat = scene.NewMaterial(&scene.Texture{Name: "d"})
	}
	data := &core.MeshData{
		Vertices: make([]core.Vertex, 3),
		Indices:  []uint32{0, 1, 2},
	}
	return scene.NewMesh(name, data, mat)
}

func testClassroom(t *testing.T) *scene.Classroom {
	t.Helper()
	c := &scene.Classroom{LightPanel: testMesh("panel", false)}

	for _, m := range []*scene.Mesh{testMesh("desk", false), testMesh("door", false)} {
		_, err := c.Buckets.Add(m, false)
		require.NoError(t, err)
	}
	_, err := c.Buckets.Add(testMesh("wall", true), false)
	require.NoError(t, err)
	_, err = c.Buckets.Add(testMesh("glass", false), true)
	require.NoError(t, err)
	return c
}

func TestFramePlanGroupOrder(t *testing.T) {
	plan := BuildFramePlan(testClassroom(t), 0.25)

	require.Len(t, plan.Groups, 4)
	assert.Equal(t, "opaque", plan.Groups[0].Name)
	assert.Equal(t, "normal-mapped", plan.Groups[1].Name)
	assert.Equal(t, "unlit", plan.Groups[2].Name)
	assert.Equal(t, "transparent", plan.Groups[3].Name)
}

func TestFramePlanTransparentState(t *testing.T) {
	plan := BuildFramePlan(testClassroom(t), 0.25)

	// Only the final group blends, and only it disables depth writes.
	for i, g := range plan.Groups[:3] {
		assert.False(t, g.Blend, "group %d", i)
		assert.True(t, g.DepthWrite, "group %d", i)
		assert.InDelta(t, 1, g.Alpha, 1e-6, "group %d", i)
	}
	last := plan.Groups[3]
	assert.True(t, last.Blend)
	assert.False(t, last.DepthWrite)
	assert.InDelta(t, 0.25, last.Alpha, 1e-6)
}

func TestFramePlanShadowCasters(t *testing.T) {
	c := testClassroom(t)
	plan := BuildFramePlan(c, 0.25)

	// Opaque then normal-mapped, nothing else.
	require.Len(t, plan.ShadowCasters, 3)
	names := []string{}
	for _, m := range plan.ShadowCasters {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"desk", "door", "wall"}, names)

	for _, m := range plan.ShadowCasters {
		b, ok := m.Bucket()
		require.True(t, ok)
		assert.NotEqual(t, scene.BucketTransparent, b, "%s", m.Name)
	}
}

func TestFramePlanExcludesGlassAndPanelFromShadows(t *testing.T) {
	c := testClassroom(t)
	plan := BuildFramePlan(c, 0.25)

	for _, m := range plan.ShadowCasters {
		assert.NotEqual(t, "glass", m.Name)
		assert.NotEqual(t, "panel", m.Name)
	}
	// The panel still draws, unlit, in its own group.
	assert.Equal(t, []*scene.Mesh{c.LightPanel}, plan.Groups[2].Meshes)
	assert.True(t, plan.Groups[2].Unlit)
}

func TestFramePlanDrawAccounting(t *testing.T) {
	c := testClassroom(t)
	for _, m := range c.Buckets.All() {
		m.PlaceAt(math.NewVec3(1, 0, 0))
		m.PlaceAt(math.NewVec3(2, 0, 0))
	}
	c.LightPanel.PlaceAt(math.Vec3Zero)
	plan := BuildFramePlan(c, 0.25)

	// Each mesh binds in exactly one group; the lit pass issues one draw
	// per placed instance.
	seen := map[*scene.Mesh]int{}
	draws := 0
	for _, g := range plan.Groups {
		for _, m := range g.Meshes {
			seen[m]++
			draws += m.InstanceCount()
		}
	}
	for m, n := range seen {
		assert.Equal(t, 1, n, "%s", m.Name)
	}
	assert.Len(t, seen, c.Buckets.Len()+1)
	assert.Equal(t, 2*c.Buckets.Len()+1, draws)
}

func TestFramePlanDeterministic(t *testing.T) {
	c := testClassroom(t)
	assert.Equal(t, BuildFramePlan(c, 0.25), BuildFramePlan(c, 0.25))
}

func TestShadingModelString(t *testing.T) {
	assert.Equal(t, "phong", ShadingPhong.String())
	assert.Equal(t, "gouraud", ShadingGouraud.String())
}
