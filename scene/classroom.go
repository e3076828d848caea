package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Moksham-dev/OpenGL-Classroom-Simulation/math"
)

// MeshSource supplies loaded meshes to the composer. The production source
// reads model and texture files from disk; tests substitute a stub so the
// composition itself can be verified without assets.
type MeshSource interface {
	// Standard returns a mesh with a diffuse-only material.
	Standard(model, diffuse string) (*Mesh, error)
	// NormalMapped returns a mesh with diffuse+normal+specular maps and
	// computed tangent data.
	NormalMapped(model, diffuse, normal, specular string) (*Mesh, error)
}

// FileSource loads assets from <Dir>/models and <Dir>/textures.
type FileSource struct {
	Dir string
}

func (s FileSource) Standard(model, diffuse string) (*Mesh, error) {
	data, err := LoadMeshAsset(filepath.Join(s.Dir, "models", model))
	if err != nil {
		return nil, err
	}
	tex, err := LoadTexture(filepath.Join(s.Dir, "textures", diffuse))
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(model, filepath.Ext(model))
	return NewMesh(name, data, NewMaterial(tex)), nil
}

func (s FileSource) NormalMapped(model, diffuse, normal, specular string) (*Mesh, error) {
	data, err := LoadMeshAsset(filepath.Join(s.Dir, "models", model))
	if err != nil {
		return nil, err
	}
	diffTex, err := LoadTexture(filepath.Join(s.Dir, "textures", diffuse))
	if err != nil {
		return nil, err
	}
	normTex, err := LoadTexture(filepath.Join(s.Dir, "textures", normal))
	if err != nil {
		return nil, err
	}
	specTex, err := LoadTexture(filepath.Join(s.Dir, "textures", specular))
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(model, filepath.Ext(model))
	m := NewMesh(name, data, NewNormalMappedMaterial(diffTex, normTex, specTex))
	ComputeTangents(m)
	return m, nil
}

// Classroom is the composed static scene: the three render buckets, the
// unlit light-panel mesh drawn outside them, and the fixed light rig.
type Classroom struct {
	Buckets    Buckets
	LightPanel *Mesh
	Lights     LightRig
}

// Meshes returns every mesh in the scene, bucketed or not, for GPU upload
// and teardown.
func (c *Classroom) Meshes() []*Mesh {
	return append(c.Buckets.All(), c.LightPanel)
}

// Compose loads every classroom asset through src, assigns bucket
// membership, places all instances, and positions the 3x3 ceiling light
// grid. Any load failure aborts composition; the caller treats that as a
// fatal startup error.
func Compose(src MeshSource) (*Classroom, error) {
	c := &Classroom{}

	std := func(model, diffuse string) (*Mesh, error) {
		m, err := src.Standard(model, diffuse)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", model, err)
		}
		return m, nil
	}

	type load struct {
		mesh       **Mesh
		model, tex string
	}
	var bench, door, switchObj, exhaust, clock, pipe, projector, screen *Mesh
	var floor, fan, greenboard, podium, table, window, wallFan, glass *Mesh

	loads := []load{
		{&bench, "bench.obj", "bench.png"},
		{&door, "door.obj", "door.png"},
		{&switchObj, "switch.obj", "switch.png"},
		{&exhaust, "exhaust.obj", "projector.png"},
		{&clock, "clock.obj", "clock.png"},
		{&pipe, "pipe.obj", "pipe.png"},
		{&projector, "projector.obj", "projector.png"},
		{&screen, "screen.obj", "screen.png"},
		{&floor, "floor.obj", "floor.png"},
		{&fan, "fan.obj", "fan.png"},
		{&greenboard, "greenboard.obj", "greenboard.png"},
		{&podium, "podium.obj", "podium.png"},
		{&table, "table.obj", "table.png"},
		{&window, "window.obj", "window.png"},
		{&wallFan, "wallfan.obj", "wallfan.png"},
		{&glass, "glass.obj", "glass.png"},
	}
	for _, l := range loads {
		m, err := std(l.model, l.tex)
		if err != nil {
			return nil, err
		}
		*l.mesh = m
	}

	wall, err := src.NormalMapped("walls.obj", "walls.png", "normal.bmp", "specular.png")
	if err != nil {
		return nil, fmt.Errorf("load walls.obj: %w", err)
	}
	ceiling, err := src.NormalMapped("ceiling.obj", "ceiling.png", "normal.bmp", "specular.png")
	if err != nil {
		return nil, fmt.Errorf("load ceiling.obj: %w", err)
	}
	grid, err := src.NormalMapped("grid.obj", "grid.png", "normal.bmp", "specular.png")
	if err != nil {
		return nil, fmt.Errorf("load grid.obj: %w", err)
	}

	c.LightPanel, err = std("lightpanel.obj", "lightpanel.png")
	if err != nil {
		return nil, err
	}

	// Bucket membership is decided exactly once, here. Glass blends and is
	// excluded from shadow casting; the light panel stays outside the
	// buckets and is drawn unlit.
	for _, m := range []*Mesh{
		bench, door, switchObj, exhaust, clock, pipe, projector,
		screen, floor, fan, greenboard, podium, table, window, wallFan,
		wall, ceiling, grid,
	} {
		if _, err := c.Buckets.Add(m, false); err != nil {
			return nil, err
		}
	}
	if _, err := c.Buckets.Add(glass, true); err != nil {
		return nil, err
	}

	// ── Placements ────────────────────────────────────────────────────────

	// Benches: 5x5 grid with a two-slot aisle at the front row
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if i == 0 && (j == 3 || j == 4) {
				continue
			}
			bench.Place(math.NewVec3(-16.0+float32(i)*9.50, 0.5, -40.0+float32(j)*20.0),
				90, math.Vec3Up, math.Vec3One)
		}
	}

	// Ceiling fans: 2x3 grid
	fanStart := math.NewVec3(-32.2+19.32, 32.975, -48.3+22.54)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			fan.PlaceAt(fanStart.Add(math.NewVec3(float32(i)*25.76, 0, float32(j)*25.76)))
		}
	}

	// Static geometry
	floor.PlaceAt(math.Vec3Zero)
	ceiling.PlaceAt(math.NewVec3(0, 38.1, 0))
	wall.PlaceAt(math.NewVec3(-32.7, 19.06, 0))
	door.PlaceAt(math.NewVec3(-31.7, 12.5, 48.8))

	// Ceiling grid: rotated about Y then flipped about X
	gridModel := math.Mat4Translation(math.NewVec3(0, 38.8, 0)).
		Mul(math.Mat4RotationY(math.DegToRad(90))).
		Mul(math.Mat4RotationX(math.DegToRad(180)))
	grid.AddInstance(gridModel)

	// Paired wall details
	for i := 0; i < 2; i++ {
		fi := float32(i)
		greenboard.Place(math.NewVec3(-32.2, 18.6, fi*36*0.8-27.7+3.6),
			0, math.Vec3Up, math.NewVec3(1, 1, 0.8))
		switchObj.Place(math.NewVec3(-10.2+fi*28.2, 14.6, 48.3),
			180, math.Vec3Up, math.NewVec3(0.7, 0.7, 0.7))
		exhaust.Place(math.NewVec3(14.23-fi*21.46, 34.1, 48.8),
			0, math.Vec3Up, math.NewVec3(0.857, 0.857, 0.857))
	}

	podium.Place(math.NewVec3(-20.0, 0.5, 28.0), 290, math.Vec3Up, math.Vec3One)
	table.Place(math.NewVec3(-9.0, 0.5, 13.20), 90, math.Vec3Up, math.Vec3One)
	projector.Place(math.NewVec3(6.44, 29.75, -3.22), 180, math.Vec3Up, math.Vec3One)
	screen.Place(math.NewVec3(-31.5, 30.0, -9.66), 0, math.Vec3Up, math.NewVec3(1, 1.2, 1.5))
	clock.Place(math.NewVec3(7.60, 28.0, -48.0), 90, math.Vec3Right, math.Vec3One)
	pipe.Place(math.NewVec3(-32.2, 5.0, -9.0), 90, math.Vec3Up, math.Vec3One)
	wallFan.Place(math.NewVec3(-14.0, 25.0, 48.3), 180, math.Vec3Up, math.NewVec3(0.5, 0.5, 0.5))

	// Windows and glass panes: 8 on the long wall, 6 on the back wall
	for i := 0; i < 8; i++ {
		pos := math.NewVec3(32.70, 34.1, -42.26+12.075*float32(i))
		window.Place(pos, 90, math.Vec3Up, math.Vec3One)
		glass.Place(pos, 90, math.Vec3Up, math.NewVec3(1, 1, 0.25))
	}
	for i := 0; i < 6; i++ {
		pos := math.NewVec3(26.83-10.73*float32(i), 34.1, 48.8)
		window.Place(pos, 0, math.Vec3Up, math.NewVec3(0.888, 1, 1))
		glass.Place(pos, 0, math.Vec3Up, math.NewVec3(1, 1, 0.25))
	}

	// Ceiling lights: 3x3 grid, one panel mesh instance under each
	lightIdx := 0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			cx := -22.54 + float32(i)*25.76
			cz := -25.76 + float32(j)*25.76
			c.Lights.Positions[lightIdx] = math.NewVec3(cx, 38.6, cz)
			lightIdx++
			c.LightPanel.Place(math.NewVec3(cx, 37.675, cz),
				0, math.Vec3Up, math.NewVec3(6.44, 0.2, 6.44))
		}
	}

	return c, nil
}
