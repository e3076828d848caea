// Package renderer drives the per-frame two-stage pipeline: a depth pass
// into each light's shadow layer, then the lit pass over the scene buckets
// in a fixed order. The pass structure itself is plain data (FramePlan) so
// its ordering rules hold independently of any GPU state.
package renderer

import (
	"github.com/Moksham-dev/OpenGL-Classroom-Simulation/scene"
)

// ShadingModel selects between per-fragment and per-vertex lighting.
type ShadingModel int

const (
	ShadingPhong ShadingModel = iota
	ShadingGouraud
)

func (s ShadingModel) String() string {
	if s == ShadingGouraud {
		return "gouraud"
	}
	return "phong"
}

// DrawGroup is one lit-pass stage: an ordered mesh list plus the GL state
// it is drawn under.
type DrawGroup struct {
	Name       string
	Meshes     []*scene.Mesh
	Blend      bool
	DepthWrite bool
	Unlit      bool
	Alpha      float32
}

// FramePlan is the fixed per-frame schedule built once at startup. The
// scene is static, so the same plan is replayed every frame.
type FramePlan struct {
	// ShadowCasters feed every light's depth pass. Transparent meshes
	// never cast shadows; neither does the emissive light panel.
	ShadowCasters []*scene.Mesh

	// Groups run in order: opaque, normal-mapped, unlit, transparent.
	// Transparent is last so glass blends against the finished scene.
	Groups []DrawGroup
}

// BuildFramePlan derives the draw schedule from a composed classroom.
// glassAlpha is the uniform opacity of the transparent group.
func BuildFramePlan(c *scene.Classroom, glassAlpha float32) FramePlan {
	opaque := c.Buckets.Meshes(scene.BucketOpaque)
	mapped := c.Buckets.Meshes(scene.BucketNormalMapped)
	transparent := c.Buckets.Meshes(scene.BucketTransparent)

	casters := make([]*scene.Mesh, 0, len(opaque)+len(mapped))
	casters = append(casters, opaque...)
	casters = append(casters, mapped...)

	return FramePlan{
		ShadowCasters: casters,
		Groups: []DrawGroup{
			{Name: "opaque", Meshes: opaque, DepthWrite: true, Alpha: 1},
			{Name: "normal-mapped", Meshes: mapped, DepthWrite: true, Alpha: 1},
			{Name: "unlit", Meshes: []*scene.Mesh{c.LightPanel}, DepthWrite: true, Unlit: true, Alpha: 1},
			{Name: "transparent", Meshes: transparent, Blend: true, DepthWrite: false, Alpha: glassAlpha},
		},
	}
}
