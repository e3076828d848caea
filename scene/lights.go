package scene

import (
	"github.com/Moksham-dev/OpenGL-Classroom-Simulation/math"
)

// MaxLights is the fixed light count for the whole process lifetime.
// It is a hard contract shared with the lit shader's uniform arrays and
// the depth target's layer count; both sides are generated from it.
const MaxLights = 9

// Shadow-caster frustum for the downward-facing ceiling lights: a wide
// perspective cone covering the room height.
const (
	shadowFOVDeg = 120.0
	shadowAspect = 1.5
	shadowNear   = 5.0
	shadowFar    = 1000.0
)

// LightRig holds the world-space positions of the MaxLights ceiling lights
// and derives their shadow matrices. Light i maps 1:1 to depth-target
// layer i and bias-matrix slot i. Positions are set once during scene
// composition and never change.
type LightRig struct {
	Positions [MaxLights]math.Vec3
}

// CameraSpace transforms every light position into camera space with the
// given view matrix. Recomputed each frame because shading runs in camera
// space.
func (r *LightRig) CameraSpace(view math.Mat4) [MaxLights]math.Vec3 {
	var out [MaxLights]math.Vec3
	for i, p := range r.Positions {
		out[i] = view.MulVec(p.ToVec4(1)).ToVec3()
	}
	return out
}

// ViewMatrix is light i's depth-pass view: looking straight down from the
// light, with -Z as the up reference. This models ceiling-mounted
// downward lights, not a general light orientation.
func (r *LightRig) ViewMatrix(i int) math.Mat4 {
	p := r.Positions[i]
	return math.Mat4LookAt(p, p.Add(math.Vec3Down), math.Vec3Back)
}

// Projection is the shared depth-pass projection for every light.
func (r *LightRig) Projection() math.Mat4 {
	return math.Mat4Perspective(math.DegToRad(shadowFOVDeg), shadowAspect, shadowNear, shadowFar)
}

// BiasMatrix remaps clip space [-1,1] to texture space [0,1] on all three
// axes, so a fragment position can be used directly as shadow-map
// coordinates plus comparison depth.
func BiasMatrix() math.Mat4 {
	return math.Mat4{
		{0.5, 0, 0, 0},
		{0, 0.5, 0, 0},
		{0, 0, 0.5, 0},
		{0.5, 0.5, 0.5, 1},
	}
}

// DepthBiasVP is bias * projection * view for light i: it takes a
// world-space position straight to that light's shadow-map texture
// coordinates.
func (r *LightRig) DepthBiasVP(i int) math.Mat4 {
	return BiasMatrix().Mul(r.Projection()).Mul(r.ViewMatrix(i))
}

// DepthBiasMatrices returns all MaxLights bias matrices in layer order.
func (r *LightRig) DepthBiasMatrices() [MaxLights]math.Mat4 {
	var out [MaxLights]math.Mat4
	for i := range out {
		out[i] = r.DepthBiasVP(i)
	}
	return out
}
