package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Moksham-dev/OpenGL-Classroom-Simulation/math"
)

func TestBiasMatrixCorners(t *testing.T) {
	b := BiasMatrix()

	near := b.MulPoint(math.NewVec3(-1, -1, -1))
	assert.InDelta(t, 0, near.X, 1e-6)
	assert.InDelta(t, 0, near.Y, 1e-6)
	assert.InDelta(t, 0, near.Z, 1e-6)

	far := b.MulPoint(math.NewVec3(1, 1, 1))
	assert.InDelta(t, 1, far.X, 1e-6)
	assert.InDelta(t, 1, far.Y, 1e-6)
	assert.InDelta(t, 1, far.Z, 1e-6)

	mid := b.MulPoint(math.Vec3Zero)
	assert.InDelta(t, 0.5, mid.X, 1e-6)
	assert.InDelta(t, 0.5, mid.Y, 1e-6)
	assert.InDelta(t, 0.5, mid.Z, 1e-6)
}

func TestLightViewLooksDown(t *testing.T) {
	var rig LightRig
	rig.Positions[0] = math.NewVec3(0, 10, 0)

	// A point on the floor directly below the light sits on the view-space
	// forward axis at the light's height.
	v := rig.ViewMatrix(0).MulPoint(math.Vec3Zero)
	assert.InDelta(t, 0, v.X, 1e-5)
	assert.InDelta(t, 0, v.Y, 1e-5)
	assert.InDelta(t, -10, v.Z, 1e-5)
}

func TestDepthBiasVPComposition(t *testing.T) {
	var rig LightRig
	for i := range rig.Positions {
		rig.Positions[i] = math.NewVec3(float32(i)*3, 38.6, float32(i)*-2)
	}

	p := math.NewVec3(1.5, 0.5, -7)
	for i := 0; i < MaxLights; i++ {
		want := BiasMatrix().Mul(rig.Projection()).Mul(rig.ViewMatrix(i)).MulVec(p.ToVec4(1))
		got := rig.DepthBiasVP(i).MulVec(p.ToVec4(1))
		assert.InDelta(t, want.X, got.X, 1e-4)
		assert.InDelta(t, want.Y, got.Y, 1e-4)
		assert.InDelta(t, want.Z, got.Z, 1e-4)
		assert.InDelta(t, want.W, got.W, 1e-4)
	}
}

func TestDepthBiasMatricesDeterministic(t *testing.T) {
	var rig LightRig
	for i := range rig.Positions {
		rig.Positions[i] = math.NewVec3(float32(i), 38.6, float32(-i))
	}
	assert.Equal(t, rig.DepthBiasMatrices(), rig.DepthBiasMatrices())
}

func TestDepthBiasCentersBelowLight(t *testing.T) {
	var rig LightRig
	rig.Positions[0] = math.NewVec3(-22.54, 38.6, -25.76)

	// A point straight below the light projects to the shadow-map center.
	below := rig.Positions[0].Add(math.NewVec3(0, -20, 0))
	clip := rig.DepthBiasVP(0).MulVec(below.ToVec4(1))
	uv := clip.ToVec3DivW()
	assert.InDelta(t, 0.5, uv.X, 1e-4)
	assert.InDelta(t, 0.5, uv.Y, 1e-4)
	assert.Greater(t, uv.Z, float32(0))
	assert.Less(t, uv.Z, float32(1))
}

func TestCameraSpaceIdentity(t *testing.T) {
	var rig LightRig
	rig.Positions[3] = math.NewVec3(4, 5, 6)

	out := rig.CameraSpace(math.Mat4Identity())
	assert.Equal(t, rig.Positions, out)
}
