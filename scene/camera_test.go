package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlyCameraScrollClampsFOV(t *testing.T) {
	c := NewFlyCamera(10, 0.005)
	assert.InDelta(t, 45, c.FOVDeg, 1e-6)

	// Zoom all the way in, then far past the limit.
	for i := 0; i < 100; i++ {
		c.HandleScroll(1)
	}
	assert.InDelta(t, minFOVDeg, c.FOVDeg, 1e-6)

	// And all the way back out.
	for i := 0; i < 100; i++ {
		c.HandleScroll(-1)
	}
	assert.InDelta(t, maxFOVDeg, c.FOVDeg, 1e-6)
}

func TestFlyCameraBasisOrthonormal(t *testing.T) {
	c := NewFlyCamera(10, 0.005)

	dir := c.Direction()
	right := c.Right()
	up := c.Up()

	assert.InDelta(t, 1, dir.Length(), 1e-5)
	assert.InDelta(t, 1, right.Length(), 1e-5)
	assert.InDelta(t, 1, up.Length(), 1e-5)
	assert.InDelta(t, 0, dir.Dot(right), 1e-5)
	assert.InDelta(t, 0, dir.Dot(up), 1e-5)
	assert.InDelta(t, 0, right.Dot(up), 1e-5)
}

func TestFlyCameraRightIgnoresPitch(t *testing.T) {
	c := NewFlyCamera(10, 0.005)
	r1 := c.Right()
	c.VerticalAngle = 1.2
	r2 := c.Right()
	assert.InDelta(t, r1.X, r2.X, 1e-6)
	assert.InDelta(t, 0, r2.Y, 1e-6)
	assert.InDelta(t, r1.Z, r2.Z, 1e-6)
}
