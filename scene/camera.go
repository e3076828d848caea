package scene

import (
	"github.com/chewxy/math32"

	"github.com/Moksham-dev/OpenGL-Classroom-Simulation/core"
	"github.com/Moksham-dev/OpenGL-Classroom-Simulation/math"
)

// FOV zoom limits (degrees), enforced on every scroll event.
const (
	minFOVDeg = 20.0
	maxFOVDeg = 60.0
)

const sprintFactor = 2.5

// FlyCamera is the free-flying FPS camera: yaw/pitch from mouse deltas,
// WASD/arrow movement, Q/E vertical, shift to sprint, scroll to zoom.
// It is an explicit state object shared by the input step and the per-frame
// matrix queries; nothing here is global.
type FlyCamera struct {
	Position        math.Vec3
	HorizontalAngle float32 // radians, 0 = toward +Z
	VerticalAngle   float32 // radians, positive looks up
	FOVDeg          float32

	MoveSpeed  float32 // units per second
	MouseSpeed float32 // radians per pixel

	NearPlane float32
	FarPlane  float32
}

// NewFlyCamera starts at the classroom's back corner looking into the room.
func NewFlyCamera(moveSpeed, mouseSpeed float32) *FlyCamera {
	return &FlyCamera{
		Position:        math.NewVec3(-32, 30, -48),
		HorizontalAngle: 0.59,
		VerticalAngle:   -0.48,
		FOVDeg:          45,
		MoveSpeed:       moveSpeed,
		MouseSpeed:      mouseSpeed,
		NearPlane:       0.1,
		FarPlane:        200,
	}
}

// Direction is the unit view direction from the spherical angles.
func (c *FlyCamera) Direction() math.Vec3 {
	return math.Vec3{
		X: math32.Cos(c.VerticalAngle) * math32.Sin(c.HorizontalAngle),
		Y: math32.Sin(c.VerticalAngle),
		Z: math32.Cos(c.VerticalAngle) * math32.Cos(c.HorizontalAngle),
	}
}

// Right is the horizontal right vector (independent of pitch).
func (c *FlyCamera) Right() math.Vec3 {
	return math.Vec3{
		X: math32.Sin(c.HorizontalAngle - math32.Pi/2),
		Y: 0,
		Z: math32.Cos(c.HorizontalAngle - math32.Pi/2),
	}
}

// Up completes the camera basis.
func (c *FlyCamera) Up() math.Vec3 {
	return c.Right().Cross(c.Direction())
}

// HandleScroll adjusts the field of view; wire it to the window's scroll
// callback. The FOV is clamped so zooming can never degenerate the
// projection.
func (c *FlyCamera) HandleScroll(yoff float64) {
	c.FOVDeg -= float32(yoff) * 2
	if c.FOVDeg < minFOVDeg {
		c.FOVDeg = minFOVDeg
	}
	if c.FOVDeg > maxFOVDeg {
		c.FOVDeg = maxFOVDeg
	}
}

// Update consumes one frame of keyboard/mouse state. The cursor is
// re-centred every frame so mouse deltas accumulate into the view angles.
func (c *FlyCamera) Update(win *core.Window, dt float32) {
	cx := float64(win.Width) / 2
	cy := float64(win.Height) / 2
	mx, my := win.GetCursorPos()
	win.SetCursorPos(cx, cy)

	c.HorizontalAngle += c.MouseSpeed * float32(cx-mx)
	c.VerticalAngle += c.MouseSpeed * float32(cy-my)

	dir := c.Direction()
	right := c.Right()
	up := c.Up()

	speed := c.MoveSpeed
	if win.IsKeyPressed(core.KeyLeftShift) || win.IsKeyPressed(core.KeyRightShift) {
		speed *= sprintFactor
	}
	step := speed * dt

	if win.IsKeyPressed(core.KeyW) || win.IsKeyPressed(core.KeyUp) {
		c.Position = c.Position.Add(dir.Mul(step))
	}
	if win.IsKeyPressed(core.KeyS) || win.IsKeyPressed(core.KeyDown) {
		c.Position = c.Position.Sub(dir.Mul(step))
	}
	if win.IsKeyPressed(core.KeyD) || win.IsKeyPressed(core.KeyRight) {
		c.Position = c.Position.Add(right.Mul(step))
	}
	if win.IsKeyPressed(core.KeyA) || win.IsKeyPressed(core.KeyLeft) {
		c.Position = c.Position.Sub(right.Mul(step))
	}
	if win.IsKeyPressed(core.KeyQ) {
		c.Position = c.Position.Add(up.Mul(step))
	}
	if win.IsKeyPressed(core.KeyE) {
		c.Position = c.Position.Sub(up.Mul(step))
	}
}

// ViewMatrix builds the view transform for the current frame.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return math.Mat4LookAt(c.Position, c.Position.Add(c.Direction()), c.Up())
}

// ProjectionMatrix builds the projection for the given aspect ratio.
func (c *FlyCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	return math.Mat4Perspective(math.DegToRad(c.FOVDeg), aspect, c.NearPlane, c.FarPlane)
}
