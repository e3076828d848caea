package math

import (
	stdmath "math"
	"testing"
)

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	// Addition
	result := v1.Add(v2)
	expected := NewVec3(5, 7, 9)
	if result != expected {
		t.Errorf("Add: expected %v, got %v", expected, result)
	}

	// Subtraction
	result = v2.Sub(v1)
	expected = NewVec3(3, 3, 3)
	if result != expected {
		t.Errorf("Sub: expected %v, got %v", expected, result)
	}

	// Scalar multiplication
	result = v1.Mul(2)
	expected = NewVec3(2, 4, 6)
	if result != expected {
		t.Errorf("Mul: expected %v, got %v", expected, result)
	}

	// Dot product
	dot := v1.Dot(v2)
	expectedDot := float32(32) // 1*4 + 2*5 + 3*6
	if dot != expectedDot {
		t.Errorf("Dot: expected %v, got %v", expectedDot, dot)
	}

	// Cross product (Right x Up = Front in right-handed system)
	cross := Vec3Right.Cross(Vec3Up)
	if cross != Vec3Front {
		t.Errorf("Cross: expected %v, got %v", Vec3Front, cross)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 0)
	normalized := v.Normalize()
	expected := NewVec3(1, 0, 0)

	if normalized != expected {
		t.Errorf("Normalize: expected %v, got %v", expected, normalized)
	}

	length := normalized.Length()
	if stdmath.Abs(float64(length-1)) > 0.0001 {
		t.Errorf("Normalize: expected length 1, got %v", length)
	}

	// Normalizing the zero vector must not divide by zero
	zero := Vec3Zero.Normalize()
	if zero != Vec3Zero {
		t.Errorf("Normalize zero: expected %v, got %v", Vec3Zero, zero)
	}
}

func TestMat4Identity(t *testing.T) {
	m := Mat4Identity()

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			expected := float32(0)
			if i == j {
				expected = 1
			}
			if m[i][j] != expected {
				t.Errorf("Identity: expected [%d][%d] = %v, got %v", i, j, expected, m[i][j])
			}
		}
	}
}

func TestMat4MulOrder(t *testing.T) {
	// Scale then translate: T * S applied to (1,1,1) gives (2,2,2)+(3,0,0)
	trans := Mat4Translation(NewVec3(3, 0, 0))
	scale := Mat4Scale(NewVec3(2, 2, 2))

	p := trans.Mul(scale).MulPoint(NewVec3(1, 1, 1))
	expected := NewVec3(5, 2, 2)
	if p != expected {
		t.Errorf("Mul order: expected %v, got %v", expected, p)
	}

	// Reverse order: S * T applied to (1,1,1) gives ((1+3)*2, 2, 2)
	p = scale.Mul(trans).MulPoint(NewVec3(1, 1, 1))
	expected = NewVec3(8, 2, 2)
	if p != expected {
		t.Errorf("Mul reverse order: expected %v, got %v", expected, p)
	}
}

func TestMat4Translation(t *testing.T) {
	translation := NewVec3(1, 2, 3)
	m := Mat4Translation(translation)

	if m[3][0] != 1 || m[3][1] != 2 || m[3][2] != 3 {
		t.Errorf("Translation: expected (1,2,3), got (%v,%v,%v)", m[3][0], m[3][1], m[3][2])
	}

	result := m.MulVec(NewVec4(0, 0, 0, 1))
	if result.ToVec3() != translation {
		t.Errorf("Translation: expected %v, got %v", translation, result.ToVec3())
	}
}

func TestMat4RotationAxis(t *testing.T) {
	// 90 degrees about Y takes +X to -Z
	m := Mat4RotationAxis(Vec3Up, DegToRad(90))
	p := m.MulPoint(Vec3Right)

	if stdmath.Abs(float64(p.X)) > 1e-5 || stdmath.Abs(float64(p.Y)) > 1e-5 || stdmath.Abs(float64(p.Z+1)) > 1e-5 {
		t.Errorf("RotationAxis: expected (0,0,-1), got %v", p)
	}

	// Must agree with the fixed-axis helper
	my := Mat4RotationY(DegToRad(90))
	q := my.MulPoint(Vec3Right)
	if p.Distance(q) > 1e-5 {
		t.Errorf("RotationAxis vs RotationY: %v != %v", p, q)
	}
}

func TestMat4LookAt(t *testing.T) {
	// Camera at (0,0,5) looking at origin: the origin lands on -Z in view space
	view := Mat4LookAt(NewVec3(0, 0, 5), Vec3Zero, Vec3Up)
	p := view.MulPoint(Vec3Zero)

	if stdmath.Abs(float64(p.X)) > 1e-5 || stdmath.Abs(float64(p.Y)) > 1e-5 || stdmath.Abs(float64(p.Z+5)) > 1e-5 {
		t.Errorf("LookAt: expected (0,0,-5), got %v", p)
	}
}

func TestMat4Perspective(t *testing.T) {
	proj := Mat4Perspective(DegToRad(90), 1, 1, 100)

	// A point on the near plane maps to clip z = -1
	near := proj.MulPoint(NewVec3(0, 0, -1))
	if stdmath.Abs(float64(near.Z+1)) > 1e-4 {
		t.Errorf("Perspective near: expected z=-1, got %v", near.Z)
	}

	// A point on the far plane maps to clip z = +1
	far := proj.MulPoint(NewVec3(0, 0, -100))
	if stdmath.Abs(float64(far.Z-1)) > 1e-4 {
		t.Errorf("Perspective far: expected z=1, got %v", far.Z)
	}
}

func TestMat4Transpose(t *testing.T) {
	m := Mat4Translation(NewVec3(1, 2, 3))
	tt := m.Transpose().Transpose()
	if tt != m {
		t.Errorf("Transpose: double transpose differs from original")
	}
}
