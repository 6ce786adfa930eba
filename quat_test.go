package cubesim

import (
	"math"
	"testing"
)

func vecApproxEqual(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol && math.Abs(a.Z-b.Z) < tol
}

func TestQuatIdentityRotation(t *testing.T) {
	v := Vec3{1, -2, 3}
	if got := QuatIdentity.Rotate(v); !vecApproxEqual(got, v, 1e-12) {
		t.Errorf("Identity rotation moved %v to %v", v, got)
	}
}

func TestQuatAxisAngle(t *testing.T) {
	// +90 about z maps x to y (right-hand rule).
	q := QuatFromAxisAngle(Vec3{Z: 1}, math.Pi/2)
	got := q.Rotate(Vec3{X: 1})
	if !vecApproxEqual(got, Vec3{Y: 1}, 1e-9) {
		t.Errorf("+90 about z: got %v, want (0,1,0)", got)
	}

	// -90 about z maps x to -y.
	q = QuatFromAxisAngle(Vec3{Z: 1}, -math.Pi/2)
	got = q.Rotate(Vec3{X: 1})
	if !vecApproxEqual(got, Vec3{Y: -1}, 1e-9) {
		t.Errorf("-90 about z: got %v, want (0,-1,0)", got)
	}
}

func TestQuatUnnormalizedAxis(t *testing.T) {
	// Axis length must not change the rotation.
	a := QuatFromAxisAngle(Vec3{Y: 1}, math.Pi/2)
	b := QuatFromAxisAngle(Vec3{Y: 5}, math.Pi/2)
	if !a.ApproxEqual(b, 1e-12) {
		t.Errorf("Axis scaling changed the rotation: %v vs %v", a, b)
	}
}

func TestQuatMulComposes(t *testing.T) {
	// 90 about z then 90 about z = 180 about z.
	q := QuatFromAxisAngle(Vec3{Z: 1}, math.Pi/2)
	composed := q.Mul(q)
	want := QuatFromAxisAngle(Vec3{Z: 1}, math.Pi)
	if !composed.ApproxEqual(want, 1e-9) {
		t.Errorf("Composition: got %v, want %v", composed, want)
	}
}

func TestQuatConjugateInverts(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{1, 1, 0}, 0.7)
	v := Vec3{0.3, -1, 2}
	back := q.Conjugate().Rotate(q.Rotate(v))
	if !vecApproxEqual(back, v, 1e-9) {
		t.Errorf("Conjugate did not undo rotation: got %v, want %v", back, v)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{W: 2, X: 0, Y: 0, Z: 0}.Normalize()
	if !q.ApproxEqual(QuatIdentity, 1e-12) {
		t.Errorf("Normalize: got %v, want identity", q)
	}
}

func TestQuatSlerpEndpoints(t *testing.T) {
	a := QuatIdentity
	b := QuatFromAxisAngle(Vec3{X: 1}, math.Pi/2)

	if got := a.Slerp(b, 0); !got.ApproxEqual(a, 1e-9) {
		t.Errorf("Slerp(0): got %v, want %v", got, a)
	}
	if got := a.Slerp(b, 1); !got.ApproxEqual(b, 1e-9) {
		t.Errorf("Slerp(1): got %v, want %v", got, b)
	}

	// Midpoint of identity -> 90 is 45.
	mid := a.Slerp(b, 0.5)
	want := QuatFromAxisAngle(Vec3{X: 1}, math.Pi/4)
	if !mid.ApproxEqual(want, 1e-9) {
		t.Errorf("Slerp(0.5): got %v, want %v", mid, want)
	}
}

func TestQuatApproxEqualHandlesSign(t *testing.T) {
	// q and -q are the same rotation.
	q := QuatFromAxisAngle(Vec3{Y: 1}, 1.2)
	neg := Quat{W: -q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
	if !q.ApproxEqual(neg, 1e-12) {
		t.Error("q and -q should compare equal as rotations")
	}
}

func TestRoundGrid(t *testing.T) {
	g, exact := roundGrid(Vec3{0.9999999, -1.0000001, 0})
	if !exact || g != (GridVec{1, -1, 0}) {
		t.Errorf("roundGrid near-lattice: got %v exact=%v", g, exact)
	}

	_, exact = roundGrid(Vec3{0.5, 0, 0})
	if exact {
		t.Error("roundGrid should flag a half-cell value as inexact")
	}
}
