package cubesim

import "math"

// Quat is a unit quaternion representing a rotation. The zero value is not
// a valid rotation; use QuatIdentity or one of the constructors.
type Quat struct {
	W, X, Y, Z float64
}

// QuatIdentity is the identity rotation.
var QuatIdentity = Quat{W: 1}

// QuatFromAxisAngle builds the rotation by angle radians about axis,
// following the right-hand rule. The axis does not need to be normalized.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	length := axis.Length()
	if length == 0 {
		return QuatIdentity
	}

	half := angle / 2
	s := math.Sin(half) / length
	return Quat{
		W: math.Cos(half),
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
	}
}

// Mul returns the Hamilton product q * r: the rotation r followed by q.
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
	}
}

// Conjugate returns the inverse rotation (for a unit quaternion the
// conjugate and the inverse coincide).
func (q Quat) Conjugate() Quat {
	return Quat{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Normalize rescales q to unit length. Composing many rotations drifts the
// norm away from 1; renormalizing after each composition keeps the
// orientation a valid rotation.
func (q Quat) Normalize() Quat {
	n := math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	if n == 0 {
		return QuatIdentity
	}
	return Quat{W: q.W / n, X: q.X / n, Y: q.Y / n, Z: q.Z / n}
}

// Rotate applies the rotation to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	// q * (0,v) * q'  expanded via the cross-product form.
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// Slerp spherically interpolates from q to r by t in [0, 1].
func (q Quat) Slerp(r Quat, t float64) Quat {
	dot := q.W*r.W + q.X*r.X + q.Y*r.Y + q.Z*r.Z

	// Take the shorter arc.
	if dot < 0 {
		r = Quat{W: -r.W, X: -r.X, Y: -r.Y, Z: -r.Z}
		dot = -dot
	}

	// Nearly parallel: fall back to lerp to avoid dividing by sin(0).
	if dot > 0.9995 {
		return Quat{
			W: q.W + t*(r.W-q.W),
			X: q.X + t*(r.X-q.X),
			Y: q.Y + t*(r.Y-q.Y),
			Z: q.Z + t*(r.Z-q.Z),
		}.Normalize()
	}

	theta := math.Acos(dot)
	sin := math.Sin(theta)
	a := math.Sin((1-t)*theta) / sin
	b := math.Sin(t*theta) / sin
	return Quat{
		W: a*q.W + b*r.W,
		X: a*q.X + b*r.X,
		Y: a*q.Y + b*r.Y,
		Z: a*q.Z + b*r.Z,
	}
}

// ApproxEqual reports whether q and r represent the same rotation within
// tolerance. q and -q are the same rotation, so both signs are checked.
func (q Quat) ApproxEqual(r Quat, tolerance float64) bool {
	same := math.Abs(q.W-r.W) < tolerance &&
		math.Abs(q.X-r.X) < tolerance &&
		math.Abs(q.Y-r.Y) < tolerance &&
		math.Abs(q.Z-r.Z) < tolerance
	if same {
		return true
	}
	return math.Abs(q.W+r.W) < tolerance &&
		math.Abs(q.X+r.X) < tolerance &&
		math.Abs(q.Y+r.Y) < tolerance &&
		math.Abs(q.Z+r.Z) < tolerance
}
