package cubesim

import "math"

// QuarterTurn is the angle of a single face turn in radians.
const QuarterTurn = math.Pi / 2

// Turn is the rigid transform of one quarter turn: a rotation by
// dir * 90 degrees about the face's outward normal, right-hand rule.
// The same world-frame rotation is applied to every cubie in the face
// regardless of the cubie's own prior orientation. Turn is a pure value;
// it holds no shared state and cannot fail.
type Turn struct {
	face Face
	dir  Direction
	quat Quat
}

// NewTurn builds the quarter-turn transform for a face and direction.
func NewTurn(face Face, dir Direction) Turn {
	return Turn{
		face: face,
		dir:  dir,
		quat: QuatFromAxisAngle(face.Normal(), dir.Signum()*QuarterTurn),
	}
}

// Face returns the face being turned.
func (t Turn) Face() Face { return t.face }

// Dir returns the turn direction.
func (t Turn) Dir() Direction { return t.dir }

// Quat returns the rotation as a quaternion.
func (t Turn) Quat() Quat { return t.quat }

// Angle returns the signed rotation angle in radians.
func (t Turn) Angle() float64 { return t.dir.Signum() * QuarterTurn }

// Cell rotates a lattice cell and snaps it back onto the grid. A quarter
// turn about a coordinate axis maps lattice points to lattice points, so
// the snap only absorbs floating-point error; exact is false when the
// result is not within tolerance of a lattice point, which can only mean
// the transform itself is defective.
func (t Turn) Cell(g GridVec) (cell GridVec, exact bool) {
	return roundGrid(t.quat.Rotate(g.Vec3()))
}

// Orient composes the turn with a cubie's orientation in the cube's fixed
// world frame and renormalizes to keep drift out of repeated compositions.
func (t Turn) Orient(q Quat) Quat {
	return t.quat.Mul(q).Normalize()
}
