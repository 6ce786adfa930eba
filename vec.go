package cubesim

import (
	"fmt"
	"math"
)

// Vec3 is a 3-component float64 vector.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of v and w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// GridVec is a lattice cell: an integer 3-vector with each component
// in {-1, 0, 1}.
type GridVec struct {
	X, Y, Z int
}

// Vec3 converts the lattice cell to a float vector.
func (g GridVec) Vec3() Vec3 {
	return Vec3{float64(g.X), float64(g.Y), float64(g.Z)}
}

// Component returns the coordinate along the given axis.
func (g GridVec) Component(a Axis) int {
	switch a {
	case AxisX:
		return g.X
	case AxisY:
		return g.Y
	default:
		return g.Z
	}
}

// InLattice reports whether every component is in {-1, 0, 1}.
func (g GridVec) InLattice() bool {
	abs := func(n int) int {
		if n < 0 {
			return -n
		}
		return n
	}
	return abs(g.X) <= 1 && abs(g.Y) <= 1 && abs(g.Z) <= 1
}

// IsOrigin reports whether g is (0,0,0), the invisible center cell.
func (g GridVec) IsOrigin() bool {
	return g.X == 0 && g.Y == 0 && g.Z == 0
}

func (g GridVec) String() string {
	return fmt.Sprintf("(%d,%d,%d)", g.X, g.Y, g.Z)
}

// roundGrid snaps a float vector to the nearest lattice cell. Rotating a
// lattice vector by a multiple of 90 degrees about a coordinate axis always
// lands on another lattice point exactly, so rounding only absorbs
// floating-point error. The second return is false when any component is
// further than gridTolerance from an integer, which signals a defective
// rotation rather than expected drift.
func roundGrid(v Vec3) (GridVec, bool) {
	const gridTolerance = 1e-6

	rx, ry, rz := math.Round(v.X), math.Round(v.Y), math.Round(v.Z)
	exact := math.Abs(v.X-rx) < gridTolerance &&
		math.Abs(v.Y-ry) < gridTolerance &&
		math.Abs(v.Z-rz) < gridTolerance

	return GridVec{int(rx), int(ry), int(rz)}, exact
}
