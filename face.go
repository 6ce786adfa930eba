package cubesim

// Axis identifies one of the three coordinate axes.
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Unit returns the unit vector along the axis.
func (a Axis) Unit() Vec3 {
	switch a {
	case AxisX:
		return Vec3{X: 1}
	case AxisY:
		return Vec3{Y: 1}
	default:
		return Vec3{Z: 1}
	}
}

// Face identifies one of the 6 cube faces by the axis and sign of its
// outward normal. Faces are never stored; they are derived fresh from input
// and name a layer of 9 cubies.
type Face struct {
	Axis Axis
	Sign int // +1 or -1
}

// The six faces, named by where they sit when the cube is in its home
// orientation: right +x, up +y, front +z.
var (
	FaceRight = Face{Axis: AxisX, Sign: 1}
	FaceLeft  = Face{Axis: AxisX, Sign: -1}
	FaceUp    = Face{Axis: AxisY, Sign: 1}
	FaceDown  = Face{Axis: AxisY, Sign: -1}
	FaceFront = Face{Axis: AxisZ, Sign: 1}
	FaceBack  = Face{Axis: AxisZ, Sign: -1}
)

// Faces returns all six faces in a fixed order.
func Faces() [6]Face {
	return [6]Face{FaceRight, FaceLeft, FaceUp, FaceDown, FaceFront, FaceBack}
}

// Normal returns the outward unit normal of the face.
func (f Face) Normal() Vec3 {
	return f.Axis.Unit().Scale(float64(f.Sign))
}

// Valid reports whether the face is one of the 6 well-formed identifiers.
func (f Face) Valid() bool {
	return (f.Sign == 1 || f.Sign == -1) && f.Axis >= AxisX && f.Axis <= AxisZ
}

// Letter returns the standard notation letter for the face.
func (f Face) Letter() string {
	switch f {
	case FaceRight:
		return "R"
	case FaceLeft:
		return "L"
	case FaceUp:
		return "U"
	case FaceDown:
		return "D"
	case FaceFront:
		return "F"
	case FaceBack:
		return "B"
	default:
		return "?"
	}
}

func (f Face) String() string {
	return f.Letter()
}

// faceFromLetter maps a notation letter to its face.
func faceFromLetter(c byte) (Face, bool) {
	switch c {
	case 'R', 'r':
		return FaceRight, true
	case 'L', 'l':
		return FaceLeft, true
	case 'U', 'u':
		return FaceUp, true
	case 'D', 'd':
		return FaceDown, true
	case 'F', 'f':
		return FaceFront, true
	case 'B', 'b':
		return FaceBack, true
	default:
		return Face{}, false
	}
}
