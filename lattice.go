package cubesim

// NumCubies is the number of visible sub-cubes: the 3x3x3 lattice minus
// the hidden center.
const NumCubies = 26

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// SolvedColor returns the color a face shows in the solved state:
// white on top, green in front.
func (f Face) SolvedColor() Color {
	switch f {
	case FaceUp:
		return White
	case FaceDown:
		return Yellow
	case FaceFront:
		return Green
	case FaceBack:
		return Blue
	case FaceRight:
		return Red
	case FaceLeft:
		return Orange
	default:
		return White
	}
}

// Kind classifies a cubie by how many stickers it shows.
type Kind int

const (
	KindCenter Kind = iota // one sticker, never leaves its face
	KindEdge               // two stickers
	KindCorner             // three stickers
)

func (k Kind) String() string {
	switch k {
	case KindCenter:
		return "center"
	case KindEdge:
		return "edge"
	case KindCorner:
		return "corner"
	default:
		return "?"
	}
}

// KindOf returns the kind of the cubie that lives at the given lattice
// cell. The origin is not a cubie; KindOf reports false for it.
func KindOf(cell GridVec) (Kind, bool) {
	abs := func(n int) int {
		if n < 0 {
			return -n
		}
		return n
	}
	switch abs(cell.X) + abs(cell.Y) + abs(cell.Z) {
	case 0:
		return 0, false
	case 1:
		return KindCenter, true
	case 2:
		return KindEdge, true
	default:
		return KindCorner, true
	}
}

// Cubie is one of the 26 visible sub-cubes. Cubies are persistent,
// distinguishable entities: a move relocates and reorients them, it never
// creates or destroys them. Home is the solved-state cell and doubles as
// the cubie's identity; Pos is the current cell; Orient is the cumulative
// world-frame rotation since the solved state.
type Cubie struct {
	Home   GridVec
	Pos    GridVec
	Orient Quat
}

// Kind returns the cubie's classification (center, edge, or corner).
func (c Cubie) Kind() Kind {
	k, _ := KindOf(c.Home)
	return k
}

// Sticker returns the color of the cubie's sticker currently facing the
// given direction, or false if no sticker faces that way.
func (c Cubie) Sticker(outward Face) (Color, bool) {
	// Undo the cubie's rotation to find which home direction now faces
	// outward.
	home, exact := roundGrid(c.Orient.Conjugate().Rotate(outward.Normal()))
	if !exact {
		return 0, false
	}

	var homeFace Face
	switch {
	case home.X != 0:
		homeFace = Face{Axis: AxisX, Sign: home.X}
	case home.Y != 0:
		homeFace = Face{Axis: AxisY, Sign: home.Y}
	default:
		homeFace = Face{Axis: AxisZ, Sign: home.Z}
	}

	// A sticker exists only where the home cell touches that face.
	if c.Home.Component(homeFace.Axis) != homeFace.Sign {
		return 0, false
	}
	return homeFace.SolvedColor(), true
}

// Lattice is the single authoritative owner of all cubie state. All other
// components read it or request mutations through it; none hold independent
// copies. It maintains the bijection between the 26 cubies and the 26
// lattice cells at all times.
type Lattice struct {
	cubies [NumCubies]Cubie
}

// NewLattice creates a solved cube: every cubie in its home cell with
// identity orientation.
func NewLattice() *Lattice {
	l := &Lattice{}
	i := 0
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				cell := GridVec{x, y, z}
				if cell.IsOrigin() {
					continue
				}
				l.cubies[i] = Cubie{Home: cell, Pos: cell, Orient: QuatIdentity}
				i++
			}
		}
	}
	return l
}

// Clone creates a deep copy of the lattice.
func (l *Lattice) Clone() *Lattice {
	clone := &Lattice{}
	clone.cubies = l.cubies
	return clone
}

// Cubies returns a snapshot of all 26 cubies in a fixed order.
func (l *Lattice) Cubies() []Cubie {
	out := make([]Cubie, NumCubies)
	copy(out, l.cubies[:])
	return out
}

// Cubie returns the cubie at the given slot index.
func (l *Lattice) Cubie(i int) Cubie {
	return l.cubies[i]
}

// CubiesAt returns the slot indices of the 9 cubies whose position along
// the given axis equals sign: the face layer, including the edge and corner
// cubies sharing that coordinate. Order follows slot order, so the same
// cube state always yields the same selection.
func (l *Lattice) CubiesAt(axis Axis, sign int) []int {
	sel := make([]int, 0, 9)
	for i := range l.cubies {
		if l.cubies[i].Pos.Component(axis) == sign {
			sel = append(sel, i)
		}
	}
	return sel
}

// ApplyTurn rotates the cubies at the given slot indices by the turn,
// updating positions and orientations together. The mutation is atomic:
// the new positions are staged and validated against the lattice invariants
// first, and on any violation the lattice is left untouched and an
// *InvariantError is returned. A violation can only come from a defective
// transform, never from well-formed input.
func (l *Lattice) ApplyTurn(sel []int, t Turn) error {
	staged := l.cubies

	for _, i := range sel {
		cell, exact := t.Cell(staged[i].Pos)
		if !exact {
			return &InvariantError{Cubie: i, Cell: cell, Reason: "rotated position off lattice"}
		}
		staged[i].Pos = cell
		staged[i].Orient = t.Orient(staged[i].Orient)
	}

	if err := validate(&staged); err != nil {
		return err
	}

	l.cubies = staged
	return nil
}

// validate checks the lattice invariants: every position in {-1,0,1}^3,
// none at the origin, no two cubies sharing a cell.
func validate(cubies *[NumCubies]Cubie) error {
	var seen [3][3][3]bool
	for i := range cubies {
		pos := cubies[i].Pos
		if !pos.InLattice() {
			return &InvariantError{Cubie: i, Cell: pos, Reason: "position outside lattice"}
		}
		if pos.IsOrigin() {
			return &InvariantError{Cubie: i, Cell: pos, Reason: "position at hidden center"}
		}
		if seen[pos.X+1][pos.Y+1][pos.Z+1] {
			return &InvariantError{Cubie: i, Cell: pos, Reason: "two cubies in one cell"}
		}
		seen[pos.X+1][pos.Y+1][pos.Z+1] = true
	}
	return nil
}

// Validate checks the lattice invariants and returns an *InvariantError
// describing the first violation, or nil.
func (l *Lattice) Validate() error {
	return validate(&l.cubies)
}

// ApplyMove applies a single move instantly: select the face layer, build
// the quarter-turn transform, and mutate.
func (l *Lattice) ApplyMove(m Move) error {
	sel := l.CubiesAt(m.Face.Axis, m.Face.Sign)
	return l.ApplyTurn(sel, NewTurn(m.Face, m.Dir))
}

// Apply applies a sequence of moves instantly.
func (l *Lattice) Apply(moves ...Move) error {
	for _, m := range moves {
		if err := l.ApplyMove(m); err != nil {
			return err
		}
	}
	return nil
}

// ApplyNotation parses a notation string and applies it.
// Example: "R U R' U'".
func (l *Lattice) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	return l.Apply(moves...)
}

// at returns the cubie currently occupying the given cell.
func (l *Lattice) at(cell GridVec) *Cubie {
	for i := range l.cubies {
		if l.cubies[i].Pos == cell {
			return &l.cubies[i]
		}
	}
	return nil
}

// FaceColors returns the 9 sticker colors of a face, indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// rows top to bottom and columns left to right as seen from outside the
// face, with the cube in its home orientation.
func (l *Lattice) FaceColors(f Face) [9]Color {
	var out [9]Color
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			cubie := l.at(faceCell(f, row, col))
			if cubie == nil {
				continue // unreachable on a valid lattice
			}
			if color, ok := cubie.Sticker(f); ok {
				out[row*3+col] = color
			}
		}
	}
	return out
}

// faceCell maps a face's (row, col) facelet to the lattice cell beneath it.
// Each face is viewed from outside: up and down with the front edge at the
// bottom and top respectively, the side faces upright.
func faceCell(f Face, row, col int) GridVec {
	u, v := col-1, row-1
	switch f {
	case FaceUp:
		return GridVec{u, 1, v}
	case FaceDown:
		return GridVec{u, -1, -v}
	case FaceFront:
		return GridVec{u, -v, 1}
	case FaceBack:
		return GridVec{-u, -v, -1}
	case FaceRight:
		return GridVec{1, -v, -u}
	default: // FaceLeft
		return GridVec{-1, -v, u}
	}
}

// IsSolved reports whether every face shows a single color. This is the
// visual definition of solved, so center-cubie spin does not count against
// it.
func (l *Lattice) IsSolved() bool {
	for _, f := range Faces() {
		colors := l.FaceColors(f)
		for _, c := range colors[1:] {
			if c != colors[0] {
				return false
			}
		}
	}
	return true
}

// String returns a text net of the cube: up on top, then the
// left-front-right-back band, then down.
func (l *Lattice) String() string {
	result := ""

	up := l.FaceColors(FaceUp)
	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += up[row*3+col].String() + " "
		}
		result += "\n"
	}

	band := [4][9]Color{
		l.FaceColors(FaceLeft),
		l.FaceColors(FaceFront),
		l.FaceColors(FaceRight),
		l.FaceColors(FaceBack),
	}
	for row := 0; row < 3; row++ {
		for _, face := range band {
			for col := 0; col < 3; col++ {
				result += face[row*3+col].String() + " "
			}
		}
		result += "\n"
	}

	down := l.FaceColors(FaceDown)
	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += down[row*3+col].String() + " "
		}
		result += "\n"
	}

	return result
}
