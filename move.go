package cubesim

import "strings"

// Direction is the sign of a quarter turn about a face's outward normal,
// following the right-hand rule. Forward (+1) is +90 degrees and appears
// counter-clockwise looking at the face from outside; Backward (-1) is the
// standard-notation clockwise turn.
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// Signum returns the direction as a float factor for angle math.
func (d Direction) Signum() float64 {
	return float64(d)
}

// Valid reports whether d is one of the two quarter-turn directions.
func (d Direction) Valid() bool {
	return d == Forward || d == Backward
}

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "?"
	}
}

// Move is a transient command: rotate the given face's 9 cubies by a
// quarter turn in the given direction. Moves are created from input,
// validated against the engine's in-flight move, applied, and discarded.
type Move struct {
	Face Face
	Dir  Direction
}

// Notation returns the standard cube notation string for the move.
// Clockwise turns are bare letters, counter-clockwise carry a prime:
// R, R', U, U'.
func (m Move) Notation() string {
	if m.Dir == Forward {
		return m.Face.Letter() + "'"
	}
	return m.Face.Letter()
}

// Inverse returns the move that undoes this one.
func (m Move) Inverse() Move {
	return Move{Face: m.Face, Dir: -m.Dir}
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a single notation token into a Move.
// Examples: R, R', U, u'. Half turns ("R2") span two quarter turns and are
// only accepted by ParseMoves.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	face, ok := faceFromLetter(s[0])
	if !ok {
		return Move{}, ErrInvalidNotation
	}

	dir := Backward // Bare letter is clockwise
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			dir = Forward
		default:
			return Move{}, ErrInvalidNotation
		}
	}

	return Move{Face: face, Dir: dir}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'". Half-turn tokens ("R2", "R2'") expand to two
// quarter turns. Returns an error for the first invalid token.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		if move, err := ParseMove(part); err == nil {
			moves = append(moves, move)
			continue
		}

		// Half turn: both directions reach the same state, expand in
		// notation's clockwise sense.
		if len(part) >= 2 && (part[1:] == "2" || part[1:] == "2'" || part[1:] == "2`") {
			if face, ok := faceFromLetter(part[0]); ok {
				half := Move{Face: face, Dir: Backward}
				moves = append(moves, half, half)
				continue
			}
		}

		return nil, ErrInvalidNotation
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
