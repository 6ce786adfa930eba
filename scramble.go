package cubesim

import "math/rand"

// RandomMove returns a uniformly random quarter turn: one of the 6 faces
// in one of the 2 directions.
func RandomMove(r *rand.Rand) Move {
	faces := Faces()
	m := Move{Face: faces[r.Intn(len(faces))], Dir: Forward}
	if r.Intn(2) == 0 {
		m.Dir = Backward
	}
	return m
}

// ScrambleMoves generates n random moves, skipping a move that would turn
// the same face as its predecessor (two consecutive turns of one face
// either cancel or collapse into a half turn, wasting scramble length).
func ScrambleMoves(r *rand.Rand, n int) []Move {
	moves := make([]Move, 0, n)
	for len(moves) < n {
		m := RandomMove(r)
		if len(moves) > 0 && m.Face == moves[len(moves)-1].Face {
			continue
		}
		moves = append(moves, m)
	}
	return moves
}
