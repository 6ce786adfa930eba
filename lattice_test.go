package cubesim

import "testing"

func TestNewLatticeIsSolved(t *testing.T) {
	l := NewLattice()
	if !l.IsSolved() {
		t.Error("New lattice should be solved")
	}
}

func TestNewLatticeCoversGrid(t *testing.T) {
	l := NewLattice()
	if err := l.Validate(); err != nil {
		t.Errorf("New lattice should satisfy invariants: %v", err)
	}

	cubies := l.Cubies()
	if len(cubies) != NumCubies {
		t.Fatalf("Expected %d cubies, got %d", NumCubies, len(cubies))
	}

	seen := make(map[GridVec]bool)
	for _, c := range cubies {
		if c.Pos.IsOrigin() {
			t.Errorf("Cubie at origin: %v", c)
		}
		if !c.Pos.InLattice() {
			t.Errorf("Cubie outside lattice: %v", c)
		}
		if seen[c.Pos] {
			t.Errorf("Duplicate cell %s", c.Pos)
		}
		seen[c.Pos] = true
	}
}

func TestCubiesAtReturnsNine(t *testing.T) {
	l := NewLattice()
	for _, f := range Faces() {
		sel := l.CubiesAt(f.Axis, f.Sign)
		if len(sel) != 9 {
			t.Errorf("Face %s: expected 9 cubies, got %d", f, len(sel))
		}
		for _, i := range sel {
			if l.Cubie(i).Pos.Component(f.Axis) != f.Sign {
				t.Errorf("Face %s: cubie %d not on layer", f, i)
			}
		}
	}
}

func TestCubiesAtAfterScramble(t *testing.T) {
	// Face cardinality must hold for any reachable state.
	l := NewLattice()
	if err := l.ApplyNotation("R U F' D L2 B U'"); err != nil {
		t.Fatalf("scramble failed: %v", err)
	}
	for _, f := range Faces() {
		if got := len(l.CubiesAt(f.Axis, f.Sign)); got != 9 {
			t.Errorf("Face %s: expected 9 cubies, got %d", f, got)
		}
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	l := NewLattice()
	if err := l.ApplyMove(R); err != nil {
		t.Fatalf("R failed: %v", err)
	}
	if l.IsSolved() {
		t.Error("Lattice should not be solved after R move")
	}
}

func TestBijectionHoldsUnderMoves(t *testing.T) {
	l := NewLattice()
	if err := l.ApplyNotation("R U R' U' F B2 L' D R2 U F'"); err != nil {
		t.Fatalf("sequence failed: %v", err)
	}
	if err := l.Validate(); err != nil {
		t.Errorf("Invariants broken after move sequence: %v", err)
		t.Log(l.String())
	}
}

func TestKindOf(t *testing.T) {
	if _, ok := KindOf(GridVec{0, 0, 0}); ok {
		t.Error("Origin should not be a cubie")
	}

	cases := []struct {
		cell GridVec
		kind Kind
	}{
		{GridVec{1, 0, 0}, KindCenter},
		{GridVec{0, -1, 0}, KindCenter},
		{GridVec{1, 1, 0}, KindEdge},
		{GridVec{0, -1, 1}, KindEdge},
		{GridVec{1, 1, 1}, KindCorner},
		{GridVec{-1, 1, -1}, KindCorner},
	}
	for _, tc := range cases {
		k, ok := KindOf(tc.cell)
		if !ok || k != tc.kind {
			t.Errorf("KindOf(%s) = %v, want %v", tc.cell, k, tc.kind)
		}
	}
}

func TestKindCounts(t *testing.T) {
	l := NewLattice()
	counts := make(map[Kind]int)
	for _, c := range l.Cubies() {
		counts[c.Kind()]++
	}
	if counts[KindCenter] != 6 || counts[KindEdge] != 12 || counts[KindCorner] != 8 {
		t.Errorf("Expected 6 centers, 12 edges, 8 corners; got %v", counts)
	}
}

func TestSolvedFaceColors(t *testing.T) {
	l := NewLattice()
	for _, f := range Faces() {
		want := f.SolvedColor()
		for i, c := range l.FaceColors(f) {
			if c != want {
				t.Errorf("Face %s facelet %d: got %s, want %s", f, i, c, want)
			}
		}
	}
}

func TestRMoveFaceColors(t *testing.T) {
	// After R on a solved cube the up face's right column comes from the
	// front (green) and the front face's right column comes from the
	// bottom (yellow).
	l := NewLattice()
	if err := l.ApplyMove(R); err != nil {
		t.Fatalf("R failed: %v", err)
	}

	up := l.FaceColors(FaceUp)
	for _, i := range []int{2, 5, 8} {
		if up[i] != Green {
			t.Errorf("Up facelet %d: got %s, want G", i, up[i])
			t.Log(l.String())
		}
	}

	front := l.FaceColors(FaceFront)
	for _, i := range []int{2, 5, 8} {
		if front[i] != Yellow {
			t.Errorf("Front facelet %d: got %s, want Y", i, front[i])
			t.Log(l.String())
		}
	}
}

func TestScrambleAndReverse(t *testing.T) {
	l := NewLattice()

	scramble := []Move{R, U, RPrime, UPrime, F, D, L, L}
	if err := l.Apply(scramble...); err != nil {
		t.Fatalf("scramble failed: %v", err)
	}
	if l.IsSolved() {
		t.Error("Lattice should be scrambled after moves")
	}

	for i := len(scramble) - 1; i >= 0; i-- {
		if err := l.ApplyMove(scramble[i].Inverse()); err != nil {
			t.Fatalf("reverse failed: %v", err)
		}
	}
	if !l.IsSolved() {
		t.Error("Lattice should be solved after reversing scramble")
		t.Log(l.String())
	}
}

func TestSexyMove6TimesReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	l := NewLattice()
	for i := 0; i < 6; i++ {
		if err := l.Apply(SexyMove...); err != nil {
			t.Fatalf("sexy move failed: %v", err)
		}
	}
	if !l.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(l.String())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	l := NewLattice()
	clone := l.Clone()
	if err := clone.ApplyMove(R); err != nil {
		t.Fatalf("R failed: %v", err)
	}
	if !l.IsSolved() {
		t.Error("Mutating a clone should not touch the original")
	}
	if clone.IsSolved() {
		t.Error("Clone should have been mutated")
	}
}
