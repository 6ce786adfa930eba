package cubesim

import "testing"

const orientTolerance = 1e-9

// TestFrontForwardCycle pins the right-hand-rule convention: a +90 degree
// turn about +z maps (1,0,1) -> (0,1,1) -> (-1,0,1) -> (0,-1,1) -> (1,0,1),
// and cubies off the front layer do not move.
func TestFrontForwardCycle(t *testing.T) {
	l := NewLattice()
	before := l.Cubies()

	move := Move{Face: FaceFront, Dir: Forward}
	if err := l.ApplyMove(move); err != nil {
		t.Fatalf("move failed: %v", err)
	}

	cycle := map[GridVec]GridVec{
		{1, 0, 1}:  {0, 1, 1},
		{0, 1, 1}:  {-1, 0, 1},
		{-1, 0, 1}: {0, -1, 1},
		{0, -1, 1}: {1, 0, 1},
	}

	turnQuat := NewTurn(FaceFront, Forward).Quat()
	for i, b := range before {
		after := l.Cubie(i)
		if b.Pos.Z != 1 {
			if after.Pos != b.Pos {
				t.Errorf("Cubie %s off the layer moved to %s", b.Pos, after.Pos)
			}
			if !after.Orient.ApproxEqual(b.Orient, orientTolerance) {
				t.Errorf("Cubie %s off the layer was reoriented", b.Pos)
			}
			continue
		}

		if want, ok := cycle[b.Pos]; ok && after.Pos != want {
			t.Errorf("Cubie %s: got %s, want %s", b.Pos, after.Pos, want)
		}
		// Every layer cubie gets the same world-frame rotation.
		want := turnQuat.Mul(b.Orient).Normalize()
		if !after.Orient.ApproxEqual(want, orientTolerance) {
			t.Errorf("Cubie %s: orientation not left-composed with turn", b.Pos)
		}
	}
}

func TestFourTurnIdentity(t *testing.T) {
	for _, f := range Faces() {
		for _, dir := range []Direction{Forward, Backward} {
			l := NewLattice()
			before := l.Cubies()

			m := Move{Face: f, Dir: dir}
			for i := 0; i < 4; i++ {
				if err := l.ApplyMove(m); err != nil {
					t.Fatalf("%s x 4 failed: %v", m, err)
				}
			}

			for i, b := range before {
				after := l.Cubie(i)
				if after.Pos != b.Pos {
					t.Errorf("%s x 4: cubie %s ended at %s", m, b.Pos, after.Pos)
				}
				if !after.Orient.ApproxEqual(b.Orient, orientTolerance) {
					t.Errorf("%s x 4: cubie %s orientation not restored", m, b.Pos)
				}
			}
		}
	}
}

func TestInverseProperty(t *testing.T) {
	for _, f := range Faces() {
		for _, dir := range []Direction{Forward, Backward} {
			l := NewLattice()
			// Start from a non-trivial state so the property is not
			// trivially satisfied by symmetry.
			if err := l.ApplyNotation("R U F'"); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			before := l.Cubies()

			m := Move{Face: f, Dir: dir}
			if err := l.Apply(m, m.Inverse()); err != nil {
				t.Fatalf("%s %s failed: %v", m, m.Inverse(), err)
			}

			for i, b := range before {
				after := l.Cubie(i)
				if after.Pos != b.Pos {
					t.Errorf("%s then inverse: cubie moved %s -> %s", m, b.Pos, after.Pos)
				}
				if !after.Orient.ApproxEqual(b.Orient, orientTolerance) {
					t.Errorf("%s then inverse: cubie %s orientation changed", m, b.Pos)
				}
			}
		}
	}
}

func TestTurnCellStaysOnLattice(t *testing.T) {
	for _, f := range Faces() {
		for _, dir := range []Direction{Forward, Backward} {
			turn := NewTurn(f, dir)
			for x := -1; x <= 1; x++ {
				for y := -1; y <= 1; y++ {
					for z := -1; z <= 1; z++ {
						cell, exact := turn.Cell(GridVec{x, y, z})
						if !exact {
							t.Errorf("Turn %s %s: cell (%d,%d,%d) rotated off lattice", f, dir, x, y, z)
						}
						if !cell.InLattice() {
							t.Errorf("Turn %s %s: result %s outside lattice", f, dir, cell)
						}
					}
				}
			}
		}
	}
}

func TestTurnAngleSign(t *testing.T) {
	if a := NewTurn(FaceUp, Forward).Angle(); a != QuarterTurn {
		t.Errorf("Forward angle = %v, want %v", a, QuarterTurn)
	}
	if a := NewTurn(FaceUp, Backward).Angle(); a != -QuarterTurn {
		t.Errorf("Backward angle = %v, want %v", a, -QuarterTurn)
	}
}

func TestDeterministicReplay(t *testing.T) {
	// Replaying the same sequence against fresh solved states yields
	// identical results.
	sequence := "R U2 F' D L B2 R' U F D'"

	a := NewLattice()
	b := NewLattice()
	if err := a.ApplyNotation(sequence); err != nil {
		t.Fatalf("replay a failed: %v", err)
	}
	if err := b.ApplyNotation(sequence); err != nil {
		t.Fatalf("replay b failed: %v", err)
	}

	for i := 0; i < NumCubies; i++ {
		ca, cb := a.Cubie(i), b.Cubie(i)
		if ca.Pos != cb.Pos {
			t.Errorf("Cubie %d: positions differ: %s vs %s", i, ca.Pos, cb.Pos)
		}
		if ca.Orient != cb.Orient {
			t.Errorf("Cubie %d: orientations differ", i)
		}
	}
}
