// Package cubesim implements the rotation engine for an interactive 3D
// Rubik's Cube simulator.
//
// The cube is modeled as 26 cubies occupying the lattice {-1,0,1}^3 minus
// the origin. Each cubie carries its current grid cell and a unit-quaternion
// orientation accumulated since the solved state. A face is identified by
// the axis and sign of its outward normal, and a quarter turn rotates the
// face's 9 cubies by +/-90 degrees about that normal using the right-hand
// rule. The convention is fixed and camera-independent: rotation semantics
// never depend on how the cube is being viewed.
//
// # Quick Start
//
// Apply moves instantly to a lattice:
//
//	lat := cubesim.NewLattice()
//	lat.Apply(cubesim.R, cubesim.U, cubesim.RPrime, cubesim.UPrime)
//	fmt.Println("Solved:", lat.IsSolved())
//
// Or from notation:
//
//	lat.ApplyNotation("F B2 L' D")
//
// # Animated Moves
//
// The Engine serializes moves through a small state machine
// (Requested -> Validated -> Mutating -> Settling -> Complete) and spreads
// each move's visual effect over a fixed duration. The surrounding
// application drives it with a per-frame tick:
//
//	eng := cubesim.NewEngine(cubesim.WithTurnDuration(250 * time.Millisecond))
//	eng.Request(cubesim.Move{Face: cubesim.FaceRight, Dir: cubesim.Backward})
//
//	// each frame:
//	eng.Tick(dt)
//	for _, pose := range eng.Poses() {
//	    render(pose)
//	}
//
// Authoritative cube state is committed atomically before the animation
// starts; the interpolated poses are presentation only. A request that
// arrives while a move is in flight is dropped (or queued, with
// WithQueuePolicy(QueueMoves)).
//
// # Direction Convention
//
// Direction is the right-hand-rule sign about the face's outward normal:
// Forward (+1) is +90 degrees, which appears counter-clockwise looking at
// the face from outside. Standard notation's clockwise turns (R, U, F, ...)
// are therefore Backward turns about their face normals. The predefined
// move variables encode this so callers using notation never need to think
// about it.
package cubesim
