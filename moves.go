package cubesim

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	lat.Apply(cubesim.R, cubesim.U, cubesim.RPrime, cubesim.UPrime)
//
// Bare names are standard-notation clockwise turns (Backward about the
// outward normal); Prime names are counter-clockwise (Forward).
var (
	// Right face moves
	R      = Move{Face: FaceRight, Dir: Backward} // Right clockwise
	RPrime = Move{Face: FaceRight, Dir: Forward}  // Right counter-clockwise

	// Left face moves
	L      = Move{Face: FaceLeft, Dir: Backward} // Left clockwise
	LPrime = Move{Face: FaceLeft, Dir: Forward}  // Left counter-clockwise

	// Up face moves
	U      = Move{Face: FaceUp, Dir: Backward} // Up clockwise
	UPrime = Move{Face: FaceUp, Dir: Forward}  // Up counter-clockwise

	// Down face moves
	D      = Move{Face: FaceDown, Dir: Backward} // Down clockwise
	DPrime = Move{Face: FaceDown, Dir: Forward}  // Down counter-clockwise

	// Front face moves
	F      = Move{Face: FaceFront, Dir: Backward} // Front clockwise
	FPrime = Move{Face: FaceFront, Dir: Forward}  // Front counter-clockwise

	// Back face moves
	B      = Move{Face: FaceBack, Dir: Backward} // Back clockwise
	BPrime = Move{Face: FaceBack, Dir: Forward}  // Back counter-clockwise
)

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []Move{R, U, RPrime, UPrime}

// Inverse sexy move: U R U' R'
var InverseSexyMove = []Move{U, R, UPrime, RPrime}
