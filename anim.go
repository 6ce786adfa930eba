package cubesim

// CubiePose is the presentation pose of one cubie for a single tick.
// Home identifies the cubie; Pos and Orient are continuous values that
// coincide with the authoritative lattice state whenever no move is
// settling.
type CubiePose struct {
	Home   GridVec
	Pos    Vec3
	Orient Quat
}

// animator drives the visual interpolation of one move. It never touches
// the lattice: the end pose is already committed before the animator
// starts, and the animator only replays the turn gradually from the cached
// start poses. Each tick performs a bounded amount of work and returns.
type animator struct {
	turn     Turn
	duration float64 // seconds; <= 0 settles on the first tick
	elapsed  float64
	starts   map[int]Cubie // pre-move poses of the turning cubies, by slot
}

// start caches the pre-move poses of the selected cubies and begins the
// interpolation window.
func (a *animator) start(t Turn, lattice *Lattice, sel []int, duration float64) {
	a.turn = t
	a.duration = duration
	a.elapsed = 0
	a.starts = make(map[int]Cubie, len(sel))
	for _, i := range sel {
		a.starts[i] = lattice.Cubie(i)
	}
}

// advance moves the interpolation forward by dt seconds and reports
// whether the window has closed.
func (a *animator) advance(dt float64) bool {
	a.elapsed += dt
	return a.elapsed >= a.duration
}

// progress returns the interpolation fraction in [0, 1].
func (a *animator) progress() float64 {
	if a.duration <= 0 {
		return 1
	}
	p := a.elapsed / a.duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// pose returns the interpolated pose for a turning cubie, or false if the
// slot is not part of the current move.
func (a *animator) pose(slot int) (CubiePose, bool) {
	start, ok := a.starts[slot]
	if !ok {
		return CubiePose{}, false
	}

	partial := QuatFromAxisAngle(a.turn.Face().Normal(), a.turn.Angle()*a.progress())
	return CubiePose{
		Home:   start.Home,
		Pos:    partial.Rotate(start.Pos.Vec3()),
		Orient: partial.Mul(start.Orient).Normalize(),
	}, true
}
