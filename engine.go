package cubesim

// MoveState tracks a move through the engine's state machine. A move walks
// Requested -> Validated -> Mutating -> Settling -> Complete; the engine is
// Idle between moves. Requested through Mutating happen synchronously
// inside Request, so Settling and Idle are the states observable across
// ticks.
type MoveState int

const (
	StateIdle MoveState = iota
	StateRequested
	StateValidated
	StateMutating
	StateSettling
	StateComplete
)

func (s MoveState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRequested:
		return "requested"
	case StateValidated:
		return "validated"
	case StateMutating:
		return "mutating"
	case StateSettling:
		return "settling"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// QueuePolicy decides what happens to a move request that arrives while
// another move is in flight.
type QueuePolicy int

const (
	// DropWhileBusy silently discards requests made during an active move.
	DropWhileBusy QueuePolicy = iota
	// QueueMoves holds requests and runs them in order after the active
	// move completes.
	QueueMoves
)

// Engine is the move applicator: it owns the authoritative lattice, gates
// moves so only one is ever in flight, mutates the lattice atomically, and
// hands the committed move to the animator for visual settling.
//
// The engine is single-threaded and cooperative: the surrounding
// application drives it by calling Tick once per frame. Nothing blocks; an
// implementation running the engine from multiple goroutines must add its
// own mutual exclusion.
type Engine struct {
	lattice *Lattice
	anim    animator
	cfg     *config

	state   MoveState
	current Move
	queue   []Move
	pause   float64 // seconds until the next queued move may start
	fatal   error

	history []Move
	// set when the in-flight move is an undo, so it is not re-recorded
	undoing bool

	onMove        func(Move)
	onSolved      func()
	onStateChange func(MoveState)
}

// NewEngine creates an engine over a solved cube.
func NewEngine(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Engine{
		lattice: NewLattice(),
		cfg:     cfg,
		state:   StateIdle,
	}
}

// Lattice returns the authoritative lattice for inspection. Callers must
// not mutate it while the engine is in use; all mutation goes through
// Request.
func (e *Engine) Lattice() *Lattice {
	return e.lattice
}

// State returns the engine's current move state.
func (e *Engine) State() MoveState {
	return e.state
}

// Busy reports whether a move is currently in flight. While busy, new
// requests are dropped or queued depending on the queue policy; they are
// never interleaved with the active move.
func (e *Engine) Busy() bool {
	return e.state == StateSettling
}

// Err returns the fatal error, if the engine has detected lattice
// corruption. A non-nil value means a programming defect in the rotation
// math; the engine refuses further moves.
func (e *Engine) Err() error {
	return e.fatal
}

// OnMove sets a callback fired when a move completes (reaches Complete).
func (e *Engine) OnMove(cb func(Move)) {
	e.onMove = cb
}

// OnSolved sets a callback fired when a completed move leaves the cube
// solved.
func (e *Engine) OnSolved(cb func()) {
	e.onSolved = cb
}

// OnStateChange sets a callback fired on every state transition.
func (e *Engine) OnStateChange(cb func(MoveState)) {
	e.onStateChange = cb
}

// History returns the completed and in-flight moves since the last reset,
// oldest first. Empty when move history is disabled.
func (e *Engine) History() []Move {
	out := make([]Move, len(e.history))
	copy(out, e.history)
	return out
}

// Request asks the engine to perform a move. It reports whether the move
// was accepted: started immediately, or queued under QueueMoves. A request
// arriving while another move is in flight is dropped under DropWhileBusy,
// leaving all state untouched.
func (e *Engine) Request(m Move) bool {
	if e.fatal != nil {
		return false
	}
	if !m.Face.Valid() || !m.Dir.Valid() {
		return false
	}

	if e.cfg.queuePolicy == QueueMoves {
		// The inter-move pause only spaces out the queue; with nothing
		// queued and nothing in flight a request starts immediately.
		if e.Busy() || e.pause > 0 || len(e.queue) > 0 {
			e.queue = append(e.queue, m)
			return true
		}
	} else if e.Busy() {
		return false
	}

	e.start(m, false)
	return e.fatal == nil
}

// Undo requests the inverse of the most recent recorded move. On
// completion the undone move is removed from the history instead of the
// inverse being appended. Reports whether an undo was started or queued.
func (e *Engine) Undo() bool {
	if e.fatal != nil || len(e.history) == 0 {
		return false
	}
	if e.Busy() {
		return false
	}
	if e.cfg.queuePolicy == QueueMoves && (e.pause > 0 || len(e.queue) > 0) {
		return false
	}

	e.start(e.history[len(e.history)-1].Inverse(), true)
	return e.fatal == nil
}

// start runs a move through Requested, Validated, and Mutating, then hands
// it to the animator for Settling. The lattice write is atomic: on an
// invariant violation nothing is mutated, the error is recorded as fatal,
// and the engine stops accepting moves.
func (e *Engine) start(m Move, undo bool) {
	e.setState(StateRequested)
	e.setState(StateValidated)

	sel := e.lattice.CubiesAt(m.Face.Axis, m.Face.Sign)
	turn := NewTurn(m.Face, m.Dir)

	// Cache pre-move poses before the write; the animator interpolates
	// from these to the committed state.
	e.anim.start(turn, e.lattice, sel, e.cfg.turnDuration)

	e.setState(StateMutating)
	if err := e.lattice.ApplyTurn(sel, turn); err != nil {
		e.fatal = err
		e.setState(StateIdle)
		return
	}

	e.current = m
	e.undoing = undo
	if e.cfg.moveHistory && !undo {
		e.history = append(e.history, m)
	}

	e.setState(StateSettling)
}

// Tick advances the engine by dt seconds. During Settling it progresses
// the animation; at the end of the window the move reaches Complete, the
// callbacks fire, and the engine returns to Idle (starting the next queued
// move once the inter-move pause has elapsed).
func (e *Engine) Tick(dt float64) {
	if e.fatal != nil {
		return
	}

	switch e.state {
	case StateSettling:
		if !e.anim.advance(dt) {
			return
		}
		e.setState(StateComplete)
		e.finishCurrent()
		e.setState(StateIdle)
		e.pause = e.cfg.movePause

	case StateIdle:
		if e.pause > 0 {
			e.pause -= dt
			if e.pause > 0 {
				return
			}
			e.pause = 0
		}
		if len(e.queue) == 0 {
			return
		}
		next := e.queue[0]
		e.queue = e.queue[1:]
		e.start(next, false)
	}
}

// finishCurrent fires completion callbacks and settles history bookkeeping
// for the move that just completed.
func (e *Engine) finishCurrent() {
	if e.undoing && len(e.history) > 0 {
		e.history = e.history[:len(e.history)-1]
	}
	e.undoing = false

	if e.onMove != nil {
		e.onMove(e.current)
	}
	if e.onSolved != nil && e.lattice.IsSolved() {
		e.onSolved()
	}
}

// Poses returns the presentation pose of every cubie for the current tick:
// interpolated for the cubies of a settling move, authoritative for the
// rest. Order matches Lattice.Cubies.
func (e *Engine) Poses() []CubiePose {
	poses := make([]CubiePose, NumCubies)
	for i := 0; i < NumCubies; i++ {
		if e.state == StateSettling {
			if pose, ok := e.anim.pose(i); ok {
				poses[i] = pose
				continue
			}
		}
		c := e.lattice.Cubie(i)
		poses[i] = CubiePose{Home: c.Home, Pos: c.Pos.Vec3(), Orient: c.Orient}
	}
	return poses
}

// Pending returns the number of queued moves waiting to start.
func (e *Engine) Pending() int {
	return len(e.queue)
}

// Reset returns the engine to a solved cube, clearing the queue, history,
// and any in-flight animation. Not permitted mid-move: an in-flight move
// always settles to completion first.
func (e *Engine) Reset() bool {
	if e.Busy() {
		return false
	}
	e.lattice = NewLattice()
	e.queue = nil
	e.history = nil
	e.pause = 0
	e.fatal = nil
	e.setState(StateIdle)
	return true
}

// Scramble applies n random moves instantly (no animation), clears the
// history, and returns the sequence. Returns ErrMoveInFlight while a move
// is settling.
func (e *Engine) Scramble(n int) ([]Move, error) {
	if e.fatal != nil {
		return nil, e.fatal
	}
	if e.Busy() {
		return nil, ErrMoveInFlight
	}

	moves := ScrambleMoves(e.cfg.rand, n)
	if err := e.lattice.Apply(moves...); err != nil {
		e.fatal = err
		return nil, err
	}
	e.history = nil
	return moves, nil
}

func (e *Engine) setState(s MoveState) {
	e.state = s
	if e.onStateChange != nil {
		e.onStateChange(s)
	}
}
