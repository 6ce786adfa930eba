package cubesim

import (
	"math/rand"
	"time"
)

// DefaultTurnDuration is how long a move's visual settle takes unless
// overridden with WithTurnDuration.
const DefaultTurnDuration = 250 * time.Millisecond

// Option configures Engine behavior.
type Option func(*config)

type config struct {
	turnDuration float64 // seconds
	movePause    float64 // seconds between queued moves
	queuePolicy  QueuePolicy
	moveHistory  bool
	rand         *rand.Rand
}

func defaultConfig() *config {
	return &config{
		turnDuration: DefaultTurnDuration.Seconds(),
		movePause:    0,
		queuePolicy:  DropWhileBusy,
		moveHistory:  true,
		rand:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithTurnDuration sets the length of a move's visual interpolation
// window. Zero or negative settles a move on the first tick after it
// starts.
func WithTurnDuration(d time.Duration) Option {
	return func(c *config) {
		c.turnDuration = d.Seconds()
	}
}

// WithMovePause sets a delay between one queued move completing and the
// next starting, so queued sequences do not blur together. Default is no
// pause.
func WithMovePause(d time.Duration) Option {
	return func(c *config) {
		c.movePause = d.Seconds()
	}
}

// WithQueuePolicy sets what happens to requests made during an active
// move: DropWhileBusy (default) discards them, QueueMoves replays them in
// order afterwards.
func WithQueuePolicy(p QueuePolicy) Option {
	return func(c *config) {
		c.queuePolicy = p
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), completed moves are accessible via History and
// reversible via Undo. Disable for long sessions to reduce memory usage.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithRand sets the random source used by Scramble. Seed it for
// reproducible scrambles.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rand = r
		}
	}
}
