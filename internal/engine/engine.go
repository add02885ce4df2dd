// Package engine runs the snake simulation: it owns the game state, advances
// it one cell per tick on a timer, and hands out snapshots for rendering.
// Input sources only call SetDirection; the engine knows nothing about keys,
// terminals or screens.
package engine

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/grid"
)

// Config controls board geometry, timing and rule strictness.
type Config struct {
	GridSize     int           // Board is GridSize x GridSize
	Origin       grid.Cell     // Starting cell of the one-segment snake
	TickInterval time.Duration // Zero disables the timer; use Tick to step
	Seed         int64         // RNG seed, 0 means time-based

	// FoodAvoidsSnake resamples food among free cells instead of anywhere.
	FoodAvoidsSnake bool
	// BlockReversal ignores a direction opposite to the current one.
	BlockReversal bool
}

// DefaultConfig returns the classic 20x20 board ticking every 200ms.
func DefaultConfig() Config {
	return Config{
		GridSize:     20,
		Origin:       grid.Cell{X: 5, Y: 5},
		TickInterval: 200 * time.Millisecond,
	}
}

// Validate checks that the config describes a playable board.
func (c Config) Validate() error {
	if c.GridSize < 1 {
		return fmt.Errorf("engine: grid size must be positive, got %d", c.GridSize)
	}
	if !(grid.Board{Size: c.GridSize}).InBounds(c.Origin) {
		return fmt.Errorf("engine: origin %s outside %dx%d board", c.Origin, c.GridSize, c.GridSize)
	}
	if c.TickInterval < 0 {
		return fmt.Errorf("engine: negative tick interval %s", c.TickInterval)
	}
	return nil
}

// Option customizes an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRand replaces the seeded RNG, mostly for tests.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// loop is one running tick goroutine.
type loop struct {
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// Engine owns the game state. All mutation goes through e.mu, so a tick
// never interleaves with SetDirection, Start or Reset.
type Engine struct {
	cfg    Config
	board  grid.Board
	rng    *rand.Rand
	logger *log.Logger

	mu        sync.Mutex
	tick      uint64
	snake     grid.Snake // Head at index 0
	food      grid.Cell
	direction grid.Direction
	nextDir   grid.Direction // Applied at the start of the next tick
	over      bool

	parent  context.Context // Context of the last Start, reused by Reset
	loop    *loop           // At most one active tick loop
	updates chan Snapshot
}

// New creates an engine with its state initialized but no timer running.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		cfg:     cfg,
		board:   grid.Board{Size: cfg.GridSize},
		rng:     rand.New(rand.NewSource(seed)),
		logger:  log.New(io.Discard),
		parent:  context.Background(),
		updates: make(chan Snapshot, 1),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.mu.Lock()
	e.resetLocked()
	e.mu.Unlock()

	return e, nil
}

// Start puts the game in its initial configuration and starts a fresh tick
// loop. Any previous loop is canceled and has exited by the time Start
// returns. The loop also stops when ctx is done.
func (e *Engine) Start(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}

	e.mu.Lock()
	old := e.stopLocked()
	e.parent = ctx
	e.resetLocked()
	e.startLoopLocked()
	e.publishLocked()
	food := e.food
	e.mu.Unlock()

	if old != nil {
		<-old.done
	}

	e.logger.Debug("game started",
		"grid", e.cfg.GridSize,
		"origin", e.cfg.Origin,
		"food", food,
		"interval", e.cfg.TickInterval,
	)
}

// Reset is Start with the context of the previous Start.
func (e *Engine) Reset() {
	e.mu.Lock()
	ctx := e.parent
	e.mu.Unlock()
	e.Start(ctx)
}

// Stop cancels the tick loop and waits for it to exit.
// State is left as is; Snapshot keeps working.
func (e *Engine) Stop() {
	e.mu.Lock()
	l := e.stopLocked()
	e.mu.Unlock()

	if l != nil {
		<-l.done
	}
}

// Running reports whether a tick loop is currently active.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loop != nil && e.loop.ctx.Err() == nil
}

// SetDirection queues d for the next tick. Later calls before that tick
// overwrite earlier ones. Unrecognized values are ignored.
func (e *Engine) SetDirection(d grid.Direction) {
	if !d.Valid() {
		e.logger.Debug("ignoring unknown direction", "dir", int(d))
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cfg.BlockReversal && len(e.snake) > 1 && d == e.direction.Opposite() {
		return
	}
	e.nextDir = d
}

// Tick advances the game by one step. It returns false when nothing
// changed because the game is already over or the step ended it.
func (e *Engine) Tick() bool {
	return e.advance(nil)
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Updates delivers the latest snapshot after every start, reset and tick.
// Unread snapshots are replaced, so a slow reader only sees the newest one.
func (e *Engine) Updates() <-chan Snapshot {
	return e.updates
}

// resetLocked builds the initial state. Caller holds e.mu.
func (e *Engine) resetLocked() {
	e.tick = 0
	e.snake = grid.Snake{e.cfg.Origin}
	e.direction = grid.DirRight
	e.nextDir = grid.DirRight
	e.over = false
	e.food = e.spawnFoodLocked(e.snake)
}

// spawnFoodLocked picks the next food cell. Caller holds e.mu.
func (e *Engine) spawnFoodLocked(snake grid.Snake) grid.Cell {
	if !e.cfg.FoodAvoidsSnake {
		return e.board.RandomCell(e.rng)
	}
	c, ok := e.board.RandomFreeCell(e.rng, snake)
	if !ok {
		// Board is full; the next move is a guaranteed collision
		return grid.Cell{X: -1, Y: -1}
	}
	return c
}

// startLoopLocked launches the tick goroutine. Caller holds e.mu.
func (e *Engine) startLoopLocked() {
	if e.cfg.TickInterval <= 0 {
		return
	}
	ctx, cancel := context.WithCancel(e.parent)
	l := &loop{ctx: ctx, cancel: cancel, done: make(chan struct{})}
	e.loop = l
	go e.run(l, e.cfg.TickInterval)
}

// stopLocked cancels the active loop and returns it so the caller can wait
// for it outside the lock. Caller holds e.mu.
func (e *Engine) stopLocked() *loop {
	l := e.loop
	if l == nil {
		return nil
	}
	l.cancel()
	e.loop = nil
	return l
}

func (e *Engine) run(l *loop, interval time.Duration) {
	defer close(l.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.ctx.Done():
			return
		case <-ticker.C:
			e.advance(l)
		}
	}
}

// stepResult describes what one step did, for logging outside the lock.
type stepResult struct {
	advanced bool
	ended    bool
	ate      bool
	reason   string
	tick     uint64
	head     grid.Cell
	length   int
}

// advance runs one step. A non-nil l is the loop asking for the step;
// a loop that has been canceled must not touch the state, which is what
// keeps a stale goroutine from ticking a freshly reset game.
func (e *Engine) advance(l *loop) bool {
	e.mu.Lock()
	if l != nil && l.ctx.Err() != nil {
		e.mu.Unlock()
		return false
	}
	res := e.stepLocked()
	e.mu.Unlock()

	switch {
	case res.ended:
		e.logger.Debug("game over",
			"tick", res.tick,
			"head", res.head,
			"reason", res.reason,
			"len", res.length,
		)
	case res.ate:
		e.logger.Debug("food eaten", "tick", res.tick, "len", res.length)
	}
	return res.advanced
}

// stepLocked moves the snake one cell. Caller holds e.mu.
func (e *Engine) stepLocked() stepResult {
	if e.over {
		return stepResult{}
	}

	// Apply buffered direction
	e.direction = e.nextDir
	e.tick++

	newHead := e.snake.Head().Step(e.direction)

	reason := ""
	switch {
	case !e.board.InBounds(newHead):
		reason = "wall"
	case e.snake.Contains(newHead):
		reason = "self"
	}
	if reason != "" {
		e.over = true
		e.stopLocked()
		e.publishLocked()
		return stepResult{
			ended:  true,
			reason: reason,
			tick:   e.tick,
			head:   newHead,
			length: len(e.snake),
		}
	}

	// Fresh slice every tick so earlier snapshots never alias the body
	moved := make(grid.Snake, 0, len(e.snake)+1)
	moved = append(moved, newHead)
	moved = append(moved, e.snake...)

	ate := newHead == e.food
	if ate {
		e.food = e.spawnFoodLocked(moved)
	} else {
		moved = moved[:len(moved)-1]
	}
	e.snake = moved

	e.publishLocked()
	return stepResult{
		advanced: true,
		ate:      ate,
		tick:     e.tick,
		head:     newHead,
		length:   len(e.snake),
	}
}
