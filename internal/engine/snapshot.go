package engine

import "github.com/vovakirdan/gridsnake/internal/grid"

// Status is the engine's two-state lifecycle.
type Status string

const (
	StatusRunning Status = "running"
	StatusOver    Status = "over"
)

// Snapshot is a read-only copy of the game state for rendering.
// Snake is owned by the snapshot; nothing the engine does later changes it.
type Snapshot struct {
	Tick      uint64
	GridSize  int
	Snake     grid.Snake // Head at index 0
	Food      grid.Cell
	Direction grid.Direction
	Over      bool
}

// Status returns StatusOver once the game has ended.
func (s Snapshot) Status() Status {
	if s.Over {
		return StatusOver
	}
	return StatusRunning
}

// Head returns the head cell, or (-1,-1) for an empty snapshot.
func (s Snapshot) Head() grid.Cell {
	if len(s.Snake) == 0 {
		return grid.Cell{X: -1, Y: -1}
	}
	return s.Snake.Head()
}

// Len returns the snake length.
func (s Snapshot) Len() int {
	return len(s.Snake)
}

// snapshotLocked copies the current state. Caller holds e.mu.
func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Tick:      e.tick,
		GridSize:  e.board.Size,
		Snake:     e.snake.Clone(),
		Food:      e.food,
		Direction: e.direction,
		Over:      e.over,
	}
}

// publishLocked replaces any unread snapshot on the updates channel.
// Caller holds e.mu, so this is the only sender and the second send
// always finds room.
func (e *Engine) publishLocked() {
	snap := e.snapshotLocked()
	select {
	case <-e.updates:
	default:
	}
	select {
	case e.updates <- snap:
	default:
	}
}
