// Package grid holds the board geometry and snake body model.
// Everything here is pure data plus queries; the simulation lives in engine.
package grid

import (
	"errors"
	"fmt"
	"math/rand"
)

// Invariant violations reported by Board.Validate.
var (
	ErrEmptySnake  = errors.New("grid: snake is empty")
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
	ErrOverlap     = errors.New("grid: snake overlaps itself")
	ErrDetached    = errors.New("grid: snake segments not adjacent")
)

// Cell is a board coordinate. X is the column, Y the row, both 0-indexed.
type Cell struct {
	X, Y int
}

// Step returns the neighboring cell one move away in dir.
func (c Cell) Step(dir Direction) Cell {
	switch dir {
	case DirUp:
		return Cell{X: c.X, Y: c.Y - 1}
	case DirDown:
		return Cell{X: c.X, Y: c.Y + 1}
	case DirLeft:
		return Cell{X: c.X - 1, Y: c.Y}
	case DirRight:
		return Cell{X: c.X + 1, Y: c.Y}
	}
	return c
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// adjacent reports whether two cells share an edge.
func adjacent(a, b Cell) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx+dy*dy == 1
}

// Snake is the snake body, head at index 0.
type Snake []Cell

// Head returns the first segment. The snake must not be empty.
func (s Snake) Head() Cell {
	return s[0]
}

// Contains reports whether any segment occupies c.
func (s Snake) Contains(c Cell) bool {
	for _, seg := range s {
		if seg == c {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the body.
func (s Snake) Clone() Snake {
	if s == nil {
		return nil
	}
	out := make(Snake, len(s))
	copy(out, s)
	return out
}

// OccupiedBySnake reports whether cell equals any element of snake.
func OccupiedBySnake(snake Snake, cell Cell) bool {
	return snake.Contains(cell)
}

// Board is a square grid of Size x Size cells.
type Board struct {
	Size int
}

// InBounds reports whether both coordinates lie in [0, Size).
func (b Board) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < b.Size && c.Y >= 0 && c.Y < b.Size
}

// RandomCell returns a uniformly random cell on the board.
// It does not look at the snake, so food placed this way can land on the
// body; callers wanting a free cell use RandomFreeCell.
func (b Board) RandomCell(rng *rand.Rand) Cell {
	return Cell{X: rng.Intn(b.Size), Y: rng.Intn(b.Size)}
}

// RandomFreeCell picks uniformly among cells not occupied by snake.
// Returns false when the snake fills the board.
func (b Board) RandomFreeCell(rng *rand.Rand, snake Snake) (Cell, bool) {
	occupied := make(map[Cell]bool, len(snake))
	for _, seg := range snake {
		occupied[seg] = true
	}

	var free []Cell
	for y := range b.Size {
		for x := range b.Size {
			c := Cell{X: x, Y: y}
			if !occupied[c] {
				free = append(free, c)
			}
		}
	}

	if len(free) == 0 {
		return Cell{X: -1, Y: -1}, false
	}
	return free[rng.Intn(len(free))], true
}

// Validate checks the snake body invariants against this board.
func (b Board) Validate(snake Snake) error {
	if len(snake) == 0 {
		return ErrEmptySnake
	}

	seen := make(map[Cell]bool, len(snake))
	for i, seg := range snake {
		if !b.InBounds(seg) {
			return fmt.Errorf("%w: segment %d at %s", ErrOutOfBounds, i, seg)
		}
		if seen[seg] {
			return fmt.Errorf("%w: segment %d at %s", ErrOverlap, i, seg)
		}
		seen[seg] = true
		if i > 0 && !adjacent(snake[i-1], seg) {
			return fmt.Errorf("%w: segments %d and %d", ErrDetached, i-1, i)
		}
	}
	return nil
}
