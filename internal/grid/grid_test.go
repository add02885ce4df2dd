package grid

import (
	"errors"
	"math/rand"
	"testing"
)

func TestInBounds(t *testing.T) {
	b := Board{Size: 20}

	tests := []struct {
		name     string
		cell     Cell
		expected bool
	}{
		{"origin", Cell{0, 0}, true},
		{"far corner", Cell{19, 19}, true},
		{"middle", Cell{5, 5}, true},
		{"right edge", Cell{20, 5}, false},
		{"bottom edge", Cell{5, 20}, false},
		{"negative x", Cell{-1, 0}, false},
		{"negative y", Cell{0, -1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.InBounds(tc.cell); got != tc.expected {
				t.Errorf("InBounds(%v) = %v, expected %v", tc.cell, got, tc.expected)
			}
		})
	}
}

func TestStep(t *testing.T) {
	start := Cell{5, 5}

	tests := []struct {
		dir      Direction
		expected Cell
	}{
		{DirUp, Cell{5, 4}},
		{DirDown, Cell{5, 6}},
		{DirLeft, Cell{4, 5}},
		{DirRight, Cell{6, 5}},
		{Direction(42), Cell{5, 5}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := start.Step(tc.dir); got != tc.expected {
				t.Errorf("Step(%v) = %v, expected %v", tc.dir, got, tc.expected)
			}
		})
	}
}

func TestOccupiedBySnake(t *testing.T) {
	snake := Snake{{5, 5}, {5, 6}, {5, 7}}

	if !OccupiedBySnake(snake, Cell{5, 6}) {
		t.Error("Expected (5,6) to be occupied")
	}
	if OccupiedBySnake(snake, Cell{6, 6}) {
		t.Error("Expected (6,6) to be free")
	}
	if OccupiedBySnake(nil, Cell{0, 0}) {
		t.Error("Empty snake should occupy nothing")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	snake := Snake{{1, 1}, {1, 2}}
	clone := snake.Clone()
	clone[0] = Cell{9, 9}

	if snake[0] != (Cell{1, 1}) {
		t.Errorf("Mutating clone changed original: %v", snake)
	}
}

func TestRandomCellInBounds(t *testing.T) {
	b := Board{Size: 20}
	rng := rand.New(rand.NewSource(7))

	for range 1000 {
		c := b.RandomCell(rng)
		if !b.InBounds(c) {
			t.Fatalf("RandomCell returned out-of-bounds cell %v", c)
		}
	}
}

func TestRandomFreeCellAvoidsSnake(t *testing.T) {
	b := Board{Size: 4}
	rng := rand.New(rand.NewSource(99))

	// Everything but (3,3) is occupied
	var snake Snake
	for y := range 4 {
		for x := range 4 {
			if x == 3 && y == 3 {
				continue
			}
			snake = append(snake, Cell{x, y})
		}
	}

	for range 50 {
		c, ok := b.RandomFreeCell(rng, snake)
		if !ok {
			t.Fatal("Expected a free cell")
		}
		if c != (Cell{3, 3}) {
			t.Fatalf("Expected (3,3), got %v", c)
		}
	}

	full := append(snake.Clone(), Cell{3, 3})
	if _, ok := b.RandomFreeCell(rng, full); ok {
		t.Error("Full board should report no free cell")
	}
}

func TestValidate(t *testing.T) {
	b := Board{Size: 10}

	tests := []struct {
		name     string
		snake    Snake
		expected error
	}{
		{"single segment", Snake{{5, 5}}, nil},
		{"straight body", Snake{{5, 5}, {4, 5}, {3, 5}}, nil},
		{"bent body", Snake{{5, 5}, {5, 6}, {6, 6}}, nil},
		{"empty", Snake{}, ErrEmptySnake},
		{"out of bounds", Snake{{10, 5}}, ErrOutOfBounds},
		{"overlap", Snake{{5, 5}, {5, 6}, {5, 5}}, ErrOverlap},
		{"gap", Snake{{5, 5}, {7, 5}}, ErrDetached},
		{"diagonal", Snake{{5, 5}, {6, 6}}, ErrDetached},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := b.Validate(tc.snake)
			if tc.expected == nil {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, tc.expected) {
				t.Errorf("Validate() = %v, expected %v", err, tc.expected)
			}
		})
	}
}

func TestDirectionValidAndOpposite(t *testing.T) {
	if Direction(-1).Valid() || Direction(4).Valid() {
		t.Error("Out-of-range directions should be invalid")
	}

	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, opp := range pairs {
		if !d.Valid() {
			t.Errorf("%v should be valid", d)
		}
		if d.Opposite() != opp {
			t.Errorf("%v.Opposite() = %v, expected %v", d, d.Opposite(), opp)
		}
	}
}
