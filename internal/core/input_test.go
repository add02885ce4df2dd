package core

import (
	"testing"

	"github.com/vovakirdan/gridsnake/internal/grid"
)

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action   Action
		dir      grid.Direction
		steering bool
	}{
		{ActionUp, grid.DirUp, true},
		{ActionDown, grid.DirDown, true},
		{ActionLeft, grid.DirLeft, true},
		{ActionRight, grid.DirRight, true},
		{ActionRestart, 0, false},
		{ActionQuit, 0, false},
		{ActionNone, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			dir, ok := tc.action.Direction()
			if ok != tc.steering {
				t.Fatalf("Direction() ok = %v, expected %v", ok, tc.steering)
			}
			if ok && dir != tc.dir {
				t.Errorf("Direction() = %v, expected %v", dir, tc.dir)
			}
		})
	}
}

func TestSwipe(t *testing.T) {
	tests := []struct {
		name     string
		dx, dy   int
		expected Action
	}{
		{"none", 0, 0, ActionNone},
		{"right", 10, 2, ActionRight},
		{"left", -10, 3, ActionLeft},
		{"down", 1, 8, ActionDown},
		{"up", -2, -8, ActionUp},
		{"tie goes vertical", 5, -5, ActionUp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Swipe(tc.dx, tc.dy); got != tc.expected {
				t.Errorf("Swipe(%d, %d) = %v, expected %v", tc.dx, tc.dy, got, tc.expected)
			}
		})
	}
}
