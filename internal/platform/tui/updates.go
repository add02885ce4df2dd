// Package tui provides the Bubble Tea front end for the snake engine.
// It maps input to engine calls and draws published snapshots.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/engine"
)

// SnapshotMsg carries a state published by the engine after a tick or restart.
type SnapshotMsg engine.Snapshot

// waitForSnapshot returns a command that blocks until the engine publishes
// the next snapshot. It returns nil once ctx is done.
func waitForSnapshot(ctx context.Context, updates <-chan engine.Snapshot) tea.Cmd {
	return func() tea.Msg {
		select {
		case snap := <-updates:
			return SnapshotMsg(snap)
		case <-ctx.Done():
			return nil
		}
	}
}
