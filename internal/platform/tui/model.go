package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/engine"
)

// Model is the Bubble Tea model for one game of snake.
// The engine ticks on its own; the model only forwards input and draws
// whatever the engine publishes.
type Model struct {
	ctx      context.Context
	engine   *engine.Engine
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	snap     engine.Snapshot
	height   int
	quitting bool
}

// NewModel creates a model driving eng on a w x h terminal.
// The engine's tick loop is bound to ctx.
func NewModel(ctx context.Context, eng *engine.Engine, w, h int) Model {
	m := Model{
		ctx:    ctx,
		engine: eng,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		snap:   eng.Snapshot(),
		height: h,
	}
	m.help.Width = w
	m.screen = core.NewScreen(w, m.boardHeight(h))
	return m
}

// Init starts the engine and subscribes to its snapshots.
func (m Model) Init() tea.Cmd {
	m.engine.Start(m.ctx)
	return waitForSnapshot(m.ctx, m.engine.Updates())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, m.boardHeight(msg.Height))
		return m, nil

	case SnapshotMsg:
		m.snap = engine.Snapshot(msg)
		return m, waitForSnapshot(m.ctx, m.engine.Updates())
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	return m.apply(m.keys.MapKey(msg))
}

// handleMouse steers toward a clicked board cell.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	layout := Layout(m.screen.Width(), m.screen.Height(), m.snap.GridSize)
	if !layout.Fits {
		return m, nil
	}
	target, ok := layout.CellAt(msg.X, msg.Y)
	if !ok || m.snap.Len() == 0 {
		return m, nil
	}
	return m.apply(steerToward(m.snap.Head(), target))
}

// apply performs a semantic action.
func (m Model) apply(a core.Action) (tea.Model, tea.Cmd) {
	if dir, ok := a.Direction(); ok {
		m.engine.SetDirection(dir)
		return m, nil
	}

	switch a {
	case core.ActionRestart:
		m.engine.Reset()
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.screen.Width(), m.boardHeight(m.height))
	case core.ActionQuit:
		m.quitting = true
		m.engine.Stop()
		return m, tea.Quit
	}
	return m, nil
}

// boardHeight is the screen height left after the help footer.
func (m Model) boardHeight(h int) int {
	footer := 1
	if m.help.ShowAll {
		footer = len(m.keys.FullHelp()[0])
	}
	return core.Max(0, h-footer)
}

// saveScreenshot writes the current board as plain text under ~/.snake.
func (m *Model) saveScreenshot() {
	DrawBoard(m.screen, m.snap)

	dir := filepath.Join(os.Getenv("HOME"), ".snake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	DrawBoard(m.screen, m.snap)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run plays a single local game until the user quits.
func Run(eng *engine.Engine, w, h int) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := tea.NewProgram(
		NewModel(ctx, eng, w, h),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	eng.Stop()
	return err
}
