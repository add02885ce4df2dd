package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/engine"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a local game",
	Long: `Start a game of snake in this terminal.

Controls:
  Arrows/WASD/HJKL  - Steer
  Mouse click       - Steer toward the clicked cell
  R                 - Restart
  ?                 - Toggle help
  Ctrl+S            - Save a text screenshot to ~/.snake/screenshots
  Q/Ctrl+C          - Quit

The game runs in the alternate screen, so logs go to --log-file
when given and are discarded otherwise.

Examples:
  snake play
  snake play --grid 12 --interval 100ms
  snake play --seed 42 --log-level debug --log-file snake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger, err := newLogger(out, "snake")
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	layout := tui.Layout(width, height-1, cfg.Board.Size)
	if !layout.Fits {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, a %d-cell board needs about %dx%d\n",
			width, height, cfg.Board.Size, layout.Frame.W, layout.Frame.H+3)
	}

	eng, err := engine.New(cfg.Engine(), engine.WithLogger(logger))
	if err != nil {
		return err
	}

	logger.Info("starting game", "grid", cfg.Board.Size, "interval", cfg.Timing.TickInterval)
	if err := tui.Run(eng, width, height); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
