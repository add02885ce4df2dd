// snake plays the classic snake game in the terminal.
//
// Usage:
//
//	snake play      - Play a local game
//	snake serve     - Start SSH server for remote play
//	snake config    - Print the effective configuration
//
// Global flags:
//
//	--config <path>       - Path to a config YAML
//	--grid <n>            - Board size in cells
//	--interval <duration> - Time between moves (e.g. 150ms)
//	--seed <value>        - RNG seed for reproducible food placement
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagGrid     int
	flagInterval time.Duration
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake moves one cell per tick on a square board. Eat food to grow,
avoid the walls and your own tail.

Available commands:
  play     - Play a local game
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Configuration is read from --config, ~/.snake/config.yaml or
./configs/snake.yaml, then overridden by SNAKE_GRID_SIZE,
SNAKE_TICK_INTERVAL and SNAKE_SEED (a .env file is honored) and
finally by command-line flags.

Examples:
  snake play
  snake play --grid 30 --interval 120ms
  snake serve --ssh :2222
  snake config --defaults`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagGrid, "grid", 0, "Board size in cells (overrides config)")
	rootCmd.PersistentFlags().DurationVar(&flagInterval, "interval", 0, "Tick interval, e.g. 200ms (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (config.SnakeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("grid") {
		cfg.Board.Size = flagGrid
	}
	if flags.Changed("interval") {
		cfg.Timing.TickInterval = flagInterval
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}

	return cfg, cfg.Validate()
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	}), nil
}
