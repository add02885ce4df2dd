// Package config provides YAML-based configuration loading for the snake
// game, with embedded defaults and environment overrides.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/gridsnake/internal/engine"
	"github.com/vovakirdan/gridsnake/internal/grid"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Rules  RulesConfig  `yaml:"rules"`
	Seed   int64        `yaml:"seed"` // 0 = time-based
}

// BoardConfig defines board geometry.
type BoardConfig struct {
	Size   int        `yaml:"size"`
	Origin CellConfig `yaml:"origin"`
}

// CellConfig is a board coordinate in YAML form.
type CellConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// TimingConfig defines the tick loop period.
type TimingConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
}

// RulesConfig toggles stricter variants of the default rules.
type RulesConfig struct {
	FoodAvoidsSnake bool `yaml:"food_avoids_snake"`
	BlockReversal   bool `yaml:"block_reversal"`
}

// Engine converts the file form into an engine configuration.
func (c SnakeConfig) Engine() engine.Config {
	return engine.Config{
		GridSize:        c.Board.Size,
		Origin:          grid.Cell{X: c.Board.Origin.X, Y: c.Board.Origin.Y},
		TickInterval:    c.Timing.TickInterval,
		Seed:            c.Seed,
		FoodAvoidsSnake: c.Rules.FoodAvoidsSnake,
		BlockReversal:   c.Rules.BlockReversal,
	}
}

// Validate checks the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	if err := c.Engine().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	// Front ends never call Tick, so a zero interval would freeze the game
	if c.Timing.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval must be positive, got %s", ErrInvalidConfig, c.Timing.TickInterval)
	}
	return nil
}
