// Package config holds the settings of the chess command: the starting
// position, board display, logging and perft. Values come from defaults,
// then an optional TOML file, then command-line flags.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ColourMode selects when the board is drawn with ANSI colours.
type ColourMode int

const (
	ColourAuto   ColourMode = iota // Colour when stdout is a terminal
	ColourAlways                   // Always colour
	ColourNever                    // Plain text
)

var colourModeNames = []string{"auto", "always", "never"}

// String returns the config file spelling of the mode.
func (m ColourMode) String() string {
	if m >= 0 && int(m) < len(colourModeNames) {
		return colourModeNames[m]
	}
	return "unknown"
}

// ParseColourMode parses "auto", "always" or "never".
func ParseColourMode(s string) (ColourMode, error) {
	for i, name := range colourModeNames {
		if strings.EqualFold(s, name) {
			return ColourMode(i), nil
		}
	}
	return ColourAuto, errors.Wrapf(errors.ErrInvalidConfig, "colour mode %q", s)
}

// UnmarshalText lets the TOML decoder read a mode from its name.
func (m *ColourMode) UnmarshalText(text []byte) error {
	mode, err := ParseColourMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// MarshalText writes the mode by name.
func (m ColourMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// GameConfig describes the starting position.
type GameConfig struct {
	// Layout is a 64-square setup string, rank 8 first.
	Layout string `toml:"layout"`

	// ToMove is "white" or "black".
	ToMove string `toml:"to_move"`
}

// DisplayConfig holds settings related to drawing the board.
type DisplayConfig struct {
	Colour ColourMode `toml:"colour"`

	// Flip draws the board from Black's side.
	Flip bool `toml:"flip"`
}

// LogConfig holds the logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// PerftConfig holds the perft command settings.
type PerftConfig struct {
	Depth int `toml:"depth"`

	// Workers is the number of goroutines; 0 picks one per physical core.
	Workers int `toml:"workers"`
}

// Config holds all program configuration.
type Config struct {
	Game    GameConfig    `toml:"game"`
	Display DisplayConfig `toml:"display"`
	Log     LogConfig     `toml:"log"`
	Perft   PerftConfig   `toml:"perft"`
}

// MaxPerftDepth bounds the perft depth accepted from configuration.
const MaxPerftDepth = 10

// NewConfig creates a Config with default values: the standard starting
// position with White to move, automatic colour, info logging and a
// depth 4 perft.
func NewConfig() *Config {
	return &Config{
		Game: GameConfig{
			Layout: chess.InitialLayout,
			ToMove: "white",
		},
		Display: DisplayConfig{Colour: ColourAuto},
		Log:     LogConfig{Level: "info"},
		Perft:   PerftConfig{Depth: 4},
	}
}

// LoadFile reads a TOML file over the defaults. Keys the file sets replace
// the defaults; unknown keys are an error.
func LoadFile(path string) (*Config, error) {
	cfg := NewConfig()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// Validate checks every field and returns the first problem found.
func (c *Config) Validate() error {
	if _, err := chess.ParseLayout(c.Game.Layout); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "game.layout: %v", err)
	}
	if _, err := c.ToMoveColour(); err != nil {
		return err
	}
	if c.Display.Colour < ColourAuto || c.Display.Colour > ColourNever {
		return errors.Wrapf(errors.ErrInvalidConfig, "display.colour %d", int(c.Display.Colour))
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.Perft.Depth < 1 || c.Perft.Depth > MaxPerftDepth {
		return errors.Wrapf(errors.ErrInvalidConfig, "perft.depth %d not in 1..%d", c.Perft.Depth, MaxPerftDepth)
	}
	if c.Perft.Workers < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "perft.workers %d is negative", c.Perft.Workers)
	}
	return nil
}

// ToMoveColour converts Game.ToMove to a colour.
func (c *Config) ToMoveColour() (chess.Colour, error) {
	switch strings.ToLower(c.Game.ToMove) {
	case "white", "w":
		return chess.White, nil
	case "black", "b":
		return chess.Black, nil
	}
	return chess.White, errors.Wrapf(errors.ErrInvalidConfig, "game.to_move %q", c.Game.ToMove)
}

// SlogLevel converts Log.Level to a slog level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, errors.Wrapf(errors.ErrInvalidConfig, "log.level %q", c.Log.Level)
	}
	return level, nil
}
