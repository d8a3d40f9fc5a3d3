// Package config centralizes all tunable game parameters.
package config

import (
	"errors"
	"time"

	env "github.com/tomz197/snake/internal/config"
)

// Cell size in board units. Movement step and collision radius both equal it.
const CellSize = 30

// Board dimensions in board units.
const (
	BoardWidth  = 800
	BoardHeight = 600
)

// Food spawn range, inclusive.
const (
	FoodMinX = 30
	FoodMaxX = 730
	FoodMinY = 50
	FoodMaxY = 550
)

// Snake
const (
	InitialLength = 2
	MinLength     = 2
	StartX        = CellSize
	StartY        = CellSize
)

// SelfCollisionFrom is the first body index checked against the head.
// The neck (indices 1 and 2) is exempt, so reversing onto it is not fatal.
const SelfCollisionFrom = 3

// Timing
const (
	DefaultTickDelay = 200 * time.Millisecond // Gameplay speed
	DefaultMaxFPS    = 120                    // Frame cap, independent of gameplay speed
)

// Settings holds the runtime-tunable subset of the game parameters.
type Settings struct {
	TickDelay     time.Duration // Delay between session ticks
	MaxFPS        int           // Frame cap for input polling and rendering
	InitialLength int           // Body length of a fresh session
	Seed          uint64        // RNG seed for food placement; 0 picks one from the clock
}

// Default returns the stock settings.
func Default() Settings {
	return Settings{
		TickDelay:     DefaultTickDelay,
		MaxFPS:        DefaultMaxFPS,
		InitialLength: InitialLength,
	}
}

// FrameTime returns the minimum duration of one frame.
func (s Settings) FrameTime() time.Duration {
	if s.MaxFPS <= 0 {
		return time.Second / DefaultMaxFPS
	}
	return time.Second / time.Duration(s.MaxFPS)
}

// Normalize replaces out-of-range values with defaults.
func (s Settings) Normalize() Settings {
	if s.TickDelay <= 0 {
		s.TickDelay = DefaultTickDelay
	}
	if s.MaxFPS <= 0 {
		s.MaxFPS = DefaultMaxFPS
	}
	if s.InitialLength < MinLength {
		s.InitialLength = MinLength
	}
	return s
}

// FromEnv reads settings from SNAKE_* environment variables.
// Malformed values keep their defaults; the joined parse errors are returned
// alongside the usable settings.
func FromEnv() (Settings, error) {
	s := Default()
	var errs []error

	tick, err := env.GetDuration("SNAKE_TICK_DELAY", s.TickDelay)
	errs = append(errs, err)
	fps, err := env.GetInt("SNAKE_MAX_FPS", s.MaxFPS)
	errs = append(errs, err)
	length, err := env.GetInt("SNAKE_INITIAL_LENGTH", s.InitialLength)
	errs = append(errs, err)
	seed, err := env.GetInt("SNAKE_SEED", 0)
	errs = append(errs, err)

	s.TickDelay = tick
	s.MaxFPS = fps
	s.InitialLength = length
	if seed > 0 {
		s.Seed = uint64(seed)
	}
	return s.Normalize(), errors.Join(errs...)
}
