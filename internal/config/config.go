// Package config holds the runtime configuration for the fidget loop.
package config

import (
	"errors"
	"fmt"
	"time"
)

// PressMode selects when the key press is emitted during a cycle.
type PressMode string

const (
	// PressPerMove emits a key press after every completed move.
	PressPerMove PressMode = "move"

	// PressPerCycle emits a single key press after all moves in a cycle.
	PressPerCycle PressMode = "cycle"
)

// Config is the resolved, immutable configuration the engine runs with.
type Config struct {
	// Interval is the base spacing between cycles, before jitter.
	Interval time.Duration `mapstructure:"-"`

	// Jitter is the fraction (0-1) the interval is randomized by.
	Jitter float64 `mapstructure:"jitter"`

	// MinMoves and MaxMoves bound the number of pointer moves per cycle.
	MinMoves int `mapstructure:"min-moves"`
	MaxMoves int `mapstructure:"max-moves"`

	// MoveDelay is the pause between moves within a cycle.
	MoveDelay time.Duration `mapstructure:"move-delay"`

	// PressMode decides whether the key press follows every move or the
	// whole sequence.
	PressMode PressMode `mapstructure:"press-mode"`

	// Key is the key identifier handed to the injection layer.
	Key string `mapstructure:"key"`

	// MoveDurationMin and MoveDurationMax bound how long a single move
	// animates. The sampled duration is uniform in [min, max).
	MoveDurationMin time.Duration `mapstructure:"move-duration-min"`
	MoveDurationMax time.Duration `mapstructure:"move-duration-max"`

	// Margin is the pixel border kept clear of every screen edge.
	Margin int `mapstructure:"margin"`

	// DryRun logs intended actions without touching mouse or keyboard.
	DryRun bool `mapstructure:"dry-run"`

	// OnlyWhenIdle skips moves while the user is actively using the
	// machine; IdleThreshold is how long the system must be idle before
	// simulation resumes.
	OnlyWhenIdle  bool          `mapstructure:"only-when-idle"`
	IdleThreshold time.Duration `mapstructure:"idle-threshold"`

	LogLevel string `mapstructure:"log-level"`
	LogFile  string `mapstructure:"log-file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Interval:        3 * time.Minute,
		Jitter:          0.15,
		MinMoves:        1,
		MaxMoves:        2,
		MoveDelay:       time.Second,
		PressMode:       PressPerCycle,
		Key:             "shift",
		MoveDurationMin: 80 * time.Millisecond,
		MoveDurationMax: 500 * time.Millisecond,
		Margin:          5,
		IdleThreshold:   30 * time.Second,
		LogLevel:        "info",
	}
}

// Validate reports the first configuration error, before the loop starts.
func (c Config) Validate() error {
	switch {
	case c.Interval <= 0:
		return errors.New("interval must be positive")
	case c.Jitter < 0 || c.Jitter > 1:
		return fmt.Errorf("jitter must be between 0 and 1, got %g", c.Jitter)
	case c.MinMoves < 1:
		return fmt.Errorf("min-moves must be at least 1, got %d", c.MinMoves)
	case c.MaxMoves < c.MinMoves:
		return fmt.Errorf("max-moves (%d) must not be below min-moves (%d)", c.MaxMoves, c.MinMoves)
	case c.MoveDelay < 0:
		return errors.New("move-delay must not be negative")
	case c.MoveDurationMin <= 0:
		return errors.New("move-duration-min must be positive")
	case c.MoveDurationMax <= c.MoveDurationMin:
		return fmt.Errorf("move-duration-max (%s) must be greater than move-duration-min (%s)",
			c.MoveDurationMax, c.MoveDurationMin)
	case c.Margin < 0:
		return errors.New("margin must not be negative")
	case c.Key == "":
		return errors.New("key must not be empty")
	case c.OnlyWhenIdle && c.IdleThreshold <= 0:
		return errors.New("idle-threshold must be positive when only-when-idle is set")
	}

	switch c.PressMode {
	case PressPerMove, PressPerCycle:
		return nil
	default:
		return fmt.Errorf("press-mode must be %q or %q, got %q", PressPerMove, PressPerCycle, c.PressMode)
	}
}
