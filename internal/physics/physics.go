// Package physics provides the ship velocity model and box geometry helpers.
package physics

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid physics config")

// Config holds the tunable constants of the velocity model.
type Config struct {
	Limit        float64 `yaml:"limit"`        // Maximum speed per axis, in cells per tick
	Fading       float64 `yaml:"fading"`       // Speed multiplier applied every tick (damping)
	Acceleration float64 `yaml:"acceleration"` // Peak speed gained per tick while input is held
	MinSpeed     float64 `yaml:"min_speed"`    // Speeds below this magnitude snap to zero
}

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		Limit:        2,
		Fading:       0.8,
		Acceleration: 0.75,
		MinSpeed:     0.1,
	}
}

// Validate checks that the constants produce a decaying, bounded model.
func (c Config) Validate() error {
	switch {
	case c.Limit <= 0:
		return fmt.Errorf("%w: limit must be positive, got %v", ErrInvalidConfig, c.Limit)
	case c.Fading <= 0 || c.Fading >= 1:
		return fmt.Errorf("%w: fading must be in (0, 1), got %v", ErrInvalidConfig, c.Fading)
	case c.Acceleration <= 0:
		return fmt.Errorf("%w: acceleration must be positive, got %v", ErrInvalidConfig, c.Acceleration)
	case c.MinSpeed < 0 || c.MinSpeed >= c.Limit:
		return fmt.Errorf("%w: min_speed must be in [0, limit), got %v", ErrInvalidConfig, c.MinSpeed)
	}
	return nil
}

// Update returns the next velocity. rowDir and colDir are the input
// directions on each axis; only their sign is used. Released axes decay
// toward zero, held axes accelerate toward ±Limit.
func Update(cfg Config, rowSpeed, colSpeed, rowDir, colDir float64) (float64, float64) {
	return updateAxis(cfg, rowSpeed, rowDir), updateAxis(cfg, colSpeed, colDir)
}

func updateAxis(cfg Config, speed, dir float64) float64 {
	speed *= cfg.Fading

	if dir != 0 {
		fraction := speed / cfg.Limit
		delta := math.Cos(fraction) * cfg.Acceleration
		if dir > 0 {
			speed += delta
		} else {
			speed -= delta
		}
		speed = Clamp(speed, -cfg.Limit, cfg.Limit)
	}

	if math.Abs(speed) < cfg.MinSpeed {
		return 0
	}
	return speed
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampToward moves pos toward target, stopping at the [lo, hi] boundary.
// Movement happens only when target differs from pos, and never in the
// opposite direction: a position already past the boundary stays put
// rather than being pulled back.
func ClampToward(pos, target, lo, hi float64) float64 {
	switch {
	case target > pos:
		return math.Max(pos, math.Min(target, hi))
	case target < pos:
		return math.Min(pos, math.Max(target, lo))
	default:
		return pos
	}
}
