package loop

import "time"

// DefaultTick is the pause between two ticks.
const DefaultTick = 100 * time.Millisecond

// Starfield.
const (
	StarCount   = 50
	StarSymbols = "+*.:"
)
