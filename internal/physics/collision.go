package physics

// Box is an axis-aligned rectangle on the character grid.
type Box struct {
	Row, Col      float64 // Top-left corner
	Height, Width float64
}

// BoxesOverlap reports whether two boxes share at least one cell.
// Touching edges do not overlap.
func BoxesOverlap(a, b Box) bool {
	if a.Col >= b.Col+b.Width || b.Col >= a.Col+a.Width {
		return false
	}
	if a.Row >= b.Row+b.Height || b.Row >= a.Row+a.Height {
		return false
	}
	return true
}
