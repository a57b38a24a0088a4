// Package draw provides the character-grid surface the animation paints on.
package draw

// Intensity is the brightness attribute of a drawn symbol.
type Intensity uint8

const (
	Normal Intensity = iota
	Dim
	Bold
)

// String returns a human-readable name for the intensity.
func (i Intensity) String() string {
	switch i {
	case Normal:
		return "normal"
	case Dim:
		return "dim"
	case Bold:
		return "bold"
	default:
		return "unknown"
	}
}

// Cell is the content of one grid position.
type Cell struct {
	Symbol    rune
	Intensity Intensity
}

// Blank is an empty cell.
var Blank = Cell{Symbol: ' '}

// Backend is a rendering target addressed by 0-based (row, col).
// Backends do not clip; Canvas does.
type Backend interface {
	// Size returns the number of rows and columns available.
	Size() (rows, cols int)
	// SetCell stages a cell for the next Show.
	SetCell(row, col int, c Cell)
	// Show pushes staged cells to the terminal.
	Show() error
}
