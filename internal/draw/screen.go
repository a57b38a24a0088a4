package draw

import "github.com/gdamore/tcell/v2"

// Screen is a Backend on top of a tcell screen.
type Screen struct {
	screen tcell.Screen
	styles [3]tcell.Style
}

var _ Backend = (*Screen)(nil)

// NewScreen wraps an initialised tcell screen.
func NewScreen(s tcell.Screen) *Screen {
	return &Screen{
		screen: s,
		styles: [3]tcell.Style{
			Normal: tcell.StyleDefault,
			Dim:    tcell.StyleDefault.Dim(true),
			Bold:   tcell.StyleDefault.Bold(true),
		},
	}
}

// Size implements Backend. tcell reports (width, height).
func (s *Screen) Size() (rows, cols int) {
	w, h := s.screen.Size()
	return h, w
}

// SetCell implements Backend.
func (s *Screen) SetCell(row, col int, c Cell) {
	style := s.styles[Normal]
	if int(c.Intensity) < len(s.styles) {
		style = s.styles[c.Intensity]
	}
	s.screen.SetContent(col, row, c.Symbol, nil, style)
}

// Show implements Backend.
func (s *Screen) Show() error {
	s.screen.Show()
	return nil
}
