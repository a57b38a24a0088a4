// Package frame provides immutable text-grid sprites and their loaders.
package frame

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrEmptyFrame is returned when frame text has no visible rows.
var ErrEmptyFrame = errors.New("empty frame")

// Transparent is the symbol that is never drawn.
const Transparent = ' '

// Frame is a multi-row glyph asset. Width is the longest row in runes,
// Height the number of rows. A Frame is never mutated after Parse.
type Frame struct {
	name   string
	rows   [][]rune
	width  int
	height int
}

// Parse builds a frame from text. Rows are separated by line breaks;
// trailing blank lines are dropped.
func Parse(name, text string) (*Frame, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("frame %q: %w", name, ErrEmptyFrame)
	}

	f := &Frame{
		name:   name,
		rows:   make([][]rune, len(lines)),
		height: len(lines),
	}
	for i, line := range lines {
		f.rows[i] = []rune(line)
		if n := utf8.RuneCountInString(line); n > f.width {
			f.width = n
		}
	}
	return f, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(name, text string) *Frame {
	f, err := Parse(name, text)
	if err != nil {
		panic(err)
	}
	return f
}

// Name returns the asset name the frame was loaded from.
func (f *Frame) Name() string {
	return f.name
}

// Width returns the frame width in columns.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in rows.
func (f *Frame) Height() int {
	return f.height
}

// Each calls fn for every visible (non-transparent) symbol with its offset
// from the frame's top-left corner. Iteration stops when fn returns false.
func (f *Frame) Each(fn func(row, col int, symbol rune) bool) {
	for r, line := range f.rows {
		for c, symbol := range line {
			if symbol == Transparent {
				continue
			}
			if !fn(r, c, symbol) {
				return
			}
		}
	}
}

// String returns the frame text.
func (f *Frame) String() string {
	var b strings.Builder
	for i, line := range f.rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(line))
	}
	return b.String()
}
