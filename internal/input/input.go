// Package input turns raw key presses into per-tick control snapshots.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Controls is the control state for one tick. Directions are not
// mutually exclusive.
type Controls struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Fire  bool
	Quit  bool
}

// RowDirection returns -1 for up, 1 for down, 0 for neither or both.
func (c Controls) RowDirection() int {
	return direction(c.Up, c.Down)
}

// ColumnDirection returns -1 for left, 1 for right, 0 for neither or both.
func (c Controls) ColumnDirection() int {
	return direction(c.Left, c.Right)
}

func direction(negative, positive bool) int {
	switch {
	case negative && !positive:
		return -1
	case positive && !negative:
		return 1
	default:
		return 0
	}
}

// Source yields a control snapshot without blocking. No input is a valid
// result.
type Source interface {
	Read() Controls
}

// Key is a semantic key, abstracted from the physical key pressed.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyFire
	KeyQuit
	keyCount
)

// keyState tracks the last time each key was pressed.
type keyState [keyCount]time.Time

func (s *keyState) press(k Key, now time.Time) {
	if k > KeyNone && k < keyCount {
		s[k] = now
	}
}

func (s *keyState) held(k Key, now time.Time) bool {
	return now.Sub(s[k]) < keyHoldDuration
}

// controls builds a snapshot: keys are pressed if seen within the hold duration.
func (s *keyState) controls(now time.Time) Controls {
	return Controls{
		Up:    s.held(KeyUp, now),
		Down:  s.held(KeyDown, now),
		Left:  s.held(KeyLeft, now),
		Right: s.held(KeyRight, now),
		Fire:  s.held(KeyFire, now),
		Quit:  s.held(KeyQuit, now),
	}
}

// Stream delivers terminal input bytes via a channel.
type Stream struct {
	ch    chan byte
	state keyState
	now   func() time.Time
}

var _ Source = (*Stream)(nil)

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:  make(chan byte, 128),
		now: time.Now,
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Read drains all available bytes (non-blocking) and returns the controls.
func (s *Stream) Read() Controls {
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	now := s.now()
	s.state.parse(buf, now)
	return s.state.controls(now)
}

// parse handles escape sequences for arrow keys and single-byte keys.
func (s *keyState) parse(buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			if k := arrowKey(buf[i+2]); k != KeyNone {
				s.press(k, now)
				i += 2
				continue
			}
		}

		s.press(KeyForByte(b), now)
	}
}

func arrowKey(code byte) Key {
	switch code {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	default:
		return KeyNone
	}
}

// KeyForByte maps a single input byte to a key.
func KeyForByte(b byte) Key {
	switch b {
	case 'q', 'Q', '\x03':
		return KeyQuit
	case 'a', 'A', 'j', 'J':
		return KeyLeft
	case 'd', 'D', 'l', 'L':
		return KeyRight
	case 'w', 'W', 'i', 'I':
		return KeyUp
	case 's', 'S', 'k', 'K':
		return KeyDown
	case ' ':
		return KeyFire
	default:
		return KeyNone
	}
}
