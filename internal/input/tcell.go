package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Events reads key events from a tcell screen.
type Events struct {
	ch    chan tcell.Event
	state keyState
	now   func() time.Time
}

var _ Source = (*Events)(nil)

// StartEvents spawns a goroutine polling s. It stops when the screen is
// finalised.
func StartEvents(s tcell.Screen) *Events {
	e := &Events{
		ch:  make(chan tcell.Event, 128),
		now: time.Now,
	}
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				close(e.ch)
				return
			}
			e.ch <- ev
		}
	}()
	return e
}

// Read drains pending events (non-blocking) and returns the controls.
func (e *Events) Read() Controls {
	now := e.now()

drain:
	for {
		select {
		case ev, ok := <-e.ch:
			if !ok {
				break drain
			}
			if key, isKey := ev.(*tcell.EventKey); isKey {
				e.state.press(KeyForEvent(key), now)
			}
		default:
			break drain
		}
	}

	return e.state.controls(now)
}

// KeyForEvent maps a tcell key event to a key.
func KeyForEvent(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyQuit
	case tcell.KeyRune:
		if ev.Rune() < 0x80 {
			return KeyForByte(byte(ev.Rune()))
		}
	}
	return KeyNone
}
