// Package sound provides the fire-and-forget beep played on each launch.
package sound

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Beeper emits a short audible alert. Beep must not block.
type Beeper interface {
	Beep()
}

// Mute discards beeps.
type Mute struct{}

// Beep implements Beeper.
func (Mute) Beep() {}

// Bell rings the terminal bell by writing BEL.
type Bell struct {
	W io.Writer
}

// Beep implements Beeper.
func (b Bell) Beep() {
	_, _ = io.WriteString(b.W, "\a")
}

// ScreenBell rings the bell through a tcell screen.
type ScreenBell struct {
	Screen tcell.Screen
}

// Beep implements Beeper.
func (b ScreenBell) Beep() {
	_ = b.Screen.Beep()
}

const (
	sampleRate    = beep.SampleRate(44100)
	toneFrequency = 880
	toneDuration  = 50 * time.Millisecond
)

// Speaker plays a short sine tone on the default audio device.
type Speaker struct {
	rate beep.SampleRate
}

// NewSpeaker initialises the audio device.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Speaker{rate: sampleRate}, nil
}

// Beep implements Beeper.
func (s *Speaker) Beep() {
	speaker.Play(beep.Take(s.rate.N(toneDuration), newTone(s.rate, toneFrequency)))
}

// tone is an endless sine wave with a short fade-in against clicks.
type tone struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newTone(sr beep.SampleRate, freq float64) *tone {
	return &tone{sr: sr, freq: freq}
}

func (g *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Min(t/0.005, 1.0)
		sample := 0.3 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *tone) Err() error {
	return nil
}

// Close releases the audio device.
func (s *Speaker) Close() {
	speaker.Close()
}
