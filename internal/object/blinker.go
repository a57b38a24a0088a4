package object

import "github.com/tomz197/spacegarbage/internal/draw"

// MaxBlinkOffset bounds the random delay before a star first lights up.
const MaxBlinkOffset = 20

type blinkStep struct {
	intensity draw.Intensity
	ticks     int
}

// blinkCycle repeats after the initial idle delay.
var blinkCycle = [...]blinkStep{
	{draw.Dim, 20},
	{draw.Normal, 3},
	{draw.Bold, 5},
	{draw.Normal, 3},
}

// Blinker is one twinkling star. It never finishes.
type Blinker struct {
	Row, Column int
	Symbol      rune

	step int // Index into blinkCycle, -1 while idle
	wait int // Ticks left in the current step
}

// NewBlinker creates a star that stays dark for offset ticks before its
// first dim phase.
func NewBlinker(row, column int, symbol rune, offset int) *Blinker {
	if offset < 0 {
		offset = 0
	}
	return &Blinker{
		Row:    row,
		Column: column,
		Symbol: symbol,
		step:   -1,
		wait:   offset,
	}
}

// Intensity returns the intensity currently shown and false while idle.
func (b *Blinker) Intensity() (draw.Intensity, bool) {
	if b.step < 0 {
		return draw.Normal, false
	}
	return blinkCycle[b.step].intensity, true
}

// Update implements Object.
func (b *Blinker) Update(ctx UpdateContext) (bool, error) {
	if b.wait > 0 {
		b.wait--
		return false, nil
	}

	b.step = (b.step + 1) % len(blinkCycle)
	s := blinkCycle[b.step]
	ctx.Canvas.Draw(b.Row, b.Column, b.Symbol, s.intensity)
	b.wait = s.ticks - 1
	return false, nil
}
