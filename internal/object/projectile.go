package object

import (
	"math"

	"github.com/tomz197/spacegarbage/internal/draw"
)

// Default projectile velocity: straight up.
const (
	DefaultProjectileRowSpeed    = -0.3
	DefaultProjectileColumnSpeed = 0.0
)

// Muzzle flash symbols, one per tick before the shot moves.
const (
	flashSymbol       = '*'
	flashBrightSymbol = 'O'
)

type projectileStage int

const (
	stageFlash projectileStage = iota
	stageFlashBright
	stageLaunch
	stageFlight
)

// Projectile is a shot travelling at constant velocity until it leaves
// the playable interior.
type Projectile struct {
	Row, Column           float64 // Position
	RowSpeed, ColumnSpeed float64 // Velocity, in cells per tick

	startRow, startColumn float64
	stage                 projectileStage
}

// NewProjectile creates a shot at (row, column).
func NewProjectile(row, column, rowSpeed, columnSpeed float64) *Projectile {
	return &Projectile{
		Row:         row,
		Column:      column,
		RowSpeed:    rowSpeed,
		ColumnSpeed: columnSpeed,
		startRow:    row,
		startColumn: column,
	}
}

// Symbol returns the glyph drawn while in flight.
func (p *Projectile) Symbol() rune {
	if p.ColumnSpeed != 0 {
		return '-'
	}
	return '|'
}

// Update implements Object.
func (p *Projectile) Update(ctx UpdateContext) (bool, error) {
	c := ctx.Canvas
	switch p.stage {
	case stageFlash:
		c.Draw(round(p.startRow), round(p.startColumn), flashSymbol, draw.Normal)
		p.stage = stageFlashBright
		return false, nil
	case stageFlashBright:
		c.Draw(round(p.startRow), round(p.startColumn), flashBrightSymbol, draw.Normal)
		p.stage = stageLaunch
		return false, nil
	case stageLaunch:
		c.Erase(round(p.startRow), round(p.startColumn))
		if ctx.Audio != nil {
			ctx.Audio.Beep()
		}
		p.stage = stageFlight
	default:
		c.Erase(round(p.Row), round(p.Column))
	}

	p.Row += p.RowSpeed
	p.Column += p.ColumnSpeed
	if !p.inside(c) {
		return true, nil
	}

	c.Draw(round(p.Row), round(p.Column), p.Symbol(), draw.Normal)
	return false, nil
}

// inside reports whether the rounded position is strictly within the border.
func (p *Projectile) inside(c *draw.Canvas) bool {
	row, col := round(p.Row), round(p.Column)
	return 0 < row && row < c.MaxRow() && 0 < col && col < c.MaxColumn()
}

func round(v float64) int {
	return int(math.Round(v))
}
