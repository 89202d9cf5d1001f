// Package object holds the game entities: the player ship, projectiles and
// explosion effects.
package object

import (
	"io"

	"github.com/tomz197/dodgebullets/internal/draw"
	"github.com/tomz197/dodgebullets/internal/input"
	"github.com/tomz197/dodgebullets/internal/physics"
)

// Intent is an alias for the input package's Intent type.
type Intent = input.Intent

// UpdateContext provides all the information an object needs during a tick.
type UpdateContext struct {
	Intent Intent
	Screen Screen
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas // High-resolution canvas (2x vertical)
	Writer io.Writer    // Direct terminal output (for text)
}

// Screen is the playfield size in logical units.
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// NewScreen returns a screen of the given size with its center filled in.
func NewScreen(width, height int) Screen {
	return Screen{
		Width:   width,
		Height:  height,
		CenterX: width / 2,
		CenterY: height / 2,
	}
}

// Contains reports whether (x, y) lies inside the playfield, edges included.
func (s Screen) Contains(x, y float64) bool {
	return physics.InRange(x, 0, float64(s.Width)) && physics.InRange(y, 0, float64(s.Height))
}

// Drawable is anything that can render itself onto a DrawContext.
type Drawable interface {
	Draw(ctx DrawContext) error
}
