package object

import "github.com/tomz197/dodgebullets/internal/draw"

// Explosion growth.
const (
	ExplosionGrowth    = 2.0  // Radius added per tick
	ExplosionMaxRadius = 50.0 // Removed once the radius reaches this
)

// Explosion is the expanding square left behind when the player is hit.
type Explosion struct {
	X, Y   float64
	Radius float64
}

// NewExplosion creates an explosion at (x, y) with zero radius.
func NewExplosion(x, y float64) *Explosion {
	return &Explosion{X: x, Y: y}
}

// Update grows the explosion. Returns true when it should be removed.
func (e *Explosion) Update(UpdateContext) bool {
	e.Radius += ExplosionGrowth
	return e.Radius >= ExplosionMaxRadius
}

// Draw renders the explosion as an orange square centered on its origin.
func (e *Explosion) Draw(ctx DrawContext) error {
	ctx.Canvas.SetPen(draw.PenOrange)
	ctx.Canvas.FillRect(e.X-e.Radius, e.Y-e.Radius, e.Radius*2, e.Radius*2)
	return nil
}
