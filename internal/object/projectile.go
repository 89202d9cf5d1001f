package object

import "github.com/tomz197/dodgebullets/internal/draw"

// Shape is the cosmetic outline of a projectile.
type Shape uint8

const (
	ShapeCircle Shape = iota
	ShapeDiamond
	ShapeSquare
)

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeDiamond:
		return "diamond"
	case ShapeSquare:
		return "square"
	}
	return "unknown"
}

// Projectile is a bullet fired from a playfield edge towards the player.
// Its velocity is fixed at spawn time.
type Projectile struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity in units per tick
	Size   float64 // Radius, 4..8
	Shape  Shape
	Color  string // Hex color, e.g. "#FF0000"
}

// Update moves the projectile by its velocity.
// Returns true once the new position is outside the playfield.
func (p *Projectile) Update(ctx UpdateContext) bool {
	p.X += p.VX
	p.Y += p.VY
	return !ctx.Screen.Contains(p.X, p.Y)
}

// Draw renders the projectile in its shape and color.
func (p *Projectile) Draw(ctx DrawContext) error {
	c := ctx.Canvas
	c.SetPen(draw.PenForHex(p.Color))
	switch p.Shape {
	case ShapeDiamond:
		c.FillDiamond(p.X, p.Y, p.Size)
	case ShapeSquare:
		c.FillRect(p.X-p.Size/2, p.Y-p.Size/2, p.Size, p.Size)
	default:
		c.FillCircle(p.X, p.Y, p.Size)
	}
	return nil
}
