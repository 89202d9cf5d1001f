package object

import "github.com/tomz197/dodgebullets/internal/draw"

// Player defaults.
const (
	PlayerSize    = 20.0
	KeyboardSpeed = 6.0 // Units per tick with keyboard input
	TouchSpeed    = 3.0 // Units per tick while dragging on a touch screen
	MaxHealth     = 100
	playerBodyPen = draw.PenWhite
)

// Player is the ship the user steers around the playfield.
type Player struct {
	X, Y         float64 // Position (center of ship)
	Size         float64 // Collision radius and sprite size
	Speed        float64 // Units moved per tick per held direction
	Angle        float64 // Facing in degrees: 0 = up, increasing clockwise in 45° steps
	Health       int     // 0..MaxHealth
	Invulnerable bool    // Set after a hit, cleared by a deferred timer
}

// NewPlayer creates a player at the given position with full health.
func NewPlayer(x, y float64) *Player {
	return &Player{
		X:      x,
		Y:      y,
		Size:   PlayerSize,
		Speed:  KeyboardSpeed,
		Health: MaxHealth,
	}
}

// Update moves the player by the held directions and refreshes its facing.
// Diagonal movement is not normalized. Each axis is applied only when the
// new coordinate keeps the ship inside [size/2, dimension-size/2]; an axis
// that would leave is dropped for this tick while the other still applies.
func (p *Player) Update(ctx UpdateContext) bool {
	if ctx.Intent.Touch {
		p.Speed = TouchSpeed
	} else {
		p.Speed = KeyboardSpeed
	}

	dx, dy := ctx.Intent.Vector()
	half := p.Size / 2

	newX := p.X + float64(dx)*p.Speed
	if newX >= half && newX <= float64(ctx.Screen.Width)-half {
		p.X = newX
	}
	newY := p.Y + float64(dy)*p.Speed
	if newY >= half && newY <= float64(ctx.Screen.Height)-half {
		p.Y = newY
	}

	if angle, ok := OctantAngle(dx, dy); ok {
		p.Angle = angle
	}
	return false
}

// OctantAngle maps a direction to one of the eight facing angles.
// ok is false for the zero direction, which keeps the previous facing.
func OctantAngle(dx, dy int) (angle float64, ok bool) {
	switch {
	case dx == 0 && dy < 0:
		return 0, true
	case dx > 0 && dy < 0:
		return 45, true
	case dx > 0 && dy == 0:
		return 90, true
	case dx > 0 && dy > 0:
		return 135, true
	case dx == 0 && dy > 0:
		return 180, true
	case dx < 0 && dy > 0:
		return 225, true
	case dx < 0 && dy == 0:
		return 270, true
	case dx < 0 && dy < 0:
		return 315, true
	}
	return 0, false
}

// Damage subtracts amount from health, never going below zero.
// Returns true when the player has no health left.
func (p *Player) Damage(amount int) bool {
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	return p.Health == 0
}

// Draw renders the pixel fighter: body, nose and two wings, rotated to the facing angle.
func (p Player) Draw(ctx DrawContext) error {
	c := ctx.Canvas
	s := p.Size
	c.SetPen(playerBodyPen)
	c.FillRotatedRect(p.X-s/2, p.Y-s/2, s, s/2, p.X, p.Y, p.Angle) // body
	c.FillRotatedRect(p.X-s/4, p.Y-s, s/2, s/2, p.X, p.Y, p.Angle) // nose
	c.FillRotatedRect(p.X-s/2, p.Y, s/4, s/4, p.X, p.Y, p.Angle)   // left wing
	c.FillRotatedRect(p.X+s/4, p.Y, s/4, s/4, p.X, p.Y, p.Angle)   // right wing
	return nil
}
