// Package draw renders the playfield to a terminal using half-block characters.
package draw

import "math"

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockLight     = '░'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Rotate rotates p around (cx, cy) by deg degrees, clockwise on screen.
func Rotate(p Point, cx, cy, deg float64) Point {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	dx := p.X - cx
	dy := p.Y - cy
	return Point{
		X: cx + dx*cos - dy*sin,
		Y: cy + dx*sin + dy*cos,
	}
}

// FillRect fills an axis-aligned rectangle given its top-left corner in logical units.
func (c *Canvas) FillRect(x, y, w, h float64) {
	pts := c.BorrowPoints(4)
	pts[0] = Point{X: x, Y: y}
	pts[1] = Point{X: x + w, Y: y}
	pts[2] = Point{X: x + w, Y: y + h}
	pts[3] = Point{X: x, Y: y + h}
	c.DrawPolygon(pts, true)
}

// FillRotatedRect fills a rectangle (top-left x, y, size w×h) rotated by deg
// degrees around (cx, cy).
func (c *Canvas) FillRotatedRect(x, y, w, h, cx, cy, deg float64) {
	pts := c.BorrowPoints(4)
	pts[0] = Rotate(Point{X: x, Y: y}, cx, cy, deg)
	pts[1] = Rotate(Point{X: x + w, Y: y}, cx, cy, deg)
	pts[2] = Rotate(Point{X: x + w, Y: y + h}, cx, cy, deg)
	pts[3] = Rotate(Point{X: x, Y: y + h}, cx, cy, deg)
	c.DrawPolygon(pts, true)
}

// FillDiamond fills a diamond with the given center and half-diagonal.
func (c *Canvas) FillDiamond(cx, cy, r float64) {
	pts := c.BorrowPoints(4)
	pts[0] = Point{X: cx, Y: cy - r}
	pts[1] = Point{X: cx + r, Y: cy}
	pts[2] = Point{X: cx, Y: cy + r}
	pts[3] = Point{X: cx - r, Y: cy}
	c.DrawPolygon(pts, true)
}

// FillCircle fills a circle approximated by a polygon. Tiny circles still
// light their center pixel.
func (c *Canvas) FillCircle(cx, cy, r float64) {
	const segments = 12
	pts := c.BorrowPoints(segments)
	for i := range pts {
		a := float64(i) * 2 * math.Pi / segments
		pts[i] = Point{X: cx + math.Cos(a)*r, Y: cy + math.Sin(a)*r}
	}
	c.DrawPolygon(pts, true)
	c.SetFloat(cx, cy)
}
