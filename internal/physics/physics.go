// Package physics provides collision detection and heading utilities.
package physics

import "math"

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// CirclesOverlap checks if two circles overlap (touching does not count).
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) < minDist*minDist
}

// Heading returns the unit vector pointing from (fromX, fromY) towards (toX, toY).
// Coincident points yield (1, 0), the direction atan2(0, 0) describes.
func Heading(fromX, fromY, toX, toY float64) (ux, uy float64) {
	angle := math.Atan2(toY-fromY, toX-fromX)
	return math.Cos(angle), math.Sin(angle)
}

// InRange reports whether v lies within [lo, hi].
func InRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
