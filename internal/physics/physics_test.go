package physics

import (
	"math"
	"testing"
)

func TestDistanceSquared(t *testing.T) {
	if got := DistanceSquared(1, 1, 4, 5); got != 25 {
		t.Fatalf("DistanceSquared = %f, want 25", got)
	}
}

func TestCirclesOverlapIsStrict(t *testing.T) {
	if CirclesOverlap(0, 0, 2, 5, 0, 3) {
		t.Fatalf("touching circles must not overlap")
	}
	if !CirclesOverlap(0, 0, 2, 4.9, 0, 3) {
		t.Fatalf("expected overlap")
	}
}

func TestHeading(t *testing.T) {
	tests := []struct {
		name           string
		fx, fy, tx, ty float64
		ux, uy         float64
	}{
		{"right", 0, 0, 10, 0, 1, 0},
		{"down", 5, 5, 5, 50, 0, 1},
		{"diagonal", 0, 0, 3, 4, 0.6, 0.8},
		{"coincident", 7, 7, 7, 7, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ux, uy := Heading(tt.fx, tt.fy, tt.tx, tt.ty)
			if math.Abs(ux-tt.ux) > 1e-9 || math.Abs(uy-tt.uy) > 1e-9 {
				t.Fatalf("Heading = (%f,%f), want (%f,%f)", ux, uy, tt.ux, tt.uy)
			}
		})
	}
}

func TestInRange(t *testing.T) {
	if !InRange(0, 0, 10) || !InRange(10, 0, 10) {
		t.Fatalf("bounds are inclusive")
	}
	if InRange(-0.001, 0, 10) || InRange(10.001, 0, 10) {
		t.Fatalf("values outside bounds reported in range")
	}
}
