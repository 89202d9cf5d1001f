package object

import (
	"math"
	"math/rand"
	"slices"
	"testing"
	"time"
)

var testScreen = NewScreen(800, 600)

func TestPlayerMovesDiagonallyWithoutNormalizing(t *testing.T) {
	p := NewPlayer(400, 300)
	p.Update(UpdateContext{Intent: Intent{Up: true, Right: true}, Screen: testScreen})

	if p.X != 406 || p.Y != 294 {
		t.Fatalf("position = (%v,%v), want (406,294)", p.X, p.Y)
	}
	if p.Angle != 45 {
		t.Fatalf("angle = %v, want 45", p.Angle)
	}
}

func TestPlayerAxisDiscardedAtBoundary(t *testing.T) {
	p := NewPlayer(12, 300)
	p.Update(UpdateContext{Intent: Intent{Left: true, Down: true}, Screen: testScreen})

	if p.X != 12 {
		t.Fatalf("x moved past left bound: %v", p.X)
	}
	if p.Y != 306 {
		t.Fatalf("y should still move, got %v", p.Y)
	}
}

func TestPlayerStaysInBoundsForever(t *testing.T) {
	p := NewPlayer(400, 300)
	intents := []Intent{{Up: true, Left: true}, {Down: true, Right: true}, {Right: true}, {Up: true}}
	for _, in := range intents {
		for i := 0; i < 500; i++ {
			p.Update(UpdateContext{Intent: in, Screen: testScreen})
			if p.X < p.Size/2 || p.X > 800-p.Size/2 || p.Y < p.Size/2 || p.Y > 600-p.Size/2 {
				t.Fatalf("player left bounds at (%v,%v)", p.X, p.Y)
			}
		}
	}
}

func TestPlayerKeepsFacingWhenNeutral(t *testing.T) {
	p := NewPlayer(400, 300)
	p.Update(UpdateContext{Intent: Intent{Left: true}, Screen: testScreen})
	p.Update(UpdateContext{Screen: testScreen})
	if p.Angle != 270 {
		t.Fatalf("angle = %v, want 270", p.Angle)
	}
}

func TestPlayerTouchSpeed(t *testing.T) {
	p := NewPlayer(400, 300)
	p.Update(UpdateContext{Intent: Intent{Right: true, Touch: true}, Screen: testScreen})
	if p.X != 403 {
		t.Fatalf("touch move x = %v, want 403", p.X)
	}
}

func TestOctantAngle(t *testing.T) {
	tests := []struct {
		dx, dy int
		want   float64
	}{
		{0, -1, 0}, {1, -1, 45}, {1, 0, 90}, {1, 1, 135},
		{0, 1, 180}, {-1, 1, 225}, {-1, 0, 270}, {-1, -1, 315},
	}
	for _, tt := range tests {
		got, ok := OctantAngle(tt.dx, tt.dy)
		if !ok || got != tt.want {
			t.Errorf("OctantAngle(%d,%d) = %v,%v, want %v", tt.dx, tt.dy, got, ok, tt.want)
		}
	}
	if _, ok := OctantAngle(0, 0); ok {
		t.Error("zero direction should not produce an angle")
	}
}

func TestPlayerDamageClampsAtZero(t *testing.T) {
	p := NewPlayer(0, 0)
	for i := 0; i < 4; i++ {
		if p.Damage(20) {
			t.Fatalf("dead too early after %d hits", i+1)
		}
	}
	if !p.Damage(30) || p.Health != 0 {
		t.Fatalf("health = %d, want 0 and dead", p.Health)
	}
}

func TestProjectileRemovedOutsidePlayfield(t *testing.T) {
	p := &Projectile{X: 798, Y: 300, VX: 2}
	if p.Update(UpdateContext{Screen: testScreen}) {
		t.Fatal("projectile on the edge should stay")
	}
	if !p.Update(UpdateContext{Screen: testScreen}) {
		t.Fatal("projectile past the edge should be removed")
	}
}

func TestExplosionGrowsThenExpires(t *testing.T) {
	e := NewExplosion(10, 10)
	ticks := 0
	for !e.Update(UpdateContext{}) {
		ticks++
	}
	if ticks != 24 || e.Radius != 50 {
		t.Fatalf("expired after %d ticks at radius %v", ticks, e.Radius)
	}
}

func TestSpawnOneStartsOnEdgeAimedAtTarget(t *testing.T) {
	s := NewBulletSpawner(rand.New(rand.NewSource(1)))
	for i := 0; i < 200; i++ {
		p := s.SpawnOne(testScreen, 400, 300)

		onEdge := p.X == 0 || p.X == 800 || p.Y == 0 || p.Y == 600
		if !onEdge {
			t.Fatalf("spawned off-edge at (%v,%v)", p.X, p.Y)
		}
		if p.Size < 4 || p.Size >= 8 {
			t.Fatalf("size %v outside [4,8)", p.Size)
		}

		speed := math.Hypot(p.VX, p.VY)
		rounded := math.Round(speed)
		if math.Abs(speed-rounded) > 1e-9 || !slices.Contains(bulletSpeeds, rounded) {
			t.Fatalf("speed %v not in %v", speed, bulletSpeeds)
		}

		// Velocity must point at the target.
		tx, ty := 400-p.X, 300-p.Y
		cross := p.VX*ty - p.VY*tx
		if math.Abs(cross) > 1e-6 || p.VX*tx+p.VY*ty <= 0 {
			t.Fatalf("velocity (%v,%v) not aimed at target from (%v,%v)", p.VX, p.VY, p.X, p.Y)
		}
	}
}

func TestSpawnBatch(t *testing.T) {
	s := NewBulletSpawner(rand.New(rand.NewSource(7)))
	if got := len(s.SpawnBatch(testScreen, 0, 0, 5)); got != 5 {
		t.Fatalf("batch size = %d, want 5", got)
	}
	if got := len(s.SpawnBatch(testScreen, 0, 0, 0)); got != 0 {
		t.Fatalf("empty batch size = %d", got)
	}
}

func TestRampDeficit(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		current int
		want    int
	}{
		{0, 0, 5},
		{time.Second, 5, 1},
		{1500 * time.Millisecond, 5, 1},
		{11 * time.Second, 15, 1},
		{30 * time.Second, 10, 6},
		{30 * time.Second, 16, 0},
		{30 * time.Second, 20, 0},
		{time.Second, 80, 0},
	}
	for _, tt := range tests {
		if got := RampDeficit(tt.elapsed, tt.current); got != tt.want {
			t.Errorf("RampDeficit(%v, %d) = %d, want %d", tt.elapsed, tt.current, got, tt.want)
		}
	}
}
