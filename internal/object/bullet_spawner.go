package object

import (
	"math"
	"math/rand"
	"time"

	"github.com/tomz197/dodgebullets/internal/physics"
)

// Spawn ramp limits.
const (
	InitialBullets       = 5  // Spawned at session start
	MaxConcurrentBullets = 16 // Ceiling of the ramp target
	MaxAliveBullets      = 80 // No ramp spawns while this many are alive
)

var (
	bulletSpeeds = []float64{2, 3, 4, 5, 6}
	bulletShapes = []Shape{ShapeCircle, ShapeDiamond, ShapeSquare}
	bulletColors = []string{"#FF0000", "#00FF00", "#0000FF"}
)

// BulletSpawner places new projectiles on the playfield edges, aimed at a target.
type BulletSpawner struct {
	rng *rand.Rand
}

// NewBulletSpawner creates a spawner drawing from rng.
// A nil rng gets a time-seeded source.
func NewBulletSpawner(rng *rand.Rand) *BulletSpawner {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &BulletSpawner{rng: rng}
}

// SpawnOne creates a projectile at a random point on a random edge, moving
// towards (tx, ty) at one of the fixed speeds.
func (s *BulletSpawner) SpawnOne(screen Screen, tx, ty float64) *Projectile {
	w, h := float64(screen.Width), float64(screen.Height)
	var x, y float64
	switch s.rng.Intn(4) {
	case 0: // top
		x, y = s.rng.Float64()*w, 0
	case 1: // bottom
		x, y = s.rng.Float64()*w, h
	case 2: // left
		x, y = 0, s.rng.Float64()*h
	default: // right
		x, y = w, s.rng.Float64()*h
	}

	ux, uy := physics.Heading(x, y, tx, ty)
	speed := bulletSpeeds[s.rng.Intn(len(bulletSpeeds))]
	return &Projectile{
		X:     x,
		Y:     y,
		VX:    ux * speed,
		VY:    uy * speed,
		Size:  s.rng.Float64()*4 + 4,
		Shape: bulletShapes[s.rng.Intn(len(bulletShapes))],
		Color: bulletColors[s.rng.Intn(len(bulletColors))],
	}
}

// SpawnBatch calls SpawnOne n times.
func (s *BulletSpawner) SpawnBatch(screen Screen, tx, ty float64, n int) []*Projectile {
	out := make([]*Projectile, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, s.SpawnOne(screen, tx, ty))
	}
	return out
}

// RampTarget is the desired projectile count after elapsed survival time.
func RampTarget(elapsed time.Duration) int {
	target := InitialBullets + int(math.Floor(elapsed.Seconds()))
	return min(target, MaxConcurrentBullets)
}

// RampDeficit is how many projectiles the ramp spawns when current are alive.
func RampDeficit(elapsed time.Duration, current int) int {
	target := RampTarget(elapsed)
	if current >= target || current >= MaxAliveBullets {
		return 0
	}
	return target - current
}
