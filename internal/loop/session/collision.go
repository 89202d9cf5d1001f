package session

import (
	"github.com/tomz197/dodgebullets/internal/object"
	"github.com/tomz197/dodgebullets/internal/physics"
)

// firstHit returns the first projectile, in iteration order, overlapping the
// player, or nil. Invulnerable players are never hit.
func firstHit(p *object.Player, projectiles []*object.Projectile) *object.Projectile {
	if p.Invulnerable {
		return nil
	}
	for _, pr := range projectiles {
		if physics.CirclesOverlap(pr.X, pr.Y, pr.Size, p.X, p.Y, p.Size) {
			return pr
		}
	}
	return nil
}
