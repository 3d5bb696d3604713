package dasher

import "github.com/vovakirdan/dapper-dasher/internal/core"

// AnyCollision reports whether player overlaps any obstacle rectangle after
// the obstacle is shrunk by inset on every side. The inset discards the empty
// padding around each sprite-sheet cell. An inset of half the cell leaves its
// center point as the hitbox; a larger one leaves nothing to hit.
func AnyCollision(player core.RectF, obstacles []core.RectF, inset float64) bool {
	for _, r := range obstacles {
		if player.Intersects(r.Inset(inset)) {
			return true
		}
	}
	return false
}
