package dasher

import "github.com/vovakirdan/dapper-dasher/internal/core"

// Obstacle is a nebula the player must jump over. All obstacles share one
// horizontal velocity, held by the World.
type Obstacle struct {
	Sprite AnimFrame
}

// StepObstacles moves every obstacle in src by velocity*dt, advances its
// animation, and appends the result to dst[:0]. Obstacles never wrap or
// respawn. src is not modified, so dst and src must not share memory.
func StepObstacles(dst, src []Obstacle, dt, velocity float64, maxFrame int) []Obstacle {
	dst = dst[:0]
	for _, o := range src {
		o.Sprite.Pos.X += velocity * dt
		o.Sprite = UpdateAnim(o.Sprite, dt, maxFrame)
		dst = append(dst, o)
	}
	return dst
}

// AppendBounds appends the obstacle sprite rectangles to dst[:0], in order.
func AppendBounds(dst []core.RectF, obs []Obstacle) []core.RectF {
	dst = dst[:0]
	for _, o := range obs {
		dst = append(dst, o.Sprite.Bounds())
	}
	return dst
}
