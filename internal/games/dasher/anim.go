// Package dasher implements Dapper Dasher: the player jumps over a row of
// nebulae scrolling in from the right and wins by reaching the finish line.
//
// The step functions in this package are pure: they take state by value and
// return the next state. World owns the mutable state and calls them once per
// tick with the elapsed time supplied by a driver.
package dasher

import "github.com/vovakirdan/dapper-dasher/internal/core"

// AnimFrame is the per-sprite animation and position state.
type AnimFrame struct {
	Source  core.RectF // Sub-rectangle of the sprite sheet; X follows the frame cursor
	Pos     core.Vec2  // World position of the top-left corner
	Frame   int        // Next frame to show, in [0, maxFrame]
	Period  float64    // Seconds per frame; 0 freezes the sprite
	Elapsed float64    // Time accumulated toward the next frame
}

// Bounds returns the sprite's world rectangle.
func (a AnimFrame) Bounds() core.RectF {
	return core.NewRectF(a.Pos.X, a.Pos.Y, a.Source.W, a.Source.H)
}

// UpdateAnim advances the frame cursor by dt seconds. When the accumulated
// time reaches Period the source rectangle moves to the current frame and the
// cursor steps forward, wrapping to 0 past maxFrame. Leftover time is dropped.
func UpdateAnim(a AnimFrame, dt float64, maxFrame int) AnimFrame {
	if a.Period <= 0 {
		return a
	}

	a.Elapsed += dt
	if a.Elapsed >= a.Period {
		a.Elapsed = 0
		a.Source.X = float64(a.Frame) * a.Source.W
		a.Frame++
		if a.Frame > maxFrame {
			a.Frame = 0
		}
	}
	return a
}
