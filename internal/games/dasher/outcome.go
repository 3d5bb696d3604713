package dasher

import "github.com/vovakirdan/dapper-dasher/internal/core"

// Resolve derives this frame's outcome. Lost and Won are latched: once prev
// is terminal it is returned unchanged. A collision on the same frame the
// finish line is reached counts as a loss.
func Resolve(prev core.Outcome, collided bool, playerX, finishX float64) core.Outcome {
	if prev.Terminal() {
		return prev
	}
	if collided {
		return core.OutcomeLost
	}
	if playerX >= finishX {
		return core.OutcomeWon
	}
	return core.OutcomePlaying
}
