package dasher

import (
	"testing"

	"github.com/vovakirdan/dapper-dasher/internal/core"
)

func TestAnyCollision(t *testing.T) {
	tests := []struct {
		name      string
		player    core.RectF
		obstacles []core.RectF
		inset     float64
		expected  bool
	}{
		{
			name:      "overlap without inset",
			player:    core.NewRectF(0, 0, 10, 10),
			obstacles: []core.RectF{core.NewRectF(5, 5, 10, 10)},
			expected:  true,
		},
		{
			name:      "disjoint",
			player:    core.NewRectF(0, 0, 10, 10),
			obstacles: []core.RectF{core.NewRectF(20, 20, 10, 10)},
			expected:  false,
		},
		{
			name:      "inset removes a padding-only overlap",
			player:    core.NewRectF(0, 0, 10, 10),
			obstacles: []core.RectF{core.NewRectF(8, 8, 20, 20)},
			inset:     3,
			expected:  false,
		},
		{
			name:      "over-inset obstacle is degenerate",
			player:    core.NewRectF(100, 300, 50, 50),
			obstacles: []core.RectF{core.NewRectF(140, 310, 50, 50)},
			inset:     50,
			expected:  false,
		},
		{
			name:      "fully inset nebula still hits at its center",
			player:    core.NewRectF(150, 350, 50, 50),
			obstacles: []core.RectF{core.NewRectF(110, 310, 100, 100)},
			inset:     50,
			expected:  true,
		},
		{
			name:      "fully inset nebula misses when its center is outside",
			player:    core.NewRectF(150, 350, 50, 50),
			obstacles: []core.RectF{core.NewRectF(0, 310, 100, 100)},
			inset:     50,
			expected:  false,
		},
		{
			name:   "any obstacle counts",
			player: core.NewRectF(100, 300, 50, 50),
			obstacles: []core.RectF{
				core.NewRectF(500, 300, 50, 50),
				core.NewRectF(900, 300, 50, 50),
				core.NewRectF(120, 320, 50, 50),
			},
			inset:    5,
			expected: true,
		},
		{
			name:     "no obstacles",
			player:   core.NewRectF(0, 0, 10, 10),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := AnyCollision(tc.player, tc.obstacles, tc.inset); got != tc.expected {
				t.Errorf("AnyCollision() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
