package dasher

import (
	"testing"

	"github.com/vovakirdan/dapper-dasher/internal/core"
)

func obstacleRow(n int, period float64) []Obstacle {
	obs := make([]Obstacle, n)
	for i := range obs {
		obs[i] = Obstacle{Sprite: AnimFrame{
			Source: core.NewRectF(0, 0, 100, 100),
			Pos:    core.Vec2{X: 512 + 300*float64(i), Y: 280},
			Period: period,
		}}
	}
	return obs
}

func TestStepObstaclesMovesEachIndependently(t *testing.T) {
	src := obstacleRow(3, 0)
	got := StepObstacles(nil, src, 0.5, -200, 7)

	if len(got) != 3 {
		t.Fatalf("len = %d, expected 3", len(got))
	}
	for i, o := range got {
		if want := 512 + 300*float64(i) - 100; o.Sprite.Pos.X != want {
			t.Errorf("obstacle %d at x=%v, expected %v", i, o.Sprite.Pos.X, want)
		}
		if o.Sprite.Pos.Y != 280 {
			t.Errorf("obstacle %d moved vertically to %v", i, o.Sprite.Pos.Y)
		}
		if o.Sprite.Frame != 0 {
			t.Errorf("zero-period obstacle %d animated to frame %d", i, o.Sprite.Frame)
		}
	}
	if src[0].Sprite.Pos.X != 512 {
		t.Error("source slice was modified")
	}
}

func TestStepObstaclesAnimates(t *testing.T) {
	got := StepObstacles(nil, obstacleRow(2, 0.25), 0.25, -200, 7)
	for i, o := range got {
		if o.Sprite.Frame != 1 {
			t.Errorf("obstacle %d Frame = %d, expected 1", i, o.Sprite.Frame)
		}
	}
}

func TestStepObstaclesNeverWrap(t *testing.T) {
	obs := obstacleRow(1, 0)
	buf := make([]Obstacle, 0, 1)
	for i := 0; i < 100; i++ {
		buf = StepObstacles(buf, obs, 1, -200, 7)
		obs, buf = buf, obs
	}
	if want := 512.0 - 200*100; obs[0].Sprite.Pos.X != want {
		t.Errorf("x = %v, expected %v", obs[0].Sprite.Pos.X, want)
	}
}

func TestStepObstaclesReusesDst(t *testing.T) {
	src := obstacleRow(4, 0)
	dst := make([]Obstacle, 0, 4)
	got := StepObstacles(dst, src, 0.1, -200, 7)
	if &got[0] != &dst[:1][0] {
		t.Error("StepObstacles should write into dst when it has capacity")
	}
}

func TestAppendBounds(t *testing.T) {
	rects := AppendBounds(nil, obstacleRow(2, 0))
	want := []core.RectF{
		core.NewRectF(512, 280, 100, 100),
		core.NewRectF(812, 280, 100, 100),
	}
	if len(rects) != len(want) {
		t.Fatalf("len = %d, expected %d", len(rects), len(want))
	}
	for i := range want {
		if rects[i] != want[i] {
			t.Errorf("rect %d = %+v, expected %+v", i, rects[i], want[i])
		}
	}
}
