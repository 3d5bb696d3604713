package dasher

import (
	"testing"
	"time"

	"github.com/vovakirdan/dapper-dasher/internal/config"
	"github.com/vovakirdan/dapper-dasher/internal/core"
)

const tickDT = 1.0 / 64.0

// jumpAhead jumps when the collision core of the next obstacle is within d
// pixels of the player's right edge.
func jumpAhead(w *World, d float64) bool {
	p := w.Player()
	inset := w.Config().Obstacles.CollisionInset
	for _, o := range w.Obstacles() {
		b := o.Sprite.Bounds()
		if b.Right()-inset > p.Sprite.Pos.X {
			return b.X+inset-(p.Sprite.Pos.X+p.Sprite.Source.W) <= d
		}
	}
	return false
}

// runUntilEnd ticks w until the run ends and returns the number of ticks.
func runUntilEnd(t *testing.T, w *World, jump func(*World) bool) int {
	t.Helper()
	for n := 1; n <= 5000; n++ {
		if w.Tick(tickDT, jump(w)).Terminal() {
			return n
		}
	}
	t.Fatal("run did not end")
	return 0
}

func never(*World) bool { return false }

func TestNewWorldLayout(t *testing.T) {
	w := NewWorld(config.DefaultDasherConfig())

	p := w.Player()
	if p.Sprite.Pos != (core.Vec2{X: 192, Y: 252}) {
		t.Errorf("player at %+v, expected (192, 252)", p.Sprite.Pos)
	}
	if p.Sprite.Source != core.NewRectF(0, 0, 128, 128) {
		t.Errorf("player source = %+v", p.Sprite.Source)
	}
	if p.Airborne || p.Velocity != 0 {
		t.Errorf("player should start grounded at rest, got %+v", p)
	}

	obs := w.Obstacles()
	if len(obs) != 10 {
		t.Fatalf("len(obstacles) = %d, expected 10", len(obs))
	}
	for i, o := range obs {
		want := core.Vec2{X: 512 + 300*float64(i), Y: 280}
		if o.Sprite.Pos != want {
			t.Errorf("obstacle %d at %+v, expected %+v", i, o.Sprite.Pos, want)
		}
	}
	if w.FinishLine() != 3212 {
		t.Errorf("FinishLine() = %v, expected 3212", w.FinishLine())
	}
	if w.Outcome() != core.OutcomePlaying {
		t.Errorf("Outcome() = %v, expected playing", w.Outcome())
	}
	if w.Progress() != 0 {
		t.Errorf("Progress() = %v, expected 0", w.Progress())
	}
	if len(w.Layers()) != 3 {
		t.Errorf("len(Layers()) = %d, expected 3", len(w.Layers()))
	}
}

func TestWorldFinishOffset(t *testing.T) {
	cfg := config.DefaultDasherConfig()
	cfg.Finish.Offset = 150
	w := NewWorld(cfg)
	if w.FinishLine() != 3362 {
		t.Errorf("FinishLine() = %v, expected 3362", w.FinishLine())
	}
}

func TestWorldNoJumpLoses(t *testing.T) {
	w := NewWorld(config.DefaultDasherConfig())

	n := runUntilEnd(t, w, never)
	// The first nebula's center enters the player after 78 ticks.
	if n != 78 {
		t.Errorf("lost after %d ticks, expected 78", n)
	}
	if w.Outcome() != core.OutcomeLost {
		t.Errorf("Outcome() = %v, expected lost", w.Outcome())
	}
}

func TestWorldJumpingWins(t *testing.T) {
	for _, d := range []float64{30, 45, 60} {
		w := NewWorld(config.DefaultDasherConfig())
		n := runUntilEnd(t, w, func(w *World) bool { return jumpAhead(w, d) })

		if w.Outcome() != core.OutcomeWon {
			t.Fatalf("d=%v: Outcome() = %v, expected won", d, w.Outcome())
		}
		// The finish line starts 3020px ahead and closes at 3.125px per tick.
		if n != 967 {
			t.Errorf("d=%v: won after %d ticks, expected 967", d, n)
		}
		if w.Progress() != 1 {
			t.Errorf("d=%v: Progress() = %v, expected 1", d, w.Progress())
		}
	}
}

func TestWorldPresetsAreWinnable(t *testing.T) {
	tests := []struct {
		preset config.DifficultyPreset
		d      float64
	}{
		{config.DifficultyEasy, 30},
		{config.DifficultyNormal, 45},
		{config.DifficultyHard, 95},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := config.DefaultDasherConfig()
			config.ApplyDasherPreset(&cfg, tc.preset)
			w := NewWorld(cfg)
			runUntilEnd(t, w, func(w *World) bool { return jumpAhead(w, tc.d) })
			if w.Outcome() != core.OutcomeWon {
				t.Errorf("Outcome() = %v, expected won", w.Outcome())
			}
		})
	}
}

func TestWorldDeterministic(t *testing.T) {
	a := NewWorld(config.DefaultDasherConfig())
	b := NewWorld(config.DefaultDasherConfig())

	for i := 0; i < 400; i++ {
		jump := i%37 == 0
		oa := a.Tick(tickDT, jump)
		ob := b.Tick(tickDT, jump)
		if oa != ob {
			t.Fatalf("tick %d: outcomes diverged: %v vs %v", i, oa, ob)
		}
		if a.Player() != b.Player() {
			t.Fatalf("tick %d: players diverged", i)
		}
	}
	oa, ob := a.Obstacles(), b.Obstacles()
	for i := range oa {
		if oa[i] != ob[i] {
			t.Errorf("obstacle %d diverged: %+v vs %+v", i, oa[i], ob[i])
		}
	}
}

func TestWorldFreezesAfterEnd(t *testing.T) {
	w := NewWorld(config.DefaultDasherConfig())
	runUntilEnd(t, w, never)

	player := w.Player()
	obstacles := w.Obstacles()
	finish := w.FinishLine()
	elapsed := w.Elapsed()
	layer := w.Layers()[0].X

	for i := 0; i < 10; i++ {
		if got := w.Tick(tickDT, true); got != core.OutcomeLost {
			t.Fatalf("Tick() = %v after the run ended, expected lost", got)
		}
	}

	if w.Player() != player {
		t.Error("player moved after the run ended")
	}
	for i, o := range w.Obstacles() {
		if o != obstacles[i] {
			t.Errorf("obstacle %d moved after the run ended", i)
		}
	}
	if w.FinishLine() != finish {
		t.Error("finish line moved after the run ended")
	}
	if w.Elapsed() != elapsed {
		t.Errorf("Elapsed() = %v, expected it to stop at %v", w.Elapsed(), elapsed)
	}
	if w.Layers()[0].X == layer {
		t.Error("background should keep scrolling after the run ended")
	}
}

func TestWorldAirborneFreezesAnimation(t *testing.T) {
	w := NewWorld(config.DefaultDasherConfig())
	w.Tick(tickDT, true)

	start := w.Player().Sprite
	for i := 0; i < 20; i++ {
		w.Tick(tickDT, false)
		p := w.Player()
		if !p.Airborne {
			t.Fatalf("tick %d: player should be airborne", i)
		}
		if p.Sprite.Frame != start.Frame || p.Sprite.Elapsed != start.Elapsed || p.Sprite.Source != start.Source {
			t.Fatalf("tick %d: animation advanced mid-air", i)
		}
	}
}

func TestWorldGroundedAnimationRuns(t *testing.T) {
	w := NewWorld(config.DefaultDasherConfig())

	// 1/12s per frame: the sixth tick of 1/64s crosses the first period.
	for i := 0; i < 6; i++ {
		w.Tick(tickDT, false)
	}
	if f := w.Player().Sprite.Frame; f != 1 {
		t.Errorf("Frame = %d, expected 1", f)
	}
}

func TestWorldElapsed(t *testing.T) {
	w := NewWorld(config.DefaultDasherConfig())
	for i := 0; i < 64; i++ {
		w.Tick(tickDT, false)
	}
	if w.Elapsed() != time.Second {
		t.Errorf("Elapsed() = %v, expected 1s", w.Elapsed())
	}
}

func TestWorldObstaclesIsACopy(t *testing.T) {
	w := NewWorld(config.DefaultDasherConfig())
	obs := w.Obstacles()
	obs[0].Sprite.Pos.X = -1000
	if w.Obstacles()[0].Sprite.Pos.X != 512 {
		t.Error("Obstacles() exposed internal state")
	}
}
