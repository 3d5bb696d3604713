package dasher

import (
	"slices"
	"time"

	"github.com/vovakirdan/dapper-dasher/internal/config"
	"github.com/vovakirdan/dapper-dasher/internal/core"
)

// World owns all mutable state of one run and advances it one tick at a
// time. It performs no I/O and, after construction, no allocation.
type World struct {
	cfg     config.DasherConfig
	phys    Physics
	groundY float64

	player    Player
	obstacles []Obstacle
	spare     []Obstacle   // Double buffer for StepObstacles
	rects     []core.RectF // Reused collision rectangles
	layers    []ParallaxLayer

	finishX     float64
	startFinish float64 // Distance from player to finish at the start
	outcome     core.Outcome
	elapsed     float64
}

// NewWorld lays out a fresh run: the player centered on the ground, the
// obstacles in a row starting just past the right edge of the window, and the
// finish line at the last obstacle. cfg is expected to be validated.
func NewWorld(cfg config.DasherConfig) *World {
	w := &World{
		cfg: cfg,
		phys: Physics{
			Gravity:      cfg.Physics.Gravity,
			JumpVelocity: cfg.Physics.JumpVelocity,
		},
		groundY: float64(cfg.Window.Height),
	}
	width := float64(cfg.Window.Width)

	pw, ph := cfg.Player.Sheet.CellWidth(), cfg.Player.Sheet.CellHeight()
	w.player = Player{
		Sprite: AnimFrame{
			Source: core.NewRectF(0, 0, pw, ph),
			Pos:    core.Vec2{X: width/2 - pw/2, Y: w.groundY - ph},
			Period: cfg.Player.FramePeriod,
		},
	}

	ow, oh := cfg.Obstacles.Sheet.CellWidth(), cfg.Obstacles.Sheet.CellHeight()
	w.obstacles = make([]Obstacle, cfg.Obstacles.Count)
	for i := range w.obstacles {
		w.obstacles[i] = Obstacle{
			Sprite: AnimFrame{
				Source: core.NewRectF(0, 0, ow, oh),
				Pos:    core.Vec2{X: width + cfg.Obstacles.Spacing*float64(i), Y: w.groundY - oh},
				Period: cfg.Obstacles.FramePeriod,
			},
		}
	}
	w.spare = make([]Obstacle, 0, len(w.obstacles))
	w.rects = make([]core.RectF, 0, len(w.obstacles))

	if n := len(w.obstacles); n > 0 {
		w.finishX = w.obstacles[n-1].Sprite.Pos.X
	}
	w.finishX += cfg.Finish.Offset
	w.startFinish = w.finishX - w.player.Sprite.Pos.X

	w.layers = make([]ParallaxLayer, len(cfg.Background.Layers))
	for i, l := range cfg.Background.Layers {
		w.layers[i] = ParallaxLayer{
			Name:  l.Name,
			Speed: l.Speed,
			Width: float64(l.Width),
			Scale: cfg.Background.Scale,
		}
	}

	return w
}

// Tick advances the run by dt seconds and returns the resulting outcome.
// The background always scrolls; sprites freeze once the run has ended.
func (w *World) Tick(dt float64, jump bool) core.Outcome {
	for i := range w.layers {
		w.layers[i] = StepLayer(w.layers[i], dt)
	}
	if w.outcome.Terminal() {
		return w.outcome
	}

	w.elapsed += dt
	w.player = StepPlayer(w.player, dt, w.phys, w.groundY, jump)

	w.spare = StepObstacles(w.spare, w.obstacles, dt, w.cfg.Obstacles.Velocity, w.cfg.Obstacles.MaxFrame)
	w.obstacles, w.spare = w.spare, w.obstacles

	// The finish line is a fixed world position, so it scrolls with the obstacles.
	w.finishX += w.cfg.Obstacles.Velocity * dt

	if !w.player.Airborne {
		w.player.Sprite = UpdateAnim(w.player.Sprite, dt, w.cfg.Player.MaxFrame)
	}

	w.rects = AppendBounds(w.rects, w.obstacles)
	collided := AnyCollision(w.player.Sprite.Bounds(), w.rects, w.cfg.Obstacles.CollisionInset)
	w.outcome = Resolve(w.outcome, collided, w.player.Sprite.Pos.X, w.finishX)
	return w.outcome
}

// Outcome returns the current outcome.
func (w *World) Outcome() core.Outcome {
	return w.outcome
}

// Player returns a copy of the player state.
func (w *World) Player() Player {
	return w.player
}

// Obstacles returns a copy of the obstacle states.
func (w *World) Obstacles() []Obstacle {
	return slices.Clone(w.obstacles)
}

// Layers returns a copy of the parallax layers, back to front.
func (w *World) Layers() []ParallaxLayer {
	return slices.Clone(w.layers)
}

// FinishLine returns the current x position of the finish line.
func (w *World) FinishLine() float64 {
	return w.finishX
}

// GroundY returns the y position of the ground line.
func (w *World) GroundY() float64 {
	return w.groundY
}

// Config returns the configuration the world was built from.
func (w *World) Config() config.DasherConfig {
	return w.cfg
}

// Elapsed returns the simulated time spent playing.
func (w *World) Elapsed() time.Duration {
	return time.Duration(w.elapsed * float64(time.Second))
}

// Progress returns how much of the initial distance to the finish line has
// been covered, in [0, 1].
func (w *World) Progress() float64 {
	if w.startFinish <= 0 {
		return 1
	}
	left := w.finishX - w.player.Sprite.Pos.X
	return core.ClampF(1-left/w.startFinish, 0, 1)
}
