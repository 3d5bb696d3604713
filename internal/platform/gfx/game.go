// Package gfx runs Dapper Dasher in a desktop window with Ebitengine.
package gfx

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/dapper-dasher/internal/config"
	"github.com/vovakirdan/dapper-dasher/internal/core"
	"github.com/vovakirdan/dapper-dasher/internal/games/dasher"
)

// Game implements ebiten.Game on top of a dasher.World.
type Game struct {
	cfg    config.DasherConfig
	world  *dasher.World
	logger *log.Logger
	paused bool

	player *ebiten.Image
	nebula *ebiten.Image
	layers []*ebiten.Image
}

// NewGame creates a window game for the given (validated) configuration.
func NewGame(cfg config.DasherConfig, logger *log.Logger) *Game {
	return &Game{
		cfg:    cfg,
		world:  dasher.NewWorld(cfg),
		logger: logger,
	}
}

// loadImages builds the sprite sheets and background textures.
func (g *Game) loadImages() {
	g.player = newPlayerSheet(g.cfg.Player.Sheet)
	g.nebula = newNebulaSheet(g.cfg.Obstacles.Sheet)

	texH := int(math.Ceil(float64(g.cfg.Window.Height) / g.cfg.Background.Scale))
	g.layers = make([]*ebiten.Image, len(g.cfg.Background.Layers))
	for i, l := range g.cfg.Background.Layers {
		g.layers[i] = newLayerImage(l.Width, texH, i)
	}
}

// Update advances the world by one fixed tick.
func (g *Game) Update() error {
	if g.player == nil {
		g.loadImages()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	outcome := g.world.Outcome()
	if outcome.Terminal() {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.world = dasher.NewWorld(g.cfg)
			g.logger.Info("run restarted")
			return nil
		}
	} else if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
		g.logger.Debug("pause toggled", "paused", g.paused)
	}
	if g.paused {
		return nil
	}

	dt := 1 / float64(ebiten.TPS())
	jump := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if next := g.world.Tick(dt, jump); next != outcome {
		g.logger.Info("run ended", "outcome", next, "elapsed", g.world.Elapsed())
	}
	return nil
}

// Draw paints the background, the sprites while the run is live, and the
// HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	if g.player == nil {
		return
	}

	for i, l := range g.world.Layers() {
		drawLayer(screen, g.layers[i], l)
	}

	w := g.world
	groundY := float32(w.GroundY())
	vector.DrawFilledRect(screen, 0, groundY-2, float32(g.cfg.Window.Width), 2, groundColor, false)

	if !w.Outcome().Terminal() {
		vector.DrawFilledRect(screen, float32(w.FinishLine()), 0, 4, groundY, finishColor, false)
		for _, o := range w.Obstacles() {
			drawSprite(screen, g.nebula, o.Sprite)
		}
		drawSprite(screen, g.player, w.Player().Sprite)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.1fs  %3.0f%%", w.Elapsed().Seconds(), w.Progress()*100), 8, 8)
	if title, subtitle, ok := dasher.Banner(w.Outcome(), g.paused, w.Elapsed()); ok {
		cx, cy := g.cfg.Window.Width/2, g.cfg.Window.Height/2
		ebitenutil.DebugPrintAt(screen, title, cx-len(title)*3, cy-12)
		ebitenutil.DebugPrintAt(screen, subtitle, cx-len(subtitle)*3, cy+4)
	}
}

// drawLayer draws two scaled copies of a background texture side by side.
func drawLayer(screen, img *ebiten.Image, l dasher.ParallaxLayer) {
	for _, x := range []float64{l.X, l.X + l.Span()} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(l.Scale, l.Scale)
		op.GeoM.Translate(x, 0)
		screen.DrawImage(img, op)
	}
}

// drawSprite draws the sheet cell selected by the sprite's source rectangle.
func drawSprite(screen, sheet *ebiten.Image, a dasher.AnimFrame) {
	sub, ok := sheet.SubImage(sourceRect(a.Source)).(*ebiten.Image)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(a.Pos.X, a.Pos.Y)
	screen.DrawImage(sub, op)
}

func sourceRect(r core.RectF) image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.Right()), int(r.Bottom()))
}

// Layout keeps the logical screen at the configured window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.DasherConfig, tps int, logger *log.Logger) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("Dapper Dasher")
	ebiten.SetTPS(tps)

	logger.Info("window opened", "width", cfg.Window.Width, "height", cfg.Window.Height, "tps", tps)
	if err := ebiten.RunGame(NewGame(cfg, logger)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gfx: %w", err)
	}
	return nil
}
