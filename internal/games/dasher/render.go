package dasher

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vovakirdan/dapper-dasher/internal/core"
)

// Glyphs used by the terminal renderer.
const (
	GroundChar   = '═'
	FinishChar   = '┃'
	PlayerChar   = '█'
	PlayerTop    = '▄'
	PlayerTucked = '▀'
	NebulaHaze   = '░'
)

var (
	legGlyphs    = []rune{'╱', '╲', '│', '╲', '╱', '│'}
	nebulaGlyphs = []rune{'▓', '▒', '█', '▒', '▓', '▒', '█', '▒'}
)

// layerStyle draws one parallax layer as a city silhouette.
type layerStyle struct {
	glyph     rune
	color     core.Color
	maxHeight float64 // Fraction of the sky the tallest building reaches
}

var layerStyles = []layerStyle{
	{'░', core.ColorDarkGray, 0.75},
	{'▒', core.ColorSlate, 0.55},
	{'▓', core.ColorGray, 0.3},
}

// BuildingWidth is the width of one skyline building in texture pixels.
const BuildingWidth = 16

// projection maps world pixels onto screen cells. The ground line lands on
// the last row.
type projection struct {
	sx, sy float64
}

func newProjection(dst *core.Screen, worldW, worldH float64) projection {
	return projection{
		sx: float64(dst.Width()) / worldW,
		sy: float64(dst.Height()-1) / worldH,
	}
}

func (p projection) col(x float64) int { return int(math.Floor(x * p.sx)) }
func (p projection) row(y float64) int { return int(math.Floor(y * p.sy)) }

func (p projection) rect(r core.RectF) core.Rect {
	x0, y0 := p.col(r.X), p.row(r.Y)
	x1, y1 := p.col(r.Right()), p.row(r.Bottom())
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < 2 || dst.Height() < 2 {
		return
	}

	w := g.world
	proj := newProjection(dst, float64(g.cfg.Window.Width), float64(g.cfg.Window.Height))

	for i, l := range w.layers {
		drawLayer(dst, proj, l, i)
	}
	groundRow := dst.Height() - 1
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorWhite)

	outcome := w.Outcome()
	if !outcome.Terminal() {
		g.drawFinish(dst, proj, groundRow)
		for _, o := range w.obstacles {
			g.drawObstacle(dst, proj, o)
		}
		g.drawPlayer(dst, proj)
	}

	g.drawHUD(dst)

	if title, subtitle, ok := Banner(outcome, g.paused, w.Elapsed()); ok {
		drawCenteredMessage(dst, title, subtitle)
	}
}

// Banner returns the centered message for an ended or paused run.
func Banner(outcome core.Outcome, paused bool, elapsed time.Duration) (title, subtitle string, ok bool) {
	switch {
	case outcome == core.OutcomeLost:
		return "GAME OVER!", "Press R to restart", true
	case outcome == core.OutcomeWon:
		return "YOU WIN!", fmt.Sprintf("Time: %.1fs  |  Press R to play again", elapsed.Seconds()), true
	case paused:
		return "PAUSED", "Press P to resume", true
	}
	return "", "", false
}

// drawLayer fills the sky above the ground with building columns whose
// heights repeat every layer span, so the wrap back to 0 is seamless.
func drawLayer(dst *core.Screen, proj projection, l ParallaxLayer, index int) {
	style := layerStyles[index%len(layerStyles)]
	span := l.Span()
	if span <= 0 {
		return
	}
	sky := float64(dst.Height() - 1)
	blockW := BuildingWidth * l.Scale

	for c := 0; c < dst.Width(); c++ {
		x := (float64(c)+0.5)/proj.sx - l.X
		u := math.Mod(x, span)
		if u < 0 {
			u += span
		}
		block := int(u / blockW)
		height := int(sky * style.maxHeight * SkylineHeight(block, index))
		for y := dst.Height() - 1 - height; y < dst.Height()-1; y++ {
			dst.SetColored(c, y, style.glyph, style.color)
		}
	}
}

// SkylineHeight returns the height of a background building as a fraction
// of the layer's tallest, in [0.2, 1). It depends only on the building's
// index within one layer span, so a layer tiles seamlessly.
func SkylineHeight(block, layer int) float64 {
	h := uint32(block)*2654435761 ^ uint32(layer+1)*40503
	h ^= h >> 13
	return 0.2 + 0.8*float64(h%1000)/1000
}

func (g *Game) drawFinish(dst *core.Screen, proj projection, groundRow int) {
	c := proj.col(g.world.finishX)
	for y := 1; y < groundRow; y++ {
		dst.SetColored(c, y, FinishChar, core.ColorGreen)
	}
}

// shownFrame returns the sheet cell the sprite's source rectangle points at.
func shownFrame(a AnimFrame) int {
	if a.Source.W <= 0 {
		return 0
	}
	return int(a.Source.X / a.Source.W)
}

func (g *Game) drawObstacle(dst *core.Screen, proj projection, o Obstacle) {
	bounds := o.Sprite.Bounds()
	dst.DrawRect(proj.rect(bounds), NebulaHaze, core.ColorMagenta)

	hit := bounds.Inset(g.cfg.Obstacles.CollisionInset)
	if hit.Inverted() {
		return
	}
	glyph := nebulaGlyphs[shownFrame(o.Sprite)%len(nebulaGlyphs)]
	dst.DrawRect(proj.rect(hit), glyph, core.ColorBrightMagenta)
}

func (g *Game) drawPlayer(dst *core.Screen, proj projection) {
	p := g.world.player
	r := proj.rect(p.Sprite.Bounds())
	dst.DrawRect(r, PlayerChar, core.ColorBrightWhite)
	dst.DrawHLine(r.X, r.Y, r.W, PlayerTop, core.ColorBrightWhite)

	legs := r.Bottom() - 1
	if p.Airborne {
		dst.DrawHLine(r.X, legs, r.W, PlayerTucked, core.ColorBrightWhite)
		return
	}
	frame := shownFrame(p.Sprite)
	for i := 0; i < r.W; i++ {
		dst.SetColored(r.X+i, legs, legGlyphs[(i+frame)%len(legGlyphs)], core.ColorBrightWhite)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	w := g.world
	dst.DrawText(1, 0, fmt.Sprintf(" %.1fs ", w.Elapsed().Seconds()))

	const barW = 20
	filled := int(w.Progress() * barW)
	bar := fmt.Sprintf(" [%s%s] %3.0f%% ", strings.Repeat("█", filled), strings.Repeat("·", barW-filled), w.Progress()*100)
	dst.DrawTextColored(dst.Width()-len([]rune(bar))-1, 0, bar, core.ColorGreen)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextColored(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title, core.ColorYellow)
	dst.DrawText(box.X+(boxW-len([]rune(subtitle)))/2, box.Y+3, subtitle)
}
