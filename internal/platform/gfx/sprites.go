package gfx

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/dapper-dasher/internal/config"
	"github.com/vovakirdan/dapper-dasher/internal/games/dasher"
)

var (
	skyColor    = color.RGBA{R: 18, G: 14, B: 38, A: 255}
	groundColor = color.RGBA{R: 70, G: 62, B: 90, A: 255}
	finishColor = color.RGBA{R: 90, G: 220, B: 120, A: 255}
	coatColor   = color.RGBA{R: 220, G: 200, B: 160, A: 255}
	skinColor   = color.RGBA{R: 240, G: 210, B: 180, A: 255}
	hatColor    = color.RGBA{R: 30, G: 30, B: 40, A: 255}

	layerColors = []color.RGBA{
		{R: 44, G: 36, B: 74, A: 255},
		{R: 60, G: 52, B: 100, A: 255},
		{R: 84, G: 70, B: 120, A: 255},
	}
	layerHeights = []float64{0.75, 0.55, 0.3}
)

// newPlayerSheet draws a runner in a top hat, one running pose per column.
func newPlayerSheet(s config.SheetConfig) *ebiten.Image {
	img := ebiten.NewImage(s.Width, s.Height)
	cw, ch := float32(s.CellWidth()), float32(s.CellHeight())

	for c := 0; c < s.Columns; c++ {
		ox := float32(c) * cw
		cx := ox + cw/2
		phase := 2 * math.Pi * float64(c) / float64(s.Columns)
		stride := float32(math.Sin(phase)) * cw * 0.18

		// Legs swing opposite to each other.
		hip := ch * 0.62
		vector.StrokeLine(img, cx, hip, cx+stride, ch*0.95, cw*0.06, hatColor, true)
		vector.StrokeLine(img, cx, hip, cx-stride, ch*0.95, cw*0.06, hatColor, true)

		vector.DrawFilledRect(img, cx-cw*0.12, ch*0.32, cw*0.24, ch*0.32, coatColor, true)
		vector.DrawFilledCircle(img, cx, ch*0.25, cw*0.09, skinColor, true)
		vector.DrawFilledRect(img, cx-cw*0.1, ch*0.04, cw*0.2, ch*0.12, hatColor, true)
		vector.DrawFilledRect(img, cx-cw*0.15, ch*0.15, cw*0.3, ch*0.03, hatColor, true)
	}
	return img
}

// newNebulaSheet draws a pulsing nebula. Columns are animation frames; rows
// are color variants.
func newNebulaSheet(s config.SheetConfig) *ebiten.Image {
	img := ebiten.NewImage(s.Width, s.Height)
	cw, ch := float32(s.CellWidth()), float32(s.CellHeight())

	for r := 0; r < s.Rows; r++ {
		tint := color.RGBA{
			R: uint8(180 + 10*r%60),
			G: uint8(40 + 20*r%120),
			B: uint8(200 - 15*r%80),
			A: 255,
		}
		for c := 0; c < s.Columns; c++ {
			cx := float32(c)*cw + cw/2
			cy := float32(r)*ch + ch/2
			pulse := float32(0.8 + 0.2*math.Sin(2*math.Pi*float64(c)/float64(s.Columns)))

			haze := color.NRGBA{R: tint.R, G: tint.G, B: tint.B, A: 70}
			vector.DrawFilledCircle(img, cx, cy, cw*0.45*pulse, haze, true)
			vector.DrawFilledCircle(img, cx, cy, cw*0.28*pulse, tint, true)
			vector.DrawFilledCircle(img, cx, cy, cw*0.1, color.White, true)
		}
	}
	return img
}

// newLayerImage draws one skyline texture. It is height tall before scaling
// and tiles horizontally.
func newLayerImage(width, height, index int) *ebiten.Image {
	img := ebiten.NewImage(width, height)
	clr := layerColors[index%len(layerColors)]
	maxH := layerHeights[index%len(layerHeights)] * float64(height)

	for x, block := 0, 0; x < width; x, block = x+dasher.BuildingWidth, block+1 {
		h := float32(maxH * dasher.SkylineHeight(block, index))
		w := float32(min(dasher.BuildingWidth, width-x))
		vector.DrawFilledRect(img, float32(x), float32(height)-h, w, h, clr, false)
	}
	return img
}
