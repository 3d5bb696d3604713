package dasher

// ParallaxLayer is one horizontally tiling background image.
// It is drawn twice, at X and at X+Span(), to cover the window.
type ParallaxLayer struct {
	Name  string
	X     float64 // Offset of the first copy, always in (-Span, 0]
	Speed float64 // px/s, scrolls left
	Width float64 // Texture width before scaling
	Scale float64
}

// Span returns the drawn width of one copy of the layer.
func (l ParallaxLayer) Span() float64 {
	return l.Width * l.Scale
}

// StepLayer scrolls the layer left and snaps it back to 0 once the first
// copy has fully left the window.
func StepLayer(l ParallaxLayer, dt float64) ParallaxLayer {
	l.X -= l.Speed * dt
	if l.X <= -l.Span() {
		l.X = 0
	}
	return l
}
