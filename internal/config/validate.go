package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks the values the simulation assumes are sane. The simulation
// itself does no validation; drivers call this once before a run.
func (c DasherConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: %w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	check(c.Driver.TickRate > 0, "driver.tick_rate must be positive, got %d", c.Driver.TickRate)
	check(c.Driver.MaxFrameTime > 0, "driver.max_frame_time must be positive, got %v", c.Driver.MaxFrameTime)

	check(validSheet(c.Player.Sheet), "player.sheet must have positive size and cells, got %+v", c.Player.Sheet)
	check(c.Player.MaxFrame >= 0 && c.Player.MaxFrame < c.Player.Sheet.Columns,
		"player.max_frame %d outside the first sheet row", c.Player.MaxFrame)
	check(c.Player.FramePeriod >= 0, "player.frame_period must not be negative, got %v", c.Player.FramePeriod)

	check(c.Obstacles.Count >= 1, "obstacles.count must be at least 1, got %d", c.Obstacles.Count)
	check(validSheet(c.Obstacles.Sheet), "obstacles.sheet must have positive size and cells, got %+v", c.Obstacles.Sheet)
	check(c.Obstacles.MaxFrame >= 0 && c.Obstacles.MaxFrame < c.Obstacles.Sheet.Columns,
		"obstacles.max_frame %d outside the first sheet row", c.Obstacles.MaxFrame)
	check(c.Obstacles.FramePeriod >= 0, "obstacles.frame_period must not be negative, got %v", c.Obstacles.FramePeriod)
	check(c.Obstacles.CollisionInset >= 0, "obstacles.collision_inset must not be negative, got %v", c.Obstacles.CollisionInset)

	check(c.Background.Scale > 0, "background.scale must be positive, got %v", c.Background.Scale)
	for i, l := range c.Background.Layers {
		check(l.Width > 0, "background.layers[%d].width must be positive, got %d", i, l.Width)
	}

	return errors.Join(errs...)
}

func validSheet(s SheetConfig) bool {
	return s.Width > 0 && s.Height > 0 && s.Columns > 0 && s.Rows > 0
}
