package config

import (
	_ "embed"
)

//go:embed defaults/dasher.yaml
var defaultDasherYAML []byte

// DefaultDasherConfig returns the built-in configuration. It matches the
// embedded defaults/dasher.yaml.
func DefaultDasherConfig() DasherConfig {
	return DasherConfig{
		Window: WindowConfig{
			Width:  512,
			Height: 380,
		},
		Driver: DriverConfig{
			TickRate:     60,
			MaxFrameTime: 0.1,
		},
		Physics: PhysicsConfig{
			Gravity:      1000,
			JumpVelocity: 600,
		},
		Player: PlayerConfig{
			Sheet:       SheetConfig{Width: 768, Height: 128, Columns: 6, Rows: 1},
			MaxFrame:    5,
			FramePeriod: 1.0 / 12.0,
		},
		Obstacles: ObstacleConfig{
			Count:          10,
			Spacing:        300,
			Velocity:       -200,
			Sheet:          SheetConfig{Width: 800, Height: 800, Columns: 8, Rows: 8},
			MaxFrame:       7,
			FramePeriod:    0,
			CollisionInset: 50,
		},
		Finish: FinishConfig{
			Offset: 0,
		},
		Background: BackgroundConfig{
			Scale: 2,
			Layers: []LayerConfig{
				{Name: "far", Width: 272, Speed: 20},
				{Name: "mid", Width: 272, Speed: 40},
				{Name: "fore", Width: 352, Speed: 80},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDasherYAML
}
