package config

import "fmt"

// presetTuning is how a preset adjusts the configured obstacles.
type presetTuning struct {
	speedFactor float64 // Multiplies obstacles.velocity
	insetDelta  float64 // Added to obstacles.collision_inset
}

var presets = map[DifficultyPreset]presetTuning{
	DifficultyEasy:   {speedFactor: 0.75, insetDelta: 0},
	DifficultyNormal: {speedFactor: 1.0, insetDelta: 0},
	DifficultyHard:   {speedFactor: 1.25, insetDelta: -5},
}

// ParsePreset converts a CLI value to a preset. The empty string means
// "use the config as written" and is returned as-is.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return "", nil
	}
	p := DifficultyPreset(s)
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
	return p, nil
}

// ApplyDasherPreset modifies the config based on a difficulty preset.
// Unknown and empty presets leave the config untouched.
func ApplyDasherPreset(cfg *DasherConfig, preset DifficultyPreset) {
	t, ok := presets[preset]
	if !ok {
		return
	}
	cfg.Obstacles.Velocity *= t.speedFactor
	cfg.Obstacles.CollisionInset = max(cfg.Obstacles.CollisionInset+t.insetDelta, 0)
}
