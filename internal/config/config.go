// Package config provides YAML-based configuration loading, difficulty
// presets and validation for Dapper Dasher.
package config

// DasherConfig contains every constant the simulation and its drivers need.
// All of it is fixed for the duration of a run.
type DasherConfig struct {
	Window     WindowConfig     `yaml:"window"`
	Driver     DriverConfig     `yaml:"driver"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Finish     FinishConfig     `yaml:"finish"`
	Background BackgroundConfig `yaml:"background"`
}

// WindowConfig defines the world size in pixels. The ground line is the
// bottom edge of the window.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DriverConfig defines how a driver paces the simulation.
type DriverConfig struct {
	TickRate     int     `yaml:"tick_rate"`      // Ticks per second
	MaxFrameTime float64 `yaml:"max_frame_time"` // Seconds; longer frames are clamped
}

// PhysicsConfig defines the jump physics, in pixels and seconds.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // px/s², positive is downward
	JumpVelocity float64 `yaml:"jump_velocity"` // px/s, subtracted from velocity on jump
}

// SheetConfig describes a sprite sheet made of equally sized cells.
type SheetConfig struct {
	Width   int `yaml:"width"`   // Texture width in pixels
	Height  int `yaml:"height"`  // Texture height in pixels
	Columns int `yaml:"columns"` // Cells per row
	Rows    int `yaml:"rows"`    // Cells per column
}

// CellWidth returns the width of one cell.
func (s SheetConfig) CellWidth() float64 {
	return float64(s.Width) / float64(s.Columns)
}

// CellHeight returns the height of one cell.
func (s SheetConfig) CellHeight() float64 {
	return float64(s.Height) / float64(s.Rows)
}

// PlayerConfig defines the player sprite.
type PlayerConfig struct {
	Sheet       SheetConfig `yaml:"sheet"`
	MaxFrame    int         `yaml:"max_frame"`
	FramePeriod float64     `yaml:"frame_period"` // Seconds per animation frame
}

// ObstacleConfig defines the obstacle row.
type ObstacleConfig struct {
	Count          int         `yaml:"count"`
	Spacing        float64     `yaml:"spacing"`  // Horizontal distance between obstacles, px
	Velocity       float64     `yaml:"velocity"` // px/s, negative scrolls left
	Sheet          SheetConfig `yaml:"sheet"`
	MaxFrame       int         `yaml:"max_frame"`
	FramePeriod    float64     `yaml:"frame_period"`    // 0 keeps obstacles on their first frame
	CollisionInset float64     `yaml:"collision_inset"` // Sprite padding excluded from collision, px
}

// FinishConfig places the finish line relative to the last obstacle.
type FinishConfig struct {
	Offset float64 `yaml:"offset"`
}

// BackgroundConfig defines the parallax layers, back to front.
type BackgroundConfig struct {
	Scale  float64       `yaml:"scale"`
	Layers []LayerConfig `yaml:"layers"`
}

// LayerConfig defines one parallax layer.
type LayerConfig struct {
	Name  string  `yaml:"name"`
	Width int     `yaml:"width"` // Texture width before scaling
	Speed float64 `yaml:"speed"` // px/s, scrolls left
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
