// Package config provides YAML-based configuration for the platformer:
// simulation constants, the starting scene, input timing, rendering scale
// and asset locations.
package config

// Config is the complete platformer configuration.
type Config struct {
	TickRate        int            `yaml:"tick_rate"`
	ScrollThreshold float64        `yaml:"scroll_threshold"`
	Boundary        RegionConfig   `yaml:"boundary"`
	Physics         PhysicsConfig  `yaml:"physics"`
	Player          PlayerConfig   `yaml:"player"`
	Entities        []EntityConfig `yaml:"entities"`
	Input           InputConfig    `yaml:"input"`
	Render          RenderConfig   `yaml:"render"`
	Assets          AssetsConfig   `yaml:"assets"`
}

// Vec3 is a 3-axis value in configuration files.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// RegionConfig is a box given by its start (top-left, high z) and end
// (bottom-right, ground z) corners.
type RegionConfig struct {
	Start Vec3 `yaml:"start"`
	End   Vec3 `yaml:"end"`
}

// PhysicsConfig defines velocity limits shared by every entity.
type PhysicsConfig struct {
	MaxVelocity Vec3 `yaml:"max_velocity"`
	Falloff     Vec3 `yaml:"falloff"`
}

// PlayerConfig defines where the player starts.
type PlayerConfig struct {
	Spawn Vec3 `yaml:"spawn"`
}

// EntityConfig defines one entity placed in the scene at start.
type EntityConfig struct {
	Pos    Vec3          `yaml:"pos"`
	Hitbox *RegionConfig `yaml:"hitbox,omitempty"` // nil keeps the default hitbox
}

// InputConfig defines how key presses map to held movement flags.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a press stays held; 0 = until release
}

// RenderConfig defines how world pixels map to terminal cells.
type RenderConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// AssetsConfig locates the asset index.
type AssetsConfig struct {
	Root  string `yaml:"root"`  // Directory asset paths are relative to
	Index string `yaml:"index"` // Index file name inside Root; empty disables assets
}
