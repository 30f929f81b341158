package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickRate:        60,
		ScrollThreshold: 0.85,
		Boundary: RegionConfig{
			Start: Vec3{X: -1000, Y: -1000, Z: 1000},
			End:   Vec3{X: 1000, Y: 1000, Z: 0},
		},
		Physics: PhysicsConfig{
			MaxVelocity: Vec3{X: 3.5, Y: 3.5, Z: 1.5},
			Falloff:     Vec3{X: 0.25, Y: 0.25, Z: 0.05},
		},
		Entities: []EntityConfig{
			{Pos: Vec3{X: 100, Y: 200, Z: 5}},
		},
		Input: InputConfig{
			HoldTicks: 8,
		},
		Render: RenderConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
		Assets: AssetsConfig{
			Root:  "./assets",
			Index: "index.json",
		},
	}
}
