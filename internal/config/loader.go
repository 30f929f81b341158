package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the platformer configuration.
// Search order: customPath -> ~/.platformer/config.yaml -> ./configs/platformer.yaml -> embedded default
//
// Files only need to name the keys they change; everything else keeps its
// default value.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "platformer.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %d", c.TickRate)
	}
	if c.ScrollThreshold <= 0.5 || c.ScrollThreshold > 1 {
		return fmt.Errorf("scroll_threshold must be in (0.5, 1], got %v", c.ScrollThreshold)
	}
	if err := c.Boundary.validate("boundary"); err != nil {
		return err
	}
	for i, e := range c.Entities {
		if e.Hitbox != nil {
			if err := e.Hitbox.validate(fmt.Sprintf("entities[%d].hitbox", i)); err != nil {
				return err
			}
		}
	}
	if c.Input.HoldTicks < 0 {
		return fmt.Errorf("input.hold_ticks must not be negative, got %d", c.Input.HoldTicks)
	}
	if c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0 {
		return fmt.Errorf("render cell size must be positive, got %dx%d", c.Render.CellWidth, c.Render.CellHeight)
	}
	return nil
}

// validate checks the corner ordering of a region.
func (r RegionConfig) validate(name string) error {
	if r.Start.X > r.End.X || r.Start.Y > r.End.Y {
		return fmt.Errorf("%s: start must be above and left of end", name)
	}
	if r.Start.Z < r.End.Z {
		return fmt.Errorf("%s: start.z must not be below end.z", name)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", filename)
}
