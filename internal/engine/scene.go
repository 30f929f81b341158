package engine

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/asset"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

// NewWorld builds the starting scene described by cfg.
func NewWorld(cfg config.Config) *world.World {
	w := world.New()
	w.Boundary = region(cfg.Boundary)
	w.ScrollThreshold = cfg.ScrollThreshold

	p := w.Player.Entity
	applyPhysics(p, cfg.Physics)
	p.Pos = coord(cfg.Player.Spawn)

	for _, ec := range cfg.Entities {
		e := world.NewEntity()
		applyPhysics(e, cfg.Physics)
		e.Pos = coord(ec.Pos)
		if ec.Hitbox != nil {
			e.Hitbox = region(*ec.Hitbox)
		}
		w.Push(e)
	}
	return w
}

// LoadAssets imports the asset index named by cfg into w. A missing index
// is not an error; the scene keeps its placeholder rectangles.
func LoadAssets(w *world.World, cfg config.AssetsConfig, logger *log.Logger) error {
	if cfg.Index == "" {
		return nil
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	imp := asset.NewImporter(cfg.Root, logger)
	index, err := imp.LoadIndex(cfg.Index)
	if errors.Is(err, os.ErrNotExist) {
		logger.Debug("no asset index", "root", cfg.Root, "index", cfg.Index)
		return nil
	}
	if err != nil {
		return err
	}

	if err := imp.ImportAll(index, w); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	return nil
}

func applyPhysics(e *world.Entity, p config.PhysicsConfig) {
	e.Vel.Max = coord(p.MaxVelocity)
	e.Vel.Falloff = coord(p.Falloff)
}

func coord(v config.Vec3) world.Coord {
	return world.Coord{X: v.X, Y: v.Y, Z: v.Z}
}

func region(r config.RegionConfig) world.Region {
	return world.Region{Start: coord(r.Start), End: coord(r.End)}
}
