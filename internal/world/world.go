package world

import (
	"image"

	"github.com/vovakirdan/tui-platformer/internal/input"
)

// DefaultScrollThreshold is the fraction of the viewport at which the camera
// starts following the player.
const DefaultScrollThreshold = 0.85

// Handle identifies an entity inside a World. Handles stay valid until the
// entity is removed and are never reused.
type Handle int

// Vec2 is a screen-plane pair, used for camera offsets and viewport sizes.
type Vec2 struct {
	X, Y float64
}

// World owns the player, all other entities, the boundary and the camera.
type World struct {
	Player          *Player
	Boundary        Region
	ScrollThreshold float64
	Background      image.Image // Optional level backdrop

	entities []*Entity // Indexed by Handle; nil marks a removed slot
	scroll   Vec2
}

// New creates an empty world with the default boundary and a fresh player.
func New() *World {
	return &World{
		Player:          NewPlayer(),
		Boundary:        DefaultBoundary(),
		ScrollThreshold: DefaultScrollThreshold,
	}
}

// Push adds an entity to the world and returns its handle.
func (w *World) Push(e *Entity) Handle {
	w.entities = append(w.entities, e)
	return Handle(len(w.entities) - 1)
}

// Remove drops the entity behind h. It reports false if h is unknown.
func (w *World) Remove(h Handle) bool {
	if w.Entity(h) == nil {
		return false
	}
	w.entities[h] = nil
	return true
}

// Entity returns the entity behind h, or nil.
func (w *World) Entity(h Handle) *Entity {
	if h < 0 || int(h) >= len(w.entities) {
		return nil
	}
	return w.entities[h]
}

// Len returns the number of live entities, not counting the player.
func (w *World) Len() int {
	n := 0
	for _, e := range w.entities {
		if e != nil {
			n++
		}
	}
	return n
}

// Each calls fn for every live entity in handle order.
func (w *World) Each(fn func(Handle, *Entity)) {
	for i, e := range w.entities {
		if e != nil {
			fn(Handle(i), e)
		}
	}
}

// Offset returns the current camera offset.
func (w *World) Offset() Vec2 {
	return w.scroll
}

// Tick advances the simulation by one step.
//
// Every collider set comes from a snapshot taken before anything moves. The
// player collides with all entities; each entity collides with every other
// entity but never with the player.
func (w *World) Tick(in input.Intent) {
	snap := w.snapshot()

	all := make([]Region, len(snap))
	for i, c := range snap {
		all[i] = c.region
	}
	w.Player.Tick(in, all)
	w.Player.Entity.containIn(w.Boundary)

	var others []Region
	for _, self := range snap {
		others = excluding(snap, self.owner, others[:0])

		e := w.entities[self.owner]
		e.Tick(others)
		e.containIn(w.Boundary)
	}
}

// candidate is an entity's world-space region captured before a tick.
type candidate struct {
	owner  Handle
	region Region
}

// snapshot captures every live entity's region in handle order.
func (w *World) snapshot() []candidate {
	snap := make([]candidate, 0, len(w.entities))
	w.Each(func(h Handle, e *Entity) {
		snap = append(snap, candidate{owner: h, region: e.AbsolutePos()})
	})
	return snap
}

// excluding appends to dst every snapshot region not owned by self.
func excluding(snap []candidate, self Handle, dst []Region) []Region {
	for _, c := range snap {
		if c.owner != self {
			dst = append(dst, c.region)
		}
	}
	return dst
}

// Scroll recomputes the camera offset so the player stays inside the
// central band of a viewport of the given size. center is the screen
// position of the world origin at zero scroll.
//
// On each axis, if the player projects past size*threshold (or before
// size*(1-threshold)) the offset moves by exactly the overshoot, snapping
// the player onto that edge of the band.
func (w *World) Scroll(center, size Vec2) {
	pos := w.Player.Entity.Pos
	w.scroll.X = scrollAxis(w.scroll.X, pos.X, center.X, size.X, w.ScrollThreshold)
	w.scroll.Y = scrollAxis(w.scroll.Y, pos.Y, center.Y, size.Y, w.ScrollThreshold)
}

// scrollAxis applies the band rule on a single axis.
func scrollAxis(scroll, pos, center, size, threshold float64) float64 {
	visible := pos - scroll + center

	if high := size * threshold; visible > high {
		return scroll + visible - high
	}
	if low := size * (1 - threshold); visible < low {
		return scroll + visible - low
	}
	return scroll
}

// Clone returns a deep copy of the world for use outside the simulation
// goroutine. Textures are shared; they are never mutated.
func (w *World) Clone() *World {
	c := *w
	c.Player = &Player{Entity: w.Player.Entity.clone()}
	c.entities = make([]*Entity, len(w.entities))
	for i, e := range w.entities {
		if e != nil {
			c.entities[i] = e.clone()
		}
	}
	return &c
}
