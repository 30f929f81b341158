// Package engine drives a World: it snapshots input, ticks the simulation
// and hands the result to a Renderer. Backends own the loop timing; the
// engine only knows how to advance one step.
package engine

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/input"
	"github.com/vovakirdan/tui-platformer/internal/render"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

// Event reports a change in the player's state during one step.
type Event int

const (
	EventNone Event = iota
	EventJump       // Player left the ground
	EventLand       // Player touched down on the ground or an obstacle
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventJump:
		return "jump"
	case EventLand:
		return "land"
	default:
		return "none"
	}
}

// Engine couples a World with the input state its collaborators write to.
type Engine struct {
	World *world.World
	Input *input.State

	logger *log.Logger
	ticks  int
}

// New builds the scene from cfg and imports its assets. A nil logger
// discards output.
//
// An asset import failure is returned together with a usable engine:
// targets from entries before the failing one keep their textures, the
// rest draw as placeholders.
func New(cfg config.Config, logger *log.Logger) (*Engine, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w := NewWorld(cfg)
	err := LoadAssets(w, cfg.Assets, logger)

	logger.Debug("scene ready", "entities", w.Len(), "spawn", w.Player.Entity.Pos)
	return &Engine{
		World:  w,
		Input:  input.NewState(cfg.Input.HoldTicks),
		logger: logger,
	}, err
}

// Step advances the world by one tick using the currently held input.
func (e *Engine) Step() Event {
	p := e.World.Player.Entity
	wasInAir := p.InAir()

	in := e.Input.Snapshot()
	e.World.Tick(in)
	e.Input.Advance()
	e.ticks++

	ev := EventNone
	switch {
	case !wasInAir && p.InAir():
		ev = EventJump
	case wasInAir && !p.InAir():
		ev = EventLand
	}

	if ev != EventNone {
		e.logger.Debug("player event", "tick", e.ticks, "event", ev, "pos", p.Pos)
	}
	return ev
}

// Cycle steps the world and draws the new frame to r.
func (e *Engine) Cycle(r render.Renderer) Event {
	ev := e.Step()
	render.Frame(r, e.World)
	return ev
}

// Ticks returns the number of steps taken so far.
func (e *Engine) Ticks() int {
	return e.ticks
}

// Status is a one-line summary of the player for HUDs and logs.
type Status struct {
	Tick   int
	Pos    world.Coord
	Vel    world.Coord
	InAir  bool
	Scroll world.Vec2
	Intent input.Intent
}

// Status captures the player's current state.
func (e *Engine) Status() Status {
	p := e.World.Player.Entity
	return Status{
		Tick:   e.ticks,
		Pos:    p.Pos,
		Vel:    p.Vel.To,
		InAir:  p.InAir(),
		Scroll: e.World.Offset(),
		Intent: e.Input.Snapshot(),
	}
}

// String formats the status for the debug HUD.
func (s Status) String() string {
	air := "ground"
	if s.InAir {
		air = "air"
	}
	return fmt.Sprintf("pos %.1f %.1f %.1f  scroll %.0f %.0f  %s %s",
		s.Pos.X, s.Pos.Y, s.Pos.Z, s.Scroll.X, s.Scroll.Y, air, s.Intent)
}
