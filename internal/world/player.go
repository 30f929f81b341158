package world

import "github.com/vovakirdan/tui-platformer/internal/input"

// Player is the entity steered by movement intent.
type Player struct {
	Entity *Entity
}

// NewPlayer creates a player around a fresh entity.
func NewPlayer() *Player {
	return &Player{Entity: NewEntity()}
}

// Tick turns the intent into velocity impulses and then advances the
// underlying entity. Directions nudge Vel.To by twice the falloff so a held
// key keeps accelerating up to the cap; jump adds the full Max.Z impulse
// only when grounded.
func (p *Player) Tick(in input.Intent, collideWith []Region) {
	e := p.Entity
	v := &e.Vel

	if in.Up {
		v.To.Y -= v.Falloff.Y * 2
	}
	if in.Down {
		v.To.Y += v.Falloff.Y * 2
	}
	if in.Left {
		v.To.X -= v.Falloff.X * 2
	}
	if in.Right {
		v.To.X += v.Falloff.X * 2
	}
	if in.Jump && !e.inAir {
		v.To.Z += v.Max.Z
		e.inAir = true
	}

	e.Tick(collideWith)
}
