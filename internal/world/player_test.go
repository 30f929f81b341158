package world

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/input"
)

func TestPlayerJump(t *testing.T) {
	p := NewPlayer()
	p.Tick(input.Intent{Jump: true}, nil)

	e := p.Entity
	if !e.InAir() {
		t.Fatal("player should be airborne after jumping")
	}
	// Impulse of Max.Z lands before the same tick's falloff
	want := e.Vel.Max.Z - e.Vel.Falloff.Z
	if !approx(e.Vel.To.Z, want) {
		t.Errorf("Vel.To.Z = %v, expected %v", e.Vel.To.Z, want)
	}
	if !approx(e.Pos.Z, want) {
		t.Errorf("Pos.Z = %v, expected %v", e.Pos.Z, want)
	}
}

func TestPlayerNoAirJump(t *testing.T) {
	p := NewPlayer()
	p.Tick(input.Intent{Jump: true}, nil)
	before := p.Entity.Vel.To.Z

	p.Tick(input.Intent{Jump: true}, nil)
	after := p.Entity.Vel.To.Z

	if !approx(after, before-p.Entity.Vel.Falloff.Z) {
		t.Errorf("second jump changed velocity: %v -> %v", before, after)
	}
}

// Pins the uncapped z behaviour: the jump arc is decided by the impulse and
// gravity alone.
func TestPlayerJumpArc(t *testing.T) {
	p := NewPlayer()
	p.Tick(input.Intent{Jump: true}, nil)

	peak := p.Entity.Pos.Z
	ticks := 1
	for p.Entity.InAir() && ticks < 1000 {
		p.Tick(input.Intent{}, nil)
		if p.Entity.Pos.Z > peak {
			peak = p.Entity.Pos.Z
		}
		ticks++
	}

	// 1.45 + 1.40 + ... + 0.05 = 0.05 * (29*30/2)
	if !approx(peak, 21.75) {
		t.Errorf("peak = %v, expected 21.75", peak)
	}
	// The descent mirrors the ascent; rounding decides the final tick
	if ticks < 59 || ticks > 60 {
		t.Errorf("airtime = %d ticks, expected 59 or 60", ticks)
	}
	if p.Entity.Pos.Z != 0 {
		t.Errorf("Pos.Z = %v after landing", p.Entity.Pos.Z)
	}
}

func TestPlayerDirections(t *testing.T) {
	tests := []struct {
		name  string
		in    input.Intent
		wantX float64
		wantY float64
	}{
		{"right", input.Intent{Right: true}, 0.25, 0},
		{"left", input.Intent{Left: true}, -0.25, 0},
		{"up", input.Intent{Up: true}, 0, -0.25},
		{"down", input.Intent{Down: true}, 0, 0.25},
		{"opposing cancel", input.Intent{Left: true, Right: true}, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer()
			p.Tick(tc.in, nil)
			// +2*falloff impulse minus one falloff step
			if !approx(p.Entity.Vel.To.X, tc.wantX) || !approx(p.Entity.Vel.To.Y, tc.wantY) {
				t.Errorf("Vel.To = (%v, %v), expected (%v, %v)",
					p.Entity.Vel.To.X, p.Entity.Vel.To.Y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestPlayerHeldKeyReachesCap(t *testing.T) {
	p := NewPlayer()
	for i := 0; i < 100; i++ {
		p.Tick(input.Intent{Right: true}, nil)
	}
	// Capped at 3.5 before falloff, then one step of decay
	if !approx(p.Entity.Vel.To.X, 3.25) {
		t.Errorf("Vel.To.X = %v, expected 3.25", p.Entity.Vel.To.X)
	}
}
