package world

import "math"

// Velocity holds the displacement to apply on the next tick together with
// its per-axis cap and falloff.
//
// Z is never capped: jump height comes from the impulse, gravity (Falloff.Z)
// and the ground clamp alone.
type Velocity struct {
	To      Coord // Displacement applied this tick
	Max     Coord // Cap for |To.X| and |To.Y|
	Falloff Coord // Friction on x/y, gravity on z
}

// NewVelocity returns a zero velocity with the default cap and falloff.
func NewVelocity() Velocity {
	return Velocity{
		To:      Origin(),
		Max:     DefaultMaxVel(),
		Falloff: DefaultVelFalloff(),
	}
}

// Limit clamps To.X and To.Y into [-Max, Max]. To.Z is left untouched.
func (v *Velocity) Limit() {
	if v.To.X > v.Max.X {
		v.To.X = v.Max.X
	}
	if v.To.X < -v.Max.X {
		v.To.X = -v.Max.X
	}

	if v.To.Y > v.Max.Y {
		v.To.Y = v.Max.Y
	}
	if v.To.Y < -v.Max.Y {
		v.To.Y = -v.Max.Y
	}
}

// ApplyFalloff decays To.X and To.Y toward zero by one falloff step and
// pulls To.Z down unconditionally. A decaying axis stops at zero instead of
// flipping sign: 0.1 with a falloff of 0.25 becomes 0, not -0.15. With the
// default cap and falloff every held-key speed is a multiple of the
// falloff, so the two only differ for custom physics settings.
func (v *Velocity) ApplyFalloff() {
	v.To.X = decay(v.To.X, v.Falloff.X)
	v.To.Y = decay(v.To.Y, v.Falloff.Y)
	v.To.Z -= v.Falloff.Z
}

// decay moves val toward zero by step without crossing it.
func decay(val, step float64) float64 {
	switch {
	case val > 0:
		return math.Max(0, val-step)
	case val < 0:
		return math.Min(0, val+step)
	}
	return val
}
