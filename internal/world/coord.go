// Package world implements the platformer simulation core: entities with
// position, velocity and hitboxes, their per-tick kinematics and collision,
// and the camera scroll that follows the player.
// It performs no I/O; rendering, asset loading and input live elsewhere.
package world

// Coord is a position or displacement in world space.
// X grows to the right, Y grows down, Z is virtual height above ground.
type Coord struct {
	X, Y, Z float64
}

// Origin returns the world origin.
func Origin() Coord {
	return Coord{}
}

// DefaultMaxVel returns the default per-axis velocity cap.
func DefaultMaxVel() Coord {
	return Coord{X: 3.5, Y: 3.5, Z: 1.5}
}

// DefaultVelFalloff returns the default per-tick velocity falloff.
func DefaultVelFalloff() Coord {
	return Coord{X: 0.25, Y: 0.25, Z: 0.05}
}

// Add returns the component-wise sum c + o.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

// Sub returns the component-wise difference c - o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y, Z: c.Z - o.Z}
}

// Region is an axis-aligned box. Start is the top-left corner on x/y and
// holds the larger z; End is the bottom-right corner and holds the smaller
// z (ground level, normally 0).
type Region struct {
	Start Coord
	End   Coord
}

// DefaultBoundary returns the generic world boundary.
func DefaultBoundary() Region {
	return Region{
		Start: Coord{X: -1000, Y: -1000, Z: 1000},
		End:   Coord{X: 1000, Y: 1000, Z: 0},
	}
}

// DefaultHitbox returns the generic entity hitbox, relative to the entity.
func DefaultHitbox() Region {
	return Region{
		Start: Coord{X: -16, Y: -16, Z: 16},
		End:   Coord{X: 16, Y: 16, Z: 0},
	}
}

// Offset returns the region translated by c.
func (r Region) Offset(c Coord) Region {
	return Region{Start: c.Add(r.Start), End: c.Add(r.End)}
}

// Width returns the x extent of the region.
func (r Region) Width() float64 {
	return r.End.X - r.Start.X
}

// Height returns the y extent of the region.
func (r Region) Height() float64 {
	return r.End.Y - r.Start.Y
}

// Overlaps reports whether the x, y and z intervals of both regions
// intersect. Touching edges count as overlap.
func (r Region) Overlaps(o Region) bool {
	if r.Start.X > o.End.X || o.Start.X > r.End.X {
		return false
	}
	if r.Start.Y > o.End.Y || o.Start.Y > r.End.Y {
		return false
	}
	// z is inverted: End holds the bottom, Start the top
	if r.End.Z > o.Start.Z || o.End.Z > r.Start.Z {
		return false
	}
	return true
}
