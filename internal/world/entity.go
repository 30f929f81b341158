package world

import "image"

// CollisionThreshold is how far (in world units) an entity may sink into an
// obstacle and still be pushed back out along the axis it moves on.
const CollisionThreshold = 4.0

// Entity is a dynamic simulation unit.
type Entity struct {
	Pos    Coord    // Position in world space
	Vel    Velocity // Velocity and its limits
	Hitbox Region   // Bounding box relative to Pos

	inAir   bool        // Whether a jump is in progress
	texture image.Image // Optional bitmap, only read by renderers
}

// NewEntity creates a grounded entity at the origin with the default hitbox
// and a zero velocity.
func NewEntity() *Entity {
	return &Entity{
		Pos:    Origin(),
		Vel:    NewVelocity(),
		Hitbox: DefaultHitbox(),
	}
}

// InAir reports whether the entity is airborne.
func (e *Entity) InAir() bool {
	return e.inAir
}

// Texture returns the entity's bitmap, or nil if it has none.
func (e *Entity) Texture() image.Image {
	return e.texture
}

// SetTexture assigns a bitmap to the entity and resizes the hitbox on x/y to
// the bitmap's pixel size, centred on the entity. Passing nil clears the
// texture and keeps the current hitbox.
func (e *Entity) SetTexture(img image.Image) {
	if img == nil {
		e.texture = nil
		return
	}

	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	e.Hitbox.Start.X = -w / 2
	e.Hitbox.Start.Y = -h / 2
	e.Hitbox.End.X = w / 2
	e.Hitbox.End.Y = h / 2

	e.texture = img
}

// AbsolutePos returns the hitbox translated into world space.
func (e *Entity) AbsolutePos() Region {
	return e.Hitbox.Offset(e.Pos)
}

// Tick advances the entity by one step: cap and decay velocity, move,
// clamp to the ground, then resolve collisions against collideWith in order.
func (e *Entity) Tick(collideWith []Region) {
	e.Vel.Limit()
	e.Vel.ApplyFalloff()

	// Apply movement
	e.Pos = e.Pos.Add(e.Vel.To)

	if e.Pos.Z < 0 {
		e.Pos.Z = 0
		e.Vel.To.Z = 0
		e.inAir = false
	}

	e.collide(collideWith)
}

// collide pushes the entity out of every overlapping region. Each region is
// tested against the position left by the previous one; there is no second
// pass.
func (e *Entity) collide(collideWith []Region) {
	for _, other := range collideWith {
		if !e.AbsolutePos().Overlaps(other) {
			continue
		}

		if e.Vel.To.Z != 0 {
			if e.Pos.Z+e.Hitbox.End.Z-CollisionThreshold >= other.Start.Z {
				// Still above the obstacle
				continue
			}
			// Landed: undo this step's vertical movement
			e.Pos.Z -= e.Vel.To.Z
			e.Vel.To.Z = 0
			e.inAir = false
		}

		if e.Vel.To.X > 0 && e.Pos.X+e.Hitbox.End.X-CollisionThreshold <= other.Start.X {
			e.Pos.X = other.Start.X - e.Hitbox.End.X
			e.Vel.To.X = 0
		} else if e.Vel.To.X < 0 && e.Pos.X+e.Hitbox.Start.X+CollisionThreshold >= other.End.X {
			e.Pos.X = other.End.X - e.Hitbox.Start.X
			e.Vel.To.X = 0
		}

		if e.Vel.To.Y > 0 && e.Pos.Y+e.Hitbox.End.Y-CollisionThreshold <= other.Start.Y {
			e.Pos.Y = other.Start.Y - e.Hitbox.End.Y
			e.Vel.To.Y = 0
		} else if e.Vel.To.Y < 0 && e.Pos.Y+e.Hitbox.Start.Y+CollisionThreshold >= other.End.Y {
			e.Pos.Y = other.End.Y - e.Hitbox.Start.Y
			e.Vel.To.Y = 0
		}
	}
}

// containIn keeps the entity's x/y extent inside bounds, stopping motion on
// any axis that hit the edge.
func (e *Entity) containIn(bounds Region) {
	abs := e.AbsolutePos()

	if abs.Start.X < bounds.Start.X {
		e.Pos.X = bounds.Start.X - e.Hitbox.Start.X
		e.Vel.To.X = 0
	} else if abs.End.X > bounds.End.X {
		e.Pos.X = bounds.End.X - e.Hitbox.End.X
		e.Vel.To.X = 0
	}

	if abs.Start.Y < bounds.Start.Y {
		e.Pos.Y = bounds.Start.Y - e.Hitbox.Start.Y
		e.Vel.To.Y = 0
	} else if abs.End.Y > bounds.End.Y {
		e.Pos.Y = bounds.End.Y - e.Hitbox.End.Y
		e.Vel.To.Y = 0
	}
}

// clone returns a copy of the entity sharing the immutable texture.
func (e *Entity) clone() *Entity {
	c := *e
	return &c
}
