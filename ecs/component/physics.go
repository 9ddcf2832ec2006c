package component

import "github.com/jakecoffman/cp"

// Capsule is a segment with radius in the side plane, relative to the base
// of the body. A and B run along Z (X) and height (Y).
type Capsule struct {
	AX, AY float64
	BX, BY float64
	Radius float64
}

// StandingCapsule is upright with its lowest point at the base.
func StandingCapsule(height, radius float64) Capsule {
	top := height - radius
	if top < radius {
		top = radius
	}
	return Capsule{AX: 0, AY: radius, BX: 0, BY: top, Radius: radius}
}

// RollingCapsule lies along the track with its lowest point at the base.
func RollingCapsule(length, radius float64) Capsule {
	half := length/2 - radius
	if half < 0 {
		half = 0
	}
	return Capsule{AX: -half, AY: radius, BX: half, BY: radius, Radius: radius}
}

func (c Capsule) Endpoints() (cp.Vector, cp.Vector) {
	return cp.Vector{X: c.AX, Y: c.AY}, cp.Vector{X: c.BX, Y: c.BY}
}

// Height is the top of the capsule above the base.
func (c Capsule) Height() float64 {
	top := c.AY
	if c.BY > top {
		top = c.BY
	}
	return top + c.Radius
}

// PhysicsBody is the Chipmunk2D runtime state of a collider. The player keeps
// one precomputed capsule per posture; the physics step swaps the shape when
// Applied differs from the roll posture.
type PhysicsBody struct {
	Body  *cp.Body
	Shape *cp.Shape

	Capsules [postureCount]Capsule
	Applied  Posture

	Mass float64
	// VelocityZ moves kinematic bodies along the track.
	VelocityZ float64
}

func (p *PhysicsBody) Capsule(posture Posture) Capsule {
	if posture < 0 || int(posture) >= len(p.Capsules) {
		return p.Capsules[PostureStanding]
	}
	return p.Capsules[posture]
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
