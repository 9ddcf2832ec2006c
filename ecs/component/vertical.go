package component

// Vertical is the player's vertical motion. Velocity is positive upward.
type Vertical struct {
	Grounded  bool
	Velocity  float64
	JumpForce float64
	Gravity   float64
	// GroundBias is the velocity held while grounded so the body keeps
	// touching the ground between physics steps.
	GroundBias float64
	// TerminalVelocity caps the falling speed when positive. Zero leaves
	// gravity unbounded.
	TerminalVelocity float64
}

var VerticalComponent = NewComponent[Vertical]()
