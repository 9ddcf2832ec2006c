package component

// Runner holds the forward and lateral motion of the player.
type Runner struct {
	ForwardSpeed float64
	MaxSpeed     float64
	// Acceleration is added to ForwardSpeed every second.
	Acceleration float64
	// LateralGain is the lateral speed used to approach the lane target.
	LateralGain float64

	// LateralGoal is the lateral position computed by the frame update and
	// not yet applied by the physics step.
	LateralGoal    float64
	LateralPending bool
}

var RunnerComponent = NewComponent[Runner]()
