package entity

import (
	"fmt"

	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/prefabs"
)

const RunnerPrefab = "runner.yaml"

const (
	defaultMaxSpeed     = 30.0
	defaultAcceleration = 0.2
	defaultLateralGain  = 25.0
	defaultGroundBias   = -1.0
	defaultRollDuration = 0.5
)

func NewRunner(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, RunnerPrefab)
}

// NewAutopilotRunner builds the runner with its input driven by the
// autopilot script instead of the keyboard.
func NewAutopilotRunner(w *ecs.World) (ecs.Entity, error) {
	e, err := NewRunner(w)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.AutopilotTagComponent.Kind(), &component.AutopilotTag{}); err != nil {
		return 0, fmt.Errorf("runner: tag autopilot: %w", err)
	}
	return e, nil
}

func ApplyRunnerSpec(r *component.Runner, spec prefabs.RunnerComponentSpec) {
	r.MaxSpeed = orDefault(spec.MaxSpeed, defaultMaxSpeed)
	r.Acceleration = orDefault(spec.Acceleration, defaultAcceleration)
	r.LateralGain = orDefault(spec.LateralGain, defaultLateralGain)
	if r.ForwardSpeed > r.MaxSpeed {
		r.ForwardSpeed = r.MaxSpeed
	}
}

func ApplyVerticalSpec(v *component.Vertical, spec prefabs.VerticalComponentSpec) {
	v.JumpForce = spec.JumpForce
	v.Gravity = spec.Gravity
	v.GroundBias = orDefault(spec.GroundBias, defaultGroundBias)
	v.TerminalVelocity = max(spec.TerminalVelocity, 0)
}

func ApplyRollSpec(r *component.Roll, spec prefabs.RollComponentSpec) {
	r.Duration = orDefault(spec.Duration, defaultRollDuration)
}

// ApplyTuning re-applies tuning to a live runner. Lane index, speed, vertical
// state and any roll in flight are kept.
func ApplyTuning(w *ecs.World, e ecs.Entity, t prefabs.Tuning) error {
	if !ecs.IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	if lane, ok := ecs.Get(w, e, component.LaneComponent.Kind()); ok {
		if t.Lane.Spacing <= 0 {
			return fmt.Errorf("tuning: lane spacing must be positive, got %v", t.Lane.Spacing)
		}
		lane.Spacing = t.Lane.Spacing
	}
	if r, ok := ecs.Get(w, e, component.RunnerComponent.Kind()); ok {
		ApplyRunnerSpec(r, t.Runner)
	}
	if v, ok := ecs.Get(w, e, component.VerticalComponent.Kind()); ok {
		ApplyVerticalSpec(v, t.Vertical)
	}
	if r, ok := ecs.Get(w, e, component.RollComponent.Kind()); ok {
		ApplyRollSpec(r, t.Roll)
	}
	return nil
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
