package system

import (
	"math"

	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/session"
)

// MovementSystem is the per-frame half of the integrator. It accelerates the
// runner and moves the pending lateral goal toward the lane centre. The
// physics step applies the goal.
type MovementSystem struct {
	session *session.State
}

func NewMovementSystem(s *session.State) *MovementSystem {
	return &MovementSystem{session: s}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil || !s.session.Running() {
		return
	}
	dt := w.Time().Delta

	ecs.ForEach3(w, component.RunnerComponent.Kind(), component.LaneComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, r *component.Runner, lane *component.Lane, t *component.Transform) {
		r.ForwardSpeed = math.Min(r.ForwardSpeed+r.Acceleration*dt, r.MaxSpeed)

		current := t.X
		if r.LateralPending {
			current = r.LateralGoal
		}
		goal, moved := stepLateral(current, lane.TargetLateralOffset(), r.LateralGain*dt)
		if !moved {
			return
		}
		r.LateralGoal = goal
		r.LateralPending = true
	})
}

// stepLateral moves current toward target by at most step and lands exactly
// on target once within one step of it.
func stepLateral(current, target, step float64) (float64, bool) {
	diff := target - current
	if diff == 0 {
		return current, false
	}
	if math.Abs(diff) <= step {
		return target, true
	}
	return current + math.Copysign(step, diff), true
}
