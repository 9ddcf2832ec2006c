package system

import (
	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/session"
)

// VerticalMotionSystem turns Up/Down edges into vertical velocity. It never
// sets Grounded: only the physics step's ground contact does that.
type VerticalMotionSystem struct {
	session *session.State
}

func NewVerticalMotionSystem(s *session.State) *VerticalMotionSystem {
	return &VerticalMotionSystem{session: s}
}

func (s *VerticalMotionSystem) Update(w *ecs.World) {
	if w == nil || !s.session.Running() {
		return
	}
	dt := w.Time().Delta

	ecs.ForEach2(w, component.InputComponent.Kind(), component.VerticalComponent.Kind(), func(e ecs.Entity, in *component.Input, v *component.Vertical) {
		sounds, _ := ecs.Get(w, e, component.AudioComponent.Kind())

		if v.Grounded {
			v.Velocity = v.GroundBias
			switch {
			case in.Up:
				v.Velocity = v.JumpForce
				v.Grounded = false
				sounds.Request("jump")
			case in.Down:
				if roll, ok := ecs.Get(w, e, component.RollComponent.Kind()); ok {
					roll.Requested = true
				}
			}
			return
		}

		if in.Down {
			v.Velocity = -v.JumpForce
			sounds.Request("land")
			return
		}

		v.Velocity += v.Gravity * dt
		if v.TerminalVelocity > 0 && v.Velocity < -v.TerminalVelocity {
			v.Velocity = -v.TerminalVelocity
		}
	})
}
