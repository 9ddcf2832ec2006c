package system

import (
	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/session"
)

// LaneSystem applies Left/Right edges to the lane index. The swerve sound
// plays on every edge, including a press against the outer lane.
type LaneSystem struct {
	session *session.State
}

func NewLaneSystem(s *session.State) *LaneSystem {
	return &LaneSystem{session: s}
}

func (s *LaneSystem) Update(w *ecs.World) {
	if w == nil || !s.session.Running() {
		return
	}

	ecs.ForEach2(w, component.InputComponent.Kind(), component.LaneComponent.Kind(), func(e ecs.Entity, in *component.Input, lane *component.Lane) {
		if !in.Left && !in.Right {
			return
		}
		sounds, _ := ecs.Get(w, e, component.AudioComponent.Kind())
		if in.Left {
			lane.ShiftLeft()
			sounds.Request("swerve")
		}
		if in.Right {
			lane.ShiftRight()
			sounds.Request("swerve")
		}
	})
}
