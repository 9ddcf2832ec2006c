package system

import (
	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/logger"
)

// RollSystem runs the timed roll. A request starts a roll only when none is
// in flight; an active roll ends exactly once when its duration has elapsed.
// The expiry poll is not gated on the session, so a roll that outlives the
// session still restores the standing posture.
type RollSystem struct{}

func NewRollSystem() *RollSystem {
	return &RollSystem{}
}

func (s *RollSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := w.Time().Now

	ecs.ForEach2(w, component.RollComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, roll *component.Roll, t *component.Transform) {
		if roll.Requested {
			roll.Requested = false
			if !roll.Active {
				roll.Active = true
				roll.StartedAt = now
				roll.OriginalRotation = t.Rotation
				t.Rotation = roll.OriginalRotation + component.RollRotation
				roll.Posture = component.PostureRolling
				logger.L().Debug("roll started", "entity", e, "at", now)
			}
		}

		if roll.Expired(now) {
			roll.Active = false
			t.Rotation = roll.OriginalRotation
			roll.Posture = component.PostureStanding
			logger.L().Debug("roll ended", "entity", e, "at", now)
		}
	})
}
