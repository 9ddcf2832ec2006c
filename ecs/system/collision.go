package system

import (
	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/session"
)

// CollisionSystem ends the session on the first blocking contact with an
// obstacle. It has no other side effects and never clears Over.
type CollisionSystem struct {
	session *session.State
}

func NewCollisionSystem(s *session.State) *CollisionSystem {
	return &CollisionSystem{session: s}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.PlayerCollisionComponent.Kind(), func(_ ecs.Entity, pc *component.PlayerCollision) {
		for _, c := range pc.Blocking {
			if IsFatal(c.Category) {
				s.session.MarkOver(c.Category.String())
			}
		}
	})
}

// IsFatal reports whether a blocking contact with category ends the session.
func IsFatal(c component.Category) bool {
	switch c {
	case component.CategoryObstacle, component.CategoryMovingObstacle:
		return true
	case component.CategoryPlayer, component.CategoryCoin:
		return false
	default:
		return false
	}
}
