package system

import (
	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/ecs/entity"
	"github.com/milk9111/lanerunner/levels"
	"github.com/milk9111/lanerunner/logger"
)

const (
	DefaultCourseLookahead = 90.0
	DefaultCourseBehind    = 15.0
)

// CourseSystem lays the course out ahead of the player, one repetition at a
// time, and destroys track objects the player has left behind.
type CourseSystem struct {
	course *levels.Course

	Lookahead float64
	Behind    float64

	next int
}

func NewCourseSystem(course *levels.Course) *CourseSystem {
	return &CourseSystem{course: course, Lookahead: DefaultCourseLookahead, Behind: DefaultCourseBehind}
}

// Reset rewinds the course so the next update spawns it from the start.
func (s *CourseSystem) Reset() {
	s.next = 0
}

func (s *CourseSystem) Course() *levels.Course {
	return s.course
}

// Finished reports whether a non-looping course has been run to its end.
func (s *CourseSystem) Finished(w *ecs.World) bool {
	if s.course == nil || s.course.Loop {
		return false
	}
	z, ok := playerZ(w)
	return ok && z >= s.course.Start+s.course.Length
}

func (s *CourseSystem) Update(w *ecs.World) {
	if w == nil || s.course == nil {
		return
	}
	z, ok := playerZ(w)
	if !ok {
		return
	}

	for s.hasRepetition(s.next) {
		base := s.course.Start + float64(s.next)*s.course.Length
		if base > z+s.Lookahead {
			break
		}
		s.spawn(w, base)
		s.next++
	}

	ecs.ForEach2(w, component.ColliderComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, col *component.Collider, t *component.Transform) {
		if col.Category == component.CategoryPlayer {
			return
		}
		if t.Z+col.Depth < z-s.Behind {
			ecs.DestroyEntity(w, e)
		}
	})
}

func (s *CourseSystem) hasRepetition(n int) bool {
	return s.course.Loop || n == 0
}

func (s *CourseSystem) spawn(w *ecs.World, base float64) {
	for _, item := range s.course.Items {
		if _, err := entity.NewTrackItem(w, item, base+item.Z); err != nil {
			logger.L().Warn("course: spawn item failed", "course", s.course.Name, "prefab", item.Prefab, "z", base+item.Z, "err", err)
		}
	}
	logger.L().Debug("course: spawned repetition", "course", s.course.Name, "base", base, "items", len(s.course.Items))
}

func playerZ(w *ecs.World) (float64, bool) {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return 0, false
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return 0, false
	}
	return t.Z, true
}
