package system

import (
	"testing"

	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/levels"
	"github.com/stretchr/testify/assert"
)

func countCategory(w *ecs.World, c component.Category) int {
	n := 0
	ecs.ForEach(w, component.ColliderComponent.Kind(), func(_ ecs.Entity, col *component.Collider) {
		if col.Category == c {
			n++
		}
	})
	return n
}

func TestCourseSpawnsAheadAndDespawnsBehind(t *testing.T) {
	w, e := newRunner(t)
	course := &levels.Course{
		Name:   "test",
		Length: 50,
		Loop:   true,
		Start:  10,
		Items: []levels.Item{
			{Prefab: "obstacle.yaml", Z: 5, Lanes: []int{0}},
			{Prefab: "coin.yaml", Z: 20, Lanes: []int{1}},
		},
	}
	sys := NewCourseSystem(course)
	sys.Lookahead = 60

	sys.Update(w)
	// repetitions at 10 and 60 are within lookahead of z=0
	assert.Equal(t, 2, countCategory(w, component.CategoryObstacle))
	assert.Equal(t, 2, countCategory(w, component.CategoryCoin))

	sys.Update(w)
	assert.Equal(t, 2, countCategory(w, component.CategoryObstacle), "no double spawn")

	mustGet(t, w, e, component.TransformComponent.Kind()).Z = 60
	sys.Update(w)
	// first repetition is behind, third one is now in range
	assert.Equal(t, 2, countCategory(w, component.CategoryObstacle))
	assert.False(t, sys.Finished(w), "looping courses never finish")
}

func TestCourseFinishes(t *testing.T) {
	w, e := newRunner(t)
	course, err := levels.LoadCourse("straight")
	if err != nil {
		t.Fatal(err)
	}
	sys := NewCourseSystem(course)
	sys.Update(w)
	assert.Equal(t, 3, countCategory(w, component.CategoryCoin))
	assert.False(t, sys.Finished(w))

	mustGet(t, w, e, component.TransformComponent.Kind()).Z = course.Start + course.Length
	assert.True(t, sys.Finished(w))
}
