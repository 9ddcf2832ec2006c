package entity

import (
	"fmt"

	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/levels"
)

// NewTrackItem builds a course item at absolute distance z. Overrides in the
// item replace the prefab's values.
func NewTrackItem(w *ecs.World, item levels.Item, z float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, item.Prefab)
	if err != nil {
		return 0, err
	}
	fail := func(err error) (ecs.Entity, error) {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("track item %q: %w", item.Prefab, err)
	}

	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t = &component.Transform{}
		if err := ecs.Add(w, e, component.TransformComponent.Kind(), t); err != nil {
			return fail(err)
		}
	}
	t.Z = z
	if item.Y != 0 {
		t.Y = item.Y
	}

	col, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
	if !ok {
		return fail(fmt.Errorf("prefab has no collider"))
	}
	if len(item.Lanes) > 0 {
		lanes, err := laneIndexes(item.Lanes)
		if err != nil {
			return fail(err)
		}
		col.Lanes = lanes
	}
	if item.Height > 0 {
		col.Height = item.Height
	}
	if item.Depth > 0 {
		col.Depth = item.Depth
	}

	if item.VelocityZ != 0 {
		body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok {
			body = &component.PhysicsBody{}
			if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), body); err != nil {
				return fail(err)
			}
		}
		body.VelocityZ = item.VelocityZ
	}
	return e, nil
}
