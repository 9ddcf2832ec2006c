package entity

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/prefabs"
)

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":       addPlayerTag,
	"autopilot_tag":    addAutopilotTag,
	"input":            addInput,
	"player_collision": addPlayerCollision,
	"transform":        addTransform,
	"lane":             addLane,
	"runner":           addRunner,
	"vertical":         addVertical,
	"roll":             addRoll,
	"collider":         addCollider,
	"physics_body":     addPhysicsBody,
	"coin":             addCoin,
	"ttl":              addTTL,
	"audio":            addAudio,
}

// physics_body reads the collider, so it is built after it.
var componentBuildOrder = []string{
	"player_tag",
	"autopilot_tag",
	"input",
	"player_collision",
	"transform",
	"lane",
	"runner",
	"vertical",
	"roll",
	"collider",
	"physics_body",
	"coin",
	"ttl",
	"audio",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	names := make([]string, 0, len(spec.Components))
	for _, name := range componentBuildOrder {
		if _, ok := spec.Components[name]; ok {
			names = append(names, name)
		}
	}
	var unknown []string
	for name := range spec.Components {
		if _, ok := componentRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return 0, fmt.Errorf("build entity: %q: no builder for components %v", prefabPath, unknown)
	}

	e := ecs.CreateEntity(w)
	for _, name := range names {
		if err := componentRegistry[name](w, e, spec.Components[name]); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}
	return e, nil
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addAutopilotTag(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.AutopilotTagComponent.Kind(), &component.AutopilotTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addPlayerCollision(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.PlayerCollisionComponent.Kind(), &component.PlayerCollision{})
}

func addTransform(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TransformComponentSpec](raw)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		Z:        spec.Z,
		Rotation: spec.Rotation,
	})
}

func addLane(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.LaneComponentSpec](raw)
	if err != nil {
		return err
	}
	index := component.LaneIndex(spec.Index)
	if !index.Valid() {
		return fmt.Errorf("lane index %d out of range", spec.Index)
	}
	if spec.Spacing <= 0 {
		return fmt.Errorf("lane spacing must be positive, got %v", spec.Spacing)
	}
	return ecs.Add(w, e, component.LaneComponent.Kind(), &component.Lane{Index: index, Spacing: spec.Spacing})
}

func addRunner(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.RunnerComponentSpec](raw)
	if err != nil {
		return err
	}
	r := &component.Runner{}
	ApplyRunnerSpec(r, spec)
	r.ForwardSpeed = min(spec.StartSpeed, r.MaxSpeed)
	return ecs.Add(w, e, component.RunnerComponent.Kind(), r)
}

func addVertical(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.VerticalComponentSpec](raw)
	if err != nil {
		return err
	}
	v := &component.Vertical{Grounded: true}
	ApplyVerticalSpec(v, spec)
	v.Velocity = v.GroundBias
	return ecs.Add(w, e, component.VerticalComponent.Kind(), v)
}

func addRoll(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.RollComponentSpec](raw)
	if err != nil {
		return err
	}
	r := &component.Roll{}
	ApplyRollSpec(r, spec)
	return ecs.Add(w, e, component.RollComponent.Kind(), r)
}

func addCollider(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ColliderComponentSpec](raw)
	if err != nil {
		return err
	}
	category, ok := component.ParseCategory(spec.Category)
	if !ok {
		return fmt.Errorf("unknown collider category %q", spec.Category)
	}
	lanes, err := laneIndexes(spec.Lanes)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{
		Category: category,
		Lanes:    lanes,
		Width:    spec.Width,
		Height:   spec.Height,
		Depth:    spec.Depth,
		Sensor:   spec.Sensor,
	})
}

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PhysicsBodyComponentSpec](raw)
	if err != nil {
		return err
	}
	body := &component.PhysicsBody{Mass: spec.Mass, VelocityZ: spec.VelocityZ}
	if spec.Standing.Radius > 0 {
		body.Capsules[component.PostureStanding] = component.StandingCapsule(spec.Standing.Height, spec.Standing.Radius)
	}
	if spec.Rolling.Radius > 0 {
		body.Capsules[component.PostureRolling] = component.RollingCapsule(spec.Rolling.Length, spec.Rolling.Radius)
	}
	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), body)
}

func addCoin(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CoinComponentSpec](raw)
	if err != nil {
		return err
	}
	value := spec.Value
	if value <= 0 {
		value = 1
	}
	return ecs.Add(w, e, component.CoinComponent.Kind(), &component.Coin{Value: value, SpinSpeed: spec.SpinSpeed})
}

func addTTL(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TTLComponentSpec](raw)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: spec.Frames})
}

func addAudio(w *ecs.World, e ecs.Entity, raw any) error {
	specs, err := prefabs.DecodeComponentSpec[[]prefabs.AudioSpec](raw)
	if err != nil {
		return err
	}
	comp := buildAudioComponent(specs)
	if comp == nil {
		return nil
	}
	return ecs.Add(w, e, component.AudioComponent.Kind(), comp)
}

func buildAudioComponent(specs []prefabs.AudioSpec) *component.Audio {
	n := len(specs)
	if n == 0 {
		return nil
	}
	comp := &component.Audio{
		Names:   make([]string, 0, n),
		Files:   make([]string, 0, n),
		Players: make([]*audio.Player, n),
		Volume:  make([]float64, 0, n),
		Play:    make([]bool, n),
		Stop:    make([]bool, n),
	}
	for _, clip := range specs {
		file := clip.File
		if file == "" {
			file = clip.Name
		}
		comp.Names = append(comp.Names, clip.Name)
		comp.Files = append(comp.Files, file)
		vol := clip.Volume
		if vol <= 0 {
			vol = 1
		}
		comp.Volume = append(comp.Volume, vol)
	}
	return comp
}

func laneIndexes(raw []int) ([]component.LaneIndex, error) {
	out := make([]component.LaneIndex, 0, len(raw))
	for _, l := range raw {
		idx := component.LaneIndex(l)
		if !idx.Valid() {
			return nil, fmt.Errorf("lane %d out of range", l)
		}
		out = append(out, idx)
	}
	return out, nil
}
