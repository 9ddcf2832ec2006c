package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/logger"
	"github.com/milk9111/lanerunner/prefabs"
	"github.com/mitchellh/mapstructure"
)

const DefaultAutopilotScript = "autopilot.tengo"

const autopilotDispatchScript = `
__out := decide(__view)
`

// autopilotLookahead bounds how far ahead obstacles are reported to the
// script.
const autopilotLookahead = 60.0

// ScriptInputSystem fills the Input of autopilot entities from a tengo
// script's decide(view) function. A script error leaves the input empty for
// that frame.
type ScriptInputSystem struct {
	path     string
	compiled *tengo.Compiled
}

func NewScriptInputSystem(path string) (*ScriptInputSystem, error) {
	s := &ScriptInputSystem{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload recompiles the script. On error the previous script stays active.
func (s *ScriptInputSystem) Reload() error {
	src, err := prefabs.LoadScript(s.path)
	if err != nil {
		return fmt.Errorf("autopilot: load %q: %w", s.path, err)
	}
	compiled, err := compileAutopilot(src)
	if err != nil {
		return fmt.Errorf("autopilot: compile %q: %w", s.path, err)
	}
	s.compiled = compiled
	return nil
}

func (s *ScriptInputSystem) Path() string {
	return s.path
}

func compileAutopilot(src []byte) (*tengo.Compiled, error) {
	script := tengo.NewScript(append(append([]byte{}, src...), autopilotDispatchScript...))
	_ = script.Add("__view", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	return script.Compile()
}

func (s *ScriptInputSystem) Update(w *ecs.World) {
	if s == nil || s.compiled == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.AutopilotTagComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, _ *component.AutopilotTag, input *component.Input) {
		*input = component.Input{}
		out, err := s.decide(BuildAutopilotView(w, e))
		if err != nil {
			logger.L().Warn("autopilot: script error", "script", s.path, "entity", e, "err", err)
			return
		}
		*input = out
	})
}

func (s *ScriptInputSystem) decide(view map[string]any) (component.Input, error) {
	if err := s.compiled.Set("__view", view); err != nil {
		return component.Input{}, err
	}
	if err := s.compiled.Run(); err != nil {
		return component.Input{}, err
	}
	raw := s.compiled.Get("__out")
	if raw == nil || raw.IsUndefined() {
		return component.Input{}, fmt.Errorf("decide returned nothing")
	}
	var in component.Input
	if err := mapstructure.Decode(raw.Map(), &in); err != nil {
		return component.Input{}, fmt.Errorf("decode decision: %w", err)
	}
	return in, nil
}

// BuildAutopilotView describes the track ahead of e for the script.
func BuildAutopilotView(w *ecs.World, e ecs.Entity) map[string]any {
	view := map[string]any{
		"lane":         int(component.LaneMiddle),
		"lanes":        component.LaneCount,
		"grounded":     false,
		"rolling":      false,
		"speed":        0.0,
		"stand_height": 0.0,
		"roll_height":  0.0,
		"jump_height":  0.0,
	}

	z := 0.0
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		z = t.Z
	}
	if lane, ok := ecs.Get(w, e, component.LaneComponent.Kind()); ok {
		view["lane"] = int(lane.Index)
	}
	if r, ok := ecs.Get(w, e, component.RunnerComponent.Kind()); ok {
		view["speed"] = r.ForwardSpeed
	}
	if v, ok := ecs.Get(w, e, component.VerticalComponent.Kind()); ok {
		view["grounded"] = v.Grounded
		if v.Gravity < 0 {
			view["jump_height"] = v.JumpForce * v.JumpForce / (-2 * v.Gravity)
		}
	}
	if roll, ok := ecs.Get(w, e, component.RollComponent.Kind()); ok {
		view["rolling"] = roll.Active
	}
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		view["stand_height"] = pb.Capsule(component.PostureStanding).Height()
		view["roll_height"] = pb.Capsule(component.PostureRolling).Height()
	}

	obstacles := make([]any, 0, 8)
	ecs.ForEach2(w, component.ColliderComponent.Kind(), component.TransformComponent.Kind(), func(other ecs.Entity, col *component.Collider, t *component.Transform) {
		if other == e || !IsFatal(col.Category) {
			return
		}
		distance := t.Z - z
		if distance < -col.Depth-1 || distance > autopilotLookahead {
			return
		}
		lanes := make([]any, 0, len(col.Lanes))
		for _, l := range col.Lanes {
			lanes = append(lanes, int(l))
		}
		velocity := 0.0
		if pb, ok := ecs.Get(w, other, component.PhysicsBodyComponent.Kind()); ok {
			velocity = pb.VelocityZ
		}
		obstacles = append(obstacles, map[string]any{
			"lanes":    lanes,
			"distance": distance,
			"bottom":   t.Y,
			"top":      t.Y + col.Height,
			"velocity": velocity,
		})
	})
	view["obstacles"] = obstacles
	return view
}
