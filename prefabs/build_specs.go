package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Z        float64 `yaml:"z"`
	Rotation float64 `yaml:"rotation"`
}

type LaneComponentSpec struct {
	Index   int     `yaml:"index"`
	Spacing float64 `yaml:"spacing"`
}

type RunnerComponentSpec struct {
	StartSpeed   float64 `yaml:"start_speed"`
	MaxSpeed     float64 `yaml:"max_speed"`
	Acceleration float64 `yaml:"acceleration"`
	LateralGain  float64 `yaml:"lateral_gain"`
}

type VerticalComponentSpec struct {
	JumpForce        float64 `yaml:"jump_force"`
	Gravity          float64 `yaml:"gravity"`
	GroundBias       float64 `yaml:"ground_bias"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
}

type RollComponentSpec struct {
	Duration float64 `yaml:"duration"`
}

type ColliderComponentSpec struct {
	Category string  `yaml:"category"`
	Lanes    []int   `yaml:"lanes"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Depth    float64 `yaml:"depth"`
	Sensor   bool    `yaml:"sensor"`
}

type CapsuleSpec struct {
	Height float64 `yaml:"height"`
	Length float64 `yaml:"length"`
	Radius float64 `yaml:"radius"`
}

type PhysicsBodyComponentSpec struct {
	Mass      float64     `yaml:"mass"`
	VelocityZ float64     `yaml:"velocity_z"`
	Standing  CapsuleSpec `yaml:"standing"`
	Rolling   CapsuleSpec `yaml:"rolling"`
}

type CoinComponentSpec struct {
	Value     int     `yaml:"value"`
	SpinSpeed float64 `yaml:"spin_speed"`
}

type TTLComponentSpec struct {
	Frames int `yaml:"frames"`
}

// Tuning is the subset of the runner prefab that can be re-applied to a live
// player.
type Tuning struct {
	Lane     LaneComponentSpec
	Runner   RunnerComponentSpec
	Vertical VerticalComponentSpec
	Roll     RollComponentSpec
}

func LoadTuning(filename string) (Tuning, error) {
	spec, err := LoadEntityBuildSpec(filename)
	if err != nil {
		return Tuning{}, err
	}

	var t Tuning
	if t.Lane, err = DecodeComponentSpec[LaneComponentSpec](spec.Components["lane"]); err != nil {
		return Tuning{}, fmt.Errorf("prefabs: %s: lane: %w", filename, err)
	}
	if t.Runner, err = DecodeComponentSpec[RunnerComponentSpec](spec.Components["runner"]); err != nil {
		return Tuning{}, fmt.Errorf("prefabs: %s: runner: %w", filename, err)
	}
	if t.Vertical, err = DecodeComponentSpec[VerticalComponentSpec](spec.Components["vertical"]); err != nil {
		return Tuning{}, fmt.Errorf("prefabs: %s: vertical: %w", filename, err)
	}
	if t.Roll, err = DecodeComponentSpec[RollComponentSpec](spec.Components["roll"]); err != nil {
		return Tuning{}, fmt.Errorf("prefabs: %s: roll: %w", filename, err)
	}
	return t, nil
}
