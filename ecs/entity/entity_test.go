package entity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/levels"
	"github.com/milk9111/lanerunner/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunnerFromPrefab(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewRunner(w)
	require.NoError(t, err)

	lane, ok := ecs.Get(w, e, component.LaneComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, component.LaneMiddle, lane.Index)

	r, _ := ecs.Get(w, e, component.RunnerComponent.Kind())
	assert.Equal(t, 10.0, r.ForwardSpeed)
	assert.Equal(t, 30.0, r.MaxSpeed)

	v, _ := ecs.Get(w, e, component.VerticalComponent.Kind())
	assert.True(t, v.Grounded)
	assert.Equal(t, v.GroundBias, v.Velocity)

	pb, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	assert.Greater(t, pb.Capsule(component.PostureStanding).Height(), pb.Capsule(component.PostureRolling).Height())

	sounds, _ := ecs.Get(w, e, component.AudioComponent.Kind())
	assert.Equal(t, []string{"jump", "land", "swerve"}, sounds.Names)
	assert.Len(t, sounds.Players, 3)

	assert.False(t, ecs.Has(w, e, component.AutopilotTagComponent.Kind()))
}

func TestBuildEntityRejectsUnknownComponents(t *testing.T) {
	dir := t.TempDir()
	old := prefabs.Dir
	prefabs.Dir = dir
	t.Cleanup(func() { prefabs.Dir = old })
	require.NoError(t, os.WriteFile(filepath.Join(dir, "odd.yaml"), []byte("name: odd\ncomponents:\n  jetpack: {}\n"), 0o644))

	w := ecs.NewWorld()
	_, err := BuildEntity(w, "odd.yaml")
	assert.ErrorContains(t, err, "jetpack")
	assert.Empty(t, ecs.Entities(w))

	_, err = BuildEntity(w, "nope.yaml")
	assert.ErrorIs(t, err, prefabs.ErrUnknownPrefab)
}

func TestApplyTuningKeepsRunState(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewRunner(w)
	require.NoError(t, err)

	lane, _ := ecs.Get(w, e, component.LaneComponent.Kind())
	lane.ShiftRight()
	r, _ := ecs.Get(w, e, component.RunnerComponent.Kind())
	r.ForwardSpeed = 20

	tuning, err := prefabs.LoadTuning(RunnerPrefab)
	require.NoError(t, err)
	tuning.Lane.Spacing = 3
	tuning.Runner.MaxSpeed = 15
	tuning.Roll.Duration = 0

	require.NoError(t, ApplyTuning(w, e, tuning))
	assert.Equal(t, component.LaneRight, lane.Index)
	assert.Equal(t, 3.0, lane.TargetLateralOffset())
	assert.Equal(t, 15.0, r.ForwardSpeed, "speed clamped to the new max")

	roll, _ := ecs.Get(w, e, component.RollComponent.Kind())
	assert.Equal(t, defaultRollDuration, roll.Duration)

	tuning.Lane.Spacing = 0
	assert.Error(t, ApplyTuning(w, e, tuning))

	ecs.DestroyEntity(w, e)
	assert.ErrorIs(t, ApplyTuning(w, e, tuning), component.ErrEntityNotAlive)
}

func TestNewTrackItemOverrides(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewTrackItem(w, levels.Item{Prefab: "obstacle.yaml", Lanes: []int{0, 1}, Height: 0.5, Y: 1.2}, 42)
	require.NoError(t, err)

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	assert.Equal(t, 42.0, tr.Z)
	assert.Equal(t, 1.2, tr.Y)

	col, _ := ecs.Get(w, e, component.ColliderComponent.Kind())
	assert.Equal(t, []component.LaneIndex{component.LaneLeft, component.LaneMiddle}, col.Lanes)
	assert.Equal(t, 0.5, col.Height)
	assert.Equal(t, component.CategoryObstacle, col.Category)

	_, err = NewTrackItem(w, levels.Item{Prefab: "obstacle.yaml", Lanes: []int{5}}, 0)
	assert.Error(t, err)
	assert.Len(t, ecs.Entities(w), 1, "failed item is cleaned up")
}
