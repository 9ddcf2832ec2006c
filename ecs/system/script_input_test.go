package system

import (
	"testing"

	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/ecs/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAutopilot(t *testing.T) (*ecs.World, ecs.Entity, *ScriptInputSystem) {
	t.Helper()
	w := ecs.NewWorld()
	e, err := entity.NewAutopilotRunner(w)
	require.NoError(t, err)
	sys, err := NewScriptInputSystem(DefaultAutopilotScript)
	require.NoError(t, err)
	return w, e, sys
}

func TestAutopilotSwervesAroundObstacle(t *testing.T) {
	w, e, sys := newAutopilot(t)
	newTrackItem(t, w, "obstacle.yaml", int(component.LaneMiddle), 5)

	sys.Update(w)
	in := mustGet(t, w, e, component.InputComponent.Kind())
	assert.True(t, in.Left)
	assert.False(t, in.Right)
}

func TestAutopilotJumpsWhenBoxedIn(t *testing.T) {
	w, e, sys := newAutopilot(t)
	for _, lane := range []int{0, 1, 2} {
		newTrackItem(t, w, "obstacle.yaml", lane, 2)
	}

	sys.Update(w)
	in := mustGet(t, w, e, component.InputComponent.Kind())
	assert.True(t, in.Up)
	assert.False(t, in.Left || in.Right)
}

func TestAutopilotIdleOnClearTrack(t *testing.T) {
	w, e, sys := newAutopilot(t)

	sys.Update(w)
	assert.False(t, mustGet(t, w, e, component.InputComponent.Kind()).Any())
}

func TestInputSystemSkipsAutopilot(t *testing.T) {
	w, e, _ := newAutopilot(t)
	manual, err := entity.NewRunner(w)
	require.NoError(t, err)

	input := NewInputSystem()
	input.Sample = func() component.Input { return component.Input{Right: true} }
	input.Update(w)

	assert.False(t, mustGet(t, w, e, component.InputComponent.Kind()).Right)
	assert.True(t, mustGet(t, w, manual, component.InputComponent.Kind()).Right)
}

func TestBuildAutopilotView(t *testing.T) {
	w, e, _ := newAutopilot(t)
	newTrackItem(t, w, "obstacle.yaml", int(component.LaneRight), 12)
	newTrackItem(t, w, "coin.yaml", int(component.LaneRight), 6)

	view := BuildAutopilotView(w, e)
	assert.Equal(t, int(component.LaneMiddle), view["lane"])
	assert.Equal(t, true, view["grounded"])
	assert.InDelta(t, 2.5, view["jump_height"], 1e-9)

	obstacles, ok := view["obstacles"].([]any)
	require.True(t, ok)
	require.Len(t, obstacles, 1, "coins are not obstacles")
	o := obstacles[0].(map[string]any)
	assert.Equal(t, 12.0, o["distance"])
	assert.Equal(t, []any{int(component.LaneRight)}, o["lanes"])
}
