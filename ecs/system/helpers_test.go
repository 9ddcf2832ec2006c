package system

import (
	"testing"

	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/ecs/entity"
	"github.com/milk9111/lanerunner/levels"
	"github.com/milk9111/lanerunner/logger"
	"github.com/milk9111/lanerunner/session"
	"github.com/stretchr/testify/require"
)

const frameDT = 1.0 / 60.0

func runningSession() *session.State {
	s := session.New(logger.Discard())
	s.SetRunning(true)
	return s
}

func newRunner(t *testing.T) (*ecs.World, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	e, err := entity.NewRunner(w)
	require.NoError(t, err)
	return w, e
}

// advance moves the world clock forward one frame of dt.
func advance(w *ecs.World, dt float64) {
	now := w.Time()
	w.SetTime(ecs.Time{
		Delta:      dt,
		FixedDelta: ecs.DefaultFixedDelta,
		Now:        now.Now + dt,
		Frame:      now.Frame + 1,
	})
}

func setInput(t *testing.T, w *ecs.World, e ecs.Entity, in component.Input) {
	t.Helper()
	input, ok := ecs.Get(w, e, component.InputComponent.Kind())
	require.True(t, ok)
	*input = in
}

func mustGet[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, kind)
	require.True(t, ok)
	return v
}

func newTrackItem(t *testing.T, w *ecs.World, prefab string, lane int, z float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewTrackItem(w, levels.Item{Prefab: prefab, Lanes: []int{lane}}, z)
	require.NoError(t, err)
	return e
}
