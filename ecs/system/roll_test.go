package system

import (
	"testing"

	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollStartsAndRestoresOnce(t *testing.T) {
	w, e := newRunner(t)
	sys := NewRollSystem()
	roll := mustGet(t, w, e, component.RollComponent.Kind())
	tr := mustGet(t, w, e, component.TransformComponent.Kind())
	tr.Rotation = 10

	roll.Requested = true
	advance(w, frameDT)
	sys.Update(w)
	started := w.Time().Now
	require.True(t, roll.Active)
	assert.Equal(t, component.PostureRolling, roll.Posture)
	assert.Equal(t, 10+component.RollRotation, tr.Rotation)

	restoredAt := -1.0
	for i := 0; i < 120 && restoredAt < 0; i++ {
		advance(w, frameDT)
		sys.Update(w)
		if !roll.Active {
			restoredAt = w.Time().Now
		}
	}
	require.GreaterOrEqual(t, restoredAt, 0.0, "roll never ended")
	elapsed := restoredAt - started
	assert.GreaterOrEqual(t, elapsed, roll.Duration)
	assert.Less(t, elapsed, roll.Duration+frameDT+1e-9)
	assert.Equal(t, component.PostureStanding, roll.Posture)
	assert.Equal(t, 10.0, tr.Rotation)

	// no second restore
	tr.Rotation = 42
	advance(w, frameDT)
	sys.Update(w)
	assert.Equal(t, 42.0, tr.Rotation)
}

func TestRollRequestWhileActiveIsIgnored(t *testing.T) {
	w, e := newRunner(t)
	sys := NewRollSystem()
	roll := mustGet(t, w, e, component.RollComponent.Kind())
	tr := mustGet(t, w, e, component.TransformComponent.Kind())

	roll.Requested = true
	advance(w, frameDT)
	sys.Update(w)
	started := roll.StartedAt

	advance(w, 0.2)
	roll.Requested = true
	sys.Update(w)
	assert.Equal(t, started, roll.StartedAt)
	assert.Equal(t, component.RollRotation, tr.Rotation, "rotation applied once")
	assert.False(t, roll.Requested)
}

func TestRollRestoresAfterSessionOver(t *testing.T) {
	w, e := newRunner(t)
	s := runningSession()
	sys := NewRollSystem()
	roll := mustGet(t, w, e, component.RollComponent.Kind())

	roll.Requested = true
	advance(w, frameDT)
	sys.Update(w)
	require.True(t, roll.Active)

	s.MarkOver("obstacle")
	s.SetRunning(false)
	advance(w, roll.Duration+frameDT)
	sys.Update(w)
	assert.False(t, roll.Active)
	assert.Equal(t, component.PostureStanding, roll.Posture)
}
