package system

import (
	"math"
	"testing"

	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepLateral(t *testing.T) {
	tests := []struct {
		name      string
		current   float64
		target    float64
		step      float64
		want      float64
		wantMoved bool
	}{
		{"at_target", 2.5, 2.5, 0.4, 2.5, false},
		{"toward_positive", 0, 2.5, 0.4, 0.4, true},
		{"toward_negative", 0, -2.5, 0.4, -0.4, true},
		{"snap_within_step", 2.3, 2.5, 0.4, 2.5, true},
		{"snap_exact_step", 2.1, 2.5, 0.4, 2.5, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, moved := stepLateral(tc.current, tc.target, tc.step)
			if moved != tc.wantMoved {
				t.Fatalf("moved = %v, want %v", moved, tc.wantMoved)
			}
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMovementConvergesMonotonically(t *testing.T) {
	w, e := newRunner(t)
	sys := NewMovementSystem(runningSession())
	lane := mustGet(t, w, e, component.LaneComponent.Kind())
	r := mustGet(t, w, e, component.RunnerComponent.Kind())
	tr := mustGet(t, w, e, component.TransformComponent.Kind())

	lane.ShiftRight()
	target := lane.TargetLateralOffset()
	last := math.Abs(target - tr.X)

	for i := 0; i < 60; i++ {
		advance(w, frameDT)
		sys.Update(w)
		if r.LateralPending {
			// what the physics step does with the goal
			tr.X = r.LateralGoal
			r.LateralPending = false
		}
		d := math.Abs(target - tr.X)
		require.LessOrEqual(t, d, last, "frame %d moved away from target", i)
		last = d
	}
	assert.Equal(t, target, tr.X, "lateral position lands exactly on the lane centre")

	advance(w, frameDT)
	sys.Update(w)
	assert.False(t, r.LateralPending, "no step once at target")
}

func TestMovementSpeedIsCapped(t *testing.T) {
	w, e := newRunner(t)
	sys := NewMovementSystem(runningSession())
	r := mustGet(t, w, e, component.RunnerComponent.Kind())
	start := r.ForwardSpeed

	advance(w, 1)
	sys.Update(w)
	assert.InDelta(t, start+r.Acceleration, r.ForwardSpeed, 1e-9)

	for i := 0; i < 400; i++ {
		advance(w, 0.3)
		sys.Update(w)
		require.LessOrEqual(t, r.ForwardSpeed, r.MaxSpeed)
	}
	assert.Equal(t, r.MaxSpeed, r.ForwardSpeed)
}
