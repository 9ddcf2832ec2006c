package ecs

import "testing"

func TestStepperRunsFixedStepsFromAccumulator(t *testing.T) {
	var frames, fixed int
	var lastFrameDelta float64
	frame := NewScheduler(SystemFunc(func(w *World) {
		frames++
		lastFrameDelta = w.Time().Delta
	}))
	fixedSched := NewScheduler(SystemFunc(func(w *World) { fixed++ }))

	s := NewStepper(frame, fixedSched)
	s.FixedDelta = 0.25
	w := NewWorld()

	tests := []struct {
		dt        float64
		wantSteps int
	}{
		{0.125, 0},
		{0.125, 1},
		{0.3125, 1},
		{0.1875, 1},
	}
	for i, tc := range tests {
		if got := s.Step(w, tc.dt); got != tc.wantSteps {
			t.Fatalf("step %d: expected %d fixed steps, got %d", i, tc.wantSteps, got)
		}
	}
	if frames != len(tests) {
		t.Fatalf("expected %d frame updates, got %d", len(tests), frames)
	}
	if fixed != 3 {
		t.Fatalf("expected 3 fixed updates, got %d", fixed)
	}
	if lastFrameDelta != 0.1875 {
		t.Fatalf("unexpected frame delta %v", lastFrameDelta)
	}
	if s.Now() != 0.75 {
		t.Fatalf("expected clock 0.75, got %v", s.Now())
	}
}

func TestStepperClampsLongFrames(t *testing.T) {
	s := NewStepper(nil, nil)
	w := NewWorld()
	s.Step(w, 10)
	if got := w.Time().Delta; got != MaxFrameDelta {
		t.Fatalf("expected clamped delta %v, got %v", MaxFrameDelta, got)
	}
	s.Reset()
	if s.Now() != 0 {
		t.Fatalf("expected reset clock")
	}
}
