package ecs

type System interface {
	Update(w *World)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) { f(w) }

// Scheduler runs its systems in insertion order.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}

const (
	DefaultFixedDelta = 0.02
	// MaxFrameDelta bounds how much time a single frame may feed the fixed
	// stepper, so a stall does not turn into a burst of physics steps.
	MaxFrameDelta = 1.0 / 3.0
)

// Stepper drives two schedulers: Frame once per rendered frame with the
// variable delta, then Fixed zero or more times at FixedDelta.
type Stepper struct {
	Frame *Scheduler
	Fixed *Scheduler

	FixedDelta float64

	accumulator float64
	now         float64
	frame       uint64
}

func NewStepper(frame, fixed *Scheduler) *Stepper {
	if frame == nil {
		frame = NewScheduler()
	}
	if fixed == nil {
		fixed = NewScheduler()
	}
	return &Stepper{Frame: frame, Fixed: fixed, FixedDelta: DefaultFixedDelta}
}

// Step advances the world by dt seconds and returns the number of fixed
// steps it ran.
func (s *Stepper) Step(w *World, dt float64) int {
	if w == nil {
		return 0
	}
	if dt < 0 {
		dt = 0
	}
	if dt > MaxFrameDelta {
		dt = MaxFrameDelta
	}
	fixed := s.FixedDelta
	if fixed <= 0 {
		fixed = DefaultFixedDelta
	}

	s.frame++
	s.now += dt
	w.SetTime(Time{Delta: dt, FixedDelta: fixed, Now: s.now, Frame: s.frame})
	s.Frame.Update(w)

	s.accumulator += dt
	steps := 0
	for s.accumulator >= fixed {
		s.accumulator -= fixed
		s.Fixed.Update(w)
		steps++
	}
	return steps
}

// Now reports the session clock.
func (s *Stepper) Now() float64 {
	return s.now
}

// Reset zeroes the clock and the accumulator, for a new session.
func (s *Stepper) Reset() {
	s.accumulator = 0
	s.now = 0
	s.frame = 0
}
