// Package sim wires the runner's world, systems and session together. The
// game drives it from ebiten's Update; the simulator CLI drives it headless.
package sim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/ecs/entity"
	"github.com/milk9111/lanerunner/ecs/system"
	"github.com/milk9111/lanerunner/levels"
	"github.com/milk9111/lanerunner/logger"
	"github.com/milk9111/lanerunner/prefabs"
	"github.com/milk9111/lanerunner/session"
)

const DefaultFrameRate = 60.0

var ErrNoPlayer = errors.New("sim: runner entity missing")

type Config struct {
	// Course is the track to lay out. Nil runs on an empty track.
	Course *levels.Course
	// Autopilot drives the runner with Script instead of Sample.
	Autopilot bool
	Script    string
	// Sample provides the manual input edges each frame.
	Sample func() component.Input
	// LoadAudio plays clips; nil keeps the run silent.
	LoadAudio system.AudioLoader
	Logger    *slog.Logger
}

// Runner owns one world and its session.
type Runner struct {
	cfg Config
	log *slog.Logger

	World   *ecs.World
	Session *session.State
	Stepper *ecs.Stepper
	Player  ecs.Entity

	physics *system.PhysicsSystem
	course  *system.CourseSystem
	script  *system.ScriptInputSystem
}

func New(cfg Config) (*Runner, error) {
	if cfg.Logger == nil {
		cfg.Logger = logger.L()
	}
	if cfg.Autopilot && cfg.Script == "" {
		cfg.Script = system.DefaultAutopilotScript
	}

	r := &Runner{
		cfg:     cfg,
		log:     cfg.Logger,
		Session: session.New(cfg.Logger),
	}
	r.physics = system.NewPhysicsSystem(r.Session)
	r.course = system.NewCourseSystem(cfg.Course)
	if cfg.Autopilot {
		script, err := system.NewScriptInputSystem(cfg.Script)
		if err != nil {
			return nil, fmt.Errorf("sim: %w", err)
		}
		r.script = script
	}

	input := system.NewInputSystem()
	input.Sample = cfg.Sample

	frame := ecs.NewScheduler(
		r.course,
		input,
	)
	if r.script != nil {
		frame.Add(r.script)
	}
	frame.Add(system.NewVerticalMotionSystem(r.Session))
	frame.Add(system.NewRollSystem())
	frame.Add(system.NewLaneSystem(r.Session))
	frame.Add(system.NewMovementSystem(r.Session))
	frame.Add(system.NewCoinSpinSystem())
	frame.Add(system.NewTTLSystem())
	frame.Add(system.NewAudioSystem(cfg.LoadAudio))

	fixed := ecs.NewScheduler(
		r.physics,
		system.NewCollisionSystem(r.Session),
		system.NewCoinCollectSystem(r.Session),
	)
	r.Stepper = ecs.NewStepper(frame, fixed)

	if err := r.Reset(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reset throws the world away and builds a fresh one with a new runner. The
// session is left stopped.
func (r *Runner) Reset() error {
	r.World = ecs.NewWorld()
	r.Session.Reset()
	r.Stepper.Reset()
	r.physics.Reset()
	r.course.Reset()

	var (
		player ecs.Entity
		err    error
	)
	if r.cfg.Autopilot {
		player, err = entity.NewAutopilotRunner(r.World)
	} else {
		player, err = entity.NewRunner(r.World)
	}
	if err != nil {
		return fmt.Errorf("sim: build runner: %w", err)
	}
	r.Player = player
	// lay out the first stretch of track before the first frame
	r.course.Update(r.World)
	return nil
}

func (r *Runner) Start() {
	r.Session.SetRunning(true)
}

// Frame advances the world by dt seconds. When the session has ended the
// runner stops it, since it owns the running flag.
func (r *Runner) Frame(dt float64) {
	r.Stepper.Step(r.World, dt)
	if r.Session.Over() && r.Session.Running() {
		r.Session.SetRunning(false)
	}
}

// Space exposes the physics space for debug drawing.
func (r *Runner) Space() *cp.Space {
	return r.physics.Space()
}

// Done reports whether the run cannot make progress any more.
func (r *Runner) Done() bool {
	return r.Session.Over() || r.course.Finished(r.World)
}

// ApplyTuning re-applies runner tuning to the live player.
func (r *Runner) ApplyTuning(t prefabs.Tuning) error {
	return entity.ApplyTuning(r.World, r.Player, t)
}

// ReloadScript recompiles the autopilot script, keeping the old one on error.
func (r *Runner) ReloadScript() error {
	if r.script == nil {
		return nil
	}
	return r.script.Reload()
}

// Result summarises a run.
type Result struct {
	Frames   int                 `json:"frames"`
	Elapsed  float64             `json:"elapsed"`
	Distance float64             `json:"distance"`
	Speed    float64             `json:"speed"`
	Lane     component.LaneIndex `json:"lane"`
	Coins    int                 `json:"coins"`
	Over     bool                `json:"over"`
	Finished bool                `json:"finished"`
}

func (r *Runner) Result() Result {
	res := Result{
		Frames:   int(r.World.Time().Frame),
		Elapsed:  r.Stepper.Now(),
		Coins:    r.Session.Coins(),
		Over:     r.Session.Over(),
		Finished: r.course.Finished(r.World),
	}
	if t, ok := ecs.Get(r.World, r.Player, component.TransformComponent.Kind()); ok {
		res.Distance = t.Z
	}
	if run, ok := ecs.Get(r.World, r.Player, component.RunnerComponent.Kind()); ok {
		res.Speed = run.ForwardSpeed
	}
	if lane, ok := ecs.Get(r.World, r.Player, component.LaneComponent.Kind()); ok {
		res.Lane = lane.Index
	}
	return res
}

// Run starts the session and steps at a fixed frame rate until the run is
// over, the course ends, maxSeconds of game time pass or ctx is done.
func (r *Runner) Run(ctx context.Context, frameRate, maxSeconds float64) (Result, error) {
	if !ecs.IsAlive(r.World, r.Player) {
		return Result{}, ErrNoPlayer
	}
	if frameRate <= 0 {
		frameRate = DefaultFrameRate
	}
	dt := 1 / frameRate
	r.Start()
	for !r.Done() && (maxSeconds <= 0 || r.Stepper.Now() < maxSeconds) {
		if err := ctx.Err(); err != nil {
			return r.Result(), err
		}
		r.Frame(dt)
	}
	res := r.Result()
	r.log.Info("run finished",
		"distance", fmt.Sprintf("%.1f", res.Distance),
		"coins", res.Coins,
		"over", res.Over,
		"seconds", fmt.Sprintf("%.2f", res.Elapsed),
	)
	return res, nil
}
