package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/lanerunner/assets"
	"github.com/milk9111/lanerunner/common"
	"github.com/milk9111/lanerunner/ecs/entity"
	"github.com/milk9111/lanerunner/ecs/system"
	"github.com/milk9111/lanerunner/levels"
	"github.com/milk9111/lanerunner/logger"
	"github.com/milk9111/lanerunner/prefabs"
	"github.com/milk9111/lanerunner/sim"
)

type screenState int

const (
	screenTitle screenState = iota
	screenPlaying
	screenPaused
	screenOver
)

type Game struct {
	frames int
	debug  bool

	runner  *sim.Runner
	render  *system.RenderSystem
	watcher *prefabs.Watcher

	state screenState
	ui    *ebitenui.UI
}

func NewGame(courseName string, debug, autopilot bool) (*Game, error) {
	course, err := levels.LoadCourse(courseName)
	if err != nil {
		return nil, err
	}

	runner, err := sim.New(sim.Config{
		Course:    course,
		Autopilot: autopilot,
		Sample:    system.SampleEbitenInput,
		LoadAudio: assets.LoadAudioPlayer,
		Logger:    logger.L(),
	})
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:  debug,
		runner: runner,
		render: system.NewRenderSystem(runner.Session),
	}
	if debug {
		w, err := prefabs.NewWatcher(prefabs.Dir, prefabs.Dir+"/scripts")
		if err != nil {
			logger.L().Warn("prefab watcher disabled", "dir", prefabs.Dir, "err", err)
		} else {
			g.watcher = w
		}
	}
	g.setState(screenTitle)
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++
	g.reloadChanged()

	switch g.state {
	case screenTitle, screenOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.start()
		}
	case screenPaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.setState(screenPlaying)
		}
	case screenPlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
			g.setState(screenPaused)
			break
		}
		g.runner.Frame(1 / float64(ebiten.TPS()))
		if g.runner.Done() {
			g.setState(screenOver)
		}
	}

	if g.ui != nil {
		g.ui.Update()
	}
	return nil
}

// start begins a fresh session, rebuilding the world when a run already
// happened.
func (g *Game) start() {
	if g.runner.Result().Frames > 0 {
		if err := g.runner.Reset(); err != nil {
			logger.L().Error("restart failed", "err", err)
			return
		}
	}
	g.runner.Start()
	g.setState(screenPlaying)
}

func (g *Game) setState(s screenState) {
	g.state = s
	switch s {
	case screenTitle:
		g.ui = NewSessionUI("Lanerunner", "arrows / WASD to run, jump and roll", "Start", g.start)
	case screenPaused:
		g.ui = NewSessionUI("Paused", "", "Resume", func() { g.setState(screenPlaying) })
	case screenOver:
		res := g.runner.Result()
		title := "Game over"
		if !res.Over {
			title = "Course complete"
		}
		g.ui = NewSessionUI(title, fmt.Sprintf("distance %.0f   coins %d", res.Distance, res.Coins), "Restart", g.start)
	default:
		g.ui = nil
	}
}

// reloadChanged applies prefab and script edits picked up by the watcher.
func (g *Game) reloadChanged() {
	if g.watcher == nil {
		return
	}
	for _, name := range g.watcher.Drain() {
		switch name {
		case entity.RunnerPrefab:
			tuning, err := prefabs.LoadTuning(name)
			if err == nil {
				err = g.runner.ApplyTuning(tuning)
			}
			if err != nil {
				logger.L().Warn("tuning reload failed", "file", name, "err", err)
				continue
			}
			logger.L().Info("tuning reloaded", "file", name)
		case system.DefaultAutopilotScript:
			if err := g.runner.ReloadScript(); err != nil {
				logger.L().Warn("autopilot reload failed", "file", name, "err", err)
				continue
			}
			logger.L().Info("autopilot reloaded", "file", name)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.runner.World, screen)
	if g.debug {
		system.DrawPhysicsDebug(g.runner.Space(), g.runner.World, screen)
		system.DrawPlayerStateDebug(g.runner.World, screen)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()), 0, common.BaseHeight-16)
	}
	if g.ui != nil {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
