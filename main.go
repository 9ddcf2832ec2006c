package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/lanerunner/common"
	"github.com/milk9111/lanerunner/logger"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (physics overlay, prefab hot reload)")
	autopilot := flag.Bool("autopilot", false, "let the autopilot script drive the runner")
	courseName := flag.String("course", "endless", "course name in levels/ (.json optional)")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	log := logger.Init(logger.Config{Level: *logLevel, Format: "console", Output: os.Stderr})

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("lanerunner")

	game, err := NewGame(*courseName, *debug, *autopilot)
	if err != nil {
		log.Error("start game", "err", err)
		os.Exit(1)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Error("run game", "err", err)
		os.Exit(1)
	}
}
