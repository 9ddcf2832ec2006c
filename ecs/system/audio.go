package system

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/logger"
)

// AudioLoader creates a player for a clip file.
type AudioLoader func(file string) (*audio.Player, error)

// AudioSystem starts and stops clips flagged on Audio components. Players are
// created on first use. Without a loader flags are consumed silently, which
// is how the headless simulator runs.
type AudioSystem struct {
	load   AudioLoader
	failed map[string]bool
}

func NewAudioSystem(load AudioLoader) *AudioSystem {
	return &AudioSystem{load: load, failed: map[string]bool{}}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		count := len(audioComp.Play)
		if len(audioComp.Players) < count {
			count = len(audioComp.Players)
		}

		for i := 0; i < count; i++ {
			if !audioComp.Play[i] {
				continue
			}
			audioComp.Play[i] = false

			player := a.player(audioComp, i)
			if player == nil {
				continue
			}
			if i < len(audioComp.Volume) {
				player.SetVolume(audioComp.Volume[i])
			}
			_ = player.Rewind()
			player.Play()
		}

		for i := 0; i < count && i < len(audioComp.Stop); i++ {
			if !audioComp.Stop[i] {
				continue
			}
			audioComp.Stop[i] = false
			if player := audioComp.Players[i]; player != nil && player.IsPlaying() {
				player.Pause()
			}
		}
	})
}

func (a *AudioSystem) player(audioComp *component.Audio, i int) *audio.Player {
	if p := audioComp.Players[i]; p != nil {
		return p
	}
	if a.load == nil {
		return nil
	}
	file := audioComp.Names[i]
	if i < len(audioComp.Files) && audioComp.Files[i] != "" {
		file = audioComp.Files[i]
	}
	if a.failed[file] {
		return nil
	}
	p, err := a.load(file)
	if err != nil {
		a.failed[file] = true
		logger.L().Warn("audio: load clip failed", "file", file, "err", err)
		return nil
	}
	audioComp.Players[i] = p
	return p
}
