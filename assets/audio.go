// Package assets provides the game's sound effects. The clips are
// synthesized at startup instead of shipped as files.
package assets

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const SampleRate = 44100

var (
	contextOnce  sync.Once
	audioContext *audio.Context

	clipsOnce sync.Once
	clips     map[string][]byte
)

// Context returns the shared audio context, creating it on first use. Ebiten
// allows a single context per process.
func Context() *audio.Context {
	contextOnce.Do(func() {
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

// LoadAudio returns the PCM bytes of a named clip in ebiten's native format.
func LoadAudio(name string) ([]byte, error) {
	clipsOnce.Do(func() {
		clips = synthesizeClips(SampleRate)
	})
	b, ok := clips[name]
	if !ok {
		return nil, fmt.Errorf("assets: unknown clip %q", name)
	}
	return b, nil
}

// LoadAudioPlayer creates a player for a named clip.
func LoadAudioPlayer(name string) (*audio.Player, error) {
	b, err := LoadAudio(name)
	if err != nil {
		return nil, err
	}
	return Context().NewPlayerFromBytes(b), nil
}

// ClipNames lists the available clips.
func ClipNames() []string {
	return []string{"coin", "jump", "land", "swerve"}
}
