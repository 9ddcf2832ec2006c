package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Audio is a set of named clips. Players are resolved lazily by the audio
// system so entities can be built without an audio context.
type Audio struct {
	Names   []string
	Files   []string
	Players []*audio.Player
	Volume  []float64
	Play    []bool
	Stop    []bool
}

// Request flags the named clip for playback on the next audio update.
func (a *Audio) Request(name string) bool {
	if a == nil {
		return false
	}
	for i, n := range a.Names {
		if n == name && i < len(a.Play) {
			a.Play[i] = true
			return true
		}
	}
	return false
}

// Pending reports whether the named clip is waiting to be played.
func (a *Audio) Pending(name string) bool {
	if a == nil {
		return false
	}
	for i, n := range a.Names {
		if n == name && i < len(a.Play) {
			return a.Play[i]
		}
	}
	return false
}

var AudioComponent = NewComponent[Audio]()
