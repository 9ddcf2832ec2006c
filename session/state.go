// Package session holds the flags shared between the runner core and the
// code that owns a play session.
//
// Each field has exactly one writer:
//   - running is written by the session owner (game loop or simulator),
//   - over is written once by the collision system,
//   - coins is written by the coin pickup system.
//
// All access happens on the goroutine that drives the frame loop.
package session

import "log/slog"

type State struct {
	running bool
	over    bool
	coins   int

	log *slog.Logger
}

func New(log *slog.Logger) *State {
	if log == nil {
		log = slog.Default()
	}
	return &State{log: log}
}

func (s *State) Running() bool {
	return s != nil && s.running
}

func (s *State) SetRunning(running bool) {
	if s == nil || s.running == running {
		return
	}
	s.running = running
	s.log.Debug("session running changed", "running", running)
}

func (s *State) Over() bool {
	return s != nil && s.over
}

// MarkOver ends the session. It reports whether this call was the one that
// ended it; later calls are no-ops.
func (s *State) MarkOver(reason string) bool {
	if s == nil || s.over {
		return false
	}
	s.over = true
	s.log.Info("session over", "reason", reason, "coins", s.coins)
	return true
}

func (s *State) Coins() int {
	if s == nil {
		return 0
	}
	return s.coins
}

func (s *State) AddCoins(n int) {
	if s == nil || n <= 0 {
		return
	}
	s.coins += n
}

// Reset starts a fresh session with running cleared.
func (s *State) Reset() {
	if s == nil {
		return
	}
	s.running = false
	s.over = false
	s.coins = 0
}
