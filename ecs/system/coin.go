package system

import (
	"math"

	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/session"
)

// coinLingerFrames keeps a collected coin alive long enough for its pickup
// sound to be started.
const coinLingerFrames = 2

// CoinCollectSystem handles player overlaps with coins: count the coin, play
// its sound and retire it. It only writes the session's coin count.
type CoinCollectSystem struct {
	session *session.State
}

func NewCoinCollectSystem(s *session.State) *CoinCollectSystem {
	return &CoinCollectSystem{session: s}
}

func (s *CoinCollectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.PlayerCollisionComponent.Kind(), func(_ ecs.Entity, pc *component.PlayerCollision) {
		for _, c := range pc.Overlaps {
			if c.Category != component.CategoryCoin {
				continue
			}
			s.collect(w, ecs.Entity(c.Other))
		}
	})
}

func (s *CoinCollectSystem) collect(w *ecs.World, e ecs.Entity) {
	coin, ok := ecs.Get(w, e, component.CoinComponent.Kind())
	if !ok || coin.Collected {
		return
	}
	coin.Collected = true
	s.session.AddCoins(coin.Value)

	if sounds, ok := ecs.Get(w, e, component.AudioComponent.Kind()); ok {
		sounds.Request("coin")
	}
	ecs.Remove(w, e, component.ColliderComponent.Kind())
	_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: coinLingerFrames})
}

// CoinSpinSystem turns coins about their axis.
type CoinSpinSystem struct{}

func NewCoinSpinSystem() *CoinSpinSystem {
	return &CoinSpinSystem{}
}

func (s *CoinSpinSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Time().Delta
	ecs.ForEach(w, component.CoinComponent.Kind(), func(_ ecs.Entity, coin *component.Coin) {
		coin.Angle = math.Mod(coin.Angle+coin.SpinSpeed*dt, 360)
	})
}
