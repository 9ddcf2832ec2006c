package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/lanerunner/common"
	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/session"
	"golang.org/x/image/colornames"
)

const (
	// pixels per world unit
	renderScale = 24.0
	// distance of the player from the bottom of the screen
	renderPlayerOffset = 140.0
)

// RenderSystem draws the track from above: lanes run up the screen and the
// player stays near the bottom edge.
type RenderSystem struct {
	session *session.State
}

func NewRenderSystem(s *session.State) *RenderSystem {
	return &RenderSystem{session: s}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(colornames.Darkslategray)

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	pt, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	spacing := 2.5
	if lane, ok := ecs.Get(w, player, component.LaneComponent.Kind()); ok && lane.Spacing > 0 {
		spacing = lane.Spacing
	}

	originX := float64(common.BaseWidth) / 2
	originY := float64(common.BaseHeight) - renderPlayerOffset
	toScreen := func(x, z float64) (float32, float32) {
		return float32(originX + x*renderScale), float32(originY - (z-pt.Z)*renderScale)
	}

	r.drawLanes(screen, spacing, originX)

	ecs.ForEach2(w, component.ColliderComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, col *component.Collider, t *component.Transform) {
		if col.Category == component.CategoryPlayer {
			return
		}
		for _, l := range col.Lanes {
			x, y := toScreen(component.LateralOffset(l, spacing), t.Z)
			switch col.Category {
			case component.CategoryCoin:
				angle := 0.0
				if coin, ok := ecs.Get(w, e, component.CoinComponent.Kind()); ok {
					angle = coin.Angle
				}
				radius := float32(col.Width / 2 * renderScale)
				squash := float32(math.Abs(math.Cos(angle * math.Pi / 180)))
				vector.FillRect(screen, x-radius*squash, y-radius, 2*radius*squash+1, 2*radius, colornames.Gold, false)
			default:
				halfW := float32(spacing * 0.45 * renderScale)
				depth := float32(col.Depth * renderScale)
				vector.FillRect(screen, x-halfW, y-depth, 2*halfW, depth, obstacleColor(col, t), false)
				vector.StrokeRect(screen, x-halfW, y-depth, 2*halfW, depth, 2, colornames.Black, false)
			}
		}
	})

	r.drawPlayer(w, screen, player, pt, toScreen)
	r.drawHUD(w, screen, player, pt)
}

func (r *RenderSystem) drawLanes(screen *ebiten.Image, spacing, originX float64) {
	laneW := float32(spacing * renderScale)
	for l := component.LaneLeft; l <= component.LaneRight; l++ {
		x := float32(originX+component.LateralOffset(l, spacing)*renderScale) - laneW/2
		fill := colornames.Dimgray
		if l == component.LaneMiddle {
			fill = colornames.Gray
		}
		vector.FillRect(screen, x, 0, laneW, float32(common.BaseHeight), fill, false)
		vector.StrokeRect(screen, x, -2, laneW, float32(common.BaseHeight)+4, 1, colornames.Lightgray, false)
	}
}

func (r *RenderSystem) drawPlayer(w *ecs.World, screen *ebiten.Image, player ecs.Entity, pt *component.Transform, toScreen func(x, z float64) (float32, float32)) {
	x, y := toScreen(pt.X, pt.Z)

	width, length := float32(renderScale), float32(renderScale)
	fill := color.Color(colornames.Deepskyblue)
	if roll, ok := ecs.Get(w, player, component.RollComponent.Kind()); ok && roll.Posture == component.PostureRolling {
		length *= 2
		fill = colornames.Mediumseagreen
	}
	// the shadow stays on the ground while the body rises with height
	lift := float32(common.Clamp(pt.Y, 0, 6) * renderScale * 0.5)
	vector.FillRect(screen, x-width/2, y-length/2, width, length, color.NRGBA{A: 90}, false)
	if r.session.Over() {
		fill = colornames.Crimson
	}
	vector.FillRect(screen, x-width/2, y-length/2-lift, width, length, fill, false)
}

func (r *RenderSystem) drawHUD(w *ecs.World, screen *ebiten.Image, player ecs.Entity, pt *component.Transform) {
	speed := 0.0
	if runner, ok := ecs.Get(w, player, component.RunnerComponent.Kind()); ok {
		speed = runner.ForwardSpeed
	}
	lane := component.LaneMiddle
	if l, ok := ecs.Get(w, player, component.LaneComponent.Kind()); ok {
		lane = l.Index
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Coins: %d  Distance: %.0f  Speed: %.1f  Lane: %s  FPS: %.0f",
		r.session.Coins(), pt.Z, speed, lane, ebiten.ActualFPS()))
}

func obstacleColor(col *component.Collider, t *component.Transform) color.Color {
	switch col.Category {
	case component.CategoryMovingObstacle:
		return colornames.Mediumpurple
	case component.CategoryObstacle:
		switch {
		case t.Y > 0:
			return colornames.Khaki
		case col.Height <= 1.5:
			return colornames.Orange
		default:
			return colornames.Firebrick
		}
	default:
		return colornames.White
	}
}
