package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/lanerunner/common"
	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 0.2

	// side view inset: pixels per world unit and the visible range
	debugScale   = 16.0
	debugBehind  = 4.0
	debugOriginX = 40.0
	debugOriginY = 200.0
)

// DrawPhysicsDebug draws the Chipmunk space as seen from the side, the
// player's distance on the left and the track running to the right.
func DrawPhysicsDebug(space *cp.Space, w *ecs.World, screen *ebiten.Image) {
	if space == nil || w == nil || screen == nil {
		return
	}
	camZ, _ := playerZ(w)
	drawer := &physicsDebugDrawer{
		screen: screen,
		camX:   camZ - debugBehind,
		zoom:   debugScale,
	}
	vector.FillRect(screen, 0, 0, common.BaseWidth, debugOriginY+20, color.NRGBA{A: 160}, false)
	cp.DrawSpace(space, drawer)
}

// DrawPlayerStateDebug prints the locomotion state of the player.
func DrawPlayerStateDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	lane, _ := ecs.Get(w, player, component.LaneComponent.Kind())
	v, _ := ecs.Get(w, player, component.VerticalComponent.Kind())
	roll, _ := ecs.Get(w, player, component.RollComponent.Kind())
	r, _ := ecs.Get(w, player, component.RunnerComponent.Kind())
	if lane == nil || v == nil || roll == nil || r == nil {
		return
	}
	contacts := 0
	if pc, ok := ecs.Get(w, player, component.PlayerCollisionComponent.Kind()); ok {
		contacts = len(pc.Blocking) + len(pc.Overlaps)
	}
	text := fmt.Sprintf("Lane: %s\nPosture: %s\nGrounded: %v\nVertical: %.2f\nSpeed: %.2f\nContacts: %d",
		lane.Index, roll.Posture, v.Grounded, v.Velocity, r.ForwardSpeed, contacts)
	ebitenutil.DebugPrintAt(screen, text, common.BaseWidth-180, debugOriginY+30)
}

type physicsDebugDrawer struct {
	screen *ebiten.Image
	camX   float64
	zoom   float64
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	d.drawCircle(pos, radius, outline)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, outline)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
	if radius > 0 {
		d.drawCircle(a, radius, outline)
		d.drawCircle(b, radius, outline)
	}
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	half := debugDotSize / 2
	d.drawLine(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, fill)
	d.drawLine(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, fill)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_COLLISION_POINTS
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

// ShapeColor tells sensors (coins) apart from solid shapes.
func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape.Sensor() {
		return cp.FColor{R: 1, G: 0.85, B: 0.1, A: 0.6}
	}
	return cp.FColor{R: 0.1, G: 0.6, B: 0.1, A: 0.5}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.toScreen(a)
	x2, y2 := d.toScreen(b)
	vector.StrokeLine(d.screen, x1, y1, x2, y2, 1, toNRGBA(c), false)
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := 0; i < len(verts); i++ {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *physicsDebugDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	if radius <= 0 {
		return
	}
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, c)
}

// toScreen flips Y so height grows upward and clamps the far ends of the
// ground box so they stay in float32 range.
func (d *physicsDebugDrawer) toScreen(v cp.Vector) (float32, float32) {
	x := common.Clamp((v.X-d.camX)*d.zoom, -common.BaseWidth, 2*common.BaseWidth)
	y := common.Clamp(debugOriginY-v.Y*d.zoom, -common.BaseHeight, 2*common.BaseHeight)
	return float32(x + debugOriginX), float32(y)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
