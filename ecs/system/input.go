package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
)

// InputSystem samples keyboard and gamepad edges into the Input component of
// every entity that is not on autopilot.
type InputSystem struct {
	// Sample is swappable so tests can feed edges without ebiten.
	Sample func() component.Input
}

func NewInputSystem() *InputSystem {
	return &InputSystem{Sample: SampleEbitenInput}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	in := component.Input{}
	if i.Sample != nil {
		in = i.Sample()
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		if ecs.Has(w, e, component.AutopilotTagComponent.Kind()) {
			return
		}
		*input = in
	})
}

// SampleEbitenInput reads this frame's key and d-pad presses.
func SampleEbitenInput() component.Input {
	in := component.Input{
		Up:    justPressed(ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace),
		Down:  justPressed(ebiten.KeyArrowDown, ebiten.KeyS),
		Left:  justPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right: justPressed(ebiten.KeyArrowRight, ebiten.KeyD),
	}

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		in.Up = in.Up || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftTop) ||
			inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.Down = in.Down || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftBottom)
		in.Left = in.Left || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		in.Right = in.Right || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftRight)
	}
	return in
}

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
