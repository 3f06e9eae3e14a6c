package systems

import (
	"math"

	"github.com/automoto/saveme/components"
	cfg "github.com/automoto/saveme/config"
	"github.com/hajimehoshi/ebiten/v2"
	dmath "github.com/yohamta/donburi/features/math"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// PollInput swaps the action buffers and reads keyboard, gamepad and mouse state.
// Must run once per frame before BuildSnapshot.
func PollInput(input *components.InputData) {
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	if cfg.Input.MouseAim && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		input.Current[cfg.ActionAttack] = true
	}
}

// BuildSnapshot turns polled actions into the simulation's input snapshot.
// heroX, heroY anchor mouse aiming.
func BuildSnapshot(input *components.InputData, heroX, heroY float64) components.InputSnapshot {
	snap := components.InputSnapshot{
		Move:        axisFromActions(input, cfg.ActionMoveLeft, cfg.ActionMoveRight, cfg.ActionMoveUp, cfg.ActionMoveDown),
		Attack:      input.Pressed(cfg.ActionAttack),
		CycleWeapon: input.JustPressed(cfg.ActionCycleWeapon),
	}

	leftX, leftY, rightX, rightY := readSticks()
	if snap.Move.X == 0 && snap.Move.Y == 0 {
		snap.Move = dmath.NewVec2(leftX, leftY)
	}

	aim := axisFromActions(input, cfg.ActionAimLeft, cfg.ActionAimRight, cfg.ActionAimUp, cfg.ActionAimDown)
	switch {
	case aim.X != 0 || aim.Y != 0:
		snap.Aim = aim
		snap.HasAim = true
	case rightX != 0 || rightY != 0:
		snap.Aim = dmath.NewVec2(rightX, rightY)
		snap.HasAim = true
	case cfg.Input.MouseAim:
		mx, my := ebiten.CursorPosition()
		if aim, ok := mouseAim(float64(mx), float64(my), heroX, heroY); ok {
			snap.Aim = aim
			snap.HasAim = true
		}
	}

	return snap.Sanitized()
}

func axisFromActions(input *components.InputData, left, right, up, down cfg.ActionID) dmath.Vec2 {
	var v dmath.Vec2
	if input.Pressed(left) {
		v.X--
	}
	if input.Pressed(right) {
		v.X++
	}
	if input.Pressed(up) {
		v.Y--
	}
	if input.Pressed(down) {
		v.Y++
	}
	return v
}

// mouseAim returns the unit vector from the hero to the cursor
func mouseAim(mx, my, heroX, heroY float64) (dmath.Vec2, bool) {
	dx := mx - heroX
	dy := my - heroY
	dist := math.Hypot(dx, dy)
	if dist < 1 {
		return dmath.Vec2{}, false
	}
	return dmath.NewVec2(dx/dist, dy/dist), true
}

// readSticks returns the first deflected stick pair across connected gamepads
func readSticks() (leftX, leftY, rightX, rightY float64) {
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		lx := deadzone(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal))
		ly := deadzone(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical))
		rx := deadzone(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal))
		ry := deadzone(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical))
		if leftX == 0 && leftY == 0 {
			leftX, leftY = lx, ly
		}
		if rightX == 0 && rightY == 0 {
			rightX, rightY = rx, ry
		}
	}
	return
}

func deadzone(v float64) float64 {
	if math.Abs(v) < cfg.Input.AnalogDeadzone {
		return 0
	}
	return v
}
