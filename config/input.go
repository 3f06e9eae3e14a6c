package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionAimLeft
	ActionAimRight
	ActionAimUp
	ActionAimDown
	ActionAttack
	ActionCycleWeapon
	ActionConfirm
	ActionBack
	ActionToggleAudio
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// Aim with the mouse when no aim key or stick is held
	MouseAim bool
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		MouseAim:       true,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionMoveUp: {
				Keys: []ebiten.Key{ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMoveDown: {
				Keys: []ebiten.Key{ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			// Aim keys; the right stick is read separately
			ActionAimLeft:  {Keys: []ebiten.Key{ebiten.KeyLeft}},
			ActionAimRight: {Keys: []ebiten.Key{ebiten.KeyRight}},
			ActionAimUp:    {Keys: []ebiten.Key{ebiten.KeyUp}},
			ActionAimDown:  {Keys: []ebiten.Key{ebiten.KeyDown}},
			ActionAttack: {
				Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyJ},
				// RT / R2
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontBottomRight,
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			ActionCycleWeapon: {
				Keys: []ebiten.Key{ebiten.KeyQ, ebiten.KeyTab},
				// RB / R1
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionConfirm: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyR},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionToggleAudio: {
				Keys: []ebiten.Key{ebiten.KeyM},
			},
		},
	}
}
