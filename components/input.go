package components

import (
	cfg "github.com/automoto/saveme/config"
	"github.com/automoto/saveme/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// InputSnapshot is everything the simulation reads from input devices in one tick
type InputSnapshot struct {
	Move        math.Vec2 // each axis in [-1, 1]
	Aim         math.Vec2 // each axis in [-1, 1], meaningful only when HasAim
	HasAim      bool
	Attack      bool
	CycleWeapon bool
}

// Sanitized returns a copy with non-finite axes zeroed and every axis clamped to [-1, 1]
func (in InputSnapshot) Sanitized() InputSnapshot {
	in.Move.X = gamemath.SanitizeAxis(in.Move.X)
	in.Move.Y = gamemath.SanitizeAxis(in.Move.Y)
	in.Aim.X = gamemath.SanitizeAxis(in.Aim.X)
	in.Aim.Y = gamemath.SanitizeAxis(in.Aim.Y)
	if in.Aim.X == 0 && in.Aim.Y == 0 {
		in.HasAim = false
	}
	return in
}

// FrameData is the singleton carrying the current tick's elapsed time and input
type FrameData struct {
	DT    float64 // seconds
	Input InputSnapshot
	Tick  uint64
}

var Frame = donburi.NewComponentType[FrameData]()

// InputData stores the current and previous frame's pressed state for all actions
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

func (d *InputData) Pressed(action cfg.ActionID) bool {
	return d.Current[action]
}

// JustPressed is true only on the frame the action went down
func (d *InputData) JustPressed(action cfg.ActionID) bool {
	return d.Current[action] && !d.Previous[action]
}
