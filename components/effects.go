package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks the active screen shake (singleton component)
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels at the start of the shake
	Decay     *gween.Tween
	Elapsed   float64
	OffsetX   float64
	OffsetY   float64
}

func (s *ScreenShakeData) Active() bool {
	return s.Decay != nil
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
