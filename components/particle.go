package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type ParticleData struct {
	Life    float64 // seconds remaining
	Gravity float64
	Size    float64
	Color   color.RGBA
	Alpha   float64
	Fade    *gween.Tween
	Expired bool
}

var Particle = donburi.NewComponentType[ParticleData]()
