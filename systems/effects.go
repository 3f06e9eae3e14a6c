package systems

import (
	"math"

	"github.com/automoto/saveme/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// Oscillations per second of the shake offset
const shakeFrequency = 30.0

// TriggerScreenShake starts a screen shake. A weaker shake never overrides a
// stronger one still in progress.
func TriggerScreenShake(e *ecs.ECS, intensity, duration float64) {
	if intensity <= 0 || duration <= 0 {
		return
	}
	shake := getShake(e)
	if shake.Active() && shake.Intensity > intensity {
		return
	}
	shake.Intensity = intensity
	shake.Elapsed = 0
	shake.Decay = gween.New(float32(intensity), 0, float32(duration), ease.OutQuad)
}

// UpdateEffects decays the screen shake
func UpdateEffects(e *ecs.ECS) {
	shake := getShake(e)
	if !shake.Active() {
		return
	}

	dt := GetFrame(e).DT
	current, done := shake.Decay.Update(float32(dt))
	shake.Elapsed += dt
	if done {
		shake.Decay = nil
		shake.Intensity = 0
		shake.OffsetX = 0
		shake.OffsetY = 0
		return
	}

	phase := shake.Elapsed * shakeFrequency * 2 * math.Pi
	shake.OffsetX = math.Sin(phase) * float64(current)
	shake.OffsetY = math.Cos(phase*1.3) * float64(current)
}

func getShake(e *ecs.ECS) *components.ScreenShakeData {
	return components.ScreenShake.Get(components.ScreenShake.MustFirst(e.World))
}
