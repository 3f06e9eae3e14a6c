package factory

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/automoto/saveme/archetypes"
	"github.com/automoto/saveme/components"
	cfg "github.com/automoto/saveme/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// SpawnParticleBurst emits count particles evenly around (x, y).
// rng may be nil, in which case speeds and sizes use their midpoints.
func SpawnParticleBurst(ecs *ecs.ECS, rng *rand.Rand, x, y float64, count int, c color.RGBA) {
	life := cfg.Particles.LifeSeconds
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		speed := between(rng, cfg.Particles.MinSpeed, cfg.Particles.MaxSpeed)
		size := between(rng, cfg.Particles.MinSize, cfg.Particles.MaxSize)

		p := archetypes.Particle.Spawn(ecs)
		components.Body.Set(p, &components.BodyData{
			Pos:    dmath.NewVec2(x, y),
			Vel:    dmath.NewVec2(math.Cos(angle)*speed, math.Sin(angle)*speed),
			Radius: size,
		})
		components.Particle.Set(p, &components.ParticleData{
			Life:    life,
			Gravity: cfg.Particles.Gravity,
			Size:    size,
			Color:   c,
			Alpha:   1,
			Fade:    gween.New(1, 0, float32(life), ease.OutQuad),
		})
	}
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	if rng == nil {
		return (lo + hi) / 2
	}
	return lo + rng.Float64()*(hi-lo)
}
