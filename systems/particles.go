package systems

import (
	"github.com/automoto/saveme/components"
	"github.com/automoto/saveme/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticles integrates cosmetic particles and flags them once expired
func UpdateParticles(e *ecs.ECS) {
	dt := GetFrame(e).DT
	tags.Particle.Each(e.World, func(entry *donburi.Entry) {
		updateParticle(components.Particle.Get(entry), components.Body.Get(entry), dt)
	})
}

func updateParticle(p *components.ParticleData, body *components.BodyData, dt float64) {
	if p.Expired {
		return
	}
	body.Vel.Y += p.Gravity * dt
	body.Pos.X += body.Vel.X * dt
	body.Pos.Y += body.Vel.Y * dt

	p.Life -= dt
	if p.Fade != nil {
		alpha, done := p.Fade.Update(float32(dt))
		p.Alpha = float64(alpha)
		if done {
			p.Alpha = 0
		}
	}
	if p.Life <= 0 {
		p.Life = 0
		p.Expired = true
	}
}
