package systems

import (
	"github.com/automoto/saveme/components"
	cfg "github.com/automoto/saveme/config"
	"github.com/automoto/saveme/shared/gamemath"
	"github.com/automoto/saveme/systems/factory"
	"github.com/automoto/saveme/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTemples grants a temple's power-up when the hero touches it while charged
func UpdateTemples(e *ecs.ECS) {
	heroEntry, ok := tags.Hero.First(e.World)
	if !ok || components.Health.Get(heroEntry).Depleted() {
		return
	}
	heroObj := components.Object.Get(heroEntry).Object
	heroBody := components.Body.Get(heroEntry)

	check := heroObj.Check(0, 0, tags.ResolvTemple)
	if check == nil {
		return
	}

	for _, obj := range check.Objects {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		body := components.Body.Get(entry)
		if !gamemath.CirclesOverlap(heroBody.Pos.X, heroBody.Pos.Y, heroBody.Radius, body.Pos.X, body.Pos.Y, body.Radius) {
			continue
		}
		temple := components.Temple.Get(entry)
		if !temple.Consume() {
			continue
		}
		components.Hero.Get(heroEntry).ActivatePowerUp(temple.PowerUp, cfg.Hero.PowerUpSeconds)
		factory.SpawnParticleBurst(e, GetSession(e).Rand, body.Pos.X, body.Pos.Y, cfg.Combat.HitParticles, cfg.Temple.ChargedColor)
		PlaySFX(e, cfg.SoundPowerUp)
	}
}

// ChargeTemples adds one soul to every temple
func ChargeTemples(e *ecs.ECS) {
	tags.Temple.Each(e.World, func(entry *donburi.Entry) {
		components.Temple.Get(entry).AddSoul()
	})
}
