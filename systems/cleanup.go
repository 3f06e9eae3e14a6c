package systems

import (
	"github.com/automoto/saveme/components"
	"github.com/automoto/saveme/systems/factory"
	"github.com/automoto/saveme/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCleanup removes every entity flagged dead, spent or expired during the tick
func UpdateCleanup(e *ecs.ECS) {
	var toRemove []*donburi.Entry

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if components.Enemy.Get(entry).Dead {
			toRemove = append(toRemove, entry)
		}
	})
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		if components.Projectile.Get(entry).Remove {
			toRemove = append(toRemove, entry)
		}
	})
	tags.Particle.Each(e.World, func(entry *donburi.Entry) {
		if components.Particle.Get(entry).Expired {
			toRemove = append(toRemove, entry)
		}
	})

	for _, entry := range toRemove {
		if !entry.Valid() {
			continue
		}
		factory.DetachObject(e, entry)
		e.World.Remove(entry.Entity())
	}
}
