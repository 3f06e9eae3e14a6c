package systems

import (
	"github.com/automoto/saveme/components"
	"github.com/automoto/saveme/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves projectiles along their fixed heading. Removal is
// decided by the combat resolver.
func UpdateProjectiles(e *ecs.ECS) {
	dt := GetFrame(e).DT
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		if components.Projectile.Get(entry).Remove {
			return
		}
		body := components.Body.Get(entry)
		body.Pos.X += body.Vel.X * dt
		body.Pos.Y += body.Vel.Y * dt
		syncObject(e, entry)
	})
}
