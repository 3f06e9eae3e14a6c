package factory

import (
	"math"

	"github.com/automoto/saveme/archetypes"
	"github.com/automoto/saveme/components"
	cfg "github.com/automoto/saveme/config"
	"github.com/automoto/saveme/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateProjectile spawns a projectile of the given kind travelling along angle
func CreateProjectile(ecs *ecs.ECS, kind cfg.ProjectileKind, x, y, angle float64) *donburi.Entry {
	stats := cfg.Projectiles[kind]
	p := archetypes.Projectile.Spawn(ecs)

	components.Body.Set(p, &components.BodyData{
		Pos:    dmath.NewVec2(x, y),
		Vel:    dmath.NewVec2(math.Cos(angle)*stats.Speed, math.Sin(angle)*stats.Speed),
		Radius: stats.Radius,
	})
	components.Projectile.Set(p, &components.ProjectileData{
		Kind:     kind,
		Angle:    angle,
		Speed:    stats.Speed,
		Damage:   stats.Damage,
		Piercing: stats.Piercing,
		Freezes:  stats.Freezes,
		Color:    stats.Color,
	})
	attachObject(ecs, p, x, y, stats.Radius, tags.ResolvProjectile)

	return p
}
