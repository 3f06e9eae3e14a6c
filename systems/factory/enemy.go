package factory

import (
	"github.com/automoto/saveme/archetypes"
	"github.com/automoto/saveme/components"
	cfg "github.com/automoto/saveme/config"
	"github.com/automoto/saveme/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateEnemy spawns an enemy of type t. Panics if t is outside the stat table.
func CreateEnemy(ecs *ecs.ECS, t cfg.EnemyType, x, y float64) *donburi.Entry {
	stats := cfg.MustEnemyType(t)
	enemy := archetypes.Enemy.Spawn(ecs)

	components.Body.Set(enemy, &components.BodyData{
		Pos:    math.NewVec2(x, y),
		Radius: stats.Radius,
	})
	components.Health.Set(enemy, &components.HealthData{
		Current: float64(stats.Health),
		Max:     float64(stats.Health),
	})
	components.Enemy.Set(enemy, &components.EnemyData{
		Type: t,
	})
	attachObject(ecs, enemy, x, y, stats.Radius, tags.ResolvEnemy)

	return enemy
}
