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

func CreateHero(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	hero := archetypes.Hero.Spawn(ecs)

	components.Body.Set(hero, &components.BodyData{
		Pos:    dmath.NewVec2(x, y),
		Radius: cfg.Hero.Radius,
	})
	components.Health.Set(hero, &components.HealthData{
		Current: float64(cfg.Hero.Health),
		Max:     float64(cfg.Hero.Health),
	})
	// Face up, toward the princess
	components.Hero.Set(hero, &components.HeroData{
		Facing: -math.Pi / 2,
		Weapon: cfg.WeaponMelee,
	})
	attachObject(ecs, hero, x, y, cfg.Hero.Radius, tags.ResolvHero)

	return hero
}
