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

func CreatePrincess(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	p := archetypes.Princess.Spawn(ecs)

	components.Body.Set(p, &components.BodyData{
		Pos:    math.NewVec2(x, y),
		Radius: cfg.Princess.Radius,
	})
	components.Health.Set(p, &components.HealthData{
		Current: float64(cfg.Princess.Health),
		Max:     float64(cfg.Princess.Health),
	})
	components.Princess.Set(p, &components.PrincessData{
		State: cfg.PrincessIdle,
	})
	attachObject(ecs, p, x, y, cfg.Princess.Radius, tags.ResolvPrincess)

	return p
}
