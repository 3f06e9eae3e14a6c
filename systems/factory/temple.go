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

func CreateTemple(ecs *ecs.ECS, x, y, direction float64, powerUp cfg.PowerUp) *donburi.Entry {
	t := archetypes.Temple.Spawn(ecs)

	components.Body.Set(t, &components.BodyData{
		Pos:    math.NewVec2(x, y),
		Radius: cfg.Temple.Radius,
	})
	components.Temple.Set(t, &components.TempleData{
		Direction: direction,
		PowerUp:   powerUp,
		Threshold: cfg.Temple.SoulThreshold,
	})
	attachObject(ecs, t, x, y, cfg.Temple.Radius, tags.ResolvTemple)

	return t
}
