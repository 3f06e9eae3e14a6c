package archetypes

import (
	"github.com/automoto/saveme/components"
	cfg "github.com/automoto/saveme/config"
	"github.com/automoto/saveme/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Hero = newArchetype(
		tags.Hero,
		components.Hero,
		components.Body,
		components.Health,
		components.Object,
	)
	Princess = newArchetype(
		tags.Princess,
		components.Princess,
		components.Body,
		components.Health,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Body,
		components.Health,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Body,
		components.Object,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
		components.Body,
	)
	Temple = newArchetype(
		tags.Temple,
		components.Temple,
		components.Body,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Session = newArchetype(
		components.Session,
		components.Frame,
		components.Audio,
		components.ScreenShake,
	)
	Wave = newArchetype(
		components.Wave,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
