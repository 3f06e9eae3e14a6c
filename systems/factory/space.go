package factory

import (
	"github.com/automoto/saveme/archetypes"
	"github.com/automoto/saveme/components"
	cfg "github.com/automoto/saveme/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the collision space covering the arena plus a margin on
// every side so off-screen spawns still occupy cells.
func CreateSpace(ecs *ecs.ECS, width, height float64) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	margin := cfg.World.SpaceMargin
	cell := cfg.World.CellSize
	spaceData := resolv.NewSpace(int(width+2*margin), int(height+2*margin), cell, cell)
	components.Space.Set(space, &components.SpaceData{Space: spaceData, Offset: margin})
	return space
}

// attachObject registers a broadphase object for entity e centred at (x, y)
func attachObject(ecs *ecs.ECS, e *donburi.Entry, x, y, r float64, tag string) {
	space := components.Space.Get(components.Space.MustFirst(ecs.World))
	obj := resolv.NewObject(0, 0, r*2, r*2, tag)
	obj.Data = e
	space.Add(obj)
	space.Sync(obj, x, y, r)
	components.Object.Set(e, &components.ObjectData{Object: obj})
}

// DetachObject removes an entity's broadphase object from the space
func DetachObject(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e).Object
	if obj == nil {
		return
	}
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Remove(obj)
	}
}
