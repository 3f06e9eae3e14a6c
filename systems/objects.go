package systems

import (
	"github.com/automoto/saveme/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// syncObject moves an entity's broadphase object onto its body
func syncObject(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry).Object
	if obj == nil {
		return
	}
	body := components.Body.Get(entry)
	space := components.Space.Get(components.Space.MustFirst(e.World))
	space.Sync(obj, body.Pos.X, body.Pos.Y, body.Radius)
}
