package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its broadphase cell in the collision space
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData is the singleton collision space. Offset maps world coordinates
// into space coordinates so entities outside the arena still land in a cell.
type SpaceData struct {
	*resolv.Space
	Offset float64
}

var Space = donburi.NewComponentType[SpaceData]()

// Sync moves the object's bounding square onto a circle at (x, y) with radius r
func (s *SpaceData) Sync(obj *resolv.Object, x, y, r float64) {
	obj.X = x - r + s.Offset
	obj.Y = y - r + s.Offset
	obj.W = r * 2
	obj.H = r * 2
	obj.Update()
}
