package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BodyData is the circular physical presence shared by every simulated entity.
// Pos is the circle centre.
type BodyData struct {
	Pos    math.Vec2
	Vel    math.Vec2
	Radius float64
}

var Body = donburi.NewComponentType[BodyData]()
