// Package arena describes where things start in the playfield: hero and princess
// spawns, temples and enemy spawn points. Layouts come from Tiled maps or Default.
package arena

import (
	"math"

	cfg "github.com/automoto/saveme/config"
	dmath "github.com/yohamta/donburi/features/math"
)

type Layout struct {
	Width  float64
	Height float64

	HeroSpawn     dmath.Vec2
	PrincessSpawn dmath.Vec2
	Temples       []TempleSpawn
	// Enemy spawn points, usually just outside the visible arena
	SpawnPoints []dmath.Vec2
}

type TempleSpawn struct {
	X, Y      float64
	Direction float64 // radians
	PowerUp   cfg.PowerUp
}

// Default is the built-in arena: one temple per power-up near each corner, all
// facing the centre, and enemies entering from the eight compass points.
func Default() *Layout {
	w, h := cfg.World.Width, cfg.World.Height
	inset := 90.0

	corners := []struct {
		x, y    float64
		powerUp cfg.PowerUp
	}{
		{inset, inset, cfg.PowerUpSpreadShot},
		{w - inset, inset, cfg.PowerUpGiantWeapon},
		{inset, h - inset, cfg.PowerUpFireTrail},
		{w - inset, h - inset, cfg.PowerUpSpeedBoost},
	}

	l := &Layout{
		Width:         w,
		Height:        h,
		HeroSpawn:     dmath.NewVec2(cfg.Hero.StartX, cfg.Hero.StartY),
		PrincessSpawn: dmath.NewVec2(cfg.Princess.StartX, cfg.Princess.StartY),
		SpawnPoints:   CompassPoints(w, h, cfg.World.SpawnOffset),
	}
	for _, c := range corners {
		l.Temples = append(l.Temples, TempleSpawn{
			X:         c.x,
			Y:         c.y,
			Direction: math.Atan2(h/2-c.y, w/2-c.x),
			PowerUp:   c.powerUp,
		})
	}
	return l
}

// CompassPoints returns the eight compass points offset outside a width x height arena
func CompassPoints(width, height, offset float64) []dmath.Vec2 {
	midX := width / 2
	midY := height / 2
	return []dmath.Vec2{
		{X: midX, Y: -offset},                   // N
		{X: width + offset, Y: -offset},         // NE
		{X: width + offset, Y: midY},            // E
		{X: width + offset, Y: height + offset}, // SE
		{X: midX, Y: height + offset},           // S
		{X: -offset, Y: height + offset},        // SW
		{X: -offset, Y: midY},                   // W
		{X: -offset, Y: -offset},                // NW
	}
}
