package factory

import (
	"math/rand"

	"github.com/automoto/saveme/archetypes"
	"github.com/automoto/saveme/components"
	cfg "github.com/automoto/saveme/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateSession spawns the session singleton seeded with seed
func CreateSession(ecs *ecs.ECS, seed int64) *donburi.Entry {
	e := archetypes.Session.Spawn(ecs)
	components.Session.Set(e, &components.SessionData{
		State: cfg.StateMenu,
		Rand:  rand.New(rand.NewSource(seed)),
	})
	return e
}

// CreateWaveDirector spawns the wave director singleton for a wave table
func CreateWaveDirector(ecs *ecs.ECS, table []cfg.Wave, spawnPoints []math.Vec2) *donburi.Entry {
	e := archetypes.Wave.Spawn(ecs)
	components.Wave.Set(e, &components.WaveData{
		Table:       table,
		Index:       -1,
		SpawnPoints: spawnPoints,
	})
	return e
}
