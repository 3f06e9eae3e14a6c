package systems

import (
	"testing"

	"github.com/automoto/saveme/arena"
	cfg "github.com/automoto/saveme/config"
	"github.com/automoto/saveme/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestECS builds a playing world with the hero at (400, 360) and the
// princess at (400, 300) and no temples.
func newTestECS(t *testing.T, waves []cfg.Wave) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.World.Width, cfg.World.Height)
	factory.CreateSession(e, 7)
	if waves == nil {
		waves = cfg.DefaultWaves()
	}
	factory.CreateWaveDirector(e, waves, arena.CompassPoints(cfg.World.Width, cfg.World.Height, cfg.World.SpawnOffset))
	factory.CreatePrincess(e, 400, 300)
	factory.CreateHero(e, 400, 360)

	GetSession(e).State = cfg.StatePlay
	setDT(e, 1.0/60)
	return e
}

func setDT(e *ecs.ECS, dt float64) {
	GetFrame(e).DT = dt
}

func countSFX(e *ecs.ECS, sound cfg.SoundID) int {
	n := 0
	for _, s := range getAudio(e).PendingSFX {
		if s == sound {
			n++
		}
	}
	return n
}

func countTagged(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(e.World, func(*donburi.Entry) {
		n++
	})
	return n
}
