package systems

import (
	"github.com/automoto/saveme/components"
	cfg "github.com/automoto/saveme/config"
	"github.com/automoto/saveme/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WithSimulation wraps a system so it only runs while the session is in Play or Win.
func WithSimulation(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !GetSession(e).State.Simulating() {
			return
		}
		system(e)
	}
}

// GetSession returns the session singleton
func GetSession(e *ecs.ECS) *components.SessionData {
	return components.Session.Get(components.Session.MustFirst(e.World))
}

// GetFrame returns the current tick's time step and input
func GetFrame(e *ecs.ECS) *components.FrameData {
	return components.Frame.Get(components.Frame.MustFirst(e.World))
}

// GetWave returns the wave director singleton
func GetWave(e *ecs.ECS) *components.WaveData {
	return components.Wave.Get(components.Wave.MustFirst(e.World))
}

// UpdateTerminal moves a running session to GameOver the first tick the hero
// or the princess runs out of health. The transition fires once.
func UpdateTerminal(e *ecs.ECS) {
	session := GetSession(e)
	if !session.State.Simulating() || session.GameOverHandled {
		return
	}

	if !healthDepleted(e, tags.Hero) && !healthDepleted(e, tags.Princess) {
		return
	}

	session.State = cfg.StateGameOver
	session.GameOverHandled = true
	session.ScorePending = true
	PlaySFX(e, cfg.SoundLose)
}

func healthDepleted(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) bool {
	entry, ok := tag.First(e.World)
	if !ok {
		return false
	}
	return components.Health.Get(entry).Depleted()
}

// CountLiveEnemies counts enemies not yet flagged dead
func CountLiveEnemies(e *ecs.ECS) int {
	n := 0
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if !components.Enemy.Get(entry).Dead {
			n++
		}
	})
	return n
}
