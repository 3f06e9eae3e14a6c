package systems

import (
	"github.com/automoto/saveme/components"
	cfg "github.com/automoto/saveme/config"
	"github.com/automoto/saveme/shared/gamemath"
	"github.com/automoto/saveme/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePrincess(e *ecs.ECS) {
	entry, ok := tags.Princess.First(e.World)
	if !ok {
		return
	}
	heroEntry, _ := tags.Hero.First(e.World)
	updatePrincess(entry, heroEntry, GetFrame(e).DT)
	syncObject(e, entry)
}

func updatePrincess(entry, heroEntry *donburi.Entry, dt float64) {
	princess := components.Princess.Get(entry)

	if princess.PanicTimer > 0 {
		princess.PanicTimer -= dt
		if princess.PanicTimer <= 0 {
			princess.PanicTimer = 0
			princess.Panic = false
		}
	}

	if princess.State != cfg.PrincessWinRun || heroEntry == nil {
		return
	}

	body := components.Body.Get(entry)
	heroBody := components.Body.Get(heroEntry)
	dx, dy := gamemath.SteerToward(body.Pos.X, body.Pos.Y, heroBody.Pos.X, heroBody.Pos.Y, cfg.Princess.WinRunSpeed*dt)
	body.Pos.X += dx
	body.Pos.Y += dy

	if gamemath.Distance(body.Pos.X, body.Pos.Y, heroBody.Pos.X, heroBody.Pos.Y) <= cfg.Princess.LoveDistance {
		princess.State = cfg.PrincessWinLove
		components.Hero.Get(heroEntry).Loved = true
	}
}

// DamagePrincess subtracts health (floored at 0) and restarts her panic countdown
func DamagePrincess(entry *donburi.Entry, amount float64) {
	components.Health.Get(entry).Damage(amount)
	princess := components.Princess.Get(entry)
	princess.Panic = true
	princess.PanicTimer = cfg.Princess.PanicSeconds
}

// BeginWinRun starts the victory run. States never move backwards.
func BeginWinRun(entry *donburi.Entry) {
	princess := components.Princess.Get(entry)
	if princess.State == cfg.PrincessIdle {
		princess.State = cfg.PrincessWinRun
	}
}
