package systems

import (
	"log"

	"github.com/automoto/saveme/components"
	cfg "github.com/automoto/saveme/config"
	"github.com/automoto/saveme/shared/gamemath"
	"github.com/automoto/saveme/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateEnemies(e *ecs.ECS) {
	heroEntry, _ := tags.Hero.First(e.World)
	princessEntry, _ := tags.Princess.First(e.World)
	dt := GetFrame(e).DT

	// Collect first: burn deaths spawn particles and must not mutate the world mid-iteration
	var enemies []*donburi.Entry
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemies = append(enemies, entry)
	})

	for _, entry := range enemies {
		updateEnemySafely(e, entry, heroEntry, princessEntry, dt)
	}
}

// updateEnemySafely isolates one enemy's update; a failure kills that enemy only
func updateEnemySafely(e *ecs.ECS, entry, heroEntry, princessEntry *donburi.Entry, dt float64) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Warning: enemy update failed, removing enemy: %v", r)
			enemy := components.Enemy.Get(entry)
			enemy.Dead = true
			components.Health.Get(entry).Current = 0
		}
	}()
	updateEnemy(e, entry, heroEntry, princessEntry, dt)
}

func updateEnemy(e *ecs.ECS, entry, heroEntry, princessEntry *donburi.Entry, dt float64) {
	enemy := components.Enemy.Get(entry)
	if enemy.Dead {
		return
	}
	stats := enemy.Stats()
	body := components.Body.Get(entry)

	speed := stats.Speed
	if enemy.FreezeTimer > 0 {
		speed *= cfg.Enemy.FreezeSpeedFactor
		enemy.FreezeTimer = decay(enemy.FreezeTimer, dt)
	}

	if enemy.BurnTimer > 0 {
		enemy.BurnTick -= dt
		enemy.BurnTimer = decay(enemy.BurnTimer, dt)
		if enemy.BurnTick <= 0 {
			enemy.BurnTick += cfg.Enemy.BurnTickSeconds
			if applyEnemyDamage(e, entry, float64(cfg.Enemy.BurnTickDamage), true) {
				return
			}
		}
	}

	target, targetIsHero := selectTarget(body, heroEntry, princessEntry)
	if target == nil {
		return
	}
	targetBody := components.Body.Get(target)

	dist := gamemath.Distance(body.Pos.X, body.Pos.Y, targetBody.Pos.X, targetBody.Pos.Y)
	contact := body.Radius + targetBody.Radius

	if dist > contact {
		step := speed * dt
		if step > dist-contact {
			step = dist - contact
		}
		dx, dy := gamemath.SteerToward(body.Pos.X, body.Pos.Y, targetBody.Pos.X, targetBody.Pos.Y, step)
		body.Pos.X += dx
		body.Pos.Y += dy
		dist = gamemath.Distance(body.Pos.X, body.Pos.Y, targetBody.Pos.X, targetBody.Pos.Y)
	} else if dist > 0 {
		// Overlapping: ease back out so enemies do not stick inside the target
		push := contact - dist
		if push > cfg.Enemy.SeparationPush {
			push = cfg.Enemy.SeparationPush
		}
		body.Pos.X += (body.Pos.X - targetBody.Pos.X) / dist * push
		body.Pos.Y += (body.Pos.Y - targetBody.Pos.Y) / dist * push
	}

	if dist <= contact+cfg.Enemy.ContactSlack {
		damage := stats.Damage * dt
		if targetIsHero {
			DamageHero(target, damage*cfg.Hero.ContactDamage)
		} else {
			DamagePrincess(target, damage)
		}
	}

	syncObject(e, entry)
}

// selectTarget picks the hero inside the aggro radius, otherwise the princess
func selectTarget(body *components.BodyData, heroEntry, princessEntry *donburi.Entry) (*donburi.Entry, bool) {
	if heroEntry != nil && !components.Health.Get(heroEntry).Depleted() {
		heroBody := components.Body.Get(heroEntry)
		if gamemath.Distance(body.Pos.X, body.Pos.Y, heroBody.Pos.X, heroBody.Pos.Y) <= cfg.Enemy.AggroRadius {
			return heroEntry, true
		}
	}
	if princessEntry != nil {
		return princessEntry, false
	}
	if heroEntry != nil {
		return heroEntry, true
	}
	return nil, false
}

// DamageEnemy subtracts health and reports true exactly once, on the hit that kills
func DamageEnemy(entry *donburi.Entry, amount float64) bool {
	enemy := components.Enemy.Get(entry)
	if enemy.Dead {
		return false
	}
	health := components.Health.Get(entry)
	health.Damage(amount)
	if health.Depleted() {
		health.Current = 0
		enemy.Dead = true
		return true
	}
	return false
}

func decay(timer, dt float64) float64 {
	timer -= dt
	if timer < 0 {
		return 0
	}
	return timer
}
