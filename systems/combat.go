package systems

import (
	"math"

	"github.com/automoto/saveme/components"
	cfg "github.com/automoto/saveme/config"
	"github.com/automoto/saveme/shared/gamemath"
	"github.com/automoto/saveme/systems/factory"
	"github.com/automoto/saveme/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat resolves the hero's attack for this tick and projectile hits
func UpdateCombat(e *ecs.ECS) {
	if heroEntry, ok := tags.Hero.First(e.World); ok {
		resolveAttack(e, heroEntry)
	}
	resolveProjectiles(e)
}

func resolveAttack(e *ecs.ECS, heroEntry *donburi.Entry) {
	hero := components.Hero.Get(heroEntry)
	if !hero.Attacking {
		return
	}

	switch hero.Weapon {
	case cfg.WeaponMelee:
		resolveMelee(e, heroEntry)
	case cfg.WeaponRanged, cfg.WeaponSpecial:
		fireProjectiles(e, heroEntry)
	}

	// One swing or volley per trigger
	hero.Attacking = false
}

// resolveMelee hits every live enemy inside the reach whose bearing lies within
// half the swing arc of the hero's facing.
func resolveMelee(e *ecs.ECS, heroEntry *donburi.Entry) {
	hero := components.Hero.Get(heroEntry)
	heroBody := components.Body.Get(heroEntry)

	reach := cfg.Combat.MeleeReach
	if hero.HasPowerUp(cfg.PowerUpGiantWeapon) {
		reach += cfg.Combat.GiantWeaponBonus
	}
	halfArc := cfg.Combat.SwingArc / 2

	type meleeHit struct {
		entry   *donburi.Entry
		bearing float64
	}
	var hits []meleeHit

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if components.Enemy.Get(entry).Dead {
			return
		}
		body := components.Body.Get(entry)
		dx := body.Pos.X - heroBody.Pos.X
		dy := body.Pos.Y - heroBody.Pos.Y
		if math.Hypot(dx, dy) > reach+body.Radius {
			return
		}
		bearing := hero.Facing
		if dx != 0 || dy != 0 {
			bearing = math.Atan2(dy, dx)
		}
		if math.Abs(gamemath.NormalizeAngle(bearing-hero.Facing)) >= halfArc {
			return
		}
		hits = append(hits, meleeHit{entry: entry, bearing: bearing})
	})

	burns := hero.HasPowerUp(cfg.PowerUpFireTrail)
	for _, hit := range hits {
		body := components.Body.Get(hit.entry)
		body.Pos.X += math.Cos(hit.bearing) * cfg.Combat.MeleeKnockback
		body.Pos.Y += math.Sin(hit.bearing) * cfg.Combat.MeleeKnockback
		syncObject(e, hit.entry)

		if burns {
			ignite(components.Enemy.Get(hit.entry))
		}
		applyEnemyDamage(e, hit.entry, float64(cfg.Combat.MeleeDamage), false)
	}
}

// fireProjectiles launches one shot along the facing, three with SpreadShot
func fireProjectiles(e *ecs.ECS, heroEntry *donburi.Entry) {
	hero := components.Hero.Get(heroEntry)
	heroBody := components.Body.Get(heroEntry)

	kind, ok := hero.Weapon.Ammo()
	if !ok {
		return
	}

	angles := []float64{hero.Facing}
	if hero.HasPowerUp(cfg.PowerUpSpreadShot) {
		angles = append(angles, hero.Facing-cfg.Combat.SpreadAngle, hero.Facing+cfg.Combat.SpreadAngle)
	}

	for _, angle := range angles {
		x := heroBody.Pos.X + math.Cos(angle)*heroBody.Radius
		y := heroBody.Pos.Y + math.Sin(angle)*heroBody.Radius
		factory.CreateProjectile(e, kind, x, y, angle)
	}
	PlaySFX(e, cfg.SoundShoot)
}

// resolveProjectiles culls projectiles that left the arena and applies hits.
// A projectile keeps testing further enemies until it is marked for removal.
func resolveProjectiles(e *ecs.ECS) {
	var projectiles []*donburi.Entry
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		projectiles = append(projectiles, entry)
	})

	burns := false
	if heroEntry, ok := tags.Hero.First(e.World); ok {
		burns = components.Hero.Get(heroEntry).HasPowerUp(cfg.PowerUpFireTrail)
	}

	for _, entry := range projectiles {
		projectile := components.Projectile.Get(entry)
		if projectile.Remove {
			continue
		}
		body := components.Body.Get(entry)

		if outOfArena(body) {
			projectile.Remove = true
			continue
		}

		check := components.Object.Get(entry).Check(0, 0, tags.ResolvEnemy)
		if check == nil {
			continue
		}

		for _, obj := range check.Objects {
			enemyEntry, ok := obj.Data.(*donburi.Entry)
			if !ok || !enemyEntry.Valid() {
				continue
			}
			enemy := components.Enemy.Get(enemyEntry)
			if enemy.Dead || projectile.AlreadyHit(enemyEntry.Entity()) {
				continue
			}
			enemyBody := components.Body.Get(enemyEntry)
			if !gamemath.CirclesOverlap(body.Pos.X, body.Pos.Y, body.Radius, enemyBody.Pos.X, enemyBody.Pos.Y, enemyBody.Radius) {
				continue
			}

			projectile.MarkHit(enemyEntry.Entity())
			if projectile.Freezes {
				enemy.FreezeTimer = cfg.Enemy.FreezeSeconds
			}
			if burns {
				ignite(enemy)
			}
			applyEnemyDamage(e, enemyEntry, float64(projectile.Damage), false)

			if !projectile.Piercing {
				projectile.Remove = true
				break
			}
		}
	}
}

func outOfArena(body *components.BodyData) bool {
	r := body.Radius
	return body.Pos.X < -r || body.Pos.Y < -r ||
		body.Pos.X > cfg.World.Width+r || body.Pos.Y > cfg.World.Height+r
}

func ignite(enemy *components.EnemyData) {
	if enemy.BurnTimer <= 0 {
		enemy.BurnTick = cfg.Enemy.BurnTickSeconds
	}
	enemy.BurnTimer = cfg.Enemy.BurnSeconds
}

// applyEnemyDamage damages an enemy and runs the shared hit or death handling.
// quiet suppresses the cues of non-lethal hits (damage over time).
func applyEnemyDamage(e *ecs.ECS, entry *donburi.Entry, amount float64, quiet bool) bool {
	if components.Enemy.Get(entry).Dead {
		return false
	}
	if DamageEnemy(entry, amount) {
		handleEnemyDeath(e, entry)
		return true
	}
	if quiet {
		return false
	}

	body := components.Body.Get(entry)
	stats := components.Enemy.Get(entry).Stats()
	factory.SpawnParticleBurst(e, GetSession(e).Rand, body.Pos.X, body.Pos.Y, cfg.Combat.HitParticles, stats.Color)
	TriggerScreenShake(e, cfg.ScreenShake.HitIntensity, cfg.ScreenShake.HitDuration)
	PlaySFX(e, cfg.SoundHit)
	return false
}

// handleEnemyDeath credits the score, charges every temple and emits the kill cues
func handleEnemyDeath(e *ecs.ECS, entry *donburi.Entry) {
	session := GetSession(e)
	stats := components.Enemy.Get(entry).Stats()
	body := components.Body.Get(entry)

	session.Score += stats.ScoreValue
	ChargeTemples(e)

	factory.SpawnParticleBurst(e, session.Rand, body.Pos.X, body.Pos.Y, cfg.Combat.KillParticles, stats.Color)
	if stats.Boss {
		TriggerScreenShake(e, cfg.ScreenShake.BossKillIntensity, cfg.ScreenShake.BossKillDuration)
	} else {
		TriggerScreenShake(e, cfg.ScreenShake.KillIntensity, cfg.ScreenShake.KillDuration)
	}
	PlaySFX(e, cfg.SoundHit)
}
