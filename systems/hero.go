package systems

import (
	"math"

	"github.com/automoto/saveme/components"
	cfg "github.com/automoto/saveme/config"
	"github.com/automoto/saveme/shared/gamemath"
	"github.com/automoto/saveme/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateHero(e *ecs.ECS) {
	entry, ok := tags.Hero.First(e.World)
	if !ok {
		return
	}
	frame := GetFrame(e)
	updateHero(entry, frame.DT, frame.Input)
	syncObject(e, entry)
}

func updateHero(entry *donburi.Entry, dt float64, in components.InputSnapshot) {
	hero := components.Hero.Get(entry)
	body := components.Body.Get(entry)
	health := components.Health.Get(entry)

	if dt < 0 {
		dt = 0
	}
	tickPowerUps(hero, dt)

	if health.Depleted() {
		body.Vel.X, body.Vel.Y = 0, 0
		hero.Attacking = false
		return
	}

	in = in.Sanitized()

	accel := cfg.Hero.Acceleration
	maxSpeed := cfg.Hero.MaxSpeed
	if hero.HasPowerUp(cfg.PowerUpSpeedBoost) {
		accel *= cfg.Hero.SpeedBoostMult
		maxSpeed *= cfg.Hero.SpeedBoostMult
	}

	// Movement
	body.Vel.X += in.Move.X * accel * dt
	body.Vel.Y += in.Move.Y * accel * dt
	body.Vel.X, body.Vel.Y = gamemath.ApplyFriction(body.Vel.X, body.Vel.Y, cfg.Hero.Friction)
	body.Vel.X, body.Vel.Y = gamemath.ClampSpeed(body.Vel.X, body.Vel.Y, maxSpeed)

	body.Pos.X += body.Vel.X * dt
	body.Pos.Y += body.Vel.Y * dt
	body.Pos.X, body.Pos.Y, body.Vel.X, body.Vel.Y = gamemath.ClampToBounds(
		body.Pos.X, body.Pos.Y, body.Vel.X, body.Vel.Y,
		body.Radius, cfg.World.Width, cfg.World.Height,
	)

	// Aim beats movement; with neither the last facing is kept
	if in.HasAim {
		hero.Facing = math.Atan2(in.Aim.Y, in.Aim.X)
	} else if in.Move.X != 0 || in.Move.Y != 0 {
		hero.Facing = math.Atan2(in.Move.Y, in.Move.X)
	}

	if in.CycleWeapon {
		hero.Weapon = hero.Weapon.Next()
	}

	hero.AttackCooldown -= dt
	if hero.AttackCooldown < 0 {
		hero.AttackCooldown = 0
	}
	if in.Attack && hero.AttackCooldown <= 0 {
		hero.Attacking = true
		hero.AttackCooldown = cfg.Weapons[hero.Weapon].Cooldown
	}
}

func tickPowerUps(hero *components.HeroData, dt float64) {
	for p := range hero.PowerUps {
		if hero.PowerUps[p] <= 0 {
			continue
		}
		hero.PowerUps[p] -= dt
		if hero.PowerUps[p] < 0 {
			hero.PowerUps[p] = 0
		}
	}
}

// DamageHero applies contact damage; health never drops below zero
func DamageHero(entry *donburi.Entry, amount float64) {
	components.Health.Get(entry).Damage(amount)
}
