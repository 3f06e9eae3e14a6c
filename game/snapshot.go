package game

import (
	"image/color"

	"github.com/automoto/saveme/components"
	cfg "github.com/automoto/saveme/config"
	"github.com/automoto/saveme/systems"
	"github.com/automoto/saveme/tags"
	"github.com/yohamta/donburi"
)

// Snapshot is a read-only copy of everything needed to draw one frame
type Snapshot struct {
	State     cfg.SessionState
	Score     int
	Wave      int // 1-based, 0 before the first wave
	WaveCount int
	Boss      bool

	Hero        HeroView
	Princess    PrincessView
	Enemies     []EnemyView
	Projectiles []ProjectileView
	Particles   []ParticleView
	Temples     []TempleView

	ShakeX, ShakeY float64
}

type HeroView struct {
	X, Y, Radius      float64
	Facing            float64
	Health, MaxHealth float64
	Weapon            cfg.Weapon
	// Seconds since the last attack fired; negative when none has
	SinceAttack float64
	PowerUps    [cfg.PowerUpCount]float64
	Loved       bool
}

type PrincessView struct {
	X, Y, Radius      float64
	Health, MaxHealth float64
	State             cfg.PrincessState
	Panic             bool
	PanicLeft         float64
}

type EnemyView struct {
	X, Y, Radius float64
	Sides        int
	Color        color.RGBA
	HealthRatio  float64
	Boss         bool
	Frozen       bool
	Burning      bool
}

type ProjectileView struct {
	X, Y, Radius float64
	Angle        float64
	Color        color.RGBA
}

type ParticleView struct {
	X, Y, Size float64
	Color      color.RGBA
	Alpha      float64
}

type TempleView struct {
	X, Y, Radius float64
	Direction    float64
	PowerUp      cfg.PowerUp
	Energy       int
	Threshold    int
	Charged      bool
}

// Snapshot copies the current world state
func (s *Session) Snapshot() Snapshot {
	world := s.ecs.World
	session := systems.GetSession(s.ecs)
	wave := systems.GetWave(s.ecs)

	snap := Snapshot{
		State:     session.State,
		Score:     session.Score,
		Wave:      wave.Index + 1,
		WaveCount: len(wave.Table),
	}
	if current, ok := wave.Current(); ok {
		snap.Boss = current.Boss
	}
	if snap.Wave > snap.WaveCount {
		snap.Wave = snap.WaveCount
	}

	if entry, ok := tags.Hero.First(world); ok {
		hero := components.Hero.Get(entry)
		body := components.Body.Get(entry)
		health := components.Health.Get(entry)
		sinceAttack := -1.0
		if hero.AttackCooldown > 0 {
			sinceAttack = cfg.Weapons[hero.Weapon].Cooldown - hero.AttackCooldown
		}
		snap.Hero = HeroView{
			X:           body.Pos.X,
			Y:           body.Pos.Y,
			Radius:      body.Radius,
			Facing:      hero.Facing,
			Health:      health.Current,
			MaxHealth:   health.Max,
			Weapon:      hero.Weapon,
			SinceAttack: sinceAttack,
			PowerUps:    hero.PowerUps,
			Loved:       hero.Loved,
		}
	}

	if entry, ok := tags.Princess.First(world); ok {
		princess := components.Princess.Get(entry)
		body := components.Body.Get(entry)
		health := components.Health.Get(entry)
		snap.Princess = PrincessView{
			X:         body.Pos.X,
			Y:         body.Pos.Y,
			Radius:    body.Radius,
			Health:    health.Current,
			MaxHealth: health.Max,
			State:     princess.State,
			Panic:     princess.Panic,
			PanicLeft: princess.PanicTimer,
		}
	}

	tags.Enemy.Each(world, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		if enemy.Dead {
			return
		}
		stats := enemy.Stats()
		body := components.Body.Get(entry)
		snap.Enemies = append(snap.Enemies, EnemyView{
			X:           body.Pos.X,
			Y:           body.Pos.Y,
			Radius:      body.Radius,
			Sides:       stats.Sides,
			Color:       stats.Color,
			HealthRatio: components.Health.Get(entry).Ratio(),
			Boss:        stats.Boss,
			Frozen:      enemy.FreezeTimer > 0,
			Burning:     enemy.BurnTimer > 0,
		})
	})

	tags.Projectile.Each(world, func(entry *donburi.Entry) {
		projectile := components.Projectile.Get(entry)
		if projectile.Remove {
			return
		}
		body := components.Body.Get(entry)
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			X:      body.Pos.X,
			Y:      body.Pos.Y,
			Radius: body.Radius,
			Angle:  projectile.Angle,
			Color:  projectile.Color,
		})
	})

	tags.Particle.Each(world, func(entry *donburi.Entry) {
		particle := components.Particle.Get(entry)
		if particle.Expired {
			return
		}
		body := components.Body.Get(entry)
		snap.Particles = append(snap.Particles, ParticleView{
			X:     body.Pos.X,
			Y:     body.Pos.Y,
			Size:  particle.Size,
			Color: particle.Color,
			Alpha: particle.Alpha,
		})
	})

	tags.Temple.Each(world, func(entry *donburi.Entry) {
		temple := components.Temple.Get(entry)
		body := components.Body.Get(entry)
		snap.Temples = append(snap.Temples, TempleView{
			X:         body.Pos.X,
			Y:         body.Pos.Y,
			Radius:    body.Radius,
			Direction: temple.Direction,
			PowerUp:   temple.PowerUp,
			Energy:    temple.Energy,
			Threshold: temple.Threshold,
			Charged:   temple.Charged,
		})
	})

	if entry, ok := components.ScreenShake.First(world); ok {
		shake := components.ScreenShake.Get(entry)
		snap.ShakeX = shake.OffsetX
		snap.ShakeY = shake.OffsetY
	}

	return snap
}
