package config

import (
	"image/color"
	"math"
)

// WorldConfig describes the playfield
type WorldConfig struct {
	Width  float64
	Height float64

	// Enemies spawn this far outside the visible arena
	SpawnOffset float64

	// Extra room around the arena covered by the collision space
	SpaceMargin float64
	CellSize    int
}

// HeroConfig contains all hero-related configuration values
type HeroConfig struct {
	// Movement
	Acceleration   float64 // px/s^2 at full stick deflection
	Friction       float64 // velocity multiplier applied once per tick
	MaxSpeed       float64 // px/s
	SpeedBoostMult float64 // MaxSpeed and Acceleration multiplier while SpeedBoost is active

	// Combat
	Health         int
	Radius         float64
	ContactDamage  float64 // scales enemy DPS when touching the hero
	PowerUpSeconds float64

	// Spawn
	StartX float64
	StartY float64
	Color  color.RGBA
}

// PrincessConfig contains princess behaviour values
type PrincessConfig struct {
	Health       int
	Radius       float64
	PanicSeconds float64
	WinRunSpeed  float64 // px/s
	LoveDistance float64 // centre distance at which WinRun becomes WinLove

	StartX float64
	StartY float64
	Color  color.RGBA
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	// Target the hero when closer than this, otherwise the princess
	AggroRadius float64
	// Max displacement per tick pushing an overlapping enemy back out of its target
	SeparationPush float64
	// Gap between edges still counted as touching
	ContactSlack float64

	FreezeSeconds     float64
	FreezeSpeedFactor float64
	BurnSeconds       float64
	BurnTickSeconds   float64
	BurnTickDamage    int
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	MeleeReach       float64
	GiantWeaponBonus float64
	SwingArc         float64 // full angular width of a melee swing, radians
	MeleeDamage      int
	MeleeKnockback   float64 // px displacement along the bearing

	SpreadAngle float64 // radians between the centre shot and each spread shot

	// Particle burst sizes
	KillParticles int
	HitParticles  int
}

// TempleConfig contains power-up totem values
type TempleConfig struct {
	SoulThreshold int
	Radius        float64
	IdleColor     color.RGBA
	ChargedColor  color.RGBA
}

// ParticleConfig contains cosmetic particle values
type ParticleConfig struct {
	LifeSeconds float64
	MinSpeed    float64
	MaxSpeed    float64
	Gravity     float64 // px/s^2
	MinSize     float64
	MaxSize     float64
}

// ScreenShakeConfig contains shake intensity (px) and duration (seconds) per event
type ScreenShakeConfig struct {
	KillIntensity     float64
	KillDuration      float64
	BossKillIntensity float64
	BossKillDuration  float64
	HitIntensity      float64
	HitDuration       float64
}

// UIConfig contains HUD and overlay values
type UIConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarMargin float64

	HealthBarBgColor color.RGBA
	HeroBarColor     color.RGBA
	PrincessBarColor color.RGBA
	HUDTextColor     color.RGBA
	BackgroundColor  color.RGBA
	OverlayColor     color.RGBA

	HUDFontSize   float64
	TitleFontSize float64
}

// MenuConfig contains menu screen values
type MenuConfig struct {
	Title            string
	LeaderboardShown int
}

// DebugConfig toggles development helpers
type DebugConfig struct {
	SkipMenu   bool
	DrawBounds bool
}

type Config struct {
	Width  int
	Height int
}

var C *Config
var World WorldConfig
var Hero HeroConfig
var Princess PrincessConfig
var Enemy EnemyConfig
var Combat CombatConfig
var Temple TempleConfig
var Particles ParticleConfig
var ScreenShake ScreenShakeConfig
var UI UIConfig
var Menu MenuConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
	}

	World = WorldConfig{
		Width:       float64(C.Width),
		Height:      float64(C.Height),
		SpawnOffset: 50,
		SpaceMargin: 128,
		CellSize:    32,
	}

	Hero = HeroConfig{
		Acceleration:   1800,
		Friction:       0.85,
		MaxSpeed:       260,
		SpeedBoostMult: 1.5,

		Health:         100,
		Radius:         16,
		ContactDamage:  1.0,
		PowerUpSeconds: 15,

		StartX: float64(C.Width) / 2,
		StartY: float64(C.Height)/2 + 60,
		Color:  color.RGBA{52, 152, 219, 255},
	}

	Princess = PrincessConfig{
		Health:       100,
		Radius:       14,
		PanicSeconds: 2,
		WinRunSpeed:  180,
		LoveDistance: 40,

		StartX: float64(C.Width) / 2,
		StartY: float64(C.Height) / 2,
		Color:  color.RGBA{231, 76, 60, 255},
	}

	Enemy = EnemyConfig{
		AggroRadius:    150,
		SeparationPush: 2,
		ContactSlack:   4,

		FreezeSeconds:     2,
		FreezeSpeedFactor: 0.5,
		BurnSeconds:       3,
		BurnTickSeconds:   0.5,
		BurnTickDamage:    5,
	}

	Combat = CombatConfig{
		MeleeReach:       60,
		GiantWeaponBonus: 40,
		SwingArc:         2 * math.Pi / 3,
		MeleeDamage:      25,
		MeleeKnockback:   40,

		SpreadAngle: 0.2,

		KillParticles: 20,
		HitParticles:  6,
	}

	Temple = TempleConfig{
		SoulThreshold: 10,
		Radius:        24,
		IdleColor:     color.RGBA{120, 90, 40, 255},
		ChargedColor:  color.RGBA{243, 156, 18, 255},
	}

	Particles = ParticleConfig{
		LifeSeconds: 0.5,
		MinSpeed:    120,
		MaxSpeed:    300,
		Gravity:     360,
		MinSize:     2,
		MaxSize:     5,
	}

	ScreenShake = ScreenShakeConfig{
		KillIntensity:     4,
		KillDuration:      0.2,
		BossKillIntensity: 12,
		BossKillDuration:  0.6,
		HitIntensity:      1.5,
		HitDuration:       0.1,
	}

	UI = UIConfig{
		HealthBarWidth:  160,
		HealthBarHeight: 10,
		HealthBarMargin: 12,

		HealthBarBgColor: color.RGBA{40, 40, 40, 200},
		HeroBarColor:     color.RGBA{52, 152, 219, 255},
		PrincessBarColor: color.RGBA{231, 76, 60, 255},
		HUDTextColor:     color.RGBA{255, 255, 255, 255},
		BackgroundColor:  color.RGBA{18, 18, 28, 255},
		OverlayColor:     color.RGBA{0, 0, 0, 160},

		HUDFontSize:   14,
		TitleFontSize: 32,
	}

	Menu = MenuConfig{
		Title:            "SAVE ME",
		LeaderboardShown: 5,
	}

	Debug = DebugConfig{}
}
