package config

import (
	"fmt"
	"image/color"
)

// Weapon is the hero's equipped weapon
type Weapon int

const (
	WeaponMelee Weapon = iota
	WeaponRanged
	WeaponSpecial
	WeaponCount // Must be last - used for array sizing
)

func (w Weapon) Valid() bool {
	return w >= 0 && w < WeaponCount
}

// Next cycles melee -> ranged -> special -> melee
func (w Weapon) Next() Weapon {
	return (w + 1) % WeaponCount
}

func (w Weapon) String() string {
	switch w {
	case WeaponMelee:
		return "melee"
	case WeaponRanged:
		return "ranged"
	case WeaponSpecial:
		return "special"
	}
	return fmt.Sprintf("Weapon(%d)", int(w))
}

// Ammo returns the projectile kind a ranged weapon fires
func (w Weapon) Ammo() (ProjectileKind, bool) {
	switch w {
	case WeaponRanged:
		return ProjectileDefault, true
	case WeaponSpecial:
		return ProjectileSpecial, true
	case WeaponMelee:
		return 0, false
	}
	return 0, false
}

// WeaponConfig holds per-weapon values
type WeaponConfig struct {
	Cooldown float64 // seconds between attacks
}

// ProjectileKind selects projectile stats
type ProjectileKind int

const (
	ProjectileDefault ProjectileKind = iota
	ProjectileSpecial
	ProjectileKindCount
)

// ProjectileConfig holds per-ammo values
type ProjectileConfig struct {
	Speed    float64 // px/s
	Radius   float64
	Damage   int
	Piercing bool
	Freezes  bool
	Color    color.RGBA
}

// PowerUp is a temporary hero modifier granted by a charged temple
type PowerUp int

const (
	PowerUpSpreadShot PowerUp = iota
	PowerUpGiantWeapon
	PowerUpFireTrail
	PowerUpSpeedBoost
	PowerUpCount
)

func (p PowerUp) Valid() bool {
	return p >= 0 && p < PowerUpCount
}

func (p PowerUp) String() string {
	switch p {
	case PowerUpSpreadShot:
		return "spread"
	case PowerUpGiantWeapon:
		return "giant"
	case PowerUpFireTrail:
		return "fire"
	case PowerUpSpeedBoost:
		return "speed"
	}
	return fmt.Sprintf("PowerUp(%d)", int(p))
}

// ParsePowerUp maps a map property value back to a PowerUp
func ParsePowerUp(s string) (PowerUp, error) {
	for p := PowerUp(0); p < PowerUpCount; p++ {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("config: unknown power-up %q", s)
}

var Weapons [WeaponCount]WeaponConfig
var Projectiles [ProjectileKindCount]ProjectileConfig

func init() {
	Weapons = [WeaponCount]WeaponConfig{
		WeaponMelee:   {Cooldown: 0.25},
		WeaponRanged:  {Cooldown: 0.45},
		WeaponSpecial: {Cooldown: 0.6},
	}

	Projectiles = [ProjectileKindCount]ProjectileConfig{
		ProjectileDefault: {
			Speed:  600,
			Radius: 4,
			Damage: 10,
			Color:  color.RGBA{255, 255, 255, 255},
		},
		ProjectileSpecial: {
			Speed:    900,
			Radius:   4,
			Damage:   25,
			Piercing: true,
			Freezes:  true,
			Color:    color.RGBA{255, 255, 0, 255},
		},
	}
}
