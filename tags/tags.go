package tags

import "github.com/yohamta/donburi"

var (
	Hero       = donburi.NewTag().SetName("Hero")
	Princess   = donburi.NewTag().SetName("Princess")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Projectile = donburi.NewTag().SetName("Projectile")
	Particle   = donburi.NewTag().SetName("Particle")
	Temple     = donburi.NewTag().SetName("Temple")
)

// Resolv tags for broadphase queries
const (
	ResolvHero       = "Hero"
	ResolvPrincess   = "Princess"
	ResolvEnemy      = "Enemy"
	ResolvProjectile = "Projectile"
	ResolvTemple     = "Temple"
)
