package components

import (
	"image/color"

	cfg "github.com/automoto/saveme/config"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Kind     cfg.ProjectileKind
	Angle    float64
	Speed    float64
	Damage   int
	Piercing bool
	Freezes  bool
	Color    color.RGBA

	// Set on collision or when leaving the arena; removed during cleanup
	Remove bool

	// Enemies already struck, so piercing shots damage each enemy once
	Hit map[donburi.Entity]struct{}
}

func (p *ProjectileData) AlreadyHit(e donburi.Entity) bool {
	_, ok := p.Hit[e]
	return ok
}

func (p *ProjectileData) MarkHit(e donburi.Entity) {
	if p.Hit == nil {
		p.Hit = make(map[donburi.Entity]struct{})
	}
	p.Hit[e] = struct{}{}
}

var Projectile = donburi.NewComponentType[ProjectileData]()
