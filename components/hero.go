package components

import (
	cfg "github.com/automoto/saveme/config"
	"github.com/yohamta/donburi"
)

type HeroData struct {
	Facing float64 // radians, 0 = +X
	Weapon cfg.Weapon

	AttackCooldown float64 // seconds until the next attack is allowed
	Attacking      bool    // set for the single tick an attack fires

	// Seconds remaining per power-up; active while > 0
	PowerUps [cfg.PowerUpCount]float64

	// Cosmetic flag set when the princess reaches the hero after victory
	Loved bool
}

func (h *HeroData) HasPowerUp(p cfg.PowerUp) bool {
	return p.Valid() && h.PowerUps[p] > 0
}

// ActivatePowerUp (re)starts the full duration; repeated grants do not stack
func (h *HeroData) ActivatePowerUp(p cfg.PowerUp, seconds float64) {
	if !p.Valid() {
		return
	}
	h.PowerUps[p] = seconds
}

var Hero = donburi.NewComponentType[HeroData]()
