package components

import (
	cfg "github.com/automoto/saveme/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Type cfg.EnemyType
	Dead bool

	// Status effects, seconds remaining
	FreezeTimer float64
	BurnTimer   float64
	BurnTick    float64 // seconds until the next burn damage tick
}

// Stats returns the static table row for this enemy's type
func (e *EnemyData) Stats() *cfg.EnemyTypeConfig {
	return cfg.MustEnemyType(e.Type)
}

var Enemy = donburi.NewComponentType[EnemyData]()
