package components

import (
	cfg "github.com/automoto/saveme/config"
	"github.com/yohamta/donburi"
)

type TempleData struct {
	Direction float64 // facing angle, cosmetic
	PowerUp   cfg.PowerUp
	Energy    int
	Threshold int
	Charged   bool
}

// AddSoul charges the temple by one; energy saturates at the threshold
func (t *TempleData) AddSoul() {
	if t.Charged {
		return
	}
	t.Energy++
	if t.Energy >= t.Threshold {
		t.Energy = t.Threshold
		t.Charged = true
	}
}

// Consume empties a charged temple and reports whether it was charged
func (t *TempleData) Consume() bool {
	if !t.Charged {
		return false
	}
	t.Charged = false
	t.Energy = 0
	return true
}

var Temple = donburi.NewComponentType[TempleData]()
