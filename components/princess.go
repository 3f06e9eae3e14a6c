package components

import (
	cfg "github.com/automoto/saveme/config"
	"github.com/yohamta/donburi"
)

type PrincessData struct {
	State      cfg.PrincessState
	Panic      bool
	PanicTimer float64 // seconds
}

var Princess = donburi.NewComponentType[PrincessData]()
