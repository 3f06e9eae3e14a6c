package components

import (
	cfg "github.com/automoto/saveme/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// WaveData is the singleton wave director state
type WaveData struct {
	Table []cfg.Wave

	Index     int
	Remaining int     // enemies left to spawn in the current wave
	Countdown float64 // seconds until the next spawn
	Spawned   int     // enemies spawned in the current wave
	Finished  bool    // set once the last wave is cleared

	SpawnPoints []math.Vec2
}

// Current returns the active wave descriptor
func (w *WaveData) Current() (cfg.Wave, bool) {
	if w.Index < 0 || w.Index >= len(w.Table) {
		return cfg.Wave{}, false
	}
	return w.Table[w.Index], true
}

var Wave = donburi.NewComponentType[WaveData]()
