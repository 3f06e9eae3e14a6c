package components

import (
	cfg "github.com/automoto/saveme/config"
	"github.com/yohamta/donburi"
)

// AudioData queues cues raised during a tick (singleton component)
type AudioData struct {
	PendingSFX    []cfg.SoundID
	PendingTracks []cfg.TrackID
	CurrentTrack  cfg.TrackID
}

var Audio = donburi.NewComponentType[AudioData]()
