package systems

import (
	"github.com/automoto/saveme/components"
	cfg "github.com/automoto/saveme/config"
	"github.com/yohamta/donburi/ecs"
)

// PlaySFX queues a sound cue for the session owner to hand to the audio sink
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := getAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// PlayTrack queues a music change. Re-selecting the current track is a no-op.
func PlayTrack(e *ecs.ECS, track cfg.TrackID) {
	audioData := getAudio(e)
	if audioData.CurrentTrack == track {
		return
	}
	audioData.CurrentTrack = track
	audioData.PendingTracks = append(audioData.PendingTracks, track)
}

// DrainAudio returns and clears every cue queued since the last drain
func DrainAudio(e *ecs.ECS) ([]cfg.SoundID, []cfg.TrackID) {
	audioData := getAudio(e)
	sfx := audioData.PendingSFX
	tracks := audioData.PendingTracks
	audioData.PendingSFX = nil
	audioData.PendingTracks = nil
	return sfx, tracks
}

func getAudio(e *ecs.ECS) *components.AudioData {
	return components.Audio.Get(components.Audio.MustFirst(e.World))
}
