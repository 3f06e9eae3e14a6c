package audio

import (
	"bytes"
	"log"
	"sync"

	cfg "github.com/automoto/saveme/config"
	"github.com/gopxl/beep"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

var (
	globalContext *ebaudio.Context
	contextOnce   sync.Once
)

// Ebitengine allows one audio context per process
func audioContext() *ebaudio.Context {
	contextOnce.Do(func() {
		globalContext = ebaudio.NewContext(cfg.Audio.SampleRate)
	})
	return globalContext
}

// Player plays synthesized cues. It satisfies game.AudioSink.
type Player struct {
	ctx      *ebaudio.Context
	sfx      map[cfg.SoundID][]byte
	tracks   map[cfg.TrackID][]byte
	music    *ebaudio.Player
	current  cfg.TrackID
	musicVol float64
	sfxVol   float64
	enabled  bool
}

// NewPlayer renders every configured effect and track up front so the first
// cue of a run does not stall a frame.
func NewPlayer(enabled bool) *Player {
	rate := beep.SampleRate(cfg.Audio.SampleRate)
	p := &Player{
		ctx:      audioContext(),
		sfx:      make(map[cfg.SoundID][]byte, len(cfg.Sound.Effects)),
		tracks:   make(map[cfg.TrackID][]byte, len(cfg.Sound.Tracks)),
		musicVol: cfg.Audio.DefaultMusicVol,
		sfxVol:   cfg.Audio.DefaultSFXVol,
		enabled:  enabled,
	}
	for id, voice := range cfg.Sound.Effects {
		p.sfx[id] = RenderPCM(NewVoice(voice, rate))
	}
	for id, track := range cfg.Sound.Tracks {
		p.tracks[id] = RenderPCM(NewTrack(track, rate))
	}
	return p
}

func (p *Player) PlaySound(sound cfg.SoundID) {
	if !p.enabled || p.sfxVol <= 0 {
		return
	}
	pcm, ok := p.sfx[sound]
	if !ok || len(pcm) == 0 {
		return
	}
	player := p.ctx.NewPlayerFromBytes(pcm)
	player.SetVolume(p.sfxVol)
	player.Play()
}

// PlayTrack switches the looping background music. TrackNone stops it.
func (p *Player) PlayTrack(track cfg.TrackID) {
	p.current = track
	p.stopMusic()
	if !p.enabled {
		return
	}
	pcm, ok := p.tracks[track]
	if !ok || len(pcm) == 0 {
		return
	}

	loop := ebaudio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := p.ctx.NewPlayer(loop)
	if err != nil {
		log.Printf("Warning: failed to start track %s: %v", track, err)
		return
	}
	player.SetVolume(p.musicVol)
	player.Play()
	p.music = player
}

func (p *Player) stopMusic() {
	if p.music == nil {
		return
	}
	_ = p.music.Close()
	p.music = nil
}

// SetEnabled mutes or unmutes all audio, resuming the last selected track
func (p *Player) SetEnabled(enabled bool) {
	if p.enabled == enabled {
		return
	}
	p.enabled = enabled
	p.PlayTrack(p.current)
}

func (p *Player) Enabled() bool {
	return p.enabled
}
