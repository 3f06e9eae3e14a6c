package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundShoot
	SoundHit
	SoundPowerUp
	SoundLose
	SoundCount
)

func (s SoundID) String() string {
	switch s {
	case SoundShoot:
		return "shoot"
	case SoundHit:
		return "hit"
	case SoundPowerUp:
		return "powerup"
	case SoundLose:
		return "lose"
	}
	return "none"
}

// TrackID represents a background music selection
type TrackID int

const (
	TrackNone TrackID = iota
	TrackBattle
	TrackBoss
	TrackWin
	TrackMenu
	TrackCount
)

func (t TrackID) String() string {
	switch t {
	case TrackBattle:
		return "battle"
	case TrackBoss:
		return "boss"
	case TrackWin:
		return "win"
	case TrackMenu:
		return "menu"
	}
	return "none"
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// SynthVoice describes a procedural sound effect
type SynthVoice struct {
	Wave      int     // oscillator shape, see audio.WaveType
	StartFreq float64 // Hz
	EndFreq   float64 // Hz, linear sweep
	Seconds   float64
	Attack    float64 // seconds
	Release   float64 // seconds
	Volume    float64
}

// SynthTrack is a looping note pattern; zero frequencies are rests
type SynthTrack struct {
	Wave        int
	Notes       []float64
	NoteSeconds float64
	Volume      float64
}

// SoundConfig maps sound IDs to synth parameters
type SoundConfig struct {
	Effects map[SoundID]SynthVoice
	Tracks  map[TrackID]SynthTrack
}

var Audio AudioConfig
var Sound SoundConfig

// Oscillator shapes, mirrored by the audio package
const (
	WaveSine = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.35,
		DefaultSFXVol:   0.8,
	}

	Sound = SoundConfig{
		Effects: map[SoundID]SynthVoice{
			SoundShoot:   {Wave: WaveSquare, StartFreq: 880, EndFreq: 440, Seconds: 0.08, Attack: 0.005, Release: 0.05, Volume: 0.4},
			SoundHit:     {Wave: WaveNoise, Seconds: 0.1, Attack: 0.002, Release: 0.08, Volume: 0.5},
			SoundPowerUp: {Wave: WaveSine, StartFreq: 440, EndFreq: 1320, Seconds: 0.35, Attack: 0.01, Release: 0.1, Volume: 0.6},
			SoundLose:    {Wave: WaveSaw, StartFreq: 330, EndFreq: 80, Seconds: 0.9, Attack: 0.01, Release: 0.4, Volume: 0.6},
		},
		Tracks: map[TrackID]SynthTrack{
			TrackMenu: {
				Wave:        WaveSine,
				Notes:       []float64{261.63, 329.63, 392.00, 329.63, 293.66, 349.23, 440.00, 349.23},
				NoteSeconds: 0.4,
				Volume:      0.5,
			},
			TrackBattle: {
				Wave:        WaveSquare,
				Notes:       []float64{110, 110, 130.81, 110, 146.83, 110, 130.81, 98},
				NoteSeconds: 0.18,
				Volume:      0.3,
			},
			TrackBoss: {
				Wave:        WaveSaw,
				Notes:       []float64{82.41, 0, 82.41, 87.31, 82.41, 0, 77.78, 73.42},
				NoteSeconds: 0.15,
				Volume:      0.35,
			},
			TrackWin: {
				Wave:        WaveSine,
				Notes:       []float64{523.25, 659.25, 783.99, 1046.50, 783.99, 1046.50, 0, 0},
				NoteSeconds: 0.2,
				Volume:      0.5,
			},
		},
	}
}
