// Package audio synthesizes the game's sound effects and music and plays them
// through the Ebitengine audio context.
package audio

import (
	"math"
	"math/rand"
	"time"

	cfg "github.com/automoto/saveme/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine   WaveType = cfg.WaveSine
	WaveSquare WaveType = cfg.WaveSquare
	WaveSaw    WaveType = cfg.WaveSaw
	WaveNoise  WaveType = cfg.WaveNoise
)

// oscillator generates a raw wave whose frequency sweeps linearly from
// startFreq to endFreq over its duration
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
	rng       *rand.Rand
}

// NewOscillator creates an oscillator sweeping from startFreq to endFreq
func NewOscillator(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
		// Fixed seed keeps rendered effects identical between runs
		rng: rand.New(rand.NewSource(1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.startFreq
		if o.duration > 0 {
			freq += (o.endFreq - o.startFreq) * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is rendered silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// NewVoice builds the streamer for a one-shot sound effect
func NewVoice(v cfg.SynthVoice, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(v.StartFreq, v.EndFreq, seconds(v.Seconds), WaveType(v.Wave), rate)
	shaped := NewEnvelope(osc, seconds(v.Seconds), seconds(v.Attack), seconds(v.Release), rate)
	return newVolume(shaped, v.Volume)
}

// NewTrack builds one pass of a music pattern. Zero frequencies are rests.
func NewTrack(t cfg.SynthTrack, rate beep.SampleRate) beep.Streamer {
	noteLen := seconds(t.NoteSeconds)
	attack := noteLen / 20
	release := noteLen / 3

	notes := make([]beep.Streamer, 0, len(t.Notes))
	for _, freq := range t.Notes {
		if freq <= 0 {
			notes = append(notes, beep.Silence(rate.N(noteLen)))
			continue
		}
		osc := NewOscillator(freq, freq, noteLen, WaveType(t.Wave), rate)
		notes = append(notes, NewEnvelope(osc, noteLen, attack, release, rate))
	}
	return newVolume(beep.Seq(notes...), t.Volume)
}
