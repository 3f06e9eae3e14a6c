// Package game runs one play session: it owns the ECS world, orders the
// systems, and hands sound cues and the final score to injected collaborators.
package game

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/saveme/arena"
	"github.com/automoto/saveme/components"
	cfg "github.com/automoto/saveme/config"
	"github.com/automoto/saveme/systems"
	"github.com/automoto/saveme/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Longest step simulated in one tick, seconds
const maxStep = 0.1

var ErrNotInMenu = errors.New("game: session is not in the menu")

// AudioSink receives sound cues drained at the end of every tick
type AudioSink interface {
	PlaySound(sound cfg.SoundID)
	PlayTrack(track cfg.TrackID)
}

// ScoreStore receives the final score of every lost run
type ScoreStore interface {
	SubmitScore(score int)
}

type Options struct {
	AudioSink  AudioSink
	ScoreStore ScoreStore
	Layout     *arena.Layout
	Waves      []cfg.Wave
	Seed       int64
}

type Session struct {
	opts Options
	ecs  *ecs.ECS
}

// NewSession validates the wave table and builds a session sitting in the menu
func NewSession(opts Options) (*Session, error) {
	if opts.AudioSink == nil {
		opts.AudioSink = nopSink{}
	}
	if opts.ScoreStore == nil {
		opts.ScoreStore = nopStore{}
	}
	if opts.Layout == nil {
		opts.Layout = arena.Default()
	}
	if opts.Waves == nil {
		opts.Waves = cfg.DefaultWaves()
	}
	if err := cfg.ValidateWaves(opts.Waves); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	s := &Session{opts: opts}
	s.Reset()
	return s, nil
}

// Reset rebuilds the world from the layout and returns to the menu
func (s *Session) Reset() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.WithSimulation(systems.UpdateHero))
	e.AddSystem(systems.WithSimulation(systems.UpdatePrincess))
	e.AddSystem(systems.WithSimulation(systems.UpdateEnemies))
	e.AddSystem(systems.WithSimulation(systems.UpdateProjectiles))
	e.AddSystem(systems.WithSimulation(systems.UpdateParticles))
	e.AddSystem(systems.WithSimulation(systems.UpdateTemples))
	e.AddSystem(systems.WithSimulation(systems.UpdateWaves))
	e.AddSystem(systems.WithSimulation(systems.UpdateCombat))
	e.AddSystem(systems.WithSimulation(systems.UpdateCleanup))
	e.AddSystem(systems.WithSimulation(systems.UpdateTerminal))

	// Shake keeps decaying on the results screen
	e.AddSystem(systems.UpdateEffects)

	layout := s.opts.Layout
	factory.CreateSpace(e, layout.Width, layout.Height)
	factory.CreateSession(e, s.opts.Seed)
	factory.CreateWaveDirector(e, s.opts.Waves, layout.SpawnPoints)

	for _, t := range layout.Temples {
		factory.CreateTemple(e, t.X, t.Y, t.Direction, t.PowerUp)
	}
	factory.CreatePrincess(e, layout.PrincessSpawn.X, layout.PrincessSpawn.Y)
	factory.CreateHero(e, layout.HeroSpawn.X, layout.HeroSpawn.Y)

	s.ecs = e
	systems.PlayTrack(e, cfg.TrackMenu)
	s.flushAudio()
}

// Start leaves the menu and loads the first wave
func (s *Session) Start() error {
	session := systems.GetSession(s.ecs)
	if session.State != cfg.StateMenu {
		return ErrNotInMenu
	}
	session.State = cfg.StatePlay
	systems.StartWave(s.ecs, 0)
	s.flushAudio()
	return nil
}

// Tick advances the simulation by dt seconds. The menu and the game over
// screen do not simulate.
func (s *Session) Tick(dt float64, input components.InputSnapshot) {
	if math.IsNaN(dt) || dt < 0 {
		dt = 0
	}
	if dt > maxStep {
		dt = maxStep
	}

	frame := systems.GetFrame(s.ecs)
	frame.DT = dt
	frame.Input = input.Sanitized()
	frame.Tick++

	s.ecs.Update()

	s.flushAudio()

	session := systems.GetSession(s.ecs)
	if session.ScorePending {
		session.ScorePending = false
		s.opts.ScoreStore.SubmitScore(session.Score)
	}
}

// SetWaves replaces the wave table used from the next Reset
func (s *Session) SetWaves(waves []cfg.Wave) error {
	if err := cfg.ValidateWaves(waves); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	s.opts.Waves = waves
	return nil
}

func (s *Session) State() cfg.SessionState {
	return systems.GetSession(s.ecs).State
}

func (s *Session) Score() int {
	return systems.GetSession(s.ecs).Score
}

func (s *Session) Layout() *arena.Layout {
	return s.opts.Layout
}

func (s *Session) flushAudio() {
	sfx, tracks := systems.DrainAudio(s.ecs)
	for _, track := range tracks {
		s.opts.AudioSink.PlayTrack(track)
	}
	for _, sound := range sfx {
		s.opts.AudioSink.PlaySound(sound)
	}
}

type nopSink struct{}

func (nopSink) PlaySound(cfg.SoundID) {}
func (nopSink) PlayTrack(cfg.TrackID) {}

type nopStore struct{}

func (nopStore) SubmitScore(int) {}
