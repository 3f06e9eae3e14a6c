package scenes

import (
	"log"
	"path/filepath"
	"time"

	"github.com/automoto/saveme/arena"
	"github.com/automoto/saveme/audio"
	cfg "github.com/automoto/saveme/config"
	"github.com/automoto/saveme/game"
	"github.com/automoto/saveme/systems"
)

// Services are the long-lived collaborators shared by every scene
type Services struct {
	Audio  *audio.Player
	Scores *systems.ScoreBoard
	Layout *arena.Layout
	Waves  []cfg.Wave
	// Zero picks a fresh seed per run
	Seed int64

	Watcher     *cfg.BalanceWatcher
	BalancePath string

	pending *cfg.Balance
}

// PollBalance picks up edits to the balance file. The new table is held
// until the next run starts.
func (s *Services) PollBalance() {
	if s.Watcher == nil {
		return
	}

	select {
	case err := <-s.Watcher.Errors:
		log.Printf("Warning: balance watcher: %v", err)
	default:
	}

	name, ok := s.Watcher.Poll()
	if !ok {
		return
	}
	if filepath.Base(name) != filepath.Base(s.BalancePath) {
		return
	}

	b, err := cfg.LoadBalanceFile(s.BalancePath)
	if err != nil {
		log.Printf("Warning: ignoring balance edit: %v", err)
		return
	}
	s.pending = b
	log.Printf("Balance %s reloaded, applies on the next run", s.BalancePath)
}

// applyPending installs a reloaded balance file, if any
func (s *Services) applyPending() {
	if s.pending == nil {
		return
	}
	s.Waves = s.pending.Apply()
	s.pending = nil
}

func (s *Services) seed() int64 {
	if s.Seed != 0 {
		return s.Seed
	}
	return time.Now().UnixNano()
}

// NewSession builds a session for a fresh run and starts it
func (s *Services) NewSession() (*game.Session, error) {
	s.applyPending()

	var sink game.AudioSink
	if s.Audio != nil {
		sink = s.Audio
	}
	var store game.ScoreStore
	if s.Scores != nil {
		store = s.Scores
	}

	session, err := game.NewSession(game.Options{
		AudioSink:  sink,
		ScoreStore: store,
		Layout:     s.Layout,
		Waves:      s.Waves,
		Seed:       s.seed(),
	})
	if err != nil {
		return nil, err
	}
	if err := session.Start(); err != nil {
		return nil, err
	}
	return session, nil
}

// Restart resets an existing session with any reloaded balance and starts it
func (s *Services) Restart(session *game.Session) error {
	s.applyPending()
	if err := session.SetWaves(s.Waves); err != nil {
		return err
	}
	session.Reset()
	return session.Start()
}

// ToggleAudio flips the audio preference and persists it
func (s *Services) ToggleAudio() bool {
	if s.Audio == nil {
		return false
	}
	on := !s.Audio.Enabled()
	s.Audio.SetEnabled(on)
	if s.Scores != nil {
		s.Scores.SetAudioEnabled(on)
	}
	return on
}

func (s *Services) topScores() []int {
	if s.Scores == nil {
		return nil
	}
	return s.Scores.Top(cfg.Menu.LeaderboardShown)
}
