package game

import (
	"errors"
	"testing"

	"github.com/automoto/saveme/arena"
	"github.com/automoto/saveme/components"
	cfg "github.com/automoto/saveme/config"
	"github.com/automoto/saveme/tags"
	dmath "github.com/yohamta/donburi/features/math"
)

const step = 1.0 / 60

type recordingSink struct {
	sounds []cfg.SoundID
	tracks []cfg.TrackID
}

func (r *recordingSink) PlaySound(s cfg.SoundID) { r.sounds = append(r.sounds, s) }
func (r *recordingSink) PlayTrack(t cfg.TrackID) { r.tracks = append(r.tracks, t) }

func (r *recordingSink) count(s cfg.SoundID) int {
	n := 0
	for _, got := range r.sounds {
		if got == s {
			n++
		}
	}
	return n
}

type recordingStore struct {
	scores []int
}

func (r *recordingStore) SubmitScore(score int) { r.scores = append(r.scores, score) }

// duelLayout puts a single enemy spawn point straight in front of the hero's
// starting facing, inside melee reach.
func duelLayout() *arena.Layout {
	return &arena.Layout{
		Width:         800,
		Height:        600,
		HeroSpawn:     dmath.NewVec2(400, 300),
		PrincessSpawn: dmath.NewVec2(400, 500),
		SpawnPoints:   []dmath.Vec2{{X: 400, Y: 260}},
	}
}

func newTestSession(t *testing.T, waves []cfg.Wave) (*Session, *recordingSink, *recordingStore) {
	t.Helper()
	sink := &recordingSink{}
	store := &recordingStore{}
	s, err := NewSession(Options{
		AudioSink:  sink,
		ScoreStore: store,
		Layout:     duelLayout(),
		Waves:      waves,
		Seed:       1,
	})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s, sink, store
}

func TestNewSessionRejectsBadWaves(t *testing.T) {
	tests := []struct {
		name  string
		waves []cfg.Wave
	}{
		{"empty", []cfg.Wave{}},
		{"unknown type", []cfg.Wave{{Count: 1, Types: []cfg.EnemyType{cfg.EnemyTypeCount}}}},
		{"no types", []cfg.Wave{{Count: 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSession(Options{Waves: tt.waves}); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestResetIsIdempotent(t *testing.T) {
	s, sink, _ := newTestSession(t, nil)

	s.Reset()
	s.Reset()

	if s.State() != cfg.StateMenu {
		t.Fatalf("state = %v, want menu", s.State())
	}
	if s.Score() != 0 {
		t.Errorf("score = %d, want 0", s.Score())
	}
	snap := s.Snapshot()
	if len(snap.Enemies) != 0 || len(snap.Projectiles) != 0 {
		t.Errorf("reset left entities behind: %d enemies, %d projectiles", len(snap.Enemies), len(snap.Projectiles))
	}
	for _, track := range sink.tracks {
		if track != cfg.TrackMenu {
			t.Errorf("reset queued track %v, want only menu", track)
		}
	}
	if len(sink.tracks) != 3 {
		t.Errorf("menu track queued %d times, want once per reset", len(sink.tracks))
	}
}

func TestStartOnlyFromMenu(t *testing.T) {
	s, _, _ := newTestSession(t, nil)

	if err := s.Start(); err != nil {
		t.Fatalf("Start from menu: %v", err)
	}
	if s.State() != cfg.StatePlay {
		t.Fatalf("state = %v, want play", s.State())
	}
	if err := s.Start(); !errors.Is(err, ErrNotInMenu) {
		t.Errorf("second Start error = %v, want ErrNotInMenu", err)
	}
}

func TestMenuDoesNotSimulate(t *testing.T) {
	s, _, _ := newTestSession(t, nil)
	before := s.Snapshot().Hero

	for i := 0; i < 30; i++ {
		s.Tick(step, components.InputSnapshot{Move: dmath.NewVec2(1, 0)})
	}

	if after := s.Snapshot().Hero; after.X != before.X || after.Y != before.Y {
		t.Errorf("hero moved in menu: (%v,%v) -> (%v,%v)", before.X, before.Y, after.X, after.Y)
	}
}

func TestSingleWaveVictory(t *testing.T) {
	waves := []cfg.Wave{{Count: 1, Types: []cfg.EnemyType{cfg.EnemyTriangle}, Interval: 1}}
	s, sink, store := newTestSession(t, waves)

	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// The enemy spawns in front of the hero and dies to the first swing
	s.Tick(step, components.InputSnapshot{Attack: true})
	if got, want := s.Score(), cfg.EnemyTypes[cfg.EnemyTriangle].ScoreValue; got != want {
		t.Fatalf("score after kill = %d, want %d", got, want)
	}

	s.Tick(step, components.InputSnapshot{})
	if s.State() != cfg.StateWin {
		t.Fatalf("state = %v, want win", s.State())
	}
	if snap := s.Snapshot(); snap.Princess.State != cfg.PrincessWinRun {
		t.Errorf("princess state = %v, want win run", snap.Princess.State)
	}

	for i := 0; i < 120; i++ {
		s.Tick(step, components.InputSnapshot{})
	}
	snap := s.Snapshot()
	if snap.Princess.State != cfg.PrincessWinLove || !snap.Hero.Loved {
		t.Errorf("princess never reached the hero: state %v, loved %v", snap.Princess.State, snap.Hero.Loved)
	}
	if s.State() != cfg.StateWin {
		t.Errorf("state = %v after victory run, want win", s.State())
	}

	wantTracks := []cfg.TrackID{cfg.TrackMenu, cfg.TrackBattle, cfg.TrackWin}
	if len(sink.tracks) != len(wantTracks) {
		t.Fatalf("tracks = %v, want %v", sink.tracks, wantTracks)
	}
	for i := range wantTracks {
		if sink.tracks[i] != wantTracks[i] {
			t.Errorf("track %d = %v, want %v", i, sink.tracks[i], wantTracks[i])
		}
	}
	if sink.count(cfg.SoundHit) == 0 {
		t.Error("kill did not emit a hit cue")
	}
	if len(store.scores) != 0 {
		t.Errorf("victory submitted scores %v", store.scores)
	}
}

func TestPrincessDeathEndsRunOnce(t *testing.T) {
	s, sink, store := newTestSession(t, nil)
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	entry, ok := tags.Princess.First(s.ecs.World)
	if !ok {
		t.Fatal("no princess in world")
	}
	components.Health.Get(entry).Current = 0

	for i := 0; i < 5; i++ {
		s.Tick(step, components.InputSnapshot{})
	}

	if s.State() != cfg.StateGameOver {
		t.Fatalf("state = %v, want game over", s.State())
	}
	if len(store.scores) != 1 {
		t.Errorf("scores submitted %d times, want once", len(store.scores))
	}
	if n := sink.count(cfg.SoundLose); n != 1 {
		t.Errorf("lose cue emitted %d times, want once", n)
	}
	if err := s.Start(); !errors.Is(err, ErrNotInMenu) {
		t.Errorf("Start from game over = %v, want ErrNotInMenu", err)
	}

	s.Reset()
	if s.State() != cfg.StateMenu {
		t.Errorf("state after reset = %v, want menu", s.State())
	}
}

func TestTickSanitizesDt(t *testing.T) {
	s, _, _ := newTestSession(t, nil)
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	before := s.Snapshot().Hero
	s.Tick(-1, components.InputSnapshot{Move: dmath.NewVec2(1, 0)})
	if after := s.Snapshot().Hero; after.X != before.X {
		t.Errorf("negative dt moved the hero from %v to %v", before.X, after.X)
	}
}

func TestSetWavesAppliesOnReset(t *testing.T) {
	s, _, _ := newTestSession(t, nil)

	if err := s.SetWaves(nil); err == nil {
		t.Error("SetWaves accepted an empty table")
	}

	table := []cfg.Wave{{Count: 2, Types: []cfg.EnemyType{cfg.EnemySquare}, Interval: 1}}
	if err := s.SetWaves(table); err != nil {
		t.Fatalf("SetWaves: %v", err)
	}
	s.Reset()
	if got := s.Snapshot().WaveCount; got != 1 {
		t.Errorf("wave count = %d, want 1", got)
	}
}
