package systems

import (
	"errors"
	"reflect"
	"testing"
)

type memStore struct {
	items   map[string][]byte
	failAll bool
}

func newMemStore() *memStore {
	return &memStore{items: map[string][]byte{}}
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.failAll {
		return nil, errors.New("disk on fire")
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.failAll {
		return errors.New("disk on fire")
	}
	m.items[key] = data
	return nil
}

func TestScoreBoardKeepsTopTen(t *testing.T) {
	store := newMemStore()
	board := NewScoreBoard(store)

	for score := 10; score <= 150; score += 10 {
		board.SubmitScore(score)
	}

	top := board.Top(20)
	if len(top) != maxHighScores {
		t.Fatalf("kept %d scores, want %d", len(top), maxHighScores)
	}
	if top[0] != 150 || top[len(top)-1] != 60 {
		t.Errorf("top = %v, want 150 down to 60", top)
	}

	// A fresh board reads the same list back
	reloaded := NewScoreBoard(store)
	if !reflect.DeepEqual(reloaded.Top(20), top) {
		t.Errorf("reloaded %v, want %v", reloaded.Top(20), top)
	}
}

func TestScoreBoardRecord(t *testing.T) {
	board := NewScoreBoard(newMemStore())

	board.SubmitScore(50)
	if !board.LastWasRecord() {
		t.Error("first score not a record")
	}
	board.SubmitScore(20)
	if board.LastWasRecord() {
		t.Error("lower score reported as record")
	}
	if board.Best() != 50 {
		t.Errorf("best = %d, want 50", board.Best())
	}
}

func TestScoreBoardSurvivesBadStorage(t *testing.T) {
	tests := []struct {
		name  string
		store *memStore
	}{
		{"corrupt data", &memStore{items: map[string][]byte{highScoresKey: []byte("{not json")}}},
		{"failing store", &memStore{items: map[string][]byte{}, failAll: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := NewScoreBoard(tt.store)
			if got := board.Top(5); len(got) != 0 {
				t.Errorf("top = %v, want empty", got)
			}
			board.SubmitScore(42)
			if got := board.Top(5); !reflect.DeepEqual(got, []int{42}) {
				t.Errorf("top = %v, want [42]", got)
			}
			if !board.AudioEnabled() {
				t.Error("audio disabled without a saved preference")
			}
		})
	}
}

func TestAudioPreference(t *testing.T) {
	store := newMemStore()
	board := NewScoreBoard(store)

	if !board.AudioEnabled() {
		t.Fatal("audio should default to enabled")
	}
	board.SetAudioEnabled(false)
	if NewScoreBoard(store).AudioEnabled() {
		t.Error("disabled preference not persisted")
	}

	board.Clear()
	if !board.AudioEnabled() || len(board.Top(10)) != 0 {
		t.Error("clear kept saved data")
	}
}

func TestInMemoryScoreBoard(t *testing.T) {
	board := NewScoreBoard(nil)
	board.SubmitScore(7)
	if board.Best() != 7 {
		t.Errorf("best = %d, want 7", board.Best())
	}
	board.SetAudioEnabled(false)
	if !board.AudioEnabled() {
		t.Error("in-memory board should report the default preference")
	}
}
