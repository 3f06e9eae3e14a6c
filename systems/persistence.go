package systems

import (
	"encoding/json"
	"log"
	"sort"
	"strconv"

	"github.com/quasilyte/gdata"
)

const (
	highScoresKey   = "saveMe_highScores"
	audioEnabledKey = "saveMe_audioEnabled"

	maxHighScores = 10
)

// itemStore is the subset of gdata.Manager the leaderboard needs
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// ScoreBoard keeps the top scores and the audio preference on disk.
// Storage failures are logged and otherwise ignored; the board keeps working in memory.
type ScoreBoard struct {
	store  itemStore
	scores []int

	lastWasRecord bool
}

// OpenScoreBoard opens the gdata storage for appName and loads saved scores.
// The returned board is usable even when the storage could not be opened.
func OpenScoreBoard(appName string) *ScoreBoard {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return NewScoreBoard(nil)
	}
	return NewScoreBoard(m)
}

// NewScoreBoard wraps store; a nil store keeps everything in memory
func NewScoreBoard(store itemStore) *ScoreBoard {
	b := &ScoreBoard{store: store}
	b.scores = b.loadScores()
	return b
}

func (b *ScoreBoard) loadScores() []int {
	if b.store == nil {
		return nil
	}
	data, err := b.store.LoadItem(highScoresKey)
	if err != nil {
		log.Printf("Warning: Could not load high scores: %v", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var scores []int
	if err := json.Unmarshal(data, &scores); err != nil {
		log.Printf("Warning: Could not parse saved high scores: %v", err)
		return nil
	}
	sort.Sort(sort.Reverse(sort.IntSlice(scores)))
	if len(scores) > maxHighScores {
		scores = scores[:maxHighScores]
	}
	return scores
}

// SubmitScore records a finished run's score
func (b *ScoreBoard) SubmitScore(score int) {
	b.lastWasRecord = score > b.Best()

	b.scores = append(b.scores, score)
	sort.Sort(sort.Reverse(sort.IntSlice(b.scores)))
	if len(b.scores) > maxHighScores {
		b.scores = b.scores[:maxHighScores]
	}

	if b.store == nil {
		return
	}
	data, err := json.Marshal(b.scores)
	if err != nil {
		log.Printf("Warning: Could not serialize high scores: %v", err)
		return
	}
	if err := b.store.SaveItem(highScoresKey, data); err != nil {
		log.Printf("Warning: Could not save high scores: %v", err)
	}
}

// Top returns up to n best scores, highest first
func (b *ScoreBoard) Top(n int) []int {
	if n > len(b.scores) {
		n = len(b.scores)
	}
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	copy(out, b.scores[:n])
	return out
}

// Best returns the highest recorded score, 0 when none
func (b *ScoreBoard) Best() int {
	if len(b.scores) == 0 {
		return 0
	}
	return b.scores[0]
}

// LastWasRecord reports whether the most recent submission beat every earlier score
func (b *ScoreBoard) LastWasRecord() bool {
	return b.lastWasRecord
}

// AudioEnabled returns the saved audio preference. Defaults to enabled.
func (b *ScoreBoard) AudioEnabled() bool {
	if b.store == nil {
		return true
	}
	data, err := b.store.LoadItem(audioEnabledKey)
	if err != nil {
		log.Printf("Warning: Could not load audio preference: %v", err)
		return true
	}
	if len(data) == 0 {
		return true
	}
	enabled, err := strconv.ParseBool(string(data))
	if err != nil {
		return true
	}
	return enabled
}

func (b *ScoreBoard) SetAudioEnabled(enabled bool) {
	if b.store == nil {
		return
	}
	if err := b.store.SaveItem(audioEnabledKey, []byte(strconv.FormatBool(enabled))); err != nil {
		log.Printf("Warning: Could not save audio preference: %v", err)
	}
}

// Clear drops every saved score and the audio preference
func (b *ScoreBoard) Clear() {
	b.scores = nil
	b.lastWasRecord = false
	if b.store == nil {
		return
	}
	for _, key := range []string{highScoresKey, audioEnabledKey} {
		if err := b.store.SaveItem(key, nil); err != nil {
			log.Printf("Warning: Could not clear %s: %v", key, err)
		}
	}
}
