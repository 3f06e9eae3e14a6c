package components

import (
	"math/rand"

	cfg "github.com/automoto/saveme/config"
	"github.com/yohamta/donburi"
)

// SessionData is the singleton holding session-wide state
type SessionData struct {
	State cfg.SessionState
	Score int
	Rand  *rand.Rand

	// Set once on the first tick that crosses into GameOver
	GameOverHandled bool
	// Score waiting to be handed to the leaderboard, consumed by the session owner
	ScorePending bool
}

var Session = donburi.NewComponentType[SessionData]()
