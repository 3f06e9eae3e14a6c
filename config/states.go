package config

// SessionState is the top-level game session state
type SessionState int

const (
	StateMenu SessionState = iota
	StatePlay
	StateWin
	StateGameOver
)

func (s SessionState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlay:
		return "play"
	case StateWin:
		return "win"
	case StateGameOver:
		return "gameover"
	}
	return "unknown"
}

// Simulating reports whether entities advance in this state
func (s SessionState) Simulating() bool {
	return s == StatePlay || s == StateWin
}

// PrincessState only ever moves forward: Idle -> WinRun -> WinLove
type PrincessState int

const (
	PrincessIdle PrincessState = iota
	PrincessWinRun
	PrincessWinLove
)

func (s PrincessState) String() string {
	switch s {
	case PrincessIdle:
		return "idle"
	case PrincessWinRun:
		return "win-run"
	case PrincessWinLove:
		return "win-love"
	}
	return "unknown"
}
