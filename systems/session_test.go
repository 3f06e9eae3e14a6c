package systems

import (
	"testing"

	"github.com/automoto/saveme/components"
	cfg "github.com/automoto/saveme/config"
	"github.com/automoto/saveme/tags"
	"github.com/yohamta/donburi/ecs"
)

func TestTerminalFiresOnce(t *testing.T) {
	tests := []struct {
		name  string
		tag   string
		state cfg.SessionState
	}{
		{"hero dies in play", "hero", cfg.StatePlay},
		{"princess dies in play", "princess", cfg.StatePlay},
		{"princess dies during victory", "princess", cfg.StateWin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t, nil)
			GetSession(e).State = tt.state

			entry, _ := tags.Hero.First(e.World)
			if tt.tag == "princess" {
				entry, _ = tags.Princess.First(e.World)
			}
			components.Health.Get(entry).Current = 0

			for i := 0; i < 3; i++ {
				UpdateTerminal(e)
			}

			session := GetSession(e)
			if session.State != cfg.StateGameOver {
				t.Fatalf("state = %v, want game over", session.State)
			}
			if !session.ScorePending {
				t.Error("score not queued for persistence")
			}
			if n := countSFX(e, cfg.SoundLose); n != 1 {
				t.Errorf("lose cue emitted %d times, want once", n)
			}
		})
	}
}

func TestTerminalIgnoresMenu(t *testing.T) {
	e := newTestECS(t, nil)
	GetSession(e).State = cfg.StateMenu
	entry, _ := tags.Hero.First(e.World)
	components.Health.Get(entry).Current = 0

	UpdateTerminal(e)

	if GetSession(e).State != cfg.StateMenu {
		t.Errorf("menu moved to %v", GetSession(e).State)
	}
}

func TestSimulationGate(t *testing.T) {
	for _, state := range []cfg.SessionState{cfg.StateMenu, cfg.StatePlay, cfg.StateWin, cfg.StateGameOver} {
		t.Run(state.String(), func(t *testing.T) {
			e := newTestECS(t, nil)
			GetSession(e).State = state
			ran := false
			WithSimulation(func(*ecs.ECS) { ran = true })(e)
			if ran != state.Simulating() {
				t.Errorf("system ran = %v in %v", ran, state)
			}
		})
	}
}
