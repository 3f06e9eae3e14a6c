package assets

import (
	"testing"

	"github.com/automoto/saveme/config"
)

func TestEmbeddedArena(t *testing.T) {
	layout := MustLoadArena()
	if len(layout.Temples) != int(config.PowerUpCount) {
		t.Errorf("temples = %d, want %d", len(layout.Temples), config.PowerUpCount)
	}
	if len(layout.SpawnPoints) != 8 {
		t.Errorf("spawn points = %d, want 8", len(layout.SpawnPoints))
	}
	if layout.Width != float64(config.C.Width) || layout.Height != float64(config.C.Height) {
		t.Errorf("arena %vx%v does not match the screen %dx%d", layout.Width, layout.Height, config.C.Width, config.C.Height)
	}
}

func TestEmbeddedBalanceMatchesDefaults(t *testing.T) {
	b, err := LoadBalance()
	if err != nil {
		t.Fatalf("LoadBalance: %v", err)
	}
	want := config.DefaultWaves()
	if len(b.Waves) != len(want) {
		t.Fatalf("waves = %d, want %d", len(b.Waves), len(want))
	}
	for i := range want {
		got := b.Waves[i]
		if got.Count != want[i].Count || got.Boss != want[i].Boss || got.Interval != want[i].Interval {
			t.Errorf("wave %d = %+v, want %+v", i, got, want[i])
		}
	}
}
