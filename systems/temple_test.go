package systems

import (
	"testing"

	"github.com/automoto/saveme/components"
	cfg "github.com/automoto/saveme/config"
	"github.com/automoto/saveme/systems/factory"
	"github.com/automoto/saveme/tags"
)

func TestTempleGrantsPowerUpWhenCharged(t *testing.T) {
	tests := []struct {
		name      string
		souls     int
		wantGrant bool
	}{
		{"uncharged", cfg.Temple.SoulThreshold - 1, false},
		{"charged", cfg.Temple.SoulThreshold, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t, nil)
			heroEntry, _ := tags.Hero.First(e.World)
			heroBody := components.Body.Get(heroEntry)
			temple := factory.CreateTemple(e, heroBody.Pos.X+10, heroBody.Pos.Y, 0, cfg.PowerUpSpeedBoost)
			for i := 0; i < tt.souls; i++ {
				ChargeTemples(e)
			}

			UpdateTemples(e)

			hero := components.Hero.Get(heroEntry)
			if got := hero.HasPowerUp(cfg.PowerUpSpeedBoost); got != tt.wantGrant {
				t.Errorf("power-up granted = %v, want %v", got, tt.wantGrant)
			}
			data := components.Temple.Get(temple)
			if tt.wantGrant {
				if data.Charged || data.Energy != 0 {
					t.Errorf("temple not emptied: energy %d charged %v", data.Energy, data.Charged)
				}
				if hero.PowerUps[cfg.PowerUpSpeedBoost] != cfg.Hero.PowerUpSeconds {
					t.Errorf("duration = %v, want %v", hero.PowerUps[cfg.PowerUpSpeedBoost], cfg.Hero.PowerUpSeconds)
				}
				if countSFX(e, cfg.SoundPowerUp) != 1 {
					t.Error("no power-up cue")
				}
			} else if data.Energy != tt.souls {
				t.Errorf("energy = %d, want %d", data.Energy, tt.souls)
			}
		})
	}
}

func TestTempleOutOfReachIsIgnored(t *testing.T) {
	e := newTestECS(t, nil)
	temple := factory.CreateTemple(e, 60, 60, 0, cfg.PowerUpSpreadShot)
	for i := 0; i < cfg.Temple.SoulThreshold; i++ {
		ChargeTemples(e)
	}

	UpdateTemples(e)

	if !components.Temple.Get(temple).Charged {
		t.Error("distant temple consumed")
	}
}

func TestTempleEnergyNeverExceedsThreshold(t *testing.T) {
	e := newTestECS(t, nil)
	temple := factory.CreateTemple(e, 60, 60, 0, cfg.PowerUpFireTrail)
	for i := 0; i < cfg.Temple.SoulThreshold*3; i++ {
		ChargeTemples(e)
		data := components.Temple.Get(temple)
		if data.Energy < 0 || data.Energy > data.Threshold {
			t.Fatalf("energy %d outside [0,%d]", data.Energy, data.Threshold)
		}
	}
}
