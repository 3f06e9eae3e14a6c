package systems

import (
	"testing"

	"github.com/automoto/saveme/components"
	cfg "github.com/automoto/saveme/config"
	"github.com/automoto/saveme/shared/gamemath"
	"github.com/automoto/saveme/systems/factory"
	"github.com/automoto/saveme/tags"
)

func TestEnemyTargetSelection(t *testing.T) {
	tests := []struct {
		name       string
		x, y       float64
		wantHero   bool
		heroIsDead bool
	}{
		{"near hero", 400, 450, true, false},
		{"far from hero", 100, 100, false, false},
		{"dead hero ignored", 400, 450, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t, nil)
			heroEntry, _ := tags.Hero.First(e.World)
			princessEntry, _ := tags.Princess.First(e.World)
			if tt.heroIsDead {
				components.Health.Get(heroEntry).Current = 0
			}

			enemy := factory.CreateEnemy(e, cfg.EnemyTriangle, tt.x, tt.y)
			target, isHero := selectTarget(components.Body.Get(enemy), heroEntry, princessEntry)
			if isHero != tt.wantHero {
				t.Errorf("targets hero = %v, want %v", isHero, tt.wantHero)
			}
			if !isHero && target != princessEntry {
				t.Error("fallback target is not the princess")
			}
		})
	}
}

func TestEnemyMovesTowardTarget(t *testing.T) {
	e := newTestECS(t, nil)
	princessEntry, _ := tags.Princess.First(e.World)
	princessBody := components.Body.Get(princessEntry)

	enemy := factory.CreateEnemy(e, cfg.EnemyTriangle, 100, 100)
	body := components.Body.Get(enemy)
	before := gamemath.Distance(body.Pos.X, body.Pos.Y, princessBody.Pos.X, princessBody.Pos.Y)

	UpdateEnemies(e)

	after := gamemath.Distance(body.Pos.X, body.Pos.Y, princessBody.Pos.X, princessBody.Pos.Y)
	step := cfg.EnemyTypes[cfg.EnemyTriangle].Speed * GetFrame(e).DT
	if diff := before - after; diff < step-1e-9 || diff > step+1e-9 {
		t.Errorf("closed %v px, want %v", diff, step)
	}
}

func TestFrozenEnemyMovesAtReducedSpeed(t *testing.T) {
	e := newTestECS(t, nil)
	enemy := factory.CreateEnemy(e, cfg.EnemyTriangle, 100, 100)
	components.Enemy.Get(enemy).FreezeTimer = 1
	body := components.Body.Get(enemy)
	x0, y0 := body.Pos.X, body.Pos.Y

	UpdateEnemies(e)

	moved := gamemath.Distance(x0, y0, body.Pos.X, body.Pos.Y)
	want := cfg.EnemyTypes[cfg.EnemyTriangle].Speed * cfg.Enemy.FreezeSpeedFactor * GetFrame(e).DT
	if moved > want+1e-9 || moved < want-1e-9 {
		t.Errorf("frozen enemy moved %v, want %v", moved, want)
	}
}

func TestEnemyContactDamagesPrincess(t *testing.T) {
	e := newTestECS(t, nil)
	princessEntry, _ := tags.Princess.First(e.World)
	princessBody := components.Body.Get(princessEntry)

	heroEntry, _ := tags.Hero.First(e.World)
	components.Body.Get(heroEntry).Pos.X = 50
	components.Body.Get(heroEntry).Pos.Y = 550

	// Touching the princess from above
	stats := cfg.EnemyTypes[cfg.EnemySquare]
	factory.CreateEnemy(e, cfg.EnemySquare, princessBody.Pos.X, princessBody.Pos.Y-princessBody.Radius-stats.Radius)

	setDT(e, 0.5)
	UpdateEnemies(e)

	health := components.Health.Get(princessEntry)
	want := health.Max - stats.Damage*0.5
	if health.Current != want {
		t.Errorf("princess health = %v, want %v", health.Current, want)
	}
	princess := components.Princess.Get(princessEntry)
	if !princess.Panic || princess.PanicTimer != cfg.Princess.PanicSeconds {
		t.Errorf("panic = %v timer %v, want panicking for %v", princess.Panic, princess.PanicTimer, cfg.Princess.PanicSeconds)
	}
}

func TestEnemyHealthOnlyDecreases(t *testing.T) {
	e := newTestECS(t, nil)
	enemy := factory.CreateEnemy(e, cfg.EnemyOctagon, 100, 100)
	health := components.Health.Get(enemy)

	last := health.Current
	kills := 0
	for _, dmg := range []float64{10, 0, 35, 200, 5} {
		if DamageEnemy(enemy, dmg) {
			kills++
		}
		if health.Current > last || health.Current < 0 {
			t.Fatalf("health went from %v to %v", last, health.Current)
		}
		last = health.Current
	}
	if kills != 1 {
		t.Errorf("death reported %d times, want once", kills)
	}
	if CountLiveEnemies(e) != 0 {
		t.Error("dead enemy still counted as live")
	}
}

func TestBurnTicksAndKillsQuietly(t *testing.T) {
	e := newTestECS(t, nil)
	enemy := factory.CreateEnemy(e, cfg.EnemySpeeder, 100, 100)
	data := components.Enemy.Get(enemy)
	ignite(data)
	components.Health.Get(enemy).Current = float64(cfg.Enemy.BurnTickDamage)

	setDT(e, cfg.Enemy.BurnTickSeconds)
	UpdateEnemies(e)

	if !data.Dead {
		t.Fatal("lethal burn tick did not kill")
	}
	if GetSession(e).Score != cfg.EnemyTypes[cfg.EnemySpeeder].ScoreValue {
		t.Errorf("burn kill scored %d", GetSession(e).Score)
	}
}

func TestUnknownEnemyTypeIsIsolated(t *testing.T) {
	e := newTestECS(t, nil)
	bad := factory.CreateEnemy(e, cfg.EnemyTriangle, 100, 100)
	good := factory.CreateEnemy(e, cfg.EnemyTriangle, 700, 100)
	components.Enemy.Get(bad).Type = cfg.EnemyTypeCount + 3

	UpdateEnemies(e)

	if !components.Enemy.Get(bad).Dead {
		t.Error("enemy with a corrupt type not removed")
	}
	if components.Enemy.Get(good).Dead {
		t.Error("healthy enemy affected by its neighbour")
	}
}
