package systems

import (
	"testing"

	"github.com/automoto/saveme/components"
	cfg "github.com/automoto/saveme/config"
	"github.com/automoto/saveme/tags"
	"github.com/yohamta/donburi"
)

func TestWaveSpawnsExactlyCount(t *testing.T) {
	waves := []cfg.Wave{{Count: 10, Types: []cfg.EnemyType{cfg.EnemyTriangle}, Interval: 2.0}}
	e := newTestECS(t, waves)
	setDT(e, 0.1)

	StartWave(e, 0)
	for i := 0; i < 400; i++ {
		UpdateWaves(e)
	}

	w := GetWave(e)
	if w.Spawned != 10 || w.Remaining != 0 {
		t.Errorf("spawned %d remaining %d, want 10 and 0", w.Spawned, w.Remaining)
	}
	if got := CountLiveEnemies(e); got != 10 {
		t.Errorf("live enemies = %d, want 10", got)
	}
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if typ := components.Enemy.Get(entry).Type; typ != cfg.EnemyTriangle {
			t.Errorf("spawned type %v outside the allowed set", typ)
		}
	})
	// Live enemies hold the wave open
	if w.Index != 0 || w.Finished {
		t.Errorf("wave advanced with enemies alive: index %d finished %v", w.Index, w.Finished)
	}
}

func TestWaveSpawnInterval(t *testing.T) {
	waves := []cfg.Wave{{Count: 3, Types: []cfg.EnemyType{cfg.EnemyTriangle}, Interval: 1.0}}
	e := newTestECS(t, waves)
	setDT(e, 0.25)

	StartWave(e, 0)
	UpdateWaves(e)
	if got := GetWave(e).Spawned; got != 1 {
		t.Fatalf("first spawn not immediate: spawned %d", got)
	}
	for i := 0; i < 3; i++ {
		UpdateWaves(e)
	}
	if got := GetWave(e).Spawned; got != 1 {
		t.Errorf("spawned %d before the interval elapsed", got)
	}
	UpdateWaves(e)
	if got := GetWave(e).Spawned; got != 2 {
		t.Errorf("spawned %d after one interval, want 2", got)
	}
}

func TestBossWaveForcesBossLast(t *testing.T) {
	tests := []struct {
		name  string
		waves []cfg.Wave
		index int
		want  cfg.EnemyType
	}{
		{
			name: "final wave",
			waves: []cfg.Wave{
				{Count: 3, Types: []cfg.EnemyType{cfg.EnemyTriangle}, Interval: 0, Boss: true},
			},
			want: cfg.EnemyFinalBoss,
		},
		{
			name: "intermediate wave",
			waves: []cfg.Wave{
				{Count: 3, Types: []cfg.EnemyType{cfg.EnemyTriangle}, Interval: 0, Boss: true},
				{Count: 1, Types: []cfg.EnemyType{cfg.EnemyTriangle}, Interval: 0},
			},
			want: cfg.EnemyMiniBoss,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t, tt.waves)
			StartWave(e, tt.index)
			if getAudio(e).CurrentTrack != cfg.TrackBoss {
				t.Errorf("track = %v, want boss", getAudio(e).CurrentTrack)
			}

			for i := 0; i < 3; i++ {
				UpdateWaves(e)
			}

			counts := map[cfg.EnemyType]int{}
			tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
				counts[components.Enemy.Get(entry).Type]++
			})
			if counts[tt.want] != 1 || counts[cfg.EnemyTriangle] != 2 {
				t.Errorf("spawned %v, want two triangles and one %v", counts, tt.want)
			}
		})
	}
}

func TestClearingLastWaveWins(t *testing.T) {
	waves := []cfg.Wave{{Count: 1, Types: []cfg.EnemyType{cfg.EnemyTriangle}, Interval: 1}}
	e := newTestECS(t, waves)

	StartWave(e, 0)
	UpdateWaves(e)
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		DamageEnemy(entry, 1000)
	})
	UpdateCleanup(e)
	UpdateWaves(e)

	if !GetWave(e).Finished {
		t.Fatal("wave director not finished")
	}
	if GetSession(e).State != cfg.StateWin {
		t.Errorf("state = %v, want win", GetSession(e).State)
	}
	princess, _ := tags.Princess.First(e.World)
	if components.Princess.Get(princess).State != cfg.PrincessWinRun {
		t.Errorf("princess state = %v, want win run", components.Princess.Get(princess).State)
	}
	if getAudio(e).CurrentTrack != cfg.TrackWin {
		t.Errorf("track = %v, want win", getAudio(e).CurrentTrack)
	}
}

func TestEmptyWaveAdvancesImmediately(t *testing.T) {
	waves := []cfg.Wave{
		{Count: 0, Interval: 1},
		{Count: 1, Types: []cfg.EnemyType{cfg.EnemySquare}, Interval: 1},
	}
	e := newTestECS(t, waves)

	StartWave(e, 0)
	UpdateWaves(e)
	if got := GetWave(e).Index; got != 1 {
		t.Errorf("index = %d, want 1", got)
	}
}
