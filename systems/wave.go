package systems

import (
	"github.com/automoto/saveme/arena"
	"github.com/automoto/saveme/components"
	cfg "github.com/automoto/saveme/config"
	"github.com/automoto/saveme/systems/factory"
	"github.com/automoto/saveme/tags"
	"github.com/yohamta/donburi/ecs"
)

// StartWave loads wave i. Past the end of the table the campaign is won.
func StartWave(e *ecs.ECS, i int) {
	w := GetWave(e)
	w.Index = i
	w.Spawned = 0
	w.Countdown = 0

	wave, ok := w.Current()
	if !ok {
		w.Remaining = 0
		w.Finished = true
		declareVictory(e)
		return
	}

	w.Remaining = wave.Count
	if wave.Boss {
		PlayTrack(e, cfg.TrackBoss)
	} else {
		PlayTrack(e, cfg.TrackBattle)
	}
}

// UpdateWaves spawns the current wave on its interval and advances once it is
// fully spawned and cleared.
func UpdateWaves(e *ecs.ECS) {
	w := GetWave(e)
	if w.Finished || w.Index < 0 {
		return
	}
	wave, ok := w.Current()
	if !ok {
		return
	}

	if w.Remaining > 0 {
		w.Countdown -= GetFrame(e).DT
		if w.Countdown <= 0 {
			spawnWaveEnemy(e, w, wave)
			w.Remaining--
			w.Spawned++
			w.Countdown = wave.Interval
		}
	}

	if w.Remaining == 0 && CountLiveEnemies(e) == 0 {
		StartWave(e, w.Index+1)
	}
}

func spawnWaveEnemy(e *ecs.ECS, w *components.WaveData, wave cfg.Wave) {
	rng := GetSession(e).Rand

	var t cfg.EnemyType
	if wave.Boss && w.Remaining == 1 {
		t = cfg.Waves.BossType(w.Index, len(w.Table))
	} else {
		t = wave.Types[rng.Intn(len(wave.Types))]
	}

	points := w.SpawnPoints
	if len(points) == 0 {
		points = arena.CompassPoints(cfg.World.Width, cfg.World.Height, cfg.World.SpawnOffset)
	}
	p := points[rng.Intn(len(points))]

	factory.CreateEnemy(e, t, p.X, p.Y)
}

func declareVictory(e *ecs.ECS) {
	session := GetSession(e)
	if session.State == cfg.StatePlay {
		session.State = cfg.StateWin
	}
	if entry, ok := tags.Princess.First(e.World); ok {
		BeginWinRun(entry)
	}
	PlayTrack(e, cfg.TrackWin)
}
