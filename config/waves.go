package config

import (
	"errors"
	"fmt"
)

// Wave is one scheduled batch of enemies
type Wave struct {
	Count    int         `yaml:"count"`
	Types    []EnemyType `yaml:"types"`
	Interval float64     `yaml:"interval"` // seconds between spawns
	Boss     bool        `yaml:"boss"`
}

// WaveConfig holds the campaign table and the distinguished boss types
type WaveConfig struct {
	MiniBossType  EnemyType
	FinalBossType EnemyType
	Table         []Wave
}

var Waves WaveConfig

var ErrEmptyWaveTable = errors.New("config: wave table is empty")

// BossType returns the type forced on the last spawn of boss wave i in a table of n waves
func (c *WaveConfig) BossType(i, n int) EnemyType {
	if i == n-1 {
		return c.FinalBossType
	}
	return c.MiniBossType
}

// ValidateWaves checks every wave references known enemy types
func ValidateWaves(waves []Wave) error {
	if len(waves) == 0 {
		return ErrEmptyWaveTable
	}
	for i, w := range waves {
		if w.Count < 0 {
			return fmt.Errorf("config: wave %d: negative count %d", i, w.Count)
		}
		if w.Interval < 0 {
			return fmt.Errorf("config: wave %d: negative interval %v", i, w.Interval)
		}
		if w.Count > 0 && len(w.Types) == 0 {
			return fmt.Errorf("config: wave %d: no enemy types", i)
		}
		for _, t := range w.Types {
			if !t.Valid() {
				return fmt.Errorf("config: wave %d: enemy type %d outside table [0,%d)", i, int(t), int(EnemyTypeCount))
			}
		}
	}
	return nil
}

// DefaultWaves returns a fresh copy of the built-in campaign
func DefaultWaves() []Wave {
	out := make([]Wave, len(Waves.Table))
	for i, w := range Waves.Table {
		out[i] = w
		out[i].Types = append([]EnemyType(nil), w.Types...)
	}
	return out
}

func init() {
	Waves = WaveConfig{
		MiniBossType:  EnemyMiniBoss,
		FinalBossType: EnemyFinalBoss,
		Table: []Wave{
			{Count: 10, Types: []EnemyType{EnemyTriangle}, Interval: 2.0},
			{Count: 15, Types: []EnemyType{EnemyTriangle, EnemySquare}, Interval: 1.8},
			{Count: 20, Types: []EnemyType{EnemyTriangle, EnemySpeeder}, Interval: 1.5},
			{Count: 20, Types: []EnemyType{EnemySquare, EnemyPentagon}, Interval: 1.5},
			// 10 fodder then the mini-boss
			{Count: 11, Types: []EnemyType{EnemyTriangle, EnemyMiniBoss}, Interval: 1.0, Boss: true},
			{Count: 30, Types: []EnemyType{EnemySpeeder, EnemyPentagon}, Interval: 1.0},
			{Count: 25, Types: []EnemyType{EnemyElite, EnemyHexagon}, Interval: 1.2},
			{Count: 30, Types: []EnemyType{EnemyHexagon, EnemyOctagon}, Interval: 0.9},
			{Count: 35, Types: []EnemyType{EnemyDarkness, EnemySpeeder}, Interval: 0.8},
			{Count: 1, Types: []EnemyType{EnemyFinalBoss}, Interval: 5.0, Boss: true},
		},
	}
}
