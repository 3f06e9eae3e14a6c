package config

import (
	"fmt"
	"image/color"
)

// EnemyType selects a row of the static enemy stat table
type EnemyType int

const (
	EnemyTriangle EnemyType = iota
	EnemySquare
	EnemySpeeder
	EnemyPentagon
	EnemyElite
	EnemyMiniBoss
	EnemyHexagon
	EnemyOctagon
	EnemyDarkness
	EnemyFinalBoss
	EnemyTypeCount // Must be last - used for array sizing
)

func (t EnemyType) Valid() bool {
	return t >= 0 && t < EnemyTypeCount
}

func (t EnemyType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("EnemyType(%d)", int(t))
	}
	return EnemyTypes[t].Name
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name       string     `yaml:"name"`
	Health     int        `yaml:"health"`
	Speed      float64    `yaml:"speed"`  // px/s
	Damage     float64    `yaml:"damage"` // contact damage per second
	ScoreValue int        `yaml:"score"`
	Sides      int        `yaml:"sides"`
	Radius     float64    `yaml:"radius"`
	Color      color.RGBA `yaml:"-"`
	Boss       bool       `yaml:"boss"`
}

// EnemyTypes is indexed by EnemyType
var EnemyTypes [EnemyTypeCount]EnemyTypeConfig

// Built-in rows, restored before a balance file is applied
var defaultEnemyTypes [EnemyTypeCount]EnemyTypeConfig

// MustEnemyType returns the stats row for t and panics on an index outside the table.
// An out-of-range type always comes from a broken wave table.
func MustEnemyType(t EnemyType) *EnemyTypeConfig {
	if !t.Valid() {
		panic(fmt.Sprintf("config: enemy type %d outside table [0,%d)", int(t), int(EnemyTypeCount)))
	}
	return &EnemyTypes[t]
}

func init() {
	EnemyTypes = [EnemyTypeCount]EnemyTypeConfig{
		EnemyTriangle: {
			Name: "triangle", Health: 20, Speed: 90, Damage: 10, ScoreValue: 10,
			Sides: 3, Radius: 12, Color: color.RGBA{231, 76, 60, 255},
		},
		EnemySquare: {
			Name: "square", Health: 40, Speed: 70, Damage: 12, ScoreValue: 20,
			Sides: 4, Radius: 14, Color: color.RGBA{230, 126, 34, 255},
		},
		EnemySpeeder: {
			Name: "speeder", Health: 15, Speed: 160, Damage: 8, ScoreValue: 15,
			Sides: 3, Radius: 10, Color: color.RGBA{241, 196, 15, 255},
		},
		EnemyPentagon: {
			Name: "pentagon", Health: 90, Speed: 55, Damage: 15, ScoreValue: 40,
			Sides: 5, Radius: 18, Color: color.RGBA{155, 89, 182, 255},
		},
		EnemyElite: {
			Name: "elite", Health: 70, Speed: 110, Damage: 18, ScoreValue: 50,
			Sides: 6, Radius: 16, Color: color.RGBA{26, 188, 156, 255},
		},
		EnemyMiniBoss: {
			Name: "mini-boss", Health: 400, Speed: 60, Damage: 25, ScoreValue: 300,
			Sides: 7, Radius: 36, Color: color.RGBA{236, 64, 122, 255}, Boss: true,
		},
		EnemyHexagon: {
			Name: "hexagon", Health: 60, Speed: 100, Damage: 15, ScoreValue: 45,
			Sides: 6, Radius: 16, Color: color.RGBA{46, 204, 113, 255},
		},
		EnemyOctagon: {
			Name: "octagon", Health: 120, Speed: 80, Damage: 20, ScoreValue: 60,
			Sides: 8, Radius: 20, Color: color.RGBA{22, 160, 133, 255},
		},
		EnemyDarkness: {
			Name: "darkness", Health: 80, Speed: 130, Damage: 20, ScoreValue: 70,
			Sides: 4, Radius: 15, Color: color.RGBA{30, 30, 30, 255},
		},
		EnemyFinalBoss: {
			Name: "final-boss", Health: 1500, Speed: 50, Damage: 35, ScoreValue: 1000,
			Sides: 12, Radius: 56, Color: color.RGBA{212, 175, 55, 255}, Boss: true,
		},
	}
	defaultEnemyTypes = EnemyTypes
}
