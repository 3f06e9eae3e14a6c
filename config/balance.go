package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Balance is the on-disk rebalancing file: a replacement wave table and
// per-type stat overrides keyed by enemy name.
type Balance struct {
	Waves   []Wave                   `yaml:"waves"`
	Enemies map[string]EnemyOverride `yaml:"enemies"`
}

// EnemyOverride replaces non-zero stats of one enemy type
type EnemyOverride struct {
	Health     int     `yaml:"health"`
	Speed      float64 `yaml:"speed"`
	Damage     float64 `yaml:"damage"`
	ScoreValue int     `yaml:"score"`
	Radius     float64 `yaml:"radius"`
}

// ParseBalance decodes and validates a balance document
func ParseBalance(data []byte) (*Balance, error) {
	var b Balance
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("config: unmarshal balance: %w", err)
	}
	if len(b.Waves) > 0 {
		if err := ValidateWaves(b.Waves); err != nil {
			return nil, fmt.Errorf("config: balance waves: %w", err)
		}
	}
	for name := range b.Enemies {
		if _, ok := enemyTypeByName(name); !ok {
			return nil, fmt.Errorf("config: balance: unknown enemy %q", name)
		}
	}
	return &b, nil
}

// LoadBalanceFile reads a balance document from disk
func LoadBalanceFile(path string) (*Balance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	return ParseBalance(data)
}

// Apply resets EnemyTypes to the built-in rows, writes the overrides and returns
// the wave table to use. An empty wave list keeps the built-in campaign.
func (b *Balance) Apply() []Wave {
	EnemyTypes = defaultEnemyTypes
	for name, o := range b.Enemies {
		t, _ := enemyTypeByName(name)
		row := &EnemyTypes[t]
		if o.Health > 0 {
			row.Health = o.Health
		}
		if o.Speed > 0 {
			row.Speed = o.Speed
		}
		if o.Damage > 0 {
			row.Damage = o.Damage
		}
		if o.ScoreValue > 0 {
			row.ScoreValue = o.ScoreValue
		}
		if o.Radius > 0 {
			row.Radius = o.Radius
		}
	}
	if len(b.Waves) == 0 {
		return DefaultWaves()
	}
	return b.Waves
}

func enemyTypeByName(name string) (EnemyType, bool) {
	for t := EnemyType(0); t < EnemyTypeCount; t++ {
		if EnemyTypes[t].Name == name {
			return t, true
		}
	}
	return 0, false
}
