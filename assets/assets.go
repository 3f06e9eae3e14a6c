package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/saveme/arena"
	"github.com/automoto/saveme/config"
)

const (
	ArenaPath   = "arena.tmx"
	BalancePath = "balance.yaml"
)

var (
	//go:embed arena.tmx balance.yaml
	assetFS embed.FS
)

// MustLoadArena parses the embedded arena map
func MustLoadArena() *arena.Layout {
	layout, err := arena.Load(assetFS, ArenaPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load embedded arena: %v", err))
	}
	return layout
}

// LoadBalance parses the embedded balance file
func LoadBalance() (*config.Balance, error) {
	data, err := assetFS.ReadFile(BalancePath)
	if err != nil {
		return nil, fmt.Errorf("read embedded balance: %w", err)
	}
	return config.ParseBalance(data)
}
