package arena

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"sort"

	cfg "github.com/automoto/saveme/config"
	"github.com/lafriks/go-tiled"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	ErrNoHeroSpawn     = errors.New("arena: map has no hero spawn")
	ErrNoPrincessSpawn = errors.New("arena: map has no princess spawn")
)

// Load parses a TMX arena map. It takes an fs.FS so callers can pass the
// embedded assets or os.DirFS.
//
// Object groups:
//   - "Spawns": objects named "hero" and "princess"
//   - "Temples": properties "powerup" (spread|giant|fire|speed) and optional "direction" in degrees
//   - "EnemySpawns": enemy entry points; defaults to the compass points when empty
func Load(fsys fs.FS, tmxPath string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	l := &Layout{
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}
	var hasHero, hasPrincess bool

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Spawns":
			for _, o := range og.Objects {
				switch o.Name {
				case "hero":
					l.HeroSpawn = dmath.NewVec2(o.X, o.Y)
					hasHero = true
				case "princess":
					l.PrincessSpawn = dmath.NewVec2(o.X, o.Y)
					hasPrincess = true
				}
			}
		case "Temples":
			for _, o := range og.Objects {
				powerUp, err := cfg.ParsePowerUp(o.Properties.GetString("powerup"))
				if err != nil {
					return nil, fmt.Errorf("%s: temple %d: %w", tmxPath, o.ID, err)
				}
				l.Temples = append(l.Temples, TempleSpawn{
					X:         o.X,
					Y:         o.Y,
					Direction: o.Properties.GetFloat("direction") * math.Pi / 180,
					PowerUp:   powerUp,
				})
			}
		case "EnemySpawns":
			for _, o := range og.Objects {
				l.SpawnPoints = append(l.SpawnPoints, dmath.NewVec2(o.X, o.Y))
			}
		}
	}

	if !hasHero {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoHeroSpawn)
	}
	if !hasPrincess {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoPrincessSpawn)
	}

	// Stable order so seeded runs pick the same points
	sort.Slice(l.SpawnPoints, func(i, j int) bool {
		if l.SpawnPoints[i].Y != l.SpawnPoints[j].Y {
			return l.SpawnPoints[i].Y < l.SpawnPoints[j].Y
		}
		return l.SpawnPoints[i].X < l.SpawnPoints[j].X
	})
	if len(l.SpawnPoints) == 0 {
		l.SpawnPoints = CompassPoints(l.Width, l.Height, cfg.World.SpawnOffset)
	}

	return l, nil
}
