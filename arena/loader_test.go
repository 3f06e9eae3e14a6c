package arena

import (
	"errors"
	"math"
	"testing"
	"testing/fstest"

	cfg "github.com/automoto/saveme/config"
)

const testMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="20" height="15" tilewidth="40" tileheight="40" infinite="0">
 <objectgroup id="1" name="Spawns">
  <object id="1" name="hero" x="100" y="120"/>
  <object id="2" name="princess" x="200" y="220"/>
 </objectgroup>
 <objectgroup id="2" name="Temples">
  <object id="3" x="50" y="60">
   <properties>
    <property name="direction" type="float" value="90"/>
    <property name="powerup" value="fire"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="EnemySpawns">
  <object id="4" x="850" y="300"/>
  <object id="5" x="-50" y="-50"/>
 </objectgroup>
</map>`

const noPrincessMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="20" height="15" tilewidth="40" tileheight="40">
 <objectgroup id="1" name="Spawns">
  <object id="1" name="hero" x="100" y="120"/>
 </objectgroup>
</map>`

const badTempleMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="20" height="15" tilewidth="40" tileheight="40">
 <objectgroup id="1" name="Spawns">
  <object id="1" name="hero" x="100" y="120"/>
  <object id="2" name="princess" x="200" y="220"/>
 </objectgroup>
 <objectgroup id="2" name="Temples">
  <object id="3" x="50" y="60">
   <properties>
    <property name="powerup" value="laser"/>
   </properties>
  </object>
 </objectgroup>
</map>`

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{"arena.tmx": {Data: []byte(testMap)}}

	l, err := Load(fsys, "arena.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if l.Width != 800 || l.Height != 600 {
		t.Errorf("size = %vx%v, want 800x600", l.Width, l.Height)
	}
	if l.HeroSpawn.X != 100 || l.HeroSpawn.Y != 120 {
		t.Errorf("hero spawn = %+v", l.HeroSpawn)
	}
	if l.PrincessSpawn.X != 200 || l.PrincessSpawn.Y != 220 {
		t.Errorf("princess spawn = %+v", l.PrincessSpawn)
	}

	if len(l.Temples) != 1 {
		t.Fatalf("temples = %d, want 1", len(l.Temples))
	}
	temple := l.Temples[0]
	if temple.PowerUp != cfg.PowerUpFireTrail {
		t.Errorf("temple power-up = %v, want fire", temple.PowerUp)
	}
	if math.Abs(temple.Direction-math.Pi/2) > 1e-9 {
		t.Errorf("temple direction = %v, want Pi/2", temple.Direction)
	}

	if len(l.SpawnPoints) != 2 {
		t.Fatalf("spawn points = %d, want 2", len(l.SpawnPoints))
	}
	if l.SpawnPoints[0].Y != -50 {
		t.Errorf("spawn points not sorted by Y: %+v", l.SpawnPoints)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"missing princess", noPrincessMap, ErrNoPrincessSpawn},
		{"unknown powerup", badTempleMap, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"arena.tmx": {Data: []byte(tt.data)}}
			_, err := Load(fsys, "arena.tmx")
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(fstest.MapFS{}, "nope.tmx"); err == nil {
		t.Fatal("expected an error for a missing map")
	}
}

func TestLoadFallsBackToCompassPoints(t *testing.T) {
	fsys := fstest.MapFS{"arena.tmx": {Data: []byte(noEnemySpawnsMap)}}
	l, err := Load(fsys, "arena.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(l.SpawnPoints) != 8 {
		t.Errorf("spawn points = %d, want the 8 compass points", len(l.SpawnPoints))
	}
}

const noEnemySpawnsMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="20" height="15" tilewidth="40" tileheight="40">
 <objectgroup id="1" name="Spawns">
  <object id="1" name="hero" x="100" y="120"/>
  <object id="2" name="princess" x="200" y="220"/>
 </objectgroup>
</map>`

func TestDefault(t *testing.T) {
	l := Default()

	seen := map[cfg.PowerUp]bool{}
	for _, temple := range l.Temples {
		seen[temple.PowerUp] = true
		// Every temple faces the arena centre
		want := math.Atan2(l.Height/2-temple.Y, l.Width/2-temple.X)
		if math.Abs(temple.Direction-want) > 1e-9 {
			t.Errorf("temple at (%v,%v) direction %v, want %v", temple.X, temple.Y, temple.Direction, want)
		}
	}
	if len(seen) != int(cfg.PowerUpCount) {
		t.Errorf("default arena grants %d distinct power-ups, want %d", len(seen), cfg.PowerUpCount)
	}

	for _, p := range l.SpawnPoints {
		inside := p.X >= 0 && p.X <= l.Width && p.Y >= 0 && p.Y <= l.Height
		if inside {
			t.Errorf("spawn point %+v lies inside the arena", p)
		}
	}
}
