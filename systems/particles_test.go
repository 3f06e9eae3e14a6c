package systems

import (
	"image/color"
	"testing"

	"github.com/automoto/saveme/components"
	cfg "github.com/automoto/saveme/config"
	"github.com/automoto/saveme/systems/factory"
	"github.com/automoto/saveme/tags"
	"github.com/yohamta/donburi"
)

func TestParticlesFadeAndExpire(t *testing.T) {
	e := newTestECS(t, nil)
	factory.SpawnParticleBurst(e, nil, 200, 200, 8, color.RGBA{255, 0, 0, 255})
	if got := countTagged(e, tags.Particle); got != 8 {
		t.Fatalf("burst spawned %d particles, want 8", got)
	}

	setDT(e, cfg.Particles.LifeSeconds/2)
	UpdateParticles(e)
	tags.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		if p.Expired {
			t.Error("particle expired at half life")
		}
		if p.Alpha <= 0 || p.Alpha >= 1 {
			t.Errorf("alpha at half life = %v, want in (0,1)", p.Alpha)
		}
	})

	UpdateParticles(e)
	UpdateCleanup(e)
	if got := countTagged(e, tags.Particle); got != 0 {
		t.Errorf("%d particles survived their lifetime", got)
	}
}

func TestParticlesFall(t *testing.T) {
	e := newTestECS(t, nil)
	factory.SpawnParticleBurst(e, nil, 200, 200, 1, color.RGBA{})
	entry, _ := tags.Particle.First(e.World)
	body := components.Body.Get(entry)
	vy := body.Vel.Y

	UpdateParticles(e)

	if body.Vel.Y <= vy {
		t.Errorf("gravity did not pull: vy %v -> %v", vy, body.Vel.Y)
	}
}

func TestCleanupRemovesOnlyFlagged(t *testing.T) {
	e := newTestECS(t, nil)
	dead := factory.CreateEnemy(e, cfg.EnemyTriangle, 100, 100)
	alive := factory.CreateEnemy(e, cfg.EnemyTriangle, 300, 100)
	DamageEnemy(dead, 1000)

	UpdateCleanup(e)

	if dead.Valid() {
		t.Error("dead enemy not removed")
	}
	if !alive.Valid() {
		t.Error("live enemy removed")
	}
	if got := countTagged(e, tags.Enemy); got != 1 {
		t.Errorf("enemies = %d, want 1", got)
	}
}
