package ui

import (
	"image/color"
	"math"

	cfg "github.com/automoto/saveme/config"
	"github.com/automoto/saveme/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	frozenTint  = color.RGBA{120, 200, 255, 255}
	burningTint = color.RGBA{255, 120, 30, 255}
	swingColor  = color.RGBA{255, 255, 255, 160}
	loveColor   = color.RGBA{255, 105, 180, 255}
)

// How long a melee swing stays visible, seconds
const swingFlash = 0.12

// WorldRenderer draws a session snapshot with vector primitives
type WorldRenderer struct {
	fillVs  []ebiten.Vertex
	fillIs  []uint16
	fillImg *ebiten.Image
}

func NewWorldRenderer() *WorldRenderer {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return &WorldRenderer{fillImg: img}
}

// Draw renders the arena and every entity, offset by the screen shake
func (r *WorldRenderer) Draw(screen *ebiten.Image, snap *game.Snapshot) {
	ox, oy := snap.ShakeX, snap.ShakeY

	for _, t := range snap.Temples {
		r.drawTemple(screen, t, ox, oy)
	}

	drawPrincess(screen, snap.Princess, ox, oy)

	for _, en := range snap.Enemies {
		r.drawEnemy(screen, en, ox, oy)
	}

	for _, p := range snap.Projectiles {
		r.drawProjectile(screen, p, ox, oy)
	}

	drawHero(screen, snap.Hero, ox, oy)

	for _, p := range snap.Particles {
		c := p.Color
		c.A = uint8(float64(c.A) * clamp01(p.Alpha))
		half := p.Size / 2
		vector.DrawFilledRect(screen,
			float32(p.X-half+ox), float32(p.Y-half+oy),
			float32(p.Size), float32(p.Size),
			c, false)
	}

	if cfg.Debug.DrawBounds {
		drawBounds(screen, snap, ox, oy)
	}
}

func drawHero(screen *ebiten.Image, h game.HeroView, ox, oy float64) {
	x, y := float32(h.X+ox), float32(h.Y+oy)
	vector.DrawFilledCircle(screen, x, y, float32(h.Radius), cfg.Hero.Color, true)

	// Facing tick
	fx := x + float32(math.Cos(h.Facing)*h.Radius*1.4)
	fy := y + float32(math.Sin(h.Facing)*h.Radius*1.4)
	vector.StrokeLine(screen, x, y, fx, fy, 3, color.White, true)

	if h.Weapon == cfg.WeaponMelee && h.SinceAttack >= 0 && h.SinceAttack < swingFlash {
		reach := cfg.Combat.MeleeReach
		if h.PowerUps[cfg.PowerUpGiantWeapon] > 0 {
			reach += cfg.Combat.GiantWeaponBonus
		}
		drawArc(screen, x, y, float32(reach), h.Facing, cfg.Combat.SwingArc, swingColor)
	}

	if h.PowerUps[cfg.PowerUpSpeedBoost] > 0 {
		vector.StrokeCircle(screen, x, y, float32(h.Radius+4), 2, cfg.Temple.ChargedColor, true)
	}
	if h.Loved {
		vector.StrokeCircle(screen, x, y, float32(h.Radius+8), 2, loveColor, true)
	}
}

func drawPrincess(screen *ebiten.Image, p game.PrincessView, ox, oy float64) {
	x, y := float32(p.X+ox), float32(p.Y+oy)
	c := cfg.Princess.Color
	// Blink while panicking
	if p.Panic && int(p.PanicLeft*10)%2 == 0 {
		c = color.RGBA{255, 255, 255, 255}
	}
	vector.DrawFilledCircle(screen, x, y, float32(p.Radius), c, true)
	if p.State == cfg.PrincessWinLove {
		vector.StrokeCircle(screen, x, y, float32(p.Radius+8), 2, loveColor, true)
	}
}

func (r *WorldRenderer) drawEnemy(screen *ebiten.Image, en game.EnemyView, ox, oy float64) {
	x, y := en.X+ox, en.Y+oy
	c := en.Color
	switch {
	case en.Frozen:
		c = frozenTint
	case en.Burning:
		c = burningTint
	}
	r.fillPolygon(screen, x, y, en.Radius, en.Sides, c)

	if en.Boss || en.HealthRatio < 1 {
		w := en.Radius * 2
		top := y - en.Radius - 8
		vector.DrawFilledRect(screen, float32(x-en.Radius), float32(top), float32(w), 3, cfg.UI.HealthBarBgColor, false)
		vector.DrawFilledRect(screen, float32(x-en.Radius), float32(top), float32(w*clamp01(en.HealthRatio)), 3, en.Color, false)
	}
}

func (r *WorldRenderer) drawProjectile(screen *ebiten.Image, p game.ProjectileView, ox, oy float64) {
	x, y := float32(p.X+ox), float32(p.Y+oy)
	tx := x - float32(math.Cos(p.Angle)*p.Radius*2)
	ty := y - float32(math.Sin(p.Angle)*p.Radius*2)
	vector.StrokeLine(screen, tx, ty, x, y, float32(p.Radius), p.Color, true)
	vector.DrawFilledCircle(screen, x, y, float32(p.Radius), p.Color, true)
}

func (r *WorldRenderer) drawTemple(screen *ebiten.Image, t game.TempleView, ox, oy float64) {
	x, y := t.X+ox, t.Y+oy
	c := cfg.Temple.IdleColor
	if t.Charged {
		c = cfg.Temple.ChargedColor
	}
	r.fillPolygon(screen, x, y, t.Radius, 4, c)

	// Charge ring fills clockwise as souls arrive
	if t.Threshold > 0 {
		ratio := clamp01(float64(t.Energy) / float64(t.Threshold))
		start := -math.Pi / 2
		path := vector.Path{}
		path.Arc(float32(x), float32(y), float32(t.Radius+6), float32(start), float32(start+ratio*2*math.Pi), vector.Clockwise)
		r.strokePath(screen, &path, cfg.Temple.ChargedColor, 3)
	}

	dx := float32(math.Cos(t.Direction) * t.Radius)
	dy := float32(math.Sin(t.Direction) * t.Radius)
	vector.StrokeLine(screen, float32(x), float32(y), float32(x)+dx, float32(y)+dy, 2, color.White, true)
}

// fillPolygon draws a regular polygon, circles for fewer than three sides
func (r *WorldRenderer) fillPolygon(screen *ebiten.Image, x, y, radius float64, sides int, c color.RGBA) {
	if sides < 3 {
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), c, true)
		return
	}

	path := vector.Path{}
	for i := 0; i < sides; i++ {
		angle := 2*math.Pi/float64(sides)*float64(i) - math.Pi/2
		px := x + radius*math.Cos(angle)
		py := y + radius*math.Sin(angle)
		if i == 0 {
			path.MoveTo(float32(px), float32(py))
		} else {
			path.LineTo(float32(px), float32(py))
		}
	}
	path.Close()

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	r.colorVertices(c)
	screen.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *WorldRenderer) strokePath(screen *ebiten.Image, path *vector.Path, c color.RGBA, width float32) {
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForStroke(r.fillVs[:0], r.fillIs[:0], &vector.StrokeOptions{
		Width: width,
	})
	r.colorVertices(c)
	screen.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *WorldRenderer) colorVertices(c color.RGBA) {
	for i := range r.fillVs {
		r.fillVs[i].SrcX = 0
		r.fillVs[i].SrcY = 0
		r.fillVs[i].ColorR = float32(c.R) / 255
		r.fillVs[i].ColorG = float32(c.G) / 255
		r.fillVs[i].ColorB = float32(c.B) / 255
		r.fillVs[i].ColorA = float32(c.A) / 255
	}
}

func drawArc(screen *ebiten.Image, x, y, radius float32, facing, arc float64, c color.RGBA) {
	const segments = 12
	start := facing - arc/2
	step := arc / segments
	px := x + radius*float32(math.Cos(start))
	py := y + radius*float32(math.Sin(start))
	for i := 1; i <= segments; i++ {
		a := start + step*float64(i)
		nx := x + radius*float32(math.Cos(a))
		ny := y + radius*float32(math.Sin(a))
		vector.StrokeLine(screen, px, py, nx, ny, 2, c, true)
		px, py = nx, ny
	}
}

func drawBounds(screen *ebiten.Image, snap *game.Snapshot, ox, oy float64) {
	debug := color.RGBA{0, 255, 0, 255}
	h := snap.Hero
	vector.StrokeCircle(screen, float32(h.X+ox), float32(h.Y+oy), float32(h.Radius), 1, debug, false)
	for _, en := range snap.Enemies {
		vector.StrokeCircle(screen, float32(en.X+ox), float32(en.Y+oy), float32(en.Radius), 1, debug, false)
	}
	vector.StrokeCircle(screen, float32(h.X+ox), float32(h.Y+oy), float32(cfg.Enemy.AggroRadius), 1, color.RGBA{255, 255, 0, 120}, false)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
