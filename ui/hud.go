package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/saveme/assets"
	cfg "github.com/automoto/saveme/config"
	"github.com/automoto/saveme/fonts"
	"github.com/automoto/saveme/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var hudTextOp = &text.DrawOptions{}

// DrawHUD renders both health bars, score, wave and power-up timers
func DrawHUD(screen *ebiten.Image, snap *game.Snapshot) {
	drawPanic(screen, snap)

	m := cfg.UI.HealthBarMargin
	drawBar(screen, m, m, ratio(snap.Hero.Health, snap.Hero.MaxHealth), cfg.UI.HeroBarColor)
	drawText(screen, "HERO", fonts.Small, m, m+cfg.UI.HealthBarHeight+2)

	px := float64(cfg.C.Width) - m - cfg.UI.HealthBarWidth
	drawBar(screen, px, m, ratio(snap.Princess.Health, snap.Princess.MaxHealth), cfg.UI.PrincessBarColor)
	drawText(screen, "PRINCESS", fonts.Small, px, m+cfg.UI.HealthBarHeight+2)

	status := fmt.Sprintf("SCORE %d   WAVE %d/%d", snap.Score, snap.Wave, snap.WaveCount)
	if snap.Boss {
		status += "   BOSS"
	}
	w, _ := text.Measure(status, fonts.HUD.Face(), 0)
	drawText(screen, status, fonts.HUD, (float64(cfg.C.Width)-w)/2, m)

	bottom := float64(cfg.C.Height) - m - cfg.UI.HUDFontSize
	drawText(screen, "WEAPON "+strings.ToUpper(snap.Hero.Weapon.String()), fonts.HUD, m, bottom)

	if active := powerUpLine(snap.Hero.PowerUps); active != "" {
		w, _ := text.Measure(active, fonts.HUD.Face(), 0)
		drawText(screen, active, fonts.HUD, float64(cfg.C.Width)-m-w, bottom)
	}
}

func powerUpLine(timers [cfg.PowerUpCount]float64) string {
	var parts []string
	for p := cfg.PowerUp(0); p < cfg.PowerUpCount; p++ {
		if timers[p] > 0 {
			parts = append(parts, fmt.Sprintf("%s %.0fs", strings.ToUpper(p.String()), timers[p]))
		}
	}
	return strings.Join(parts, "  ")
}

func drawBar(screen *ebiten.Image, x, y, fill float64, c color.RGBA) {
	w := cfg.UI.HealthBarWidth
	h := cfg.UI.HealthBarHeight
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.UI.HealthBarBgColor, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w*clamp01(fill)), float32(h), c, false)
}

func drawText(screen *ebiten.Image, s string, face fonts.FontName, x, y float64) {
	hudTextOp.GeoM.Reset()
	hudTextOp.GeoM.Translate(x, y)
	hudTextOp.ColorScale.Reset()
	hudTextOp.ColorScale.ScaleWithColor(cfg.UI.HUDTextColor)
	text.Draw(screen, s, face.Face(), hudTextOp)
}

// drawPanic tints the screen edges while the princess is being hurt
func drawPanic(screen *ebiten.Image, snap *game.Snapshot) {
	if !snap.Princess.Panic || assets.PanicShader == nil {
		return
	}
	intensity := 0.6
	if cfg.Princess.PanicSeconds > 0 {
		intensity *= clamp01(snap.Princess.PanicLeft / cfg.Princess.PanicSeconds)
	}
	w, h := cfg.C.Width, cfg.C.Height
	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = map[string]interface{}{
		"Intensity": float32(intensity),
		"Center":    []float32{float32(w) / 2, float32(h) / 2},
		"Radius":    float32(w) * 0.75,
	}
	screen.DrawRectShader(w, h, assets.PanicShader, op)
}

func ratio(cur, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return cur / max
}
