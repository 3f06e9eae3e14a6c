package ui

import (
	"fmt"

	cfg "github.com/automoto/saveme/config"
	"github.com/automoto/saveme/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MenuUI is the title screen: start button, audio toggle and leaderboard
type MenuUI struct {
	UI *ebitenui.UI

	OnStart       func()
	OnToggleAudio func() bool

	audioButton *widget.Button
	scoreLines  []*widget.Text

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI builds the menu. scores is the leaderboard, best first.
func NewMenuUI(scores []int, audioOn bool, onStart func(), onToggleAudio func() bool) *MenuUI {
	mui := &MenuUI{
		OnStart:       onStart,
		OnToggleAudio: onToggleAudio,
		titleFace:     fonts.Title.Face(),
		normalFace:    fonts.HUD.Face(),
		smallFace:     fonts.Small.Face(),
	}
	mui.buildUI(scores, audioOn)
	return mui
}

func (mui *MenuUI) buildUI(scores []int, audioOn bool) {
	root, column := rootContainer(cfg.UI.BackgroundColor)

	column.AddChild(widget.NewText(
		widget.TextOpts.Text(cfg.Menu.Title, &mui.titleFace, titleColor),
		widget.TextOpts.WidgetOpts(centered()),
	))
	column.AddChild(widget.NewText(
		widget.TextOpts.Text("Defend the princess from the horde", &mui.smallFace, dimColor),
		widget.TextOpts.WidgetOpts(centered()),
	))

	start := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 32), centered()),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("START", &mui.normalFace, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnStart != nil {
				mui.OnStart()
			}
		}),
	)
	column.AddChild(start)

	mui.audioButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 28), centered()),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(audioLabel(audioOn), &mui.normalFace, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnToggleAudio == nil {
				return
			}
			mui.SetAudio(mui.OnToggleAudio())
		}),
	)
	column.AddChild(mui.audioButton)

	column.AddChild(widget.NewText(
		widget.TextOpts.Text("HIGH SCORES", &mui.normalFace, titleColor),
		widget.TextOpts.WidgetOpts(centered()),
	))
	for i := 0; i < cfg.Menu.LeaderboardShown; i++ {
		line := widget.NewText(
			widget.TextOpts.Text("", &mui.smallFace, textColor),
			widget.TextOpts.WidgetOpts(centered()),
		)
		mui.scoreLines = append(mui.scoreLines, line)
		column.AddChild(line)
	}
	mui.SetScores(scores)

	column.AddChild(widget.NewText(
		widget.TextOpts.Text("WASD move  ARROWS/MOUSE aim  SPACE attack  Q weapon", &mui.smallFace, dimColor),
		widget.TextOpts.WidgetOpts(centered()),
	))

	mui.UI = &ebitenui.UI{Container: root}
}

// SetScores refreshes the leaderboard lines
func (mui *MenuUI) SetScores(scores []int) {
	for i, line := range mui.scoreLines {
		if i < len(scores) {
			line.Label = fmt.Sprintf("%2d.  %d", i+1, scores[i])
		} else {
			line.Label = fmt.Sprintf("%2d.  ---", i+1)
		}
	}
}

// SetAudio updates the audio toggle caption
func (mui *MenuUI) SetAudio(on bool) {
	mui.audioButton.Text().Label = audioLabel(on)
}

func (mui *MenuUI) Update() {
	mui.UI.Update()
}

func (mui *MenuUI) Draw(screen *ebiten.Image) {
	mui.UI.Draw(screen)
}

func audioLabel(on bool) string {
	if on {
		return "AUDIO: ON"
	}
	return "AUDIO: OFF"
}
