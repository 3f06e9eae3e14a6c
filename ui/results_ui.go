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

// ResultsUI is the end-of-run overlay shown on victory or game over
type ResultsUI struct {
	UI *ebitenui.UI

	OnRetry func()
	OnMenu  func()

	titleFace  text.Face
	normalFace text.Face
}

// Result describes the finished run
type Result struct {
	Won    bool
	Score  int
	Best   int
	Record bool
}

func NewResultsUI(res Result, onRetry, onMenu func()) *ResultsUI {
	rui := &ResultsUI{
		OnRetry:    onRetry,
		OnMenu:     onMenu,
		titleFace:  fonts.Title.Face(),
		normalFace: fonts.HUD.Face(),
	}
	rui.buildUI(res)
	return rui
}

func (rui *ResultsUI) buildUI(res Result) {
	root, column := rootContainer(cfg.UI.OverlayColor)

	title := "GAME OVER"
	if res.Won {
		title = "VICTORY"
	}
	column.AddChild(widget.NewText(
		widget.TextOpts.Text(title, &rui.titleFace, titleColor),
		widget.TextOpts.WidgetOpts(centered()),
	))
	column.AddChild(widget.NewText(
		widget.TextOpts.Text(fmt.Sprintf("SCORE %d", res.Score), &rui.normalFace, textColor),
		widget.TextOpts.WidgetOpts(centered()),
	))

	best := fmt.Sprintf("BEST %d", res.Best)
	if res.Record {
		best = "NEW HIGH SCORE!"
	}
	column.AddChild(widget.NewText(
		widget.TextOpts.Text(best, &rui.normalFace, dimColor),
		widget.TextOpts.WidgetOpts(centered()),
	))

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(centered()),
	)
	buttons.AddChild(widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 28)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("RETRY", &rui.normalFace, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if rui.OnRetry != nil {
				rui.OnRetry()
			}
		}),
	))
	buttons.AddChild(widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 28)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("MENU", &rui.normalFace, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if rui.OnMenu != nil {
				rui.OnMenu()
			}
		}),
	))
	column.AddChild(buttons)

	rui.UI = &ebitenui.UI{Container: root}
}

func (rui *ResultsUI) Update() {
	rui.UI.Update()
}

func (rui *ResultsUI) Draw(screen *ebiten.Image) {
	rui.UI.Draw(screen)
}
