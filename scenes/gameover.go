package scenes

import (
	"log"
	"sync"

	"github.com/automoto/saveme/components"
	cfg "github.com/automoto/saveme/config"
	"github.com/automoto/saveme/game"
	"github.com/automoto/saveme/systems"
	"github.com/automoto/saveme/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// ResultsScene shows the finished run over the frozen arena
type ResultsScene struct {
	services     *Services
	sceneChanger SceneChanger
	session      *game.Session
	result       ui.Result
	results      *ui.ResultsUI
	renderer     *ui.WorldRenderer
	input        components.InputData
	snap         game.Snapshot
	once         sync.Once
}

func NewResultsScene(sc SceneChanger, services *Services, session *game.Session, res ui.Result) *ResultsScene {
	return &ResultsScene{sceneChanger: sc, services: services, session: session, result: res}
}

func (rs *ResultsScene) Update() {
	rs.once.Do(rs.configure)
	rs.services.PollBalance()

	systems.PollInput(&rs.input)
	switch {
	case rs.input.JustPressed(cfg.ActionConfirm):
		rs.retry()
		return
	case rs.input.JustPressed(cfg.ActionBack):
		rs.toMenu()
		return
	}

	// Keep shake and the reunion animating behind the overlay
	rs.session.Tick(1/float64(ebiten.TPS()), components.InputSnapshot{})
	rs.snap = rs.session.Snapshot()

	rs.results.Update()
}

func (rs *ResultsScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.UI.BackgroundColor)

	if rs.results == nil {
		return
	}
	rs.renderer.Draw(screen, &rs.snap)
	rs.results.Draw(screen)
}

func (rs *ResultsScene) configure() {
	rs.renderer = ui.NewWorldRenderer()
	rs.snap = rs.session.Snapshot()
	rs.results = ui.NewResultsUI(rs.result, rs.retry, rs.toMenu)
}

func (rs *ResultsScene) retry() {
	if err := rs.services.Restart(rs.session); err != nil {
		log.Printf("Warning: could not restart run: %v", err)
		rs.toMenu()
		return
	}
	rs.sceneChanger.ChangeScene(NewPlayScene(rs.sceneChanger, rs.services, rs.session))
}

func (rs *ResultsScene) toMenu() {
	rs.sceneChanger.ChangeScene(NewMenuScene(rs.sceneChanger, rs.services))
}
