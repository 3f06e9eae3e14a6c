package scenes

import (
	"sync"

	"github.com/automoto/saveme/assets"
	"github.com/automoto/saveme/components"
	cfg "github.com/automoto/saveme/config"
	"github.com/automoto/saveme/game"
	"github.com/automoto/saveme/systems"
	"github.com/automoto/saveme/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// Seconds the reunion plays before the victory screen opens
const victoryDelay = 1.5

// PlayScene runs one session and draws it
type PlayScene struct {
	services     *Services
	sceneChanger SceneChanger
	session      *game.Session
	renderer     *ui.WorldRenderer
	input        components.InputData
	snap         game.Snapshot
	victoryTimer float64
	once         sync.Once
}

// NewPlayScene wraps a session that has already been started
func NewPlayScene(sc SceneChanger, services *Services, session *game.Session) *PlayScene {
	return &PlayScene{sceneChanger: sc, services: services, session: session}
}

func (ps *PlayScene) Update() {
	ps.once.Do(ps.configure)
	ps.services.PollBalance()

	systems.PollInput(&ps.input)
	if ps.input.JustPressed(cfg.ActionBack) {
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger, ps.services))
		return
	}

	dt := 1 / float64(ebiten.TPS())
	in := systems.BuildSnapshot(&ps.input, ps.snap.Hero.X, ps.snap.Hero.Y)
	ps.session.Tick(dt, in)
	ps.snap = ps.session.Snapshot()

	switch ps.snap.State {
	case cfg.StateGameOver:
		ps.showResults(false)
	case cfg.StateWin:
		if ps.snap.Princess.State != cfg.PrincessWinLove {
			return
		}
		ps.victoryTimer += dt
		if ps.victoryTimer >= victoryDelay {
			// Lost runs reach the leaderboard through the session; wins are recorded here
			if ps.services.Scores != nil {
				ps.services.Scores.SubmitScore(ps.snap.Score)
			}
			ps.showResults(true)
		}
	}
}

func (ps *PlayScene) showResults(won bool) {
	res := ui.Result{Won: won, Score: ps.snap.Score}
	if ps.services.Scores != nil {
		res.Best = ps.services.Scores.Best()
		res.Record = ps.services.Scores.LastWasRecord()
	}
	ps.sceneChanger.ChangeScene(NewResultsScene(ps.sceneChanger, ps.services, ps.session, res))
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.UI.BackgroundColor)

	if ps.renderer == nil {
		return
	}
	ps.renderer.Draw(screen, &ps.snap)
	ui.DrawHUD(screen, &ps.snap)
}

func (ps *PlayScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		panic("failed to load shaders: " + err.Error())
	}
	ps.renderer = ui.NewWorldRenderer()
	ps.snap = ps.session.Snapshot()
}
