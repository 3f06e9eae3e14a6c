package scenes

import (
	"log"
	"sync"

	"github.com/automoto/saveme/components"
	cfg "github.com/automoto/saveme/config"
	"github.com/automoto/saveme/systems"
	"github.com/automoto/saveme/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the title screen and leaderboard
type MenuScene struct {
	services     *Services
	sceneChanger SceneChanger
	menu         *ui.MenuUI
	input        components.InputData
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, services *Services) *MenuScene {
	return &MenuScene{sceneChanger: sc, services: services}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.services.PollBalance()

	systems.PollInput(&ms.input)
	if ms.input.JustPressed(cfg.ActionConfirm) {
		ms.start()
		return
	}
	if ms.input.JustPressed(cfg.ActionToggleAudio) {
		ms.menu.SetAudio(ms.services.ToggleAudio())
	}

	ms.menu.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.UI.BackgroundColor)

	if ms.menu == nil {
		return
	}
	ms.menu.Draw(screen)
}

func (ms *MenuScene) configure() {
	audioOn := ms.services.Audio != nil && ms.services.Audio.Enabled()
	ms.menu = ui.NewMenuUI(ms.services.topScores(), audioOn, ms.start, ms.services.ToggleAudio)

	if ms.services.Audio != nil {
		ms.services.Audio.PlayTrack(cfg.TrackMenu)
	}
}

func (ms *MenuScene) start() {
	session, err := ms.services.NewSession()
	if err != nil {
		log.Printf("Warning: could not start run: %v", err)
		return
	}
	ms.sceneChanger.ChangeScene(NewPlayScene(ms.sceneChanger, ms.services, session))
}
