package main

import (
	"flag"
	"image"
	"log"
	"path/filepath"

	"github.com/automoto/saveme/assets"
	"github.com/automoto/saveme/audio"
	"github.com/automoto/saveme/config"
	"github.com/automoto/saveme/fonts"
	"github.com/automoto/saveme/scenes"
	"github.com/automoto/saveme/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(services *scenes.Services) *Game {
	fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.TitleFontSize)

	g := &Game{
		bounds: image.Rectangle{},
	}

	g.scene = scenes.NewMenuScene(g, services)
	if config.Debug.SkipMenu {
		session, err := services.NewSession()
		if err != nil {
			log.Printf("Warning: could not skip menu: %v", err)
		} else {
			g.scene = scenes.NewPlayScene(g, services, session)
		}
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	seed := flag.Int64("seed", 0, "random seed for every run (0 picks a new one per run)")
	balancePath := flag.String("balance", "", "YAML balance file overriding the built-in waves")
	watch := flag.Bool("watch", false, "reload the balance file when it changes")
	flag.BoolVar(&config.Debug.SkipMenu, "skipmenu", false, "start a run immediately")
	flag.BoolVar(&config.Debug.DrawBounds, "bounds", false, "draw collision circles and aggro radius")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not compile shaders: %v", err)
	}

	scores := systems.OpenScoreBoard("saveme")
	services := &scenes.Services{
		Audio:       audio.NewPlayer(scores.AudioEnabled()),
		Scores:      scores,
		Layout:      assets.MustLoadArena(),
		Seed:        *seed,
		BalancePath: *balancePath,
	}

	var balance *config.Balance
	var err error
	if *balancePath != "" {
		balance, err = config.LoadBalanceFile(*balancePath)
	} else {
		balance, err = assets.LoadBalance()
	}
	if err != nil {
		log.Fatalf("Failed to load balance: %v", err)
	}
	services.Waves = balance.Apply()

	if *watch && *balancePath != "" {
		w, err := config.NewBalanceWatcher(filepath.Dir(*balancePath))
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", *balancePath, err)
		} else {
			services.Watcher = w
			defer w.Close()
		}
	}

	if err := ebiten.RunGame(NewGame(services)); err != nil {
		log.Fatal(err)
	}
}
