package main

import (
	"log"

	"github.com/automoto/neighbors/config"
	"github.com/automoto/neighbors/fonts"
	"github.com/automoto/neighbors/scenes"
	"github.com/automoto/neighbors/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Game hosts whichever scene is showing: the episode menu or the theater
type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadDefaults()

	g := &Game{}
	if config.Debug.SkipMenu {
		g.scene = scenes.NewTheaterScene(g, systems.CurrentPreferences().LastEpisode)
	} else {
		g.scene = scenes.NewMenuScene(g)
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

// Layout keeps the logical stage size; ebiten scales it to the window or canvas.
func (g *Game) Layout(_, _ int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved preferences
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if _, err := systems.LoadPreferences(); err != nil {
		log.Printf("Warning: Using default preferences: %v", err)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
