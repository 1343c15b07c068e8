package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/neighbors/assets"
	"github.com/automoto/neighbors/components"
	cfg "github.com/automoto/neighbors/config"
	"github.com/automoto/neighbors/systems"
	"github.com/automoto/neighbors/systems/factory"
	"github.com/automoto/neighbors/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TheaterScene plays an episode on the neighborhood stage
type TheaterScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	episodeID    string
	controlsUI   *ui.ControlsUI
	once         sync.Once
	shouldGoBack bool
}

// NewTheaterScene creates a theater that starts the given episode
func NewTheaterScene(sc SceneChanger, episodeID string) *TheaterScene {
	return &TheaterScene{sceneChanger: sc, episodeID: episodeID}
}

func (ts *TheaterScene) Update() {
	ts.once.Do(ts.configure)
	ts.ecs.Update()

	ts.controlsUI.Update()
	ts.controlsUI.UpdateUI(systems.GetTheaterStatus(ts.ecs), systems.GetOrCreateSettings(ts.ecs).Muted)

	if ts.shouldGoBack || systems.ActionJustPressed(ts.ecs, cfg.ActionBack) {
		ts.sceneChanger.ChangeScene(NewMenuScene(ts.sceneChanger))
	}
}

func (ts *TheaterScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
	ts.controlsUI.UI.Draw(screen)
}

func (ts *TheaterScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()

	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not compile sky shader, using banded sky: %v", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first)
	ecs.AddSystem(systems.UpdateAudio)

	// Input
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePointer)
	ecs.AddSystem(systems.UpdateTheaterControls)

	// Stage
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateDrag)
	ecs.AddSystem(systems.UpdateCursor)
	ecs.AddSystem(systems.UpdateScript)
	ecs.AddSystem(systems.UpdateCharacters)
	ecs.AddSystem(systems.UpdateEmotes)
	ecs.AddSystem(systems.UpdateEnvironment)
	ecs.AddSystem(systems.UpdateTimers)

	// Renderers, back to front
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawNeighborhood)
	ecs.AddRenderer(cfg.Default, systems.DrawCharacters)
	ecs.AddRenderer(cfg.Default, systems.DrawShade)
	ecs.AddRenderer(cfg.Default, systems.DrawBubbles)
	ecs.AddRenderer(cfg.Default, systems.DrawEmotes)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ts.ecs = ecs

	// Create the level entity and load the map FIRST.
	neighborhood := assets.MustLoadNeighborhood()
	factory.CreateLevel(ts.ecs, neighborhood)

	// Now create the space for hit testing using the map's dimensions.
	cell := cfg.Interaction.SpaceCellSize
	spaceEntry := factory.CreateSpace(ts.ecs, neighborhood.Width, neighborhood.Height, cell, cell)
	space := components.Space.Get(spaceEntry)

	for _, h := range neighborhood.Houses {
		house := factory.CreateHouse(ts.ecs, h)
		space.Add(components.Object.Get(house).Object)
	}

	systems.InitEnvironment(ts.ecs)

	if !systems.StartEpisode(ts.ecs, ts.episodeID) {
		systems.StartEpisode(ts.ecs, cfg.C.StartEpisode)
	}

	ts.controlsUI = ui.NewControlsUI(
		func() { systems.TogglePlayback(ts.ecs) },
		func() { systems.NextScene(ts.ecs) },
		func() { systems.RestartEpisode(ts.ecs) },
		func() { ts.shouldGoBack = true },
	)
}
