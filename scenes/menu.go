package scenes

import (
	"sync"

	cfg "github.com/automoto/neighbors/config"
	"github.com/automoto/neighbors/story"
	"github.com/automoto/neighbors/systems"
	"github.com/automoto/neighbors/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene lets the viewer pick an episode
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	once         sync.Once
	playID       string
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.menuUI.Update()

	// Keyboard and gamepad shortcuts mirror the buttons
	switch {
	case systems.ActionJustPressed(ms.ecs, cfg.ActionNextScene):
		ms.menuUI.Select(story.IndexOf(ms.menuUI.Selected()) + 1)
	case systems.ActionJustPressed(ms.ecs, cfg.ActionPlayPause):
		ms.playID = ms.menuUI.Selected()
	case systems.ActionJustPressed(ms.ecs, cfg.ActionMute):
		ms.menuUI.SetMuted(systems.ToggleMute(ms.ecs))
	}

	if ms.playID != "" {
		ms.sceneChanger.ChangeScene(NewTheaterScene(ms.sceneChanger, ms.playID))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	if ms.ecs == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)

	prefs := systems.CurrentPreferences()
	ms.menuUI = ui.NewMenuUI(
		prefs.LastEpisode,
		systems.GetOrCreateSettings(ms.ecs).Muted,
		func(id string) { ms.playID = id },
		func() bool { return systems.ToggleMute(ms.ecs) },
	)
}
