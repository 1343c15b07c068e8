package systems

import (
	"fmt"

	cfg "github.com/automoto/neighbors/config"
	"github.com/automoto/neighbors/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudPanelWidth  = 260
	hudPanelHeight = 52
)

// DrawHUD renders the episode title, scene counter and playback state in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	status := GetTheaterStatus(e)
	if status.Scenes == 0 {
		return
	}
	m := cfg.HUD.Margin

	vector.FillRect(screen,
		float32(m), float32(m),
		hudPanelWidth, hudPanelHeight,
		cfg.HUD.PanelColor, false)

	titleFont := fonts.Bold.Get()
	text.Draw(screen, status.Title, titleFont, int(m)+8, int(m)+20, cfg.HUD.TextColor)

	small := fonts.Small.Get()
	text.Draw(screen, HUDStatusLine(status), small, int(m)+8, int(m)+40, cfg.HUD.TextColor)

	if GetOrCreateSettings(e).Muted {
		text.Draw(screen, "muted", small, int(m)+hudPanelWidth-40, int(m)+40, cfg.HUD.TextColor)
	}
}

// HUDStatusLine describes the playback state in one line.
func HUDStatusLine(s TheaterStatus) string {
	state := "paused"
	switch {
	case s.Finished:
		state = "the end"
	case s.SceneDone:
		state = "scene over"
	case s.Playing:
		state = "playing"
	}
	return fmt.Sprintf("Scene %d/%d  %s  %s", s.Scene, s.Scenes, s.Setting, state)
}
