package factory

import (
	"github.com/automoto/neighbors/archetypes"
	"github.com/automoto/neighbors/components"
	cfg "github.com/automoto/neighbors/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateEmote spawns a glyph that floats up from x, y and fades out.
func CreateEmote(ecs *ecs.ECS, text string, x, y float64) *donburi.Entry {
	emote := archetypes.Emote.Spawn(ecs)
	components.Emote.SetValue(emote, components.EmoteData{
		Text:     text,
		Position: math.Vec2{X: x, Y: y},
		Rise:     gween.New(0, float32(cfg.Stage.EmoteRise), float32(cfg.Stage.EmoteTime), ease.OutQuad),
		Alpha:    1,
		Duration: cfg.Stage.EmoteTime,
	})
	return emote
}
