package systems

import (
	"github.com/automoto/neighbors/components"
	cfg "github.com/automoto/neighbors/config"
	"github.com/automoto/neighbors/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnEmote floats text up from just above the character's head.
func SpawnEmote(e *ecs.ECS, entry *donburi.Entry, text string) *donburi.Entry {
	if text == "" || entry == nil || !entry.Valid() {
		return nil
	}
	obj := components.Object.Get(entry)
	return factory.CreateEmote(e, text, obj.X+obj.W/2, obj.Y-cfg.Bubble.OffsetY)
}

// UpdateEmotes rises and fades emotes, removing the expired ones.
func UpdateEmotes(e *ecs.ECS) {
	dt := 1.0 / float64(cfg.C.TPS)

	var expired []*donburi.Entry
	components.Emote.Each(e.World, func(entry *donburi.Entry) {
		emote := components.Emote.Get(entry)
		emote.Elapsed += dt
		if emote.Rise != nil {
			offset, _ := emote.Rise.Update(float32(dt))
			emote.Offset = float64(offset)
		}
		emote.Alpha = 1 - emote.Elapsed/emote.Duration
		if emote.Elapsed >= emote.Duration {
			expired = append(expired, entry)
		}
	})

	for _, entry := range expired {
		e.World.Remove(entry.Entity())
	}
}
