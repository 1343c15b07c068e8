package systems

import (
	"math"

	"github.com/automoto/neighbors/components"
	cfg "github.com/automoto/neighbors/config"
	"github.com/automoto/neighbors/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

// UpdatePointer polls the mouse and single touch into the Pointer component.
// Must run BEFORE UpdateDrag in the system order.
func UpdatePointer(e *ecs.ECS) {
	p := getOrCreatePointer(e)

	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if len(touchIDs) == 1 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		applyPointerSample(p, 1, float64(x), float64(y), true)
		return
	}
	x, y := ebiten.CursorPosition()
	applyPointerSample(p, len(touchIDs), float64(x), float64(y), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// applyPointerSample folds one poll into the pointer. x, y and down are the
// touch position when touches == 1, otherwise the cursor and left button.
func applyPointerSample(p *components.PointerData, touches int, x, y float64, down bool) {
	wasDown := p.Down

	switch {
	case touches > 1:
		// Multi-touch gestures are not ours; hold the current state
		p.JustPressed, p.JustReleased = false, false
		return
	case touches == 1:
		p.X, p.Y = x, y
		p.Down = true
		p.Touch = true
	case p.Touch && wasDown:
		// Finger lifted; keep the last touch position for the release
		p.Down = false
	default:
		p.X, p.Y = x, y
		p.Down = down
		p.Touch = false
	}

	if !p.Polled {
		// A button still held from the previous scene is not a press
		wasDown = p.Down
		p.Polled = true
	}
	p.JustPressed = p.Down && !wasDown
	p.JustReleased = !p.Down && wasDown
}

// UpdateCursor shows a hand over draggable characters.
func UpdateCursor(e *ecs.ECS) {
	p := getOrCreatePointer(e)
	if p.Touch {
		return
	}
	if p.Hovering {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
		return
	}
	ebiten.SetCursorShape(ebiten.CursorShapeDefault)
}

// UpdateDrag picks characters up, moves them with the pointer and turns short
// press/release pairs into taps.
func UpdateDrag(e *ecs.ECS) {
	p := getOrCreatePointer(e)
	pointer := dmath.Vec2{X: p.X, Y: p.Y}

	if p.JustPressed && p.Y < float64(cfg.C.StageHeight) {
		if entry := CharacterAt(e, p.X, p.Y); entry != nil {
			beginDrag(e, entry, pointer)
		}
	}

	var released []*donburi.Entry
	components.Drag.Each(e.World, func(entry *donburi.Entry) {
		drag := components.Drag.Get(entry)
		if !drag.Dragging {
			return
		}
		if p.Down {
			dragTo(entry, drag, pointer)
			return
		}
		released = append(released, entry)
	})

	for _, entry := range released {
		drag := components.Drag.Get(entry)
		drag.Dragging = false
		if drag.Travel < cfg.Interaction.TapSlop {
			React(e, entry)
		} else {
			PlaySFX(e, cfg.SoundDrop)
		}
	}

	p.Hovering = CharacterAt(e, p.X, p.Y) != nil
}

func beginDrag(e *ecs.ECS, entry *donburi.Entry, pointer dmath.Vec2) {
	drag := components.Drag.Get(entry)
	if !drag.Draggable {
		return
	}
	obj := components.Object.Get(entry)
	drag.Dragging = true
	drag.Offset = dmath.Vec2{X: obj.X - pointer.X, Y: obj.Y - pointer.Y}
	drag.PressAt = pointer
	drag.Travel = 0

	components.Character.Get(entry).Moving = false
	BringToFront(e, components.Character.Get(entry).Name)
	PlaySFX(e, cfg.SoundPickUp)
}

func dragTo(entry *donburi.Entry, drag *components.DragData, pointer dmath.Vec2) {
	obj := components.Object.Get(entry)
	obj.X = pointer.X + drag.Offset.X
	obj.Y = pointer.Y + drag.Offset.Y
	obj.Update()

	dx, dy := pointer.X-drag.PressAt.X, pointer.Y-drag.PressAt.Y
	drag.Travel = math.Max(drag.Travel, math.Hypot(dx, dy))
}

// React plays a character's tap reaction: a squash pop, a random favourite
// emote, the catchphrase for a while and a blip.
func React(e *ecs.ECS, entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	c := components.Character.Get(entry)

	ss := components.SquashStretch.Get(entry)
	ss.Squash = cfg.Interaction.ReactionSquash
	ss.Stretch = cfg.Interaction.ReactionStretch

	if emotes := c.Profile.Emotes; len(emotes) > 0 {
		SpawnEmote(e, entry, emotes[rng.Intn(len(emotes))])
	}

	phrase := c.Profile.Catchphrase
	if phrase != "" {
		Speak(entry, phrase)
		Schedule(e, cfg.Interaction.ReactionDuration, func() {
			if !entry.Valid() {
				return
			}
			if b := components.Bubble.Get(entry); b.SpeechVisible && b.Speech == phrase {
				ClearBubbles(entry)
			}
		})
	}

	PlaySFX(e, cfg.SoundPop)
}

// CharacterAt returns the topmost character under x, y, or nil.
func CharacterAt(e *ecs.ECS, x, y float64) *donburi.Entry {
	hits := map[donburi.Entity]bool{}

	spaceEntry, ok := components.Space.First(e.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		// Edges count as inside, so the test box also covers the pixel before x, y
		point := resolv.NewObject(x-1, y-1, 2, 2)
		space.Add(point)
		if check := point.Check(0, 0, tags.ResolvCharacter); check != nil {
			for _, obj := range check.Objects {
				entry, ok := obj.Data.(*donburi.Entry)
				if ok && entry.Valid() && contains(obj, x, y) {
					hits[entry.Entity()] = true
				}
			}
		}
		space.Remove(point)
	} else {
		tags.Character.Each(e.World, func(entry *donburi.Entry) {
			if contains(components.Object.Get(entry).Object, x, y) {
				hits[entry.Entity()] = true
			}
		})
	}

	if len(hits) == 0 {
		return nil
	}

	// Last in draw order is on top
	order := getOrCreateCast(e).Order
	for i := len(order) - 1; i >= 0; i-- {
		if entry, ok := GetCharacter(e, order[i]); ok && hits[entry.Entity()] {
			return entry
		}
	}
	return nil
}

func contains(obj *resolv.Object, x, y float64) bool {
	return x >= obj.X && x <= obj.X+obj.W && y >= obj.Y && y <= obj.Y+obj.H
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// getOrCreatePointer returns the singleton Pointer component
func getOrCreatePointer(e *ecs.ECS) *components.PointerData {
	entry, ok := components.Pointer.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pointer))
	}
	return components.Pointer.Get(entry)
}
