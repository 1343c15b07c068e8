package systems

import (
	"testing"

	"github.com/automoto/neighbors/components"
	cfg "github.com/automoto/neighbors/config"
)

func TestDirectorPlace(t *testing.T) {
	e := newTestECS(t)
	entry := mustAdd(t, e, "Lazy Larry", 300, 300)
	d := &stageDirector{ecs: e}
	c := components.Character.Get(entry)

	d.Place("Lazy Larry", 250, 310)
	if x, y := position(entry); x != 250 || y != 310 {
		t.Errorf("position = (%v,%v), want (250,310)", x, y)
	}
	if c.Direction != cfg.DirectionLeft {
		t.Error("placing to the left did not turn the character")
	}

	components.Drag.Get(entry).Dragging = true
	d.Place("Lazy Larry", 500, 310)
	d.Walk("Lazy Larry", 500)
	if x, _ := position(entry); x != 250 {
		t.Error("script moved a character held by the pointer")
	}
	if c.Moving {
		t.Error("script started a walk on a held character")
	}
}

func TestDirectorUnknownNames(t *testing.T) {
	e := newTestECS(t)
	d := &stageDirector{ecs: e}

	if d.Has("Nobody") {
		t.Error("Has reported an absent character")
	}
	if _, _, ok := d.Position("Nobody"); ok {
		t.Error("Position found an absent character")
	}
	if d.Facing("Nobody") != cfg.DirectionRight {
		t.Error("Facing default changed")
	}
	d.Place("Nobody", 1, 1)
	d.Walk("Nobody", 1)
	d.Speak("Nobody", "hi")
	d.Think("Nobody", "hm")
	d.Emote("Nobody", "!")
	d.HideBubbles()

	if countEmotes(e) != 0 {
		t.Error("emote spawned for an absent character")
	}
}

func TestDirectorHideBubbles(t *testing.T) {
	e := newTestECS(t)
	a := mustAdd(t, e, "Lazy Larry", 100, 300)
	b := mustAdd(t, e, "Office Olivia", 300, 300)
	d := &stageDirector{ecs: e}

	d.Speak("Lazy Larry", "hi")
	d.Think("Office Olivia", "hm")
	d.HideBubbles()

	if ba := components.Bubble.Get(a); ba.SpeechVisible || ba.ThoughtVisible {
		t.Error("Larry's bubble still visible")
	}
	if bb := components.Bubble.Get(b); bb.SpeechVisible || bb.ThoughtVisible {
		t.Error("Olivia's bubble still visible")
	}
}
