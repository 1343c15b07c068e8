package systems

import (
	"testing"

	"github.com/automoto/neighbors/components"
)

func TestAddCharacterKeepsNamesUnique(t *testing.T) {
	e := newTestECS(t)

	first := mustAdd(t, e, "Fitness Fiona", 100, 300)
	again, added := AddCharacter(e, "Fitness Fiona", 400, 300)
	if added {
		t.Fatal("second add of the same name reported added")
	}
	if again.Entity() != first.Entity() {
		t.Error("second add returned a different entity")
	}
	if x, _ := position(first); x != 100 {
		t.Errorf("existing character moved to x=%v", x)
	}
	if got := countCharacters(e); got != 1 {
		t.Errorf("characters = %d, want 1", got)
	}

	if entry, added := AddCharacter(e, "Nobody", 0, 0); added || entry != nil {
		t.Error("unknown roster name was added")
	}
}

func TestRemoveCharacter(t *testing.T) {
	e := newTestECS(t)
	mustAdd(t, e, "Fitness Fiona", 100, 300)
	mustAdd(t, e, "Lazy Larry", 300, 300)

	if !RemoveCharacter(e, "Fitness Fiona") {
		t.Fatal("RemoveCharacter returned false")
	}
	if RemoveCharacter(e, "Fitness Fiona") {
		t.Error("removing twice returned true")
	}
	if _, ok := GetCharacter(e, "Fitness Fiona"); ok {
		t.Error("removed character still found")
	}
	names := CastNames(e)
	if len(names) != 1 || names[0] != "Lazy Larry" {
		t.Errorf("cast = %v", names)
	}
}

func TestBringToFront(t *testing.T) {
	e := newTestECS(t)
	for _, name := range []string{"Fitness Fiona", "Lazy Larry", "Office Olivia"} {
		mustAdd(t, e, name, 100, 300)
	}

	BringToFront(e, "Fitness Fiona")
	BringToFront(e, "Nobody")

	want := []string{"Lazy Larry", "Office Olivia", "Fitness Fiona"}
	got := CastNames(e)
	if len(got) != len(want) {
		t.Fatalf("cast = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cast = %v, want %v", got, want)
		}
	}
}

func TestResetStageClearsEverything(t *testing.T) {
	e := newTestECS(t)
	fiona := mustAdd(t, e, "Fitness Fiona", 100, 300)
	mustAdd(t, e, "Lazy Larry", 300, 300)
	SpawnEmote(e, fiona, "!!")
	fired := false
	Schedule(e, 1, func() { fired = true })

	ResetStage(e)

	if n := countCharacters(e); n != 0 {
		t.Errorf("characters = %d, want 0", n)
	}
	if n := len(CastNames(e)); n != 0 {
		t.Errorf("cast index has %d names", n)
	}
	if n := countEmotes(e); n != 0 {
		t.Errorf("emotes = %d, want 0", n)
	}
	if n := PendingTimers(e); n != 0 {
		t.Errorf("pending timers = %d, want 0", n)
	}
	spaceEntry, _ := components.Space.First(e.World)
	if n := len(components.Space.Get(spaceEntry).Objects()); n != 0 {
		t.Errorf("space still holds %d objects", n)
	}

	UpdateTimers(e)
	if fired {
		t.Error("cleared timer fired")
	}
}
