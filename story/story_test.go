package story

import (
	"errors"
	"testing"

	cfg "github.com/automoto/neighbors/config"
)

func TestEpisodesValidate(t *testing.T) {
	seen := map[string]bool{}
	for _, ep := range Episodes {
		t.Run(ep.ID, func(t *testing.T) {
			if err := ep.Validate(); err != nil {
				t.Fatalf("Validate() = %v", err)
			}
			if seen[ep.ID] {
				t.Errorf("duplicate episode id %q", ep.ID)
			}
			seen[ep.ID] = true
		})
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		ep   Episode
		want error
	}{
		{"no scenes", Episode{ID: "a", Cast: []string{"Lazy Larry"}}, ErrNoScenes},
		{
			"empty scene",
			Episode{ID: "b", Cast: []string{"Lazy Larry"}, Scenes: []Scene{{Setting: "night"}}},
			ErrEmptyScene,
		},
		{
			"unknown cast",
			Episode{ID: "c", Cast: []string{"Nobody"}, Scenes: []Scene{{Steps: []Step{{Character: "Nobody"}}}}},
			ErrUnknownCharacter,
		},
		{
			"not in cast",
			Episode{ID: "d", Cast: []string{"Lazy Larry"}, Scenes: []Scene{{Steps: []Step{{Character: "Grumpy Greg"}}}}},
			ErrNotInCast,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.ep.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSceneSpeakersAndEntry(t *testing.T) {
	scene := Scene{Steps: []Step{
		say("Grumpy Greg", StageRight, "", "a"),
		say("Fitness Fiona", "", "", "b"),
		say("Grumpy Greg", StageLeft, "", "c"),
		walk("Mediator Mike", 100, ""),
	}}

	got := scene.Speakers()
	want := []string{"Grumpy Greg", "Fitness Fiona", "Mediator Mike"}
	if len(got) != len(want) {
		t.Fatalf("Speakers() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Speakers()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	tests := []struct {
		name string
		want StagePosition
	}{
		{"Grumpy Greg", StageRight},
		{"Fitness Fiona", StageCenter},
		{"Mediator Mike", StageCenter},
		{"Nobody", StageCenter},
	}
	for _, tt := range tests {
		if got := scene.EntryPosition(tt.name); got != tt.want {
			t.Errorf("EntryPosition(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFindAndIndexOf(t *testing.T) {
	ep, ok := Find("talentShow")
	if !ok || ep.Title != "The Talent Show" {
		t.Errorf("Find(talentShow) = %q, %v", ep.Title, ok)
	}
	if _, ok := Find("missing"); ok {
		t.Error("Find(missing) should fail")
	}
	if IndexOf("fitnessChallenge") != 0 || IndexOf("missing") != -1 {
		t.Errorf("IndexOf gave %d, %d", IndexOf("fitnessChallenge"), IndexOf("missing"))
	}
}

func TestRoster(t *testing.T) {
	names := Names()
	if len(names) != len(Roster) {
		t.Fatalf("Names() returned %d names, roster has %d", len(names), len(Roster))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("Names() not sorted at %d: %q > %q", i, names[i-1], names[i])
		}
	}
	for name, p := range Roster {
		if p.Name != name {
			t.Errorf("roster key %q holds profile %q", name, p.Name)
		}
		if len(p.Emotes) == 0 || p.Catchphrase == "" {
			t.Errorf("%s has no emotes or catchphrase", name)
		}
	}
	if _, ok := Lookup("Lazy Larry"); !ok {
		t.Error("Lookup(Lazy Larry) failed")
	}
}

func TestInitialMood(t *testing.T) {
	tests := []struct {
		p    Personality
		want cfg.MoodID
	}{
		{Energetic, cfg.MoodExcited},
		{Creative, cfg.MoodHappy},
		{Harmonious, cfg.MoodHappy},
		{Humorous, cfg.MoodHappy},
		{Nurturing, cfg.MoodHappy},
		{Cranky, cfg.MoodAngry},
		{Relaxed, cfg.MoodNeutral},
		{Cynical, cfg.MoodNeutral},
	}
	for _, tt := range tests {
		if got := InitialMood(tt.p); got != tt.want {
			t.Errorf("InitialMood(%s) = %s, want %s", tt.p, got, tt.want)
		}
	}
}

func TestSettingMood(t *testing.T) {
	tests := []struct {
		tod     cfg.TimeOfDay
		p       Personality
		want    cfg.MoodID
		changes bool
	}{
		{cfg.Morning, Energetic, cfg.MoodExcited, true},
		{cfg.Morning, Relaxed, cfg.MoodAngry, true},
		{cfg.Morning, Cranky, cfg.MoodAngry, true},
		{cfg.Morning, Creative, cfg.MoodNeutral, false},
		{cfg.Afternoon, Nurturing, cfg.MoodHappy, true},
		{cfg.Afternoon, Cranky, cfg.MoodAngry, true},
		{cfg.Afternoon, Organized, cfg.MoodNeutral, true},
		{cfg.Evening, Relaxed, cfg.MoodHappy, true},
		{cfg.Evening, Energetic, cfg.MoodNeutral, true},
		{cfg.Evening, Cranky, cfg.MoodNeutral, false},
		{cfg.Night, Cranky, cfg.MoodHappy, true},
		{cfg.Night, Diplomatic, cfg.MoodNeutral, false},
	}
	for _, tt := range tests {
		got, changes := SettingMood(tt.tod, tt.p)
		if changes != tt.changes || (changes && got != tt.want) {
			t.Errorf("SettingMood(%s, %s) = %s, %v; want %s, %v", tt.tod, tt.p, got, changes, tt.want, tt.changes)
		}
	}
}
