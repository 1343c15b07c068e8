package ui

import (
	"strings"
	"testing"

	"github.com/automoto/neighbors/story"
	"github.com/automoto/neighbors/systems"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

func TestPlayButtonLabel(t *testing.T) {
	tests := []struct {
		name   string
		status systems.TheaterStatus
		want   string
	}{
		{"playing", systems.TheaterStatus{Playing: true}, "Pause"},
		{"paused", systems.TheaterStatus{}, "Play"},
		{"scene over", systems.TheaterStatus{SceneDone: true}, "Next"},
		{"finished", systems.TheaterStatus{SceneDone: true, Finished: true}, "The end"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlayButtonLabel(tt.status); got != tt.want {
				t.Errorf("PlayButtonLabel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMuteLabel(t *testing.T) {
	if muteLabel(true) == muteLabel(false) {
		t.Error("mute states share a label")
	}
}

func TestCastCards(t *testing.T) {
	ep, ok := story.Find("fitnessChallenge")
	if !ok {
		t.Fatal("fitnessChallenge missing")
	}
	ep.Cast = append(append([]string{}, ep.Cast...), "Nobody Nigel")

	cards := CastCards(ep)
	if len(cards) != 4 {
		t.Fatalf("got %d cards, want 4 (unknown names dropped)", len(cards))
	}

	tests := []struct {
		name string
		icon string
	}{
		{"Fitness Fiona", "!!"},
		{"Lazy Larry", "zzz"},
		{"Office Olivia", "9:00"},
		{"Skeptical Sam", "?!"},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := cards[i]
			profile, _ := story.Lookup(tt.name)
			if card.Name != tt.name {
				t.Errorf("card %d = %q, want %q", i, card.Name, tt.name)
			}
			if card.Icon != tt.icon {
				t.Errorf("icon = %q, want %q", card.Icon, tt.icon)
			}
			if card.Color != profile.Color {
				t.Errorf("color = %v, want %v", card.Color, profile.Color)
			}
			if card.Traits != profile.Traits || card.Traits == "" {
				t.Errorf("traits = %q", card.Traits)
			}
			if card.Description != profile.Description {
				t.Errorf("description = %q", card.Description)
			}
		})
	}
}

func TestBlurb(t *testing.T) {
	face := loadFaces().small

	if got := Blurb("Likes naps.", face); got != "Likes naps." {
		t.Errorf("short blurb = %q", got)
	}

	larry, _ := story.Lookup("Lazy Larry")
	long := strings.Repeat(larry.Description+" ", 3)
	got := Blurb(long, face)
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("long blurb not truncated: %q", got)
	}
	if w := text.Advance(strings.TrimSuffix(got, "..."), face); w > blurbWidth {
		t.Errorf("blurb is %v px wide, limit %d", w, blurbWidth)
	}
}
