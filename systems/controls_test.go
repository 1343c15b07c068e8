package systems

import (
	"encoding/json"
	"testing"

	cfg "github.com/automoto/neighbors/config"
	"github.com/yohamta/donburi/ecs"
)

// press simulates one tick with the action held after a tick without it.
func press(e *ecs.ECS, id cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = [cfg.ActionCount]bool{}
	input.Current = [cfg.ActionCount]bool{}
	input.Current[id] = true
	UpdateTheaterControls(e)
}

func TestGetAction(t *testing.T) {
	tests := []struct {
		name       string
		prev, curr bool
		want       struct{ pressed, just, released bool }
	}{
		{"idle", false, false, struct{ pressed, just, released bool }{false, false, false}},
		{"press", false, true, struct{ pressed, just, released bool }{true, true, false}},
		{"hold", true, true, struct{ pressed, just, released bool }{true, false, false}},
		{"release", true, false, struct{ pressed, just, released bool }{false, false, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			input := getOrCreateInput(e)
			input.Previous[cfg.ActionMute] = tt.prev
			input.Current[cfg.ActionMute] = tt.curr

			got := GetAction(input, cfg.ActionMute)
			if got.Pressed != tt.want.pressed || got.JustPressed != tt.want.just || got.JustReleased != tt.want.released {
				t.Errorf("GetAction = %+v", got)
			}
		})
	}
}

func TestTheaterControls(t *testing.T) {
	withPreferences(t)
	e := newTestECS(t)
	StartEpisode(e, "fitnessChallenge")

	press(e, cfg.ActionPlayPause)
	if GetTheaterStatus(e).Playing {
		t.Error("play/pause did not pause")
	}

	// Holding the key does not toggle again
	input := getOrCreateInput(e)
	input.Previous = input.Current
	UpdateTheaterControls(e)
	if GetTheaterStatus(e).Playing {
		t.Error("held key toggled again")
	}

	press(e, cfg.ActionNextScene)
	if s := GetTheaterStatus(e); s.Scene != 2 {
		t.Errorf("scene = %d after next", s.Scene)
	}

	press(e, cfg.ActionRestart)
	if s := GetTheaterStatus(e); s.Scene != 1 || !s.Playing {
		t.Errorf("after restart: %+v", s)
	}

	muted := GetOrCreateSettings(e).Muted
	press(e, cfg.ActionMute)
	if GetOrCreateSettings(e).Muted == muted {
		t.Error("mute did not toggle")
	}
	if CurrentPreferences().Muted != !muted {
		t.Error("mute not remembered")
	}

	debug := GetOrCreateSettings(e).Debug
	press(e, cfg.ActionDebug)
	if GetOrCreateSettings(e).Debug == debug {
		t.Error("debug did not toggle")
	}
}

func TestDecodePreferences(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    Preferences
		wantErr bool
	}{
		{"full", `{"lastEpisode":"talentShow","muted":true,"debug":true}`, Preferences{"talentShow", true, true}, false},
		{"partial keeps defaults", `{"muted":true}`, Preferences{cfg.C.StartEpisode, true, false}, false},
		{"garbage", `not json`, Preferences{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodePreferences([]byte(tt.data))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if *got != tt.want {
				t.Errorf("decodePreferences = %+v, want %+v", *got, tt.want)
			}
		})
	}

	data, err := json.Marshal(Preferences{LastEpisode: "bigEvent"})
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := decodePreferences(data); got.LastEpisode != "bigEvent" {
		t.Errorf("round trip lost the episode: %+v", got)
	}
}

func TestSavePreferencesWithoutStorage(t *testing.T) {
	withPreferences(t)
	if err := SavePreferences(Preferences{LastEpisode: "neighborFeud"}); err != nil {
		t.Fatalf("SavePreferences = %v", err)
	}
	if got := CurrentPreferences().LastEpisode; got != "neighborFeud" {
		t.Errorf("current episode = %q", got)
	}
}

func TestHUDStatusLine(t *testing.T) {
	tests := []struct {
		status TheaterStatus
		want   string
	}{
		{TheaterStatus{Scene: 1, Scenes: 3, Setting: cfg.Morning, Playing: true}, "Scene 1/3  morning  playing"},
		{TheaterStatus{Scene: 2, Scenes: 3, Setting: cfg.Afternoon}, "Scene 2/3  afternoon  paused"},
		{TheaterStatus{Scene: 2, Scenes: 3, Setting: cfg.Evening, SceneDone: true}, "Scene 2/3  evening  scene over"},
		{TheaterStatus{Scene: 3, Scenes: 3, Setting: cfg.Night, SceneDone: true, Finished: true}, "Scene 3/3  night  the end"},
	}
	for _, tt := range tests {
		if got := HUDStatusLine(tt.status); got != tt.want {
			t.Errorf("HUDStatusLine = %q, want %q", got, tt.want)
		}
	}
}
