package systems

import (
	"math"
	"testing"

	"github.com/automoto/neighbors/components"
	cfg "github.com/automoto/neighbors/config"
	"github.com/automoto/neighbors/story"
	"github.com/yohamta/donburi/ecs"
)

// tick runs the logic systems the theater scene runs each frame.
func tick(e *ecs.ECS) {
	UpdateClock(e)
	UpdateScript(e)
	UpdateCharacters(e)
	UpdateEmotes(e)
	UpdateTimers(e)
}

// playScene ticks until the current scene's script is done.
func playScene(t *testing.T, e *ecs.ECS) {
	t.Helper()
	seq := getOrCreateTheater(e).Sequencer
	for i := 0; i < cfg.C.TPS*600 && !seq.Done(); i++ {
		tick(e)
	}
	if !seq.Done() {
		t.Fatal("scene did not finish within ten minutes")
	}
}

func withPreferences(t *testing.T) {
	t.Helper()
	saved := CurrentPreferences()
	t.Cleanup(func() { currentPrefs = saved })
}

func TestStartEpisodeStagesFirstScene(t *testing.T) {
	withPreferences(t)
	e := newTestECS(t)

	if !StartEpisode(e, "fitnessChallenge") {
		t.Fatal("StartEpisode returned false")
	}

	feetTop := float64(cfg.C.StageHeight) - cfg.Character.GroundOffset - cfg.Character.Height
	width := float64(cfg.C.Width)
	tests := []struct {
		name string
		x    float64
		mood cfg.MoodID
	}{
		{"Fitness Fiona", width*cfg.Stage.CenterMark - cfg.Character.Width/2, cfg.MoodExcited},
		{"Lazy Larry", width*cfg.Stage.RightMark - cfg.Character.Width/2, cfg.MoodNeutral},
		{"Office Olivia", width*cfg.Stage.LeftMark - cfg.Character.Width/2, cfg.MoodNeutral},
	}

	names := CastNames(e)
	if len(names) != len(tests) {
		t.Fatalf("cast = %v", names)
	}
	for i, tt := range tests {
		if names[i] != tt.name {
			t.Errorf("cast[%d] = %q, want %q", i, names[i], tt.name)
		}
		entry, ok := GetCharacter(e, tt.name)
		if !ok {
			t.Fatalf("%s not on stage", tt.name)
		}
		x, y := position(entry)
		if x != tt.x || y != feetTop {
			t.Errorf("%s at (%v,%v), want (%v,%v)", tt.name, x, y, tt.x, feetTop)
		}
		if mood := components.Mood.Get(entry).Mood; mood != tt.mood {
			t.Errorf("%s mood = %v, want %v", tt.name, mood, tt.mood)
		}
	}

	status := GetTheaterStatus(e)
	if status.Scene != 1 || status.Scenes != 3 || status.Setting != cfg.Morning || !status.Playing {
		t.Errorf("status = %+v", status)
	}
	if !hasSFX(e, cfg.SoundSceneChange) {
		t.Error("scene change sound not queued")
	}
	if got := CurrentPreferences().LastEpisode; got != "fitnessChallenge" {
		t.Errorf("last episode = %q", got)
	}
}

func TestStartUnknownEpisode(t *testing.T) {
	withPreferences(t)
	e := newTestECS(t)
	StartEpisode(e, "bigEvent")

	if StartEpisode(e, "noSuchEpisode") {
		t.Fatal("unknown episode started")
	}
	if status := GetTheaterStatus(e); status.Title != "The Big Event" {
		t.Errorf("title = %q, stage was reset", status.Title)
	}
}

func TestDialogueTypesAndStepsForward(t *testing.T) {
	withPreferences(t)
	e := newTestECS(t)
	StartEpisode(e, "fitnessChallenge")
	fiona, _ := GetCharacter(e, "Fitness Fiona")
	startX, _ := position(fiona)

	// 40 ticks: 0.5s delay then 4 runes
	for i := 0; i < 40; i++ {
		tick(e)
	}

	b := components.Bubble.Get(fiona)
	if !b.SpeechVisible || b.Speech != "GOOO" {
		t.Errorf("speech = %q visible=%v, want %q", b.Speech, b.SpeechVisible, "GOOO")
	}
	if !hasSFX(e, cfg.SoundType) {
		t.Error("typing sound not queued")
	}
	x, _ := position(fiona)
	if want := startX + cfg.Character.StepForward; x < want-cfg.Character.Speed || x > want {
		t.Errorf("speaker at x=%v, want about %v", x, want)
	}
}

func TestSceneFlow(t *testing.T) {
	withPreferences(t)
	e := newTestECS(t)
	StartEpisode(e, "fitnessChallenge")

	playScene(t, e)
	status := GetTheaterStatus(e)
	if !status.SceneDone || status.Playing || status.Finished || status.Scene != 1 {
		t.Fatalf("after scene 1: %+v", status)
	}

	// Play on an idle scene moves to the next one
	TogglePlayback(e)
	status = GetTheaterStatus(e)
	if status.Scene != 2 || !status.Playing || status.Setting != cfg.Afternoon {
		t.Fatalf("after toggle: %+v", status)
	}
	if n := len(CastNames(e)); n != 4 {
		t.Errorf("cast size = %d, want 4 once Sam arrives", n)
	}
	larry, _ := GetCharacter(e, "Lazy Larry")
	if mood := components.Mood.Get(larry).Mood; mood != cfg.MoodNeutral {
		t.Errorf("Larry's afternoon mood = %v", mood)
	}

	// Next while playing skips the rest of the scene
	tick(e)
	NextScene(e)
	if status = GetTheaterStatus(e); status.Scene != 3 || status.Setting != cfg.Evening {
		t.Fatalf("after next: %+v", status)
	}

	NextScene(e)
	status = GetTheaterStatus(e)
	if !status.Finished || status.Playing {
		t.Fatalf("after last scene: %+v", status)
	}
	if n := len(CastNames(e)); n != 4 {
		t.Errorf("stage cleared at the end; cast size = %d", n)
	}

	NextScene(e)
	if status = GetTheaterStatus(e); status.Scene != 3 {
		t.Errorf("NextScene past the end moved to scene %d", status.Scene)
	}

	if !RestartEpisode(e) {
		t.Fatal("restart failed")
	}
	status = GetTheaterStatus(e)
	if status.Scene != 1 || status.Finished || len(CastNames(e)) != 3 {
		t.Errorf("after restart: %+v cast=%v", status, CastNames(e))
	}
}

func TestLastSceneFinishesEpisode(t *testing.T) {
	withPreferences(t)
	e := newTestECS(t)
	StartEpisode(e, "bigEvent")

	playScene(t, e)

	if status := GetTheaterStatus(e); !status.Finished {
		t.Errorf("status = %+v, want finished", status)
	}
	andy, _ := GetCharacter(e, "Artistic Andy")
	// The walk ends on 400; his line steps forward and back again
	if x, _ := position(andy); math.Abs(x-400) > cfg.Character.Speed {
		t.Errorf("Andy at x=%v, want within a step of 400", x)
	}
}

func TestPauseStopsScript(t *testing.T) {
	withPreferences(t)
	e := newTestECS(t)
	StartEpisode(e, "talentShow")

	TogglePlayback(e)
	seq := getOrCreateTheater(e).Sequencer
	for i := 0; i < 120; i++ {
		tick(e)
	}
	if seq.Elapsed() != 0 || seq.Index() != 0 {
		t.Errorf("paused script advanced: index %d elapsed %v", seq.Index(), seq.Elapsed())
	}

	TogglePlayback(e)
	tick(e)
	if seq.Elapsed() == 0 {
		t.Error("resumed script did not advance")
	}
}

func TestNewcomersKeepInitialMood(t *testing.T) {
	e := newTestECS(t)
	greg := mustAdd(t, e, "Grumpy Greg", 100, 300)
	SetMood(greg, cfg.MoodAngry)

	theater := getOrCreateTheater(e)
	theater.Episode = &story.Episode{
		ID:   "nightShift",
		Cast: []string{"Grumpy Greg", "Fitness Fiona"},
		Scenes: []story.Scene{{
			Setting: "night",
			Steps: []story.Step{
				{Kind: story.Dialogue, Character: "Grumpy Greg", Text: "Quiet."},
				{Kind: story.Dialogue, Character: "Fitness Fiona", Text: "Night run!"},
			},
		}},
	}
	startScene(e, 0)

	fiona, ok := GetCharacter(e, "Fitness Fiona")
	if !ok {
		t.Fatal("Fiona not on stage")
	}
	tests := []struct {
		name string
		mood cfg.MoodID
		got  cfg.MoodID
	}{
		// already on stage, so the night cheers him up
		{"Grumpy Greg", cfg.MoodHappy, components.Mood.Get(greg).Mood},
		// walks on after the setting changed
		{"Fitness Fiona", cfg.MoodExcited, components.Mood.Get(fiona).Mood},
	}
	for _, tt := range tests {
		if tt.got != tt.mood {
			t.Errorf("%s mood = %v, want %v", tt.name, tt.got, tt.mood)
		}
	}
}

func TestSetTimeOfDayAppliesMoods(t *testing.T) {
	e := newTestECS(t)
	greg := mustAdd(t, e, "Grumpy Greg", 100, 300)
	fiona := mustAdd(t, e, "Fitness Fiona", 300, 300)
	mike := mustAdd(t, e, "Mediator Mike", 500, 300)
	SetMood(mike, cfg.MoodSad)

	SetTimeOfDay(e, cfg.Night)

	tests := []struct {
		name string
		mood cfg.MoodID
		got  cfg.MoodID
	}{
		{"Grumpy Greg", cfg.MoodHappy, components.Mood.Get(greg).Mood},
		{"Fitness Fiona", cfg.MoodNeutral, components.Mood.Get(fiona).Mood},
		{"Mediator Mike", cfg.MoodSad, components.Mood.Get(mike).Mood},
	}
	for _, tt := range tests {
		if tt.got != tt.mood {
			t.Errorf("%s mood = %v, want %v", tt.name, tt.got, tt.mood)
		}
	}
	if CurrentTimeOfDay(e) != cfg.Night {
		t.Error("time of day not stored")
	}
}

func TestScriptSkipsCharactersRemovedMidScene(t *testing.T) {
	withPreferences(t)
	e := newTestECS(t)
	StartEpisode(e, "bigEvent")
	RemoveCharacter(e, "Musical Maria")

	tick(e)

	seq := getOrCreateTheater(e).Sequencer
	if seq.Index() != 1 {
		t.Errorf("index = %d, want the removed speaker's line skipped", seq.Index())
	}
}
