package systems

import (
	"log"

	"github.com/automoto/neighbors/components"
	cfg "github.com/automoto/neighbors/config"
	"github.com/automoto/neighbors/script"
	"github.com/automoto/neighbors/story"
	"github.com/yohamta/donburi/ecs"
)

// TheaterStatus is a read-only snapshot for the HUD and control bar.
type TheaterStatus struct {
	Title     string
	Scene     int // 1-based, 0 when no episode is loaded
	Scenes    int
	Setting   cfg.TimeOfDay
	Playing   bool
	SceneDone bool
	Finished  bool
}

// StartEpisode clears the stage and plays the first scene of the episode.
// Unknown ids are logged and leave the stage untouched.
func StartEpisode(e *ecs.ECS, id string) bool {
	episode, ok := story.Find(id)
	if !ok {
		log.Printf("Warning: Unknown episode %q", id)
		return false
	}

	ResetStage(e)
	theater := getOrCreateTheater(e)
	theater.Episode = &episode
	theater.Finished = false
	startScene(e, 0)

	UpdatePreferences(func(p *Preferences) { p.LastEpisode = id })
	return true
}

// RestartEpisode plays the current episode again from its first scene.
func RestartEpisode(e *ecs.ECS) bool {
	theater := getOrCreateTheater(e)
	if theater.Episode == nil {
		return false
	}
	return StartEpisode(e, theater.Episode.ID)
}

// NextScene abandons what is left of the current scene and starts the next one.
// After the last scene the episode is finished and the stage stays as it is.
func NextScene(e *ecs.ECS) {
	theater := getOrCreateTheater(e)
	if theater.Episode == nil || theater.Finished {
		return
	}

	next := theater.SceneIndex + 1
	if next >= len(theater.Episode.Scenes) {
		theater.Sequencer.Pause()
		theater.Finished = true
		ClearAllBubbles(e)
		return
	}
	startScene(e, next)
}

// TogglePlayback pauses or resumes the script. A finished scene moves on.
func TogglePlayback(e *ecs.ECS) {
	theater := getOrCreateTheater(e)
	if theater.Episode == nil {
		return
	}
	if theater.Sequencer.Done() {
		NextScene(e)
		return
	}
	theater.Sequencer.Toggle()
}

// SetTimeOfDay changes the sky and applies the setting's mood rules to everyone on stage.
func SetTimeOfDay(e *ecs.ECS, tod cfg.TimeOfDay) {
	theater := getOrCreateTheater(e)
	theater.TimeOfDay = tod

	for _, name := range CastNames(e) {
		entry, ok := GetCharacter(e, name)
		if !ok {
			continue
		}
		c := components.Character.Get(entry)
		if mood, ok := story.SettingMood(tod, c.Profile.Personality); ok {
			SetMood(entry, mood)
		}
	}
}

// GetTheaterStatus reports where playback is.
func GetTheaterStatus(e *ecs.ECS) TheaterStatus {
	theater := getOrCreateTheater(e)
	status := TheaterStatus{
		Setting:   theater.TimeOfDay,
		Playing:   theater.Sequencer.Playing(),
		SceneDone: theater.Sequencer.Done(),
		Finished:  theater.Finished,
	}
	if theater.Episode != nil {
		status.Title = theater.Episode.Title
		status.Scene = theater.SceneIndex + 1
		status.Scenes = len(theater.Episode.Scenes)
	}
	return status
}

// CurrentTimeOfDay is the setting of the scene on stage.
func CurrentTimeOfDay(e *ecs.ECS) cfg.TimeOfDay {
	return getOrCreateTheater(e).TimeOfDay
}

func startScene(e *ecs.ECS, index int) {
	theater := getOrCreateTheater(e)
	scene := theater.Episode.Scenes[index]
	theater.SceneIndex = index

	ClearTimers(e)
	ClearAllBubbles(e)

	// The setting only moves characters already on stage; newcomers keep
	// their personality's mood.
	SetTimeOfDay(e, cfg.ParseTimeOfDay(scene.Setting))

	for _, name := range scene.Speakers() {
		x, y := markPosition(e, scene.EntryPosition(name))
		entry, added := AddCharacter(e, name, x, y)
		if !added || entry == nil {
			continue
		}
		SetMood(entry, story.InitialMood(components.Character.Get(entry).Profile.Personality))
	}

	theater.Sequencer.Load(scene.Steps)
	theater.Sequencer.Play()
	PlaySFX(e, cfg.SoundSceneChange)
}

// markPosition returns the top-left corner for a character standing on a stage mark.
func markPosition(e *ecs.ECS, pos story.StagePosition) (x, y float64) {
	center, ok := 0.0, false
	if entry, found := components.Level.First(e.World); found {
		if level := components.Level.Get(entry); level.Map != nil {
			center, ok = level.Map.Mark(string(pos))
		}
	}
	if !ok {
		width := float64(cfg.C.Width)
		switch pos {
		case story.StageLeft:
			center = width * cfg.Stage.LeftMark
		case story.StageRight:
			center = width * cfg.Stage.RightMark
		default:
			center = width * cfg.Stage.CenterMark
		}
	}
	x = center - cfg.Character.Width/2
	y = float64(cfg.C.StageHeight) - cfg.Character.GroundOffset - cfg.Character.Height
	return x, y
}

// getOrCreateTheater returns the singleton Theater component with its sequencer
func getOrCreateTheater(e *ecs.ECS) *components.TheaterData {
	entry, ok := components.Theater.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Theater))
		seq := script.NewSequencer(&stageDirector{ecs: e})
		seq.OnReveal = typingSound(e)
		seq.OnFinish = func() {
			t := getOrCreateTheater(e)
			if t.Episode != nil && t.SceneIndex == len(t.Episode.Scenes)-1 {
				t.Finished = true
			}
		}
		components.Theater.SetValue(entry, components.TheaterData{
			Sequencer: seq,
			TimeOfDay: cfg.Afternoon,
		})
	}
	return components.Theater.Get(entry)
}
