package story

import (
	"errors"
	"fmt"
)

// StepKind selects how the sequencer plays a step.
type StepKind int

const (
	// Dialogue types Text into the speaker's speech bubble.
	Dialogue StepKind = iota
	// Thought shows Text in the character's thought bubble.
	Thought
	// Movement walks the character to TargetX/TargetY over Duration, showing
	// Text as a thought when set.
	Movement
)

func (k StepKind) String() string {
	switch k {
	case Dialogue:
		return "dialogue"
	case Thought:
		return "thought"
	case Movement:
		return "movement"
	}
	return "unknown"
}

// StagePosition is one of the three marks a character can enter at.
type StagePosition string

const (
	StageLeft   StagePosition = "left"
	StageCenter StagePosition = "center"
	StageRight  StagePosition = "right"
)

// Step is one entry of a scene script.
type Step struct {
	Kind      StepKind
	Character string
	Text      string
	Emote     string
	Position  StagePosition

	// Movement target in stage coordinates. TargetY == 0 keeps the current y.
	TargetX float64
	TargetY float64

	// Duration in seconds; zero picks the default for the step kind.
	Duration float64
}

// Scene is a run of steps played under one setting.
type Scene struct {
	Setting string // morning, afternoon, evening, night
	Steps   []Step
}

// Episode is a titled list of scenes with a fixed cast.
type Episode struct {
	ID          string
	Title       string
	Description string
	Cast        []string
	Scenes      []Scene
}

var (
	ErrNoScenes         = errors.New("episode has no scenes")
	ErrEmptyScene       = errors.New("scene has no steps")
	ErrUnknownCharacter = errors.New("unknown character")
	ErrNotInCast        = errors.New("character not in episode cast")
)

// Speakers returns each character appearing in the scene, in order of first appearance.
func (s Scene) Speakers() []string {
	seen := make(map[string]bool)
	var names []string
	for _, step := range s.Steps {
		if step.Character == "" || seen[step.Character] {
			continue
		}
		seen[step.Character] = true
		names = append(names, step.Character)
	}
	return names
}

// EntryPosition returns the stage position of the character's first step in
// the scene, defaulting to center.
func (s Scene) EntryPosition(name string) StagePosition {
	for _, step := range s.Steps {
		if step.Character == name && step.Position != "" {
			return step.Position
		}
	}
	return StageCenter
}

// Validate reports the first inconsistency in the episode's content.
func (e Episode) Validate() error {
	if len(e.Scenes) == 0 {
		return fmt.Errorf("%s: %w", e.ID, ErrNoScenes)
	}

	cast := make(map[string]bool, len(e.Cast))
	for _, name := range e.Cast {
		if _, ok := Roster[name]; !ok {
			return fmt.Errorf("%s: cast %q: %w", e.ID, name, ErrUnknownCharacter)
		}
		cast[name] = true
	}

	for i, scene := range e.Scenes {
		if len(scene.Steps) == 0 {
			return fmt.Errorf("%s scene %d: %w", e.ID, i, ErrEmptyScene)
		}
		for j, step := range scene.Steps {
			if _, ok := Roster[step.Character]; !ok {
				return fmt.Errorf("%s scene %d step %d %q: %w", e.ID, i, j, step.Character, ErrUnknownCharacter)
			}
			if !cast[step.Character] {
				return fmt.Errorf("%s scene %d step %d %q: %w", e.ID, i, j, step.Character, ErrNotInCast)
			}
		}
	}
	return nil
}

// Find returns the episode with the given id.
func Find(id string) (Episode, bool) {
	for _, e := range Episodes {
		if e.ID == id {
			return e, true
		}
	}
	return Episode{}, false
}

// IndexOf returns the catalog index of the episode id, or -1.
func IndexOf(id string) int {
	for i, e := range Episodes {
		if e.ID == id {
			return i
		}
	}
	return -1
}
