package systems

import (
	"strings"

	"github.com/automoto/neighbors/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Speak shows the speech bubble with text and hides the thought bubble.
func Speak(entry *donburi.Entry, text string) {
	if entry == nil || !entry.Valid() {
		return
	}
	b := components.Bubble.Get(entry)
	b.Speech = text
	b.SpeechVisible = true
	b.ThoughtVisible = false
}

// Think shows the thought bubble with text and hides the speech bubble.
func Think(entry *donburi.Entry, text string) {
	if entry == nil || !entry.Valid() {
		return
	}
	b := components.Bubble.Get(entry)
	b.Thought = text
	b.ThoughtVisible = true
	b.SpeechVisible = false
}

// ClearBubbles hides both bubbles.
func ClearBubbles(entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	b := components.Bubble.Get(entry)
	b.SpeechVisible = false
	b.ThoughtVisible = false
}

// ClearAllBubbles hides every bubble on stage.
func ClearAllBubbles(e *ecs.ECS) {
	components.Bubble.Each(e.World, func(entry *donburi.Entry) {
		ClearBubbles(entry)
	})
}

// WrapText breaks text into lines no wider than maxWidth, splitting on spaces.
// A single word wider than maxWidth gets a line of its own.
func WrapText(text string, maxWidth int, measure func(string) int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if measure(candidate) > maxWidth {
			lines = append(lines, line)
			line = w
			continue
		}
		line = candidate
	}
	return append(lines, line)
}
