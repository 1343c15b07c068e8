package components

import "github.com/yohamta/donburi"

// BubbleData holds a character's speech and thought bubbles. At most one is visible.
type BubbleData struct {
	Speech         string
	SpeechVisible  bool
	Thought        string
	ThoughtVisible bool
}

var Bubble = donburi.NewComponentType[BubbleData]()
