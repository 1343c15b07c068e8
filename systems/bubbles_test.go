package systems

import (
	"testing"

	"github.com/automoto/neighbors/components"
)

func TestBubblesAreExclusive(t *testing.T) {
	e := newTestECS(t)
	entry := mustAdd(t, e, "Office Olivia", 100, 300)
	b := components.Bubble.Get(entry)

	Speak(entry, "Hello")
	if !b.SpeechVisible || b.ThoughtVisible {
		t.Fatalf("after Speak: speech=%v thought=%v", b.SpeechVisible, b.ThoughtVisible)
	}

	Think(entry, "Hmm")
	if b.SpeechVisible || !b.ThoughtVisible {
		t.Fatalf("after Think: speech=%v thought=%v", b.SpeechVisible, b.ThoughtVisible)
	}

	Speak(entry, "Again")
	if !b.SpeechVisible || b.ThoughtVisible {
		t.Fatalf("after second Speak: speech=%v thought=%v", b.SpeechVisible, b.ThoughtVisible)
	}

	ClearBubbles(entry)
	if b.SpeechVisible || b.ThoughtVisible {
		t.Error("ClearBubbles left a bubble visible")
	}
}

func TestWrapText(t *testing.T) {
	measure := func(s string) int { return len(s) }

	tests := []struct {
		name string
		text string
		max  int
		want []string
	}{
		{"empty", "", 10, nil},
		{"fits", "hello", 10, []string{"hello"}},
		{"two lines", "the quick brown fox", 10, []string{"the quick", "brown fox"}},
		{"long word", "supercalifragilistic is long", 10, []string{"supercalifragilistic", "is long"}},
		{"extra spaces", "  a   b  ", 10, []string{"a b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapText(tt.text, tt.max, measure)
			if len(got) != len(tt.want) {
				t.Fatalf("WrapText = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("WrapText = %q, want %q", got, tt.want)
				}
			}
		})
	}
}
