package animations

import "testing"

func TestWalkCycleAdvancesEveryFiveTicks(t *testing.T) {
	a := NewAnimation(0, 3, 1, 4)

	var frames []int
	for i := 0; i < 20; i++ {
		a.Update()
		frames = append(frames, a.Frame())
	}

	// counter starts at 4 and goes negative on the 5th update
	want := []int{0, 0, 0, 0, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 3, 3, 3, 3, 3, 0}
	for i := range want {
		if frames[i] != want[i] {
			t.Fatalf("frames = %v, want %v", frames, want)
		}
	}
	if !a.Looped {
		t.Error("Looped should be set after wrapping")
	}

	a.Restart()
	if a.Frame() != 0 || a.Looped {
		t.Errorf("after Restart frame=%d looped=%v", a.Frame(), a.Looped)
	}
}
