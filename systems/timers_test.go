package systems

import "testing"

func TestTimersFireInOrder(t *testing.T) {
	e := newTestECS(t)
	var fired []string

	Schedule(e, 2, func() { fired = append(fired, "a") })
	Schedule(e, 1, func() { fired = append(fired, "b") })
	Schedule(e, 2, func() {
		fired = append(fired, "c")
		Schedule(e, 1, func() { fired = append(fired, "d") })
	})

	steps := []struct {
		want    string
		pending int
	}{
		{"b", 2},
		{"bac", 1},
		{"bacd", 0},
		{"bacd", 0},
	}
	for i, s := range steps {
		UpdateTimers(e)
		got := ""
		for _, f := range fired {
			got += f
		}
		if got != s.want {
			t.Errorf("update %d: fired %q, want %q", i+1, got, s.want)
		}
		if n := PendingTimers(e); n != s.pending {
			t.Errorf("update %d: pending = %d, want %d", i+1, n, s.pending)
		}
	}
}

func TestScheduleZeroFiresNextUpdate(t *testing.T) {
	e := newTestECS(t)
	fired := false
	Schedule(e, 0, func() { fired = true })
	if fired {
		t.Fatal("fired before update")
	}
	UpdateTimers(e)
	if !fired {
		t.Error("did not fire on the first update")
	}
}
