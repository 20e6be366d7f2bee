package game

import (
	"strings"
	"testing"
)

func sampleLog() *EventLog {
	l := NewEventLog()
	l.Add(Event{Tick: 100, Phase: PhaseFinalThird, Type: EventShot, Side: SideHome, PlayerID: 10, Action: ActionShoot, Result: ResultFailure, Description: "Kim off target"})
	l.Add(Event{Tick: 600, Phase: PhaseDefense, Type: EventTackle, Side: SideAway, PlayerID: 3, Action: ActionTackle, Result: ResultSuccess, Description: "Lee tackles"})
	l.Add(Event{Tick: 2760, Phase: PhaseFinalThird, Type: EventGoal, Side: SideHome, PlayerID: 11, Action: ActionShoot, Result: ResultSuccess, Description: "Park scores"})
	return l
}

func TestEventLog_FilterAndCount(t *testing.T) {
	l := sampleLog()
	if l.Len() != 3 {
		t.Fatalf("Len = %d, want 3", l.Len())
	}
	if n := l.Count(EventGoal); n != 1 {
		t.Fatalf("goal count = %d, want 1", n)
	}
	if got := l.Filter(EventTackle); len(got) != 1 || got[0].PlayerID != 3 {
		t.Fatalf("tackle filter = %+v", got)
	}
	if got := l.FilterSide(SideHome); len(got) != 2 {
		t.Fatalf("home entries = %d, want 2", len(got))
	}
	if got := l.FilterTickRange(0, 600); len(got) != 2 {
		t.Fatalf("tick range entries = %d, want 2", len(got))
	}
	if e, ok := l.LastOf(EventGoal); !ok || e.Tick != 2760 {
		t.Fatalf("LastOf(goal) = %+v, %v", e, ok)
	}
	if _, ok := l.LastOf(EventIntercept); ok {
		t.Fatal("no intercept was logged")
	}
	if !l.HasEntry(EventGoal, "Park") || l.HasEntry(EventGoal, "Kim") {
		t.Fatal("HasEntry mismatch")
	}
}

func TestEventLog_EntriesIsACopy(t *testing.T) {
	l := sampleLog()
	got := l.Entries()
	got[0].Description = "tampered"
	if l.Entries()[0].Description == "tampered" {
		t.Fatal("Entries must not expose the backing slice")
	}
}

func TestEvent_String(t *testing.T) {
	e := Event{Tick: 2760, Phase: PhaseFinalThird, Type: EventGoal, Side: SideHome, PlayerID: 11, Action: ActionShoot, Result: ResultSuccess, Description: "Park scores"}
	s := e.String()
	for _, want := range []string{"T=2760", "46'", "home", "goal", "final_third", "#11", "shoot", "success", "Park scores"} {
		if !strings.Contains(s, want) {
			t.Fatalf("%q missing %q", s, want)
		}
	}
	if e.Minute() != 46 {
		t.Fatalf("minute = %d, want 46", e.Minute())
	}
	noPlayer := Event{Type: EventShot}
	if !strings.Contains(noPlayer.String(), " -- ") {
		t.Fatalf("missing player placeholder: %q", noPlayer.String())
	}
}

func TestEventLog_Format(t *testing.T) {
	l := sampleLog()
	out := l.Format()
	if strings.Count(out, "\n") != 3 {
		t.Fatalf("expected 3 lines, got:\n%s", out)
	}
	if r := l.FormatRange(2000, 3000); !strings.Contains(r, "Park") || strings.Contains(r, "Kim") {
		t.Fatalf("FormatRange = %q", r)
	}
}
