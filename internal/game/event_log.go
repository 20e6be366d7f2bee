package game

import (
	"fmt"
	"strings"
)

// EventType classifies a logged incident. Only key incidents are logged;
// passes and dribbles are left out to keep the log readable.
type EventType int

const (
	EventGoal EventType = iota
	EventShot
	EventTackle
	EventIntercept
)

func (t EventType) String() string {
	switch t {
	case EventGoal:
		return "goal"
	case EventShot:
		return "shot"
	case EventTackle:
		return "tackle"
	case EventIntercept:
		return "intercept"
	default:
		return "unknown"
	}
}

// Result is the optional outcome attached to an event.
type Result int

const (
	ResultNone Result = iota
	ResultSuccess
	ResultFailure
)

func (r Result) String() string {
	switch r {
	case ResultSuccess:
		return "success"
	case ResultFailure:
		return "failure"
	default:
		return "-"
	}
}

// Event is one entry of the match log.
type Event struct {
	Tick        int
	Phase       Phase
	Type        EventType
	Side        Side
	PlayerID    int    // 0 when no player is involved
	Action      Action // ActionNone when not tied to an action
	Result      Result
	Description string
}

// Minute is the match clock minute of the event.
func (e Event) Minute() int { return e.Tick / TicksPerMinute }

// String formats the entry as a fixed-width log line.
//
//	[T=2712 45'] away goal      final_third  #9  shoot  success  Kane scores
func (e Event) String() string {
	player := "--"
	if e.PlayerID != 0 {
		player = fmt.Sprintf("#%d", e.PlayerID)
	}
	return fmt.Sprintf("[T=%04d %2d'] %-4s %-9s %-11s %-3s %-9s %-7s %s",
		e.Tick, e.Minute(), e.Side, e.Type, e.Phase, player, e.Action, e.Result, e.Description)
}

// EventLog is the append-only record of one match.
type EventLog struct {
	entries []Event
}

// NewEventLog creates an empty log.
func NewEventLog() *EventLog {
	return &EventLog{}
}

// Add appends an entry.
func (l *EventLog) Add(e Event) {
	l.entries = append(l.entries, e)
}

// Entries returns a copy of every entry in order.
func (l *EventLog) Entries() []Event {
	out := make([]Event, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len is the number of entries.
func (l *EventLog) Len() int { return len(l.entries) }

// Filter returns entries of one type.
func (l *EventLog) Filter(t EventType) []Event {
	var out []Event
	for _, e := range l.entries {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// FilterSide returns entries for one side.
func (l *EventLog) FilterSide(s Side) []Event {
	var out []Event
	for _, e := range l.entries {
		if e.Side == s {
			out = append(out, e)
		}
	}
	return out
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (l *EventLog) FilterTickRange(fromTick, toTick int) []Event {
	var out []Event
	for _, e := range l.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many entries have type t.
func (l *EventLog) Count(t EventType) int {
	n := 0
	for _, e := range l.entries {
		if e.Type == t {
			n++
		}
	}
	return n
}

// LastOf returns the most recent entry of type t, or false if none.
func (l *EventLog) LastOf(t EventType) (Event, bool) {
	for i := len(l.entries) - 1; i >= 0; i-- {
		if l.entries[i].Type == t {
			return l.entries[i], true
		}
	}
	return Event{}, false
}

// HasEntry reports whether an entry of type t mentions substr.
func (l *EventLog) HasEntry(t EventType, substr string) bool {
	for _, e := range l.entries {
		if e.Type == t && strings.Contains(e.Description, substr) {
			return true
		}
	}
	return false
}

// Format returns the whole log, one line per entry.
func (l *EventLog) Format() string {
	return formatEvents(l.entries)
}

// FormatRange returns the log restricted to a tick range.
func (l *EventLog) FormatRange(fromTick, toTick int) string {
	return formatEvents(l.FilterTickRange(fromTick, toTick))
}

func formatEvents(events []Event) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
