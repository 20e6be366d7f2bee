package game

// ActionReport describes what happened on one tick, with enough detail to
// narrate it without recomputing anything.
type ActionReport struct {
	Tick     int
	Phase    Phase // phase the action was attempted in
	Side     Side  // side that attempted it
	Action   Action
	Actor    *Player
	Opponent *Player // nil when unopposed
	From     Zone    // ball zone before the action
	To       Zone    // ball zone after the action
	Success  bool
	Goal     bool
	Saved    bool
	Turnover bool // possession changed sides
}

// Minute is the match clock minute of the report.
func (r ActionReport) Minute() int { return r.Tick / TicksPerMinute }

// Observer is notified as a match unfolds. Implementations must not mutate
// the match.
type Observer interface {
	OnKickoff(m *Match)
	OnAction(m *Match, r ActionReport)
	OnHalfTime(m *Match)
	OnFullTime(m *Match)
}

// NopObserver ignores every notification. Embed it to implement only the
// callbacks you need.
type NopObserver struct{}

func (NopObserver) OnKickoff(*Match) {}
func (NopObserver) OnAction(*Match, ActionReport) {}
func (NopObserver) OnHalfTime(*Match) {}
func (NopObserver) OnFullTime(*Match) {}
