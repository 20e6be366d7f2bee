package game

import "fmt"

// Winner is the result of a finished match.
type Winner int

const (
	WinnerNone Winner = iota
	WinnerHome
	WinnerAway
	WinnerDraw
)

func (w Winner) String() string {
	switch w {
	case WinnerHome:
		return "home"
	case WinnerAway:
		return "away"
	case WinnerDraw:
		return "draw"
	case WinnerNone:
		return "none"
	default:
		return "unknown"
	}
}

// OutcomeReason explains a result for reports and batch aggregation.
type OutcomeReason struct {
	Winner      Winner
	HomeScore   int
	AwayScore   int
	Margin      int
	Description string
}

// DetermineOutcome decides the winner by strictly greater score.
func DetermineOutcome(home, away int) OutcomeReason {
	r := OutcomeReason{HomeScore: home, AwayScore: away}
	switch {
	case home > away:
		r.Winner = WinnerHome
		r.Margin = home - away
	case away > home:
		r.Winner = WinnerAway
		r.Margin = away - home
	default:
		r.Winner = WinnerDraw
	}

	switch {
	case r.Winner == WinnerDraw && home == 0:
		r.Description = "goalless draw"
	case r.Winner == WinnerDraw:
		r.Description = fmt.Sprintf("score draw %d-%d", home, away)
	case r.Margin >= 3:
		r.Description = fmt.Sprintf("%s win, comfortable (%d-%d)", r.Winner, home, away)
	case r.Margin == 1:
		r.Description = fmt.Sprintf("%s win, narrow (%d-%d)", r.Winner, home, away)
	default:
		r.Description = fmt.Sprintf("%s win (%d-%d)", r.Winner, home, away)
	}
	return r
}
