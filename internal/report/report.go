// Package report renders finished matches as text or JSON and narrates
// matches live.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hakunamta00700/soccer-sim-game/internal/game"
)

// MaxKeyEvents caps the key-event section of the text report.
const MaxKeyEvents = 20

const rule = "============================================================"

// Scorer is one goal in a report.
type Scorer struct {
	Minute   int    `json:"minute"`
	Tick     int    `json:"tick"`
	Side     string `json:"side"`
	Team     string `json:"team"`
	PlayerID int    `json:"playerId"`
	Player   string `json:"player"`
}

// TeamSummary holds one side's result and statistics.
type TeamSummary struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Formation          string  `json:"formation"`
	Score              int     `json:"score"`
	Shots              int     `json:"shots"`
	ShotsOnTarget      int     `json:"shotsOnTarget"`
	PassesAttempted    int     `json:"passesAttempted"`
	PassesCompleted    int     `json:"passesCompleted"`
	PassAccuracy       float64 `json:"passAccuracy"`
	DribblesAttempted  int     `json:"dribblesAttempted"`
	DribblesSuccessful int     `json:"dribblesSuccessful"`
	TacklesAttempted   int     `json:"tacklesAttempted"`
	TacklesSuccessful  int     `json:"tacklesSuccessful"`
	Momentum           int     `json:"momentum"`
	MomentumLabel      string  `json:"momentumLabel"`
	AverageStamina     float64 `json:"averageStamina"`
	Fatigue            string  `json:"fatigue"`
}

// KeyEvent is a logged event flattened for export.
type KeyEvent struct {
	Tick        int    `json:"tick"`
	Minute      int    `json:"minute"`
	Type        string `json:"type"`
	Side        string `json:"side"`
	Phase       string `json:"phase"`
	PlayerID    int    `json:"playerId,omitempty"`
	Action      string `json:"action"`
	Result      string `json:"result"`
	Description string `json:"description"`
}

// Summary is the machine-readable form of a match.
type Summary struct {
	MatchID     string      `json:"matchId"`
	Finished    bool        `json:"finished"`
	TicksPlayed int         `json:"ticksPlayed"`
	Winner      string      `json:"winner"`
	Outcome     string      `json:"outcome"`
	Home        TeamSummary `json:"home"`
	Away        TeamSummary `json:"away"`
	Scorers     []Scorer    `json:"scorers"`
	Events      []KeyEvent  `json:"events"`
}

func summarizeTeam(t *game.Team) TeamSummary {
	return TeamSummary{
		ID:                 t.ID,
		Name:               t.Name,
		Formation:          t.Formation,
		Score:              t.Score,
		Shots:              t.Stats.Shots,
		ShotsOnTarget:      t.Stats.ShotsOnTarget,
		PassesAttempted:    t.Stats.PassesAttempted,
		PassesCompleted:    t.Stats.PassesCompleted,
		PassAccuracy:       t.Stats.PassAccuracy(),
		DribblesAttempted:  t.Stats.DribblesAttempted,
		DribblesSuccessful: t.Stats.DribblesSuccessful,
		TacklesAttempted:   t.Stats.TacklesAttempted,
		TacklesSuccessful:  t.Stats.TacklesSuccessful,
		Momentum:           int(t.Momentum),
		MomentumLabel:      t.Momentum.Describe(),
		AverageStamina:     t.AverageStamina(),
		Fatigue:            game.FatigueLevel(t.AverageStamina()),
	}
}

// Scorers lists the goals in match order.
func Scorers(m *game.Match) []Scorer {
	goals := m.Events.Filter(game.EventGoal)
	out := make([]Scorer, 0, len(goals))
	for _, e := range goals {
		team := m.Team(e.Side)
		s := Scorer{
			Minute:   e.Minute(),
			Tick:     e.Tick,
			Side:     e.Side.String(),
			Team:     team.Name,
			PlayerID: e.PlayerID,
			Player:   "unknown",
		}
		if p := team.PlayerByID(e.PlayerID); p != nil {
			s.Player = p.Name
		}
		out = append(out, s)
	}
	return out
}

// Summarize collects everything the reports show.
func Summarize(m *game.Match) Summary {
	entries := m.Events.Entries()
	events := make([]KeyEvent, 0, len(entries))
	for _, e := range entries {
		events = append(events, KeyEvent{
			Tick:        e.Tick,
			Minute:      e.Minute(),
			Type:        e.Type.String(),
			Side:        e.Side.String(),
			Phase:       e.Phase.String(),
			PlayerID:    e.PlayerID,
			Action:      e.Action.String(),
			Result:      e.Result.String(),
			Description: e.Description,
		})
	}
	return Summary{
		MatchID:     m.ID,
		Finished:    m.Finished,
		TicksPlayed: m.TicksPlayed(),
		Winner:      m.Winner.String(),
		Outcome:     m.Outcome().Description,
		Home:        summarizeTeam(m.Home),
		Away:        summarizeTeam(m.Away),
		Scorers:     Scorers(m),
		Events:      events,
	}
}

// ExportJSON writes the match summary as indented JSON.
func ExportJSON(w io.Writer, m *game.Match) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Summarize(m)); err != nil {
		return fmt.Errorf("encode match summary: %w", err)
	}
	return nil
}

// Format renders the text report.
func Format(m *game.Match) string {
	s := Summarize(m)
	var b strings.Builder

	b.WriteString(rule + "\n")
	b.WriteString("MATCH REPORT\n")
	b.WriteString(rule + "\n\n")

	fmt.Fprintf(&b, "%s vs %s\n", s.Home.Name, s.Away.Name)
	fmt.Fprintf(&b, "Final score: %d - %d\n", s.Home.Score, s.Away.Score)
	switch m.Winner {
	case game.WinnerHome:
		fmt.Fprintf(&b, "Winner: %s\n", s.Home.Name)
	case game.WinnerAway:
		fmt.Fprintf(&b, "Winner: %s\n", s.Away.Name)
	case game.WinnerDraw:
		b.WriteString("Draw\n")
	default:
		b.WriteString("Result: match not finished\n")
	}
	b.WriteString("\n")

	if len(s.Scorers) > 0 {
		b.WriteString("Goals:\n")
		for _, g := range s.Scorers {
			fmt.Fprintf(&b, "  %2d' - %s: %s\n", g.Minute, g.Team, g.Player)
		}
		b.WriteString("\n")
	}

	b.WriteString("Statistics:\n")
	for _, t := range []TeamSummary{s.Home, s.Away} {
		fmt.Fprintf(&b, "  %s:\n", t.Name)
		fmt.Fprintf(&b, "    Shots: %d (on target: %d)\n", t.Shots, t.ShotsOnTarget)
		fmt.Fprintf(&b, "    Passes: %d/%d (%.1f%%)\n", t.PassesCompleted, t.PassesAttempted, t.PassAccuracy)
		fmt.Fprintf(&b, "    Dribbles: %d/%d\n", t.DribblesSuccessful, t.DribblesAttempted)
		fmt.Fprintf(&b, "    Tackles: %d/%d\n", t.TacklesSuccessful, t.TacklesAttempted)
		fmt.Fprintf(&b, "    Momentum: %s (%+d)\n", t.MomentumLabel, t.Momentum)
		fmt.Fprintf(&b, "    Stamina: %.1f (%s)\n", t.AverageStamina, t.Fatigue)
		b.WriteString("\n")
	}

	if entries := m.Events.Entries(); len(entries) > 0 {
		b.WriteString("Key events:\n")
		for i, e := range entries {
			if i == MaxKeyEvents {
				fmt.Fprintf(&b, "  ... %d more\n", len(entries)-MaxKeyEvents)
				break
			}
			fmt.Fprintf(&b, "  %2d' - %s: %s (%s) %s\n", e.Minute(), m.Team(e.Side).Name, e.Type, e.Result, e.Description)
		}
		b.WriteString("\n")
	}

	b.WriteString(rule + "\n")
	return b.String()
}

// Write renders the text report to w.
func Write(w io.Writer, m *game.Match) error {
	_, err := io.WriteString(w, Format(m))
	return err
}
