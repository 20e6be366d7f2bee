package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const (
	TicksPerMinute = 60
	TicksPerHalf   = 45 * TicksPerMinute
	TicksPerMatch  = 2 * TicksPerHalf
)

var ErrInvalidTeam = errors.New("invalid team")

// Match is the complete state of one game. A Simulator owns it while the
// game runs; afterwards it is read-only.
type Match struct {
	ID        string
	Tick      int
	Half      int
	Home      *Team
	Away      *Team
	Phase     Phase
	Attacking Side
	BallZone  Zone
	Events    *EventLog
	Finished  bool
	Winner    Winner

	ballHolder *Player
	played     int
}

// NewMatch pairs two teams. It fails fast on rosters the engine cannot
// play: a missing team, a team without a goalkeeper, or a player whose
// position is unknown.
func NewMatch(home, away *Team) (*Match, error) {
	for _, t := range []*Team{home, away} {
		if t == nil {
			return nil, fmt.Errorf("%w: nil team", ErrInvalidTeam)
		}
		if len(t.Players) == 0 {
			return nil, fmt.Errorf("%w: %s has no players", ErrInvalidTeam, t.Name)
		}
		for _, p := range t.Players {
			if _, err := PositionWeights(p.Position); err != nil {
				return nil, fmt.Errorf("%w: %s player %d: %w", ErrInvalidTeam, t.Name, p.ID, err)
			}
		}
		if t.Goalkeeper() == nil {
			return nil, fmt.Errorf("%w: %s", ErrNoGoalkeeper, t.Name)
		}
	}
	return &Match{
		ID:     uuid.NewString(),
		Half:   1,
		Home:   home,
		Away:   away,
		Phase:  PhaseBuildUp,
		Events: NewEventLog(),
	}, nil
}

// Team returns the team playing on side s.
func (m *Match) Team(s Side) *Team {
	if s == SideAway {
		return m.Away
	}
	return m.Home
}

// AttackingTeam is the team in possession.
func (m *Match) AttackingTeam() *Team { return m.Team(m.Attacking) }

// DefendingTeam is the team out of possession.
func (m *Match) DefendingTeam() *Team { return m.Team(m.Attacking.Opponent()) }

// BallHolder returns the player in possession, nil for a loose ball.
func (m *Match) BallHolder() *Player { return m.ballHolder }

// BallHolderID returns the id of the player in possession.
func (m *Match) BallHolderID() (int, bool) {
	if m.ballHolder == nil {
		return 0, false
	}
	return m.ballHolder.ID, true
}

// setBallHolder gives p the ball and moves the ball to p's zone. A nil p
// leaves the ball loose where it is.
func (m *Match) setBallHolder(p *Player) {
	m.Home.clearBall()
	m.Away.clearBall()
	m.ballHolder = p
	if p != nil {
		p.HasBall = true
		m.BallZone = p.Zone
	}
}

// SecondHalf reports whether the second half has started.
func (m *Match) SecondHalf() bool { return m.Half == 2 }

// Minute is the match clock minute of the current tick.
func (m *Match) Minute() int { return m.Tick / TicksPerMinute }

// TicksPlayed is how many ticks have been simulated.
func (m *Match) TicksPlayed() int { return m.played }

// Score returns the home and away goals.
func (m *Match) Score() (int, int) { return m.Home.Score, m.Away.Score }

// Outcome summarises the result; only meaningful once Finished.
func (m *Match) Outcome() OutcomeReason {
	return DetermineOutcome(m.Home.Score, m.Away.Score)
}
