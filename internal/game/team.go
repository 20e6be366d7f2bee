package game

import "errors"

var ErrNoGoalkeeper = errors.New("team has no goalkeeper")

// Side distinguishes the two teams of a match.
type Side int

const (
	SideHome Side = iota
	SideAway
)

func (s Side) String() string {
	if s == SideAway {
		return "away"
	}
	return "home"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideHome {
		return SideAway
	}
	return SideHome
}

// TeamStats are the per-match counters. They only ever increase.
type TeamStats struct {
	Shots              int
	ShotsOnTarget      int
	PassesAttempted    int
	PassesCompleted    int
	TacklesAttempted   int
	TacklesSuccessful  int
	DribblesAttempted  int
	DribblesSuccessful int
}

// PassAccuracy is completed/attempted as a percentage, 0 when no passes.
func (s TeamStats) PassAccuracy() float64 {
	if s.PassesAttempted == 0 {
		return 0
	}
	return float64(s.PassesCompleted) / float64(s.PassesAttempted) * 100
}

// Team is one side's roster plus its match state.
type Team struct {
	ID        string
	Name      string
	Formation string
	Players   []*Player
	Tactics   Tactics
	Score     int
	Momentum  Momentum
	Stats     TeamStats
}

// NewTeam assembles a team. Unset tactic dials become neutral.
func NewTeam(id, name, formation string, players []*Player, tac Tactics) *Team {
	return &Team{
		ID:        id,
		Name:      name,
		Formation: formation,
		Players:   players,
		Tactics:   tac.WithDefaults(),
	}
}

// Goalkeeper returns the first goalkeeper in roster order.
func (t *Team) Goalkeeper() *Player {
	for _, p := range t.Players {
		if p.Position == Goalkeeper {
			return p
		}
	}
	return nil
}

// PlayerByID looks up a roster member.
func (t *Team) PlayerByID(id int) *Player {
	for _, p := range t.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PlayersByPosition returns the roster members playing pos, in order.
func (t *Team) PlayersByPosition(pos Position) []*Player {
	var out []*Player
	for _, p := range t.Players {
		if p.Position == pos {
			out = append(out, p)
		}
	}
	return out
}

// BallHolder returns the player with the possession flag, if any.
func (t *Team) BallHolder() *Player {
	for _, p := range t.Players {
		if p.HasBall {
			return p
		}
	}
	return nil
}

// clearBall drops every possession flag in the team.
func (t *Team) clearBall() {
	for _, p := range t.Players {
		p.HasBall = false
	}
}

// AverageAttribute is the mean raw value of a over the whole roster.
func (t *Team) AverageAttribute(a Attribute) float64 {
	if len(t.Players) == 0 {
		return 0
	}
	sum := 0
	for _, p := range t.Players {
		sum += p.Stat(a)
	}
	return float64(sum) / float64(len(t.Players))
}

// AverageStamina is the mean current stamina of the roster.
func (t *Team) AverageStamina() float64 {
	if len(t.Players) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range t.Players {
		sum += p.Stamina
	}
	return sum / float64(len(t.Players))
}
