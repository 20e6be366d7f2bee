package game

// Action is something a player attempts on one tick.
type Action int

const (
	ActionNone Action = iota
	ActionPass
	ActionPassLong
	ActionPassToMidfield
	ActionPassToForward
	ActionDribble
	ActionShoot
	ActionShootLong
	ActionCross
	ActionQuickAttack
	ActionStableBuild
	ActionDefenseSetup
	ActionTackle
	ActionIntercept
	ActionPositioning
	// The following are never drawn from the catalogue; they exist for the
	// tactics and stamina models.
	ActionTransition
	ActionTransitionDash
	ActionSpaceSense
	ActionSidePlay
)

var actionNames = [...]string{
	ActionNone:           "none",
	ActionPass:           "pass",
	ActionPassLong:       "pass_long",
	ActionPassToMidfield: "pass_to_midfield",
	ActionPassToForward:  "pass_to_forward",
	ActionDribble:        "dribble",
	ActionShoot:          "shoot",
	ActionShootLong:      "shoot_long",
	ActionCross:          "cross",
	ActionQuickAttack:    "quick_attack",
	ActionStableBuild:    "stable_build",
	ActionDefenseSetup:   "defense_setup",
	ActionTackle:         "tackle",
	ActionIntercept:      "intercept",
	ActionPositioning:    "positioning",
	ActionTransition:     "transition",
	ActionTransitionDash: "transition_dash",
	ActionSpaceSense:     "space_sense",
	ActionSidePlay:       "side_play",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// IsPassFamily reports whether a moves the ball to a teammate.
func (a Action) IsPassFamily() bool {
	switch a {
	case ActionPass, ActionPassLong, ActionPassToMidfield, ActionPassToForward:
		return true
	}
	return false
}

// IsContested reports whether the action is resolved against an opponent
// when one can be found.
func (a Action) IsContested() bool {
	return a == ActionPass || a == ActionDribble || a == ActionShoot
}

type weightedAction struct {
	action Action
	weight float64
}

// actionCatalogue holds the base weights per phase. Order matters: the
// sampler walks it cumulatively.
var actionCatalogue = [...][]weightedAction{
	PhaseBuildUp: {
		{ActionPass, 0.5},
		{ActionPassLong, 0.2},
		{ActionDribble, 0.1},
		{ActionPassToMidfield, 0.2},
	},
	PhaseMidfield: {
		{ActionPass, 0.4},
		{ActionDribble, 0.3},
		{ActionPassToForward, 0.2},
		{ActionShootLong, 0.1},
	},
	PhaseFinalThird: {
		{ActionPass, 0.3},
		{ActionDribble, 0.2},
		{ActionShoot, 0.3},
		{ActionCross, 0.2},
	},
	PhaseTransition: {
		{ActionQuickAttack, 0.4},
		{ActionStableBuild, 0.3},
		{ActionDefenseSetup, 0.3},
	},
	PhaseDefense: {
		{ActionTackle, 0.4},
		{ActionIntercept, 0.4},
		{ActionPositioning, 0.2},
	},
}

// ActionWeights returns the normalised action distribution for a phase
// under the given tactics, in catalogue order.
func ActionWeights(p Phase, tac Tactics) ([]Action, []float64) {
	if p < PhaseBuildUp || p > PhaseDefense {
		return nil, nil
	}
	base := actionCatalogue[p]
	actions := make([]Action, len(base))
	weights := make([]float64, len(base))

	attack := float64(tac.Attack - 5)
	style := float64(tac.PassStyle - 5)
	total := 0.0
	for i, wa := range base {
		w := wa.weight
		switch wa.action {
		case ActionDribble, ActionShoot, ActionQuickAttack:
			w *= 1 + attack*0.1
		case ActionPass, ActionStableBuild:
			w *= 1 - attack*0.05
		}
		switch wa.action {
		case ActionPassLong:
			w *= 1 + style*0.1
		case ActionPass:
			w *= 1 - style*0.05
		}
		actions[i] = wa.action
		weights[i] = w
		total += w
	}
	if total > 0 {
		for i := range weights {
			weights[i] /= total
		}
	}
	return actions, weights
}

// SelectAction draws one action for the attacking team in phase p.
func SelectAction(p Phase, tac Tactics, r Random) Action {
	actions, weights := ActionWeights(p, tac)
	if len(actions) == 0 {
		return ActionNone
	}
	return actions[sampleIndex(weights, r.Float64())]
}

// Situation carries the context of one contest.
type Situation struct {
	Distance    int // zones between ball and pass target; pass family only
	Pressing    int // defending team's pressing dial
	Positioning int // defender positioning quality
}

const neutralPositioning = 5

// passReferenceZone is the centre of the pitch. Pass difficulty is measured
// from the ball to it whatever the phase.
const passReferenceZone Zone = 8

// passTarget is where a completed pass sends the ball in phase p.
func passTarget(p Phase) Zone {
	switch p {
	case PhaseFinalThird:
		return 14
	case PhaseMidfield:
		return 8
	default:
		return 5
	}
}

// BuildSituation derives the contest context from the match state.
func BuildSituation(m *Match, a Action) Situation {
	s := Situation{
		Pressing:    m.DefendingTeam().Tactics.Pressing,
		Positioning: neutralPositioning,
	}
	if a.IsPassFamily() {
		s.Distance = Distance(m.BallZone, passReferenceZone)
	}
	return s
}

// SelectActor picks who performs the action: the ball holder, else the
// first attacking player in the ball zone, else the first player in the
// phase's zones.
func SelectActor(m *Match) *Player {
	if h := m.BallHolder(); h != nil {
		return h
	}
	team := m.AttackingTeam()
	if ps := PlayersInZone(team, m.BallZone); len(ps) > 0 {
		return ps[0]
	}
	if ps := PlayersForPhase(team, m.Phase); len(ps) > 0 {
		return ps[0]
	}
	return nil
}

// SelectOpponent picks the defender contesting a pass, dribble or shot: the
// first defending player in the ball zone, else the nearest one. Other
// actions are unopposed.
func SelectOpponent(m *Match, a Action) *Player {
	if !a.IsContested() {
		return nil
	}
	team := m.DefendingTeam()
	if ps := PlayersInZone(team, m.BallZone); len(ps) > 0 {
		return ps[0]
	}
	return NearestPlayer(team, m.BallZone, 0)
}
