package game

// Phase is the coarse game state the attacking team is in.
type Phase int

const (
	PhaseBuildUp Phase = iota
	PhaseMidfield
	PhaseFinalThird
	PhaseTransition
	PhaseDefense
)

func (p Phase) String() string {
	switch p {
	case PhaseBuildUp:
		return "build_up"
	case PhaseMidfield:
		return "midfield"
	case PhaseFinalThird:
		return "final_third"
	case PhaseTransition:
		return "transition"
	case PhaseDefense:
		return "defense"
	default:
		return "unknown"
	}
}

// phaseSuccessors lists legal next phases. The first entry is the default
// advance when no rule in the decision tables matches.
var phaseSuccessors = [...][]Phase{
	PhaseBuildUp:    {PhaseMidfield, PhaseTransition},
	PhaseMidfield:   {PhaseFinalThird, PhaseTransition},
	PhaseFinalThird: {PhaseTransition},
	PhaseTransition: {PhaseBuildUp, PhaseMidfield, PhaseFinalThird, PhaseDefense},
	PhaseDefense:    {PhaseTransition, PhaseBuildUp},
}

// Successors returns the legal next phases of p.
func (p Phase) Successors() []Phase {
	if p < PhaseBuildUp || p > PhaseDefense {
		return nil
	}
	return phaseSuccessors[p]
}

// CanTransition reports whether to is a legal successor of p.
func (p Phase) CanTransition(to Phase) bool {
	for _, s := range p.Successors() {
		if s == to {
			return true
		}
	}
	return false
}

type phaseAdvance struct {
	phase  Phase
	action Action
}

// advanceTable maps a successful action in a phase to the phase it opens.
var advanceTable = map[phaseAdvance]Phase{
	{PhaseBuildUp, ActionPass}:      PhaseMidfield,
	{PhaseMidfield, ActionPass}:     PhaseFinalThird,
	{PhaseMidfield, ActionDribble}:  PhaseFinalThird,
	{PhaseFinalThird, ActionShoot}:  PhaseTransition,
	{PhaseDefense, ActionTackle}:    PhaseTransition,
	{PhaseDefense, ActionIntercept}: PhaseTransition,
}

// transitionTargets resolves the transition phase by the chosen restart.
var transitionTargets = map[Action]Phase{
	ActionQuickAttack:  PhaseFinalThird,
	ActionStableBuild:  PhaseBuildUp,
	ActionDefenseSetup: PhaseDefense,
}

// NextPhase decides the phase that follows current. action may be
// ActionNone when no action informs the decision.
func NextPhase(current Phase, succeeded bool, action Action) Phase {
	if current == PhaseTransition {
		if next, ok := transitionTargets[action]; ok {
			return next
		}
		return PhaseMidfield
	}
	if !succeeded {
		return PhaseTransition
	}
	if next, ok := advanceTable[phaseAdvance{current, action}]; ok {
		return next
	}
	if succ := current.Successors(); len(succ) > 0 {
		return succ[0]
	}
	return current
}

var baseTransitionProbability = [...]float64{
	PhaseBuildUp:    0.30,
	PhaseMidfield:   0.35,
	PhaseFinalThird: 0.40,
	PhaseTransition: 0.50,
	PhaseDefense:    0.30,
}

// TransitionProbability is the per-tick chance that the attacking team
// leaves the current phase, shaped by its tactics and average attributes.
// Always within [0.15, 0.50].
func TransitionProbability(p Phase, team *Team) float64 {
	prob := 0.3
	if p >= PhaseBuildUp && p <= PhaseDefense {
		prob = baseTransitionProbability[p]
	}
	tac := team.Tactics

	switch p {
	case PhaseBuildUp:
		if tac.PassStyle <= 3 {
			prob -= float64(4-tac.PassStyle) * 0.02
		} else if tac.PassStyle >= 7 {
			prob += float64(tac.PassStyle-6) * 0.02
		}
	case PhaseMidfield:
		prob += float64(tac.Attack-5) * 0.02
	case PhaseFinalThird:
		prob += float64(tac.Attack-5) * 0.03
	}

	avg := 5.0
	switch p {
	case PhaseBuildUp:
		avg = team.AverageAttribute(AttrPassing)
	case PhaseMidfield:
		avg = (team.AverageAttribute(AttrPassing) + team.AverageAttribute(AttrDribbling)) / 2
	case PhaseFinalThird:
		avg = team.AverageAttribute(AttrShooting)
	}
	prob += clamp((avg-5)*0.02, -0.1, 0.1)

	return clamp(prob, 0.15, 0.5)
}
