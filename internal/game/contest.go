package game

// Attribute sets compared in a contest, per action. Anything unlisted falls
// back to spatial awareness (attacker) or awareness plus tackling (defender).
var (
	attackerAttributes = map[Action][]Attribute{
		ActionPass:       {AttrPassing, AttrSpatialAwareness},
		ActionDribble:    {AttrDribbling, AttrSpatialAwareness},
		ActionShoot:      {AttrShooting, AttrSpatialAwareness},
		ActionTackle:     {AttrTackling, AttrSpatialAwareness},
		ActionIntercept:  {AttrInterception, AttrSpatialAwareness},
		ActionTransition: {AttrPassing, AttrSpatialAwareness},
	}
	defenderAttributes = map[Action][]Attribute{
		ActionPass:      {AttrInterception, AttrSpatialAwareness},
		ActionDribble:   {AttrTackling, AttrSpatialAwareness},
		ActionShoot:     {AttrTackling, AttrSpatialAwareness},
		ActionTackle:    {AttrDribbling, AttrSpatialAwareness},
		ActionIntercept: {AttrPassing, AttrSpatialAwareness},
	}
	defaultAttackerAttributes = []Attribute{AttrSpatialAwareness}
	defaultDefenderAttributes = []Attribute{AttrSpatialAwareness, AttrTackling}
)

const (
	minSuccessProbability = 0.2
	maxSuccessProbability = 0.8
	contestScale          = 0.03
	maxContestSwing       = 0.3
)

// Contestant is one side of a contest: the player plus the team context
// that scales them.
type Contestant struct {
	Player     *Player
	Tactics    Tactics
	Momentum   Momentum
	SecondHalf bool
}

func (c Contestant) score(attrs []Attribute, a Action, s Situation) float64 {
	total := 0.0
	for _, attr := range attrs {
		total += c.Player.Weighted(attr)
	}
	total -= float64(StaminaPenalty(c.Player.Stamina)*len(attrs)) * 0.5
	total *= TacticsBonus(c.Tactics, a, s)
	total *= c.Momentum.Bonus(c.SecondHalf)
	return total
}

// AttackerScore rates the side attempting the action.
func AttackerScore(c Contestant, a Action, s Situation) float64 {
	attrs, ok := attackerAttributes[a]
	if !ok {
		attrs = defaultAttackerAttributes
	}
	total := c.score(attrs, a, s)

	switch a {
	case ActionPass:
		total -= float64(s.Distance)*2 + float64(s.Pressing)*3
	case ActionShoot:
		total -= float64(s.Distance)*5 + float64(s.Pressing)*4
	case ActionDribble:
		total -= float64(s.Pressing) * 2
	}
	return max(total, 0)
}

// DefenderScore rates the side opposing the action.
func DefenderScore(c Contestant, a Action, s Situation) float64 {
	attrs, ok := defenderAttributes[a]
	if !ok {
		attrs = defaultDefenderAttributes
	}
	total := c.score(attrs, a, s)
	total += float64(s.Positioning) * 2
	return max(total, 0)
}

// ContestScore is attacker minus defender; an unopposed action scores on
// the attacker alone.
func ContestScore(attacker Contestant, defender *Contestant, a Action, s Situation) float64 {
	score := AttackerScore(attacker, a, s)
	if defender == nil || defender.Player == nil {
		return score
	}
	return score - DefenderScore(*defender, a, s)
}

// SuccessProbability maps a contest score to a chance of success, always
// within [0.2, 0.8].
func SuccessProbability(score float64) float64 {
	swing := clamp(score*contestScale, -maxContestSwing, maxContestSwing)
	return clamp(0.5+swing, minSuccessProbability, maxSuccessProbability)
}

// ResolveContest decides the contest with one uniform draw u in [0,1).
func ResolveContest(score, u float64) bool {
	return u < SuccessProbability(score)
}

// GoalProbability is the chance a shot that beat its defender ends in the
// net. A goalkeeper opponent lowers it further.
func GoalProbability(shooter, opponent *Player) float64 {
	p := 0.3 + (shooter.Weighted(AttrShooting)-5)*0.05
	if opponent != nil && opponent.Position == Goalkeeper {
		p -= (opponent.Weighted(AttrTackling)*1.5 - 5) * 0.03
	}
	return clamp(p, 0.1, 0.6)
}
