package game

var baseStaminaCost = map[Action]float64{
	ActionPass:           0.5,
	ActionDribble:        1.5,
	ActionShoot:          1.0,
	ActionTackle:         2.0,
	ActionIntercept:      1.5,
	ActionTransitionDash: 2.5,
}

const (
	defaultStaminaCost = 1.0
	minStaminaCost     = 0.1
	halfTimeRecovery   = 20.0
)

// StaminaCost is what one action takes out of a player with the given
// stamina attribute, playing under tac.
func StaminaCost(a Action, tac Tactics, staminaAttr int) float64 {
	cost, ok := baseStaminaCost[a]
	if !ok {
		cost = defaultStaminaCost
	}

	switch a {
	case ActionTackle, ActionIntercept, ActionDribble:
		cost *= 1 + float64(tac.Pressing-5)*0.15
	}
	switch a {
	case ActionDribble, ActionShoot, ActionTransitionDash:
		cost *= 1 + float64(tac.Attack-5)*0.1
	}
	if a == ActionTransitionDash {
		cost *= 1 + float64(tac.TransitionSpeed-5)*0.1
	}

	cost *= max(1-float64(staminaAttr-5)*0.05, 0.7)
	return max(cost, minStaminaCost)
}

// Spend deducts the cost of a from the player's stamina, never below zero.
func (p *Player) Spend(a Action, tac Tactics) float64 {
	cost := StaminaCost(a, tac, p.Stat(AttrStamina))
	p.Stamina = max(0, p.Stamina-cost)
	return cost
}

// StaminaPenalty is the step penalty applied per attribute in a contest.
func StaminaPenalty(stamina float64) int {
	switch {
	case stamina >= 70:
		return 0
	case stamina >= 50:
		return 1
	case stamina >= 30:
		return 2
	case stamina >= 10:
		return 3
	default:
		return 4
	}
}

// HalfTimeRecovery returns stamina after the interval.
func HalfTimeRecovery(stamina float64) float64 {
	return min(stamina+halfTimeRecovery, maxStamina)
}

// ActionFrequencyMultiplier expresses how often a tiring player still gets
// involved: 1.0 when fresh, 0.8 when tired, 0.5 when exhausted.
func ActionFrequencyMultiplier(stamina float64) float64 {
	switch {
	case stamina >= 50:
		return 1.0
	case stamina >= 30:
		return 0.8
	default:
		return 0.5
	}
}

// FatigueLevel labels a stamina value for reports.
func FatigueLevel(stamina float64) string {
	switch ActionFrequencyMultiplier(stamina) {
	case 1.0:
		return "fresh"
	case 0.8:
		return "tired"
	default:
		return "exhausted"
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
