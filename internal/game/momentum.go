package game

// MomentumEvent is a match incident that swings a team's confidence.
type MomentumEvent int

const (
	MomentumGoalScored MomentumEvent = iota
	MomentumGoalConceded
	MomentumMajorChanceCreated
	MomentumMajorChanceMissed
	MomentumMistake
	MomentumConsecutiveSuccess
)

var momentumDelta = map[MomentumEvent]int{
	MomentumGoalScored:         3,
	MomentumGoalConceded:       -3,
	MomentumMajorChanceCreated: 1,
	MomentumMajorChanceMissed:  -1,
	MomentumMistake:            -1,
	MomentumConsecutiveSuccess: 1,
}

const (
	minMomentum = -10
	maxMomentum = 10
)

// Momentum is a team's confidence, always within [-10, 10].
type Momentum int

// Apply returns the momentum after ev. Unknown events change nothing.
func (m Momentum) Apply(ev MomentumEvent) Momentum {
	v := int(m) + momentumDelta[ev]
	return Momentum(min(max(v, minMomentum), maxMomentum))
}

// Bonus is the contest multiplier. Momentum matters more after the break.
func (m Momentum) Bonus(secondHalf bool) float64 {
	factor := 0.5
	if secondHalf {
		factor = 0.7
	}
	return 1 + float64(m)*factor*0.01
}

// Describe labels the momentum for reports.
func (m Momentum) Describe() string {
	switch {
	case m >= 7:
		return "very high"
	case m >= 4:
		return "high"
	case m >= 1:
		return "slightly positive"
	case m == 0:
		return "neutral"
	case m >= -3:
		return "slightly negative"
	case m >= -6:
		return "low"
	default:
		return "very low"
	}
}
