package game

import (
	"errors"
	"fmt"
)

var ErrTacticOutOfRange = errors.New("tactic dial out of range")

const (
	minDial     = 1
	maxDial     = 10
	neutralDial = 5
)

// Tactics are the six coaching dials, each 1..10 with 5 neutral.
type Tactics struct {
	Attack          int
	PassStyle       int // 1 short ... 10 long
	Pressing        int
	DefenseLine     int // 1 deep ... 10 high
	TransitionSpeed int
	Width           int
}

// DefaultTactics has every dial at neutral.
func DefaultTactics() Tactics {
	return Tactics{neutralDial, neutralDial, neutralDial, neutralDial, neutralDial, neutralDial}
}

// WithDefaults replaces unset (zero) dials with neutral.
func (t Tactics) WithDefaults() Tactics {
	for _, d := range t.dials() {
		if *d == 0 {
			*d = neutralDial
		}
	}
	return t
}

// Validate checks every dial is within 1..10.
func (t Tactics) Validate() error {
	names := [...]string{"attack", "pass_style", "pressing", "defense_line", "transition_speed", "width"}
	for i, d := range t.dials() {
		if *d < minDial || *d > maxDial {
			return fmt.Errorf("%w: %s=%d (must be %d..%d)", ErrTacticOutOfRange, names[i], *d, minDial, maxDial)
		}
	}
	return nil
}

func (t *Tactics) dials() []*int {
	return []*int{&t.Attack, &t.PassStyle, &t.Pressing, &t.DefenseLine, &t.TransitionSpeed, &t.Width}
}

// AttackBonus scales attacking actions; dribbles and shots react most.
func AttackBonus(attack int, a Action) float64 {
	base := float64(attack-5) * 0.1
	switch a {
	case ActionDribble:
		return 1 + base*2
	case ActionShoot:
		return 1 + base*1.5
	case ActionPass:
		return 1 + base*0.5
	default:
		return 1 + base
	}
}

// PassStyleBonus favours short passes for a short style and long passes
// for a long style. Styles 4..6 are neutral.
func PassStyleBonus(style, distance int) float64 {
	switch {
	case style <= 3:
		return 1 + float64(4-style)*0.05 - float64(distance)*0.02
	case style >= 7:
		return 1 - float64(style-6)*0.03 + float64(distance)*0.01
	default:
		return 1
	}
}

// PressingBonus strengthens ball-winning actions and weakens passes made
// against the press.
func PressingBonus(pressing int, a Action) float64 {
	base := float64(pressing-5) * 0.04
	switch a {
	case ActionIntercept:
		return 1 + base*3
	case ActionTackle:
		return 1 + base*2
	case ActionPass:
		return 1 - base*0.5
	default:
		return 1 + base
	}
}

// DefenseLineBonus rewards a high line while attacking and a deep line
// while defending.
func DefenseLineBonus(line int, attacking bool) float64 {
	if attacking {
		return 1 + float64(line-5)*0.05
	}
	return 1 - float64(line-5)*0.03
}

// TransitionSpeedBonus scales transition play.
func TransitionSpeedBonus(speed int) float64 {
	return 1 + float64(speed-5)*0.02
}

// WidthBonus scales wide play.
func WidthBonus(width int, a Action) float64 {
	base := float64(width-5) * 0.03
	switch a {
	case ActionSpaceSense:
		return 1 + base
	case ActionSidePlay:
		return 1 + base*2
	default:
		return 1
	}
}

// TacticsBonus multiplies every dial whose action set includes a. The
// defense line is reported on its own and never enters a contest.
func TacticsBonus(t Tactics, a Action, s Situation) float64 {
	bonus := AttackBonus(t.Attack, a)

	switch a {
	case ActionPass:
		bonus *= PassStyleBonus(t.PassStyle, s.Distance)
	case ActionTackle, ActionIntercept:
		bonus *= PressingBonus(t.Pressing, a)
	case ActionTransition:
		bonus *= TransitionSpeedBonus(t.TransitionSpeed)
	case ActionSpaceSense, ActionSidePlay:
		bonus *= WidthBonus(t.Width, a)
	}
	return bonus
}
