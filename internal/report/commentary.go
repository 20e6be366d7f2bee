package report

import (
	"fmt"
	"io"
	"time"

	"github.com/hakunamta00700/soccer-sim-game/internal/game"
)

// Commentary narrates a match as it is simulated. It implements
// game.Observer.
type Commentary struct {
	w     io.Writer
	total time.Duration

	now   func() time.Time
	sleep func(time.Duration)
	start time.Time
}

// CommentaryOption configures a Commentary.
type CommentaryOption func(*Commentary)

// WithPacing spreads the commentary over roughly d of wall-clock time.
// Zero disables pacing.
func WithPacing(d time.Duration) CommentaryOption {
	return func(c *Commentary) { c.total = d }
}

// WithClock replaces the wall clock used for pacing.
func WithClock(now func() time.Time, sleep func(time.Duration)) CommentaryOption {
	return func(c *Commentary) {
		c.now = now
		c.sleep = sleep
	}
}

func NewCommentary(w io.Writer, opts ...CommentaryOption) *Commentary {
	c := &Commentary{w: w, now: time.Now, sleep: time.Sleep}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ game.Observer = (*Commentary)(nil)

// clock formats a tick as minutes and seconds of match time.
func clock(tick int) string {
	return fmt.Sprintf("[%02d:%02d]", tick/game.TicksPerMinute, tick%game.TicksPerMinute)
}

func (c *Commentary) line(tick int, format string, args ...any) {
	fmt.Fprintf(c.w, "%s %s\n", clock(tick), fmt.Sprintf(format, args...))
}

// pace blocks until the wall clock catches up with tick.
func (c *Commentary) pace(tick int) {
	if c.total <= 0 {
		return
	}
	due := c.start.Add(c.total * time.Duration(tick) / game.TicksPerMatch)
	if wait := due.Sub(c.now()); wait > 0 {
		c.sleep(wait)
	}
}

func who(m *game.Match, side game.Side, p *game.Player) string {
	team := m.Team(side).Name
	if p == nil {
		return team
	}
	return fmt.Sprintf("%s #%d %s", team, p.ID, p.Name)
}

func scoreline(m *game.Match) string {
	return fmt.Sprintf("%s %d - %d %s", m.Home.Name, m.Home.Score, m.Away.Score, m.Away.Name)
}

func (c *Commentary) OnKickoff(m *game.Match) {
	c.start = c.now()
	fmt.Fprintf(c.w, "=== %s vs %s ===\n", m.Home.Name, m.Away.Name)
	fmt.Fprintf(c.w, "%s (%s) against %s (%s)\n", m.Home.Name, m.Home.Formation, m.Away.Name, m.Away.Formation)
	c.line(0, "Kick-off!")
}

func (c *Commentary) OnAction(m *game.Match, r game.ActionReport) {
	name := who(m, r.Side, r.Actor)
	switch {
	case r.Action == game.ActionShoot:
		c.pace(r.Tick)
		c.line(r.Tick, "%s shoots!", name)
		switch {
		case r.Goal:
			c.line(r.Tick, "GOAL!!! %s", scoreline(m))
		case r.Saved:
			c.line(r.Tick, "Saved by the goalkeeper.")
		default:
			c.line(r.Tick, "Wide of the post.")
		}
	case r.Action == game.ActionDribble:
		c.pace(r.Tick)
		if r.Success {
			c.line(r.Tick, "%s dribbles past the defender.", name)
		} else {
			c.line(r.Tick, "%s tries to dribble but loses the ball.", name)
		}
	case r.Action.IsPassFamily() && r.Phase == game.PhaseFinalThird:
		c.pace(r.Tick)
		if r.Success {
			c.line(r.Tick, "%s threads a dangerous ball into the box!", name)
		} else {
			c.line(r.Tick, "%s's pass goes astray.", name)
		}
	case r.Action == game.ActionTackle:
		c.pace(r.Tick)
		if r.Success {
			c.line(r.Tick, "%s wins a tackle.", name)
		} else {
			c.line(r.Tick, "%s goes in for a tackle and misses.", name)
		}
	case r.Action == game.ActionIntercept:
		c.pace(r.Tick)
		if r.Success {
			c.line(r.Tick, "%s reads the pass and intercepts.", name)
		} else {
			c.line(r.Tick, "%s can't cut out the pass.", name)
		}
	}
}

func (c *Commentary) OnHalfTime(m *game.Match) {
	c.pace(game.TicksPerHalf)
	c.line(game.TicksPerHalf, "Half time: %s", scoreline(m))
}

func (c *Commentary) OnFullTime(m *game.Match) {
	c.pace(game.TicksPerMatch)
	c.line(m.Tick, "Full time: %s (%s)", scoreline(m), m.Outcome().Description)
}
