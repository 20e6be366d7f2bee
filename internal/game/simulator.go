package game

import (
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/metric"
)

// turnoverChance is how often a failed pass or dribble loses the ball.
const turnoverChance = 0.3

// Simulator plays matches tick by tick. One Simulator drives one match at a
// time; run independent matches on independent Simulators.
type Simulator struct {
	rng       Random
	seed      int64
	seeded    bool
	logger    *slog.Logger
	observers []Observer
	meter     metric.Meter
	metrics   *simMetrics
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithSeed makes the run reproducible.
func WithSeed(seed int64) Option {
	return func(s *Simulator) {
		s.rng = NewRandom(seed)
		s.seed = seed
		s.seeded = true
	}
}

// WithRandom plugs in a custom uniform source.
func WithRandom(r Random) Option {
	return func(s *Simulator) {
		s.rng = r
		s.seeded = true
	}
}

// WithLogger sets the structured logger. Defaults to discarding.
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithObserver registers an observer; may be given more than once.
func WithObserver(o Observer) Option {
	return func(s *Simulator) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// WithMeter overrides the OpenTelemetry meter. Defaults to the global one.
func WithMeter(m metric.Meter) Option {
	return func(s *Simulator) {
		s.meter = m
	}
}

// NewSimulator builds a simulator. Without WithSeed or WithRandom a fresh
// seed is drawn from crypto/rand; Seed reports it.
func NewSimulator(opts ...Option) (*Simulator, error) {
	s := &Simulator{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(s)
	}
	if !s.seeded {
		seed, err := NewSeed()
		if err != nil {
			return nil, err
		}
		s.rng = NewRandom(seed)
		s.seed = seed
	}
	if s.meter == nil {
		s.meter = meter()
	}
	sm, err := newSimMetrics(s.meter)
	if err != nil {
		return nil, err
	}
	s.metrics = sm
	return s, nil
}

// Seed is the seed the simulator was built with; 0 under WithRandom.
func (s *Simulator) Seed() int64 { return s.seed }

// Simulate plays a full match between home and away.
func (s *Simulator) Simulate(home, away *Team) (*Match, error) {
	m, err := s.Start(home, away)
	if err != nil {
		return nil, err
	}
	for s.Step(m) {
	}
	return m, nil
}

// Start creates the match and kicks off. Drive it with Step.
func (s *Simulator) Start(home, away *Team) (*Match, error) {
	m, err := NewMatch(home, away)
	if err != nil {
		return nil, fmt.Errorf("start match: %w", err)
	}
	s.restart(m, SideHome)
	s.logger.Info("kickoff",
		"match", m.ID,
		"home", home.Name,
		"away", away.Name,
		"seed", s.seed)
	for _, o := range s.observers {
		o.OnKickoff(m)
	}
	return m, nil
}

// Step simulates the next tick. It returns false once the match is over.
func (s *Simulator) Step(m *Match) bool {
	if m.Finished {
		return false
	}
	m.Tick = m.played
	if m.Tick == TicksPerHalf {
		s.halfTime(m)
	}

	s.tick(m)

	m.played++
	if m.played == TicksPerMatch {
		s.fullTime(m)
		return false
	}
	return true
}

func (s *Simulator) tick(m *Match) {
	team := m.AttackingTeam()

	if chance(s.rng, TransitionProbability(m.Phase, team)) {
		next := NextPhase(m.Phase, true, ActionNone)
		s.logger.Debug("phase change",
			"tick", m.Tick,
			"side", m.Attacking,
			"from", m.Phase,
			"to", next)
		m.Phase = next
	}

	action := SelectAction(m.Phase, team.Tactics, s.rng)
	actor := SelectActor(m)
	if actor == nil {
		return
	}
	opponent := SelectOpponent(m, action)

	sit := BuildSituation(m, action)
	att := Contestant{Player: actor, Tactics: team.Tactics, Momentum: team.Momentum, SecondHalf: m.SecondHalf()}
	var def *Contestant
	if opponent != nil {
		dt := m.DefendingTeam()
		def = &Contestant{Player: opponent, Tactics: dt.Tactics, Momentum: dt.Momentum, SecondHalf: m.SecondHalf()}
	}
	score := ContestScore(att, def, action, sit)
	success := ResolveContest(score, s.rng.Float64())

	r := s.apply(m, action, actor, opponent, success)
	s.record(m, r)
}

// apply carries out the consequences of an attempted action.
func (s *Simulator) apply(m *Match, action Action, actor, opponent *Player, success bool) ActionReport {
	side := m.Attacking
	att := m.AttackingTeam()
	def := m.DefendingTeam()
	r := ActionReport{
		Tick:     m.Tick,
		Phase:    m.Phase,
		Side:     side,
		Action:   action,
		Actor:    actor,
		Opponent: opponent,
		From:     m.BallZone,
		Success:  success,
	}

	actor.Spend(action, att.Tactics)
	if opponent != nil {
		opponent.Spend(action, def.Tactics)
	}

	switch action {
	case ActionShoot:
		att.Stats.Shots++
		if success {
			att.Stats.ShotsOnTarget++
		}
	case ActionPass:
		att.Stats.PassesAttempted++
		if success {
			att.Stats.PassesCompleted++
		}
	case ActionDribble:
		att.Stats.DribblesAttempted++
		if success {
			att.Stats.DribblesSuccessful++
		}
	case ActionTackle:
		def.Stats.TacklesAttempted++
		if success {
			def.Stats.TacklesSuccessful++
		}
	}

	switch {
	case action == ActionShoot && success:
		if chance(s.rng, GoalProbability(actor, opponent)) {
			att.Score++
			att.Momentum = att.Momentum.Apply(MomentumGoalScored)
			def.Momentum = def.Momentum.Apply(MomentumGoalConceded)
			r.Goal = true
			r.Turnover = true
			s.logger.Info("goal",
				"tick", m.Tick,
				"minute", m.Minute(),
				"team", att.Name,
				"scorer", actor.Name,
				"score", fmt.Sprintf("%d-%d", m.Home.Score, m.Away.Score))
			s.restart(m, side.Opponent())
		} else {
			r.Saved = true
		}

	case action == ActionShoot:
		r.Turnover = true
		s.restart(m, side.Opponent())

	case action.IsPassFamily() && success:
		target := passTarget(m.Phase)
		var receiver *Player
		if ps := PlayersInZone(att, target); len(ps) > 0 {
			receiver = ps[0]
		}
		m.BallZone = target
		m.setBallHolder(receiver)

	case action == ActionDribble && success:
		if m.Phase != PhaseFinalThird && actor.Zone.Row() < ZoneRows-1 {
			actor.Zone += ZoneCols
		}
		m.setBallHolder(actor)

	case (action == ActionTackle || action == ActionIntercept) && success && opponent != nil:
		m.Attacking = side.Opponent()
		m.Phase = PhaseTransition
		m.setBallHolder(opponent)
		r.Turnover = true

	case (action == ActionPass || action == ActionDribble) && !success:
		if chance(s.rng, turnoverChance) {
			att.Momentum = att.Momentum.Apply(MomentumMistake)
			m.Attacking = side.Opponent()
			m.Phase = PhaseTransition
			m.setBallHolder(nil)
			r.Turnover = true
		}
	}

	r.To = m.BallZone
	return r
}

// record logs key incidents and notifies observers and metrics.
func (s *Simulator) record(m *Match, r ActionReport) {
	e := Event{
		Tick:     r.Tick,
		Phase:    r.Phase,
		Side:     r.Side,
		PlayerID: r.Actor.ID,
		Action:   r.Action,
		Result:   ResultFailure,
	}
	if r.Success {
		e.Result = ResultSuccess
	}

	logged := true
	switch {
	case r.Goal:
		e.Type = EventGoal
		e.Description = fmt.Sprintf("%s scores", r.Actor.Name)
	case r.Action == ActionShoot:
		e.Type = EventShot
		e.Result = ResultFailure
		if r.Saved {
			e.Description = fmt.Sprintf("%s on target, saved", r.Actor.Name)
		} else {
			e.Description = fmt.Sprintf("%s off target", r.Actor.Name)
		}
	case r.Action == ActionTackle:
		e.Type = EventTackle
		e.Description = fmt.Sprintf("%s tackles", r.Actor.Name)
	case r.Action == ActionIntercept:
		e.Type = EventIntercept
		e.Description = fmt.Sprintf("%s intercepts", r.Actor.Name)
	default:
		logged = false
	}
	if logged {
		m.Events.Add(e)
	}

	s.metrics.recordAction(r)
	for _, o := range s.observers {
		o.OnAction(m, r)
	}
}

// restart hands a dead ball to side's goalkeeper: that side lines up for
// build-up and the other side for defense.
func (s *Simulator) restart(m *Match, side Side) {
	m.Attacking = side
	m.Phase = PhaseBuildUp
	PositionTeam(m.Team(side), PhaseBuildUp)
	PositionTeam(m.Team(side.Opponent()), PhaseDefense)
	m.setBallHolder(m.Team(side).Goalkeeper())
}

func (s *Simulator) halfTime(m *Match) {
	m.Half = 2
	for _, t := range []*Team{m.Home, m.Away} {
		for _, p := range t.Players {
			p.Stamina = HalfTimeRecovery(p.Stamina)
		}
	}
	holder, _ := m.BallHolderID()
	s.logger.Info("half time",
		"match", m.ID,
		"score", fmt.Sprintf("%d-%d", m.Home.Score, m.Away.Score),
		"attacking", m.Attacking,
		"holder", holder)
	for _, o := range s.observers {
		o.OnHalfTime(m)
	}
}

func (s *Simulator) fullTime(m *Match) {
	m.Finished = true
	m.Winner = m.Outcome().Winner
	s.metrics.recordMatch(m)
	s.logger.Info("full time",
		"match", m.ID,
		"score", fmt.Sprintf("%d-%d", m.Home.Score, m.Away.Score),
		"winner", m.Winner,
		"events", m.Events.Len())
	for _, o := range s.observers {
		o.OnFullTime(m)
	}
}
