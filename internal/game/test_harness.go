package game

import "fmt"

// TeamFixture builds ready-to-play teams without a team file. It is used by
// tests and by the batch report.
type TeamFixture struct {
	id        string
	name      string
	formation string
	positions []Position
	tactics   Tactics
	attrs     func(i int, pos Position) Attributes
	stamina   float64
}

// fixtureOptionKind controls the pass in which an option is applied.
type fixtureOptionKind int

const (
	fixtureOptShape  fixtureOptionKind = iota // roster shape: applied first
	fixtureOptPlayer                          // per-player values: applied once the shape is known
)

// FixtureOption is a builder step applied to a TeamFixture.
type FixtureOption struct {
	kind fixtureOptionKind
	fn   func(*TeamFixture)
}

var fixture442 = []Position{
	Goalkeeper,
	Defender, Defender, Defender, Defender,
	Midfielder, Midfielder, Midfielder, Midfielder,
	Forward, Forward,
}

// WithFormation replaces the roster shape. The label is kept for reports.
func WithFormation(label string, positions ...Position) FixtureOption {
	return FixtureOption{fixtureOptShape, func(f *TeamFixture) {
		f.formation = label
		f.positions = positions
	}}
}

// WithTactics sets the team's dials; zero dials become neutral.
func WithTactics(t Tactics) FixtureOption {
	return FixtureOption{fixtureOptPlayer, func(f *TeamFixture) {
		f.tactics = t.WithDefaults()
	}}
}

// WithUniformAttributes gives every player the same value for every stat.
func WithUniformAttributes(v int) FixtureOption {
	return FixtureOption{fixtureOptPlayer, func(f *TeamFixture) {
		f.attrs = func(int, Position) Attributes {
			var a Attributes
			for i := range a {
				a[i] = v
			}
			return a
		}
	}}
}

// WithStamina sets every player's starting stamina.
func WithStamina(s float64) FixtureOption {
	return FixtureOption{fixtureOptPlayer, func(f *TeamFixture) {
		f.stamina = s
	}}
}

// budgetAttributes spreads a 100-point team budget: one point per stat,
// two positional strengths per player and one spare point on the last.
func budgetAttributes(i int, pos Position) Attributes {
	a := Attributes{1, 1, 1, 1, 1, 1, 1}
	switch pos {
	case Goalkeeper, Defender:
		a[AttrSpatialAwareness] = 2
		a[AttrTackling] = 2
	case Midfielder:
		a[AttrPassing] = 2
		a[AttrDribbling] = 2
	case Forward:
		a[AttrDribbling] = 2
		a[AttrShooting] = 2
	}
	if i == 10 {
		if pos == Forward {
			a[AttrShooting] = 3
		} else {
			a[AttrStamina] = 2
		}
	}
	return a
}

// NewFixtureTeam builds an eleven-a-side team. By default it plays 4-4-2
// with neutral tactics and a roster that satisfies the 100-point budget.
func NewFixtureTeam(id, name string, opts ...FixtureOption) *Team {
	f := &TeamFixture{
		id:        id,
		name:      name,
		formation: "4-4-2",
		positions: fixture442,
		tactics:   DefaultTactics(),
		attrs:     budgetAttributes,
		stamina:   maxStamina,
	}
	for _, kind := range []fixtureOptionKind{fixtureOptShape, fixtureOptPlayer} {
		for _, opt := range opts {
			if opt.kind == kind {
				opt.fn(f)
			}
		}
	}

	players := make([]*Player, 0, len(f.positions))
	for i, pos := range f.positions {
		p, err := NewPlayer(i+1, fmt.Sprintf("%s %d", name, i+1), pos, f.attrs(i, pos))
		if err != nil {
			panic(err) // fixture positions are always valid
		}
		p.Stamina = f.stamina
		players = append(players, p)
	}
	return NewTeam(f.id, f.name, f.formation, players, f.tactics)
}
