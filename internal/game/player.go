package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidPosition = errors.New("invalid position")

// Position is a player's role on the pitch.
type Position int

const (
	Goalkeeper Position = iota
	Defender
	Midfielder
	Forward
)

func (p Position) String() string {
	switch p {
	case Goalkeeper:
		return "GK"
	case Defender:
		return "DF"
	case Midfielder:
		return "MF"
	case Forward:
		return "FW"
	default:
		return "??"
	}
}

// ParsePosition accepts the two-letter codes GK, DF, MF and FW.
func ParsePosition(s string) (Position, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "GK":
		return Goalkeeper, nil
	case "DF":
		return Defender, nil
	case "MF":
		return Midfielder, nil
	case "FW":
		return Forward, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
}

// Attribute indexes one of the seven player stats.
type Attribute int

const (
	AttrPassing Attribute = iota
	AttrDribbling
	AttrShooting
	AttrSpatialAwareness
	AttrTackling
	AttrInterception
	AttrStamina
	numAttributes
)

var attributeCodes = [numAttributes]string{"PAS", "DRI", "SHO", "SPA", "TAC", "INT", "STA"}

func (a Attribute) String() string {
	if a < 0 || a >= numAttributes {
		return "???"
	}
	return attributeCodes[a]
}

// AttributeCodes lists the stat codes in Attribute order.
func AttributeCodes() []string {
	out := make([]string, numAttributes)
	copy(out, attributeCodes[:])
	return out
}

// Attributes holds a player's raw stats, indexed by Attribute.
type Attributes [numAttributes]int

// Total is the sum of all seven stats.
func (a Attributes) Total() int {
	sum := 0
	for _, v := range a {
		sum += v
	}
	return sum
}

// Weights scales raw stats by how much they matter for a position.
type Weights [numAttributes]float64

var positionWeights = [...]Weights{
	Goalkeeper: {0.3, 0.2, 0.1, 1.2, 1.5, 1.3, 1.1},
	Defender:   {0.8, 0.6, 0.3, 1.3, 1.5, 1.4, 1.0},
	Midfielder: {1.2, 1.1, 0.7, 1.1, 1.0, 1.1, 1.1},
	Forward:    {0.9, 1.3, 1.5, 1.2, 0.4, 0.6, 1.0},
}

// PositionWeights returns the weight vector for a position.
func PositionWeights(p Position) (Weights, error) {
	if p < Goalkeeper || p > Forward {
		return Weights{}, fmt.Errorf("%w: %d", ErrInvalidPosition, p)
	}
	return positionWeights[p], nil
}

const maxStamina = 100.0

// Player is one member of a team roster.
type Player struct {
	ID       int
	Name     string
	Position Position
	Attrs    Attributes
	Zone     Zone
	Stamina  float64 // 0..100
	HasBall  bool

	weights Weights
}

// NewPlayer creates a fully rested player. The zone is left unset until the
// team is positioned.
func NewPlayer(id int, name string, pos Position, attrs Attributes) (*Player, error) {
	w, err := PositionWeights(pos)
	if err != nil {
		return nil, err
	}
	return &Player{
		ID:       id,
		Name:     name,
		Position: pos,
		Attrs:    attrs,
		Stamina:  maxStamina,
		weights:  w,
	}, nil
}

// Stat returns the raw value of one attribute.
func (p *Player) Stat(a Attribute) int {
	if a < 0 || a >= numAttributes {
		return 0
	}
	return p.Attrs[a]
}

// Weighted returns the attribute scaled by the position weight.
func (p *Player) Weighted(a Attribute) float64 {
	if a < 0 || a >= numAttributes {
		return 0
	}
	return float64(p.Attrs[a]) * p.weights[a]
}

// Label is a short identifier for logs, e.g. "FW#9 Kane".
func (p *Player) Label() string {
	return fmt.Sprintf("%s#%d %s", p.Position, p.ID, p.Name)
}
