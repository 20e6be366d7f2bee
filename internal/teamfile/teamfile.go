// Package teamfile loads and validates team descriptions.
//
// A team file names the team, its formation, eleven players with seven
// stats each and the six tactic dials:
//
//	{
//	  "team_name": "Red Lions",
//	  "formation": "4-4-2",
//	  "players": [{"player_id": 1, "name": "Kim", "position": "GK",
//	               "stats": {"PAS": 1, "DRI": 1, "SHO": 1, "SPA": 2, "TAC": 2, "INT": 1, "STA": 1}}, ...],
//	  "tactics": {"attack": 7, "pass_style": 4, "pressing": 6,
//	              "defense_line": 5, "transition_speed": 8, "width": 5}
//	}
//
// JSON, YAML and TOML encodings of the same document are accepted.
package teamfile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/hakunamta00700/soccer-sim-game/internal/game"
)

const (
	PlayersPerTeam = 11
	PointBudget    = 100
	minStat        = 1
	maxStat        = 10
)

var (
	ErrValidation  = errors.New("team validation failed")
	ErrPlayerCount = fmt.Errorf("%w: player count", ErrValidation)
	ErrPointSum    = fmt.Errorf("%w: point total", ErrValidation)
	ErrPosition    = fmt.Errorf("%w: positions", ErrValidation)
	ErrStatRange   = fmt.Errorf("%w: stat range", ErrValidation)
	ErrTacticRange = fmt.Errorf("%w: tactic range", ErrValidation)

	ErrUnsupportedFormat = errors.New("unsupported team file format")
)

var requiredFields = []string{"team_name", "formation", "players", "tactics"}

var tacticKeys = []string{"attack", "pass_style", "pressing", "defense_line", "transition_speed", "width"}

type rawPlayer struct {
	PlayerID any            `mapstructure:"player_id"`
	Name     *string        `mapstructure:"name"`
	Position *string        `mapstructure:"position"`
	Stats    map[string]any `mapstructure:"stats"`
}

type rawTeam struct {
	TeamID    string         `mapstructure:"team_id"`
	TeamName  string         `mapstructure:"team_name"`
	Formation string         `mapstructure:"formation"`
	Players   []rawPlayer    `mapstructure:"players"`
	Tactics   map[string]any `mapstructure:"tactics"`
}

// FormatFromPath maps a file extension to a viper config type.
func FormatFromPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return "json", nil
	case ".yaml", ".yml":
		return "yaml", nil
	case ".toml":
		return "toml", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Load reads a team file, inferring the format from its extension.
func Load(path string) (*game.Team, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open team file: %w", err)
	}
	defer f.Close()

	team, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return team, nil
}

// Decode parses and validates a team document in the given format.
func Decode(r io.Reader, format string) (*game.Team, error) {
	switch format {
	case "json", "yaml", "toml":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("parse team document: %w", err)
	}
	for _, field := range requiredFields {
		if !v.IsSet(field) {
			return nil, fmt.Errorf("%w: missing required field %q", ErrValidation, field)
		}
	}

	var raw rawTeam
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return build(raw)
}

func build(raw rawTeam) (*game.Team, error) {
	if n := len(raw.Players); n != PlayersPerTeam {
		return nil, fmt.Errorf("%w: need exactly %d players, got %d", ErrPlayerCount, PlayersPerTeam, n)
	}

	seen := make(map[int]bool, PlayersPerTeam)
	players := make([]*game.Player, 0, PlayersPerTeam)
	goalkeepers, total := 0, 0

	for i, rp := range raw.Players {
		if rp.PlayerID == nil || rp.Name == nil || rp.Position == nil || rp.Stats == nil {
			return nil, fmt.Errorf("%w: player %d needs player_id, name, position and stats", ErrValidation, i+1)
		}
		id, ok := wholeNumber(rp.PlayerID)
		if !ok {
			return nil, fmt.Errorf("%w: player_id %v is not an integer", ErrValidation, rp.PlayerID)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: duplicate player_id %d", ErrValidation, id)
		}
		if id < 1 || id > PlayersPerTeam {
			return nil, fmt.Errorf("%w: player_id must be within 1..%d, got %d", ErrValidation, PlayersPerTeam, id)
		}
		seen[id] = true

		pos, err := game.ParsePosition(*rp.Position)
		if err != nil {
			return nil, fmt.Errorf("%w: player %d: %v", ErrPosition, id, err)
		}
		if pos == game.Goalkeeper {
			goalkeepers++
		}

		attrs, err := parseStats(id, rp.Stats)
		if err != nil {
			return nil, err
		}
		total += attrs.Total()

		p, err := game.NewPlayer(id, *rp.Name, pos, attrs)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		players = append(players, p)
	}

	if goalkeepers != 1 {
		return nil, fmt.Errorf("%w: need exactly one GK, got %d", ErrPosition, goalkeepers)
	}
	if total != PointBudget {
		return nil, fmt.Errorf("%w: stats must total %d, got %d", ErrPointSum, PointBudget, total)
	}

	tac, err := parseTactics(raw.Tactics)
	if err != nil {
		return nil, err
	}

	id := raw.TeamID
	if id == "" {
		id = raw.TeamName
	}
	return game.NewTeam(id, raw.TeamName, raw.Formation, players, tac), nil
}

// parseStats reads the seven stat codes. Keys are matched case-insensitively
// because viper lowercases map keys.
func parseStats(id int, stats map[string]any) (game.Attributes, error) {
	var attrs game.Attributes
	byCode := make(map[string]any, len(stats))
	for k, v := range stats {
		byCode[strings.ToUpper(k)] = v
	}
	codes := game.AttributeCodes()
	for i, code := range codes {
		val, present := byCode[code]
		if !present {
			return attrs, fmt.Errorf("%w: player %d missing stat %s", ErrValidation, id, code)
		}
		n, ok := wholeNumber(val)
		if !ok || n < minStat || n > maxStat {
			return attrs, fmt.Errorf("%w: player %d stat %s must be within %d..%d, got %v",
				ErrStatRange, id, code, minStat, maxStat, val)
		}
		attrs[i] = n
	}
	if len(byCode) != len(codes) {
		return attrs, fmt.Errorf("%w: player %d has unknown stats", ErrValidation, id)
	}
	return attrs, nil
}

// parseTactics fills missing dials with 5 and range-checks the rest.
func parseTactics(raw map[string]any) (game.Tactics, error) {
	vals := make(map[string]int, len(tacticKeys))
	for _, key := range tacticKeys {
		v, present := raw[key]
		if !present {
			continue
		}
		n, ok := wholeNumber(v)
		if !ok || n < minStat || n > maxStat {
			return game.Tactics{}, fmt.Errorf("%w: %s must be within %d..%d, got %v",
				ErrTacticRange, key, minStat, maxStat, v)
		}
		vals[key] = n
	}
	tac := game.Tactics{
		Attack:          vals["attack"],
		PassStyle:       vals["pass_style"],
		Pressing:        vals["pressing"],
		DefenseLine:     vals["defense_line"],
		TransitionSpeed: vals["transition_speed"],
		Width:           vals["width"],
	}
	return tac.WithDefaults(), nil
}

// wholeNumber accepts the integer shapes produced by the json, yaml and
// toml decoders. Fractional values and non-numbers are rejected.
func wholeNumber(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
