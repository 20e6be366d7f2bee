package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/pflag"

	"github.com/hakunamta00700/soccer-sim-game/internal/game"
	"github.com/hakunamta00700/soccer-sim-game/internal/logging"
	"github.com/hakunamta00700/soccer-sim-game/internal/teamfile"
)

type runStats struct {
	runIndex int
	seed     int64

	homeGoals int
	awayGoals int
	winner    game.Winner

	firstGoalTick int
	lastGoalTick  int

	homeShots, awayShots       int
	homeOnTarget, awayOnTarget int
	homePassAcc, awayPassAcc   float64
	homeTackles, awayTackles   int
	intercepts                 int

	homeMomentum, awayMomentum game.Momentum
	homeStamina, awayStamina   float64
	scorers                    map[string]int
}

type aggregate struct {
	runs                      int
	homeWins, awayWins, draws int
	homeGoals, awayGoals      int
	homeShots, awayShots      int
	homePassAcc, awayPassAcc  float64
	maxMargin                 int
	lopsidedRuns              int
	scorers                   map[string]int
}

// teamLoader builds a fresh team for every run; rosters carry match state.
type teamLoader func() (*game.Team, error)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("batch-report", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	runs := fs.Int("runs", 5, "number of matches")
	seedBase := fs.Int64("seed-base", 42, "seed for run 1")
	seedStep := fs.Int64("seed-step", 1, "seed increment between runs")
	homePath := fs.String("home", "", "home team file (default: built-in fixture)")
	awayPath := fs.String("away", "", "away team file (default: built-in fixture)")
	logLevel := fs.String("log-level", "warn", "log level for the simulator")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *runs <= 0 {
		fmt.Fprintln(stderr, "error: --runs must be > 0")
		return 2
	}
	logger := logging.New(logging.Options{Console: stderr, Level: *logLevel})

	loadHome := loaderFor(*homePath, "home", "Home XI")
	loadAway := loaderFor(*awayPath, "away", "Away XI")

	fmt.Fprintf(stdout, "=== Batch Match Report ===\n")
	fmt.Fprintf(stdout, "runs=%d seed_base=%d seed_step=%d\n\n", *runs, *seedBase, *seedStep)

	all := make([]runStats, 0, *runs)
	for i := 0; i < *runs; i++ {
		seed := *seedBase + int64(i)*(*seedStep)
		home, err := loadHome()
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		away, err := loadAway()
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		sim, err := game.NewSimulator(game.WithSeed(seed), game.WithLogger(logger))
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		m, err := sim.Simulate(home, away)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		rs := collectRun(i+1, seed, m)
		all = append(all, rs)
		printRun(stdout, rs)
	}

	printAggregate(stdout, summarize(all))
	return 0
}

func loaderFor(path, id, name string) teamLoader {
	if path == "" {
		return func() (*game.Team, error) { return game.NewFixtureTeam(id, name), nil }
	}
	return func() (*game.Team, error) { return teamfile.Load(path) }
}

func collectRun(runIndex int, seed int64, m *game.Match) runStats {
	rs := runStats{
		runIndex:      runIndex,
		seed:          seed,
		homeGoals:     m.Home.Score,
		awayGoals:     m.Away.Score,
		winner:        m.Winner,
		firstGoalTick: -1,
		lastGoalTick:  -1,
		homeShots:     m.Home.Stats.Shots,
		awayShots:     m.Away.Stats.Shots,
		homeOnTarget:  m.Home.Stats.ShotsOnTarget,
		awayOnTarget:  m.Away.Stats.ShotsOnTarget,
		homePassAcc:   m.Home.Stats.PassAccuracy(),
		awayPassAcc:   m.Away.Stats.PassAccuracy(),
		homeTackles:   m.Home.Stats.TacklesSuccessful,
		awayTackles:   m.Away.Stats.TacklesSuccessful,
		intercepts:    m.Events.Count(game.EventIntercept),
		homeMomentum:  m.Home.Momentum,
		awayMomentum:  m.Away.Momentum,
		homeStamina:   m.Home.AverageStamina(),
		awayStamina:   m.Away.AverageStamina(),
		scorers:       map[string]int{},
	}
	goals := m.Events.Filter(game.EventGoal)
	if len(goals) > 0 {
		rs.firstGoalTick = goals[0].Tick
		rs.lastGoalTick = goals[len(goals)-1].Tick
	}
	for _, g := range goals {
		team := m.Team(g.Side)
		label := fmt.Sprintf("%s/#%d", team.Name, g.PlayerID)
		if p := team.PlayerByID(g.PlayerID); p != nil {
			label = fmt.Sprintf("%s/%s", team.Name, p.Label())
		}
		rs.scorers[label]++
	}
	return rs
}

func printRun(w io.Writer, rs runStats) {
	fmt.Fprintf(w, "--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Fprintf(w, "score: home=%d away=%d winner=%s\n", rs.homeGoals, rs.awayGoals, rs.winner)
	fmt.Fprintf(w, "goal_markers: first=%s last=%s\n", tickString(rs.firstGoalTick), tickString(rs.lastGoalTick))
	fmt.Fprintf(w, "shots: home=%d(%d) away=%d(%d)\n", rs.homeShots, rs.homeOnTarget, rs.awayShots, rs.awayOnTarget)
	fmt.Fprintf(w, "pass_accuracy: home=%.1f%% away=%.1f%%\n", rs.homePassAcc, rs.awayPassAcc)
	fmt.Fprintf(w, "defence: home_tackles=%d away_tackles=%d intercepts=%d\n", rs.homeTackles, rs.awayTackles, rs.intercepts)
	fmt.Fprintf(w, "end_state: home_momentum=%+d(%s) away_momentum=%+d(%s) home_stamina=%.1f away_stamina=%.1f\n",
		rs.homeMomentum, rs.homeMomentum.Describe(), rs.awayMomentum, rs.awayMomentum.Describe(), rs.homeStamina, rs.awayStamina)
	fmt.Fprintf(w, "scorers: %s\n\n", joinCounts(rs.scorers))
}

func summarize(all []runStats) aggregate {
	agg := aggregate{runs: len(all), scorers: map[string]int{}}
	for _, rs := range all {
		switch rs.winner {
		case game.WinnerHome:
			agg.homeWins++
		case game.WinnerAway:
			agg.awayWins++
		default:
			agg.draws++
		}
		agg.homeGoals += rs.homeGoals
		agg.awayGoals += rs.awayGoals
		agg.homeShots += rs.homeShots
		agg.awayShots += rs.awayShots
		agg.homePassAcc += rs.homePassAcc
		agg.awayPassAcc += rs.awayPassAcc
		margin := absInt(rs.homeGoals - rs.awayGoals)
		if margin > agg.maxMargin {
			agg.maxMargin = margin
		}
		if margin >= lopsidedMargin {
			agg.lopsidedRuns++
		}
		for k, v := range rs.scorers {
			agg.scorers[k] += v
		}
	}
	return agg
}

func printAggregate(w io.Writer, agg aggregate) {
	fmt.Fprintln(w, "=== Aggregate ===")
	fmt.Fprintf(w, "runs=%d\n", agg.runs)
	fmt.Fprintf(w, "win_rate: home=%.1f%% away=%.1f%% draw=%.1f%%\n",
		pct(agg.homeWins, agg.runs), pct(agg.awayWins, agg.runs), pct(agg.draws, agg.runs))
	fmt.Fprintf(w, "avg_goals: home=%.2f away=%.2f\n", avg(agg.homeGoals, agg.runs), avg(agg.awayGoals, agg.runs))
	fmt.Fprintf(w, "avg_shots: home=%.1f away=%.1f\n", avg(agg.homeShots, agg.runs), avg(agg.awayShots, agg.runs))
	fmt.Fprintf(w, "avg_pass_accuracy: home=%.1f%% away=%.1f%%\n",
		avgFloat(agg.homePassAcc, agg.runs), avgFloat(agg.awayPassAcc, agg.runs))
	fmt.Fprintf(w, "max_margin=%d lopsided_runs=%d\n", agg.maxMargin, agg.lopsidedRuns)
	fmt.Fprintf(w, "top_scorers: %s\n", topCounts(agg.scorers, 5))

	lopsided, reason := detectLopsided(agg)
	fmt.Fprintf(w, "lopsided=%t reason=%s\n", lopsided, reason)
}

const (
	lopsidedMargin   = 3
	lopsidedWinShare = 0.8
)

// detectLopsided flags fixtures where one side dominates: it wins at least
// 80% of the runs and more than half the runs end three or more goals apart.
func detectLopsided(agg aggregate) (bool, string) {
	if agg.runs == 0 {
		return false, "no_runs"
	}
	wins := max(agg.homeWins, agg.awayWins)
	side := "home"
	if agg.awayWins > agg.homeWins {
		side = "away"
	}
	share := float64(wins) / float64(agg.runs)
	var reasons []string
	if share >= lopsidedWinShare {
		reasons = append(reasons, fmt.Sprintf("%s_win_share=%.0f%%", side, share*100))
	}
	if agg.lopsidedRuns*2 > agg.runs {
		reasons = append(reasons, fmt.Sprintf("wide_margins=%d/%d", agg.lopsidedRuns, agg.runs))
	}
	if len(reasons) < 2 {
		if len(reasons) == 0 {
			return false, "competitive"
		}
		return false, "partial:" + reasons[0]
	}
	return true, strings.Join(reasons, ",")
}

func avg(sum, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgFloat(sum float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return sum / float64(n)
}

func pct(count, n int) float64 { return avg(count, n) * 100 }

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func tickString(tick int) string {
	if tick < 0 {
		return "n/a"
	}
	return fmt.Sprintf("%d(%d')", tick, tick/game.TicksPerMinute)
}

func joinCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	labels := make([]string, 0, len(counts))
	for k := range counts {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	parts := make([]string, len(labels))
	for i, k := range labels {
		parts[i] = fmt.Sprintf("%s(%d)", k, counts[k])
	}
	return strings.Join(parts, ",")
}

// topCounts lists the n largest counts, ties broken by label.
func topCounts(counts map[string]int, n int) string {
	if len(counts) == 0 {
		return "none"
	}
	labels := make([]string, 0, len(counts))
	for k := range counts {
		labels = append(labels, k)
	}
	sort.Slice(labels, func(i, j int) bool {
		if counts[labels[i]] != counts[labels[j]] {
			return counts[labels[i]] > counts[labels[j]]
		}
		return labels[i] < labels[j]
	})
	if len(labels) > n {
		labels = labels[:n]
	}
	parts := make([]string, len(labels))
	for i, k := range labels {
		parts[i] = fmt.Sprintf("%s(%d)", k, counts[k])
	}
	return strings.Join(parts, ",")
}
