package game

import "testing"

func uniformPlayer(t *testing.T, id int, pos Position, v int) *Player {
	t.Helper()
	var a Attributes
	for i := range a {
		a[i] = v
	}
	p, err := NewPlayer(id, "p", pos, a)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	return p
}

func TestSuccessProbability_Bounds(t *testing.T) {
	cases := []struct {
		score, want float64
	}{
		{0, 0.5}, {5, 0.65}, {-5, 0.35}, {10, 0.8}, {100, 0.8}, {-100, 0.2}, {-1e9, 0.2},
	}
	for _, tc := range cases {
		if got := SuccessProbability(tc.score); !approx(got, tc.want) {
			t.Fatalf("SuccessProbability(%.1f) = %.4f, want %.4f", tc.score, got, tc.want)
		}
	}
	for s := -200.0; s <= 200; s += 0.5 {
		p := SuccessProbability(s)
		if p < 0.2 || p > 0.8 {
			t.Fatalf("probability %.4f out of bounds for score %.1f", p, s)
		}
	}
}

func TestResolveContest(t *testing.T) {
	if !ResolveContest(0, 0.49) {
		t.Fatal("u=0.49 should beat p=0.5")
	}
	if ResolveContest(0, 0.5) {
		t.Fatal("u=0.5 should not beat p=0.5")
	}
	if !ResolveContest(-1000, 0.19) || ResolveContest(1000, 0.8) {
		t.Fatal("bounds not honoured")
	}
}

func TestAttackerScore_PassUnderPress(t *testing.T) {
	mf := uniformPlayer(t, 6, Midfielder, 10)
	c := Contestant{Player: mf, Tactics: DefaultTactics()}
	s := Situation{Distance: 1, Pressing: 1, Positioning: 5}

	// (10*1.2 + 10*1.1) - 2*1 - 3*1
	want := 23.0 - 5
	if got := AttackerScore(c, ActionPass, s); !approx(got, want) {
		t.Fatalf("attacker pass score = %.4f, want %.4f", got, want)
	}
}

func TestAttackerScore_FloorsAtZero(t *testing.T) {
	fw := uniformPlayer(t, 10, Forward, 1)
	c := Contestant{Player: fw, Tactics: DefaultTactics()}
	s := Situation{Distance: 3, Pressing: 10}
	if got := AttackerScore(c, ActionShoot, s); got != 0 {
		t.Fatalf("score = %.4f, want 0", got)
	}
}

func TestDefenderScore_AddsPositioning(t *testing.T) {
	gk := uniformPlayer(t, 1, Goalkeeper, 10)
	c := Contestant{Player: gk, Tactics: DefaultTactics()}
	// INT 13 + SPA 12 + positioning 5*2
	if got := DefenderScore(c, ActionPass, Situation{Positioning: 5, Pressing: 5}); !approx(got, 35) {
		t.Fatalf("defender score = %.4f, want 35", got)
	}
	// Unlisted actions use awareness plus tackling: SPA 12 + TAC 15 + 10.
	if got := DefenderScore(c, ActionCross, Situation{Positioning: 5}); !approx(got, 37) {
		t.Fatalf("default defender score = %.4f, want 37", got)
	}
}

func TestContestScore_StaminaAndMomentum(t *testing.T) {
	mf := uniformPlayer(t, 6, Midfielder, 10)
	fresh := AttackerScore(Contestant{Player: mf, Tactics: DefaultTactics()}, ActionCross, Situation{})
	if !approx(fresh, 11) {
		t.Fatalf("fresh cross score = %.4f, want 11", fresh)
	}

	mf.Stamina = 40 // penalty 2, one attribute: -1
	tired := AttackerScore(Contestant{Player: mf, Tactics: DefaultTactics()}, ActionCross, Situation{})
	if !approx(tired, 10) {
		t.Fatalf("tired cross score = %.4f, want 10", tired)
	}

	mf.Stamina = 100
	hot := AttackerScore(Contestant{Player: mf, Tactics: DefaultTactics(), Momentum: 10, SecondHalf: true}, ActionCross, Situation{})
	if !approx(hot, 11*1.07) {
		t.Fatalf("second-half momentum score = %.4f, want %.4f", hot, 11*1.07)
	}
}

func TestContestScore_Unopposed(t *testing.T) {
	mf := uniformPlayer(t, 6, Midfielder, 10)
	att := Contestant{Player: mf, Tactics: DefaultTactics()}
	if got := ContestScore(att, nil, ActionCross, Situation{}); !approx(got, 11) {
		t.Fatalf("unopposed score = %.4f, want 11", got)
	}
	gk := uniformPlayer(t, 1, Goalkeeper, 10)
	def := &Contestant{Player: gk, Tactics: DefaultTactics()}
	s := Situation{Distance: 1, Pressing: 1, Positioning: 5}
	want := (23.0 - 5) - 35
	if got := ContestScore(att, def, ActionPass, s); !approx(got, want) {
		t.Fatalf("contest score = %.4f, want %.4f", got, want)
	}
}

func TestGoalProbability(t *testing.T) {
	star := uniformPlayer(t, 9, Forward, 10)
	if got := GoalProbability(star, nil); !approx(got, 0.6) {
		t.Fatalf("elite shooter = %.4f, want cap 0.6", got)
	}

	weak := uniformPlayer(t, 9, Forward, 1)
	wall := uniformPlayer(t, 1, Goalkeeper, 10)
	if got := GoalProbability(weak, wall); !approx(got, 0.1) {
		t.Fatalf("weak shooter vs strong keeper = %.4f, want floor 0.1", got)
	}

	fw, _ := NewPlayer(10, "fw", Forward, Attributes{1, 2, 2, 1, 1, 1, 1})
	gk, _ := NewPlayer(1, "gk", Goalkeeper, Attributes{1, 1, 1, 2, 2, 1, 1})
	df, _ := NewPlayer(2, "df", Defender, Attributes{1, 1, 1, 2, 2, 1, 1})
	if got := GoalProbability(fw, gk); !approx(got, 0.215) {
		t.Fatalf("vs keeper = %.4f, want 0.215", got)
	}
	if got := GoalProbability(fw, df); !approx(got, 0.2) {
		t.Fatalf("vs defender = %.4f, want 0.2", got)
	}
}
