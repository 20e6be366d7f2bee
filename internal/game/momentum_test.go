package game

import "testing"

func TestMomentum_Deltas(t *testing.T) {
	cases := []struct {
		ev   MomentumEvent
		want Momentum
	}{
		{MomentumGoalScored, 3},
		{MomentumGoalConceded, -3},
		{MomentumMajorChanceCreated, 1},
		{MomentumMajorChanceMissed, -1},
		{MomentumMistake, -1},
		{MomentumConsecutiveSuccess, 1},
		{MomentumEvent(99), 0},
	}
	for _, tc := range cases {
		if got := Momentum(0).Apply(tc.ev); got != tc.want {
			t.Fatalf("event %d: got %d, want %d", tc.ev, got, tc.want)
		}
	}
}

func TestMomentum_Clamped(t *testing.T) {
	m := Momentum(0)
	for i := 0; i < 10; i++ {
		m = m.Apply(MomentumGoalScored)
		if m > maxMomentum {
			t.Fatalf("momentum %d above max", m)
		}
	}
	if m != maxMomentum {
		t.Fatalf("momentum = %d, want %d", m, maxMomentum)
	}
	for i := 0; i < 20; i++ {
		m = m.Apply(MomentumGoalConceded)
		if m < minMomentum {
			t.Fatalf("momentum %d below min", m)
		}
	}
	if m != minMomentum {
		t.Fatalf("momentum = %d, want %d", m, minMomentum)
	}
}

func TestMomentum_BonusWeighsSecondHalf(t *testing.T) {
	if got := Momentum(10).Bonus(false); !approx(got, 1.05) {
		t.Fatalf("first-half bonus = %.4f, want 1.05", got)
	}
	if got := Momentum(10).Bonus(true); !approx(got, 1.07) {
		t.Fatalf("second-half bonus = %.4f, want 1.07", got)
	}
	if got := Momentum(-10).Bonus(true); !approx(got, 0.93) {
		t.Fatalf("negative second-half bonus = %.4f, want 0.93", got)
	}
}

func TestMomentum_Describe(t *testing.T) {
	want := map[Momentum]string{
		8: "very high", 5: "high", 2: "slightly positive", 0: "neutral",
		-2: "slightly negative", -5: "low", -9: "very low",
	}
	for m, label := range want {
		if got := m.Describe(); got != label {
			t.Fatalf("Describe(%d) = %q, want %q", m, got, label)
		}
	}
}
