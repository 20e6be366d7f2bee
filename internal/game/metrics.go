package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/hakunamta00700/soccer-sim-game/internal/game"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// simMetrics are the engine counters. With no provider installed the global
// meter is a no-op.
type simMetrics struct {
	matches metric.Int64Counter
	ticks   metric.Int64Counter
	actions metric.Int64Counter
	goals   metric.Int64Counter
}

func newSimMetrics(m metric.Meter) (*simMetrics, error) {
	var (
		sm  simMetrics
		err error
	)

	sm.matches, err = m.Int64Counter(
		"soccer.matches.completed",
		metric.WithDescription("Matches simulated to full time"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating matches counter: %w", err)
	}

	sm.ticks, err = m.Int64Counter(
		"soccer.ticks",
		metric.WithDescription("Ticks simulated"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ticks counter: %w", err)
	}

	sm.actions, err = m.Int64Counter(
		"soccer.actions",
		metric.WithDescription("Actions attempted, by action and result"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating actions counter: %w", err)
	}

	sm.goals, err = m.Int64Counter(
		"soccer.goals",
		metric.WithDescription("Goals scored, by side"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating goals counter: %w", err)
	}

	return &sm, nil
}

func (sm *simMetrics) recordAction(r ActionReport) {
	ctx := context.Background()
	result := ResultFailure
	if r.Success {
		result = ResultSuccess
	}
	sm.actions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("action", r.Action.String()),
		attribute.String("result", result.String()),
	))
	if r.Goal {
		sm.goals.Add(ctx, 1, metric.WithAttributes(attribute.String("side", r.Side.String())))
	}
}

func (sm *simMetrics) recordMatch(m *Match) {
	sm.ticks.Add(context.Background(), int64(m.TicksPlayed()))
	sm.matches.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("winner", m.Winner.String()),
	))
}
