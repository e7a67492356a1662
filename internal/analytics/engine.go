package analytics

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/sync/errgroup"

	"iplstats/internal/dataset"
	"iplstats/internal/infrastructure"
)

// Aggregation names used for spans, metrics and logs
const (
	AggMatchesPerSeason = "matches_per_season"
	AggMatchesWon       = "matches_won"
	AggExtraRuns        = "extra_runs"
	AggTopEconomy       = "top_economy"
	AggRepeatDismissals = "repeat_dismissals"
)

// Engine runs the aggregations of one report
type Engine struct {
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *infrastructure.RunMetrics
}

// NewEngine creates an Engine. A nil tracer or metrics disables that concern.
func NewEngine(logger *slog.Logger, tracer trace.Tracer, metrics *infrastructure.RunMetrics) *Engine {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}
	return &Engine{
		logger:  infrastructure.WithComponent(logger, "analytics"),
		tracer:  tracer,
		metrics: metrics,
	}
}

// Run computes every aggregation over ds. The aggregations share no mutable
// state and run concurrently; the first failure cancels the rest and is
// returned.
func (e *Engine) Run(ctx context.Context, ds *dataset.Dataset, seasons Seasons) (*Summary, error) {
	start := time.Now()
	summary := &Summary{}

	g, gctx := errgroup.WithContext(ctx)

	e.spawn(gctx, g, AggMatchesPerSeason, "", func() error {
		summary.MatchesPerSeason = MatchesPerSeason(ds.Matches)
		return nil
	})
	e.spawn(gctx, g, AggMatchesWon, "", func() error {
		summary.MatchesWon = MatchesWonPerTeam(ds.Matches)
		return nil
	})
	e.spawn(gctx, g, AggExtraRuns, seasons.Extras, func() error {
		counts, err := ExtraRunsConceded(ds.Matches, ds.Deliveries, seasons.Extras)
		summary.ExtraRuns = counts
		return err
	})
	e.spawn(gctx, g, AggTopEconomy, seasons.Economy, func() error {
		bowlers, err := TopEconomicalBowlers(ds.Matches, ds.Deliveries, seasons.Economy)
		summary.TopEconomy = bowlers
		return err
	})
	e.spawn(gctx, g, AggRepeatDismissals, seasons.Dismissals, func() error {
		summary.RepeatDismissals = RepeatDismissals(ds.Matches, ds.Deliveries, seasons.Dismissals, seasons.DismissalThreshold)
		return nil
	})

	if err := g.Wait(); err != nil {
		e.logger.ErrorContext(ctx, "aggregation failed", slog.String("error", err.Error()))
		return nil, err
	}

	e.logger.InfoContext(ctx, "aggregations complete",
		slog.Int("matches", len(ds.Matches)),
		slog.Int("deliveries", len(ds.Deliveries)),
		slog.Duration("duration", time.Since(start)))

	return summary, nil
}

// spawn runs fn in the group inside a span named aggregate.<name>
func (e *Engine) spawn(ctx context.Context, g *errgroup.Group, name, season string, fn func() error) {
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}

		attrs := []attribute.KeyValue{attribute.String("aggregation", name)}
		if season != "" {
			attrs = append(attrs, attribute.String("season", season))
		}
		ctx, span := e.tracer.Start(ctx, "aggregate."+name, trace.WithAttributes(attrs...))
		defer span.End()

		start := time.Now()
		err := fn()
		e.metrics.RecordAggregation(ctx, name, time.Since(start))

		if err != nil {
			infrastructure.RecordError(ctx, err)
			return err
		}

		e.logger.DebugContext(ctx, "aggregation done",
			slog.String("aggregation", name),
			slog.Duration("duration", time.Since(start)))
		return nil
	})
}
