package recommendations

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/workoutware/internal/clock"
	"github.com/2beens/workoutware/internal/telemetry/metrics"
	"github.com/2beens/workoutware/internal/telemetry/tracing"
	"github.com/2beens/workoutware/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=engine_mocks_test.go -package=recommendations_test

type Store interface {
	UserExists(ctx context.Context, userID int) (bool, error)
	RecentSets(ctx context.Context, userID, n int) ([]RecentSet, error)
	WindowContributions(ctx context.Context, userID int, since time.Time) ([]Contribution, error)
}

// TargetsSource provides the muscle group catalog, ordered by name.
type TargetsSource interface {
	ListTargets(ctx context.Context) ([]workouts.Target, error)
}

type Engine struct {
	store   Store
	targets TargetsSource
	cfg     Config
	clock   clock.Clock
	metrics *metrics.Manager
}

// NewEngine uses cfg as given, config loading rejects out of range values.
func NewEngine(store Store, targets TargetsSource, cfg Config, clk clock.Clock, metricsManager *metrics.Manager) *Engine {
	return &Engine{
		store:   store,
		targets: targets,
		cfg:     cfg,
		clock:   clk,
		metrics: metricsManager,
	}
}

func (e *Engine) Config() Config {
	return e.cfg
}

// Recommend runs both analyses for a user.
func (e *Engine) Recommend(ctx context.Context, userID int) (_ *Recommendations, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "recommendations.engine.recommend")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	if err := e.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	increases, err := e.weightIncreases(ctx, userID)
	if err != nil {
		return nil, err
	}
	neglected, err := e.neglectedGroups(ctx, userID)
	if err != nil {
		return nil, err
	}

	log.Debugf("recommendations for user %d: %d weight increases, %d neglected groups", userID, len(increases), len(neglected))
	return &Recommendations{
		WeightIncrease:        increases,
		NeglectedMuscleGroups: neglected,
	}, nil
}

func (e *Engine) WeightIncreases(ctx context.Context, userID int) (_ []WeightIncrease, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "recommendations.engine.weightincreases")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	if err := e.checkUser(ctx, userID); err != nil {
		return nil, err
	}
	return e.weightIncreases(ctx, userID)
}

func (e *Engine) NeglectedMuscleGroups(ctx context.Context, userID int) (_ []NeglectedGroup, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "recommendations.engine.neglectedgroups")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	if err := e.checkUser(ctx, userID); err != nil {
		return nil, err
	}
	return e.neglectedGroups(ctx, userID)
}

func (e *Engine) checkUser(ctx context.Context, userID int) error {
	if userID <= 0 {
		return workouts.InvalidInput("user id must be positive")
	}
	exists, err := e.store.UserExists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return workouts.ErrUserNotFound
	}
	return nil
}

func (e *Engine) weightIncreases(ctx context.Context, userID int) ([]WeightIncrease, error) {
	sets, err := e.store.RecentSets(ctx, userID, e.cfg.MinConsecutiveSets)
	if err != nil {
		return nil, fmt.Errorf("weight increases of user %d: %w", userID, err)
	}

	increases := WeightIncreases(sets, e.cfg.MinConsecutiveSets, e.cfg.WeightIncreasePct)
	e.metrics.CounterRecommendations.WithLabelValues("weight_increase").Add(float64(len(increases)))
	return increases, nil
}

func (e *Engine) neglectedGroups(ctx context.Context, userID int) ([]NeglectedGroup, error) {
	since := clock.Today(e.clock).AddDate(0, 0, -e.cfg.LookbackDays)

	contributions, err := e.store.WindowContributions(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("neglected groups of user %d: %w", userID, err)
	}
	if len(contributions) == 0 {
		return nil, nil
	}

	targets, err := e.targets.ListTargets(ctx)
	if err != nil {
		return nil, fmt.Errorf("neglected groups of user %d: %w", userID, err)
	}

	groups := NeglectedGroups(targets, contributions, e.cfg.LowVolumeThresholdPct)
	e.metrics.CounterRecommendations.WithLabelValues("neglected_group").Add(float64(len(groups)))
	return groups, nil
}
