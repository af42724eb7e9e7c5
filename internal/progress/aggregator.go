package progress

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/workoutware/internal/db"
	"github.com/2beens/workoutware/internal/telemetry/metrics"
	"github.com/2beens/workoutware/internal/telemetry/tracing"
	"github.com/2beens/workoutware/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=aggregator_mocks_test.go -package=progress_test

// Store is what a rebuild needs inside its transaction. *Repo implements it.
type Store interface {
	UserExists(ctx context.Context, userID int) (bool, error)
	LockUserPeriod(ctx context.Context, userID int, pt PeriodType) error
	QualifyingSets(ctx context.Context, userID int) ([]QualifyingSet, error)
	DeleteRows(ctx context.Context, userID int, pt PeriodType) (int64, error)
	InsertRows(ctx context.Context, rows []Row) (int64, error)
}

// Aggregator rebuilds the progress rollups of a user from raw sets.
type Aggregator struct {
	tx      db.Runner[Store]
	metrics *metrics.Manager
}

func NewAggregator(tx db.Runner[Store], metricsManager *metrics.Manager) *Aggregator {
	return &Aggregator{
		tx:      tx,
		metrics: metricsManager,
	}
}

// Rebuild replaces all rollups of the user for each period type and returns the number
// of rows inserted. Each period type is rebuilt in its own transaction: delete, then
// insert, under an advisory lock on (user, period type).
func (a *Aggregator) Rebuild(ctx context.Context, userID int, periods []PeriodType) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.aggregator.rebuild")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	for _, pt := range periods {
		if _, err := ParsePeriodType(string(pt)); err != nil {
			return 0, err
		}
	}

	start := time.Now()
	defer func() {
		a.metrics.HistProgressRebuildDuration.Observe(time.Since(start).Seconds())
	}()

	total := 0
	for _, pt := range periods {
		inserted, err := a.rebuildPeriod(ctx, userID, pt)
		if err != nil {
			return 0, fmt.Errorf("rebuild %s progress of user %d: %w", pt, userID, err)
		}
		a.metrics.CounterProgressRows.WithLabelValues(string(pt)).Add(float64(inserted))
		total += inserted
	}

	span.SetAttributes(attribute.Int("rows.inserted", total))
	log.Debugf("progress rebuilt for user %d, periods %v: %d rows", userID, periods, total)
	return total, nil
}

func (a *Aggregator) rebuildPeriod(ctx context.Context, userID int, pt PeriodType) (int, error) {
	var inserted int64
	err := a.tx.Do(ctx, func(ctx context.Context, store Store) error {
		exists, err := store.UserExists(ctx, userID)
		if err != nil {
			return err
		}
		if !exists {
			return workouts.ErrUserNotFound
		}

		if err := store.LockUserPeriod(ctx, userID, pt); err != nil {
			return err
		}

		sets, err := store.QualifyingSets(ctx, userID)
		if err != nil {
			return err
		}

		if _, err := store.DeleteRows(ctx, userID, pt); err != nil {
			return err
		}

		inserted, err = store.InsertRows(ctx, Rollup(userID, pt, sets))
		return err
	})
	if err != nil {
		return 0, err
	}
	return int(inserted), nil
}
