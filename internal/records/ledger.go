package records

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/workoutware/internal/clock"
	"github.com/2beens/workoutware/internal/telemetry/tracing"
	"github.com/2beens/workoutware/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=ledger_mocks_test.go -package=records_test

type ledgerStore interface {
	InsertIfAbsent(ctx context.Context, pr PersonalRecord) (*PersonalRecord, error)
	GetForUpdate(ctx context.Context, userID, exerciseID int, recordType RecordType) (*PersonalRecord, error)
	Replace(ctx context.Context, pr PersonalRecord) error
}

// Ledger keeps one current best per (user, exercise, record type). The store must be
// bound to the caller's transaction so the row lock covers the whole read-modify-write.
type Ledger struct {
	store ledgerStore
	clock clock.Clock
}

func NewLedger(store ledgerStore, clk clock.Clock) *Ledger {
	return &Ledger{
		store: store,
		clock: clk,
	}
}

func (l *Ledger) Record(ctx context.Context, entry Entry) (_ *Outcome, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "records.ledger.record")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", entry.UserID))
	span.SetAttributes(attribute.Int("exercise.id", entry.ExerciseID))

	if entry.RecordType == "" {
		entry.RecordType = MaxWeight
	}
	if !entry.RecordType.Valid() {
		return nil, workouts.InvalidInput("unknown record type %q", entry.RecordType)
	}
	if !entry.Value.IsPositive() {
		return nil, workouts.InvalidInput("record value %s must be positive", entry.Value)
	}
	if entry.Reps <= 0 {
		return nil, workouts.InvalidInput("reps %d must be positive", entry.Reps)
	}

	reps := entry.Reps
	candidate := PersonalRecord{
		UserID:       entry.UserID,
		ExerciseID:   entry.ExerciseID,
		RecordType:   entry.RecordType,
		CurrentValue: entry.Value,
		Reps:         &reps,
		AchievedDate: clock.Today(l.clock),
		SessionID:    entry.SessionID,
		Notes:        entry.Notes,
	}

	inserted, err := l.store.InsertIfAbsent(ctx, candidate)
	if err != nil {
		return nil, err
	}
	if inserted != nil {
		span.SetAttributes(attribute.Bool("record.first", true))
		return &Outcome{
			IsNewRecord: true,
			Record:      inserted,
		}, nil
	}

	current, err := l.store.GetForUpdate(ctx, entry.UserID, entry.ExerciseID, entry.RecordType)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, workouts.StoreErr("record", fmt.Errorf("record (%d, %d, %s) vanished after conflict", entry.UserID, entry.ExerciseID, entry.RecordType))
	}

	if !improves(current, entry.Value) {
		return &Outcome{
			IsNewRecord: false,
			Record:      current,
		}, nil
	}

	previous := current.CurrentValue
	updated := *current
	updated.PreviousBest = decimal.NewNullDecimal(previous)
	updated.CurrentValue = entry.Value
	updated.Reps = &reps
	updated.AchievedDate = candidate.AchievedDate
	updated.SessionID = entry.SessionID
	updated.Notes = entry.Notes

	if err := l.store.Replace(ctx, updated); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Bool("record.improved", true))
	return &Outcome{
		IsNewRecord:   true,
		PreviousValue: decimal.NewNullDecimal(previous),
		Record:        &updated,
	}, nil
}
