package training

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/2beens/workoutware/internal/clock"
	"github.com/2beens/workoutware/internal/db"
	"github.com/2beens/workoutware/internal/records"
	"github.com/2beens/workoutware/internal/validation"
	"github.com/2beens/workoutware/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=training_mocks_test.go -package=training_test

type SetStore interface {
	GetSessionExerciseContext(ctx context.Context, sessionExerciseID int) (*workouts.SessionExerciseContext, error)
	NextSetNumber(ctx context.Context, sessionExerciseID int) (int, error)
	InsertSet(ctx context.Context, s workouts.Set) (*workouts.Set, error)
}

type WeightValidator interface {
	Validate(ctx context.Context, userID, exerciseID int, inputWeight decimal.Decimal) (*validation.Result, error)
}

type RecordLedger interface {
	Record(ctx context.Context, entry records.Entry) (*records.Outcome, error)
}

type EventStore interface {
	InsertEvent(ctx context.Context, e validation.Event) (*validation.Event, error)
}

// Components are the collaborators of a set log, all bound to the same transaction.
type Components struct {
	Sets      SetStore
	Validator WeightValidator
	Ledger    RecordLedger
	Events    EventStore
}

// NewComponents binds the set, validation and record repositories to q.
func NewComponents(q db.Querier, thresholds validation.Thresholds, clk clock.Clock) Components {
	validationRepo := validation.NewRepo(q)
	return Components{
		Sets:      workouts.NewRepo(q),
		Validator: validation.NewValidator(validationRepo, thresholds),
		Ledger:    records.NewLedger(records.NewRepo(q), clk),
		Events:    validationRepo,
	}
}

// LogSetRequest is a performed set. A null or zero weight marks a bodyweight set.
type LogSetRequest struct {
	Weight    decimal.NullDecimal `json:"weight"`
	Reps      int                 `json:"reps"`
	RPE       *int                `json:"rpe,omitempty"`
	SetNumber *int                `json:"setNumber,omitempty"`
	IsWarmup  bool                `json:"isWarmup"`
}

// LogSetResult carries the stored set and, for classified sets, the validation
// result and the ledger outcome.
type LogSetResult struct {
	Set        *workouts.Set      `json:"set"`
	Validation *validation.Result `json:"validation,omitempty"`
	Record     *records.Outcome   `json:"record,omitempty"`
}
