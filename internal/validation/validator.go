package validation

import (
	"context"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/workoutware/internal/telemetry/tracing"
	"github.com/2beens/workoutware/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=validator_mocks_test.go -package=validation_test

type baselineStore interface {
	Baseline(ctx context.Context, userID, exerciseID int) (Baseline, error)
	Subjects(ctx context.Context, userID, exerciseID int) (userExists, exerciseExists bool, err error)
}

// Validator classifies a logged weight against the user's history. It never writes.
type Validator struct {
	store      baselineStore
	thresholds Thresholds
}

// NewValidator uses thresholds as given. A zero SuspiciousLowPct turns the
// suspicious low rule off; range checks belong to config validation.
func NewValidator(store baselineStore, thresholds Thresholds) *Validator {
	return &Validator{
		store:      store,
		thresholds: thresholds,
	}
}

func (v *Validator) Validate(ctx context.Context, userID, exerciseID int, inputWeight decimal.Decimal) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "validation.validate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	if !inputWeight.IsPositive() {
		return nil, workouts.InvalidInput("weight %s must be positive", inputWeight)
	}

	baseline, err := v.store.Baseline(ctx, userID, exerciseID)
	if err != nil {
		return nil, err
	}
	// an empty history is only a first time lift when both ids are real
	if baseline.Count == 0 {
		userExists, exerciseExists, err := v.store.Subjects(ctx, userID, exerciseID)
		if err != nil {
			return nil, err
		}
		if !userExists {
			return nil, workouts.ErrUserNotFound
		}
		if !exerciseExists {
			return nil, workouts.ErrExerciseNotFound
		}
	}

	res := Classify(inputWeight, baseline, v.thresholds)
	span.SetAttributes(attribute.String("classification", string(res.Classification)))
	return &res, nil
}
