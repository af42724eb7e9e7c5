package training

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/workoutware/internal/clock"
	"github.com/2beens/workoutware/internal/db"
	"github.com/2beens/workoutware/internal/records"
	"github.com/2beens/workoutware/internal/telemetry/metrics"
	"github.com/2beens/workoutware/internal/telemetry/tracing"
	"github.com/2beens/workoutware/internal/validation"
	"github.com/2beens/workoutware/internal/workouts"
)

const maxRPE = 10

type Service struct {
	tx      db.Runner[Components]
	clock   clock.Clock
	metrics *metrics.Manager
}

func NewService(tx db.Runner[Components], clk clock.Clock, metricsManager *metrics.Manager) *Service {
	return &Service{
		tx:      tx,
		clock:   clk,
		metrics: metricsManager,
	}
}

// LogSet stores a set and runs it through the validator and the record ledger in one
// transaction. The set is classified before it is inserted, so its own weight never
// counts towards the baseline. Sets of template sessions, warm-ups and bodyweight sets
// are stored only.
func (s *Service) LogSet(ctx context.Context, sessionExerciseID int, req LogSetRequest) (_ *LogSetResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.logset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session_exercise.id", sessionExerciseID))

	if err := validateRequest(sessionExerciseID, &req); err != nil {
		return nil, err
	}

	var result *LogSetResult
	if err := s.tx.Do(ctx, func(ctx context.Context, c Components) error {
		var err error
		result, err = s.logSet(ctx, c, sessionExerciseID, req)
		return err
	}); err != nil {
		return nil, fmt.Errorf("log set for session exercise %d: %w", sessionExerciseID, err)
	}

	s.metrics.CounterSetsLogged.Inc()
	if result.Validation != nil {
		s.metrics.CounterSetClassifications.WithLabelValues(string(result.Validation.Classification)).Inc()
		span.SetAttributes(attribute.String("classification", string(result.Validation.Classification)))
	}
	if result.Record != nil && result.Record.IsNewRecord {
		s.metrics.CounterPersonalRecords.Inc()
	}

	return result, nil
}

func (s *Service) logSet(ctx context.Context, c Components, sessionExerciseID int, req LogSetRequest) (*LogSetResult, error) {
	seCtx, err := c.Sets.GetSessionExerciseContext(ctx, sessionExerciseID)
	if err != nil {
		return nil, err
	}

	setNumber := 0
	if req.SetNumber != nil {
		setNumber = *req.SetNumber
	} else {
		setNumber, err = c.Sets.NextSetNumber(ctx, sessionExerciseID)
		if err != nil {
			return nil, err
		}
	}

	classify := !seCtx.IsTemplate && !req.IsWarmup && req.Weight.Valid

	var res *validation.Result
	if classify {
		res, err = c.Validator.Validate(ctx, seCtx.UserID, seCtx.ExerciseID, req.Weight.Decimal)
		if err != nil {
			return nil, err
		}
	}

	now := s.clock.Now()
	set, err := c.Sets.InsertSet(ctx, workouts.Set{
		SessionExerciseID: sessionExerciseID,
		SetNumber:         setNumber,
		Weight:            req.Weight,
		Reps:              req.Reps,
		RPE:               req.RPE,
		Completed:         true,
		IsWarmup:          req.IsWarmup,
		CompletionTime:    &now,
	})
	if err != nil {
		return nil, err
	}

	result := &LogSetResult{Set: set}
	if !classify {
		log.Tracef("set %d of session exercise %d stored without classification", set.ID, sessionExerciseID)
		return result, nil
	}
	result.Validation = res

	sessionID := seCtx.SessionID
	result.Record, err = c.Ledger.Record(ctx, records.Entry{
		UserID:     seCtx.UserID,
		ExerciseID: seCtx.ExerciseID,
		Value:      req.Weight.Decimal,
		Reps:       req.Reps,
		RecordType: records.MaxWeight,
		SessionID:  &sessionID,
		Notes:      fmt.Sprintf("set %d", set.ID),
	})
	if err != nil {
		return nil, err
	}

	setID := set.ID
	if _, err := c.Events.InsertEvent(ctx, validation.Event{
		UserID:      seCtx.UserID,
		SetID:       &setID,
		ExerciseID:  seCtx.ExerciseID,
		InputWeight: req.Weight.Decimal,
		ExpectedMax: res.ExpectedMax,
		FlaggedAs:   res.Classification,
		CreatedAt:   now,
	}); err != nil {
		return nil, err
	}

	log.Debugf(
		"set %d logged for user %d, %s: %s (new record: %t)",
		set.ID, seCtx.UserID, seCtx.ExerciseName, res.Classification, result.Record.IsNewRecord,
	)
	return result, nil
}

// validateRequest rejects impossible sets and normalizes a zero weight to a bodyweight set.
func validateRequest(sessionExerciseID int, req *LogSetRequest) error {
	if sessionExerciseID <= 0 {
		return workouts.InvalidInput("session exercise id must be positive")
	}
	if req.Reps <= 0 {
		return workouts.InvalidInput("reps %d must be positive", req.Reps)
	}
	if req.Weight.Valid {
		switch {
		case req.Weight.Decimal.IsNegative():
			return workouts.InvalidInput("weight %s must not be negative", req.Weight.Decimal)
		case req.Weight.Decimal.IsZero():
			req.Weight = decimal.NullDecimal{}
		}
	}
	if req.RPE != nil && (*req.RPE < 1 || *req.RPE > maxRPE) {
		return workouts.InvalidInput("rpe %d must be between 1 and %d", *req.RPE, maxRPE)
	}
	if req.SetNumber != nil && *req.SetNumber <= 0 {
		return workouts.InvalidInput("set number %d must be positive", *req.SetNumber)
	}
	return nil
}
