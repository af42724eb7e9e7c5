package goals

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/workoutware/internal/clock"
	"github.com/2beens/workoutware/internal/telemetry/tracing"
	"github.com/2beens/workoutware/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=goals_test

type Store interface {
	Create(ctx context.Context, g Goal) (*Goal, error)
	ListActive(ctx context.Context, userID int) ([]Goal, error)
	UpdateProgress(ctx context.Context, id int, current decimal.Decimal) error
	SetStatus(ctx context.Context, id int, status Status, completionDate *time.Time) error
	Delete(ctx context.Context, userID, id int) error
}

type Service struct {
	store Store
	clock clock.Clock
}

func NewService(store Store, clk clock.Clock) *Service {
	return &Service{
		store: store,
		clock: clk,
	}
}

func (s *Service) Create(ctx context.Context, userID int, ng NewGoal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.goals.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	if userID <= 0 {
		return nil, workouts.InvalidInput("user id must be positive")
	}
	goalType := strings.TrimSpace(ng.GoalType)
	if goalType == "" {
		return nil, workouts.InvalidInput("goal type is required")
	}
	if ng.TargetValue.IsNegative() {
		return nil, workouts.InvalidInput("target value %s must not be negative", ng.TargetValue)
	}
	if ng.CurrentValue.IsNegative() {
		return nil, workouts.InvalidInput("current value %s must not be negative", ng.CurrentValue)
	}
	if ng.ExerciseID != nil && *ng.ExerciseID <= 0 {
		return nil, workouts.InvalidInput("exercise id must be positive")
	}

	today := clock.Today(s.clock)
	var targetDate *time.Time
	if raw := strings.TrimSpace(ng.TargetDate); raw != "" {
		d, err := time.ParseInLocation(workouts.DateLayout, raw, today.Location())
		if err != nil {
			return nil, workouts.InvalidInput("target date %q is not in YYYY-MM-DD format", raw)
		}
		targetDate = &d
	}

	created, err := s.store.Create(ctx, Goal{
		UserID:       userID,
		GoalType:     goalType,
		Description:  strings.TrimSpace(ng.Description),
		TargetValue:  ng.TargetValue,
		CurrentValue: ng.CurrentValue,
		Unit:         strings.TrimSpace(ng.Unit),
		ExerciseID:   ng.ExerciseID,
		StartDate:    today,
		TargetDate:   targetDate,
		Status:       StatusActive,
	})
	if err != nil {
		return nil, err
	}
	created.ProgressPercent = ProgressPercent(created.CurrentValue, created.TargetValue)
	return created, nil
}

// ListActive returns the active goals of a user with their progress percent.
func (s *Service) ListActive(ctx context.Context, userID int) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.goals.listactive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	goals, err := s.store.ListActive(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range goals {
		goals[i].ProgressPercent = ProgressPercent(goals[i].CurrentValue, goals[i].TargetValue)
	}
	return goals, nil
}

func (s *Service) UpdateProgress(ctx context.Context, id int, current decimal.Decimal) error {
	if current.IsNegative() {
		return workouts.InvalidInput("current value %s must not be negative", current)
	}
	return s.store.UpdateProgress(ctx, id, current)
}

// SetStatus moves a goal between active, completed and abandoned. Completing a goal
// stamps today as its completion date, any other status clears it.
func (s *Service) SetStatus(ctx context.Context, id int, rawStatus string) (_ Status, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.goals.setstatus")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	status, err := ParseStatus(rawStatus)
	if err != nil {
		return "", err
	}

	var completionDate *time.Time
	if status == StatusCompleted {
		today := clock.Today(s.clock)
		completionDate = &today
	}

	if err := s.store.SetStatus(ctx, id, status, completionDate); err != nil {
		return "", err
	}
	return status, nil
}

func (s *Service) Delete(ctx context.Context, userID, id int) error {
	return s.store.Delete(ctx, userID, id)
}
