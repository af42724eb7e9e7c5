package bodystats

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/2beens/workoutware/internal/clock"
	"github.com/2beens/workoutware/internal/telemetry/tracing"
	"github.com/2beens/workoutware/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=bodystats_test

type Store interface {
	Insert(ctx context.Context, l Log) (*Log, error)
	List(ctx context.Context, userID, limit int) ([]Log, error)
	Trend(ctx context.Context, userID int) ([]TrendPoint, error)
}

const (
	DefaultListLimit = 30
	MaxListLimit     = 365
)

var hundred = decimal.NewFromInt(100)

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

func (s *Service) Log(ctx context.Context, userID int, nl NewLog) (_ *Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.bodystats.log")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if userID <= 0 {
		return nil, workouts.InvalidInput("user id must be positive")
	}
	if !nl.Weight.IsPositive() {
		return nil, workouts.InvalidInput("weight %s must be positive", nl.Weight)
	}
	for name, v := range map[string]decimal.NullDecimal{"neck": nl.Neck, "waist": nl.Waist, "hips": nl.Hips} {
		if v.Valid && !v.Decimal.IsPositive() {
			return nil, workouts.InvalidInput("%s %s must be positive", name, v.Decimal)
		}
	}
	if bf := nl.BodyFatPercentage; bf.Valid && (bf.Decimal.IsNegative() || bf.Decimal.GreaterThan(hundred)) {
		return nil, workouts.InvalidInput("body fat percentage %s must be between 0 and 100", bf.Decimal)
	}

	date := clock.Today(s.clock)
	if raw := strings.TrimSpace(nl.Date); raw != "" {
		date, err = time.ParseInLocation(workouts.DateLayout, raw, s.clock.Now().Location())
		if err != nil {
			return nil, workouts.InvalidInput("date %q is not in YYYY-MM-DD format", raw)
		}
	}

	return s.store.Insert(ctx, Log{
		UserID:            userID,
		Date:              date,
		Weight:            nl.Weight,
		Neck:              nl.Neck,
		Waist:             nl.Waist,
		Hips:              nl.Hips,
		BodyFatPercentage: nl.BodyFatPercentage,
		Notes:             strings.TrimSpace(nl.Notes),
	})
}

func (s *Service) List(ctx context.Context, userID, limit int) ([]Log, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return s.store.List(ctx, userID, limit)
}

func (s *Service) Trend(ctx context.Context, userID int) ([]TrendPoint, error) {
	return s.store.Trend(ctx, userID)
}
