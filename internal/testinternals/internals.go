package testinternals

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/2beens/workoutware/internal/clock"
)

// InlineRunner runs transactional functions directly against a single store,
// standing in for db.UnitOfWork in unit tests.
type InlineRunner[S any] struct {
	Store S
	Calls int
}

func NewInlineRunner[S any](store S) *InlineRunner[S] {
	return &InlineRunner[S]{Store: store}
}

func (r *InlineRunner[S]) Do(ctx context.Context, fn func(ctx context.Context, store S) error) error {
	r.Calls++
	return fn(ctx, r.Store)
}

// FixedClock returns a clock frozen at the given date, noon UTC.
func FixedClock(year int, month time.Month, day int) clock.Fixed {
	return clock.Fixed(time.Date(year, month, day, 12, 0, 0, 0, time.UTC))
}

func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func NullDec(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func IntPtr(v int) *int {
	return &v
}
