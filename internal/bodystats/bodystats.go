package bodystats

import (
	"time"

	"github.com/shopspring/decimal"
)

// Log is a body measurement snapshot.
type Log struct {
	ID                int                 `json:"id"`
	UserID            int                 `json:"userId"`
	Date              time.Time           `json:"date"`
	Weight            decimal.Decimal     `json:"weight"`
	Neck              decimal.NullDecimal `json:"neck"`
	Waist             decimal.NullDecimal `json:"waist"`
	Hips              decimal.NullDecimal `json:"hips"`
	BodyFatPercentage decimal.NullDecimal `json:"bodyFatPercentage"`
	Notes             string              `json:"notes"`
}

type NewLog struct {
	Date              string              `json:"date"`
	Weight            decimal.Decimal     `json:"weight"`
	Neck              decimal.NullDecimal `json:"neck"`
	Waist             decimal.NullDecimal `json:"waist"`
	Hips              decimal.NullDecimal `json:"hips"`
	BodyFatPercentage decimal.NullDecimal `json:"bodyFatPercentage"`
	Notes             string              `json:"notes"`
}

type TrendPoint struct {
	Date   time.Time       `json:"date"`
	Weight decimal.Decimal `json:"weight"`
}
