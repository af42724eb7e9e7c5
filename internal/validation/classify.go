package validation

import (
	"time"

	"github.com/shopspring/decimal"
)

type Classification string

const (
	FirstTime     Classification = "first_time"
	Outlier       Classification = "outlier"
	PR            Classification = "pr"
	SuspiciousLow Classification = "suspicious_low"
	Normal        Classification = "normal"
)

const (
	DefaultOutlierPct       = 0.15
	DefaultSuspiciousLowPct = 0.30
)

// Thresholds are fractions: 0.15 means 15% above the historical max.
type Thresholds struct {
	OutlierPct       float64
	SuspiciousLowPct float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		OutlierPct:       DefaultOutlierPct,
		SuspiciousLowPct: DefaultSuspiciousLowPct,
	}
}

// Baseline is the user's history for one exercise over completed, non template,
// non warm-up sets with a weight. Count is zero when there is no history.
type Baseline struct {
	MaxWeight decimal.Decimal
	AvgWeight decimal.Decimal
	Count     int
}

type Result struct {
	Classification Classification      `json:"classification"`
	InputWeight    decimal.Decimal     `json:"inputWeight"`
	ExpectedMax    decimal.NullDecimal `json:"expectedMax"`
	AverageWeight  decimal.NullDecimal `json:"averageWeight"`
}

// Event is the write-once audit row of one classification.
type Event struct {
	ID           int                 `json:"id"`
	UserID       int                 `json:"userId"`
	SetID        *int                `json:"setId,omitempty"`
	ExerciseID   int                 `json:"exerciseId"`
	ExerciseName string              `json:"exerciseName,omitempty"`
	InputWeight  decimal.Decimal     `json:"inputWeight"`
	ExpectedMax  decimal.NullDecimal `json:"expectedMax"`
	FlaggedAs    Classification      `json:"flaggedAs"`
	UserAction   *string             `json:"userAction,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
}

var one = decimal.NewFromInt(1)

// Classify checks input against the baseline. Rules are evaluated in order:
// outlier, pr, suspicious low. A weight equal to the max is normal.
// A zero SuspiciousLowPct disables the suspicious low rule.
func Classify(input decimal.Decimal, baseline Baseline, thresholds Thresholds) Result {
	if baseline.Count == 0 {
		return Result{
			Classification: FirstTime,
			InputWeight:    input,
		}
	}

	res := Result{
		InputWeight:   input,
		ExpectedMax:   decimal.NewNullDecimal(baseline.MaxWeight),
		AverageWeight: decimal.NewNullDecimal(baseline.AvgWeight),
	}

	outlierLimit := baseline.MaxWeight.Mul(one.Add(decimal.NewFromFloat(thresholds.OutlierPct)))
	lowLimit := baseline.AvgWeight.Mul(one.Sub(decimal.NewFromFloat(thresholds.SuspiciousLowPct)))

	switch {
	case input.GreaterThan(outlierLimit):
		res.Classification = Outlier
	case input.GreaterThan(baseline.MaxWeight):
		res.Classification = PR
	case thresholds.SuspiciousLowPct > 0 && input.LessThan(lowLimit):
		res.Classification = SuspiciousLow
	default:
		res.Classification = Normal
	}
	return res
}
