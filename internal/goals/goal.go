package goals

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/2beens/workoutware/internal/workouts"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusAbandoned Status = "abandoned"
)

func ParseStatus(raw string) (Status, error) {
	switch s := Status(strings.ToLower(strings.TrimSpace(raw))); s {
	case StatusActive, StatusCompleted, StatusAbandoned:
		return s, nil
	}
	return "", workouts.InvalidInput("unknown goal status %q", raw)
}

type Goal struct {
	ID              int             `json:"id"`
	UserID          int             `json:"userId"`
	GoalType        string          `json:"goalType"`
	Description     string          `json:"description"`
	TargetValue     decimal.Decimal `json:"targetValue"`
	CurrentValue    decimal.Decimal `json:"currentValue"`
	Unit            string          `json:"unit"`
	ExerciseID      *int            `json:"exerciseId,omitempty"`
	StartDate       time.Time       `json:"startDate"`
	TargetDate      *time.Time      `json:"targetDate,omitempty"`
	Status          Status          `json:"status"`
	CompletionDate  *time.Time      `json:"completionDate,omitempty"`
	ProgressPercent decimal.Decimal `json:"progressPercent"`
}

type NewGoal struct {
	GoalType     string          `json:"goalType"`
	Description  string          `json:"description"`
	TargetValue  decimal.Decimal `json:"targetValue"`
	CurrentValue decimal.Decimal `json:"currentValue"`
	Unit         string          `json:"unit"`
	ExerciseID   *int            `json:"exerciseId,omitempty"`
	TargetDate   string          `json:"targetDate"`
}

var (
	hundred         = decimal.NewFromInt(100)
	maxProgressPerc = decimal.NewFromInt(999)
)

// ProgressPercent is current/target as a percentage, capped at 999. A non-positive
// target has no progress.
func ProgressPercent(current, target decimal.Decimal) decimal.Decimal {
	if !target.IsPositive() {
		return decimal.Zero
	}
	pct := current.Div(target).Mul(hundred)
	if pct.GreaterThan(maxProgressPerc) {
		pct = maxProgressPerc
	}
	return pct.Round(2)
}
