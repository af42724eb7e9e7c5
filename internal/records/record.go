package records

import (
	"time"

	"github.com/shopspring/decimal"
)

type RecordType string

const (
	MaxWeight RecordType = "max_weight"
	MaxReps   RecordType = "max_reps"
	MaxVolume RecordType = "max_volume"
)

func (rt RecordType) Valid() bool {
	switch rt {
	case MaxWeight, MaxReps, MaxVolume:
		return true
	}
	return false
}

// PersonalRecord is the current best of a user for one exercise and record type.
type PersonalRecord struct {
	ID           int                 `json:"id"`
	UserID       int                 `json:"userId"`
	ExerciseID   int                 `json:"exerciseId"`
	ExerciseName string              `json:"exerciseName,omitempty"`
	RecordType   RecordType          `json:"recordType"`
	CurrentValue decimal.Decimal     `json:"currentValue"`
	Reps         *int                `json:"reps,omitempty"`
	PreviousBest decimal.NullDecimal `json:"previousBest"`
	AchievedDate time.Time           `json:"achievedDate"`
	SessionID    *int                `json:"sessionId,omitempty"`
	Notes        string              `json:"notes"`
}

// Entry is a performance submitted to the ledger.
type Entry struct {
	UserID     int
	ExerciseID int
	Value      decimal.Decimal
	Reps       int
	RecordType RecordType
	SessionID  *int
	Notes      string
}

type Outcome struct {
	IsNewRecord   bool                `json:"isNewRecord"`
	PreviousValue decimal.NullDecimal `json:"previousValue"`
	Record        *PersonalRecord     `json:"record"`
}

// improves reports whether value displaces the current record. Ties never do.
func improves(current *PersonalRecord, value decimal.Decimal) bool {
	return current == nil || value.GreaterThan(current.CurrentValue)
}
