package progress

import (
	"strings"
	"time"

	"github.com/2beens/workoutware/internal/workouts"
)

type PeriodType string

const (
	Daily     PeriodType = "daily"
	Weekly    PeriodType = "weekly"
	Monthly   PeriodType = "monthly"
	Quarterly PeriodType = "quarterly"
	Yearly    PeriodType = "yearly"
)

var AllPeriodTypes = []PeriodType{Daily, Weekly, Monthly, Quarterly, Yearly}

func ParsePeriodType(raw string) (PeriodType, error) {
	pt := PeriodType(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range AllPeriodTypes {
		if pt == known {
			return pt, nil
		}
	}
	return "", workouts.InvalidInput("unknown period type %q", raw)
}

// ParsePeriodTypes parses and deduplicates a list of period types, keeping their order.
// An empty list selects all period types.
func ParsePeriodTypes(raw []string) ([]PeriodType, error) {
	if len(raw) == 0 {
		return append([]PeriodType(nil), AllPeriodTypes...), nil
	}

	seen := make(map[PeriodType]bool, len(raw))
	var periods []PeriodType
	for _, r := range raw {
		pt, err := ParsePeriodType(r)
		if err != nil {
			return nil, err
		}
		if seen[pt] {
			continue
		}
		seen[pt] = true
		periods = append(periods, pt)
	}
	return periods, nil
}

// Start truncates a session date to the first day of its period.
// Weeks start on Monday.
func (pt PeriodType) Start(date time.Time) time.Time {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	switch pt {
	case Weekly:
		return workouts.WeekStart(d)
	case Monthly:
		return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
	case Quarterly:
		firstMonth := time.Month((int(d.Month())-1)/3*3 + 1)
		return time.Date(d.Year(), firstMonth, 1, 0, 0, 0, 0, d.Location())
	case Yearly:
		return time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, d.Location())
	default:
		return d
	}
}

// lockKey identifies the period type in the rebuild advisory lock.
func (pt PeriodType) lockKey() int32 {
	for i, known := range AllPeriodTypes {
		if pt == known {
			return int32(i + 1)
		}
	}
	return 0
}
