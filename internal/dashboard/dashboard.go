package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/2beens/workoutware/internal/bodystats"
	"github.com/2beens/workoutware/internal/progress"
	"github.com/2beens/workoutware/internal/recommendations"
	"github.com/2beens/workoutware/internal/records"
	"github.com/2beens/workoutware/internal/validation"
	"github.com/2beens/workoutware/internal/workouts"
)

const (
	RecentRecordsLimit     = 5
	RecentValidationsLimit = 10
	TopExercisesLimit      = 5
	TrendWeeks             = 8
	SuggestionsLimit       = 5
	SuggestionsWindowDays  = 7
)

type KPIs struct {
	Streak         int `json:"streak"`
	WeekCompleted  int `json:"weekCompleted"`
	TotalCompleted int `json:"totalCompleted"`
}

type ExerciseVolume struct {
	ExerciseID   int             `json:"exerciseId"`
	ExerciseName string          `json:"exerciseName"`
	TotalVolume  decimal.Decimal `json:"totalVolume"`
}

type ExerciseTrend struct {
	ExerciseID   int            `json:"exerciseId"`
	ExerciseName string         `json:"exerciseName"`
	Weeks        []progress.Row `json:"weeks"`
}

type Dashboard struct {
	UserID          int                              `json:"userId"`
	KPIs            KPIs                             `json:"kpis"`
	RecentRecords   []records.PersonalRecord         `json:"recentRecords"`
	RecentEvents    []validation.Event               `json:"recentValidations"`
	TopExercises    []ExerciseVolume                 `json:"topExercises"`
	WeeklyTrends    []ExerciseTrend                  `json:"weeklyTrends"`
	BodyweightTrend []bodystats.TrendPoint           `json:"bodyweightTrend"`
	Recommendations *recommendations.Recommendations `json:"recommendations"`
	Suggestions     []workouts.Exercise              `json:"suggestions"`
}

// Streak counts consecutive training days back from today. dates must be distinct
// calendar dates, newest first.
func Streak(dates []time.Time, today time.Time) int {
	streak := 0
	for i, d := range dates {
		expected := today.AddDate(0, 0, -i)
		if !sameDay(d, expected) {
			break
		}
		streak++
	}
	return streak
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Suggest picks catalog exercises not done recently, in catalog order.
func Suggest(catalog []workouts.Exercise, doneRecently []int, limit int) []workouts.Exercise {
	done := make(map[int]bool, len(doneRecently))
	for _, id := range doneRecently {
		done[id] = true
	}

	var suggestions []workouts.Exercise
	for _, e := range catalog {
		if len(suggestions) >= limit {
			break
		}
		if !done[e.ID] {
			suggestions = append(suggestions, e)
		}
	}
	return suggestions
}
