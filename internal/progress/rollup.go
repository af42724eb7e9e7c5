package progress

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// QualifyingSet is a weighted, completed, non warm-up set of a completed, non template session.
type QualifyingSet struct {
	SetID       int
	SessionID   int
	ExerciseID  int
	SessionDate time.Time
	Weight      decimal.Decimal
	Reps        int
}

// Row is one periodic rollup of an exercise.
type Row struct {
	ID           int             `json:"id"`
	UserID       int             `json:"userId"`
	ExerciseID   int             `json:"exerciseId"`
	ExerciseName string          `json:"exerciseName,omitempty"`
	PeriodType   PeriodType      `json:"periodType"`
	PeriodStart  time.Time       `json:"periodStart"`
	MaxWeight    decimal.Decimal `json:"maxWeight"`
	AvgWeight    decimal.Decimal `json:"avgWeight"`
	TotalVolume  decimal.Decimal `json:"totalVolume"`
	WorkoutCount int             `json:"workoutCount"`
}

type groupKey struct {
	periodStart time.Time
	exerciseID  int
}

type group struct {
	max      decimal.Decimal
	sum      decimal.Decimal
	volume   decimal.Decimal
	count    int64
	sessions map[int]struct{}
}

// Rollup groups sets by (period start, exercise). Rows come out ordered by period
// start, then exercise id. The average weight is rounded half to even to 2 places.
func Rollup(userID int, pt PeriodType, sets []QualifyingSet) []Row {
	groups := make(map[groupKey]*group)
	var keys []groupKey

	for _, s := range sets {
		k := groupKey{
			periodStart: pt.Start(s.SessionDate),
			exerciseID:  s.ExerciseID,
		}
		g, ok := groups[k]
		if !ok {
			g = &group{
				max:      s.Weight,
				sum:      decimal.Zero,
				volume:   decimal.Zero,
				sessions: make(map[int]struct{}),
			}
			groups[k] = g
			keys = append(keys, k)
		}
		if s.Weight.GreaterThan(g.max) {
			g.max = s.Weight
		}
		g.sum = g.sum.Add(s.Weight)
		g.volume = g.volume.Add(s.Weight.Mul(decimal.NewFromInt(int64(s.Reps))))
		g.count++
		g.sessions[s.SessionID] = struct{}{}
	}

	sort.Slice(keys, func(i, j int) bool {
		if !keys[i].periodStart.Equal(keys[j].periodStart) {
			return keys[i].periodStart.Before(keys[j].periodStart)
		}
		return keys[i].exerciseID < keys[j].exerciseID
	})

	rows := make([]Row, 0, len(keys))
	for _, k := range keys {
		g := groups[k]
		rows = append(rows, Row{
			UserID:       userID,
			ExerciseID:   k.exerciseID,
			PeriodType:   pt,
			PeriodStart:  k.periodStart,
			MaxWeight:    g.max,
			AvgWeight:    g.sum.Div(decimal.NewFromInt(g.count)).RoundBank(2),
			TotalVolume:  g.volume,
			WorkoutCount: len(g.sessions),
		})
	}
	return rows
}
