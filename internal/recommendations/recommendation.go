package recommendations

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/2beens/workoutware/internal/workouts"
)

const (
	DefaultMinConsecutiveSets    = 3
	DefaultWeightIncreasePct     = 2.5
	DefaultLookbackDays          = 30
	DefaultLowVolumeThresholdPct = 0.30
)

const (
	FlagNeverTrained      = "never_trained"
	FlagLowRelativeVolume = "low_relative_volume"
)

type Config struct {
	MinConsecutiveSets int
	// WeightIncreasePct is a percentage: 2.5 means +2.5%.
	WeightIncreasePct float64
	LookbackDays      int
	// LowVolumeThresholdPct is a fraction of the top group volume.
	LowVolumeThresholdPct float64
}

func DefaultConfig() Config {
	return Config{
		MinConsecutiveSets:    DefaultMinConsecutiveSets,
		WeightIncreasePct:     DefaultWeightIncreasePct,
		LookbackDays:          DefaultLookbackDays,
		LowVolumeThresholdPct: DefaultLowVolumeThresholdPct,
	}
}

// RecentSet is one of the latest completed, non warm-up sets of a session exercise.
// Rank 1 is the most recent one.
type RecentSet struct {
	SessionExerciseID int
	ExerciseID        int
	ExerciseName      string
	TargetReps        *int
	SetID             int
	Weight            decimal.NullDecimal
	Reps              int
	CompletionTime    *time.Time
	Rank              int
}

// Contribution is a qualifying set in the lookback window paired with one of the
// targets of its exercise. TargetCount is the number of targets of that exercise.
// Sets of exercises without targets come with a nil TargetID.
type Contribution struct {
	SetID       int
	TargetID    *int
	Volume      decimal.Decimal
	TargetCount int
}

type WeightIncrease struct {
	ExerciseID      int             `json:"exerciseId"`
	ExerciseName    string          `json:"exerciseName"`
	CurrentWeight   decimal.Decimal `json:"currentWeight"`
	SuggestedWeight decimal.Decimal `json:"suggestedWeight"`
	TargetReps      int             `json:"targetReps"`
	RecentReps      []int           `json:"recentReps"`
	Reason          string          `json:"reason"`
}

type NeglectedGroup struct {
	TargetID   int             `json:"targetId"`
	TargetName string          `json:"targetName"`
	Group      string          `json:"group"`
	Flag       string          `json:"flag"`
	Volume     decimal.Decimal `json:"volume"`
	MaxVolume  decimal.Decimal `json:"maxVolume"`
	Reason     string          `json:"reason"`
}

type Recommendations struct {
	WeightIncrease        []WeightIncrease `json:"weightIncrease"`
	NeglectedMuscleGroups []NeglectedGroup `json:"neglectedMuscleGroups"`
}

var hundred = decimal.NewFromInt(100)

// WeightIncreases suggests a heavier weight for exercises where the last n sets of a
// session exercise all met its target reps. Only the most recent session exercise of
// each exercise name is judged; an older one never stands in when the newest misses.
func WeightIncreases(sets []RecentSet, n int, increasePct float64) []WeightIncrease {
	groups := make(map[int][]RecentSet)
	var order []int
	for _, s := range sets {
		if _, ok := groups[s.SessionExerciseID]; !ok {
			order = append(order, s.SessionExerciseID)
		}
		groups[s.SessionExerciseID] = append(groups[s.SessionExerciseID], s)
	}
	for _, id := range order {
		g := groups[id]
		sort.SliceStable(g, func(i, j int) bool { return g[i].Rank < g[j].Rank })
	}
	sort.SliceStable(order, func(i, j int) bool {
		return moreRecent(groups[order[i]][0], groups[order[j]][0])
	})

	factor := decimal.NewFromInt(1).Add(decimal.NewFromFloat(increasePct).Div(hundred))
	seen := make(map[string]bool)
	var out []WeightIncrease
	for _, id := range order {
		g := groups[id]
		latest := g[0]
		if seen[latest.ExerciseName] {
			continue
		}
		seen[latest.ExerciseName] = true
		if len(g) < n || latest.TargetReps == nil {
			continue
		}
		if !latest.Weight.Valid || !latest.Weight.Decimal.IsPositive() {
			continue
		}

		target := *latest.TargetReps
		recent := g[:n]
		reps := make([]int, 0, n)
		allMet := true
		for _, s := range recent {
			reps = append(reps, s.Reps)
			if s.Reps < target {
				allMet = false
			}
		}
		if !allMet {
			continue
		}

		current := latest.Weight.Decimal
		out = append(out, WeightIncrease{
			ExerciseID:      latest.ExerciseID,
			ExerciseName:    latest.ExerciseName,
			CurrentWeight:   current,
			SuggestedWeight: current.Mul(factor).Round(2),
			TargetReps:      target,
			RecentReps:      reps,
			Reason:          fmt.Sprintf("hit %d+ reps on the last %d sets", target, n),
		})
	}
	return out
}

// moreRecent orders by completion time desc with unknown times last, then set id desc.
func moreRecent(a, b RecentSet) bool {
	switch {
	case a.CompletionTime != nil && b.CompletionTime == nil:
		return true
	case a.CompletionTime == nil && b.CompletionTime != nil:
		return false
	case a.CompletionTime != nil && !a.CompletionTime.Equal(*b.CompletionTime):
		return a.CompletionTime.After(*b.CompletionTime)
	}
	return a.SetID > b.SetID
}

// NeglectedGroups flags catalog targets that got no volume in the window, followed by
// those whose volume is below thresholdPct of the top target. A set's volume is split
// evenly across the targets of its exercise. No sets in the window means no flags.
func NeglectedGroups(targets []workouts.Target, contributions []Contribution, thresholdPct float64) []NeglectedGroup {
	qualifying := make(map[int]bool)
	volumes := make(map[int]decimal.Decimal, len(targets))
	for _, c := range contributions {
		qualifying[c.SetID] = true
		if c.TargetID == nil || c.TargetCount <= 0 {
			continue
		}
		share := c.Volume.Div(decimal.NewFromInt(int64(c.TargetCount)))
		volumes[*c.TargetID] = volumes[*c.TargetID].Add(share)
	}
	if len(qualifying) == 0 {
		return nil
	}

	maxVolume := decimal.Zero
	for _, t := range targets {
		if v := volumes[t.ID]; v.GreaterThan(maxVolume) {
			maxVolume = v
		}
	}
	lowLimit := maxVolume.Mul(decimal.NewFromFloat(thresholdPct))

	var never, low []NeglectedGroup
	seen := make(map[int]bool, len(targets))
	for _, t := range targets {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true

		v := volumes[t.ID]
		ng := NeglectedGroup{
			TargetID:   t.ID,
			TargetName: t.Name,
			Group:      t.Group,
			Volume:     v.Round(2),
			MaxVolume:  maxVolume.Round(2),
		}
		switch {
		case !v.IsPositive():
			ng.Flag = FlagNeverTrained
			ng.Reason = fmt.Sprintf("%s was not trained in the lookback window", t.Name)
			never = append(never, ng)
		case v.LessThan(lowLimit):
			ng.Flag = FlagLowRelativeVolume
			ng.Reason = fmt.Sprintf("%s volume is below %s%% of the most trained group", t.Name, decimal.NewFromFloat(thresholdPct).Mul(hundred).String())
			low = append(low, ng)
		}
	}
	return append(never, low...)
}
