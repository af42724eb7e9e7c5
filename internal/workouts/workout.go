package workouts

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID             int       `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	Registered     bool      `json:"registered"`
	DateRegistered time.Time `json:"dateRegistered"`
}

type Target struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Group    string `json:"group"`
	Function string `json:"function"`
}

// Exercise is a shared catalog entry. Targets are the muscle groups it trains.
type Exercise struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	ExerciseType string   `json:"exerciseType"`
	Subtype      string   `json:"subtype"`
	Equipment    string   `json:"equipment"`
	Difficulty   string   `json:"difficulty"`
	Description  string   `json:"description"`
	DemoLink     string   `json:"demoLink"`
	Targets      []Target `json:"targets,omitempty"`
}

type Session struct {
	ID              int                 `json:"id"`
	UserID          int                 `json:"userId"`
	Name            string              `json:"name"`
	Date            time.Time           `json:"date"`
	StartTime       *time.Time          `json:"startTime,omitempty"`
	EndTime         *time.Time          `json:"endTime,omitempty"`
	DurationMinutes *int                `json:"durationMinutes,omitempty"`
	Bodyweight      decimal.NullDecimal `json:"bodyweight"`
	Completed       bool                `json:"completed"`
	IsTemplate      bool                `json:"isTemplate"`
	Exercises       []SessionExercise   `json:"exercises,omitempty"`
}

type SessionExercise struct {
	ID           int    `json:"id"`
	SessionID    int    `json:"sessionId"`
	ExerciseID   int    `json:"exerciseId"`
	ExerciseName string `json:"exerciseName"`
	Order        int    `json:"order"`
	TargetSets   *int   `json:"targetSets,omitempty"`
	TargetReps   *int   `json:"targetReps,omitempty"`
	Completed    bool   `json:"completed"`
	Sets         []Set  `json:"sets,omitempty"`
}

// Set is one logged performance. A null weight marks a bodyweight set.
type Set struct {
	ID                int                 `json:"id"`
	SessionExerciseID int                 `json:"sessionExerciseId"`
	SetNumber         int                 `json:"setNumber"`
	Weight            decimal.NullDecimal `json:"weight"`
	Reps              int                 `json:"reps"`
	RPE               *int                `json:"rpe,omitempty"`
	Completed         bool                `json:"completed"`
	IsWarmup          bool                `json:"isWarmup"`
	CompletionTime    *time.Time          `json:"completionTime,omitempty"`
}

// SessionExerciseContext is what logging a set needs to know about its parent rows.
type SessionExerciseContext struct {
	SessionExerciseID int
	SessionID         int
	UserID            int
	ExerciseID        int
	ExerciseName      string
	IsTemplate        bool
	SessionCompleted  bool
}

type NewSession struct {
	UserID     int                 `json:"userId"`
	Name       string              `json:"name"`
	Date       string              `json:"date"`
	StartTime  *time.Time          `json:"startTime,omitempty"`
	Bodyweight decimal.NullDecimal `json:"bodyweight"`
	IsTemplate bool                `json:"isTemplate"`
}

type NewSessionExercise struct {
	ExerciseID int  `json:"exerciseId"`
	Order      int  `json:"order"`
	TargetSets *int `json:"targetSets,omitempty"`
	TargetReps *int `json:"targetReps,omitempty"`
}

type ListSessionsParams struct {
	UserID          int
	CurrentWeekOnly bool
	Limit           int
}

const DateLayout = "2006-01-02"

// WeekStart returns the Monday of the ISO week containing day.
func WeekStart(day time.Time) time.Time {
	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}
