package recommendations

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/workoutware/internal/db"
	"github.com/2beens/workoutware/internal/telemetry/tracing"
	"github.com/2beens/workoutware/internal/workouts"
)

type Repo struct {
	db db.Querier
}

func NewRepo(db db.Querier) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) UserExists(ctx context.Context, userID int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recommendations.userexists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var one int
	err = r.db.QueryRow(ctx, `SELECT 1 FROM user_info WHERE user_id = $1;`, userID).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, workouts.StoreErr("check user", err)
	}
	return true, nil
}

// RecentSets returns up to n latest completed, non warm-up sets of every session
// exercise of the user's non-template sessions, ranked from the most recent.
func (r *Repo) RecentSets(ctx context.Context, userID, n int) (_ []RecentSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recommendations.recentsets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("sets.per_exercise", n))

	rows, err := r.db.Query(
		ctx,
		`SELECT ranked.session_exercise_id, ranked.exercise_id, ranked.name, ranked.target_reps,
				ranked.set_id, ranked.weight, ranked.reps, ranked.completion_time, ranked.rn
			FROM (
				SELECT se.session_exercise_id, se.exercise_id, e.name, se.target_reps,
					s.set_id, s.weight, s.reps, s.completion_time,
					ROW_NUMBER() OVER (
						PARTITION BY se.session_exercise_id
						ORDER BY s.completion_time DESC NULLS LAST, s.set_id DESC
					) AS rn
				FROM workout_set s
				JOIN session_exercise se ON se.session_exercise_id = s.session_exercise_id
				JOIN workout_session ws ON ws.session_id = se.session_id
				JOIN exercise e ON e.exercise_id = se.exercise_id
				WHERE ws.user_id = $1
					AND NOT ws.is_template
					AND s.completed AND NOT s.is_warmup
			) ranked
			WHERE ranked.rn <= $2
			ORDER BY ranked.session_exercise_id, ranked.rn;`,
		userID, n,
	)
	if err != nil {
		return nil, workouts.StoreErr("list recent sets", err)
	}
	defer rows.Close()

	var sets []RecentSet
	for rows.Next() {
		var s RecentSet
		if err := rows.Scan(
			&s.SessionExerciseID, &s.ExerciseID, &s.ExerciseName, &s.TargetReps,
			&s.SetID, &s.Weight, &s.Reps, &s.CompletionTime, &s.Rank,
		); err != nil {
			return nil, workouts.StoreErr("scan recent set", err)
		}
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, workouts.StoreErr("list recent sets", err)
	}

	span.SetAttributes(attribute.Int("sets.count", len(sets)))
	return sets, nil
}

// WindowContributions returns the user's qualifying sets from since on, one row per
// target of the set's exercise.
func (r *Repo) WindowContributions(ctx context.Context, userID int, since time.Time) (_ []Contribution, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recommendations.window")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT s.set_id, eta.target_id, s.weight * s.reps,
				COUNT(eta.target_id) OVER (PARTITION BY s.set_id)
			FROM workout_set s
			JOIN session_exercise se ON se.session_exercise_id = s.session_exercise_id
			JOIN workout_session ws ON ws.session_id = se.session_id
			LEFT JOIN exercise_target_association eta ON eta.exercise_id = se.exercise_id
			WHERE ws.user_id = $1
				AND ws.session_date >= $2
				AND ws.completed AND NOT ws.is_template
				AND s.completed AND NOT s.is_warmup
				AND s.weight IS NOT NULL
			ORDER BY s.set_id, eta.target_id;`,
		userID, since,
	)
	if err != nil {
		return nil, workouts.StoreErr("list window sets", err)
	}
	defer rows.Close()

	var contributions []Contribution
	for rows.Next() {
		var c Contribution
		if err := rows.Scan(&c.SetID, &c.TargetID, &c.Volume, &c.TargetCount); err != nil {
			return nil, workouts.StoreErr("scan window set", err)
		}
		contributions = append(contributions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, workouts.StoreErr("list window sets", err)
	}
	return contributions, nil
}
