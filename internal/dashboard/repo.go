package dashboard

import (
	"context"
	"time"

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

// SessionCounts returns the number of completed sessions, all time and since weekStart.
func (r *Repo) SessionCounts(ctx context.Context, userID int, weekStart time.Time) (total, week int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dashboard.sessioncounts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE session_date >= $2)
			FROM workout_session
			WHERE user_id = $1 AND completed AND NOT is_template;`,
		userID, weekStart,
	).Scan(&total, &week); err != nil {
		return 0, 0, workouts.StoreErr("count sessions", err)
	}
	return total, week, nil
}

// CompletedDates returns the distinct dates with a completed session, newest first.
func (r *Repo) CompletedDates(ctx context.Context, userID int) (_ []time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dashboard.completeddates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT DISTINCT session_date
			FROM workout_session
			WHERE user_id = $1 AND completed AND NOT is_template
			ORDER BY session_date DESC;`,
		userID,
	)
	if err != nil {
		return nil, workouts.StoreErr("list session dates", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, workouts.StoreErr("scan session date", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, workouts.StoreErr("list session dates", err)
	}
	return dates, nil
}

// TopExercisesByVolume ranks exercises by lifetime volume of qualifying sets.
func (r *Repo) TopExercisesByVolume(ctx context.Context, userID, limit int) (_ []ExerciseVolume, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dashboard.topexercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT e.exercise_id, e.name, SUM(s.weight * s.reps) AS volume
			FROM workout_set s
			JOIN session_exercise se ON se.session_exercise_id = s.session_exercise_id
			JOIN workout_session ws ON ws.session_id = se.session_id
			JOIN exercise e ON e.exercise_id = se.exercise_id
			WHERE ws.user_id = $1
				AND ws.completed AND NOT ws.is_template
				AND s.completed AND NOT s.is_warmup
				AND s.weight IS NOT NULL
			GROUP BY e.exercise_id, e.name
			ORDER BY volume DESC, e.name
			LIMIT $2;`,
		userID, limit,
	)
	if err != nil {
		return nil, workouts.StoreErr("top exercises", err)
	}
	defer rows.Close()

	var top []ExerciseVolume
	for rows.Next() {
		var ev ExerciseVolume
		if err := rows.Scan(&ev.ExerciseID, &ev.ExerciseName, &ev.TotalVolume); err != nil {
			return nil, workouts.StoreErr("scan exercise volume", err)
		}
		top = append(top, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, workouts.StoreErr("top exercises", err)
	}
	return top, nil
}

// ExercisesDoneSince returns the ids of exercises the user performed in non-template
// sessions dated since or later.
func (r *Repo) ExercisesDoneSince(ctx context.Context, userID int, since time.Time) (_ []int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dashboard.exercisesdone")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT DISTINCT se.exercise_id
			FROM session_exercise se
			JOIN workout_session ws ON ws.session_id = se.session_id
			WHERE ws.user_id = $1 AND NOT ws.is_template AND ws.session_date >= $2
			ORDER BY se.exercise_id;`,
		userID, since,
	)
	if err != nil {
		return nil, workouts.StoreErr("list recent exercises", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, workouts.StoreErr("scan exercise id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, workouts.StoreErr("list recent exercises", err)
	}
	return ids, nil
}
