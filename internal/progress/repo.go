package progress

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

var progressColumns = []string{
	"user_id", "exercise_id", "period_type", "period_start",
	"max_weight", "avg_weight", "total_volume", "workout_count",
}

type ListParams struct {
	UserID     int
	PeriodType PeriodType
	ExerciseID int
	From       *time.Time
	Limit      int
}

type Repo struct {
	db db.Querier
}

func NewRepo(db db.Querier) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) UserExists(ctx context.Context, userID int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.userexists")
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

// LockUserPeriod serializes rebuilds of the same (user, period type) until the transaction ends.
func (r *Repo) LockUserPeriod(ctx context.Context, userID int, pt PeriodType) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.lock")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.String("period_type", string(pt)))

	if _, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock($1::int, $2::int);`, int32(userID), pt.lockKey()); err != nil {
		return workouts.StoreErr("lock progress rebuild", err)
	}
	return nil
}

func (r *Repo) QualifyingSets(ctx context.Context, userID int) (_ []QualifyingSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.qualifyingsets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT s.set_id, ws.session_id, se.exercise_id, ws.session_date, s.weight, s.reps
			FROM workout_set s
			JOIN session_exercise se ON se.session_exercise_id = s.session_exercise_id
			JOIN workout_session ws ON ws.session_id = se.session_id
			WHERE ws.user_id = $1
				AND ws.completed AND NOT ws.is_template
				AND s.completed AND NOT s.is_warmup
				AND s.weight IS NOT NULL
			ORDER BY ws.session_date, s.set_id;`,
		userID,
	)
	if err != nil {
		return nil, workouts.StoreErr("list qualifying sets", err)
	}
	defer rows.Close()

	var sets []QualifyingSet
	for rows.Next() {
		var s QualifyingSet
		if err := rows.Scan(&s.SetID, &s.SessionID, &s.ExerciseID, &s.SessionDate, &s.Weight, &s.Reps); err != nil {
			return nil, workouts.StoreErr("scan qualifying set", err)
		}
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, workouts.StoreErr("list qualifying sets", err)
	}

	span.SetAttributes(attribute.Int("sets.count", len(sets)))
	return sets, nil
}

func (r *Repo) DeleteRows(ctx context.Context, userID int, pt PeriodType) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.String("period_type", string(pt)))

	tag, err := r.db.Exec(ctx, `DELETE FROM progress WHERE user_id = $1 AND period_type = $2;`, userID, string(pt))
	if err != nil {
		return 0, workouts.StoreErr("delete progress rows", err)
	}
	return tag.RowsAffected(), nil
}

// InsertRows bulk inserts rollups with the COPY protocol.
func (r *Repo) InsertRows(ctx context.Context, rows []Row) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("rows.count", len(rows)))

	if len(rows) == 0 {
		return 0, nil
	}

	copied, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"progress"},
		progressColumns,
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			row := rows[i]
			return []any{
				row.UserID, row.ExerciseID, string(row.PeriodType), row.PeriodStart,
				row.MaxWeight, row.AvgWeight, row.TotalVolume, row.WorkoutCount,
			}, nil
		}),
	)
	if err != nil {
		return 0, workouts.StoreErr("insert progress rows", err)
	}
	return copied, nil
}

// ListRows returns rollups of a user, ordered by period start and exercise name.
func (r *Repo) ListRows(ctx context.Context, params ListParams) (_ []Row, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", params.UserID))
	span.SetAttributes(attribute.String("period_type", string(params.PeriodType)))
	span.SetAttributes(attribute.Int("exercise.id", params.ExerciseID))

	rows, err := r.db.Query(
		ctx,
		`SELECT p.progress_id, p.user_id, p.exercise_id, e.name, p.period_type, p.period_start,
				p.max_weight, p.avg_weight, p.total_volume, p.workout_count
			FROM progress p
			JOIN exercise e ON e.exercise_id = p.exercise_id
			WHERE p.user_id = $1
				AND p.period_type = $2
				AND ($3::int = 0 OR p.exercise_id = $3)
				AND ($4::date IS NULL OR p.period_start >= $4)
			ORDER BY p.period_start, e.name
			LIMIT CASE WHEN $5::int > 0 THEN $5::int END;`,
		params.UserID, string(params.PeriodType), params.ExerciseID, params.From, params.Limit,
	)
	if err != nil {
		return nil, workouts.StoreErr("list progress rows", err)
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		var (
			row        Row
			periodType string
		)
		if err := rows.Scan(
			&row.ID, &row.UserID, &row.ExerciseID, &row.ExerciseName, &periodType, &row.PeriodStart,
			&row.MaxWeight, &row.AvgWeight, &row.TotalVolume, &row.WorkoutCount,
		); err != nil {
			return nil, workouts.StoreErr("scan progress row", err)
		}
		row.PeriodType = PeriodType(periodType)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, workouts.StoreErr("list progress rows", err)
	}
	return result, nil
}
