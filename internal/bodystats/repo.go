package bodystats

import (
	"context"

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

func (r *Repo) Insert(ctx context.Context, l Log) (_ *Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodystats.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", l.UserID))

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO user_stats_log
				(user_id, log_date, weight, neck, waist, hips, body_fat_percentage, notes)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING log_id;`,
		l.UserID, l.Date, l.Weight, l.Neck, l.Waist, l.Hips, l.BodyFatPercentage, l.Notes,
	).Scan(&l.ID); err != nil {
		return nil, workouts.ReferenceErr("insert body stats", err, workouts.ErrUserNotFound)
	}
	return &l, nil
}

// List returns the latest entries first.
func (r *Repo) List(ctx context.Context, userID, limit int) (_ []Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodystats.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT log_id, user_id, log_date, weight, neck, waist, hips, body_fat_percentage, notes
			FROM user_stats_log
			WHERE user_id = $1
			ORDER BY log_date DESC, log_id DESC
			LIMIT CASE WHEN $2::int > 0 THEN $2::int END;`,
		userID, limit,
	)
	if err != nil {
		return nil, workouts.StoreErr("list body stats", err)
	}
	defer rows.Close()

	var logs []Log
	for rows.Next() {
		var l Log
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.Date, &l.Weight, &l.Neck, &l.Waist, &l.Hips, &l.BodyFatPercentage, &l.Notes,
		); err != nil {
			return nil, workouts.StoreErr("scan body stats", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, workouts.StoreErr("list body stats", err)
	}
	return logs, nil
}

// Trend returns the bodyweight series, oldest first.
func (r *Repo) Trend(ctx context.Context, userID int) (_ []TrendPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodystats.trend")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT log_date, weight
			FROM user_stats_log
			WHERE user_id = $1 AND weight IS NOT NULL
			ORDER BY log_date, log_id;`,
		userID,
	)
	if err != nil {
		return nil, workouts.StoreErr("bodyweight trend", err)
	}
	defer rows.Close()

	var points []TrendPoint
	for rows.Next() {
		var p TrendPoint
		if err := rows.Scan(&p.Date, &p.Weight); err != nil {
			return nil, workouts.StoreErr("scan bodyweight", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, workouts.StoreErr("bodyweight trend", err)
	}
	return points, nil
}
