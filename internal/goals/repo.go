package goals

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/workoutware/internal/db"
	"github.com/2beens/workoutware/internal/telemetry/tracing"
	"github.com/2beens/workoutware/internal/workouts"
	"github.com/2beens/workoutware/pkg"
)

var ErrGoalNotFound = fmt.Errorf("goal %w", workouts.ErrNotFound)

type Repo struct {
	db db.Querier
}

func NewRepo(db db.Querier) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Create(ctx context.Context, g Goal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", g.UserID))

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO goal
				(user_id, goal_type, description, target_value, current_value, unit,
				exercise_id, start_date, target_date, status)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING goal_id;`,
		g.UserID, g.GoalType, g.Description, g.TargetValue, g.CurrentValue, g.Unit,
		g.ExerciseID, g.StartDate, g.TargetDate, string(g.Status),
	).Scan(&g.ID); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			if strings.Contains(pkg.ViolatedConstraint(err), "exercise_id") {
				return nil, workouts.ErrExerciseNotFound
			}
			return nil, workouts.ErrUserNotFound
		}
		return nil, workouts.StoreErr("create goal", err)
	}
	return &g, nil
}

// ListActive returns active goals, nearest target date first.
func (r *Repo) ListActive(ctx context.Context, userID int) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.listactive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT goal_id, user_id, goal_type, description, target_value, current_value, unit,
				exercise_id, start_date, target_date, status, completion_date
			FROM goal
			WHERE user_id = $1 AND status = 'active'
			ORDER BY target_date ASC NULLS LAST, goal_id DESC;`,
		userID,
	)
	if err != nil {
		return nil, workouts.StoreErr("list goals", err)
	}
	defer rows.Close()

	var goals []Goal
	for rows.Next() {
		var (
			g      Goal
			status string
		)
		if err := rows.Scan(
			&g.ID, &g.UserID, &g.GoalType, &g.Description, &g.TargetValue, &g.CurrentValue, &g.Unit,
			&g.ExerciseID, &g.StartDate, &g.TargetDate, &status, &g.CompletionDate,
		); err != nil {
			return nil, workouts.StoreErr("scan goal", err)
		}
		g.Status = Status(status)
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, workouts.StoreErr("list goals", err)
	}
	return goals, nil
}

func (r *Repo) UpdateProgress(ctx context.Context, id int, current decimal.Decimal) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.updateprogress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("goal.id", id))

	tag, err := r.db.Exec(ctx, `UPDATE goal SET current_value = $2 WHERE goal_id = $1;`, id, current)
	if err != nil {
		return workouts.StoreErr("update goal progress", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// SetStatus changes the status. completionDate is stored as given, nil clears it.
func (r *Repo) SetStatus(ctx context.Context, id int, status Status, completionDate *time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.setstatus")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("goal.id", id))
	span.SetAttributes(attribute.String("goal.status", string(status)))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE goal SET status = $2, completion_date = $3 WHERE goal_id = $1;`,
		id, string(status), completionDate,
	)
	if err != nil {
		return workouts.StoreErr("set goal status", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// Delete removes a goal of the user. A goal of someone else is not found.
func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("goal.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM goal WHERE goal_id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return workouts.StoreErr("delete goal", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}
