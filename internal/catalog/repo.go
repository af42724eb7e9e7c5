package catalog

import (
	"context"

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

// ListExercises returns the catalog ordered by name, each exercise with its targets.
func (r *Repo) ListExercises(ctx context.Context) (_ []workouts.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT e.exercise_id, e.name, e.exercise_type, e.subtype, e.equipment, e.difficulty,
				e.description, e.demo_link,
				t.target_id, t.target_name, t.target_group, t.target_function
			FROM exercise e
			LEFT JOIN exercise_target_association eta ON eta.exercise_id = e.exercise_id
			LEFT JOIN target t ON t.target_id = eta.target_id
			ORDER BY e.name, t.target_name;`,
	)
	if err != nil {
		return nil, workouts.StoreErr("list exercises", err)
	}
	defer rows.Close()

	var exercises []workouts.Exercise
	for rows.Next() {
		var (
			e                           workouts.Exercise
			targetID                    *int
			targetName, group, function *string
		)
		if err := rows.Scan(
			&e.ID, &e.Name, &e.ExerciseType, &e.Subtype, &e.Equipment, &e.Difficulty,
			&e.Description, &e.DemoLink,
			&targetID, &targetName, &group, &function,
		); err != nil {
			return nil, workouts.StoreErr("scan exercise", err)
		}

		if n := len(exercises); n == 0 || exercises[n-1].ID != e.ID {
			exercises = append(exercises, e)
		}
		if targetID != nil {
			last := &exercises[len(exercises)-1]
			last.Targets = append(last.Targets, workouts.Target{
				ID:       *targetID,
				Name:     deref(targetName),
				Group:    deref(group),
				Function: deref(function),
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, workouts.StoreErr("list exercises", err)
	}
	return exercises, nil
}

// ListTargets returns the muscle groups ordered by name.
func (r *Repo) ListTargets(ctx context.Context) (_ []workouts.Target, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.targets.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT target_id, target_name, target_group, target_function
			FROM target
			ORDER BY target_name;`,
	)
	if err != nil {
		return nil, workouts.StoreErr("list targets", err)
	}
	defer rows.Close()

	var targets []workouts.Target
	for rows.Next() {
		var t workouts.Target
		if err := rows.Scan(&t.ID, &t.Name, &t.Group, &t.Function); err != nil {
			return nil, workouts.StoreErr("scan target", err)
		}
		targets = append(targets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, workouts.StoreErr("list targets", err)
	}
	return targets, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
