package validation

import (
	"context"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/workoutware/internal/db"
	"github.com/2beens/workoutware/internal/telemetry/tracing"
	"github.com/2beens/workoutware/internal/workouts"
)

const (
	DefaultEventsLimit = 10
	MaxEventsLimit     = 200
)

type Repo struct {
	db db.Querier
}

func NewRepo(db db.Querier) *Repo {
	return &Repo{
		db: db,
	}
}

// Baseline aggregates the weighted history of a user for an exercise.
func (r *Repo) Baseline(ctx context.Context, userID, exerciseID int) (_ Baseline, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.validation.baseline")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	var (
		maxWeight decimal.NullDecimal
		avgWeight decimal.NullDecimal
		count     int
	)
	if err := r.db.QueryRow(
		ctx,
		`SELECT MAX(s.weight), AVG(s.weight), COUNT(s.set_id)
			FROM workout_set s
			JOIN session_exercise se ON se.session_exercise_id = s.session_exercise_id
			JOIN workout_session ws ON ws.session_id = se.session_id
			WHERE ws.user_id = $1
				AND se.exercise_id = $2
				AND ws.completed AND NOT ws.is_template
				AND s.completed AND NOT s.is_warmup
				AND s.weight IS NOT NULL;`,
		userID, exerciseID,
	).Scan(&maxWeight, &avgWeight, &count); err != nil {
		return Baseline{}, workouts.StoreErr("validation baseline", err)
	}

	if count == 0 || !maxWeight.Valid || !avgWeight.Valid {
		return Baseline{}, nil
	}

	span.SetAttributes(attribute.Int("baseline.count", count))
	return Baseline{
		MaxWeight: maxWeight.Decimal,
		AvgWeight: avgWeight.Decimal,
		Count:     count,
	}, nil
}

// Subjects reports whether the user and the exercise exist.
func (r *Repo) Subjects(ctx context.Context, userID, exerciseID int) (userExists, exerciseExists bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.validation.subjects")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM user_info WHERE user_id = $1),
				EXISTS (SELECT 1 FROM exercise WHERE exercise_id = $2);`,
		userID, exerciseID,
	).Scan(&userExists, &exerciseExists); err != nil {
		return false, false, workouts.StoreErr("validation subjects", err)
	}
	return userExists, exerciseExists, nil
}

func (r *Repo) InsertEvent(ctx context.Context, e Event) (_ *Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.validation.events.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", e.UserID))
	span.SetAttributes(attribute.String("flagged_as", string(e.FlaggedAs)))

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO validation_event
				(user_id, set_id, exercise_id, input_weight, expected_max, flagged_as, user_action, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING validation_id;`,
		e.UserID, e.SetID, e.ExerciseID, e.InputWeight, e.ExpectedMax, string(e.FlaggedAs), e.UserAction, e.CreatedAt,
	).Scan(&e.ID); err != nil {
		return nil, workouts.ReferenceErr("insert validation event", err, workouts.ErrExerciseNotFound)
	}
	return &e, nil
}

// ListEvents returns the latest validation events of a user, newest first.
func (r *Repo) ListEvents(ctx context.Context, userID, limit int) (_ []Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.validation.events.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(
		ctx,
		`SELECT v.validation_id, v.user_id, v.set_id, v.exercise_id, e.name, v.input_weight,
				v.expected_max, v.flagged_as, v.user_action, v.created_at
			FROM validation_event v
			JOIN exercise e ON e.exercise_id = v.exercise_id
			WHERE v.user_id = $1
			ORDER BY v.created_at DESC, v.validation_id DESC
			LIMIT $2;`,
		userID, limit,
	)
	if err != nil {
		return nil, workouts.StoreErr("list validation events", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			e         Event
			flaggedAs string
		)
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.SetID, &e.ExerciseID, &e.ExerciseName, &e.InputWeight,
			&e.ExpectedMax, &flaggedAs, &e.UserAction, &e.CreatedAt,
		); err != nil {
			return nil, workouts.StoreErr("scan validation event", err)
		}
		e.FlaggedAs = Classification(flaggedAs)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, workouts.StoreErr("list validation events", err)
	}
	return events, nil
}
