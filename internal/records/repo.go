package records

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/workoutware/internal/db"
	"github.com/2beens/workoutware/internal/telemetry/tracing"
	"github.com/2beens/workoutware/internal/workouts"
)

const recordColumns = `pr.pr_id, pr.user_id, pr.exercise_id, e.name, pr.record_type, pr.current_value, pr.reps,
				pr.previous_best, pr.achieved_date, pr.session_id, pr.notes`

type Repo struct {
	db db.Querier
}

func NewRepo(db db.Querier) *Repo {
	return &Repo{
		db: db,
	}
}

// InsertIfAbsent inserts pr unless a row for its key exists. It returns nil when
// nothing was inserted.
func (r *Repo) InsertIfAbsent(ctx context.Context, pr PersonalRecord) (_ *PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.insertifabsent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", pr.UserID))
	span.SetAttributes(attribute.Int("exercise.id", pr.ExerciseID))

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO personal_record
				(user_id, exercise_id, record_type, current_value, reps, previous_best, achieved_date, session_id, notes)
				VALUES ($1, $2, $3, $4, $5, NULL, $6, $7, $8)
			ON CONFLICT (user_id, exercise_id, record_type) DO NOTHING
			RETURNING pr_id;`,
		pr.UserID, pr.ExerciseID, string(pr.RecordType), pr.CurrentValue, pr.Reps, pr.AchievedDate, pr.SessionID, pr.Notes,
	).Scan(&pr.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, workouts.ReferenceErr("insert personal record", err, workouts.ErrExerciseNotFound)
	}
	return &pr, nil
}

// GetForUpdate reads the record row and locks it until the end of the transaction.
func (r *Repo) GetForUpdate(ctx context.Context, userID, exerciseID int, recordType RecordType) (_ *PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.getforupdate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+recordColumns+`
			FROM personal_record pr
			JOIN exercise e ON e.exercise_id = pr.exercise_id
			WHERE pr.user_id = $1 AND pr.exercise_id = $2 AND pr.record_type = $3
			FOR UPDATE OF pr;`,
		userID, exerciseID, string(recordType),
	)
	if err != nil {
		return nil, workouts.StoreErr("get personal record", err)
	}
	defer rows.Close()

	records, err := r.rows2records(rows)
	if err != nil {
		return nil, workouts.StoreErr("get personal record", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

func (r *Repo) Replace(ctx context.Context, pr PersonalRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.replace")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("record.id", pr.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE personal_record
			SET current_value = $1, reps = $2, previous_best = $3, achieved_date = $4, session_id = $5, notes = $6
			WHERE pr_id = $7;`,
		pr.CurrentValue, pr.Reps, pr.PreviousBest, pr.AchievedDate, pr.SessionID, pr.Notes, pr.ID,
	)
	if err != nil {
		return workouts.StoreErr("replace personal record", err)
	}
	if tag.RowsAffected() == 0 {
		return workouts.StoreErr("replace personal record", errors.New("no row updated"))
	}
	return nil
}

// List returns the records of a user. A positive limit keeps only the most recently achieved ones.
func (r *Repo) List(ctx context.Context, userID, limit int) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+recordColumns+`
			FROM personal_record pr
			JOIN exercise e ON e.exercise_id = pr.exercise_id
			WHERE pr.user_id = $1
			ORDER BY pr.achieved_date DESC, pr.pr_id DESC
			LIMIT CASE WHEN $2::int > 0 THEN $2::int END;`,
		userID, limit,
	)
	if err != nil {
		return nil, workouts.StoreErr("list personal records", err)
	}
	defer rows.Close()

	records, err := r.rows2records(rows)
	if err != nil {
		return nil, workouts.StoreErr("list personal records", err)
	}
	return records, nil
}

func (r *Repo) rows2records(rows pgx.Rows) ([]PersonalRecord, error) {
	var records []PersonalRecord
	for rows.Next() {
		var (
			pr         PersonalRecord
			recordType string
		)
		if err := rows.Scan(
			&pr.ID, &pr.UserID, &pr.ExerciseID, &pr.ExerciseName, &recordType, &pr.CurrentValue, &pr.Reps,
			&pr.PreviousBest, &pr.AchievedDate, &pr.SessionID, &pr.Notes,
		); err != nil {
			return nil, err
		}
		pr.RecordType = RecordType(recordType)
		records = append(records, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
