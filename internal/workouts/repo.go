package workouts

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/workoutware/internal/db"
	"github.com/2beens/workoutware/internal/telemetry/tracing"
	"github.com/2beens/workoutware/pkg"
)

type Repo struct {
	db db.Querier
}

func NewRepo(db db.Querier) *Repo {
	return &Repo{
		db: db,
	}
}

// GetOrCreateUser returns the profile registered under email, creating it on first use.
func (r *Repo) GetOrCreateUser(ctx context.Context, email, firstName, lastName string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.users.getorcreate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var u User
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO user_info (email, first_name, last_name)
			VALUES ($1, $2, $3)
			ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING user_id, first_name, last_name, email, registered, date_registered;`,
		email, firstName, lastName,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Registered, &u.DateRegistered); err != nil {
		return nil, StoreErr("get or create user", err)
	}

	span.SetAttributes(attribute.Int("user.id", u.ID))
	return &u, nil
}

func (r *Repo) GetUser(ctx context.Context, id int) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", id))

	var u User
	if err := r.db.QueryRow(
		ctx,
		`SELECT user_id, first_name, last_name, email, registered, date_registered
			FROM user_info WHERE user_id = $1;`,
		id,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Registered, &u.DateRegistered); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, StoreErr("get user", err)
	}
	return &u, nil
}

func (r *Repo) CreateSession(ctx context.Context, s Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sessions.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", s.UserID))

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO workout_session
				(user_id, session_name, session_date, start_time, duration_minutes, bodyweight, completed, is_template)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING session_id;`,
		s.UserID, s.Name, s.Date, s.StartTime, s.DurationMinutes, s.Bodyweight, s.Completed, s.IsTemplate,
	).Scan(&s.ID); err != nil {
		return nil, ReferenceErr("create session", err, ErrUserNotFound)
	}

	span.SetAttributes(attribute.Int("session.id", s.ID))
	return &s, nil
}

func (r *Repo) GetSession(ctx context.Context, id int) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sessions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT session_id, user_id, session_name, session_date, start_time, end_time,
				duration_minutes, bodyweight, completed, is_template
			FROM workout_session WHERE session_id = $1;`,
		id,
	)
	if err != nil {
		return nil, StoreErr("get session", err)
	}
	defer rows.Close()

	sessions, err := r.rows2sessions(rows)
	if err != nil {
		return nil, StoreErr("get session", err)
	}
	if len(sessions) != 1 {
		return nil, ErrSessionNotFound
	}
	return &sessions[0], nil
}

// ListSessions returns completed, non template sessions of a user, newest first.
// A non nil from restricts the result to sessions dated on or after it.
func (r *Repo) ListSessions(ctx context.Context, userID int, from *time.Time, limit int) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sessions.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(
		ctx,
		`SELECT session_id, user_id, session_name, session_date, start_time, end_time,
				duration_minutes, bodyweight, completed, is_template
			FROM workout_session
			WHERE user_id = $1
				AND completed AND NOT is_template
				AND ($2::date IS NULL OR session_date >= $2)
			ORDER BY session_date DESC, session_id DESC
			LIMIT $3;`,
		userID, from, limit,
	)
	if err != nil {
		return nil, StoreErr("list sessions", err)
	}
	defer rows.Close()

	sessions, err := r.rows2sessions(rows)
	if err != nil {
		return nil, StoreErr("list sessions", err)
	}
	return sessions, nil
}

func (r *Repo) CompleteSession(ctx context.Context, id int, endTime time.Time, durationMinutes *int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sessions.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_session SET completed = TRUE, end_time = $1, duration_minutes = $2 WHERE session_id = $3;`,
		endTime, durationMinutes, id,
	)
	if err != nil {
		return StoreErr("complete session", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *Repo) DeleteSession(ctx context.Context, id, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sessions.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", id))
	span.SetAttributes(attribute.Int("user.id", userID))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_session WHERE session_id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return StoreErr("delete session", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *Repo) AddSessionExercise(ctx context.Context, sessionID int, ne NewSessionExercise) (_ *SessionExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sessionexercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))
	span.SetAttributes(attribute.Int("exercise.id", ne.ExerciseID))

	se := SessionExercise{
		SessionID:  sessionID,
		ExerciseID: ne.ExerciseID,
		Order:      ne.Order,
		TargetSets: ne.TargetSets,
		TargetReps: ne.TargetReps,
	}
	if err := r.db.QueryRow(
		ctx,
		`WITH inserted AS (
				INSERT INTO session_exercise (session_id, exercise_id, exercise_order, target_sets, target_reps)
					VALUES ($1, $2, $3, $4, $5)
				RETURNING session_exercise_id, exercise_id
			)
			SELECT i.session_exercise_id, e.name
			FROM inserted i JOIN exercise e ON e.exercise_id = i.exercise_id;`,
		sessionID, ne.ExerciseID, ne.Order, ne.TargetSets, ne.TargetReps,
	).Scan(&se.ID, &se.ExerciseName); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			if strings.Contains(pkg.ViolatedConstraint(err), "exercise_id") {
				return nil, ErrExerciseNotFound
			}
			return nil, ErrSessionNotFound
		}
		return nil, StoreErr("add session exercise", err)
	}

	return &se, nil
}

func (r *Repo) ListSessionExercises(ctx context.Context, sessionID int) (_ []SessionExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sessionexercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	rows, err := r.db.Query(
		ctx,
		`SELECT se.session_exercise_id, se.session_id, se.exercise_id, e.name, se.exercise_order,
				se.target_sets, se.target_reps, se.completed
			FROM session_exercise se
			JOIN exercise e ON e.exercise_id = se.exercise_id
			WHERE se.session_id = $1
			ORDER BY se.exercise_order, se.session_exercise_id;`,
		sessionID,
	)
	if err != nil {
		return nil, StoreErr("list session exercises", err)
	}
	defer rows.Close()

	var exercises []SessionExercise
	for rows.Next() {
		var se SessionExercise
		if err := rows.Scan(
			&se.ID, &se.SessionID, &se.ExerciseID, &se.ExerciseName, &se.Order,
			&se.TargetSets, &se.TargetReps, &se.Completed,
		); err != nil {
			return nil, StoreErr("scan session exercise", err)
		}
		exercises = append(exercises, se)
	}
	if err := rows.Err(); err != nil {
		return nil, StoreErr("list session exercises", err)
	}
	return exercises, nil
}

// ListSessionSets returns all sets of a session, ordered by exercise and set number.
func (r *Repo) ListSessionSets(ctx context.Context, sessionID int) (_ []Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sets.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	rows, err := r.db.Query(
		ctx,
		`SELECT s.set_id, s.session_exercise_id, s.set_number, s.weight, s.reps, s.rpe,
				s.completed, s.is_warmup, s.completion_time
			FROM workout_set s
			JOIN session_exercise se ON se.session_exercise_id = s.session_exercise_id
			WHERE se.session_id = $1
			ORDER BY s.session_exercise_id, s.set_number, s.set_id;`,
		sessionID,
	)
	if err != nil {
		return nil, StoreErr("list session sets", err)
	}
	defer rows.Close()

	var sets []Set
	for rows.Next() {
		var s Set
		if err := rows.Scan(
			&s.ID, &s.SessionExerciseID, &s.SetNumber, &s.Weight, &s.Reps, &s.RPE,
			&s.Completed, &s.IsWarmup, &s.CompletionTime,
		); err != nil {
			return nil, StoreErr("scan set", err)
		}
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, StoreErr("list session sets", err)
	}
	return sets, nil
}

// CopySessionExercises copies the exercise plan of one session into another. Sets are not copied.
func (r *Repo) CopySessionExercises(ctx context.Context, fromSessionID, toSessionID int) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sessionexercises.copy")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.from", fromSessionID))
	span.SetAttributes(attribute.Int("session.to", toSessionID))

	tag, err := r.db.Exec(
		ctx,
		`INSERT INTO session_exercise (session_id, exercise_id, exercise_order, target_sets, target_reps)
			SELECT $2, exercise_id, exercise_order, target_sets, target_reps
			FROM session_exercise
			WHERE session_id = $1
			ORDER BY exercise_order, session_exercise_id;`,
		fromSessionID, toSessionID,
	)
	if err != nil {
		return 0, StoreErr("copy session exercises", err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) GetSessionExerciseContext(ctx context.Context, sessionExerciseID int) (_ *SessionExerciseContext, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sessionexercises.context")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session_exercise.id", sessionExerciseID))

	var sc SessionExerciseContext
	if err := r.db.QueryRow(
		ctx,
		`SELECT se.session_exercise_id, ws.session_id, ws.user_id, se.exercise_id, e.name,
				ws.is_template, ws.completed
			FROM session_exercise se
			JOIN workout_session ws ON ws.session_id = se.session_id
			JOIN exercise e ON e.exercise_id = se.exercise_id
			WHERE se.session_exercise_id = $1;`,
		sessionExerciseID,
	).Scan(
		&sc.SessionExerciseID, &sc.SessionID, &sc.UserID, &sc.ExerciseID, &sc.ExerciseName,
		&sc.IsTemplate, &sc.SessionCompleted,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionExerciseNotFound
		}
		return nil, StoreErr("get session exercise context", err)
	}
	return &sc, nil
}

func (r *Repo) NextSetNumber(ctx context.Context, sessionExerciseID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sets.nextnumber")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var next int
	if err := r.db.QueryRow(
		ctx,
		`SELECT COALESCE(MAX(set_number), 0) + 1 FROM workout_set WHERE session_exercise_id = $1;`,
		sessionExerciseID,
	).Scan(&next); err != nil {
		return 0, StoreErr("next set number", err)
	}
	return next, nil
}

func (r *Repo) InsertSet(ctx context.Context, s Set) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sets.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session_exercise.id", s.SessionExerciseID))

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO workout_set
				(session_exercise_id, set_number, weight, reps, rpe, completed, is_warmup, completion_time)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING set_id;`,
		s.SessionExerciseID, s.SetNumber, s.Weight, s.Reps, s.RPE, s.Completed, s.IsWarmup, s.CompletionTime,
	).Scan(&s.ID); err != nil {
		return nil, ReferenceErr("insert set", err, ErrSessionExerciseNotFound)
	}

	span.SetAttributes(attribute.Int("set.id", s.ID))
	return &s, nil
}

func (r *Repo) rows2sessions(rows pgx.Rows) ([]Session, error) {
	var sessions []Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.Name, &s.Date, &s.StartTime, &s.EndTime,
			&s.DurationMinutes, &s.Bodyweight, &s.Completed, &s.IsTemplate,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}
