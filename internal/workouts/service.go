package workouts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/workoutware/internal/clock"
	"github.com/2beens/workoutware/internal/db"
	"github.com/2beens/workoutware/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

// Store is the persistence the workouts service needs. *Repo implements it,
// bound either to the pool or to a transaction.
type Store interface {
	GetOrCreateUser(ctx context.Context, email, firstName, lastName string) (*User, error)
	CreateSession(ctx context.Context, s Session) (*Session, error)
	GetSession(ctx context.Context, id int) (*Session, error)
	ListSessions(ctx context.Context, userID int, from *time.Time, limit int) ([]Session, error)
	CompleteSession(ctx context.Context, id int, endTime time.Time, durationMinutes *int) error
	DeleteSession(ctx context.Context, id, userID int) error
	AddSessionExercise(ctx context.Context, sessionID int, ne NewSessionExercise) (*SessionExercise, error)
	ListSessionExercises(ctx context.Context, sessionID int) ([]SessionExercise, error)
	ListSessionSets(ctx context.Context, sessionID int) ([]Set, error)
	CopySessionExercises(ctx context.Context, fromSessionID, toSessionID int) (int64, error)
}

const (
	defaultSessionName  = "Workout"
	defaultSessionLimit = 50
	maxSessionLimit     = 500
)

type Service struct {
	store Store
	tx    db.Runner[Store]
	clock clock.Clock
}

func NewService(store Store, tx db.Runner[Store], clk clock.Clock) *Service {
	return &Service{
		store: store,
		tx:    tx,
		clock: clk,
	}
}

func (s *Service) GetOrCreateUser(ctx context.Context, email, firstName, lastName string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.users.getorcreate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, InvalidInput("email %q is not valid", email)
	}

	return s.store.GetOrCreateUser(ctx, email, strings.TrimSpace(firstName), strings.TrimSpace(lastName))
}

func (s *Service) CreateSession(ctx context.Context, ns NewSession) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.sessions.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", ns.UserID))

	if ns.UserID <= 0 {
		return nil, InvalidInput("user id must be positive")
	}
	if ns.Bodyweight.Valid && ns.Bodyweight.Decimal.IsNegative() {
		return nil, InvalidInput("bodyweight must not be negative")
	}

	date, err := s.parseDate(ns.Date)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(ns.Name)
	if name == "" {
		name = defaultSessionName
	}

	return s.store.CreateSession(ctx, Session{
		UserID:     ns.UserID,
		Name:       name,
		Date:       date,
		StartTime:  ns.StartTime,
		Bodyweight: ns.Bodyweight,
		IsTemplate: ns.IsTemplate,
	})
}

func (s *Service) AddExercise(ctx context.Context, sessionID int, ne NewSessionExercise) (_ *SessionExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.sessions.addexercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	if ne.ExerciseID <= 0 {
		return nil, InvalidInput("exercise id must be positive")
	}
	if ne.Order < 0 {
		return nil, InvalidInput("exercise order must not be negative")
	}
	if ne.TargetSets != nil && *ne.TargetSets <= 0 {
		return nil, InvalidInput("target sets must be positive")
	}
	if ne.TargetReps != nil && *ne.TargetReps <= 0 {
		return nil, InvalidInput("target reps must be positive")
	}

	return s.store.AddSessionExercise(ctx, sessionID, ne)
}

// CompleteSession marks a session as done. The duration is derived from the start time, when known.
func (s *Service) CompleteSession(ctx context.Context, id int) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.sessions.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", id))

	session, err := s.store.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.IsTemplate {
		return nil, InvalidInput("session %d is a template", id)
	}

	endTime := s.clock.Now()
	var duration *int
	if session.StartTime != nil && !endTime.Before(*session.StartTime) {
		minutes := int(endTime.Sub(*session.StartTime).Minutes())
		duration = &minutes
	}

	if err := s.store.CompleteSession(ctx, id, endTime, duration); err != nil {
		return nil, err
	}

	session.Completed = true
	session.EndTime = &endTime
	session.DurationMinutes = duration
	return session, nil
}

// DeleteSession removes a session owned by the user. Sessions of other users are not found.
func (s *Service) DeleteSession(ctx context.Context, id, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.sessions.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", id))
	span.SetAttributes(attribute.Int("user.id", userID))

	return s.store.DeleteSession(ctx, id, userID)
}

func (s *Service) ListSessions(ctx context.Context, params ListSessionsParams) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.sessions.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", params.UserID))
	span.SetAttributes(attribute.Bool("current_week_only", params.CurrentWeekOnly))

	limit := params.Limit
	if limit <= 0 {
		limit = defaultSessionLimit
	}
	if limit > maxSessionLimit {
		limit = maxSessionLimit
	}

	var from *time.Time
	if params.CurrentWeekOnly {
		weekStart := WeekStart(clock.Today(s.clock))
		from = &weekStart
	}

	return s.store.ListSessions(ctx, params.UserID, from, limit)
}

// GetSessionDetail returns a session with its exercises and their sets.
func (s *Service) GetSessionDetail(ctx context.Context, id int) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.sessions.detail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", id))

	session, err := s.store.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	exercises, err := s.store.ListSessionExercises(ctx, id)
	if err != nil {
		return nil, err
	}

	sets, err := s.store.ListSessionSets(ctx, id)
	if err != nil {
		return nil, err
	}

	setsByExercise := make(map[int][]Set, len(exercises))
	for _, set := range sets {
		setsByExercise[set.SessionExerciseID] = append(setsByExercise[set.SessionExerciseID], set)
	}
	for i := range exercises {
		exercises[i].Sets = setsByExercise[exercises[i].ID]
	}

	session.Exercises = exercises
	return session, nil
}

// UseTemplate starts a new dated session from a template of the user. The
// exercise plan is copied, sets are not.
func (s *Service) UseTemplate(ctx context.Context, templateID, userID int, date, name string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.templates.use")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("template.id", templateID))
	span.SetAttributes(attribute.Int("user.id", userID))

	sessionDate, err := s.parseDate(date)
	if err != nil {
		return nil, err
	}

	var created *Session
	if err := s.tx.Do(ctx, func(ctx context.Context, store Store) error {
		template, err := ownedSession(ctx, store, templateID, userID, ErrTemplateNotFound)
		if err != nil {
			return err
		}
		if !template.IsTemplate {
			return ErrTemplateNotFound
		}

		sessionName := strings.TrimSpace(name)
		if sessionName == "" {
			sessionName = template.Name
		}

		created, err = cloneSession(ctx, store, template.ID, Session{
			UserID:     userID,
			Name:       sessionName,
			Date:       sessionDate,
			Bodyweight: template.Bodyweight,
		})
		return err
	}); err != nil {
		return nil, StoreErr(fmt.Sprintf("use template %d", templateID), err)
	}

	return created, nil
}

// SaveAsTemplate stores the exercise plan of a user's session as a new template.
// The template keeps the session date, sets are not copied.
func (s *Service) SaveAsTemplate(ctx context.Context, sessionID, userID int, name string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.templates.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))
	span.SetAttributes(attribute.Int("user.id", userID))

	templateName := strings.TrimSpace(name)
	if templateName == "" {
		return nil, InvalidInput("template name must not be empty")
	}

	var created *Session
	if err := s.tx.Do(ctx, func(ctx context.Context, store Store) error {
		session, err := ownedSession(ctx, store, sessionID, userID, ErrSessionNotFound)
		if err != nil {
			return err
		}

		created, err = cloneSession(ctx, store, session.ID, Session{
			UserID:          userID,
			Name:            templateName,
			Date:            session.Date,
			DurationMinutes: session.DurationMinutes,
			IsTemplate:      true,
		})
		return err
	}); err != nil {
		return nil, StoreErr(fmt.Sprintf("save session %d as template", sessionID), err)
	}

	return created, nil
}

// ownedSession loads a session of the user. Missing sessions and sessions of
// other users both come back as notFound.
func ownedSession(ctx context.Context, store Store, id, userID int, notFound error) (*Session, error) {
	session, err := store.GetSession(ctx, id)
	if err != nil {
		if IsDataStoreError(err) {
			return nil, err
		}
		return nil, notFound
	}
	if session.UserID != userID {
		return nil, notFound
	}
	return session, nil
}

// cloneSession creates s and copies the exercise plan of fromID into it.
func cloneSession(ctx context.Context, store Store, fromID int, s Session) (*Session, error) {
	created, err := store.CreateSession(ctx, s)
	if err != nil {
		return nil, err
	}
	if _, err := store.CopySessionExercises(ctx, fromID, created.ID); err != nil {
		return nil, err
	}
	created.Exercises, err = store.ListSessionExercises(ctx, created.ID)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) parseDate(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return clock.Today(s.clock), nil
	}
	date, err := time.ParseInLocation(DateLayout, strings.TrimSpace(raw), s.clock.Now().Location())
	if err != nil {
		return time.Time{}, InvalidInput("date %q is not in YYYY-MM-DD format", raw)
	}
	return date, nil
}
