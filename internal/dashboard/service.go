package dashboard

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/2beens/workoutware/internal/bodystats"
	"github.com/2beens/workoutware/internal/clock"
	"github.com/2beens/workoutware/internal/progress"
	"github.com/2beens/workoutware/internal/recommendations"
	"github.com/2beens/workoutware/internal/records"
	"github.com/2beens/workoutware/internal/telemetry/tracing"
	"github.com/2beens/workoutware/internal/validation"
	"github.com/2beens/workoutware/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=dashboard_test

type Store interface {
	SessionCounts(ctx context.Context, userID int, weekStart time.Time) (total, week int, err error)
	CompletedDates(ctx context.Context, userID int) ([]time.Time, error)
	TopExercisesByVolume(ctx context.Context, userID, limit int) ([]ExerciseVolume, error)
	ExercisesDoneSince(ctx context.Context, userID int, since time.Time) ([]int, error)
}

type ProgressRebuilder interface {
	Rebuild(ctx context.Context, userID int, periods []progress.PeriodType) (int, error)
}

type RollupsSource interface {
	ListRows(ctx context.Context, params progress.ListParams) ([]progress.Row, error)
}

type RecordsSource interface {
	List(ctx context.Context, userID, limit int) ([]records.PersonalRecord, error)
}

type EventsSource interface {
	ListEvents(ctx context.Context, userID, limit int) ([]validation.Event, error)
}

type BodyweightSource interface {
	Trend(ctx context.Context, userID int) ([]bodystats.TrendPoint, error)
}

type Recommender interface {
	Recommend(ctx context.Context, userID int) (*recommendations.Recommendations, error)
}

type CatalogSource interface {
	ListExercises(ctx context.Context) ([]workouts.Exercise, error)
}

// Sources are the read models a dashboard is assembled from.
type Sources struct {
	Store           Store
	Rebuilder       ProgressRebuilder
	Rollups         RollupsSource
	Records         RecordsSource
	Events          EventsSource
	Bodyweight      BodyweightSource
	Recommendations Recommender
	Catalog         CatalogSource
}

type Service struct {
	src   Sources
	clock clock.Clock
}

func NewService(src Sources, clk clock.Clock) *Service {
	return &Service{
		src:   src,
		clock: clk,
	}
}

// Get refreshes the weekly rollups of the user and then gathers every dashboard
// section concurrently. Any failing section fails the whole dashboard.
func (s *Service) Get(ctx context.Context, userID int) (_ *Dashboard, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.dashboard.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	if userID <= 0 {
		return nil, workouts.InvalidInput("user id must be positive")
	}

	if _, err := s.src.Rebuilder.Rebuild(ctx, userID, []progress.PeriodType{progress.Weekly}); err != nil {
		return nil, err
	}

	today := clock.Today(s.clock)
	d := &Dashboard{UserID: userID}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		kpis, err := s.kpis(gCtx, userID, today)
		if err != nil {
			return fmt.Errorf("kpis: %w", err)
		}
		d.KPIs = kpis
		return nil
	})
	g.Go(func() error {
		prs, err := s.src.Records.List(gCtx, userID, RecentRecordsLimit)
		if err != nil {
			return fmt.Errorf("recent records: %w", err)
		}
		d.RecentRecords = prs
		return nil
	})
	g.Go(func() error {
		events, err := s.src.Events.ListEvents(gCtx, userID, RecentValidationsLimit)
		if err != nil {
			return fmt.Errorf("recent validations: %w", err)
		}
		d.RecentEvents = events
		return nil
	})
	g.Go(func() error {
		top, trends, err := s.topExercises(gCtx, userID, today)
		if err != nil {
			return fmt.Errorf("top exercises: %w", err)
		}
		d.TopExercises = top
		d.WeeklyTrends = trends
		return nil
	})
	g.Go(func() error {
		points, err := s.src.Bodyweight.Trend(gCtx, userID)
		if err != nil {
			return fmt.Errorf("bodyweight trend: %w", err)
		}
		d.BodyweightTrend = points
		return nil
	})
	g.Go(func() error {
		recs, err := s.src.Recommendations.Recommend(gCtx, userID)
		if err != nil {
			return fmt.Errorf("recommendations: %w", err)
		}
		d.Recommendations = recs
		return nil
	})
	g.Go(func() error {
		suggestions, err := s.suggestions(gCtx, userID, today)
		if err != nil {
			return fmt.Errorf("suggestions: %w", err)
		}
		d.Suggestions = suggestions
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Tracef("dashboard assembled for user %d", userID)
	return d, nil
}

func (s *Service) kpis(ctx context.Context, userID int, today time.Time) (KPIs, error) {
	total, week, err := s.src.Store.SessionCounts(ctx, userID, workouts.WeekStart(today))
	if err != nil {
		return KPIs{}, err
	}
	dates, err := s.src.Store.CompletedDates(ctx, userID)
	if err != nil {
		return KPIs{}, err
	}
	return KPIs{
		Streak:         Streak(dates, today),
		WeekCompleted:  week,
		TotalCompleted: total,
	}, nil
}

func (s *Service) topExercises(ctx context.Context, userID int, today time.Time) ([]ExerciseVolume, []ExerciseTrend, error) {
	top, err := s.src.Store.TopExercisesByVolume(ctx, userID, TopExercisesLimit)
	if err != nil {
		return nil, nil, err
	}

	from := workouts.WeekStart(today).AddDate(0, 0, -7*(TrendWeeks-1))
	trends := make([]ExerciseTrend, 0, len(top))
	for _, ev := range top {
		rows, err := s.src.Rollups.ListRows(ctx, progress.ListParams{
			UserID:     userID,
			PeriodType: progress.Weekly,
			ExerciseID: ev.ExerciseID,
			From:       &from,
		})
		if err != nil {
			return nil, nil, err
		}
		trends = append(trends, ExerciseTrend{
			ExerciseID:   ev.ExerciseID,
			ExerciseName: ev.ExerciseName,
			Weeks:        rows,
		})
	}
	return top, trends, nil
}

func (s *Service) suggestions(ctx context.Context, userID int, today time.Time) ([]workouts.Exercise, error) {
	done, err := s.src.Store.ExercisesDoneSince(ctx, userID, today.AddDate(0, 0, -SuggestionsWindowDays))
	if err != nil {
		return nil, err
	}
	catalog, err := s.src.Catalog.ListExercises(ctx)
	if err != nil {
		return nil, err
	}
	return Suggest(catalog, done, SuggestionsLimit), nil
}
