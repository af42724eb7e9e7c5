package app

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/2beens/workoutware/internal/bodystats"
	"github.com/2beens/workoutware/internal/catalog"
	"github.com/2beens/workoutware/internal/clock"
	"github.com/2beens/workoutware/internal/config"
	"github.com/2beens/workoutware/internal/dashboard"
	"github.com/2beens/workoutware/internal/db"
	"github.com/2beens/workoutware/internal/goals"
	"github.com/2beens/workoutware/internal/mcp"
	"github.com/2beens/workoutware/internal/progress"
	"github.com/2beens/workoutware/internal/recommendations"
	"github.com/2beens/workoutware/internal/records"
	"github.com/2beens/workoutware/internal/telemetry/metrics"
	"github.com/2beens/workoutware/internal/training"
	"github.com/2beens/workoutware/internal/validation"
	"github.com/2beens/workoutware/internal/workouts"
)

// App holds the repositories and services of the pipeline, all sharing one pool.
// The HTTP server, the MCP binary and the admin CLI are built on top of it.
type App struct {
	Pool       *pgxpool.Pool
	Thresholds validation.Thresholds

	WorkoutsRepo    *workouts.Repo
	ValidationRepo  *validation.Repo
	RecordsRepo     *records.Repo
	ProgressRepo    *progress.Repo
	RecommendRepo   *recommendations.Repo
	CatalogRepo     *catalog.Repo
	BodyStatsRepo   *bodystats.Repo
	GoalsRepo       *goals.Repo
	DashboardRepo   *dashboard.Repo
	Validator       *validation.Validator
	Workouts        *workouts.Service
	Training        *training.Service
	Aggregator      *progress.Aggregator
	Catalog         *catalog.Service
	Recommendations *recommendations.Engine
	BodyStats       *bodystats.Service
	Goals           *goals.Service
	Dashboard       *dashboard.Service
}

func New(pool *pgxpool.Pool, cfg *config.Config, metricsManager *metrics.Manager, clk clock.Clock) *App {
	thresholds := validation.Thresholds{
		OutlierPct:       cfg.Validation.OutlierPct,
		SuspiciousLowPct: cfg.Validation.SuspiciousLowPct,
	}

	a := &App{
		Pool:           pool,
		Thresholds:     thresholds,
		WorkoutsRepo:   workouts.NewRepo(pool),
		ValidationRepo: validation.NewRepo(pool),
		RecordsRepo:    records.NewRepo(pool),
		ProgressRepo:   progress.NewRepo(pool),
		RecommendRepo:  recommendations.NewRepo(pool),
		CatalogRepo:    catalog.NewRepo(pool),
		BodyStatsRepo:  bodystats.NewRepo(pool),
		GoalsRepo:      goals.NewRepo(pool),
		DashboardRepo:  dashboard.NewRepo(pool),
	}

	a.Validator = validation.NewValidator(a.ValidationRepo, thresholds)

	a.Workouts = workouts.NewService(
		a.WorkoutsRepo,
		db.NewUnitOfWork(pool, func(q db.Querier) workouts.Store {
			return workouts.NewRepo(q)
		}),
		clk,
	)

	a.Training = training.NewService(
		db.NewUnitOfWork(pool, func(q db.Querier) training.Components {
			return training.NewComponents(q, thresholds, clk)
		}),
		clk,
		metricsManager,
	)

	a.Aggregator = progress.NewAggregator(
		db.NewUnitOfWork(pool, func(q db.Querier) progress.Store {
			return progress.NewRepo(q)
		}),
		metricsManager,
	)

	a.Catalog = catalog.NewService(a.CatalogRepo, cfg.Catalog.CacheSizeMB, cfg.Catalog.CacheTTLSeconds, metricsManager)

	a.Recommendations = recommendations.NewEngine(
		a.RecommendRepo,
		a.Catalog,
		recommendations.Config{
			MinConsecutiveSets:    cfg.Recommendations.MinConsecutiveSets,
			WeightIncreasePct:     cfg.Recommendations.WeightIncreasePct,
			LookbackDays:          cfg.Recommendations.LookbackDays,
			LowVolumeThresholdPct: cfg.Recommendations.LowVolumeThresholdPct,
		},
		clk,
		metricsManager,
	)

	a.BodyStats = bodystats.NewService(a.BodyStatsRepo, clk)
	a.Goals = goals.NewService(a.GoalsRepo, clk)

	a.Dashboard = dashboard.NewService(dashboard.Sources{
		Store:           a.DashboardRepo,
		Rebuilder:       a.Aggregator,
		Rollups:         a.ProgressRepo,
		Records:         a.RecordsRepo,
		Events:          a.ValidationRepo,
		Bodyweight:      a.BodyStatsRepo,
		Recommendations: a.Recommendations,
		Catalog:         a.Catalog,
	}, clk)

	return a
}

// MCPDeps are the sources the MCP tools read from.
func (a *App) MCPDeps() mcp.Deps {
	return mcp.Deps{
		Schema:      mcp.NewSchemaRepo(a.Pool),
		Records:     a.RecordsRepo,
		Events:      a.ValidationRepo,
		Aggregator:  a.Aggregator,
		Rollups:     a.ProgressRepo,
		Recommender: a.Recommendations,
	}
}
