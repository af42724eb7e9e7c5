package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/workoutware/internal/app"
	"github.com/2beens/workoutware/internal/bodystats"
	"github.com/2beens/workoutware/internal/catalog"
	"github.com/2beens/workoutware/internal/clock"
	"github.com/2beens/workoutware/internal/config"
	"github.com/2beens/workoutware/internal/dashboard"
	"github.com/2beens/workoutware/internal/db"
	"github.com/2beens/workoutware/internal/goals"
	"github.com/2beens/workoutware/internal/health"
	"github.com/2beens/workoutware/internal/mcp"
	"github.com/2beens/workoutware/internal/middleware"
	"github.com/2beens/workoutware/internal/progress"
	"github.com/2beens/workoutware/internal/recommendations"
	"github.com/2beens/workoutware/internal/records"
	"github.com/2beens/workoutware/internal/telemetry/metrics"
	"github.com/2beens/workoutware/internal/telemetry/tracing"
	"github.com/2beens/workoutware/internal/training"
	"github.com/2beens/workoutware/internal/validation"
	"github.com/2beens/workoutware/internal/workouts"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	apiSecret         string
	adminTokenHash    string
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	app         *app.App

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	APISecret               string
	AdminTokenHash          string
	VersionInfo             string
	HoneycombTracingEnabled bool
	// EnsureSchema applies the DDL on startup, used by local setups and the integration suite.
	EnsureSchema bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     cfg.PostgresPassword,
		MaxConns:       cfg.PostgresMaxConns,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if params.EnsureSchema {
		if err := db.EnsureSchema(ctx, dbPool); err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("workoutware", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       0,
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "workoutware-backend", rdb)
	if err != nil {
		dbPool.Close()
		return nil, err
	}

	return &Server{
		config:         cfg,
		dbPool:         dbPool,
		redisClient:    rdb,
		apiSecret:      params.APISecret,
		adminTokenHash: params.AdminTokenHash,
		versionInfo:    params.VersionInfo,
		app:            app.New(dbPool, cfg, metricsManager, clock.Real{}),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("workoutware-router"))

	a := s.app

	healthHandler := health.NewHandler(s.dbPool, s.redisClient, s.versionInfo)
	r.HandleFunc("/health", healthHandler.HandleHealth).Methods("GET", "OPTIONS").Name("health")

	catalogHandler := catalog.NewHandler(a.Catalog)
	r.HandleFunc("/exercises", catalogHandler.HandleListExercises).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/targets", catalogHandler.HandleListTargets).Methods("GET", "OPTIONS").Name("list-targets")

	workoutsHandler := workouts.NewHandler(a.Workouts)
	r.HandleFunc("/users", workoutsHandler.HandleCreateUser).Methods("POST", "OPTIONS").Name("create-user")
	r.HandleFunc("/sessions", workoutsHandler.HandleCreateSession).Methods("POST", "OPTIONS").Name("create-session")
	r.HandleFunc("/users/{userId}/sessions", workoutsHandler.HandleListSessions).Methods("GET", "OPTIONS").Name("list-sessions")
	r.HandleFunc("/sessions/{id}", workoutsHandler.HandleGetSession).Methods("GET", "OPTIONS").Name("get-session")
	r.HandleFunc("/sessions/{id}/complete", workoutsHandler.HandleCompleteSession).Methods("POST", "OPTIONS").Name("complete-session")
	r.HandleFunc("/users/{userId}/sessions/{id}", workoutsHandler.HandleDeleteSession).Methods("DELETE", "OPTIONS").Name("delete-session")
	r.HandleFunc("/users/{userId}/sessions/{id}/template", workoutsHandler.HandleSaveAsTemplate).Methods("POST", "OPTIONS").Name("save-as-template")
	r.HandleFunc("/users/{userId}/templates/{id}/use", workoutsHandler.HandleUseTemplate).Methods("POST", "OPTIONS").Name("use-template")
	r.HandleFunc("/sessions/{id}/exercises", workoutsHandler.HandleAddExercise).Methods("POST", "OPTIONS").Name("add-exercise")

	// logging a set is the only write that runs the validator and the ledger, rate limit it per client
	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	trainingHandler := training.NewHandler(a.Training)
	setsRouter := r.PathPrefix("/session-exercises").Subrouter()
	setsRouter.HandleFunc("/{id}/sets", trainingHandler.HandleLogSet).Methods("POST", "OPTIONS").Name("log-set")
	setsRouter.Use(middleware.RateLimit(reqRateLimiter, "log-set", s.config.LogSetRateLimitPerMin, s.metricsManager))

	recordsHandler := records.NewHandler(a.RecordsRepo)
	r.HandleFunc("/users/{userId}/records", recordsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-records")

	validationHandler := validation.NewHandler(a.ValidationRepo)
	r.HandleFunc("/users/{userId}/validations", validationHandler.HandleListEvents).Methods("GET", "OPTIONS").Name("list-validations")

	progressHandler := progress.NewHandler(a.Aggregator, a.ProgressRepo)
	r.HandleFunc("/users/{userId}/progress", progressHandler.HandleList).Methods("GET", "OPTIONS").Name("list-progress")
	r.HandleFunc("/users/{userId}/progress/rebuild", progressHandler.HandleRebuild).Methods("POST", "OPTIONS").Name("rebuild-progress")
	r.HandleFunc("/admin/users/{userId}/progress/rebuild", progressHandler.HandleRebuild).Methods("POST", "OPTIONS").Name("admin-rebuild-progress")

	recommendationsHandler := recommendations.NewHandler(a.Recommendations)
	r.HandleFunc("/users/{userId}/recommendations", recommendationsHandler.HandleGet).Methods("GET", "OPTIONS").Name("recommendations")

	dashboardHandler := dashboard.NewHandler(a.Dashboard)
	r.HandleFunc("/users/{userId}/dashboard", dashboardHandler.HandleGet).Methods("GET", "OPTIONS").Name("dashboard")

	bodyStatsHandler := bodystats.NewHandler(a.BodyStats)
	r.HandleFunc("/users/{userId}/bodystats", bodyStatsHandler.HandleLog).Methods("POST", "OPTIONS").Name("log-bodystats")
	r.HandleFunc("/users/{userId}/bodystats", bodyStatsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-bodystats")
	r.HandleFunc("/users/{userId}/bodystats/trend", bodyStatsHandler.HandleTrend).Methods("GET", "OPTIONS").Name("bodyweight-trend")

	goalsHandler := goals.NewHandler(a.Goals)
	r.HandleFunc("/users/{userId}/goals", goalsHandler.HandleCreate).Methods("POST", "OPTIONS").Name("create-goal")
	r.HandleFunc("/users/{userId}/goals", goalsHandler.HandleListActive).Methods("GET", "OPTIONS").Name("list-goals")
	r.HandleFunc("/goals/{id}/progress", goalsHandler.HandleUpdateProgress).Methods("PUT", "OPTIONS").Name("update-goal-progress")
	r.HandleFunc("/goals/{id}/status", goalsHandler.HandleSetStatus).Methods("PUT", "OPTIONS").Name("set-goal-status")
	r.HandleFunc("/users/{userId}/goals/{id}", goalsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-goal")

	r.PathPrefix("/mcp").Handler(mcp.NewHTTPHandler(mcp.NewServer(a.MCPDeps()))).Name("mcp")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.apiSecret, s.adminTokenHash)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins...))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.RequestBody(middleware.MaxRequestBodyBytes))

	return r, nil
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
