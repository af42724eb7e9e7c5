package catalog

import (
	"context"
	"encoding/json"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/workoutware/internal/telemetry/metrics"
	"github.com/2beens/workoutware/internal/telemetry/tracing"
	"github.com/2beens/workoutware/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=catalog_test

type catalogRepo interface {
	ListExercises(ctx context.Context) ([]workouts.Exercise, error)
	ListTargets(ctx context.Context) ([]workouts.Target, error)
}

const (
	megabyte = 1024 * 1024

	exercisesCacheKey = "catalog::exercises"
	targetsCacheKey   = "catalog::targets"
)

// Service serves the shared exercise catalog. It changes rarely, so reads
// go through an in-process cache.
type Service struct {
	repo       catalogRepo
	cache      *freecache.Cache
	ttlSeconds int
	metrics    *metrics.Manager
}

func NewService(repo catalogRepo, cacheSizeMB, ttlSeconds int, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:       repo,
		cache:      freecache.NewCache(cacheSizeMB * megabyte),
		ttlSeconds: ttlSeconds,
		metrics:    metricsManager,
	}
}

func (s *Service) ListExercises(ctx context.Context) (_ []workouts.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.catalog.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exercises []workouts.Exercise
	if s.fromCache(exercisesCacheKey, &exercises) {
		return exercises, nil
	}

	exercises, err = s.repo.ListExercises(ctx)
	if err != nil {
		return nil, err
	}
	s.toCache(exercisesCacheKey, exercises)
	return exercises, nil
}

func (s *Service) ListTargets(ctx context.Context) (_ []workouts.Target, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.catalog.targets.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var targets []workouts.Target
	if s.fromCache(targetsCacheKey, &targets) {
		return targets, nil
	}

	targets, err = s.repo.ListTargets(ctx)
	if err != nil {
		return nil, err
	}
	s.toCache(targetsCacheKey, targets)
	return targets, nil
}

// Invalidate drops the cached catalog, e.g. after the admin CLI seeds exercises.
func (s *Service) Invalidate() {
	s.cache.Del([]byte(exercisesCacheKey))
	s.cache.Del([]byte(targetsCacheKey))
}

func (s *Service) fromCache(key string, dest any) bool {
	cached, err := s.cache.Get([]byte(key))
	if err != nil {
		s.metrics.CounterCatalogCache.WithLabelValues("miss").Inc()
		return false
	}
	if err := json.Unmarshal(cached, dest); err != nil {
		log.Errorf("failed to unmarshal cached %s: %s", key, err)
		s.metrics.CounterCatalogCache.WithLabelValues("miss").Inc()
		return false
	}
	s.metrics.CounterCatalogCache.WithLabelValues("hit").Inc()
	return true
}

func (s *Service) toCache(key string, value any) {
	valueBytes, err := json.Marshal(value)
	if err != nil {
		log.Errorf("failed to marshal %s for cache: %s", key, err)
		return
	}
	if err := s.cache.Set([]byte(key), valueBytes, s.ttlSeconds); err != nil {
		log.Errorf("failed to write %s cache: %s", key, err)
		return
	}
	log.Tracef("%s cache set", key)
}
