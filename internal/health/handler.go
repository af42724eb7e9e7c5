package health

import (
	"context"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/workoutware/internal/telemetry/tracing"
	"github.com/2beens/workoutware/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=health_test

const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"

	pingTimeout = 2 * time.Second
)

type pinger interface {
	Ping(ctx context.Context) error
}

type Response struct {
	Status   string `json:"status"`
	Postgres string `json:"postgres"`
	Redis    string `json:"redis"`
	Version  string `json:"version,omitempty"`
}

type Handler struct {
	db          pinger
	redisClient *redis.Client
	versionInfo string
}

func NewHandler(db pinger, redisClient *redis.Client, versionInfo string) *Handler {
	return &Handler{
		db:          db,
		redisClient: redisClient,
		versionInfo: versionInfo,
	}
}

// HandleHealth pings postgres and redis. Any failing dependency answers 503.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.health")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	resp := Response{
		Status:   StatusOK,
		Postgres: StatusOK,
		Redis:    StatusOK,
		Version:  h.versionInfo,
	}

	if err := h.db.Ping(ctx); err != nil {
		log.Errorf("health, ping postgres: %s", err)
		resp.Postgres = err.Error()
		resp.Status = StatusDegraded
	}

	if err := h.redisClient.Ping(ctx).Err(); err != nil {
		log.Errorf("health, ping redis: %s", err)
		resp.Redis = err.Error()
		resp.Status = StatusDegraded
	}

	status := http.StatusOK
	if resp.Status != StatusOK {
		status = http.StatusServiceUnavailable
	}
	pkg.WriteJSON(w, resp, status)
}
