package bodystats

import (
	"context"
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/workoutware/internal/telemetry/tracing"
	"github.com/2beens/workoutware/internal/workouts"
	"github.com/2beens/workoutware/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=bodystats_test

type bodyStatsService interface {
	Log(ctx context.Context, userID int, nl NewLog) (*Log, error)
	List(ctx context.Context, userID, limit int) ([]Log, error)
	Trend(ctx context.Context, userID int) ([]TrendPoint, error)
}

type Handler struct {
	service bodyStatsService
}

func NewHandler(service bodyStatsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodystats.log")
	defer span.End()

	userID, err := pkg.MuxVarInt(r, "userId")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var nl NewLog
	if err := json.NewDecoder(r.Body).Decode(&nl); err != nil {
		log.Tracef("log body stats, unmarshal json params: %s", err)
		http.Error(w, "log body stats failed", http.StatusBadRequest)
		return
	}

	entry, err := h.service.Log(ctx, userID, nl)
	if err != nil {
		workouts.WriteError(w, err, "log body stats")
		return
	}

	pkg.WriteJSON(w, entry, http.StatusCreated)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodystats.list")
	defer span.End()

	userID, err := pkg.MuxVarInt(r, "userId")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	limit, err := pkg.QueryInt(r, "limit", 0)
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	logs, err := h.service.List(ctx, userID, limit)
	if err != nil {
		workouts.WriteError(w, err, "list body stats")
		return
	}
	if logs == nil {
		logs = []Log{}
	}

	pkg.WriteJSON(w, logs, http.StatusOK)
}

func (h *Handler) HandleTrend(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodystats.trend")
	defer span.End()

	userID, err := pkg.MuxVarInt(r, "userId")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	points, err := h.service.Trend(ctx, userID)
	if err != nil {
		workouts.WriteError(w, err, "bodyweight trend")
		return
	}
	if points == nil {
		points = []TrendPoint{}
	}

	pkg.WriteJSON(w, points, http.StatusOK)
}
