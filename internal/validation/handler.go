package validation

import (
	"context"
	"net/http"

	"github.com/2beens/workoutware/internal/telemetry/tracing"
	"github.com/2beens/workoutware/internal/workouts"
	"github.com/2beens/workoutware/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=validation_test

type eventsRepo interface {
	ListEvents(ctx context.Context, userID, limit int) ([]Event, error)
}

type Handler struct {
	repo eventsRepo
}

func NewHandler(repo eventsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (h *Handler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.validation.events.list")
	defer span.End()

	userID, err := pkg.MuxVarInt(r, "userId")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	limit, err := pkg.QueryInt(r, "limit", DefaultEventsLimit)
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	events, err := h.repo.ListEvents(ctx, userID, ClampLimit(limit))
	if err != nil {
		workouts.WriteError(w, err, "list validation events")
		return
	}
	if events == nil {
		events = []Event{}
	}

	pkg.WriteJSON(w, events, http.StatusOK)
}

func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultEventsLimit
	}
	if limit > MaxEventsLimit {
		return MaxEventsLimit
	}
	return limit
}
