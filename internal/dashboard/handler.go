package dashboard

import (
	"context"
	"net/http"

	"github.com/2beens/workoutware/internal/telemetry/tracing"
	"github.com/2beens/workoutware/internal/workouts"
	"github.com/2beens/workoutware/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard_test

type dashboardService interface {
	Get(ctx context.Context, userID int) (*Dashboard, error)
}

type Handler struct {
	service dashboardService
}

func NewHandler(service dashboardService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.get")
	defer span.End()

	userID, err := pkg.MuxVarInt(r, "userId")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	d, err := h.service.Get(ctx, userID)
	if err != nil {
		workouts.WriteError(w, err, "get dashboard")
		return
	}

	pkg.WriteJSON(w, d, http.StatusOK)
}
