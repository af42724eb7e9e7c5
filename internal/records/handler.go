package records

import (
	"context"
	"net/http"

	"github.com/2beens/workoutware/internal/telemetry/tracing"
	"github.com/2beens/workoutware/internal/workouts"
	"github.com/2beens/workoutware/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=records_test

type recordsRepo interface {
	List(ctx context.Context, userID, limit int) ([]PersonalRecord, error)
}

type Handler struct {
	repo recordsRepo
}

func NewHandler(repo recordsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.list")
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

	records, err := h.repo.List(ctx, userID, limit)
	if err != nil {
		workouts.WriteError(w, err, "list personal records")
		return
	}
	if records == nil {
		records = []PersonalRecord{}
	}

	pkg.WriteJSON(w, records, http.StatusOK)
}
