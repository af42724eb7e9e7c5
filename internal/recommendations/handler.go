package recommendations

import (
	"context"
	"net/http"

	"github.com/2beens/workoutware/internal/telemetry/tracing"
	"github.com/2beens/workoutware/internal/workouts"
	"github.com/2beens/workoutware/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=recommendations_test

type recommender interface {
	Recommend(ctx context.Context, userID int) (*Recommendations, error)
}

type Handler struct {
	engine recommender
}

func NewHandler(engine recommender) *Handler {
	return &Handler{
		engine: engine,
	}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.recommendations.get")
	defer span.End()

	userID, err := pkg.MuxVarInt(r, "userId")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	recs, err := h.engine.Recommend(ctx, userID)
	if err != nil {
		workouts.WriteError(w, err, "get recommendations")
		return
	}
	if recs.WeightIncrease == nil {
		recs.WeightIncrease = []WeightIncrease{}
	}
	if recs.NeglectedMuscleGroups == nil {
		recs.NeglectedMuscleGroups = []NeglectedGroup{}
	}

	pkg.WriteJSON(w, recs, http.StatusOK)
}
