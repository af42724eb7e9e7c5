package training

import (
	"context"
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/workoutware/internal/telemetry/tracing"
	"github.com/2beens/workoutware/internal/workouts"
	"github.com/2beens/workoutware/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=training_test

type setLogger interface {
	LogSet(ctx context.Context, sessionExerciseID int, req LogSetRequest) (*LogSetResult, error)
}

type Handler struct {
	service setLogger
}

func NewHandler(service setLogger) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleLogSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.logset")
	defer span.End()

	sessionExerciseID, err := pkg.MuxVarInt(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req LogSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("log set, unmarshal json params: %s", err)
		http.Error(w, "log set failed", http.StatusBadRequest)
		return
	}

	result, err := h.service.LogSet(ctx, sessionExerciseID, req)
	if err != nil {
		workouts.WriteError(w, err, "log set")
		return
	}

	pkg.WriteJSON(w, result, http.StatusCreated)
}
