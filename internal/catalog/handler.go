package catalog

import (
	"context"
	"net/http"
	"strings"

	"github.com/2beens/workoutware/internal/telemetry/tracing"
	"github.com/2beens/workoutware/internal/workouts"
	"github.com/2beens/workoutware/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=catalog_test

type catalogService interface {
	ListExercises(ctx context.Context) ([]workouts.Exercise, error)
	ListTargets(ctx context.Context) ([]workouts.Target, error)
}

type Handler struct {
	service catalogService
}

func NewHandler(service catalogService) *Handler {
	return &Handler{
		service: service,
	}
}

// HandleListExercises serves the catalog, optionally only exercises hitting a target group (?group=).
func (h *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.exercises.list")
	defer span.End()

	exercises, err := h.service.ListExercises(ctx)
	if err != nil {
		workouts.WriteError(w, err, "list exercises")
		return
	}

	if group := strings.TrimSpace(r.URL.Query().Get("group")); group != "" {
		exercises = FilterByGroup(exercises, group)
	}
	if exercises == nil {
		exercises = []workouts.Exercise{}
	}

	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (h *Handler) HandleListTargets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.targets.list")
	defer span.End()

	targets, err := h.service.ListTargets(ctx)
	if err != nil {
		workouts.WriteError(w, err, "list targets")
		return
	}
	if targets == nil {
		targets = []workouts.Target{}
	}

	pkg.WriteJSON(w, targets, http.StatusOK)
}

// FilterByGroup keeps exercises with at least one target in group, case insensitive.
func FilterByGroup(exercises []workouts.Exercise, group string) []workouts.Exercise {
	var filtered []workouts.Exercise
	for _, e := range exercises {
		for _, t := range e.Targets {
			if strings.EqualFold(t.Group, group) || strings.EqualFold(t.Name, group) {
				filtered = append(filtered, e)
				break
			}
		}
	}
	return filtered
}
