package goals

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/workoutware/internal/telemetry/tracing"
	"github.com/2beens/workoutware/internal/workouts"
	"github.com/2beens/workoutware/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=goals_test

type goalsService interface {
	Create(ctx context.Context, userID int, ng NewGoal) (*Goal, error)
	ListActive(ctx context.Context, userID int) ([]Goal, error)
	UpdateProgress(ctx context.Context, id int, current decimal.Decimal) error
	SetStatus(ctx context.Context, id int, rawStatus string) (Status, error)
	Delete(ctx context.Context, userID, id int) error
}

type UpdateProgressRequest struct {
	CurrentValue decimal.Decimal `json:"currentValue"`
}

type SetStatusRequest struct {
	Status string `json:"status"`
}

type GoalResponse struct {
	ID           int              `json:"id"`
	Status       Status           `json:"status,omitempty"`
	CurrentValue *decimal.Decimal `json:"currentValue,omitempty"`
	Deleted      bool             `json:"deleted,omitempty"`
}

type Handler struct {
	service goalsService
}

func NewHandler(service goalsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.create")
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

	var ng NewGoal
	if err := json.NewDecoder(r.Body).Decode(&ng); err != nil {
		log.Tracef("create goal, unmarshal json params: %s", err)
		http.Error(w, "create goal failed", http.StatusBadRequest)
		return
	}

	goal, err := h.service.Create(ctx, userID, ng)
	if err != nil {
		workouts.WriteError(w, err, "create goal")
		return
	}

	pkg.WriteJSON(w, goal, http.StatusCreated)
}

func (h *Handler) HandleListActive(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.list")
	defer span.End()

	userID, err := pkg.MuxVarInt(r, "userId")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	goals, err := h.service.ListActive(ctx, userID)
	if err != nil {
		workouts.WriteError(w, err, "list goals")
		return
	}
	if goals == nil {
		goals = []Goal{}
	}

	pkg.WriteJSON(w, goals, http.StatusOK)
}

func (h *Handler) HandleUpdateProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.progress")
	defer span.End()

	id, err := pkg.MuxVarInt(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	var req UpdateProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update goal progress, unmarshal json params: %s", err)
		http.Error(w, "update goal progress failed", http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateProgress(ctx, id, req.CurrentValue); err != nil {
		workouts.WriteError(w, err, "update goal progress")
		return
	}

	pkg.WriteJSON(w, GoalResponse{ID: id, CurrentValue: &req.CurrentValue}, http.StatusOK)
}

func (h *Handler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.status")
	defer span.End()

	id, err := pkg.MuxVarInt(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	var req SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("set goal status, unmarshal json params: %s", err)
		http.Error(w, "set goal status failed", http.StatusBadRequest)
		return
	}

	status, err := h.service.SetStatus(ctx, id, req.Status)
	if err != nil {
		workouts.WriteError(w, err, "set goal status")
		return
	}

	pkg.WriteJSON(w, GoalResponse{ID: id, Status: status}, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.delete")
	defer span.End()

	userID, err := pkg.MuxVarInt(r, "userId")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	id, err := pkg.MuxVarInt(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(ctx, userID, id); err != nil {
		workouts.WriteError(w, err, "delete goal")
		return
	}

	pkg.WriteJSON(w, GoalResponse{ID: id, Deleted: true}, http.StatusOK)
}
