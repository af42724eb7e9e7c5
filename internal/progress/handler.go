package progress

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/workoutware/internal/telemetry/tracing"
	"github.com/2beens/workoutware/internal/workouts"
	"github.com/2beens/workoutware/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

type rebuilder interface {
	Rebuild(ctx context.Context, userID int, periods []PeriodType) (int, error)
}

type rowsRepo interface {
	ListRows(ctx context.Context, params ListParams) ([]Row, error)
}

type RebuildRequest struct {
	Periods []string `json:"periods"`
}

type RebuildResponse struct {
	UserID       int          `json:"userId"`
	Periods      []PeriodType `json:"periods"`
	RowsInserted int          `json:"rowsInserted"`
}

type Handler struct {
	aggregator rebuilder
	repo       rowsRepo
}

func NewHandler(aggregator rebuilder, repo rowsRepo) *Handler {
	return &Handler{
		aggregator: aggregator,
		repo:       repo,
	}
}

// HandleList serves rollups of one period type, optionally for a single exercise.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.list")
	defer span.End()

	userID, err := pkg.MuxVarInt(r, "userId")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	query := r.URL.Query()
	periodRaw := query.Get("period")
	if periodRaw == "" {
		periodRaw = string(Weekly)
	}
	pt, err := ParsePeriodType(periodRaw)
	if err != nil {
		workouts.WriteError(w, err, "list progress")
		return
	}

	exerciseID, err := pkg.QueryInt(r, "exerciseId", 0)
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	params := ListParams{
		UserID:     userID,
		PeriodType: pt,
		ExerciseID: exerciseID,
	}
	if fromRaw := query.Get("from"); fromRaw != "" {
		from, err := time.Parse(workouts.DateLayout, fromRaw)
		if err != nil {
			http.Error(w, "error, from must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		params.From = &from
	}

	rows, err := h.repo.ListRows(ctx, params)
	if err != nil {
		workouts.WriteError(w, err, "list progress")
		return
	}
	if rows == nil {
		rows = []Row{}
	}

	pkg.WriteJSON(w, rows, http.StatusOK)
}

// HandleRebuild rebuilds the requested period types, or all of them when none are given.
// Periods can come from a JSON body or a comma separated "periods" query parameter.
func (h *Handler) HandleRebuild(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.rebuild")
	defer span.End()

	userID, err := pkg.MuxVarInt(r, "userId")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	var req RebuildRequest
	if r.Header.Get("Content-Type") == pkg.ContentType.JSON && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Tracef("rebuild progress, unmarshal json params: %s", err)
			http.Error(w, "rebuild progress failed", http.StatusBadRequest)
			return
		}
	} else if raw := r.URL.Query().Get("periods"); raw != "" {
		req.Periods = strings.Split(raw, ",")
	}

	periods, err := ParsePeriodTypes(req.Periods)
	if err != nil {
		workouts.WriteError(w, err, "rebuild progress")
		return
	}

	inserted, err := h.aggregator.Rebuild(ctx, userID, periods)
	if err != nil {
		workouts.WriteError(w, err, "rebuild progress")
		return
	}

	pkg.WriteJSON(w, RebuildResponse{
		UserID:       userID,
		Periods:      periods,
		RowsInserted: inserted,
	}, http.StatusOK)
}
