package workouts

import (
	"context"
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/workoutware/internal/telemetry/tracing"
	"github.com/2beens/workoutware/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type service interface {
	GetOrCreateUser(ctx context.Context, email, firstName, lastName string) (*User, error)
	CreateSession(ctx context.Context, ns NewSession) (*Session, error)
	AddExercise(ctx context.Context, sessionID int, ne NewSessionExercise) (*SessionExercise, error)
	CompleteSession(ctx context.Context, id int) (*Session, error)
	DeleteSession(ctx context.Context, id, userID int) error
	ListSessions(ctx context.Context, params ListSessionsParams) ([]Session, error)
	GetSessionDetail(ctx context.Context, id int) (*Session, error)
	UseTemplate(ctx context.Context, templateID, userID int, date, name string) (*Session, error)
	SaveAsTemplate(ctx context.Context, sessionID, userID int, name string) (*Session, error)
}

type CreateUserRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type UseTemplateRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

type SaveAsTemplateRequest struct {
	Name string `json:"name"`
}

type DeleteSessionResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	service service
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.users.create")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("create user, unmarshal json params: %s", err)
		http.Error(w, "create user failed", http.StatusBadRequest)
		return
	}

	user, err := h.service.GetOrCreateUser(ctx, req.Email, req.FirstName, req.LastName)
	if err != nil {
		WriteError(w, err, "get or create user")
		return
	}

	pkg.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.sessions.create")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var ns NewSession
	if err := json.NewDecoder(r.Body).Decode(&ns); err != nil {
		log.Tracef("create session, unmarshal json params: %s", err)
		http.Error(w, "create session failed", http.StatusBadRequest)
		return
	}

	session, err := h.service.CreateSession(ctx, ns)
	if err != nil {
		WriteError(w, err, "create session")
		return
	}

	log.Debugf("session %d created for user %d", session.ID, session.UserID)
	pkg.WriteJSON(w, session, http.StatusCreated)
}

func (h *Handler) HandleListSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.sessions.list")
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

	sessions, err := h.service.ListSessions(ctx, ListSessionsParams{
		UserID:          userID,
		CurrentWeekOnly: r.URL.Query().Get("week") == "current",
		Limit:           limit,
	})
	if err != nil {
		WriteError(w, err, "list sessions")
		return
	}
	if sessions == nil {
		sessions = []Session{}
	}

	pkg.WriteJSON(w, sessions, http.StatusOK)
}

func (h *Handler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.sessions.get")
	defer span.End()

	id, err := pkg.MuxVarInt(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.service.GetSessionDetail(ctx, id)
	if err != nil {
		WriteError(w, err, "get session")
		return
	}

	pkg.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) HandleCompleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.sessions.complete")
	defer span.End()

	id, err := pkg.MuxVarInt(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.service.CompleteSession(ctx, id)
	if err != nil {
		WriteError(w, err, "complete session")
		return
	}

	pkg.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.sessions.delete")
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

	if err := h.service.DeleteSession(ctx, id, userID); err != nil {
		WriteError(w, err, "delete session")
		return
	}

	pkg.WriteJSON(w, DeleteSessionResponse{DeletedID: id}, http.StatusOK)
}

func (h *Handler) HandleUseTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.templates.use")
	defer span.End()

	userID, err := pkg.MuxVarInt(r, "userId")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	templateID, err := pkg.MuxVarInt(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	var req UseTemplateRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Tracef("use template, unmarshal json params: %s", err)
			http.Error(w, "use template failed", http.StatusBadRequest)
			return
		}
	}

	session, err := h.service.UseTemplate(ctx, templateID, userID, req.Date, req.Name)
	if err != nil {
		WriteError(w, err, "use template")
		return
	}

	pkg.WriteJSON(w, session, http.StatusCreated)
}

func (h *Handler) HandleSaveAsTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.templates.save")
	defer span.End()

	userID, err := pkg.MuxVarInt(r, "userId")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	sessionID, err := pkg.MuxVarInt(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	var req SaveAsTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("save as template, unmarshal json params: %s", err)
		http.Error(w, "save as template failed", http.StatusBadRequest)
		return
	}

	template, err := h.service.SaveAsTemplate(ctx, sessionID, userID, req.Name)
	if err != nil {
		WriteError(w, err, "save as template")
		return
	}

	pkg.WriteJSON(w, template, http.StatusCreated)
}

func (h *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.sessions.addexercise")
	defer span.End()

	sessionID, err := pkg.MuxVarInt(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var ne NewSessionExercise
	if err := json.NewDecoder(r.Body).Decode(&ne); err != nil {
		log.Tracef("add exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}

	se, err := h.service.AddExercise(ctx, sessionID, ne)
	if err != nil {
		WriteError(w, err, "add exercise to session")
		return
	}

	pkg.WriteJSON(w, se, http.StatusCreated)
}
