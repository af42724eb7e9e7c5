package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/2beens/workoutware/internal/middleware"
	"github.com/2beens/workoutware/internal/training"
	"github.com/2beens/workoutware/internal/workouts"
)

// doRequest sends an authenticated API request and returns the status and body.
func (s *IntegrationTestSuite) doRequest(ctx context.Context, method, path string, body any, headers map[string]string) (int, []byte) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reader)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set(middleware.HeaderAPIToken, testAPISecret)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)
	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) doJSON(ctx context.Context, method, path string, body any, wantStatus int, out any) {
	status, respBytes := s.doRequest(ctx, method, path, body, nil)
	require.Equal(s.T(), wantStatus, status, string(respBytes))
	if out != nil {
		require.NoError(s.T(), json.Unmarshal(respBytes, out))
	}
}

func (s *IntegrationTestSuite) createUser(ctx context.Context) workouts.User {
	var user workouts.User
	s.doJSON(ctx, http.MethodPost, "/users", map[string]string{
		"email":     gofakeit.Email(),
		"firstName": gofakeit.FirstName(),
		"lastName":  gofakeit.LastName(),
	}, http.StatusOK, &user)
	require.Positive(s.T(), user.ID)
	return user
}

func (s *IntegrationTestSuite) createSession(ctx context.Context, userID int, date time.Time, isTemplate bool) workouts.Session {
	var session workouts.Session
	s.doJSON(ctx, http.MethodPost, "/sessions", workouts.NewSession{
		UserID:     userID,
		Name:       gofakeit.Word(),
		Date:       date.Format(workouts.DateLayout),
		IsTemplate: isTemplate,
	}, http.StatusCreated, &session)
	return session
}

func (s *IntegrationTestSuite) addExercise(ctx context.Context, sessionID, exerciseID, order int, targetReps *int) workouts.SessionExercise {
	var se workouts.SessionExercise
	s.doJSON(ctx, http.MethodPost, fmt.Sprintf("/sessions/%d/exercises", sessionID), workouts.NewSessionExercise{
		ExerciseID: exerciseID,
		Order:      order,
		TargetReps: targetReps,
	}, http.StatusCreated, &se)
	return se
}

func (s *IntegrationTestSuite) logSet(ctx context.Context, sessionExerciseID int, weight string, reps int) training.LogSetResult {
	req := training.LogSetRequest{Reps: reps}
	if weight != "" {
		req.Weight = decimal.NewNullDecimal(decimal.RequireFromString(weight))
	}

	var res training.LogSetResult
	s.doJSON(ctx, http.MethodPost, fmt.Sprintf("/session-exercises/%d/sets", sessionExerciseID), req, http.StatusCreated, &res)
	return res
}

func (s *IntegrationTestSuite) completeSession(ctx context.Context, sessionID int) workouts.Session {
	var session workouts.Session
	s.doJSON(ctx, http.MethodPost, fmt.Sprintf("/sessions/%d/complete", sessionID), nil, http.StatusOK, &session)
	require.True(s.T(), session.Completed)
	return session
}
