package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2beens/workoutware/internal/progress"
	"github.com/2beens/workoutware/internal/workouts"
)

// Handler handles MCP tool requests and responses: parses input, calls the service, formats MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

// GetSchemaTool returns the MCP tool handler for get_workoutware_schema.
func (h *Handler) GetSchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

// UserLimitInput is the input for get_personal_records and get_validation_events.
type UserLimitInput struct {
	UserID int `json:"user_id" jsonschema:"User id"`
	Limit  int `json:"limit,omitempty" jsonschema:"Maximum number of entries, newest first"`
}

// GetPersonalRecordsTool returns the MCP tool handler for get_personal_records.
func (h *Handler) GetPersonalRecordsTool() func(context.Context, *mcp.CallToolRequest, UserLimitInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserLimitInput) (*mcp.CallToolResult, any, error) {
		prs, err := h.service.PersonalRecords(ctx, in.UserID, in.Limit)
		if err != nil {
			return errorResult("Error listing personal records: " + err.Error()), nil, nil
		}
		return jsonResult(prs), nil, nil
	}
}

// GetValidationEventsTool returns the MCP tool handler for get_validation_events.
func (h *Handler) GetValidationEventsTool() func(context.Context, *mcp.CallToolRequest, UserLimitInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserLimitInput) (*mcp.CallToolResult, any, error) {
		events, err := h.service.ValidationEvents(ctx, in.UserID, in.Limit)
		if err != nil {
			return errorResult("Error listing validation events: " + err.Error()), nil, nil
		}
		return jsonResult(events), nil, nil
	}
}

// ProgressInput is the input for get_progress.
type ProgressInput struct {
	UserID     int    `json:"user_id" jsonschema:"User id"`
	PeriodType string `json:"period_type,omitempty" jsonschema:"daily, weekly, monthly, quarterly or yearly (default weekly)"`
	ExerciseID int    `json:"exercise_id,omitempty" jsonschema:"Filter by exercise id"`
	FromDate   string `json:"from_date,omitempty" jsonschema:"Only periods starting on or after this date (YYYY-MM-DD)"`
}

// GetProgressTool returns the MCP tool handler for get_progress.
func (h *Handler) GetProgressTool() func(context.Context, *mcp.CallToolRequest, ProgressInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ProgressInput) (*mcp.CallToolResult, any, error) {
		periodRaw := in.PeriodType
		if periodRaw == "" {
			periodRaw = string(progress.Weekly)
		}
		pt, err := progress.ParsePeriodType(periodRaw)
		if err != nil {
			return errorResult("Invalid period_type: " + err.Error()), nil, nil
		}

		params := progress.ListParams{
			UserID:     in.UserID,
			PeriodType: pt,
			ExerciseID: in.ExerciseID,
		}
		if in.FromDate != "" {
			from, err := time.Parse(workouts.DateLayout, in.FromDate)
			if err != nil {
				return errorResult("Invalid from_date: use YYYY-MM-DD"), nil, nil
			}
			params.From = &from
		}

		rows, err := h.service.Progress(ctx, params)
		if err != nil {
			return errorResult("Error listing progress: " + err.Error()), nil, nil
		}
		return jsonResult(rows), nil, nil
	}
}

// UserInput is the input for get_recommendations.
type UserInput struct {
	UserID int `json:"user_id" jsonschema:"User id"`
}

// GetRecommendationsTool returns the MCP tool handler for get_recommendations.
func (h *Handler) GetRecommendationsTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		recs, err := h.service.Recommendations(ctx, in.UserID)
		if err != nil {
			return errorResult("Error computing recommendations: " + err.Error()), nil, nil
		}
		return jsonResult(recs), nil, nil
	}
}

// RebuildProgressInput is the input for rebuild_progress.
type RebuildProgressInput struct {
	UserID  int      `json:"user_id" jsonschema:"User id"`
	Periods []string `json:"periods,omitempty" jsonschema:"Period types to rebuild, all of them when empty"`
}

type RebuildProgressOutput struct {
	UserID       int                   `json:"userId"`
	Periods      []progress.PeriodType `json:"periods"`
	RowsInserted int                   `json:"rowsInserted"`
}

// RebuildProgressTool returns the MCP tool handler for rebuild_progress.
func (h *Handler) RebuildProgressTool() func(context.Context, *mcp.CallToolRequest, RebuildProgressInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in RebuildProgressInput) (*mcp.CallToolResult, any, error) {
		periods, err := progress.ParsePeriodTypes(in.Periods)
		if err != nil {
			return errorResult("Invalid periods: " + err.Error()), nil, nil
		}

		n, err := h.service.RebuildProgress(ctx, in.UserID, periods)
		if err != nil {
			return errorResult("Error rebuilding progress: " + err.Error()), nil, nil
		}
		return jsonResult(RebuildProgressOutput{
			UserID:       in.UserID,
			Periods:      periods,
			RowsInserted: n,
		}), nil, nil
	}
}
