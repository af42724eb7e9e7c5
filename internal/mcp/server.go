package mcp

import (
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewServer builds an MCP server with the workoutware tools. The same server runs
// over stdio (cmd/workoutware_mcp) and over HTTP at /mcp on the main backend.
func NewServer(deps Deps) *mcp.Server {
	h := NewHandler(NewContextService(deps))
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "workoutware",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workoutware_schema",
		Description: "Returns the DB schema of the workoutware tables: table names, columns, types, nullable, default. Use when you need the actual backend schema.",
	}, h.GetSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_personal_records",
		Description: "Returns the personal records (max weight, max reps, max volume) of a user, most recently achieved first. Args: user_id; optional: limit.",
	}, h.GetPersonalRecordsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_progress",
		Description: "Returns per-period rollups (max weight, avg weight, total volume, workout count) of a user. Args: user_id; optional: period_type, exercise_id, from_date (YYYY-MM-DD).",
	}, h.GetProgressTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_recommendations",
		Description: "Returns weight increase suggestions and neglected muscle groups for a user. Arg: user_id.",
	}, h.GetRecommendationsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_validation_events",
		Description: "Returns the weight validation events (normal, pr, outlier, suspicious_low, first_time) of a user, newest first. Args: user_id; optional: limit.",
	}, h.GetValidationEventsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "rebuild_progress",
		Description: "Recomputes the progress rollups of a user from the logged sets. Args: user_id; optional: periods (daily, weekly, monthly, quarterly, yearly).",
	}, h.RebuildProgressTool())

	return s
}

// NewHTTPHandler serves the given MCP server over streamable HTTP, traced with otelhttp.
func NewHTTPHandler(s *mcp.Server) http.Handler {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s
	}, nil)
	return otelhttp.NewHandler(handler, "mcp")
}
