package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/workoutware/internal/progress"
	"github.com/2beens/workoutware/internal/recommendations"
	"github.com/2beens/workoutware/internal/records"
	"github.com/2beens/workoutware/internal/validation"
	"github.com/2beens/workoutware/internal/workouts"
)

type recordsLister interface {
	List(ctx context.Context, userID, limit int) ([]records.PersonalRecord, error)
}

type eventsLister interface {
	ListEvents(ctx context.Context, userID, limit int) ([]validation.Event, error)
}

type progressRebuilder interface {
	Rebuild(ctx context.Context, userID int, periods []progress.PeriodType) (int, error)
}

type rowsLister interface {
	ListRows(ctx context.Context, params progress.ListParams) ([]progress.Row, error)
}

type recommender interface {
	Recommend(ctx context.Context, userID int) (*recommendations.Recommendations, error)
}

// contextService is what the tool handlers call. Used by Handler for testability.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	PersonalRecords(ctx context.Context, userID, limit int) ([]records.PersonalRecord, error)
	Progress(ctx context.Context, params progress.ListParams) ([]progress.Row, error)
	Recommendations(ctx context.Context, userID int) (*recommendations.Recommendations, error)
	ValidationEvents(ctx context.Context, userID, limit int) ([]validation.Event, error)
	RebuildProgress(ctx context.Context, userID int, periods []progress.PeriodType) (int, error)
}

// Deps are the read models and the aggregator the tools are served from.
type Deps struct {
	Schema      SchemaRepo
	Records     recordsLister
	Events      eventsLister
	Aggregator  progressRebuilder
	Rollups     rowsLister
	Recommender recommender
}

type ContextService struct {
	deps Deps
}

func NewContextService(deps Deps) *ContextService {
	return &ContextService{
		deps: deps,
	}
}

// GetSchema returns the DB schema (table names, columns, types) of the workoutware tables.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.deps.Schema.GetColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Workoutware DB Schema\n\nNo workoutware tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Workoutware DB Schema\n\n")
	b.WriteString("Tables: ")
	b.WriteString(strings.Join(tableOrder, ", "))
	b.WriteString(" (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func (s *ContextService) PersonalRecords(ctx context.Context, userID, limit int) ([]records.PersonalRecord, error) {
	if userID <= 0 {
		return nil, workouts.InvalidInput("user id must be positive")
	}
	return s.deps.Records.List(ctx, userID, limit)
}

func (s *ContextService) Progress(ctx context.Context, params progress.ListParams) ([]progress.Row, error) {
	if params.UserID <= 0 {
		return nil, workouts.InvalidInput("user id must be positive")
	}
	return s.deps.Rollups.ListRows(ctx, params)
}

func (s *ContextService) Recommendations(ctx context.Context, userID int) (*recommendations.Recommendations, error) {
	return s.deps.Recommender.Recommend(ctx, userID)
}

func (s *ContextService) ValidationEvents(ctx context.Context, userID, limit int) ([]validation.Event, error) {
	if userID <= 0 {
		return nil, workouts.InvalidInput("user id must be positive")
	}
	return s.deps.Events.ListEvents(ctx, userID, validation.ClampLimit(limit))
}

// RebuildProgress recomputes the rollups of the given period types. It returns the number of rows written.
func (s *ContextService) RebuildProgress(ctx context.Context, userID int, periods []progress.PeriodType) (int, error) {
	return s.deps.Aggregator.Rebuild(ctx, userID, periods)
}
