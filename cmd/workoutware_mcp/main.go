// Package main runs the workoutware MCP server over stdio.
// The same MCP server is also mounted on the main backend at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/workoutware/internal/app"
	"github.com/2beens/workoutware/internal/clock"
	"github.com/2beens/workoutware/internal/config"
	"github.com/2beens/workoutware/internal/db"
	"github.com/2beens/workoutware/internal/logging"
	workoutwaremcp "github.com/2beens/workoutware/internal/mcp"
	"github.com/2beens/workoutware/internal/telemetry/metrics"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// stdout carries the MCP protocol, logs go to stderr
	logging.Setup(logging.LoggerSetupParams{
		ServiceName:   "mcp",
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogFormatJSON,
		Console:       os.Stderr,
	})

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: cfg.PostgresPassword,
		MaxConns:   cfg.PostgresMaxConns,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	a := app.New(dbPool, cfg, metrics.NewManager("workoutware", "mcp", metrics.SetupPrometheus()), clock.Real{})
	server := workoutwaremcp.NewServer(a.MCPDeps())

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Error(err)
	}
}
