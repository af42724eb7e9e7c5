// Command workoutware_admin is the operator CLI of the workoutware backend.
package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/2beens/workoutware/internal/app"
	"github.com/2beens/workoutware/internal/clock"
	"github.com/2beens/workoutware/internal/config"
	"github.com/2beens/workoutware/internal/db"
	"github.com/2beens/workoutware/internal/logging"
	"github.com/2beens/workoutware/internal/telemetry/metrics"
)

var (
	flagEnv        string
	flagConfigPath string

	cfg    *config.Config
	dbPool *pgxpool.Pool
	wwApp  *app.App
)

var rootCmd = &cobra.Command{
	Use:   "workoutware_admin",
	Short: "Workoutware operator tools",
	Long: `Operator tools for the workoutware backend.

EXAMPLES:

  workoutware_admin init-schema
  workoutware_admin rebuild --user 1 --periods weekly,monthly
  workoutware_admin recommend --user 1
  workoutware_admin validate --user 1 --exercise 3 --weight 102.5
  workoutware_admin hash-token s3cret`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == hashTokenCmd.Name() {
			return nil
		}

		var err error
		cfg, err = config.Load(flagEnv, flagConfigPath)
		if err != nil {
			return err
		}
		logging.Setup(logging.LoggerSetupParams{
			ServiceName: "admin",
			LogLevel:    cfg.LogLevel,
			Console:     cmd.ErrOrStderr(),
		})

		dbPool, err = db.NewDBPool(cmd.Context(), db.NewDBPoolParams{
			DBHost:     cfg.PostgresHost,
			DBPort:     cfg.PostgresPort,
			DBName:     cfg.PostgresDBName,
			DBUser:     cfg.PostgresUser,
			DBPassword: cfg.PostgresPassword,
			MaxConns:   cfg.PostgresMaxConns,
		})
		if err != nil {
			return fmt.Errorf("db pool: %w", err)
		}

		wwApp = app.New(dbPool, cfg, metrics.NewManager("workoutware", "admin", metrics.SetupPrometheus()), clock.Real{})
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if dbPool != nil {
			dbPool.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnv, "env", "development", "environment [prod | production | dev | development]")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "./config.toml", "path to TOML config file")
	rootCmd.SetContext(context.Background())
}
