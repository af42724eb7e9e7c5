package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/2beens/workoutware/internal/db"
)

var initSchemaCmd = &cobra.Command{
	Use:   "init-schema",
	Short: "Create missing workoutware tables",
	Long: `Create every workoutware table that does not exist yet.
Existing tables and their data are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := db.EnsureSchema(cmd.Context(), dbPool); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "schema ready (%d tables)\n", len(db.Tables))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSchemaCmd)
}
