package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/2beens/workoutware/internal/progress"
)

var (
	rebuildUserID  int
	rebuildPeriods []string
)

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the progress rollups of a user",
	Long: `Delete and recompute the progress rollups of a user.

Without --periods all period types are rebuilt:
daily, weekly, monthly, quarterly, yearly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if rebuildUserID <= 0 {
			return fmt.Errorf("--user must be a positive id")
		}
		periods, err := progress.ParsePeriodTypes(rebuildPeriods)
		if err != nil {
			return err
		}

		inserted, err := wwApp.Aggregator.Rebuild(cmd.Context(), rebuildUserID, periods)
		if err != nil {
			return fmt.Errorf("rebuild: %w", err)
		}

		printRebuild(cmd.OutOrStdout(), rebuildUserID, periods, inserted)
		return nil
	},
}

func printRebuild(w io.Writer, userID int, periods []progress.PeriodType, inserted int) {
	bold := color.New(color.Bold)
	fmt.Fprintf(w, "user %s: rebuilt", bold.Sprint(userID))
	for _, pt := range periods {
		fmt.Fprintf(w, " %s", pt)
	}
	fmt.Fprintf(w, ", %s rows inserted\n", color.New(color.FgGreen).Sprint(inserted))
}

func init() {
	rebuildCmd.Flags().IntVarP(&rebuildUserID, "user", "u", 0, "user id")
	rebuildCmd.Flags().StringSliceVarP(&rebuildPeriods, "periods", "p", nil, "period types to rebuild")
	_ = rebuildCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(rebuildCmd)
}
