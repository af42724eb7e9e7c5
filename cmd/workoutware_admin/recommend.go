package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/2beens/workoutware/internal/recommendations"
)

var recommendUserID int

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print the training recommendations of a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if recommendUserID <= 0 {
			return fmt.Errorf("--user must be a positive id")
		}

		recs, err := wwApp.Recommendations.Recommend(cmd.Context(), recommendUserID)
		if err != nil {
			return fmt.Errorf("recommend: %w", err)
		}

		printRecommendations(cmd.OutOrStdout(), recs)
		return nil
	},
}

func printRecommendations(w io.Writer, recs *recommendations.Recommendations) {
	header := color.New(color.Bold, color.Underline)
	faint := color.New(color.Faint)

	header.Fprintln(w, "Weight increases")
	if len(recs.WeightIncrease) == 0 {
		faint.Fprintln(w, "  none")
	}
	for _, wi := range recs.WeightIncrease {
		fmt.Fprintf(w, "  %-24s %s -> %s  %s\n",
			wi.ExerciseName,
			wi.CurrentWeight.StringFixed(2),
			color.New(color.FgGreen).Sprint(wi.SuggestedWeight.StringFixed(2)),
			faint.Sprint(wi.Reason),
		)
	}

	header.Fprintln(w, "Neglected muscle groups")
	if len(recs.NeglectedMuscleGroups) == 0 {
		faint.Fprintln(w, "  none")
	}
	for _, ng := range recs.NeglectedMuscleGroups {
		flag := color.New(color.FgYellow).Sprint(ng.Flag)
		fmt.Fprintf(w, "  %-24s %-10s %s  %s\n", ng.TargetName, ng.Group, flag, faint.Sprint(ng.Reason))
	}
}

func init() {
	recommendCmd.Flags().IntVarP(&recommendUserID, "user", "u", 0, "user id")
	_ = recommendCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(recommendCmd)
}
