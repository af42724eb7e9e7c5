package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/2beens/workoutware/internal/validation"
)

var (
	validateUserID     int
	validateExerciseID int
	validateWeight     string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Classify a weight against a user's history",
	Long: `Classify a weight against the history of a user for one exercise.
Nothing is written, no validation event is recorded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if validateUserID <= 0 || validateExerciseID <= 0 {
			return fmt.Errorf("--user and --exercise must be positive ids")
		}
		weight, err := decimal.NewFromString(validateWeight)
		if err != nil {
			return fmt.Errorf("invalid --weight %q: %w", validateWeight, err)
		}

		res, err := wwApp.Validator.Validate(cmd.Context(), validateUserID, validateExerciseID, weight)
		if err != nil {
			return fmt.Errorf("validate: %w", err)
		}

		printValidation(cmd.OutOrStdout(), res)
		return nil
	},
}

func classificationColor(c validation.Classification) *color.Color {
	switch c {
	case validation.Outlier:
		return color.New(color.FgRed, color.Bold)
	case validation.SuspiciousLow:
		return color.New(color.FgYellow)
	case validation.PR:
		return color.New(color.FgGreen, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

func printValidation(w io.Writer, res *validation.Result) {
	fmt.Fprintf(w, "classification: %s\n", classificationColor(res.Classification).Sprint(res.Classification))
	fmt.Fprintf(w, "input weight:   %s\n", res.InputWeight.StringFixed(2))
	if res.ExpectedMax.Valid {
		fmt.Fprintf(w, "expected max:   %s\n", res.ExpectedMax.Decimal.StringFixed(2))
	}
	if res.AverageWeight.Valid {
		fmt.Fprintf(w, "average weight: %s\n", res.AverageWeight.Decimal.StringFixed(2))
	}
}

func init() {
	validateCmd.Flags().IntVarP(&validateUserID, "user", "u", 0, "user id")
	validateCmd.Flags().IntVarP(&validateExerciseID, "exercise", "e", 0, "exercise id")
	validateCmd.Flags().StringVarP(&validateWeight, "weight", "w", "", "weight to classify")
	_ = validateCmd.MarkFlagRequired("user")
	_ = validateCmd.MarkFlagRequired("exercise")
	_ = validateCmd.MarkFlagRequired("weight")
	rootCmd.AddCommand(validateCmd)
}
