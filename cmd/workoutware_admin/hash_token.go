package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/2beens/workoutware/pkg"
)

var hashTokenCmd = &cobra.Command{
	Use:   "hash-token <token>",
	Short: "Print the bcrypt hash of an admin token",
	Long: `Print the bcrypt hash of an admin token.
Export the result as WORKOUTWARE_ADMIN_TOKEN_HASH to enable the /admin routes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := pkg.HashToken(args[0])
		if err != nil {
			return fmt.Errorf("hash token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hashTokenCmd)
}
