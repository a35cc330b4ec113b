package cmd

import (
	"fmt"

	"github.com/padlock-dev/padlock/internal/vault"

	"github.com/spf13/cobra"
)

var generateLength int

func init() {
	generateCmd.Flags().IntVarP(&generateLength, "length", "l", 0, "length of the generated secret (defaults to the config value)")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Prints a randomly generated secret without storing it",
	RunE: func(cmd *cobra.Command, args []string) error {
		length := generateLength
		if length <= 0 {
			length = config.GenerateLength
		}

		secret, err := vault.GenerateSecret(length)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to generate secret: %v", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), secret)
		return nil
	},
}
