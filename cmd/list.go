package cmd

import (
	"fmt"

	"github.com/padlock-dev/padlock/internal/ui"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the names of all stored entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("starting list command")

		passphrase, err := sessionPassphrase()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read passphrase: %v", err)
		}

		collection, err := store.Load(passphrase)
		if err != nil {
			lockOnAuthFailure(err)
			return Logger.ErrorfAndReturn("failed to load database: %v", err)
		}

		if len(collection) == 0 {
			cmd.Println(ui.Muted.Sprint("the database is empty"))
			return nil
		}

		for _, e := range collection {
			fmt.Fprintln(cmd.OutOrStdout(), e.Name)
		}
		return nil
	},
}
