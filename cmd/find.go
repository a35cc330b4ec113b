package cmd

import (
	"fmt"

	"github.com/padlock-dev/padlock/internal/ui"
	"github.com/padlock-dev/padlock/internal/vault"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find TEXT",
	Short: "Lists entries whose name contains the given text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := args[0]
		Logger.Infof("starting find command for %q", text)

		passphrase, err := sessionPassphrase()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read passphrase: %v", err)
		}

		entries, err := store.Lookup(passphrase, vault.Contains(text))
		if err != nil {
			lockOnAuthFailure(err)
			return Logger.ErrorfAndReturn("failed to search for %q: %v", text, err)
		}

		if len(entries) == 0 {
			cmd.Println(color.RedString("✗") + " No entry name contains " + ui.Highlight.Sprint(text))
			return nil
		}

		for _, e := range entries {
			fmt.Fprintln(cmd.OutOrStdout(), e.Name)
		}
		return nil
	},
}
