package cmd

import (
	"fmt"

	"github.com/padlock-dev/padlock/internal/ui"
	"github.com/padlock-dev/padlock/internal/vault"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Prints the secret stored under an exact name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		Logger.Infof("starting show command for %s", name)

		passphrase, err := sessionPassphrase()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read passphrase: %v", err)
		}

		entries, err := store.Lookup(passphrase, vault.ExactName(name))
		if err != nil {
			lockOnAuthFailure(err)
			return Logger.ErrorfAndReturn("failed to look up %s: %v", name, err)
		}

		if len(entries) == 0 {
			cmd.Println(color.RedString("✗") + " No entry named " + ui.Highlight.Sprint(name))
			return nil
		}

		// Secret goes to stdout alone so the output can be piped.
		fmt.Fprintln(cmd.OutOrStdout(), entries[0].Secret)
		return nil
	},
}
