package cmd

import (
	"errors"

	"github.com/padlock-dev/padlock/internal/audit"
	perrors "github.com/padlock-dev/padlock/internal/errors"
	"github.com/padlock-dev/padlock/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm NAME",
	Short: "Removes the entry with the given name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		Logger.Infof("starting rm command for %s", name)

		passphrase, err := sessionPassphrase()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read passphrase: %v", err)
		}

		spinner, cleanup := startSpinner("Removing entry...")
		defer cleanup()

		if err := store.Delete(passphrase, name); err != nil {
			lockOnAuthFailure(err)
			if errors.Is(err, perrors.ErrEntryNotFound) {
				spinner.FinalMSG = color.RedString("✗") + " No entry named " + ui.Highlight.Sprint(name)
				return nil
			}
			spinner.FinalMSG = failMessage("Failed to remove "+ui.Highlight.Sprint(name), err)
			return nil
		}
		audit.Log(audit.Entry{VaultUUID: config.VaultUUID, Operation: "rm", EntryName: name})

		Logger.Infof("removed entry %s", name)
		spinner.FinalMSG = color.GreenString("✓") + " Removed " + ui.Highlight.Sprint(name)
		return nil
	},
}
