package cmd

import (
	"github.com/padlock-dev/padlock/internal/audit"
	"github.com/padlock-dev/padlock/internal/utils"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rekeyCmd = &cobra.Command{
	Use:   "rekey",
	Short: "Re-encrypts the database under a new passphrase",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("starting rekey command")

		oldPassphrase, err := utils.ReadPassphrase("Current passphrase: ")
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read passphrase: %v", err)
		}
		defer utils.Zero(oldPassphrase)

		newPassphrase, err := utils.ReadPassphraseConfirmed("New passphrase: ", "Confirm new passphrase: ")
		if err != nil {
			return Logger.ErrorfAndReturn("failed to establish new passphrase: %v", err)
		}
		defer utils.Zero(newPassphrase)

		spinner, cleanup := startSpinner("Re-encrypting database...")
		defer cleanup()

		if err := store.Rekey(oldPassphrase, newPassphrase); err != nil {
			session.Lock()
			spinner.FinalMSG = failMessage("Failed to re-encrypt the database", err)
			return nil
		}
		session.Unlock(newPassphrase)
		audit.Log(audit.Entry{VaultUUID: config.VaultUUID, Operation: "rekey", Cipher: config.Cipher})

		Logger.Infof("database re-encrypted")
		spinner.FinalMSG = color.GreenString("✓") + " Database re-encrypted under the new passphrase"
		return nil
	},
}
