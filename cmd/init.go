package cmd

import (
	"github.com/padlock-dev/padlock/internal/audit"
	"github.com/padlock-dev/padlock/internal/configs"
	"github.com/padlock-dev/padlock/internal/ui"
	"github.com/padlock-dev/padlock/internal/utils"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Creates a new encrypted credential database",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("starting init command")

		if store.Exists() {
			Logger.Errorf("database already exists at %s", store.Path())
			cmd.Println(color.RedString("✗") + " A database already exists at " + ui.Path.Sprint(store.Path()))
			cmd.Println(color.CyanString("→") + " Run " + ui.Code.Sprint("padlock rekey") + " to change its passphrase")
			return nil
		}

		// A brand-new database is the one place the passphrase is confirmed.
		passphrase, err := utils.ReadPassphraseConfirmed("Choose passphrase: ", "Confirm passphrase: ")
		if err != nil {
			return Logger.ErrorfAndReturn("failed to establish passphrase: %v", err)
		}
		defer utils.Zero(passphrase)

		spinner, cleanup := startSpinner("Creating database...")
		defer cleanup()

		if err := store.Init(passphrase); err != nil {
			spinner.FinalMSG = failMessage("Failed to create the database", err)
			return nil
		}
		session.Unlock(passphrase)

		if err := configs.EnsureVaultUUID(config); err != nil {
			Logger.WarnfAlways("database created, but could not record its UUID: %v", err)
		}
		audit.Log(audit.Entry{VaultUUID: config.VaultUUID, Operation: "init", Cipher: config.Cipher})

		Logger.Infof("database created at %s", store.Path())
		spinner.FinalMSG = color.GreenString("✓") + " Database created at " + ui.Path.Sprint(store.Path()) + "\n" +
			color.CyanString("→") + " Run " + ui.Code.Sprint("padlock add NAME") + " to store your first secret"
		return nil
	},
}
