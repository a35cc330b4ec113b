package cmd

import (
	"github.com/padlock-dev/padlock/internal/audit"
	"github.com/padlock-dev/padlock/internal/editor"
	"github.com/padlock-dev/padlock/internal/ui"
	"github.com/padlock-dev/padlock/internal/vault"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edits the decrypted database as raw text in your editor",
	Long: `Decrypts the database to a private temporary file, opens your editor on
it, and commits whatever the editor leaves behind. This path deliberately
bypasses entry validation: the text is stored as-is, though a warning is
printed when it no longer parses as name:secret lines.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("starting edit command")

		editorCmd, err := editor.Resolve(config.Editor)
		if err != nil {
			return Logger.ErrorfAndReturn("cannot edit: %v", err)
		}
		Logger.Debugf("using editor: %s", editorCmd)

		passphrase, err := sessionPassphrase()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read passphrase: %v", err)
		}

		plaintext, err := store.LoadRaw(passphrase)
		if err != nil {
			lockOnAuthFailure(err)
			return Logger.ErrorfAndReturn("failed to open database: %v", err)
		}

		edited, err := editor.Edit(editorCmd, plaintext)
		if err != nil {
			return Logger.ErrorfAndReturn("edit aborted: %v", err)
		}

		spinner, cleanup := startSpinner("Committing edited database...")
		defer cleanup()

		if err := store.ReplaceWhole(passphrase, edited); err != nil {
			lockOnAuthFailure(err)
			spinner.FinalMSG = failMessage("Failed to commit the edited database", err)
			return nil
		}
		audit.Log(audit.Entry{VaultUUID: config.VaultUUID, Operation: "edit"})

		finalMessage := color.GreenString("✓") + " Database updated"
		if _, err := vault.Decode(edited); err != nil {
			Logger.WarnfAlways("edited text no longer parses as entries: %v", err)
			finalMessage += "\n" + color.YellowString("!") + " The edited text does not parse as " +
				ui.Code.Sprint("name:secret") + " lines; lookups will fail until it does"
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}
