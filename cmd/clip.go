package cmd

import (
	"errors"

	"github.com/padlock-dev/padlock/internal/audit"
	"github.com/padlock-dev/padlock/internal/clipboard"
	perrors "github.com/padlock-dev/padlock/internal/errors"
	"github.com/padlock-dev/padlock/internal/ui"
	"github.com/padlock-dev/padlock/internal/vault"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var clipCmd = &cobra.Command{
	Use:   "clip NAME",
	Short: "Copies a secret to the system clipboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		Logger.Infof("starting clip command for %s", name)

		if !clipboard.Available() {
			cmd.Println(color.RedString("✗") + " No clipboard utility available on this system")
			cmd.Println(color.CyanString("→") + " Run " + ui.Code.Sprint("padlock show "+name) + " to print the secret instead")
			return nil
		}

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

		if err := clipboard.Copy(entries[0].Secret); err != nil {
			if errors.Is(err, perrors.ErrNoClipboard) {
				cmd.Println(color.RedString("✗") + " No clipboard utility available on this system")
				return nil
			}
			return Logger.ErrorfAndReturn("failed to copy to clipboard: %v", err)
		}
		audit.Log(audit.Entry{VaultUUID: config.VaultUUID, Operation: "clip", EntryName: name})

		cmd.Println(color.GreenString("✓") + " Copied " + ui.Highlight.Sprint(name) + " to the clipboard")
		return nil
	},
}
