package cmd

import (
	"github.com/padlock-dev/padlock/internal/audit"
	"github.com/padlock-dev/padlock/internal/ui"
	"github.com/padlock-dev/padlock/internal/utils"
	"github.com/padlock-dev/padlock/internal/vault"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	addGenerate bool
	addLength   int
)

func init() {
	addCmd.Flags().BoolVarP(&addGenerate, "generate", "g", false, "generate the secret instead of prompting for it")
	addCmd.Flags().IntVarP(&addLength, "length", "l", 0, "length of the generated secret (defaults to the config value)")
}

var addCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Stores a secret under a name, replacing any existing one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		Logger.Infof("starting add command for %s", name)

		passphrase, err := sessionPassphrase()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read passphrase: %v", err)
		}

		var secret string
		if addGenerate {
			length := addLength
			if length <= 0 {
				length = config.GenerateLength
			}
			secret, err = vault.GenerateSecret(length)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to generate secret: %v", err)
			}
			Logger.Debugf("generated a %d character secret", length)
		} else {
			typed, err := utils.ReadPassphrase("Secret for " + name + ": ")
			if err != nil {
				return Logger.ErrorfAndReturn("failed to read secret: %v", err)
			}
			secret = string(typed)
			utils.Zero(typed)
		}

		spinner, cleanup := startSpinner("Storing secret...")
		defer cleanup()

		if err := store.Upsert(passphrase, name, secret); err != nil {
			lockOnAuthFailure(err)
			spinner.FinalMSG = failMessage("Failed to store "+ui.Highlight.Sprint(name), err)
			return nil
		}
		audit.Log(audit.Entry{VaultUUID: config.VaultUUID, Operation: "add", EntryName: name})

		Logger.Infof("stored entry %s", name)
		finalMessage := color.GreenString("✓") + " Stored " + ui.Highlight.Sprint(name)
		if addGenerate {
			finalMessage += "\n" + color.CyanString("→") + " Run " + ui.Code.Sprint("padlock clip "+name) + " to copy it to the clipboard"
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}
