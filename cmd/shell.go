package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/padlock-dev/padlock/internal/audit"
	"github.com/padlock-dev/padlock/internal/clipboard"
	"github.com/padlock-dev/padlock/internal/ui"
	"github.com/padlock-dev/padlock/internal/utils"
	"github.com/padlock-dev/padlock/internal/vault"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const shellHelp = `Commands:
  add NAME        store a secret under NAME (prompts for the secret)
  show NAME       print the secret stored under NAME
  find TEXT       list entries whose name contains TEXT
  list            list all entry names
  rm NAME         remove the entry named NAME
  clip NAME       copy a secret to the clipboard
  generate [N]    print a generated secret of length N
  lock            forget the cached passphrase
  help            show this help
  exit            leave the shell`

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Starts an interactive session that asks for the passphrase once",
	RunE: func(cmd *cobra.Command, args []string) error {
		rl, err := readline.New(ui.Info.Sprint("padlock> "))
		if err != nil {
			return Logger.ErrorfAndReturn("failed to start interactive shell: %v", err)
		}
		defer rl.Close()
		defer session.Lock()

		cmd.Println("Interactive session. Type " + ui.Code.Sprint("help") + " for commands, " +
			ui.Code.Sprint("exit") + " to leave.")

		for {
			line, err := rl.Readline()
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return Logger.ErrorfAndReturn("failed to read command: %v", err)
			}

			fields := strings.Fields(line)
			if len(fields) == 0 {
				continue
			}

			if fields[0] == "exit" || fields[0] == "quit" {
				return nil
			}
			runShellCommand(cmd, fields[0], fields[1:])
		}
	},
}

// runShellCommand dispatches one interactive command. Errors are printed, not
// returned: a failed operation ends that operation only, never the shell.
func runShellCommand(cmd *cobra.Command, name string, args []string) {
	var err error
	switch name {
	case "help":
		cmd.Println(shellHelp)
	case "lock":
		session.Lock()
		cmd.Println(ui.Muted.Sprint("session locked"))
	case "list":
		err = shellList(cmd)
	case "add":
		err = withEntryName(cmd, args, shellAdd)
	case "show":
		err = withEntryName(cmd, args, shellShow)
	case "find":
		err = withEntryName(cmd, args, shellFind)
	case "rm":
		err = withEntryName(cmd, args, shellRemove)
	case "clip":
		err = withEntryName(cmd, args, shellClip)
	case "generate":
		err = shellGenerate(cmd, args)
	default:
		cmd.Println(color.RedString("✗") + " Unknown command " + ui.Highlight.Sprint(name) +
			" - type " + ui.Code.Sprint("help") + " for the command list")
	}

	if err != nil {
		lockOnAuthFailure(err)
		cmd.Println(color.RedString("Error: ") + err.Error())
	}
}

// withEntryName enforces the single NAME argument shared by most commands.
func withEntryName(cmd *cobra.Command, args []string, fn func(*cobra.Command, string) error) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one argument")
	}
	return fn(cmd, args[0])
}

func shellList(cmd *cobra.Command) error {
	passphrase, err := sessionPassphrase()
	if err != nil {
		return err
	}
	collection, err := store.Load(passphrase)
	if err != nil {
		return err
	}
	if len(collection) == 0 {
		cmd.Println(ui.Muted.Sprint("the database is empty"))
		return nil
	}
	for _, e := range collection {
		cmd.Println(e.Name)
	}
	return nil
}

func shellAdd(cmd *cobra.Command, name string) error {
	passphrase, err := sessionPassphrase()
	if err != nil {
		return err
	}
	typed, err := utils.ReadPassphrase("Secret for " + name + ": ")
	if err != nil {
		return err
	}
	secret := string(typed)
	utils.Zero(typed)

	if err := store.Upsert(passphrase, name, secret); err != nil {
		return err
	}
	audit.Log(audit.Entry{VaultUUID: config.VaultUUID, Operation: "add", EntryName: name})
	cmd.Println(color.GreenString("✓") + " Stored " + ui.Highlight.Sprint(name))
	return nil
}

func shellShow(cmd *cobra.Command, name string) error {
	passphrase, err := sessionPassphrase()
	if err != nil {
		return err
	}
	entries, err := store.Lookup(passphrase, vault.ExactName(name))
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		cmd.Println(color.RedString("✗") + " No entry named " + ui.Highlight.Sprint(name))
		return nil
	}
	cmd.Println(entries[0].Secret)
	return nil
}

func shellFind(cmd *cobra.Command, text string) error {
	passphrase, err := sessionPassphrase()
	if err != nil {
		return err
	}
	entries, err := store.Lookup(passphrase, vault.Contains(text))
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		cmd.Println(color.RedString("✗") + " No entry name contains " + ui.Highlight.Sprint(text))
		return nil
	}
	for _, e := range entries {
		cmd.Println(e.Name)
	}
	return nil
}

func shellRemove(cmd *cobra.Command, name string) error {
	passphrase, err := sessionPassphrase()
	if err != nil {
		return err
	}
	if err := store.Delete(passphrase, name); err != nil {
		return err
	}
	audit.Log(audit.Entry{VaultUUID: config.VaultUUID, Operation: "rm", EntryName: name})
	cmd.Println(color.GreenString("✓") + " Removed " + ui.Highlight.Sprint(name))
	return nil
}

func shellClip(cmd *cobra.Command, name string) error {
	passphrase, err := sessionPassphrase()
	if err != nil {
		return err
	}
	entries, err := store.Lookup(passphrase, vault.ExactName(name))
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		cmd.Println(color.RedString("✗") + " No entry named " + ui.Highlight.Sprint(name))
		return nil
	}
	if err := clipboard.Copy(entries[0].Secret); err != nil {
		return err
	}
	cmd.Println(color.GreenString("✓") + " Copied " + ui.Highlight.Sprint(name) + " to the clipboard")
	return nil
}

func shellGenerate(cmd *cobra.Command, args []string) error {
	length := config.GenerateLength
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid length %q", args[0])
		}
		length = n
	}
	secret, err := vault.GenerateSecret(length)
	if err != nil {
		return err
	}
	cmd.Println(secret)
	return nil
}
