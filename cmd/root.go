package cmd

import (
	"github.com/padlock-dev/padlock/internal/audit"
	"github.com/padlock-dev/padlock/internal/configs"
	logger "github.com/padlock-dev/padlock/internal/logging"
	"github.com/padlock-dev/padlock/internal/vault"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	config  *configs.Config
	store   *vault.Store
	session = vault.NewSession()

	RootCmd = &cobra.Command{
		Use:   "padlock",
		Short: "Padlock - a single-user encrypted credential store.",
		Long: `Padlock keeps named credentials in one file, sealed under a master
passphrase. The file is encrypted as a whole and every update is committed
atomically: a backup of the previous database is taken first, the new
database is written to a temporary file, and only then moved into place.

Run 'padlock init' to create a database, then 'padlock add NAME' to store
your first secret. Run 'padlock shell' for an interactive session that asks
for the passphrase once.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("initializing with verbose=%t, debug=%t", verbose, debug)

			cfg, err := configs.LoadConfig()
			if err != nil {
				return Logger.ErrorfAndReturn("failed to load config: %v", err)
			}
			config = cfg
			store = vault.NewStore(cfg.DatabasePath, cfg.Cipher)
			Logger.Debugf("database path: %s, cipher: %s", cfg.DatabasePath, cfg.Cipher)

			// Fail closed before any decryption: a database, backup, or
			// history file readable by others aborts the whole session.
			if err := vault.CheckArtifacts(cfg.DatabasePath, audit.Path()); err != nil {
				return Logger.ErrorfAndReturn("refusing to operate: %v", err)
			}
			return nil
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(addCmd)
	RootCmd.AddCommand(showCmd)
	RootCmd.AddCommand(findCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(rmCmd)
	RootCmd.AddCommand(editCmd)
	RootCmd.AddCommand(rekeyCmd)
	RootCmd.AddCommand(generateCmd)
	RootCmd.AddCommand(clipCmd)
	RootCmd.AddCommand(shellCmd)
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}
