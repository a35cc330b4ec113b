package configs

import (
	"log"
	"os"
	"path/filepath"
)

type UserSettings struct {
	UserConfigsPath string
	UserDataPath    string
}

var UserPadlockSettings *UserSettings

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	// Independent of any database: safe to resolve once at startup.
	UserPadlockSettings = &UserSettings{
		UserConfigsPath: filepath.Join(configDir, "padlock"),
		UserDataPath:    filepath.Join(dataDir, "padlock"),
	}
}
