package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DefaultGenerateLength is the length of generated secrets when the config
// does not override it.
const DefaultGenerateLength = 24

// Config is the user-editable configuration consumed by the credential store.
// Every field has a working default so a missing config file is valid.
type Config struct {
	// DatabasePath is the location of the encrypted database file.
	DatabasePath string `toml:"database_path"`

	// Cipher selects the envelope cipher used when sealing: one of
	// "chacha20poly1305" (default), "aes256gcm", or "secretbox" (legacy).
	// Opening is self-describing and ignores this setting.
	Cipher string `toml:"cipher"`

	// GenerateLength is the default length of generated secrets.
	GenerateLength int `toml:"generate_length"`

	// Editor overrides $EDITOR for the raw edit command.
	Editor string `toml:"editor,omitempty"`

	// VaultUUID identifies this database in history entries. Assigned on init.
	VaultUUID string `toml:"vault_uuid,omitempty"`
}

func configPath() string {
	return filepath.Join(UserPadlockSettings.UserConfigsPath, "config.toml")
}

// LoadConfig loads the user configuration, returning defaults if no config
// file exists yet.
func LoadConfig() (*Config, error) {
	config := &Config{
		DatabasePath:   filepath.Join(UserPadlockSettings.UserDataPath, "store.db"),
		Cipher:         "chacha20poly1305",
		GenerateLength: DefaultGenerateLength,
	}

	if _, err := os.Stat(configPath()); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath(), config); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if config.GenerateLength <= 0 {
		config.GenerateLength = DefaultGenerateLength
	}

	return config, nil
}

// SaveConfig saves the user configuration to the config file.
func SaveConfig(config *Config) error {
	if err := SaveTOML(configPath(), config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}

// EnsureVaultUUID assigns and persists a vault UUID if the config does not
// carry one yet. Called when a new database is initialized.
func EnsureVaultUUID(config *Config) error {
	if config.VaultUUID != "" {
		return nil
	}

	config.VaultUUID = uuid.New().String()
	if err := SaveConfig(config); err != nil {
		return fmt.Errorf("failed to persist vault UUID: %w", err)
	}

	return nil
}
