// Package configs manages padlock's user configuration.
//
// Configuration lives in a single TOML file under the user's config
// directory (config.toml in os.UserConfigDir()/padlock). All keys have
// defaults, so a missing file is a valid zero configuration:
//
//	database_path   = "~/.local/share/padlock/store.db"
//	cipher          = "chacha20poly1305"
//	generate_length = 24
//	editor          = ""        (falls back to $EDITOR)
//	vault_uuid      = ""        (assigned on first init)
//
// The config is read-only input to the core: the credential store never
// writes it, and only `padlock init` mutates it (to record the vault UUID).
package configs
