package errors

import "errors"

// Authentication errors indicate the passphrase could not open the database.
var (
	// ErrBadPassphrase indicates the passphrase is wrong or the ciphertext is
	// corrupt or tampered with. The two cases are deliberately indistinguishable.
	ErrBadPassphrase = errors.New("cannot open database: wrong passphrase or corrupt data")

	// ErrConfirmationMismatch indicates the typed passphrase confirmation differed.
	ErrConfirmationMismatch = errors.New("passphrases do not match")

	// ErrSessionLocked indicates an operation needed the cached passphrase
	// while the session was locked.
	ErrSessionLocked = errors.New("session is locked")
)

// Format errors indicate the decrypted plaintext does not parse as entries.
var (
	// ErrMalformedEntry indicates a plaintext line is missing the name delimiter.
	ErrMalformedEntry = errors.New("malformed entry: missing ':' delimiter")

	// ErrInvalidName indicates an entry name contains ':' or a newline.
	ErrInvalidName = errors.New("entry name must not contain ':' or newlines")

	// ErrInvalidSecret indicates an entry secret contains a newline.
	ErrInvalidSecret = errors.New("entry secret must not contain newlines")
)

// Store state errors indicate issues with the database or its entries.
var (
	// ErrEntryNotFound indicates no entry matched the given name.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrDatabaseNotFound indicates no database file exists yet.
	ErrDatabaseNotFound = errors.New("database has not been created")

	// ErrDatabaseExists indicates a database already exists at the path.
	ErrDatabaseExists = errors.New("database already exists")
)

// Filesystem errors indicate permission or integrity problems with on-disk files.
var (
	// ErrInsecurePermissions indicates a database, backup, or history file is
	// readable by group or world. The store refuses to operate on such files.
	ErrInsecurePermissions = errors.New("file permissions are too permissive, want 0600")

	// ErrBackupFailed indicates the pre-commit backup copy could not be written.
	ErrBackupFailed = errors.New("failed to back up existing database")
)

// Collaborator errors indicate an external helper is missing or failed.
var (
	// ErrNoClipboard indicates no system clipboard utility is available.
	ErrNoClipboard = errors.New("no clipboard utility available")

	// ErrNoEditor indicates no editor command is configured or discoverable.
	ErrNoEditor = errors.New("no editor configured (set $EDITOR or the editor config key)")
)
