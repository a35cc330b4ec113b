// Package errors provides typed error values for the padlock application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Authentication errors: the passphrase could not open the database
//     (ErrBadPassphrase, ErrConfirmationMismatch)
//   - Format errors: decrypted plaintext does not parse (ErrMalformedEntry)
//   - Store state errors: entry/database lifecycle (ErrEntryNotFound)
//   - Filesystem errors: permission and integrity failures
//     (ErrInsecurePermissions, ErrBackupFailed)
//   - Collaborator errors: missing external helpers (ErrNoClipboard, ErrNoEditor)
//
// # Usage
//
// Return errors from internal packages:
//
//	if !strings.Contains(line, ":") {
//	    return nil, errors.ErrMalformedEntry
//	}
//
// Handle errors in the CLI layer:
//
//	entries, err := store.Load(session.Passphrase())
//	if errors.Is(err, perrors.ErrBadPassphrase) {
//	    session.Lock()
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("reading database at %s: %w", path, err)
//
// ErrBadPassphrase covers both a wrong passphrase and corrupt or tampered
// ciphertext. An authenticated cipher cannot tell those apart, so callers are
// never offered a distinction.
package errors
