package utils

import (
	"bytes"
	"fmt"
	"os"

	perrors "github.com/padlock-dev/padlock/internal/errors"
	"golang.org/x/term"
)

// ReadPassphrase prompts the user for a passphrase without echoing input.
// Returns an error if stdin is not a terminal.
func ReadPassphrase(prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("cannot read passphrase: stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, prompt)
	passphrase, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr) // Add newline after hidden input

	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}

	return passphrase, nil
}

// ReadPassphraseConfirmed prompts for a passphrase twice and requires both
// entries to match. Used when establishing a new database or changing the
// passphrase, never for ordinary unlock. The first entry is zeroed when the
// confirmation differs.
func ReadPassphraseConfirmed(prompt, confirmPrompt string) ([]byte, error) {
	first, err := ReadPassphrase(prompt)
	if err != nil {
		return nil, err
	}

	second, err := ReadPassphrase(confirmPrompt)
	if err != nil {
		Zero(first)
		return nil, err
	}

	if !bytes.Equal(first, second) {
		Zero(first)
		Zero(second)
		return nil, perrors.ErrConfirmationMismatch
	}

	Zero(second)
	return first, nil
}

// Zero overwrites a byte slice in place. Best-effort scrubbing of passphrase
// material before the slice is dropped.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// IsTerminal returns true if stdin is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
