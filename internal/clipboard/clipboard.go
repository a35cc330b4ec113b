// Package clipboard copies secrets to the system clipboard, degrading with a
// typed error when no clipboard utility is available on the host.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
	perrors "github.com/padlock-dev/padlock/internal/errors"
)

// Available reports whether a system clipboard can be reached.
func Available() bool {
	return !clipboard.Unsupported
}

// Copy places text on the system clipboard. ErrNoClipboard when the host has
// no clipboard utility; the caller decides how to degrade.
func Copy(text string) error {
	if clipboard.Unsupported {
		return perrors.ErrNoClipboard
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write to clipboard: %w", err)
	}
	return nil
}
