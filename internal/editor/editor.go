// Package editor runs the operator's text editor on a temporary plaintext
// file and returns whatever the editor left behind. The temporary file lives
// in a private 0700 directory and is removed on every exit path.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	perrors "github.com/padlock-dev/padlock/internal/errors"
)

// Resolve picks the editor command: the config override first, then $VISUAL,
// then $EDITOR. ErrNoEditor when none is set.
func Resolve(configured string) (string, error) {
	for _, candidate := range []string{configured, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if strings.TrimSpace(candidate) != "" {
			return candidate, nil
		}
	}
	return "", perrors.ErrNoEditor
}

// Edit writes plaintext to a temporary file, invokes the editor on it
// synchronously, and returns the file's contents afterwards. No assumption
// is made about whether the editor changed anything.
func Edit(editorCmd string, plaintext []byte) ([]byte, error) {
	dir, err := os.MkdirTemp("", "padlock-edit-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create editing directory: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "store.txt")
	if err := os.WriteFile(path, plaintext, 0600); err != nil {
		return nil, fmt.Errorf("failed to write editing file: %w", err)
	}

	// The editor command may carry arguments ("code --wait").
	parts := strings.Fields(editorCmd)
	if len(parts) == 0 {
		return nil, perrors.ErrNoEditor
	}
	// #nosec G204 -- the editor command is operator-chosen configuration.
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("editor %q failed: %w", parts[0], err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read edited file: %w", err)
	}
	return edited, nil
}
