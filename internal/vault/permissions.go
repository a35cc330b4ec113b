package vault

import (
	"fmt"
	"os"

	perrors "github.com/padlock-dev/padlock/internal/errors"
)

// CheckPermissions verifies that the file at path, if it exists, is
// accessible only to the owning user. Any group or world bits fail closed
// with ErrInsecurePermissions; a missing file passes. The check runs before
// any decryption attempt.
func CheckPermissions(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if perm := info.Mode().Perm(); perm&0077 != 0 {
		return fmt.Errorf("%s has mode %04o: %w", path, perm, perrors.ErrInsecurePermissions)
	}
	return nil
}

// CheckArtifacts verifies the database, its backup, and any history artifacts
// are owner-only. Run once at startup; a failure is fatal for the session.
func CheckArtifacts(dbPath string, extra ...string) error {
	paths := append([]string{dbPath, dbPath + BackupSuffix}, extra...)
	for _, p := range paths {
		if err := CheckPermissions(p); err != nil {
			return err
		}
	}
	return nil
}
