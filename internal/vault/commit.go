package vault

import (
	"fmt"
	"os"
	"path/filepath"

	perrors "github.com/padlock-dev/padlock/internal/errors"
)

// BackupSuffix is appended to the database path to form the backup location.
// At most one backup generation is retained.
const BackupSuffix = ".bak"

// fileMode is the only permission set the store will create or tolerate.
const fileMode = os.FileMode(0600)

// commitBlob writes a new encrypted blob to path using the
// backup-then-atomic-replace sequence:
//
//  1. If a database already exists, copy it byte-for-byte to the backup
//     location, overwriting any prior backup. The whole commit fails if the
//     copy does.
//  2. Write the blob to a temporary file in the same directory, so the final
//     rename stays on one volume and is atomic.
//  3. fsync, then rename the temporary file over the final path.
//
// The temporary file is removed on every exit path. A crash at any point
// leaves either the old database in place or the new one fully written,
// never a partial file.
func commitBlob(path string, blob []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	if prior, err := os.ReadFile(path); err == nil {
		if err := os.WriteFile(path+BackupSuffix, prior, fileMode); err != nil {
			return fmt.Errorf("%w: %w", perrors.ErrBackupFailed, err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%w: %w", perrors.ErrBackupFailed, err)
	}

	tmp, err := os.CreateTemp(dir, ".store-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary database: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op once the rename has succeeded

	if err := commitTemp(tmp, blob); err != nil {
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move new database into place: %w", err)
	}
	return nil
}

// commitTemp fills and closes the temporary file, leaving it ready to rename.
func commitTemp(tmp *os.File, blob []byte) error {
	defer tmp.Close()

	if err := tmp.Chmod(fileMode); err != nil {
		return fmt.Errorf("failed to restrict temporary database permissions: %w", err)
	}
	if _, err := tmp.Write(blob); err != nil {
		return fmt.Errorf("failed to write new database: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to flush new database: %w", err)
	}
	return nil
}
