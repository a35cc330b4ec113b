package vault

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	perrors "github.com/padlock-dev/padlock/internal/errors"
)

func TestCommitBlob_FirstCommitHasNoBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")

	if err := commitBlob(path, []byte("v1")); err != nil {
		t.Fatalf("commitBlob failed: %v", err)
	}

	if _, err := os.Stat(path + BackupSuffix); !os.IsNotExist(err) {
		t.Error("first commit must not create a backup")
	}
}

func TestCommitBlob_BackupPrecedesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")

	if err := commitBlob(path, []byte("v1")); err != nil {
		t.Fatalf("commitBlob failed: %v", err)
	}
	if err := commitBlob(path, []byte("v2")); err != nil {
		t.Fatalf("commitBlob failed: %v", err)
	}

	backup, err := os.ReadFile(path + BackupSuffix)
	if err != nil {
		t.Fatalf("backup missing: %v", err)
	}
	if string(backup) != "v1" {
		t.Errorf("backup holds %q, want the prior contents %q", backup, "v1")
	}

	current, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(current) != "v2" {
		t.Errorf("database holds %q, want %q", current, "v2")
	}
}

func TestCommitBlob_SingleBackupGeneration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "store.db")

	for _, v := range []string{"v1", "v2", "v3"} {
		if err := commitBlob(path, []byte(v)); err != nil {
			t.Fatalf("commitBlob failed: %v", err)
		}
	}

	backup, err := os.ReadFile(path + BackupSuffix)
	if err != nil {
		t.Fatalf("backup missing: %v", err)
	}
	if string(backup) != "v2" {
		t.Errorf("backup holds %q, want only the previous generation %q", backup, "v2")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected only database and backup in %s, found %d files", dir, len(entries))
	}
}

func TestCommitBlob_Permissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")

	if err := commitBlob(path, []byte("v1")); err != nil {
		t.Fatalf("commitBlob failed: %v", err)
	}
	if err := commitBlob(path, []byte("v2")); err != nil {
		t.Fatalf("commitBlob failed: %v", err)
	}

	for _, p := range []string{path, path + BackupSuffix} {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("stat %s failed: %v", p, err)
		}
		if perm := info.Mode().Perm(); perm != 0600 {
			t.Errorf("%s has mode %04o, want 0600", p, perm)
		}
	}
}

func TestCommitBlob_NoTempFileSurvives(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "store.db")

	if err := commitBlob(path, []byte("v1")); err != nil {
		t.Fatalf("commitBlob failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir failed: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temporary file %s left behind", e.Name())
		}
	}
}

func TestCommitBlob_FailedBackupAbortsCommit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "store.db")

	if err := commitBlob(path, []byte("v1")); err != nil {
		t.Fatalf("commitBlob failed: %v", err)
	}

	// Occupy the backup slot with a directory so the copy must fail.
	if err := os.Mkdir(path+BackupSuffix, 0700); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	err := commitBlob(path, []byte("v2"))
	if !errors.Is(err, perrors.ErrBackupFailed) {
		t.Fatalf("expected ErrBackupFailed, got: %v", err)
	}

	// The original database is untouched and still readable.
	current, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("read failed: %v", readErr)
	}
	if string(current) != "v1" {
		t.Errorf("failed commit modified the database: %q", current)
	}
}

func TestBackupRemainsReadableWithOriginalPassphrase(t *testing.T) {
	// If a commit is interrupted after the backup lands, the prior database
	// must be recoverable from the backup with the prior passphrase.
	s := newTestStore(t)
	passphrase := []byte("correct horse")

	if err := s.Upsert(passphrase, "github", "s3cr3t"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if err := s.Upsert(passphrase, "mail", "hunter2"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	blob, err := os.ReadFile(s.BackupPath())
	if err != nil {
		t.Fatalf("backup missing: %v", err)
	}
	plaintext, err := Open(blob, passphrase)
	if err != nil {
		t.Fatalf("backup is not openable: %v", err)
	}
	c, err := Decode(plaintext)
	if err != nil {
		t.Fatalf("backup does not decode: %v", err)
	}
	if len(c) != 1 || c[0] != (Entry{"github", "s3cr3t"}) {
		t.Errorf("backup holds %v, want the pre-commit state", c)
	}
}
