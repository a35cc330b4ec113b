package configs

import (
	"os"
	"path/filepath"
	"testing"
)

// withTestSettings points the settings singleton at a temp directory for the
// duration of one test.
func withTestSettings(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prior := UserPadlockSettings
	UserPadlockSettings = &UserSettings{
		UserConfigsPath: filepath.Join(dir, "config"),
		UserDataPath:    filepath.Join(dir, "data"),
	}
	t.Cleanup(func() { UserPadlockSettings = prior })
	return dir
}

func TestLoadConfig_DefaultsWhenMissing(t *testing.T) {
	dir := withTestSettings(t)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	wantDB := filepath.Join(dir, "data", "store.db")
	if config.DatabasePath != wantDB {
		t.Errorf("DatabasePath = %s, want %s", config.DatabasePath, wantDB)
	}
	if config.Cipher != "chacha20poly1305" {
		t.Errorf("Cipher = %s, want chacha20poly1305", config.Cipher)
	}
	if config.GenerateLength != DefaultGenerateLength {
		t.Errorf("GenerateLength = %d, want %d", config.GenerateLength, DefaultGenerateLength)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	withTestSettings(t)

	saved := &Config{
		DatabasePath:   "/tmp/elsewhere/store.db",
		Cipher:         "secretbox",
		GenerateLength: 40,
		Editor:         "vi",
	}
	if err := SaveConfig(saved); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if *loaded != *saved {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded, saved)
	}
}

func TestSaveConfig_RestrictsPermissions(t *testing.T) {
	withTestSettings(t)

	if err := SaveConfig(&Config{DatabasePath: "x"}); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	info, err := os.Stat(configPath())
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("config has mode %04o, want 0600", perm)
	}
}

func TestEnsureVaultUUID(t *testing.T) {
	withTestSettings(t)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if err := EnsureVaultUUID(config); err != nil {
		t.Fatalf("EnsureVaultUUID failed: %v", err)
	}
	if config.VaultUUID == "" {
		t.Fatal("expected a UUID to be assigned")
	}

	first := config.VaultUUID
	if err := EnsureVaultUUID(config); err != nil {
		t.Fatalf("EnsureVaultUUID failed: %v", err)
	}
	if config.VaultUUID != first {
		t.Error("EnsureVaultUUID must not replace an existing UUID")
	}

	reloaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if reloaded.VaultUUID != first {
		t.Errorf("UUID was not persisted: got %s, want %s", reloaded.VaultUUID, first)
	}
}
