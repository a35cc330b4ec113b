package vault

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	perrors "github.com/padlock-dev/padlock/internal/errors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "store.db"), DefaultCipher)
}

func TestLoad_MissingDatabaseIsEmptyCollection(t *testing.T) {
	s := newTestStore(t)

	c, err := s.Load([]byte("anything"))
	if err != nil {
		t.Fatalf("Load on missing database failed: %v", err)
	}
	if len(c) != 0 {
		t.Errorf("expected empty collection, got %v", c)
	}
	if s.Exists() {
		t.Error("Load must not create the database file")
	}
}

func TestInit_CreatesEmptyDatabase(t *testing.T) {
	s := newTestStore(t)
	passphrase := []byte("correct horse")

	if err := s.Init(passphrase); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if !s.Exists() {
		t.Fatal("expected database file after Init")
	}

	info, err := os.Stat(s.Path())
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("database has mode %04o, want 0600", perm)
	}

	if err := s.Init(passphrase); !errors.Is(err, perrors.ErrDatabaseExists) {
		t.Errorf("expected ErrDatabaseExists on second Init, got: %v", err)
	}
}

func TestUpsert_Supersedes(t *testing.T) {
	s := newTestStore(t)
	passphrase := []byte("correct horse")

	if err := s.Upsert(passphrase, "github", "first"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if err := s.Upsert(passphrase, "github", "second"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	c, err := s.Load(passphrase)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(c) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(c))
	}
	if c[0].Name != "github" || c[0].Secret != "second" {
		t.Errorf("expected (github, second), got (%s, %s)", c[0].Name, c[0].Secret)
	}
}

func TestUpsert_PreservesInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	passphrase := []byte("k")

	for _, e := range []Entry{{"a", "1"}, {"b", "2"}, {"c", "3"}} {
		if err := s.Upsert(passphrase, e.Name, e.Secret); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
	}
	// Replacing b moves it to the end; a and c keep their relative order.
	if err := s.Upsert(passphrase, "b", "22"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	c, err := s.Load(passphrase)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	wantNames := []string{"a", "c", "b"}
	if len(c) != len(wantNames) {
		t.Fatalf("expected %d entries, got %d", len(wantNames), len(c))
	}
	for i, want := range wantNames {
		if c[i].Name != want {
			t.Errorf("position %d: got %s, want %s", i, c[i].Name, want)
		}
	}
}

func TestUpsert_RejectsInvalidNames(t *testing.T) {
	s := newTestStore(t)

	if err := s.Upsert([]byte("k"), "bad:name", "x"); !errors.Is(err, perrors.ErrInvalidName) {
		t.Errorf("expected ErrInvalidName, got: %v", err)
	}
	if s.Exists() {
		t.Error("a rejected upsert must not create the database")
	}
}

func TestLookup_Matchers(t *testing.T) {
	s := newTestStore(t)
	passphrase := []byte("k")

	for _, e := range []Entry{{"github", "1"}, {"github-work", "2"}, {"mail", "3"}} {
		if err := s.Upsert(passphrase, e.Name, e.Secret); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
	}

	exact, err := s.Lookup(passphrase, ExactName("github"))
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if len(exact) != 1 || exact[0].Name != "github" {
		t.Errorf("ExactName matched %v, want just github", exact)
	}

	contains, err := s.Lookup(passphrase, Contains("github"))
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if len(contains) != 2 {
		t.Errorf("Contains matched %d entries, want 2", len(contains))
	}

	none, err := s.Lookup(passphrase, Contains("GITHUB"))
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("matching must be case-sensitive, matched %v", none)
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	passphrase := []byte("k")

	if err := s.Upsert(passphrase, "a", "1"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if err := s.Delete(passphrase, "a"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	c, err := s.Load(passphrase)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(c) != 0 {
		t.Errorf("expected empty collection after delete, got %v", c)
	}

	if err := s.Delete(passphrase, "a"); !errors.Is(err, perrors.ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got: %v", err)
	}
}

func TestScenario_CreateLockUnlockLookup(t *testing.T) {
	s := newTestStore(t)
	session := NewSession()

	// Create the database and store an entry within one unlocked session.
	session.Unlock([]byte("correct horse"))
	pass, err := session.Passphrase()
	if err != nil {
		t.Fatalf("Passphrase failed: %v", err)
	}
	if err := s.Init(pass); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := s.Upsert(pass, "github", "s3cr3t"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	// Lock, then unlock with the same passphrase.
	session.Lock()
	if _, err := session.Passphrase(); !errors.Is(err, perrors.ErrSessionLocked) {
		t.Fatalf("expected ErrSessionLocked, got: %v", err)
	}
	session.Unlock([]byte("correct horse"))
	pass, err = session.Passphrase()
	if err != nil {
		t.Fatalf("Passphrase failed: %v", err)
	}

	entries, err := s.Lookup(pass, ExactName("github"))
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "github" || entries[0].Secret != "s3cr3t" {
		t.Errorf("expected exactly [(github, s3cr3t)], got %v", entries)
	}
}

func TestScenario_Rekey(t *testing.T) {
	s := newTestStore(t)
	oldPass := []byte("correct horse")
	newPass := []byte("new pass")

	if err := s.Upsert(oldPass, "a", "1"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if err := s.Upsert(oldPass, "b", "2"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	if err := s.Rekey(oldPass, newPass); err != nil {
		t.Fatalf("Rekey failed: %v", err)
	}

	if _, err := s.Load(oldPass); !errors.Is(err, perrors.ErrBadPassphrase) {
		t.Errorf("expected the old passphrase to fail after rekey, got: %v", err)
	}

	c, err := s.Load(newPass)
	if err != nil {
		t.Fatalf("Load with new passphrase failed: %v", err)
	}
	if len(c) != 2 || c[0] != (Entry{"a", "1"}) || c[1] != (Entry{"b", "2"}) {
		t.Errorf("entries changed across rekey: %v", c)
	}
}

func TestRekey_WrongPassphraseDoesNotCommit(t *testing.T) {
	s := newTestStore(t)
	passphrase := []byte("correct horse")

	if err := s.Upsert(passphrase, "a", "1"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	before, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	if err := s.Rekey([]byte("wrong"), []byte("irrelevant")); !errors.Is(err, perrors.ErrBadPassphrase) {
		t.Fatalf("expected ErrBadPassphrase, got: %v", err)
	}

	after, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(before) != string(after) {
		t.Error("a failed rekey modified the on-disk database")
	}
}

func TestRekey_MissingDatabase(t *testing.T) {
	s := newTestStore(t)
	if err := s.Rekey([]byte("a"), []byte("b")); !errors.Is(err, perrors.ErrDatabaseNotFound) {
		t.Errorf("expected ErrDatabaseNotFound, got: %v", err)
	}
}

func TestReplaceWhole_BypassesCodec(t *testing.T) {
	s := newTestStore(t)
	passphrase := []byte("k")

	if err := s.Upsert(passphrase, "a", "1"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	// Free-form text that does not decode as entries is still committable.
	raw := []byte("scratch notes, no delimiter here\n")
	if err := s.ReplaceWhole(passphrase, raw); err != nil {
		t.Fatalf("ReplaceWhole failed: %v", err)
	}

	got, err := s.LoadRaw(passphrase)
	if err != nil {
		t.Fatalf("LoadRaw failed: %v", err)
	}
	if string(got) != string(raw) {
		t.Errorf("LoadRaw returned %q, want %q", got, raw)
	}

	if _, err := s.Load(passphrase); !errors.Is(err, perrors.ErrMalformedEntry) {
		t.Errorf("expected ErrMalformedEntry from Load, got: %v", err)
	}
}

func TestReplaceWhole_VerifiesPassphrase(t *testing.T) {
	s := newTestStore(t)
	passphrase := []byte("k")

	if err := s.Upsert(passphrase, "a", "1"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	err := s.ReplaceWhole([]byte("wrong"), []byte("overwritten\n"))
	if !errors.Is(err, perrors.ErrBadPassphrase) {
		t.Fatalf("expected ErrBadPassphrase, got: %v", err)
	}

	c, err := s.Load(passphrase)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(c) != 1 || c[0] != (Entry{"a", "1"}) {
		t.Errorf("a rejected ReplaceWhole modified the database: %v", c)
	}
}

func TestLoad_FailsClosedOnLoosePermissions(t *testing.T) {
	s := newTestStore(t)
	passphrase := []byte("k")

	if err := s.Upsert(passphrase, "a", "1"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if err := os.Chmod(s.Path(), 0644); err != nil {
		t.Fatalf("chmod failed: %v", err)
	}

	// The permission check runs before any decryption attempt, so the right
	// passphrase must still be refused.
	if _, err := s.Load(passphrase); !errors.Is(err, perrors.ErrInsecurePermissions) {
		t.Errorf("expected ErrInsecurePermissions, got: %v", err)
	}
	if err := s.Upsert(passphrase, "b", "2"); !errors.Is(err, perrors.ErrInsecurePermissions) {
		t.Errorf("expected ErrInsecurePermissions from Upsert, got: %v", err)
	}
}

func TestStore_LegacyCipherConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")
	passphrase := []byte("k")

	legacy := NewStore(path, CipherSecretbox)
	if err := legacy.Upsert(passphrase, "a", "1"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	// A store configured with the default cipher still opens a legacy blob.
	modern := NewStore(path, DefaultCipher)
	c, err := modern.Load(passphrase)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(c) != 1 || c[0] != (Entry{"a", "1"}) {
		t.Errorf("unexpected collection: %v", c)
	}
}
