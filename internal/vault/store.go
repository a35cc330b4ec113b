package vault

import (
	"fmt"
	"os"

	perrors "github.com/padlock-dev/padlock/internal/errors"
)

// Store owns the on-disk encrypted database. All reads go through the cipher
// envelope and entry codec; all writes go through the mutation protocol, so
// the file on disk is always either a fully-formed encrypted database or
// absent. The store assumes single-writer usage and takes no file locks.
type Store struct {
	path   string
	cipher string
}

// NewStore returns a store for the database at path, sealing new blobs with
// the named cipher. An empty cipher name selects the default.
func NewStore(path, cipher string) *Store {
	if cipher == "" {
		cipher = DefaultCipher
	}
	return &Store{path: path, cipher: cipher}
}

// Path returns the database location.
func (s *Store) Path() string {
	return s.path
}

// BackupPath returns the single backup slot location.
func (s *Store) BackupPath() string {
	return s.path + BackupSuffix
}

// Exists reports whether a database file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// loadPlaintext reads and decrypts the database. A missing file yields empty
// plaintext. The permission check runs before any decryption attempt.
func (s *Store) loadPlaintext(passphrase []byte) ([]byte, error) {
	if err := CheckPermissions(s.path); err != nil {
		return nil, err
	}

	blob, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []byte{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read database: %w", err)
	}

	return Open(blob, passphrase)
}

// Load decrypts and decodes the full collection. A missing database is an
// empty collection, not an error.
func (s *Store) Load(passphrase []byte) (Collection, error) {
	plaintext, err := s.loadPlaintext(passphrase)
	if err != nil {
		return nil, err
	}
	return Decode(plaintext)
}

// Lookup loads the collection and returns the entries whose name matches.
func (s *Store) Lookup(passphrase []byte, m Matcher) ([]Entry, error) {
	collection, err := s.Load(passphrase)
	if err != nil {
		return nil, err
	}

	var matched []Entry
	for _, e := range collection {
		if m.Match(e.Name) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// Init creates a new empty database sealed under the passphrase. Fails if a
// database already exists.
func (s *Store) Init(passphrase []byte) error {
	if s.Exists() {
		return fmt.Errorf("%s: %w", s.path, perrors.ErrDatabaseExists)
	}
	return s.commit(passphrase, nil)
}

// Upsert stores a secret under a name, replacing any prior entry with the
// same name. The new entry is appended; surviving entries keep their order.
func (s *Store) Upsert(passphrase []byte, name, secret string) error {
	if err := ValidateEntry(name, secret); err != nil {
		return err
	}

	collection, err := s.Load(passphrase)
	if err != nil {
		return err
	}

	kept := make(Collection, 0, len(collection)+1)
	for _, e := range collection {
		if e.Name != name {
			kept = append(kept, e)
		}
	}
	kept = append(kept, Entry{Name: name, Secret: secret})

	return s.commit(passphrase, kept)
}

// Delete removes the entry with the given name. ErrEntryNotFound when no
// entry matches; the database is left untouched in that case.
func (s *Store) Delete(passphrase []byte, name string) error {
	collection, err := s.Load(passphrase)
	if err != nil {
		return err
	}

	kept := make(Collection, 0, len(collection))
	for _, e := range collection {
		if e.Name != name {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(collection) {
		return fmt.Errorf("%q: %w", name, perrors.ErrEntryNotFound)
	}

	return s.commit(passphrase, kept)
}

// LoadRaw returns the decrypted plaintext without decoding it. Used by the
// raw edit path together with ReplaceWhole.
func (s *Store) LoadRaw(passphrase []byte) ([]byte, error) {
	return s.loadPlaintext(passphrase)
}

// ReplaceWhole seals arbitrary plaintext as the new database contents. This
// is the deliberate codec bypass backing the free-form edit command: the
// plaintext is not required to decode as a collection, but the commit still
// goes through the mutation protocol. The passphrase is verified against the
// existing database first so a typo cannot silently re-key the store.
func (s *Store) ReplaceWhole(passphrase, plaintext []byte) error {
	if _, err := s.loadPlaintext(passphrase); err != nil {
		return err
	}
	return s.commitRaw(passphrase, plaintext)
}

// Rekey re-encrypts the identical plaintext under a new passphrase. Fails
// without committing when the old passphrase is wrong.
func (s *Store) Rekey(oldPassphrase, newPassphrase []byte) error {
	if !s.Exists() {
		return fmt.Errorf("%s: %w", s.path, perrors.ErrDatabaseNotFound)
	}

	plaintext, err := s.loadPlaintext(oldPassphrase)
	if err != nil {
		return err
	}
	return s.commitRaw(newPassphrase, plaintext)
}

func (s *Store) commit(passphrase []byte, collection Collection) error {
	return s.commitRaw(passphrase, Encode(collection))
}

func (s *Store) commitRaw(passphrase, plaintext []byte) error {
	blob, err := Seal(plaintext, passphrase, s.cipher)
	if err != nil {
		return err
	}
	return commitBlob(s.path, blob)
}
