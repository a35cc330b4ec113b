package vault

import (
	"fmt"
	"strings"

	perrors "github.com/padlock-dev/padlock/internal/errors"
)

// Entry is one named secret record. Name must not contain ':' or a newline;
// Secret must not contain a newline. The codec does not enforce this: the
// store's write path validates before anything is encoded.
type Entry struct {
	Name   string
	Secret string
}

// Collection is the full in-memory sequence of entries for one database.
// Insertion order is preserved across a load-mutate-save cycle.
type Collection []Entry

// Encode serializes a collection as one `name:secret` line per entry,
// newline-terminated. Encoding an empty collection yields empty bytes.
func Encode(c Collection) []byte {
	var b strings.Builder
	for _, e := range c {
		b.WriteString(e.Name)
		b.WriteByte(':')
		b.WriteString(e.Secret)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// Decode parses plaintext into a collection. Each non-empty line splits on
// the first ':' into (name, secret); only the first ':' delimits, so secrets
// may contain the character freely.
//
// A non-empty line without a ':' rejects the whole decode with
// ErrMalformedEntry. A store should fail loudly on corruption rather than
// silently drop records; the raw edit path remains the explicit bypass.
func Decode(plaintext []byte) (Collection, error) {
	var c Collection
	for i, line := range strings.Split(string(plaintext), "\n") {
		if line == "" {
			continue
		}
		name, secret, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("line %d: %w", i+1, perrors.ErrMalformedEntry)
		}
		c = append(c, Entry{Name: name, Secret: secret})
	}
	return c, nil
}

// ValidateEntry enforces the name and secret constraints at the store
// boundary, before an entry is ever encoded.
func ValidateEntry(name, secret string) error {
	if name == "" || strings.ContainsAny(name, ":\n") {
		return fmt.Errorf("%q: %w", name, perrors.ErrInvalidName)
	}
	if strings.Contains(secret, "\n") {
		return perrors.ErrInvalidSecret
	}
	return nil
}
