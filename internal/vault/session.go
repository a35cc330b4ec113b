package vault

import perrors "github.com/padlock-dev/padlock/internal/errors"

// Session holds the master passphrase in memory for the duration of an
// interactive session. It starts locked; Unlock caches a private copy of the
// passphrase and Lock zeroes and drops it. The passphrase never leaves
// process memory through this type.
type Session struct {
	passphrase []byte
}

// NewSession returns a locked session.
func NewSession() *Session {
	return &Session{}
}

// Unlocked reports whether a passphrase is currently cached.
func (s *Session) Unlocked() bool {
	return s.passphrase != nil
}

// Unlock caches a copy of the passphrase for reuse by later operations.
// Any previously cached passphrase is cleared first.
func (s *Session) Unlock(passphrase []byte) {
	s.Lock()
	s.passphrase = make([]byte, len(passphrase))
	copy(s.passphrase, passphrase)
}

// Passphrase returns the cached passphrase. Callers must not retain or
// modify the returned slice beyond the current operation.
func (s *Session) Passphrase() ([]byte, error) {
	if s.passphrase == nil {
		return nil, perrors.ErrSessionLocked
	}
	return s.passphrase, nil
}

// Lock overwrites the cached passphrase and returns the session to the
// locked state. Safe to call on an already locked session.
func (s *Session) Lock() {
	for i := range s.passphrase {
		s.passphrase[i] = 0
	}
	s.passphrase = nil
}
