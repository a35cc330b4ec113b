package vault

import (
	"bytes"
	"errors"
	"testing"

	perrors "github.com/padlock-dev/padlock/internal/errors"
)

func TestSession_StartsLocked(t *testing.T) {
	s := NewSession()
	if s.Unlocked() {
		t.Error("new session must start locked")
	}
	if _, err := s.Passphrase(); !errors.Is(err, perrors.ErrSessionLocked) {
		t.Errorf("expected ErrSessionLocked, got: %v", err)
	}
}

func TestSession_UnlockCachesACopy(t *testing.T) {
	s := NewSession()
	typed := []byte("correct horse")
	s.Unlock(typed)

	// Clearing the caller's buffer must not affect the cached copy.
	for i := range typed {
		typed[i] = 0
	}

	pass, err := s.Passphrase()
	if err != nil {
		t.Fatalf("Passphrase failed: %v", err)
	}
	if string(pass) != "correct horse" {
		t.Errorf("cached passphrase was not an independent copy: %q", pass)
	}
}

func TestSession_LockZeroesPassphrase(t *testing.T) {
	s := NewSession()
	s.Unlock([]byte("correct horse"))

	cached, err := s.Passphrase()
	if err != nil {
		t.Fatalf("Passphrase failed: %v", err)
	}

	s.Lock()

	if s.Unlocked() {
		t.Error("session still unlocked after Lock")
	}
	if !bytes.Equal(cached, make([]byte, len(cached))) {
		t.Error("cached passphrase bytes were not zeroed on Lock")
	}
}

func TestSession_RepeatedLockIsSafe(t *testing.T) {
	s := NewSession()
	s.Lock()
	s.Lock()
	s.Unlock([]byte("k"))
	s.Lock()
	s.Lock()
	if s.Unlocked() {
		t.Error("expected a locked session")
	}
}
