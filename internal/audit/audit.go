package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/padlock-dev/padlock/internal/configs"
)

// Entry represents a single history entry. Entries record which operation
// touched the database and when; secret values and passphrases never appear.
type Entry struct {
	Timestamp string `json:"ts"`   // RFC3339 with microseconds.
	VaultUUID string `json:"uuid"` // UUID of the database being operated on.
	Operation string `json:"op"`   // Operation name.

	// Optional fields depending on operation.
	EntryName string `json:"entry,omitempty"`  // For add/remove/clip.
	Cipher    string `json:"cipher,omitempty"` // For init/rekey.
	Matched   int    `json:"matched,omitempty"`
}

// Path returns the history file location. The file is subject to the same
// owner-only permission rule as the database itself.
func Path() string {
	return filepath.Join(configs.UserPadlockSettings.UserDataPath, "history.jsonl")
}

// Log appends an entry to the history file. If logging fails, the entry is
// dropped: operations must not fail because history could not be written.
func Log(entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	logPath := Path()
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}
