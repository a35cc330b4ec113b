// Package audit appends a JSONL history of mutating operations.
//
// Each line records when the database was initialized, re-keyed, or had an
// entry added or removed. Entries never contain secret values or passphrase
// material, only entry names and operation metadata. The history file is
// created 0600 and checked against the same owner-only rule as the database.
//
// History is best-effort: a write failure drops the entry rather than
// failing the operation that triggered it.
package audit
