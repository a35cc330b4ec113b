// Package vault implements padlock's encrypted credential store.
//
// The store is a single file holding the whole collection of named secrets,
// sealed under a master passphrase. Four pieces cooperate:
//
//   - The cipher envelope (Seal/Open) encrypts a plaintext byte stream under
//     a passphrase-derived key with a fresh random salt per encryption. The
//     blob is self-describing: a short header records the cipher and salt, so
//     opening needs only the passphrase.
//   - The entry codec (Encode/Decode) maps the logical collection of
//     {name, secret} pairs to the plaintext stream as `name:secret` lines.
//   - The Store ties both to the on-disk file and exposes the operations:
//     Load, Lookup, Upsert, Delete, ReplaceWhole, Rekey.
//   - The mutation protocol backs every write: copy the prior database to
//     the single backup slot, write the new blob to a temporary file on the
//     same volume, then atomically rename it into place. The file on disk is
//     never partially written, and a failed decryption never destroys it.
//
// # Ciphers
//
// New databases seal with XChaCha20-Poly1305 under an argon2id-derived key.
// AES-256-GCM and NaCl secretbox (both with PBKDF2-SHA256) are available as
// configuration choices; secretbox exists for compatibility with databases
// produced by earlier deployments. All three are authenticated, so a wrong
// passphrase and tampered ciphertext are equally unopenable and equally
// indistinguishable (ErrBadPassphrase).
//
// # Permissions
//
// The database, its backup, and any history artifacts must be mode 0600.
// CheckPermissions fails closed on anything looser, before any decryption.
//
// # Sessions
//
// Session caches the passphrase in memory between operations of one
// interactive session. Lock zeroes the cached copy; callers lock the session
// whenever an operation fails with ErrBadPassphrase so the next operation
// re-prompts.
package vault
