package vault

import (
	"crypto/aes"
	stdcipher "crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	perrors "github.com/padlock-dev/padlock/internal/errors"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/pbkdf2"
)

// Envelope layout: magic(4) || version(1) || cipherID(1) || salt(16) || nonce || ciphertext.
// The salt and nonce are generated fresh on every Seal, so the blob is
// self-describing given only the passphrase.
var envelopeMagic = [4]byte{'P', 'D', 'L', 'K'}

const (
	envelopeVersion = 1
	saltSize        = 16
	keySize         = 32
)

// Supported cipher names, as accepted by the `cipher` config key.
const (
	CipherChaCha20Poly1305 = "chacha20poly1305"
	CipherAES256GCM        = "aes256gcm"
	CipherSecretbox        = "secretbox"
)

// DefaultCipher seals new databases when the config does not choose one.
const DefaultCipher = CipherChaCha20Poly1305

// pbkdf2 parameters shared by the aes256gcm and legacy secretbox modes.
const (
	pbkdf2Iter = 20000
)

// argon2id parameters for the default cipher.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
)

type cipherSpec struct {
	id        byte
	name      string
	nonceSize int
	deriveKey func(passphrase, salt []byte) []byte
	seal      func(key, nonce, plaintext []byte) ([]byte, error)
	open      func(key, nonce, ciphertext []byte) ([]byte, bool)
}

func argonKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, argonTime, argonMemory, argonThreads, keySize)
}

func pbkdf2Key(passphrase, salt []byte) []byte {
	return pbkdf2.Key(passphrase, salt, pbkdf2Iter, keySize, sha256.New)
}

var cipherSpecs = []cipherSpec{
	{
		id:        1,
		name:      CipherChaCha20Poly1305,
		nonceSize: chacha20poly1305.NonceSizeX,
		deriveKey: argonKey,
		seal: func(key, nonce, plaintext []byte) ([]byte, error) {
			aead, err := chacha20poly1305.NewX(key)
			if err != nil {
				return nil, err
			}
			return aead.Seal(nil, nonce, plaintext, nil), nil
		},
		open: func(key, nonce, ciphertext []byte) ([]byte, bool) {
			aead, err := chacha20poly1305.NewX(key)
			if err != nil {
				return nil, false
			}
			plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
			return plaintext, err == nil
		},
	},
	{
		id:        2,
		name:      CipherAES256GCM,
		nonceSize: 12,
		deriveKey: pbkdf2Key,
		seal: func(key, nonce, plaintext []byte) ([]byte, error) {
			aead, err := newGCM(key)
			if err != nil {
				return nil, err
			}
			return aead.Seal(nil, nonce, plaintext, nil), nil
		},
		open: func(key, nonce, ciphertext []byte) ([]byte, bool) {
			aead, err := newGCM(key)
			if err != nil {
				return nil, false
			}
			plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
			return plaintext, err == nil
		},
	},
	{
		// Compatibility mode for databases sealed by earlier deployments.
		id:        3,
		name:      CipherSecretbox,
		nonceSize: 24,
		deriveKey: pbkdf2Key,
		seal: func(key, nonce, plaintext []byte) ([]byte, error) {
			var k [32]byte
			var n [24]byte
			copy(k[:], key)
			copy(n[:], nonce)
			return secretbox.Seal(nil, plaintext, &n, &k), nil
		},
		open: func(key, nonce, ciphertext []byte) ([]byte, bool) {
			var k [32]byte
			var n [24]byte
			copy(k[:], key)
			copy(n[:], nonce)
			return secretbox.Open(nil, ciphertext, &n, &k)
		},
	},
}

func newGCM(key []byte) (stdcipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return stdcipher.NewGCM(block)
}

func specByName(name string) (cipherSpec, error) {
	for _, spec := range cipherSpecs {
		if spec.name == name {
			return spec, nil
		}
	}
	return cipherSpec{}, fmt.Errorf("unknown cipher %q", name)
}

func specByID(id byte) (cipherSpec, bool) {
	for _, spec := range cipherSpecs {
		if spec.id == id {
			return spec, true
		}
	}
	return cipherSpec{}, false
}

// Seal encrypts plaintext under a passphrase-derived key using the named
// cipher. Each call generates a fresh random salt and nonce, both embedded in
// the returned blob.
func Seal(plaintext, passphrase []byte, cipherName string) ([]byte, error) {
	spec, err := specByName(cipherName)
	if err != nil {
		return nil, err
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce := make([]byte, spec.nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext, err := spec.seal(spec.deriveKey(passphrase, salt), nonce, plaintext)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt: %w", err)
	}

	blob := make([]byte, 0, 6+saltSize+len(nonce)+len(ciphertext))
	blob = append(blob, envelopeMagic[:]...)
	blob = append(blob, envelopeVersion, spec.id)
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = append(blob, ciphertext...)
	return blob, nil
}

// Open decrypts a blob produced by Seal. An empty blob decrypts to empty
// plaintext: an empty store is a valid initial state, not a failure.
//
// A wrong passphrase, a tampered blob, and a truncated or unrecognized header
// all surface as ErrBadPassphrase. The authenticated ciphers cannot tell a
// wrong key from corruption, so no finer distinction is offered.
func Open(blob, passphrase []byte) ([]byte, error) {
	if len(blob) == 0 {
		return []byte{}, nil
	}

	header := 6 + saltSize
	if len(blob) < header || [4]byte(blob[:4]) != envelopeMagic || blob[4] != envelopeVersion {
		return nil, perrors.ErrBadPassphrase
	}

	spec, ok := specByID(blob[5])
	if !ok {
		return nil, perrors.ErrBadPassphrase
	}
	if len(blob) < header+spec.nonceSize {
		return nil, perrors.ErrBadPassphrase
	}

	salt := blob[6:header]
	nonce := blob[header : header+spec.nonceSize]
	ciphertext := blob[header+spec.nonceSize:]

	plaintext, ok := spec.open(spec.deriveKey(passphrase, salt), nonce, ciphertext)
	if !ok {
		return nil, perrors.ErrBadPassphrase
	}
	return plaintext, nil
}
