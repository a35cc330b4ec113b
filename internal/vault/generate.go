package vault

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// secretAlphabet deliberately excludes newlines and other whitespace so a
// generated secret always satisfies the entry constraints.
const secretAlphabet = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"!#$%&()*+,-./:;<=>?@[]^_{|}~"

// GenerateSecret returns a random secret of the given length drawn uniformly
// from the secret alphabet using the system random source.
func GenerateSecret(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("secret length must be positive, got %d", length)
	}

	max := big.NewInt(int64(len(secretAlphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("system random source unavailable: %w", err)
		}
		out[i] = secretAlphabet[n.Int64()]
	}
	return string(out), nil
}
