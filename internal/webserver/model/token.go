package model

import (
	"crypto/rand"
	"math/big"
)

const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// TokenLength is the number of characters of a magic link token
const TokenLength = 64

// SecureToken returns a random alphanumeric string of the given length.
// Every character is drawn uniformly from the alphabet, so tokens carry no
// structure an attacker could exploit. Uniqueness is enforced by the magic
// links table, not here.
func SecureToken(length int) (string, error) {
	if length <= 0 {
		length = TokenLength
	}

	token := make([]byte, length)
	for i := range token {
		pos, err := rand.Int(rand.Reader, big.NewInt(int64(len(tokenAlphabet))))
		if err != nil {
			return "", err
		}
		token[i] = tokenAlphabet[pos.Int64()]
	}
	return string(token), nil
}
