package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// vaultSaltBytes is the number of random bytes behind every vault salt.
// Hex encoding doubles it, so clients receive a 128-character string.
const vaultSaltBytes = 64

// saltGenerator is the CSPRNG-backed implementation of [SaltGenerator].
type saltGenerator struct{}

// NewSaltGenerator constructs a [SaltGenerator] producing 64-byte
// hex-encoded vault salts.
func NewSaltGenerator() SaltGenerator {
	return &saltGenerator{}
}

// Generate implements [SaltGenerator]. It reads 64 random bytes from the OS
// CSPRNG and returns them hex-encoded. Returns an error only if the random
// read fails.
func (g *saltGenerator) Generate() (string, error) {
	salt := make([]byte, vaultSaltBytes)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("error reading random vault salt: %w", err)
	}

	return hex.EncodeToString(salt), nil
}
