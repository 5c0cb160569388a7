package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// credentialHasher is the argon2id implementation of [CredentialHasher].
// Hashes are stored in the standard PHC string form:
//
//	$argon2id$v=19$m=65536,t=3,p=4$<base64 salt>$<base64 digest>
//
// so every stored value is self-describing and parameter upgrades do not
// invalidate existing credentials.
type credentialHasher struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
	saltLen      uint32
}

// NewCredentialHasher constructs a [CredentialHasher] with the Argon2id
// parameters used across the corpus for interactive logins:
//   - time cost:   3 iterations
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
//   - salt length: 16 bytes (128 bits)
func NewCredentialHasher() CredentialHasher {
	return &credentialHasher{
		argonTime:    3,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
		saltLen:      16, // 128 bits
	}
}

// Hash implements [CredentialHasher]. It reads a fresh random salt from the
// OS CSPRNG, derives the argon2id digest, and returns the PHC-encoded
// string. Side-effect free; safe for concurrent use.
func (h *credentialHasher) Hash(secret string) (string, error) {
	salt := make([]byte, h.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("error reading random salt for credential hash: %w", err)
	}

	digest := argon2.IDKey([]byte(secret), salt, h.argonTime, h.argonMemory, h.argonThreads, h.argonKeyLen)

	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.argonMemory,
		h.argonTime,
		h.argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	)

	return encoded, nil
}

// Verify implements [CredentialHasher]. It re-derives the digest of
// candidate with the parameters embedded in encoded and compares the result
// in constant time. A wrong candidate returns (false, nil); a value that
// does not parse as an argon2id PHC string returns [ErrInvalidHashFormat].
func (h *credentialHasher) Verify(encoded, candidate string) (bool, error) {
	salt, digest, memory, time, threads, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	candidateDigest := argon2.IDKey([]byte(candidate), salt, time, memory, threads, uint32(len(digest)))

	return subtle.ConstantTimeCompare(digest, candidateDigest) == 1, nil
}

// decodeHash splits a PHC argon2id string into its salt, digest, and tuning
// parameters.
func decodeHash(encoded string) (salt, digest []byte, memory, time uint32, threads uint8, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, ErrInvalidHashFormat
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, 0, 0, 0, ErrInvalidHashFormat
	}
	if version != argon2.Version {
		return nil, nil, 0, 0, 0, ErrIncompatibleHashVersion
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return nil, nil, 0, 0, 0, ErrInvalidHashFormat
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, ErrInvalidHashFormat
	}

	digest, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, 0, 0, 0, ErrInvalidHashFormat
	}

	return salt, digest, memory, time, threads, nil
}
