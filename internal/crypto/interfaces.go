// Package crypto implements the server-side cryptographic primitives of the
// vault-custody core: memory-hard credential hashing, per-vault salt
// issuance, and custody of the RSA keypair that signs session tokens.
//
// Nothing in this package touches the network protocol or the database; the
// service layer composes these primitives into the authentication flows.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// CredentialHasher hashes and verifies user credentials with a memory-hard
// primitive. The per-call salt is managed internally by the hasher; callers
// never supply salt material.
type CredentialHasher interface {
	// Hash derives an encoded, self-describing hash of secret. Two calls
	// with the same secret produce different outputs (random internal salt).
	Hash(secret string) (string, error)

	// Verify reports whether candidate matches the previously produced
	// encoded hash. A merely-wrong candidate yields (false, nil); an encoded
	// value this hasher could not have produced yields ErrInvalidHashFormat.
	Verify(encoded, candidate string) (bool, error)
}

// SaltGenerator produces cryptographically random per-vault key-derivation
// salts. Salts are issued once per vault and never reused.
type SaltGenerator interface {
	Generate() (string, error)
}
