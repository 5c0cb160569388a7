package crypto

import "errors"

var (
	// ErrInvalidHashFormat is returned by [CredentialHasher.Verify] when the
	// stored value is not an argon2id string this hasher could have produced.
	ErrInvalidHashFormat = errors.New("stored credential hash has invalid format")

	// ErrIncompatibleHashVersion is returned when the argon2 version embedded
	// in a stored hash differs from the version this build links against.
	ErrIncompatibleHashVersion = errors.New("stored credential hash has incompatible argon2 version")

	// ErrKeysAreIdentical is returned at startup when the private and public
	// key files carry textually identical content, which indicates
	// misconfigured key material rather than a genuine asymmetric pair.
	ErrKeysAreIdentical = errors.New("private and public keys are identical")

	// ErrKeyPairMismatch is returned at startup when the loaded public key
	// does not belong to the loaded private key.
	ErrKeyPairMismatch = errors.New("public key does not match private key")
)
