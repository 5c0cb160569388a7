package crypto

import (
	"bytes"
	"crypto/rsa"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

// KeyChain holds the long-lived RSA keypair used to sign and verify session
// tokens. It is constructed once at startup and is read-only afterwards, so
// it is safe for concurrent use.
type KeyChain struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
}

// NewKeyChain loads the RSA keypair from the given locations and validates it.
//
// Each location is either a filesystem path or an http(s) URL; URL material
// is fetched once at startup. Construction fails if:
//   - either location is unreadable or unfetchable;
//   - the two locations carry textually identical content (misconfigured key
//     material, e.g. two copies of the same file) — [ErrKeysAreIdentical];
//   - the PEM blocks do not parse as RSA keys;
//   - the public key does not belong to the private key — [ErrKeyPairMismatch].
//
// Startup must treat any returned error as fatal: the system cannot issue or
// verify tokens without a genuine asymmetric pair.
func NewKeyChain(privateLocation, publicLocation string) (*KeyChain, error) {
	privatePEM, err := loadKeyMaterial(privateLocation)
	if err != nil {
		return nil, fmt.Errorf("error loading private key from %q: %w", privateLocation, err)
	}

	publicPEM, err := loadKeyMaterial(publicLocation)
	if err != nil {
		return nil, fmt.Errorf("error loading public key from %q: %w", publicLocation, err)
	}

	if bytes.Equal(bytes.TrimSpace(privatePEM), bytes.TrimSpace(publicPEM)) {
		return nil, ErrKeysAreIdentical
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(privatePEM)
	if err != nil {
		return nil, fmt.Errorf("error parsing private key: %w", err)
	}

	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicPEM)
	if err != nil {
		return nil, fmt.Errorf("error parsing public key: %w", err)
	}

	if !privateKey.PublicKey.Equal(publicKey) {
		return nil, ErrKeyPairMismatch
	}

	return &KeyChain{privateKey: privateKey, publicKey: publicKey}, nil
}

// NewKeyChainFromKeys wraps an already parsed keypair. Intended for tests
// and callers that manage key material themselves.
func NewKeyChainFromKeys(privateKey *rsa.PrivateKey, publicKey *rsa.PublicKey) *KeyChain {
	return &KeyChain{privateKey: privateKey, publicKey: publicKey}
}

// PrivateKey returns the signing key.
func (k *KeyChain) PrivateKey() *rsa.PrivateKey {
	return k.privateKey
}

// PublicKey returns the verification key.
func (k *KeyChain) PublicKey() *rsa.PublicKey {
	return k.publicKey
}

// loadKeyMaterial reads PEM bytes from a filesystem path or, when the
// location starts with http:// or https://, fetches them over the network.
func loadKeyMaterial(location string) ([]byte, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return fetchKeyFromURL(location)
	}

	return os.ReadFile(location)
}

// fetchKeyFromURL retrieves key material over HTTP. A short timeout bounds
// startup: key endpoints are expected to be local or adjacent services.
func fetchKeyFromURL(url string) ([]byte, error) {
	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().Get(url)
	if err != nil {
		return nil, fmt.Errorf("error fetching key material: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("error fetching key material: unexpected status %s", resp.Status())
	}

	return resp.Body(), nil
}
