// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/crypto"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/store"
	"github.com/MKhiriev/go-vault-keeper/internal/utils"
	"github.com/MKhiriev/go-vault-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It orchestrates the registration and login flows over the user and vault
// repositories, hashing credentials with the memory-hard hasher and signing
// session tokens with the RSA keychain.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// vaultRepository persists the per-user ciphertext container created at
	// registration time.
	vaultRepository store.VaultRepository

	// hasher derives the stored form of the client-side password hash and
	// verifies candidates against it.
	hasher crypto.CredentialHasher

	// saltGenerator issues the one-time key-derivation salt bound to a new
	// vault.
	saltGenerator crypto.SaltGenerator

	// keyChain holds the RSA keypair used to sign and verify session tokens.
	keyChain *crypto.KeyChain

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and cryptographic primitives, with token parameters taken from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	vaultRepository store.VaultRepository,
	hasher crypto.CredentialHasher,
	saltGenerator crypto.SaltGenerator,
	keyChain *crypto.KeyChain,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:  userRepository,
		vaultRepository: vaultRepository,
		hasher:          hasher,
		saltGenerator:   saltGenerator,
		keyChain:        keyChain,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		logger:          logger,
	}
}

// RegisterUser creates a new account together with its empty vault.
//
// The client-side password hash is run through the memory-hard hasher before
// storage, a fresh key-derivation salt is issued, and the vault row is
// created empty. If vault creation fails after the user row was written, the
// user row is deleted again so that no account exists without a vault.
//
// Returns the persisted user and vault or:
//   - ErrInvalidDataProvided if email or hashedPassword is empty.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
//   - A wrapped storage error for any other repository failure.
func (a *authService) RegisterUser(ctx context.Context, email string, hashedPassword string) (models.User, models.Vault, error) {
	log := logger.FromContext(ctx)

	if email == "" || hashedPassword == "" {
		log.Error().Str("email", email).Msg("invalid registration data provided")
		return models.User{}, models.Vault{}, ErrInvalidDataProvided
	}

	storedHash, err := a.hasher.Hash(hashedPassword)
	if err != nil {
		log.Err(err).Str("func", "authService.RegisterUser").Msg("credential hashing failed")
		return models.User{}, models.Vault{}, fmt.Errorf("credential hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:    email,
		Password: storedHash,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, models.Vault{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	salt, err := a.saltGenerator.Generate()
	if err != nil {
		log.Err(err).Str("func", "authService.RegisterUser").Msg("salt generation failed")
		a.compensateRegistration(ctx, registeredUser.UserID)
		return models.User{}, models.Vault{}, fmt.Errorf("salt generation failed: %w", err)
	}

	vault, err := a.vaultRepository.CreateVault(ctx, models.Vault{
		UserID: registeredUser.UserID,
		Salt:   salt,
	})
	if err != nil {
		log.Err(err).Int64("user_id", registeredUser.UserID).Msg("vault creation ended with error")
		a.compensateRegistration(ctx, registeredUser.UserID)
		return models.User{}, models.Vault{}, fmt.Errorf("vault creation ended with error: %w", err)
	}

	return registeredUser, vault, nil
}

// compensateRegistration removes a half-registered account so that no user
// row exists without its vault. Failures are logged and swallowed; the
// original registration error is the one that reaches the caller.
func (a *authService) compensateRegistration(ctx context.Context, userID int64) {
	log := logger.FromContext(ctx)

	if err := a.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("failed to roll back half-registered user")
	}
}

// Login authenticates an existing user and loads their vault.
//
// Unknown email and wrong password collapse into ErrInvalidCredentials: the
// response must not reveal which part failed. A missing vault is tolerated —
// the registration flow guarantees one, but if it is absent the user is still
// authenticated and the vault fields come back empty.
//
// Returns the authenticated user and their vault, or:
//   - ErrInvalidDataProvided if email or hashedPassword is empty.
//   - ErrInvalidCredentials for every authentication failure.
func (a *authService) Login(ctx context.Context, email string, hashedPassword string) (models.User, models.Vault, error) {
	log := logger.FromContext(ctx)

	if email == "" || hashedPassword == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.User{}, models.Vault{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, models.Vault{}, ErrInvalidCredentials
	}

	match, err := a.hasher.Verify(foundUser.Password, hashedPassword)
	if err != nil {
		log.Err(err).Int64("user_id", foundUser.UserID).Msg("credential verification failed")
		return models.User{}, models.Vault{}, ErrInvalidCredentials
	}
	if !match {
		log.Warn().Int64("user_id", foundUser.UserID).Msg("wrong password")
		return models.User{}, models.Vault{}, ErrInvalidCredentials
	}

	vault, err := a.vaultRepository.FindVaultByUser(ctx, foundUser.UserID)
	switch {
	case errors.Is(err, store.ErrNoVaultWasFound):
		log.Warn().Int64("user_id", foundUser.UserID).Msg("authenticated user has no vault")
		return foundUser, models.Vault{}, nil
	case err != nil:
		log.Err(err).Int64("user_id", foundUser.UserID).Msg("vault lookup failed during login")
		return models.User{}, models.Vault{}, fmt.Errorf("vault lookup failed: %w", err)
	}

	return foundUser, vault, nil
}

// CreateToken issues a signed session token for the given user.
//
// The token is signed with the keychain's RSA private key, carries the
// configured tokenIssuer as the "iss" claim and the user id as the subject,
// and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if signing fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.keyChain.PrivateKey())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw session token string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the RSA
// signature and the issuer claim. Any validation failure (expired, wrong
// issuer, malformed, wrong algorithm) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.keyChain.PublicKey(), a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
