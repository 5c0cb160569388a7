package service

import (
	"context"

	"github.com/MKhiriev/go-vault-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService handles account creation, credential verification, and the
// session-token lifecycle.
type AuthService interface {
	// RegisterUser creates the account together with its empty vault and
	// freshly issued key-derivation salt.
	RegisterUser(ctx context.Context, email string, hashedPassword string) (models.User, models.Vault, error)

	// Login authenticates the credentials and returns the account with its
	// vault. Unknown email and wrong password both surface as
	// ErrInvalidCredentials; a missing vault is tolerated with empty fields.
	Login(ctx context.Context, email string, hashedPassword string) (models.User, models.Vault, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService covers account maintenance for an already authenticated user.
type UserService interface {
	ValidatePassword(ctx context.Context, userID int64, password string) (bool, error)
	ChangePassword(ctx context.Context, userID int64, currentPassword string, newPassword string) error
	ChangeEmail(ctx context.Context, userID int64, newEmail string) error
	DeleteUser(ctx context.Context, userID int64) error
	GetSettings(ctx context.Context, userID int64) (models.Settings, error)
	UpdateSettings(ctx context.Context, userID int64, raw map[string]string) (models.Settings, error)
}

// VaultService exposes the ciphertext container of an authenticated user.
type VaultService interface {
	GetVault(ctx context.Context, userID int64) (models.Vault, error)

	// UpdateVault replaces the ciphertext wholesale; an empty value clears
	// the vault. The returned flag is false when the user has no vault to
	// update.
	UpdateVault(ctx context.Context, userID int64, encryptedVault string) (bool, error)
}
