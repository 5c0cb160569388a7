package store

import (
	"context"

	"github.com/MKhiriev/go-vault-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts and their preference flags.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// UpdatePassword replaces the stored credential only when the row still
	// holds currentHash, so a concurrent change makes the update a no-op.
	UpdatePassword(ctx context.Context, userID int64, currentHash string, newHash string) error
	UpdateEmail(ctx context.Context, userID int64, newEmail string) error
	DeleteUser(ctx context.Context, userID int64) error
	GetSettings(ctx context.Context, userID int64) (models.Settings, error)
	// UpdateSettings merges the provided flags into the stored set and
	// returns the merged result.
	UpdateSettings(ctx context.Context, userID int64, settings models.Settings) (models.Settings, error)
}

// VaultRepository persists the per-user ciphertext container.
type VaultRepository interface {
	CreateVault(ctx context.Context, vault models.Vault) (models.Vault, error)
	FindVaultByUser(ctx context.Context, userID int64) (models.Vault, error)
	// UpdateVault replaces the ciphertext wholesale and reports whether a
	// row was modified. A false result means the user has no vault.
	UpdateVault(ctx context.Context, userID int64, data string) (bool, error)
}
