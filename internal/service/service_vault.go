package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/store"
	"github.com/MKhiriev/go-vault-keeper/models"
)

// vaultService is the concrete implementation of VaultService. The server
// treats vault contents as opaque ciphertext; this service never inspects
// Data beyond passing it through.
type vaultService struct {
	vaultRepository store.VaultRepository
	logger          *logger.Logger
}

func NewVaultService(vaultRepository store.VaultRepository, logger *logger.Logger) VaultService {
	return &vaultService{
		vaultRepository: vaultRepository,
		logger:          logger,
	}
}

func (v *vaultService) GetVault(ctx context.Context, userID int64) (models.Vault, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		return models.Vault{}, ErrInvalidDataProvided
	}

	vault, err := v.vaultRepository.FindVaultByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("vault lookup failed")
		return models.Vault{}, fmt.Errorf("vault lookup failed: %w", err)
	}

	return vault, nil
}

// UpdateVault replaces the stored ciphertext wholesale. An empty value is a
// valid payload: it clears the vault.
func (v *vaultService) UpdateVault(ctx context.Context, userID int64, encryptedVault string) (bool, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		return false, ErrInvalidDataProvided
	}

	updated, err := v.vaultRepository.UpdateVault(ctx, userID, encryptedVault)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("vault update failed")
		return false, fmt.Errorf("vault update failed: %w", err)
	}

	return updated, nil
}
