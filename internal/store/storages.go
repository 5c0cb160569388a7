package store

import (
	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
)

// Storages aggregates all repository implementations behind their
// interfaces, ready to be handed to the service layer.
type Storages struct {
	UserRepository  UserRepository
	VaultRepository VaultRepository
}

func NewStorages(db *DB, cfg config.Storage, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:  NewUserRepository(db, cfg.UserTimestamps, log),
		VaultRepository: NewVaultRepository(db, cfg.VaultTimestamps, log),
	}
}
