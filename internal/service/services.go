package service

import (
	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/crypto"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/store"
	"github.com/MKhiriev/go-vault-keeper/internal/validators"
)

type Services struct {
	AuthService  AuthService
	UserService  UserService
	VaultService VaultService
}

func NewServices(storages *store.Storages, keyChain *crypto.KeyChain, cfg config.App, logger *logger.Logger) *Services {
	hasher := crypto.NewCredentialHasher()
	saltGenerator := crypto.NewSaltGenerator()
	settingsValidator := validators.NewSettingsValidator()

	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, storages.VaultRepository, hasher, saltGenerator, keyChain, cfg, logger),
		UserService:  NewUserService(storages.UserRepository, hasher, settingsValidator, logger),
		VaultService: NewVaultService(storages.VaultRepository, logger),
	}
}
