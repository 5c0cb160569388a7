package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-keeper/internal/crypto"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/store"
	"github.com/MKhiriev/go-vault-keeper/internal/validators"
	"github.com/MKhiriev/go-vault-keeper/models"
)

// userService is the concrete implementation of UserService. All methods
// operate on an already authenticated user identified by userID; ownership
// checks happen in the transport layer before the call reaches this service.
type userService struct {
	userRepository    store.UserRepository
	hasher            crypto.CredentialHasher
	settingsValidator validators.SettingsValidator
	logger            *logger.Logger
}

func NewUserService(
	userRepository store.UserRepository,
	hasher crypto.CredentialHasher,
	settingsValidator validators.SettingsValidator,
	logger *logger.Logger,
) UserService {
	return &userService{
		userRepository:    userRepository,
		hasher:            hasher,
		settingsValidator: settingsValidator,
		logger:            logger,
	}
}

// ValidatePassword reports whether password matches the stored credential of
// the user. A wrong password is (false, nil); errors are reserved for lookup
// and hashing failures.
func (u *userService) ValidatePassword(ctx context.Context, userID int64, password string) (bool, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 || password == "" {
		return false, ErrInvalidDataProvided
	}

	foundUser, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user lookup failed during password validation")
		return false, fmt.Errorf("user lookup failed: %w", err)
	}

	match, err := u.hasher.Verify(foundUser.Password, password)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("credential verification failed")
		return false, fmt.Errorf("credential verification failed: %w", err)
	}

	return match, nil
}

// ChangePassword verifies the current credential and replaces it with the
// new one. The repository update is conditional on the stored hash read
// here, so a concurrent change loses cleanly instead of being overwritten.
//
// Returns ErrInvalidCredentials when the current password does not match.
func (u *userService) ChangePassword(ctx context.Context, userID int64, currentPassword string, newPassword string) error {
	log := logger.FromContext(ctx)

	if userID <= 0 || currentPassword == "" || newPassword == "" {
		return ErrInvalidDataProvided
	}

	foundUser, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user lookup failed during password change")
		return fmt.Errorf("user lookup failed: %w", err)
	}

	match, err := u.hasher.Verify(foundUser.Password, currentPassword)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("credential verification failed")
		return fmt.Errorf("credential verification failed: %w", err)
	}
	if !match {
		return ErrInvalidCredentials
	}

	newHash, err := u.hasher.Hash(newPassword)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("credential hashing failed")
		return fmt.Errorf("credential hashing failed: %w", err)
	}

	if err := u.userRepository.UpdatePassword(ctx, userID, foundUser.Password, newHash); err != nil {
		// Zero rows affected means the stored hash no longer matches the one
		// read above: a concurrent change won (or the account is gone). The
		// caller re-authenticates either way.
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Int64("user_id", userID).Msg("credential changed concurrently during password change")
			return ErrInvalidCredentials
		}

		log.Err(err).Int64("user_id", userID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}

func (u *userService) ChangeEmail(ctx context.Context, userID int64, newEmail string) error {
	log := logger.FromContext(ctx)

	if userID <= 0 || newEmail == "" {
		return ErrInvalidDataProvided
	}

	if err := u.userRepository.UpdateEmail(ctx, userID, newEmail); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("email update failed")
		return fmt.Errorf("email update failed: %w", err)
	}

	return nil
}

// DeleteUser removes the account. The vault row goes with it through the
// foreign-key cascade.
func (u *userService) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		return ErrInvalidDataProvided
	}

	if err := u.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}

func (u *userService) GetSettings(ctx context.Context, userID int64) (models.Settings, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		return nil, ErrInvalidDataProvided
	}

	settings, err := u.userRepository.GetSettings(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("settings lookup failed")
		return nil, fmt.Errorf("settings lookup failed: %w", err)
	}

	return settings, nil
}

// UpdateSettings validates the raw wire-form flags against the whitelist,
// merges them into the stored set, and returns the merged result.
func (u *userService) UpdateSettings(ctx context.Context, userID int64, raw map[string]string) (models.Settings, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		return nil, ErrInvalidDataProvided
	}

	settings, err := u.settingsValidator.ValidateSettings(ctx, raw)
	if err != nil {
		log.Warn().Err(err).Int64("user_id", userID).Msg("settings rejected by validator")
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	merged, err := u.userRepository.UpdateSettings(ctx, userID, settings)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("settings update failed")
		return nil, fmt.Errorf("settings update failed: %w", err)
	}

	return merged, nil
}
