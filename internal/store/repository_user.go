package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// All account rows live in the "users" table; preference flags are stored in
// a JSONB column alongside the credentials.
type userRepository struct {
	*DB
	timestamps bool
	logger     *logger.Logger
}

func NewUserRepository(db *DB, timestamps bool, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("UserRepository created")
	return &userRepository{
		DB:         db,
		timestamps: timestamps,
		logger:     logger,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var saved models.User
	err = r.queryRowWithRetry(ctx, func(row *sql.Row) error {
		var scanErr error
		saved, scanErr = scanUserRow(row)
		return scanErr
	}, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error saving user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return saved, nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByEmailQuery(email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("failed to build select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	err = r.queryRowWithRetry(ctx, func(row *sql.Row) error {
		var scanErr error
		found, scanErr = scanUserRow(row)
		return scanErr
	}, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user by email")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByIDQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("failed to build select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	err = r.queryRowWithRetry(ctx, func(row *sql.Row) error {
		var scanErr error
		found, scanErr = scanUserRow(row)
		return scanErr
	}, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByID").Int64("user_id", userID).Msg("error finding user by id")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID int64, currentHash string, newHash string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePasswordQuery(userID, currentHash, newHash, r.timestamps)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.execWithRetry(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Int64("user_id", userID).Msg("error updating password")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		// Either the user is gone or the credential changed since it was read.
		return ErrNoUserWasFound
	}

	return nil
}

func (r *userRepository) UpdateEmail(ctx context.Context, userID int64, newEmail string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateEmailQuery(userID, newEmail, r.timestamps)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateEmail").Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.execWithRetry(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateEmail").Int64("user_id", userID).Msg("error updating email")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrEmailAlreadyExists
		default:
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.execWithRetry(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("user_id", userID).Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

func (r *userRepository) GetSettings(ctx context.Context, userID int64) (models.Settings, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSettingsQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetSettings").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var raw []byte
	err = r.queryRowWithRetry(ctx, func(row *sql.Row) error {
		return row.Scan(&raw)
	}, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.GetSettings").Int64("user_id", userID).Msg("error reading settings")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return decodeSettings(raw)
}

func (r *userRepository) UpdateSettings(ctx context.Context, userID int64, settings models.Settings) (models.Settings, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateSettingsQuery(userID, settings, r.timestamps)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateSettings").Msg("failed to build update query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var raw []byte
	err = r.queryRowWithRetry(ctx, func(row *sql.Row) error {
		return row.Scan(&raw)
	}, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.UpdateSettings").Int64("user_id", userID).Msg("error updating settings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return decodeSettings(raw)
}

func scanUserRow(row *sql.Row) (models.User, error) {
	var user models.User
	var rawSettings []byte

	err := row.Scan(
		&user.UserID,
		&user.Email,
		&user.Password,
		&rawSettings,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.Settings, err = decodeSettings(rawSettings)
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

func decodeSettings(raw []byte) (models.Settings, error) {
	if len(raw) == 0 {
		return models.Settings{}, nil
	}

	var settings models.Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return settings, nil
}
