package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/models"
	"github.com/jackc/pgerrcode"
)

// vaultRepository is the PostgreSQL-backed implementation of
// [VaultRepository]. Each user owns at most one row in the "vaults" table;
// the UNIQUE constraint on user_id enforces it.
type vaultRepository struct {
	*DB
	timestamps bool
	logger     *logger.Logger
}

func NewVaultRepository(db *DB, timestamps bool, logger *logger.Logger) VaultRepository {
	logger.Debug().Msg("VaultRepository created")
	return &vaultRepository{
		DB:         db,
		timestamps: timestamps,
		logger:     logger,
	}
}

func (r *vaultRepository) CreateVault(ctx context.Context, vault models.Vault) (models.Vault, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertVaultQuery(vault)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.CreateVault").Msg("failed to build insert query")
		return models.Vault{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var saved models.Vault
	err = r.queryRowWithRetry(ctx, func(row *sql.Row) error {
		var scanErr error
		saved, scanErr = scanVaultRow(row)
		return scanErr
	}, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.CreateVault").Int64("user_id", vault.UserID).Msg("error saving vault")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Vault{}, ErrVaultAlreadyExists
		default:
			return models.Vault{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return saved, nil
}

func (r *vaultRepository) FindVaultByUser(ctx context.Context, userID int64) (models.Vault, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindVaultByUserQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.FindVaultByUser").Msg("failed to build select query")
		return models.Vault{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Vault
	err = r.queryRowWithRetry(ctx, func(row *sql.Row) error {
		var scanErr error
		found, scanErr = scanVaultRow(row)
		return scanErr
	}, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Vault{}, ErrNoVaultWasFound
		}

		log.Err(err).Str("func", "*vaultRepository.FindVaultByUser").Int64("user_id", userID).Msg("error finding vault")
		return models.Vault{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

func (r *vaultRepository) UpdateVault(ctx context.Context, userID int64, data string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateVaultQuery(userID, data, r.timestamps)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.UpdateVault").Msg("failed to build update query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.execWithRetry(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.UpdateVault").Int64("user_id", userID).Msg("error updating vault")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0, nil
}

func scanVaultRow(row *sql.Row) (models.Vault, error) {
	var vault models.Vault

	err := row.Scan(
		&vault.VaultID,
		&vault.UserID,
		&vault.Salt,
		&vault.Data,
		&vault.Version,
		&vault.CreatedAt,
		&vault.UpdatedAt,
	)
	if err != nil {
		return models.Vault{}, err
	}

	return vault, nil
}
