package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/migrations"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sethvargo/go-retry"
)

const (
	retryMaxRetries   = 3
	retryBaseInterval = 100 * time.Millisecond
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}

	return db, nil
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// execWithRetry runs ExecContext, repeating the statement while the
// classifier reports the failure as transient.
func (db *DB) execWithRetry(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var result sql.Result

	err := retry.Do(ctx, db.retryBackoff(), func(ctx context.Context) error {
		var execErr error
		result, execErr = db.DB.ExecContext(ctx, query, args...)
		return db.retryable(ctx, execErr)
	})

	return result, err
}

// queryRowWithRetry runs QueryRowContext and hands the row to scan. Driver
// errors only surface on Scan, so the whole query+scan pair repeats on a
// transient failure.
func (db *DB) queryRowWithRetry(ctx context.Context, scan func(*sql.Row) error, query string, args ...any) error {
	return retry.Do(ctx, db.retryBackoff(), func(ctx context.Context) error {
		return db.retryable(ctx, scan(db.DB.QueryRowContext(ctx, query, args...)))
	})
}

func (db *DB) retryBackoff() retry.Backoff {
	return retry.WithMaxRetries(retryMaxRetries, retry.NewFibonacci(retryBaseInterval))
}

// retryable marks err for another attempt when the classifier deems it
// transient. retry.RetryableError keeps the chain unwrappable, so callers
// still match sentinel errors and pg codes with errors.Is/As.
func (db *DB) retryable(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	if db.errorClassificator.Classify(err) == Retryable {
		logger.FromContext(ctx).Warn().Err(err).Msg("transient database error, retrying")
		return retry.RetryableError(err)
	}

	return err
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
