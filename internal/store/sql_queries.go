package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-vault-keeper/models"
)

// psql builds every repository query with PostgreSQL $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns  = []string{"user_id", "email", "password", "settings", "created_at", "updated_at"}
	vaultColumns = []string{"vault_id", "user_id", "salt", "data", "version", "created_at", "updated_at"}
)

// settingsJSON encodes preference flags for a JSONB column. A nil map is
// stored as an empty object, never as SQL NULL.
func settingsJSON(settings models.Settings) ([]byte, error) {
	if settings == nil {
		settings = models.Settings{}
	}

	raw, err := json.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return raw, nil
}

func buildInsertUserQuery(user models.User) (string, []any, error) {
	raw, err := settingsJSON(user.Settings)
	if err != nil {
		return "", nil, err
	}

	return psql.Insert(user.TableName()).
		Columns("email", "password", "settings").
		Values(user.Email, user.Password, raw).
		Suffix("RETURNING user_id, email, password, settings, created_at, updated_at").
		ToSql()
}

func buildFindUserByEmailQuery(email string) (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Expr("lower(email) = lower(?)", email)).
		ToSql()
}

func buildFindUserByIDQuery(userID int64) (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildUpdatePasswordQuery matches on both the user id and the credential
// read beforehand, so a concurrent password change produces zero affected
// rows instead of clobbering it.
func buildUpdatePasswordQuery(userID int64, currentHash string, newHash string, touch bool) (string, []any, error) {
	q := psql.Update(models.User{}.TableName()).
		Set("password", newHash)

	if touch {
		q = q.Set("updated_at", sq.Expr("now()"))
	}

	return q.Where(sq.Eq{"user_id": userID, "password": currentHash}).ToSql()
}

func buildUpdateEmailQuery(userID int64, newEmail string, touch bool) (string, []any, error) {
	q := psql.Update(models.User{}.TableName()).
		Set("email", newEmail)

	if touch {
		q = q.Set("updated_at", sq.Expr("now()"))
	}

	return q.Where(sq.Eq{"user_id": userID}).ToSql()
}

func buildDeleteUserQuery(userID int64) (string, []any, error) {
	return psql.Delete(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildGetSettingsQuery(userID int64) (string, []any, error) {
	return psql.Select("settings").
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildUpdateSettingsQuery merges the provided flags into the stored JSONB
// object with the || operator, leaving keys absent from the request intact.
func buildUpdateSettingsQuery(userID int64, settings models.Settings, touch bool) (string, []any, error) {
	raw, err := settingsJSON(settings)
	if err != nil {
		return "", nil, err
	}

	q := psql.Update(models.User{}.TableName()).
		Set("settings", sq.Expr("settings || ?::jsonb", raw))

	if touch {
		q = q.Set("updated_at", sq.Expr("now()"))
	}

	return q.Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING settings").
		ToSql()
}

func buildInsertVaultQuery(vault models.Vault) (string, []any, error) {
	return psql.Insert(vault.TableName()).
		Columns("user_id", "salt", "data").
		Values(vault.UserID, vault.Salt, vault.Data).
		Suffix("RETURNING vault_id, user_id, salt, data, version, created_at, updated_at").
		ToSql()
}

func buildFindVaultByUserQuery(userID int64) (string, []any, error) {
	return psql.Select(vaultColumns...).
		From(models.Vault{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildUpdateVaultQuery(userID int64, data string, touch bool) (string, []any, error) {
	q := psql.Update(models.Vault{}.TableName()).
		Set("data", data).
		Set("version", sq.Expr("version + 1"))

	if touch {
		q = q.Set("updated_at", sq.Expr("now()"))
	}

	return q.Where(sq.Eq{"user_id": userID}).ToSql()
}
