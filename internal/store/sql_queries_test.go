// SPDX-License-Identifier: Apache-2.0

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-vault-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildInsertUserQuery(t *testing.T) {
	user := models.User{
		Email:    "john@example.com",
		Password: "$argon2id$hash",
		Settings: models.Settings{"autoLock": true},
	}

	query, args, err := buildInsertUserQuery(user)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into users")
	require.Contains(t, q, "email")
	require.Contains(t, q, "password")
	require.Contains(t, q, "settings")
	require.Contains(t, q, "returning")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")

	require.Len(t, args, 3)
	assert.Equal(t, user.Email, args[0])
	assert.Equal(t, user.Password, args[1])
	assert.JSONEq(t, `{"autoLock":true}`, string(args[2].([]byte)))
}

func Test_buildInsertUserQuery_NilSettings(t *testing.T) {
	query, args, err := buildInsertUserQuery(models.User{Email: "a@b.c"})
	require.NoError(t, err)
	require.Contains(t, query, "$3")

	// nil settings must persist as an empty object, not SQL NULL
	require.Len(t, args, 3)
	assert.Equal(t, "{}", string(args[2].([]byte)))
}

func Test_buildFindUserByEmailQuery(t *testing.T) {
	query, args, err := buildFindUserByEmailQuery("John@Example.com")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "select")
	require.Contains(t, q, "from users")
	require.Contains(t, q, "lower(email) = lower($1)")

	// columns presence (subset / key columns)
	for _, c := range []string{"user_id", "email", "password", "settings", "created_at", "updated_at"} {
		require.Contains(t, q, c)
	}

	require.Len(t, args, 1)
	assert.Equal(t, "John@Example.com", args[0])
}

func Test_buildFindUserByIDQuery(t *testing.T) {
	query, args, err := buildFindUserByIDQuery(42)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from users")
	require.Contains(t, q, "user_id = $1")

	require.Len(t, args, 1)
	assert.Equal(t, int64(42), args[0])
}

func Test_buildUpdatePasswordQuery(t *testing.T) {
	tests := []struct {
		name      string
		touch     bool
		wantTouch bool
	}{
		{name: "with timestamps", touch: true, wantTouch: true},
		{name: "without timestamps", touch: false, wantTouch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdatePasswordQuery(42, "old-hash", "new-hash", tt.touch)
			require.NoError(t, err)

			q := strings.ToLower(query)
			require.Contains(t, q, "update users")
			require.Contains(t, q, "set password")
			require.Contains(t, q, "where")

			// the credential read beforehand guards the update
			require.Contains(t, q, "password = $")
			require.Contains(t, q, "user_id = $")

			if tt.wantTouch {
				assert.Contains(t, q, "updated_at = now()")
				require.Len(t, args, 3)
			} else {
				assert.NotContains(t, q, "updated_at")
				require.Len(t, args, 3)
			}

			assert.Equal(t, "new-hash", args[0])
		})
	}
}

func Test_buildUpdateSettingsQuery(t *testing.T) {
	query, args, err := buildUpdateSettingsQuery(42, models.Settings{"raw": true}, true)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "update users")
	require.Contains(t, q, "settings || $1::jsonb")
	require.Contains(t, q, "updated_at = now()")
	require.Contains(t, q, "returning settings")

	require.Len(t, args, 2)
	assert.JSONEq(t, `{"raw":true}`, string(args[0].([]byte)))
	assert.Equal(t, int64(42), args[1])
}

func Test_buildGetSettingsQuery(t *testing.T) {
	query, args, err := buildGetSettingsQuery(7)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "select settings")
	require.Contains(t, q, "from users")
	require.Contains(t, q, "user_id = $1")

	require.Len(t, args, 1)
	assert.Equal(t, int64(7), args[0])
}

func Test_buildDeleteUserQuery(t *testing.T) {
	query, args, err := buildDeleteUserQuery(7)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from users")
	require.Contains(t, q, "user_id = $1")

	require.Len(t, args, 1)
	assert.Equal(t, int64(7), args[0])
}

func Test_buildInsertVaultQuery(t *testing.T) {
	vault := models.Vault{UserID: 42, Salt: "aa11", Data: ""}

	query, args, err := buildInsertVaultQuery(vault)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into vaults")
	require.Contains(t, q, "user_id")
	require.Contains(t, q, "salt")
	require.Contains(t, q, "data")
	require.Contains(t, q, "returning")
	require.Contains(t, q, "version")

	require.Len(t, args, 3)
	assert.Equal(t, int64(42), args[0])
	assert.Equal(t, "aa11", args[1])
	assert.Equal(t, "", args[2])
}

func Test_buildFindVaultByUserQuery(t *testing.T) {
	query, args, err := buildFindVaultByUserQuery(42)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from vaults")
	require.Contains(t, q, "user_id = $1")

	for _, c := range []string{"vault_id", "salt", "data", "version", "created_at", "updated_at"} {
		require.Contains(t, q, c)
	}

	require.Len(t, args, 1)
	assert.Equal(t, int64(42), args[0])
}

func Test_buildUpdateVaultQuery(t *testing.T) {
	tests := []struct {
		name  string
		touch bool
	}{
		{name: "with timestamps", touch: true},
		{name: "without timestamps", touch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateVaultQuery(42, "ciphertext", tt.touch)
			require.NoError(t, err)

			q := strings.ToLower(query)
			require.Contains(t, q, "update vaults")
			require.Contains(t, q, "data = $1")
			require.Contains(t, q, "version = version + 1")
			require.Contains(t, q, "user_id = $")

			if tt.touch {
				assert.Contains(t, q, "updated_at = now()")
			} else {
				assert.NotContains(t, q, "updated_at")
			}

			require.Len(t, args, 2)
			assert.Equal(t, "ciphertext", args[0])
			assert.Equal(t, int64(42), args[1])
		})
	}
}
