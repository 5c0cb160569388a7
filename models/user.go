package models

import "time"

// User represents an account entity used for authentication and vault
// ownership. It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user, assigned by the
	// persistence layer at creation time.
	UserID int64 `json:"-"`

	// Email is the unique user identifier used during authentication.
	// Uniqueness is enforced case-insensitively at the persistence layer.
	Email string `json:"email"`

	// Password stores the argon2id-encoded representation of the user's
	// client-side password hash. This value MUST be a hasher output, never
	// the raw credential, and must only be compared through the hasher's
	// verify operation.
	Password string `json:"-"`

	// Settings holds the user's whitelisted preference flags. Absent keys
	// carry no implicit default; clients must handle absence.
	Settings Settings `json:"settings,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last mutation of the account.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Settings is the validated, boolean-typed form of user preferences as
// stored in the database. The wire contract uses the literal strings
// "true"/"false"; the conversion happens in the validators package.
type Settings map[string]bool
