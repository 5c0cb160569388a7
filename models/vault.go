package models

import "time"

// Vault is the per-user ciphertext container. The server never interprets
// Data: it is encrypted and decrypted exclusively on the client, and stored
// here as an opaque string.
type Vault struct {
	// VaultID is the internal unique identifier of the vault record.
	VaultID int64 `json:"-"`

	// UserID references the owning user. At most one vault exists per user;
	// the constraint is enforced by the persistence layer.
	UserID int64 `json:"-"`

	// Salt is the key-derivation salt issued once at vault creation and
	// immutable thereafter. It is used client-side only and is never applied
	// to password hashing on the server.
	Salt string `json:"salt"`

	// Data is the opaque ciphertext blob. Empty at creation; replaced
	// wholesale on every update.
	Data string `json:"data"`

	// Version is incremented on every successful update. Concurrent updates
	// are last-write-wins; the counter lets clients detect a clobbered write.
	Version int64 `json:"version"`

	// CreatedAt is the timestamp when the vault was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last data replacement.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Vault model.
func (v Vault) TableName() string {
	return "vaults"
}
