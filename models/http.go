package models

// RegisterRequest is the body of POST /api/users. HashedPassword is the
// client-side password hash; the server re-hashes it with argon2id before
// storage so the raw value is never persisted.
type RegisterRequest struct {
	Email          string `json:"email"`
	HashedPassword string `json:"hashedPassword"`
}

// LoginRequest is the body of POST /api/users/login. It carries the same
// credential pair as registration.
type LoginRequest struct {
	Email          string `json:"email"`
	HashedPassword string `json:"hashedPassword"`
}

// AuthResponse is returned by both registration and login. Vault is the
// opaque ciphertext blob (empty for a fresh account) and Salt is the
// key-derivation salt issued at vault creation.
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	Vault       string `json:"vault"`
	Salt        string `json:"salt"`
}

// ValidatePasswordRequest is the body of POST /api/users/validate.
// The user is addressed explicitly because the endpoint serves re-validation
// flows that happen outside an authenticated session.
type ValidatePasswordRequest struct {
	UserID   int64  `json:"userId,string"`
	Password string `json:"password"`
}

// SettingsRequest is the body of POST /api/users/settings. Settings values
// are the literal strings "true"/"false" — a deliberate string-typed wire
// contract preserved from the client protocol. Conversion to booleans
// happens after validation.
type SettingsRequest struct {
	UserID   int64             `json:"userId,string"`
	Settings map[string]string `json:"settings"`
}

// ChangePasswordRequest is the body of PUT /api/users/password. Both values
// are client-side hashes; CurrentPassword is verified against the stored
// argon2id hash before NewPassword is accepted.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangeEmailRequest is the body of PUT /api/users/email.
type ChangeEmailRequest struct {
	NewEmail string `json:"newEmail"`
}

// VaultUpdateRequest is the body of PUT /api/vault. EncryptedVault replaces
// the stored ciphertext wholesale; no merge semantics exist, and an empty
// value clears the vault.
type VaultUpdateRequest struct {
	EncryptedVault string `json:"encryptedVault"`
}

// VaultResponse is returned by GET /api/vault.
type VaultResponse struct {
	Vault   string `json:"vault"`
	Salt    string `json:"salt"`
	Version int64  `json:"version"`
}

// MessageResponse is a generic `{message}` body used by validation and
// error responses.
type MessageResponse struct {
	Message string `json:"message"`
}
