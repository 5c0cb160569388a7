package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidKeyConfigs indicates missing or obviously misconfigured RSA
	// key locations (for example, both locations pointing at the same file).
	ErrInvalidKeyConfigs = errors.New("invalid key configuration")
	// ErrInvalidCookieConfigs indicates an unsupported cookie attribute
	// value (for example, an unknown SameSite mode).
	ErrInvalidCookieConfigs = errors.New("invalid cookie configuration")
)
