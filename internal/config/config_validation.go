// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// applyDefaults fills in the fields that have sensible defaults when no
// source provided a value. Key locations and the DSN deliberately have no
// defaults: the system must not start with guessed key material.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = "0.0.0.0:4000"
	}
	if cfg.Server.CORSOrigin == "" {
		cfg.Server.CORSOrigin = "http://localhost:3000"
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = "go-vault-keeper"
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = time.Hour
	}
	if cfg.Cookie.Name == "" {
		cfg.Cookie.Name = "token"
	}
	if cfg.Cookie.Domain == "" {
		cfg.Cookie.Domain = "localhost"
	}
}

// validate checks that the final merged [StructuredConfig] satisfies the
// startup invariants: the system cannot run without a database and a
// signing keypair.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.PrivateKeyLocation == "" || cfg.App.PublicKeyLocation == "" {
		return ErrInvalidKeyConfigs
	}

	if cfg.App.PrivateKeyLocation == cfg.App.PublicKeyLocation {
		return ErrInvalidKeyConfigs
	}

	switch cfg.Cookie.SameSite {
	case "", "lax", "strict", "none":
	default:
		return ErrInvalidCookieConfigs
	}

	return nil
}
