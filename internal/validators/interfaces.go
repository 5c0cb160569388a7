// SPDX-License-Identifier: Apache-2.0

// Package validators holds the input validation rules enforced before any
// request reaches the service layer.
//
// Two validation surfaces exist:
//   - Validator: generic interface that dispatches on the dynamic type of
//     inbound request models (registration, login, vault updates).
//   - SettingsValidator: the whitelist gate for user preference flags, which
//     additionally converts the string-typed wire form into models.Settings.
//
// Validation logic lives here rather than in handlers so that every
// transport shares the same rules and the services never see raw,
// unchecked input.
package validators

import (
	"context"

	"github.com/MKhiriev/go-vault-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/validators_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// SettingsValidator gates user preference updates against the whitelist of
// known flags and converts the wire form into the stored form.
type SettingsValidator interface {

	// ValidateSettings checks every key against the whitelist and every
	// value against the literal strings "true" and "false". It fails on the
	// first offending pair, naming it in the returned error.
	ValidateSettings(ctx context.Context, raw map[string]string) (models.Settings, error)
}
