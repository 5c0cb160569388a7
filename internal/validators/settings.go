package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-keeper/models"
)

// Whitelisted preference flags. Any key outside this set is rejected no
// matter its value.
const (
	// SettingAutoLock controls automatic locking of the client-side vault UI.
	SettingAutoLock = "autoLock"

	// SettingRaw toggles raw (unformatted) display of vault entries.
	SettingRaw = "raw"
)

// allowedSettingKeys is the exhaustive set of preference flags accepted by
// the validator.
var allowedSettingKeys = map[string]struct{}{
	SettingAutoLock: {},
	SettingRaw:      {},
}

type settingsValidator struct{}

// NewSettingsValidator constructs the whitelist validator for user
// preference flags.
func NewSettingsValidator() SettingsValidator {
	return &settingsValidator{}
}

// ValidateSettings implements [SettingsValidator].
//
// The wire contract is deliberately strict: values must be the literal
// strings "true" or "false". Anything else, including "True", "1", or an
// empty string, is rejected so that clients cannot rely on lenient coercion.
func (v *settingsValidator) ValidateSettings(_ context.Context, raw map[string]string) (models.Settings, error) {
	if len(raw) == 0 {
		return nil, ErrEmptySettings
	}

	settings := make(models.Settings, len(raw))

	for key, value := range raw {
		if _, ok := allowedSettingKeys[key]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSettingKey, key)
		}

		switch value {
		case "true":
			settings[key] = true
		case "false":
			settings[key] = false
		default:
			return nil, fmt.Errorf("%w: %q=%q", ErrInvalidSettingValue, key, value)
		}
	}

	return settings, nil
}
