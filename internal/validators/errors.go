package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrUnknownSettingKey      = errors.New("unknown setting key")
	ErrInvalidSettingValue    = errors.New("invalid setting value")
	ErrEmptySettings          = errors.New("settings cannot be empty")
	ErrInvalidEmail           = errors.New("invalid email")
	ErrEmptyPassword          = errors.New("password is required")
	ErrInvalidUserID          = errors.New("invalid user ID")
	ErrPasswordsAreIdentical  = errors.New("new password must differ from the current one")
	ErrEmptyValidationPayload = errors.New("nothing to validate")
)
