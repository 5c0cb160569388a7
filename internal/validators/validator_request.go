package validators

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/MKhiriev/go-vault-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldEmail targets the email identifier of an auth request.
	FieldEmail = "email"

	// FieldPassword targets the client-side password hash of an auth request.
	FieldPassword = "password"

	// FieldUserID targets the owner identifier of a request.
	FieldUserID = "user_id"

	// FieldEncryptedVault targets the opaque ciphertext blob of a vault
	// update request.
	FieldEncryptedVault = "encrypted_vault"
)

// RequestValidator implements the Validator interface for the inbound HTTP
// request models. Both value and pointer forms of every model are accepted.
type RequestValidator struct {
}

// NewRequestValidator constructs a new RequestValidator
// and returns it as the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Supported types:
//   - models.RegisterRequest / *models.RegisterRequest
//   - models.LoginRequest / *models.LoginRequest
//   - models.ValidatePasswordRequest / *models.ValidatePasswordRequest
//   - models.ChangePasswordRequest / *models.ChangePasswordRequest
//   - models.ChangeEmailRequest / *models.ChangeEmailRequest
//   - models.VaultUpdateRequest / *models.VaultUpdateRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if obj == nil {
		return ErrEmptyValidationPayload
	}

	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateCredentials(value.Email, value.HashedPassword, fields...)
	case *models.RegisterRequest:
		return v.validateCredentials(value.Email, value.HashedPassword, fields...)
	case models.LoginRequest:
		return v.validateCredentials(value.Email, value.HashedPassword, fields...)
	case *models.LoginRequest:
		return v.validateCredentials(value.Email, value.HashedPassword, fields...)
	case models.ValidatePasswordRequest:
		return v.validatePasswordCheck(value)
	case *models.ValidatePasswordRequest:
		return v.validatePasswordCheck(*value)
	case models.ChangePasswordRequest:
		return v.validatePasswordChange(value)
	case *models.ChangePasswordRequest:
		return v.validatePasswordChange(*value)
	case models.ChangeEmailRequest:
		return v.validateEmail(value.NewEmail)
	case *models.ChangeEmailRequest:
		return v.validateEmail(value.NewEmail)
	case models.VaultUpdateRequest:
		return v.validateVaultUpdate(value)
	case *models.VaultUpdateRequest:
		return v.validateVaultUpdate(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateCredentials(email string, hashedPassword string, fields ...string) error {
	checkEmail, checkPassword := true, true
	if len(fields) > 0 {
		checkEmail, checkPassword = false, false
		for _, field := range fields {
			switch field {
			case FieldEmail:
				checkEmail = true
			case FieldPassword:
				checkPassword = true
			}
		}
	}

	if checkEmail {
		if err := v.validateEmail(email); err != nil {
			return err
		}
	}

	if checkPassword && hashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

func (v *RequestValidator) validatePasswordCheck(req models.ValidatePasswordRequest) error {
	if req.UserID <= 0 {
		return ErrInvalidUserID
	}
	if req.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

func (v *RequestValidator) validatePasswordChange(req models.ChangePasswordRequest) error {
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return ErrEmptyPassword
	}
	if req.CurrentPassword == req.NewPassword {
		return ErrPasswordsAreIdentical
	}
	return nil
}

func (v *RequestValidator) validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: empty", ErrInvalidEmail)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}

	// Reject the "Name <addr>" form; only the bare address is accepted.
	if addr.Address != email {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}

	return nil
}

// The ciphertext is opaque to the server and an empty value clears the
// vault, so any payload passes.
func (v *RequestValidator) validateVaultUpdate(models.VaultUpdateRequest) error {
	return nil
}
