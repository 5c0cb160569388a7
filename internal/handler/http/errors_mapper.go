package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-vault-keeper/internal/service"
	"github.com/MKhiriev/go-vault-keeper/internal/store"
	"github.com/MKhiriev/go-vault-keeper/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	ErrSubjectMismatch: http.StatusForbidden,

	validators.ErrUnknownSettingKey:   http.StatusBadRequest,
	validators.ErrInvalidSettingValue: http.StatusBadRequest,
	validators.ErrEmptySettings:       http.StatusBadRequest,
	validators.ErrInvalidEmail:        http.StatusBadRequest,
	validators.ErrEmptyPassword:       http.StatusBadRequest,
	validators.ErrInvalidUserID:       http.StatusBadRequest,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrVaultAlreadyExists: http.StatusConflict,
	store.ErrNoVaultWasFound:    http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
