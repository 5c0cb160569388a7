package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/service"
	"github.com/MKhiriev/go-vault-keeper/internal/store"
	"github.com/MKhiriev/go-vault-keeper/internal/utils"
	"github.com/MKhiriev/go-vault-keeper/models"
)

// subjectMatches reports whether the authenticated token subject is the same
// user the request addresses. Authenticated endpoints that carry an explicit
// user id must refuse to act on someone else's account.
func subjectMatches(r *http.Request, userID int64) bool {
	tokenUserID, ok := utils.GetUserIDFromContext(r.Context())
	return ok && tokenUserID == userID
}

func (h *Handler) validatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ValidatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("password validation request rejected by validator")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	valid, err := h.services.UserService.ValidatePassword(ctx, req.UserID, req.Password)
	if err != nil {
		log.Err(err).Msg("password validation failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	if !valid {
		utils.WriteJSON(w, models.MessageResponse{Message: "Invalid password"}, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Password is valid"}, http.StatusOK)
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid user id in settings path")
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	if !subjectMatches(r, userID) {
		log.Warn().Int64("requested_user_id", userID).Msg("subject mismatch on settings read")
		http.Error(w, ErrSubjectMismatch.Error(), http.StatusForbidden)
		return
	}

	settings, err := h.services.UserService.GetSettings(ctx, userID)
	if err != nil {
		log.Err(err).Msg("settings lookup failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, settings, http.StatusOK)
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if !subjectMatches(r, req.UserID) {
		log.Warn().Int64("requested_user_id", req.UserID).Msg("subject mismatch on settings update")
		http.Error(w, ErrSubjectMismatch.Error(), http.StatusForbidden)
		return
	}

	merged, err := h.services.UserService.UpdateSettings(ctx, req.UserID, req.Settings)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			log.Warn().Err(err).Msg("settings rejected")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		log.Err(err).Msg("settings update failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, merged, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("password change request rejected by validator")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.UserService.ChangePassword(ctx, userID, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Warn().Int64("user_id", userID).Msg("wrong current password")
			http.Error(w, "invalid current password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("password change failed")
			http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Password updated"}, http.StatusOK)
}

func (h *Handler) changeEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.ChangeEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("email change request rejected by validator")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.UserService.ChangeEmail(ctx, userID, req.NewEmail); err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Warn().Int64("user_id", userID).Msg("email already exists")
			http.Error(w, "email already exists", http.StatusConflict)
			return
		}

		log.Err(err).Msg("email change failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Email updated"}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.UserService.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("account deletion failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	// vault rows cascade with the user
	w.WriteHeader(http.StatusNoContent)
}
