// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/utils"
	"github.com/MKhiriev/go-vault-keeper/models"
)

func (h *Handler) getVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	vault, err := h.services.VaultService.GetVault(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("vault lookup failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.VaultResponse{Vault: vault.Data, Salt: vault.Salt, Version: vault.Version}, http.StatusOK)
}

func (h *Handler) updateVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.VaultUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("vault update request rejected by validator")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.services.VaultService.UpdateVault(ctx, userID, req.EncryptedVault)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("vault update failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	if !updated {
		log.Warn().Int64("user_id", userID).Msg("no vault to update")
		http.Error(w, "no vault found for user", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Vault updated"}, http.StatusOK)
}
