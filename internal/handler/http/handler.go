package http

import (
	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/service"
	"github.com/MKhiriev/go-vault-keeper/internal/validators"
)

type Handler struct {
	services *service.Services

	// validator gates every inbound request body before it reaches the
	// services.
	validator validators.Validator

	// cookie describes the session cookie attached to successful
	// registrations and logins.
	cookie config.Cookie

	// cors is the browser-facing cross-origin policy.
	cors struct {
		origin      string
		credentials bool
	}

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	h := &Handler{
		services:  services,
		validator: validators.NewRequestValidator(),
		cookie:    cfg.Cookie,
		logger:    logger,
	}
	h.cors.origin = cfg.Server.CORSOrigin
	h.cors.credentials = cfg.Server.CORSCredentials

	return h
}
