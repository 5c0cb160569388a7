package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.cors.origin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		AllowCredentials: h.cors.credentials,
	}))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users", h.register)
		r.Post("/api/users/login", h.login)
		r.Post("/api/users/validate", h.validatePassword)
	})

	// routes guarded by the auth middleware
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users/settings/{userID}", h.getSettings)
		r.Post("/api/users/settings", h.updateSettings)

		r.Put("/api/users/password", h.changePassword)
		r.Put("/api/users/email", h.changeEmail)
		r.Delete("/api/users", h.deleteUser)

		r.Get("/api/vault", h.getVault)
		r.Put("/api/vault", h.updateVault)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
