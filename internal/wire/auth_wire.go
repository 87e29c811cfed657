package wire

import (
	"net/http"

	"taxi-dispatch/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, authed func(http.Handler) http.Handler) {
	r.Route("/api/auth", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)

		// ==================== PROTECTED ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(authed)

			// GET /api/auth/me - identity decoded from the token, no backend call
			r.Get("/me", authHandler.Me)
			r.Get("/profile", authHandler.Profile)
			r.Post("/change-password", authHandler.ChangePassword)
		})
	})

	// First-run setup, public
	r.Get("/api/setup/status", authHandler.SetupStatus)
	r.Post("/api/setup/create-admin", authHandler.CreateAdmin)
}
