package wire

import (
	"net/http"

	"taxi-dispatch/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAdmin(r chi.Router, adminHandler *adaptor.AdminHandler, authed, admin func(http.Handler) http.Handler) {
	// ==================== ADMIN ROUTES ====================
	// Require both authentication AND the isAdmin claim
	r.Route("/api/users", func(r chi.Router) {
		r.Use(authed)
		r.Use(admin)

		r.Get("/", adminHandler.ListUsers)
		r.Post("/", adminHandler.CreateUser)
		r.Patch("/{id}", adminHandler.UpdateUser)
		r.Delete("/{id}", adminHandler.DeleteUser)
		r.Post("/{id}/temp-password", adminHandler.SetTempPassword)
	})

	r.Route("/api/audit-logs", func(r chi.Router) {
		r.Use(authed)
		r.Use(admin)

		// GET /api/audit-logs?skip=&take=&action=&tableName=&userId=
		r.Get("/", adminHandler.AuditLogs)
		r.Get("/stats", adminHandler.AuditStats)
	})
}
