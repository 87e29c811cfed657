package middleware

import (
	"errors"
	"net/http"
	"time"

	"taxi-dispatch/pkg/token"
	"taxi-dispatch/pkg/utils"

	"go.uber.org/zap"
)

// Auth requires a decodable, unexpired bearer token from the Authorization
// header or the session cookie. Any failure clears the cookie so the browser
// lands back on the login view.
func Auth(cookieName string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := token.FromRequest(r, cookieName)
			if err != nil {
				utils.ClearTokenCookie(w, cookieName)
				if errors.Is(err, token.ErrBadAuthScheme) {
					utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
					return
				}
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			claims, err := token.Valid(raw, time.Now())
			if err != nil {
				logger.Warn("Rejected token",
					zap.String("path", r.URL.Path),
					zap.Error(err),
				)
				utils.ClearTokenCookie(w, cookieName)
				if errors.Is(err, token.ErrExpired) {
					utils.ResponseUnauthorized(w, "Session expired, please log in again")
					return
				}
				utils.ResponseUnauthorized(w, "Invalid token")
				return
			}

			ctx := utils.SetTokenContext(r.Context(), raw)
			ctx = token.InjectClaims(ctx, claims)
			token.RecordCaller(ctx, claims.Subject)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin lets through callers whose token carries isAdmin. Must run after Auth.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := token.FromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if !claims.IsAdmin {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("user_id", claims.Subject),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
