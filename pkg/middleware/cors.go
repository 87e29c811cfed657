package middleware

import (
	"net/http"
	"slices"

	"github.com/gorilla/handlers"
)

// CORS tags responses for the allowed origins and answers preflights with
// 204. "*" (or an empty list) allows any origin without credentials.
func CORS(origins []string) func(http.Handler) http.Handler {
	wildcard := len(origins) == 0 || slices.Contains(origins, "*")
	if wildcard {
		origins = []string{"*"}
	}

	opts := []handlers.CORSOption{
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type", RequestIDHeader}),
		handlers.ExposedHeaders([]string{RequestIDHeader, "X-Filter-Signature", "Content-Disposition"}),
		handlers.MaxAge(600),
		handlers.OptionStatusCode(http.StatusNoContent),
	}
	if !wildcard {
		opts = append(opts, handlers.AllowCredentials())
	}

	return handlers.CORS(opts...)
}
