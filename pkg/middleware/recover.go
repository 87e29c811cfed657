package middleware

import (
	"errors"
	"net/http"

	"taxi-dispatch/pkg/utils"

	"go.uber.org/zap"
)

// Recover turns a panic in a handler into a 500 envelope carrying the
// request id, so the log line can be found from the dashboard.
// http.ErrAbortHandler is re-raised for net/http to handle.
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				requestID := utils.GetRequestID(r.Context())
				logger.Error("Handler panicked",
					zap.Any("panic", rec),
					zap.String("request_id", requestID),
					zap.String("route", r.Method+" "+r.URL.Path),
					zap.Stack("stack"),
				)

				msg := "Internal server error"
				if requestID != "" {
					msg += " (request " + requestID + ")"
				}
				utils.ResponseInternalError(w, msg)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
