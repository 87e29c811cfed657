package adaptor

import (
	"context"
	"errors"
	"net/http"

	"taxi-dispatch/internal/usecase"
	"taxi-dispatch/pkg/backend"
	"taxi-dispatch/pkg/utils"

	"go.uber.org/zap"
)

const msgNoResponse = "No response from server. Please check your connection."

// responder is embedded by every handler so backend failures map to the
// same statuses everywhere.
type responder struct {
	log        *zap.Logger
	cookieName string
}

func (h responder) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var statusErr *backend.StatusError

	if ve, ok := usecase.AsValidation(err); ok {
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		msg := ve.Msg
		if msg == "" {
			msg = ve.Error()
		}
		var fields any
		if len(ve.Fields) > 0 {
			fields = ve.Fields
		}
		utils.ResponseBadRequest(w, msg, fields)
		return
	}

	switch {
	case errors.Is(err, backend.ErrUnauthorized):
		h.log.Warn(operation+" failed - backend rejected token",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ClearTokenCookie(w, h.cookieName)
		utils.ResponseUnauthorized(w, "Session expired, please log in again")

	case errors.As(err, &statusErr):
		fields := []zap.Field{
			zap.Error(err),
			zap.String("operation", operation),
			zap.Int("status", statusErr.StatusCode),
		}
		if statusErr.StatusCode >= http.StatusInternalServerError {
			h.log.Error(operation+" failed - backend error", fields...)
		} else {
			h.log.Warn(operation+" failed - rejected by backend", fields...)
		}
		utils.ResponseError(w, statusErr.StatusCode, statusErr.Message)

	case errors.Is(err, backend.ErrNoResponse):
		h.log.Error(operation+" failed - backend unreachable",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseError(w, http.StatusBadGateway, msgNoResponse)

	case errors.Is(err, context.Canceled):
		h.log.Debug(operation+" abandoned by client", zap.String("operation", operation))

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
