package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"taxi-dispatch/internal/usecase"
	"taxi-dispatch/pkg/backend"
	"taxi-dispatch/pkg/utils"

	"go.uber.org/zap"
)

func TestHandleServiceError(t *testing.T) {
	h := responder{log: zap.NewNop(), cookieName: "taxisToken"}

	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantError   string
		clearCookie bool
	}{
		{"validation", &usecase.ValidationError{Field: "reference", Msg: usecase.MsgReferenceRequired}, http.StatusBadRequest, usecase.MsgReferenceRequired, false},
		{"backend unauthorized", &backend.StatusError{StatusCode: http.StatusUnauthorized, Message: "jwt expired"}, http.StatusUnauthorized, "Session expired, please log in again", true},
		{"backend conflict", fmt.Errorf("allocate: %w", &backend.StatusError{StatusCode: http.StatusConflict, Message: "Vehicle busy"}), http.StatusConflict, "Vehicle busy", false},
		{"no response", fmt.Errorf("%w: GET /bookings: dial tcp", backend.ErrNoResponse), http.StatusBadGateway, msgNoResponse, false},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Internal server error", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.handleServiceError(rec, tt.err, "test")

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			var resp utils.Response
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Success || resp.Error != tt.wantError {
				t.Fatalf("unexpected body %+v", resp)
			}
			cleared := rec.Header().Get("Set-Cookie") != ""
			if cleared != tt.clearCookie {
				t.Fatalf("cookie cleared = %v, want %v", cleared, tt.clearCookie)
			}
		})
	}
}

func TestHandleServiceError_CanceledWritesNothing(t *testing.T) {
	h := responder{log: zap.NewNop(), cookieName: "taxisToken"}
	rec := httptest.NewRecorder()
	h.handleServiceError(rec, fmt.Errorf("fetch: %w", context.Canceled), "test")

	if rec.Body.Len() != 0 {
		t.Fatalf("expected no body, got %q", rec.Body.String())
	}
}

func TestSetFilterSignature_IgnoresValueOrder(t *testing.T) {
	sig := func(target string) string {
		rec := httptest.NewRecorder()
		setFilterSignature(rec, httptest.NewRequest(http.MethodGet, target, nil))
		return rec.Header().Get(FilterSignatureHeader)
	}

	if sig("/x?status=a&status=b") != sig("/x?status=b&status=a&perPage=50") {
		t.Fatalf("value order or perPage changed the signature")
	}
	if sig("/x?status=a") == sig("/x?bookingType=a") {
		t.Fatalf("key must be part of the signature")
	}
}
