package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"taxi-dispatch/pkg/token"
	"taxi-dispatch/pkg/utils"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

func sign(t *testing.T, claims token.Claims) string {
	t.Helper()
	raw, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return raw
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp utils.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.Error
}

func TestAuth(t *testing.T) {
	var seen *token.Claims
	var seenToken string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = token.FromContext(r.Context())
		seenToken, _ = utils.GetTokenFromContext(r.Context())
	})
	h := Auth("taxisToken", zap.NewNop())(next)

	tests := []struct {
		name    string
		header  string
		wantErr string
	}{
		{"missing", "", "Missing authorization token"},
		{"wrong scheme", "Basic abc", "Invalid token format. Use: Bearer <token>"},
		{"garbage", "Bearer not.a.jwt", "Invalid token"},
		{"expired", "Bearer " + sign(t, token.Claims{RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Minute)),
		}}), "Session expired, please log in again"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
			if got := errorOf(t, rec); got != tt.wantErr {
				t.Fatalf("error = %q, want %q", got, tt.wantErr)
			}
			if !strings.Contains(rec.Header().Get("Set-Cookie"), "taxisToken=;") {
				t.Fatalf("cookie not cleared: %q", rec.Header().Get("Set-Cookie"))
			}
		})
	}

	raw := sign(t, token.Claims{Email: "a@b.c", RegisteredClaims: jwtlib.RegisteredClaims{Subject: "u1"}})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || seen == nil || seen.Subject != "u1" || seenToken != raw {
		t.Fatalf("valid token not passed through: code %d claims %+v", rec.Code, seen)
	}
}

func TestAdmin(t *testing.T) {
	h := Admin(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	serve := func(claims *token.Claims) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if claims != nil {
			req = req.WithContext(token.InjectClaims(req.Context(), claims))
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := serve(nil); code != http.StatusUnauthorized {
		t.Fatalf("no claims: expected 401, got %d", code)
	}
	if code := serve(&token.Claims{}); code != http.StatusForbidden {
		t.Fatalf("non-admin: expected 403, got %d", code)
	}
	if code := serve(&token.Claims{IsAdmin: true}); code != http.StatusTeapot {
		t.Fatalf("admin: expected pass-through, got %d", code)
	}
}

func TestRequestID_ReplacesOversizedHeader(t *testing.T) {
	var got string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = utils.GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", 200))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if len(got) != 36 || rec.Header().Get(RequestIDHeader) != got {
		t.Fatalf("expected a fresh uuid, got %q", got)
	}
}

func TestCORS_UnlistedOrigin(t *testing.T) {
	h := CORS([]string{"https://dispatch.example.com"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("unlisted origin was allowed")
	}
}

func TestCORS_Wildcard(t *testing.T) {
	called := false
	h := CORS([]string{"*"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://anywhere.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if !called {
		t.Fatalf("handler not called")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}
	if rec.Header().Get("Access-Control-Allow-Credentials") != "" {
		t.Fatalf("credentials advertised for wildcard origin")
	}
}

func TestRecover_AnswersWithRequestID(t *testing.T) {
	h := RequestID()(Recover(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("nil map")
	})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if got := errorOf(t, rec); got != "Internal server error (request abc)" {
		t.Fatalf("unexpected error %q", got)
	}
}
