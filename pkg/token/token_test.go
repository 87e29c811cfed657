package token

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

func sign(t *testing.T, claims *Claims) string {
	t.Helper()
	raw, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("not-our-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

func TestDecode_ReadsPayloadWithoutVerifying(t *testing.T) {
	raw := sign(t, &Claims{
		Email:   "ops@example.com",
		Name:    "Ops Desk",
		IsAdmin: true,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	user, err := UserFromToken(raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.ID != "user-1" || user.Email != "ops@example.com" || !user.IsAdmin {
		t.Fatalf("unexpected user %+v", user)
	}
}

func TestDecode_Malformed(t *testing.T) {
	if _, err := Decode("not.a.jwt"); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
	if _, err := Decode("  "); !errors.Is(err, ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
}

func TestIsExpired(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	expired := sign(t, &Claims{RegisteredClaims: jwtlib.RegisteredClaims{
		ExpiresAt: jwtlib.NewNumericDate(now.Add(-time.Second)),
	}})
	fresh := sign(t, &Claims{RegisteredClaims: jwtlib.RegisteredClaims{
		ExpiresAt: jwtlib.NewNumericDate(now.Add(time.Minute)),
	}})
	noExp := sign(t, &Claims{Email: "a@b.c"})

	if !IsExpired(expired, now) {
		t.Fatalf("expected past exp to be expired")
	}
	if IsExpired(fresh, now) {
		t.Fatalf("expected future exp to be valid")
	}
	if IsExpired(noExp, now) {
		t.Fatalf("token without exp should not expire")
	}
	if !IsExpired("garbage", now) {
		t.Fatalf("undecodable token should count as expired")
	}

	if _, err := Valid(expired, now); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestClaimsExpired_SubSecond(t *testing.T) {
	exp := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	claims := &Claims{RegisteredClaims: jwtlib.RegisteredClaims{ExpiresAt: jwtlib.NewNumericDate(exp)}}

	if claims.Expired(exp) {
		t.Fatalf("token should still be live at its exp instant")
	}
	if !claims.Expired(exp.Add(500 * time.Millisecond)) {
		t.Fatalf("token should be expired half a second after exp")
	}
	if (&Claims{}).Expired(exp) {
		t.Fatalf("token without exp should never expire")
	}
}

func TestFromRequest_HeaderThenCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	r.Header.Set("Authorization", "Bearer header-token")
	r.AddCookie(&http.Cookie{Name: "taxisToken", Value: "cookie-token"})

	if got, err := FromRequest(r, "taxisToken"); err != nil || got != "header-token" {
		t.Fatalf("expected header token, got %q (%v)", got, err)
	}

	r = httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	r.AddCookie(&http.Cookie{Name: "taxisToken", Value: "cookie-token"})
	if got, err := FromRequest(r, "taxisToken"); err != nil || got != "cookie-token" {
		t.Fatalf("expected cookie token, got %q (%v)", got, err)
	}

	r = httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	r.Header.Set("Authorization", "Basic abc")
	if _, err := FromRequest(r, "taxisToken"); !errors.Is(err, ErrBadAuthScheme) {
		t.Fatalf("expected ErrBadAuthScheme, got %v", err)
	}

	r = httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	if _, err := FromRequest(r, "taxisToken"); !errors.Is(err, ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
}

func TestCallerSlot(t *testing.T) {
	RecordCaller(context.Background(), "ignored")

	var caller string
	ctx := WithCallerSlot(context.Background(), &caller)
	RecordCaller(ctx, "user-9")
	if caller != "user-9" {
		t.Fatalf("slot = %q", caller)
	}
}
