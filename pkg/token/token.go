// Package token reads the dashboard's bearer token. The signature is never
// checked here: the backend verifies every call, the gateway only needs the
// payload to know who is asking and whether the session is still usable.
package token

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoToken       = errors.New("missing authorization token")
	ErrBadAuthScheme = errors.New("authorization must start with Bearer")
	ErrMalformed     = errors.New("malformed token")
	ErrExpired       = errors.New("token expired")
)

// Claims mirrors the payload the backend signs.
type Claims struct {
	Email                 string  `json:"email"`
	Name                  string  `json:"name"`
	IsAdmin               bool    `json:"isAdmin"`
	HasTempPassword       bool    `json:"hasTempPassword,omitempty"`
	TempPasswordExpiresAt *string `json:"tempPasswordExpiresAt,omitempty"`
	jwtlib.RegisteredClaims
}

// User is the display identity derived from the claims.
type User struct {
	ID                    string  `json:"id"`
	Email                 string  `json:"email"`
	Name                  string  `json:"name"`
	IsAdmin               bool    `json:"isAdmin"`
	HasTempPassword       bool    `json:"hasTempPassword"`
	TempPasswordExpiresAt *string `json:"tempPasswordExpiresAt"`
}

var parser = jwtlib.NewParser()

// Decode returns the payload of raw without verifying its signature.
func Decode(raw string) (*Claims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrNoToken
	}

	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return claims, nil
}

// Expired reports whether the claims carry an exp before now. Tokens
// without exp never expire on this side.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return c.ExpiresAt.Time.Before(now)
}

// User converts claims into the identity shown by the dashboard.
func (c *Claims) User() *User {
	return &User{
		ID:                    c.Subject,
		Email:                 c.Email,
		Name:                  c.Name,
		IsAdmin:               c.IsAdmin,
		HasTempPassword:       c.HasTempPassword,
		TempPasswordExpiresAt: c.TempPasswordExpiresAt,
	}
}

// IsExpired treats undecodable tokens as expired.
func IsExpired(raw string, now time.Time) bool {
	claims, err := Decode(raw)
	if err != nil {
		return true
	}
	return claims.Expired(now)
}

// Valid decodes raw and rejects it when expired.
func Valid(raw string, now time.Time) (*Claims, error) {
	claims, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	if claims.Expired(now) {
		return nil, ErrExpired
	}
	return claims, nil
}

// UserFromToken decodes raw straight into a display identity.
func UserFromToken(raw string) (*User, error) {
	claims, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	return claims.User(), nil
}

// FromRequest reads "Authorization: Bearer <token>", falling back to the
// session cookie.
func FromRequest(r *http.Request, cookieName string) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		scheme, raw, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") {
			return "", ErrBadAuthScheme
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return "", ErrNoToken
		}
		return raw, nil
	}

	if cookieName != "" {
		if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
			return c.Value, nil
		}
	}

	return "", ErrNoToken
}

type ctxKey string

const (
	claimsCtxKey     ctxKey = "tokenClaims"
	callerSlotCtxKey ctxKey = "callerSlot"
)

// InjectClaims adds decoded claims to the context.
func InjectClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsCtxKey, c)
}

// FromContext extracts decoded claims from the context.
func FromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsCtxKey).(*Claims)
	return c, ok
}

// WithCallerSlot lets an outer middleware learn who the caller was once an
// inner one has decoded the token.
func WithCallerSlot(ctx context.Context, slot *string) context.Context {
	return context.WithValue(ctx, callerSlotCtxKey, slot)
}

// RecordCaller fills the slot set by WithCallerSlot, if any.
func RecordCaller(ctx context.Context, subject string) {
	if slot, ok := ctx.Value(callerSlotCtxKey).(*string); ok && slot != nil {
		*slot = subject
	}
}
