// Package backend is the HTTP client for the dispatch backend service. Every
// call is independent: no retries, no caching, the caller's bearer token is
// forwarded as is.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"taxi-dispatch/pkg/utils"

	"go.uber.org/zap"
)

var (
	// ErrNoResponse wraps transport failures where the backend never answered.
	ErrNoResponse = errors.New("no response from server")
	// ErrUnauthorized matches a StatusError carrying 401.
	ErrUnauthorized = errors.New("unauthorized")
)

const defaultErrorMessage = "Server error occurred"

// StatusError is a non-2xx answer from the backend.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// RawResponse is an unparsed backend answer.
type RawResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(config utils.BackendConfig, log *zap.Logger) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return NewClientWithHTTP(config.URL, &http.Client{Timeout: timeout}, log)
}

func NewClientWithHTTP(baseURL string, httpClient *http.Client, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		log:     log.With(zap.String("component", "backend")),
	}
}

// Do sends body as JSON and decodes the answer into out when out is non-nil.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	raw, err := c.send(ctx, method, path, query.Encode(), token, "application/json", reader)
	if err != nil {
		return err
	}

	if out == nil || len(bytes.TrimSpace(raw.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw.Body, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, token string, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, token, nil, out)
}

func (c *Client) Post(ctx context.Context, path, token string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, token, body, out)
}

func (c *Client) Put(ctx context.Context, path, token string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, nil, token, body, out)
}

func (c *Client) Patch(ctx context.Context, path, token string, body, out any) error {
	return c.Do(ctx, http.MethodPatch, path, nil, token, body, out)
}

func (c *Client) Delete(ctx context.Context, path, token string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, token, nil, out)
}

// Forward relays an opaque body (e.g. multipart uploads) and returns the
// answer untouched. Error statuses still come back as *StatusError.
func (c *Client) Forward(ctx context.Context, method, path, rawQuery, token, contentType string, body io.Reader) (*RawResponse, error) {
	return c.send(ctx, method, path, rawQuery, token, contentType, body)
}

func (c *Client) send(ctx context.Context, method, path, rawQuery, token, contentType string, body io.Reader) (*RawResponse, error) {
	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if rawQuery != "" {
		target += "?" + rawQuery
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	if body != nil && contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if rid := utils.GetRequestID(ctx); rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("Backend unreachable",
			zap.String("method", method),
			zap.String("path", path),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %s %s: %v", ErrNoResponse, method, path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s %s: %v", ErrNoResponse, method, path, err)
	}

	c.log.Debug("Backend call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(payload),
		}
	}

	return &RawResponse{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        payload,
	}, nil
}

// errorMessage pulls "message" (string or list) or "error" out of an error body.
func errorMessage(payload []byte) string {
	var body map[string]any
	if err := json.Unmarshal(payload, &body); err != nil {
		return defaultErrorMessage
	}

	for _, key := range []string{"message", "error"} {
		switch v := body[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case []any:
			parts := make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok && s != "" {
					parts = append(parts, s)
				}
			}
			if len(parts) > 0 {
				return strings.Join(parts, ", ")
			}
		}
	}
	return defaultErrorMessage
}
