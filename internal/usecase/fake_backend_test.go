package usecase

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"sync"
	"time"

	"taxi-dispatch/pkg/backend"
)

type backendCall struct {
	Method string
	Path   string
	Query  url.Values
	Token  string
	Body   any
}

// fakeBackend answers from canned values keyed by "METHOD /path".
type fakeBackend struct {
	mu        sync.Mutex
	calls     []backendCall
	responses map[string]any
	errs      map[string]error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		responses: map[string]any{},
		errs:      map[string]error{},
	}
}

func (f *fakeBackend) on(method, path string, resp any) *fakeBackend {
	f.responses[method+" "+path] = resp
	return f
}

func (f *fakeBackend) fail(method, path string, err error) *fakeBackend {
	f.errs[method+" "+path] = err
	return f
}

func (f *fakeBackend) count(method, path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Method == method && c.Path == path {
			n++
		}
	}
	return n
}

func (f *fakeBackend) last(method, path string) (backendCall, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].Method == method && f.calls[i].Path == path {
			return f.calls[i], true
		}
	}
	return backendCall{}, false
}

func (f *fakeBackend) do(method, path string, query url.Values, token string, body, out any) error {
	f.mu.Lock()
	f.calls = append(f.calls, backendCall{Method: method, Path: path, Query: query, Token: token, Body: body})
	err := f.errs[method+" "+path]
	resp, ok := f.responses[method+" "+path]
	f.mu.Unlock()

	if err != nil {
		return err
	}
	if !ok || out == nil {
		return nil
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, out)
}

func (f *fakeBackend) Get(_ context.Context, path string, query url.Values, token string, out any) error {
	return f.do("GET", path, query, token, nil, out)
}

func (f *fakeBackend) Post(_ context.Context, path, token string, body, out any) error {
	return f.do("POST", path, nil, token, body, out)
}

func (f *fakeBackend) Put(_ context.Context, path, token string, body, out any) error {
	return f.do("PUT", path, nil, token, body, out)
}

func (f *fakeBackend) Patch(_ context.Context, path, token string, body, out any) error {
	return f.do("PATCH", path, nil, token, body, out)
}

func (f *fakeBackend) Delete(_ context.Context, path, token string, out any) error {
	return f.do("DELETE", path, nil, token, nil, out)
}

func (f *fakeBackend) Forward(_ context.Context, method, path, rawQuery, token, contentType string, body io.Reader) (*backend.RawResponse, error) {
	payload, _ := io.ReadAll(body)
	if err := f.do(method, path, nil, token, string(payload), nil); err != nil {
		return nil, err
	}
	return &backend.RawResponse{StatusCode: 200, ContentType: "application/json", Body: []byte(`{}`)}, nil
}

// memoryCache is a map-backed cache.Cache.
type memoryCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	payload, ok := c.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(payload, out)
}

func (c *memoryCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.items[key] = payload
	c.mu.Unlock()
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.items, key)
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
