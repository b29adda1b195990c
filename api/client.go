// Package api is the HTTP client for the cafe backend's read endpoints.
// In WASM builds net/http is backed by the browser's fetch.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vcrobe/cafelist/cafe"
)

// Endpoint paths, relative to the base URL.
const (
	PathCafes    = "/cafes"
	PathLocation = "/cafes/location/"
	PathRandom   = "/cafes/random"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// ErrNotFound matches a *StatusError with status 404.
var ErrNotFound = errors.New("not found")

// ErrNullBody is a 2xx response whose JSON body is null where a value is
// required.
var ErrNullBody = errors.New("response body is null")

// StatusError is a non-2xx response.
type StatusError struct {
	Op         string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// NetworkError is a request that never produced a response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string { return e.Err.Error() }

func (e *NetworkError) Unwrap() error { return e.Err }

// Doer sends a request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches cafes. Each call makes exactly one request; there is no retry.
type Client struct {
	baseURL string
	http    Doer
	logger  *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a client for the backend at baseURL. An empty baseURL sends
// requests to the page's own origin. A nil doer uses http.DefaultClient.
func New(baseURL string, doer Doer, opts ...Option) *Client {
	if doer == nil {
		doer = http.DefaultClient
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    doer,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListCafes fetches every cafe. A null body is an error; [] is not.
func (c *Client) ListCafes(ctx context.Context) ([]cafe.Cafe, error) {
	var cafes []cafe.Cafe
	if err := c.get(ctx, "list cafes", PathCafes, &cafes); err != nil {
		return nil, err
	}
	if cafes == nil {
		return nil, fmt.Errorf("list cafes: %w", ErrNullBody)
	}
	return cafes, nil
}

// SearchByLocation fetches cafes whose location matches term. The term is
// sent as one path segment escaped like encodeURIComponent, unmodified
// otherwise. A 404 comes back as an error matching ErrNotFound; a null body
// is an empty result.
func (c *Client) SearchByLocation(ctx context.Context, term string) ([]cafe.Cafe, error) {
	var cafes []cafe.Cafe
	if err := c.get(ctx, "search cafes", PathLocation+EscapeComponent(term), &cafes); err != nil {
		return nil, err
	}
	return cafes, nil
}

// RandomCafe fetches one randomly chosen cafe.
func (c *Client) RandomCafe(ctx context.Context) (cafe.Cafe, error) {
	var picked *cafe.Cafe
	if err := c.get(ctx, "random cafe", PathRandom, &picked); err != nil {
		return cafe.Cafe{}, err
	}
	if picked == nil {
		return cafe.Cafe{}, fmt.Errorf("random cafe: %w", ErrNullBody)
	}
	return *picked, nil
}

// EscapeComponent percent-encodes every byte of s except the characters
// encodeURIComponent leaves alone: A-Z a-z 0-9 - _ . ! ~ * ' ( )
func EscapeComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		if unreserved(b) {
			sb.WriteByte(b)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(hex[b>>4])
		sb.WriteByte(hex[b&0x0f])
	}
	return sb.String()
}

func unreserved(b byte) bool {
	switch {
	case 'a' <= b && b <= 'z', 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", b) >= 0
}

func (c *Client) get(ctx context.Context, op, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	log := c.logger.With(zap.String("op", op), zap.String("request_id", requestID))
	log.Debug("GET", zap.String("url", req.URL.String()))

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("request failed", zap.Error(err))
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Debug("non-2xx response", zap.Int("status", resp.StatusCode))
		return &StatusError{Op: op, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Warn("undecodable response", zap.Error(err))
		return fmt.Errorf("%s: decode response: %w", op, err)
	}

	log.Debug("response decoded", zap.Int("status", resp.StatusCode))
	return nil
}
