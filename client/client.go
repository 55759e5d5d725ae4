// Package client implements the typed operation facade over the exaroton
// API: one method per remote capability, composing the transport, the
// envelope decoder and the model layer. The facade performs no business
// logic of its own; every error from the lower layers propagates to the
// caller unchanged.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"exaroton-go/api"
	"exaroton-go/config"
	"exaroton-go/internal/apilog"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.exaroton.com/v1/"

const defaultTimeout = 30 * time.Second

// Client issues authenticated requests against the exaroton API. Its
// configuration is immutable after New: methods are safe to call
// concurrently, each call acquiring and releasing its own connection.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	trace      *apilog.TraceLogger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a non-production endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient replaces the transport; timeouts, connection pooling and
// retry policy all live there, not in this layer.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithLogger attaches a logger for per-request debug logging. The default
// is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithTraceLog attaches a request trace logger (see internal/apilog).
func WithTraceLog(t *apilog.TraceLogger) Option {
	return func(c *Client) { c.trace = t }
}

// New creates a client for the given API token.
func New(token string, opts ...Option) *Client {
	c := &Client{
		token:      token,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if !strings.HasSuffix(c.baseURL, "/") {
		c.baseURL += "/"
	}
	return c
}

// NewFromConfig builds a client from a loaded configuration, so a
// config.Loader change callback can swap in a fresh client when the
// credential rotates. Explicit options take precedence over the
// configuration's values.
func NewFromConfig(cfg *config.Config, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	base := []Option{WithHTTPClient(&http.Client{Timeout: timeout})}
	if cfg.BaseURL != "" {
		base = append(base, WithBaseURL(cfg.BaseURL))
	}
	return New(cfg.Token, append(base, opts...)...)
}

// request performs one HTTP round trip and returns the raw body. Non-2xx
// statuses are transport failures, reported before the envelope is ever
// inspected. The response body is closed on every exit path.
func (c *Client) request(ctx context.Context, method, route string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+route, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.trace.TransportError(method, route, err)
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.trace.TransportError(method, route, err)
		return nil, fmt.Errorf("read response: %w", err)
	}

	duration := time.Since(start)
	c.logger.Debug("api request",
		zap.String("method", method),
		zap.String("route", route),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration))
	c.trace.Exchange(method, route, resp.StatusCode, len(raw), duration)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("api %s returned status %d", route, resp.StatusCode)
	}
	return raw, nil
}

// call runs a full envelope-wrapped operation: optional JSON request body,
// transport round trip, envelope decode against the expected shape.
func (c *Client) call(ctx context.Context, method, route string, payload interface{}, shape api.Shape) (json.RawMessage, error) {
	var body io.Reader
	contentType := ""
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}

	raw, err := c.request(ctx, method, route, body, contentType)
	if err != nil {
		return nil, err
	}
	return api.DecodeEnvelope(raw, shape)
}

// opaque runs an operation whose acknowledgement payload is an opaque
// string or absent; the string's meaning is undocumented upstream and is
// returned uninterpreted, nil when absent.
func (c *Client) opaque(ctx context.Context, method, route string, payload interface{}) (*string, error) {
	data, err := c.call(ctx, method, route, payload, api.ShapeString)
	if err != nil {
		return nil, err
	}
	return decodeOpaque(data)
}

// unwrapOpaque decodes an envelope-wrapped opaque acknowledgement from an
// already-read response body (used by operations that send raw, non-JSON
// request bodies).
func (c *Client) unwrapOpaque(raw []byte) (*string, error) {
	data, err := api.DecodeEnvelope(raw, api.ShapeString)
	if err != nil {
		return nil, err
	}
	return decodeOpaque(data)
}

func decodeOpaque(data json.RawMessage) (*string, error) {
	if data == nil {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode acknowledgement: %w", err)
	}
	return &s, nil
}
