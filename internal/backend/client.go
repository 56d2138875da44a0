// Package backend is the typed request layer for the supply-chain REST API.
// Every call returns a decoded value or a NetworkError carrying the backend's
// status and detail message.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/supplychain-dashboard/internal/observability"
	apperrors "github.com/spec-kit/supplychain-dashboard/pkg/util/errorutil"
)

// Client talks to the backend API. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout bounds every call; zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithLogger sets the logger used for failed calls.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics records every call in m.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient builds a client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type call struct {
	method string
	path   string
	token  string
	query  url.Values
	body   any
}

func (c *Client) do(ctx context.Context, in call, out any) error {
	u := c.baseURL + in.path
	if len(in.query) > 0 {
		u += "?" + in.query.Encode()
	}

	var body io.Reader
	if in.body != nil {
		raw, err := json.Marshal(in.body)
		if err != nil {
			return apperrors.NewInternalError(fmt.Errorf("encode %s %s: %w", in.method, in.path, err))
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, in.method, u, body)
	if err != nil {
		return apperrors.NewInternalError(fmt.Errorf("build %s %s: %w", in.method, in.path, err))
	}
	req.Header.Set("Accept", "application/json")
	if in.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if in.token != "" {
		req.Header.Set("Authorization", "Bearer "+in.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordBackendCall(in.path, in.method, 0, time.Since(start))
		c.logger.Warn("backend unreachable",
			zap.String("method", in.method), zap.String("path", in.path), zap.Error(err))
		return apperrors.NewNetworkError(0, "Unable to reach the server", err)
	}
	defer resp.Body.Close()
	c.metrics.RecordBackendCall(in.path, in.method, resp.StatusCode, time.Since(start))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewNetworkError(0, "Unable to read the server response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := detailMessage(raw)
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		c.logger.Info("backend rejected call",
			zap.String("method", in.method), zap.String("path", in.path),
			zap.Int("status", resp.StatusCode), zap.String("detail", msg))
		return apperrors.NewNetworkError(resp.StatusCode, msg, fmt.Errorf("%s %s: http %d", in.method, in.path, resp.StatusCode))
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apperrors.NewNetworkError(http.StatusBadGateway, "Unexpected response from the server", err)
	}
	return nil
}

// detailMessage extracts the "detail" of an error body: either a string or a
// list of validation items whose messages are joined.
func detailMessage(raw []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(envelope.Detail, &text); err == nil {
		return text
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, item := range items {
			if item.Msg != "" {
				msgs = append(msgs, item.Msg)
			}
		}
		return strings.Join(msgs, ", ")
	}
	return ""
}

// Ping reports whether the backend answers HTTP at all. Any response, even an
// error status, counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/docs", nil)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewNetworkError(0, "Unable to reach the server", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}
