// Package client is the typed HTTP client for the FridgeChef backend.
//
// The client holds no session state: every authenticated operation takes the
// caller's types.Credential explicitly.
package client

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

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/pageza/fridgechef/internal/logging"
	"github.com/pageza/fridgechef/internal/types"
)

// Client talks to the backend REST API
type Client struct {
	baseURL  *url.URL
	http     *http.Client
	logger   *zap.Logger
	validate *validator.Validate
	now      func() time.Time
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used for request logging
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = logging.OrNop(l) }
}

// WithTracing wraps the transport with OpenTelemetry instrumentation
func WithTracing() Option {
	return func(c *Client) {
		base := c.http.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		hc := *c.http
		hc.Transport = otelhttp.NewTransport(base)
		c.http = &hc
	}
}

// New creates a client for the API rooted at baseURL
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host are required", baseURL)
	}

	c := &Client{
		baseURL:  u,
		http:     &http.Client{},
		logger:   zap.NewNop(),
		validate: newValidator(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// doJSON sends body as JSON and decodes a successful response into out
func (c *Client) doJSON(ctx context.Context, cred types.Credential, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, cred, out)
}

// send attaches the credential, executes req and decodes the response
func (c *Client) send(req *http.Request, cred types.Credential, out any) error {
	if err := cred.CheckExpiry(c.now()); err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if h := cred.Header(); h != "" {
		req.Header.Set("Authorization", h)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Error(err))
		return fmt.Errorf("%w: %s %s: %v", ErrTransport, req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", ErrTransport, err)
	}

	c.logger.Debug("request completed",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp.StatusCode, data)
		c.logger.Warn("API error",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message))
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return c.check(out)
}

func pageQuery(page, limit int) url.Values {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return url.Values{
		"page":  {fmt.Sprint(page)},
		"limit": {fmt.Sprint(limit)},
	}
}
