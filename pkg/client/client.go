// Package client sends single HTTP requests to the panel API.
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
)

// DefaultTimeout is used when Options.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// Request is one call against the panel.
type Request struct {
	Method string
	// URL is the absolute request URL (panel base URL + path).
	URL   string
	Token string
	// Body is serialized as JSON. A nil body sends no payload.
	Body any
}

// Response is a fully read panel response.
type Response struct {
	StatusCode  int
	ContentType string
	Header      http.Header
	Body        []byte
}

// Options configures a Client.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	// HTTPClient overrides the underlying client, mainly for tests.
	HTTPClient *http.Client
}

// Client dispatches requests with the fixed panel headers.
type Client struct {
	http      *http.Client
	userAgent string
}

// UserAgent returns the User-Agent header value for a client version.
func UserAgent(version string) string {
	return "Soar Client v" + strings.TrimPrefix(version, "v")
}

// New creates a Client.
func New(opts Options) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	ua := opts.UserAgent
	if ua == "" {
		ua = UserAgent("0.0.1")
	}
	return &Client{http: hc, userAgent: ua}
}

// Headers returns the fixed header set sent with every request.
func (c *Client) Headers(token string) http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	h.Set("Authorization", "Bearer "+token)
	h.Set("User-Agent", c.userAgent)
	return h
}

// Send issues exactly one request and reads the whole response body.
// Status codes are not interpreted here.
func (c *Client) Send(ctx context.Context, req Request) (*Response, error) {
	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header = c.Headers(req.Token)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Header:      resp.Header,
		Body:        data,
	}, nil
}
