package client

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Header is a single request header. Requests keep headers in order so the
// summary prints them the way they are sent.
type Header struct {
	Name  string
	Value string
}

// Request describes the one request a run sends.
type Request struct {
	Method  string
	URL     string
	Headers []Header
}

// Header returns the value of the named header, or "".
func (r Request) Header(name string) string {
	for _, h := range r.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}

// NewPackageRequest builds the GET request for url. The token is sent as is.
func NewPackageRequest(url, token, host string) Request {
	return Request{
		Method: http.MethodGet,
		URL:    url,
		Headers: []Header{
			{Name: "Authorization", Value: token},
			{Name: "Accept", Value: "*/*"},
			{Name: "Host", Value: host},
		},
	}
}

// Response contains HTTP response data
type Response struct {
	StatusCode int
	Status     string
	Headers    http.Header
	Body       []byte
	Duration   time.Duration
}

// Client wraps HTTP client functionality
type Client struct {
	httpClient *http.Client
	insecure   bool
}

// NewClient creates a new HTTP client. With insecure set, server
// certificates are not verified. No timeout is applied; redirects follow
// the net/http defaults.
func NewClient(insecure bool) *Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: insecure, // #nosec G402 -- opt-out controlled by API_INSECURE / --insecure.
		},
	}

	return &Client{
		httpClient: &http.Client{Transport: transport},
		insecure:   insecure,
	}
}

// Insecure reports whether certificate verification is skipped.
func (c *Client) Insecure() bool {
	return c.insecure
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// Execute sends req and reads the whole response body. Non-2xx statuses
// are returned as responses, not errors.
func (c *Client) Execute(ctx context.Context, req Request) (*Response, error) {
	startTime := time.Now()

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for _, h := range req.Headers {
		// net/http ignores a Host entry in the header map.
		if strings.EqualFold(h.Name, "Host") {
			httpReq.Host = h.Value
			continue
		}
		httpReq.Header.Set(h.Name, h.Value)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Headers:    resp.Header,
		Body:       body,
		Duration:   time.Since(startTime),
	}, nil
}

// RedactToken redacts sensitive parts of an authorization token
func RedactToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***REDACTED***"
	}
	return token[:6] + "..." + token[len(token)-6:]
}
