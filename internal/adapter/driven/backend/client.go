// Package backend implements the LoginAPI and AssignmentSource ports against
// the calendar backend that fronts Canvas.
package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gregjones/httpcache"

	"github.com/ericfisherdev/canvascal/internal/domain/model"
	"github.com/ericfisherdev/canvascal/internal/domain/port/driven"
)

// Endpoint paths on the backend.
const (
	LoginPath       = "/api/login"
	AssignmentsPath = "/course-assignments"
	HealthPath      = "/health-check"
)

// Compile-time interface satisfaction checks.
var (
	_ driven.LoginAPI         = (*Client)(nil)
	_ driven.AssignmentSource = (*Client)(nil)
)

// Client talks to the backend over HTTP. It sets no request timeout; callers
// bound requests through their context if they need to.
type Client struct {
	http    *http.Client
	baseURL *url.URL
}

// NewClient creates a Client whose GET requests are served through an
// in-memory HTTP cache honoring ETag and Last-Modified validators.
func NewClient(baseURL string) (*Client, error) {
	return NewClientWithHTTPClient(&http.Client{Transport: httpcache.NewMemoryCacheTransport()}, baseURL)
}

// NewClientWithHTTPClient creates a Client with a custom http.Client.
// This constructor is intended for testing, allowing injection of an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parsing base URL: unsupported scheme %q", u.Scheme)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")

	return &Client{http: httpClient, baseURL: u}, nil
}

// SubmitAPIKey posts the raw key to the login endpoint. The body is the key
// itself, not a JSON document, even though the declared content type is JSON;
// the backend reads the body verbatim. The response body is discarded.
func (c *Client) SubmitAPIKey(ctx context.Context, key model.APIKey) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(LoginPath), strings.NewReader(string(key)))
	if err != nil {
		return 0, fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("post %s: %w", LoginPath, err)
	}
	drainAndClose(resp.Body)

	return resp.StatusCode, nil
}

// FetchAssignments retrieves the user's assignments across enrolled courses.
func (c *Client) FetchAssignments(ctx context.Context) ([]model.Assignment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(AssignmentsPath), nil)
	if err != nil {
		return nil, fmt.Errorf("build assignments request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", AssignmentsPath, err)
	}
	defer drainAndClose(resp.Body)

	if !model.IsSuccessStatus(resp.StatusCode) {
		return nil, fmt.Errorf("get %s: %w: %d", AssignmentsPath, driven.ErrUnexpectedStatus, resp.StatusCode)
	}

	assignments, err := decodeAssignments(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", AssignmentsPath, err)
	}
	return assignments, nil
}

// Ping checks the backend health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(HealthPath), nil)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", HealthPath, err)
	}
	drainAndClose(resp.Body)

	if !model.IsSuccessStatus(resp.StatusCode) {
		return fmt.Errorf("get %s: %w: %d", HealthPath, driven.ErrUnexpectedStatus, resp.StatusCode)
	}
	return nil
}

func (c *Client) endpoint(path string) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	return u.String()
}

// drainAndClose reads what is left of body so the connection can be reused.
func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 1<<20))
	_ = body.Close()
}
