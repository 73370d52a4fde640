package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultTimeout = 30 * time.Second

// Response is a fully read HTTP response
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the status code is 2xx
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type Interface interface {
	Get(ctx context.Context, path string) (*Response, error)
}

// Client issues JSON GET requests against one upstream API. GetFunc, when
// set, replaces the network call entirely.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	GetFunc    func(ctx context.Context, path string) (*Response, error)
}

var _ Interface = (*Client)(nil)

type Options struct {
	BaseURL string
	Timeout time.Duration
	// UserAgent identifies the caller; met.no rejects anonymous requests
	UserAgent string
}

func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    opts.BaseURL,
		userAgent:  opts.UserAgent,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Get fetches path relative to the base URL and reads the whole body.
// Non-2xx statuses are returned as a Response, not as an error.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	if c.GetFunc != nil {
		return c.GetFunc(ctx, path)
	}

	req, err := c.newRequest(ctx, path)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", req.URL.Path, err)
	}
	defer closeBody(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	log.Debug().
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("Upstream request complete")

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

func (c *Client) newRequest(ctx context.Context, path string) (*http.Request, error) {
	fullURL := path // no base URL means path is already absolute
	if c.baseURL != "" {
		fullURL = c.baseURL + path
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", fullURL, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return req, nil
}

func closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		log.Debug().Err(err).Msg("Error closing response body")
	}
}
