package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"time"
)

const baseURL = "https://api.coingecko.com/api/v3"

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=coingecko_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a client for the CoinGecko API.
type Client struct {
	// baseURL is the base URL for the API.
	baseURL string
	// httpClient is the HTTP httpClient.
	httpClient HTTPClient
	// header contains additional headers to be sent with each request.
	header http.Header
	// query contains additional query parameters to be sent with each request.
	query url.Values
	// retryPause is how long to wait before the single retry on 429/5xx.
	retryPause time.Duration
}

// Option is a configuration option for the CoinGecko API client.
type Option func(*Client)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) Option {
	return func(c *Client) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// WithRetryPause sets the pause before the single retry on 429/5xx responses.
func WithRetryPause(d time.Duration) Option {
	return func(c *Client) {
		c.retryPause = d
	}
}

// New creates a new CoinGecko API client. The key is optional; the public
// endpoints work without one until rate limits bite.
func New(key string, options ...Option) (*Client, error) {
	var client = &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		header:     http.Header{},
		query:      url.Values{},
		retryPause: time.Second,
	}
	if key != "" {
		// Demo API keys are passed as a query parameter.
		// https://docs.coingecko.com/reference/authentication
		client.query.Add("x_cg_demo_api_key", key)
	}
	for _, option := range options {
		option(client)
	}
	return client, nil
}

// getJSON performs a GET against path, retrying once on 429/5xx, and decodes
// the response body into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	merged := maps.Clone(c.query)
	for key, values := range query {
		for _, value := range values {
			merged.Add(key, value)
		}
	}
	u := fmt.Sprintf("%s%s?%s", c.baseURL, path, merged.Encode())

	res, err := c.get(ctx, u)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	if res.StatusCode == http.StatusTooManyRequests || res.StatusCode >= 500 {
		res.Body.Close()
		t := time.NewTimer(c.retryPause)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		res, err = c.get(ctx, u)
		if err != nil {
			return fmt.Errorf("performing retry: %w", err)
		}
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		break

	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("unauthorized")

	case http.StatusTooManyRequests:
		return fmt.Errorf("rate limited")

	default:
		return fmt.Errorf("unexpected status code: %d", res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header = c.header.Clone()
	req.Header.Set("Accept", "application/json")
	return c.httpClient.Do(req)
}
