// Package overpass is a thin client for the Overpass API with failover
// across public interpreter endpoints.
package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// DefaultEndpoints are the public interpreters, in preference order. The
// first healthy endpoint wins; later ones only see traffic after a failure.
var DefaultEndpoints = []string{
	"https://overpass-api.de/api/interpreter",
	"https://lz4.overpass-api.de/api/interpreter",
	"https://z.overpass-api.de/api/interpreter",
	"https://overpass.kumi.systems/api/interpreter",
}

const defaultUserAgent = "outlet-insight/1.0 (research purpose)"

// StatusError reports a non-200 response from an endpoint. The pipeline's
// retry policy inspects the code to separate throttling from hard failures.
type StatusError struct {
	Endpoint string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("overpass: %s returned status %d", e.Endpoint, e.Code)
}

// Client queries the Overpass API. All methods are safe for concurrent use.
type Client struct {
	endpoints  []string
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
}

// Option configures the client.
type Option func(*Client)

// WithEndpoints overrides the endpoint list. Order is preference order.
func WithEndpoints(endpoints []string) Option {
	return func(c *Client) {
		c.endpoints = endpoints
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRateLimit sets the requests-per-second limit shared across endpoints.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a Client with the default endpoint list, a 25s request
// timeout, and a 2 req/s limit.
func New(opts ...Option) *Client {
	c := &Client{
		endpoints:  DefaultEndpoints,
		httpClient: &http.Client{Timeout: 25 * time.Second},
		limiter:    rate.NewLimiter(2, 1),
		userAgent:  defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Query runs a raw Overpass QL query, trying each endpoint in order until
// one succeeds. A short random pause precedes every request to avoid
// stampeding the public interpreters. The returned error is the last
// endpoint's failure.
func (c *Client) Query(ctx context.Context, query string) ([]Element, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "overpass: rate limit")
	}
	if err := pause(ctx); err != nil {
		return nil, eris.Wrap(err, "overpass: pre-request pause")
	}

	var lastErr error
	for _, endpoint := range c.endpoints {
		elements, err := c.queryEndpoint(ctx, endpoint, query)
		if err == nil {
			return elements, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, lastErr
		}
		zap.L().Debug("overpass: endpoint failed, trying next",
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
	}
	return nil, lastErr
}

func (c *Client) queryEndpoint(ctx context.Context, endpoint, query string) ([]Element, error) {
	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, eris.Wrap(err, "overpass: build request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "overpass: request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil, &StatusError{Endpoint: endpoint, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "overpass: read body")
	}

	var parsed Response
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, eris.Wrap(err, "overpass: parse response")
	}
	return parsed.Elements, nil
}

// pause sleeps 200-500ms or until the context is done.
func pause(ctx context.Context) error {
	delay := 200*time.Millisecond + time.Duration(rand.Int64N(int64(300*time.Millisecond)))
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
