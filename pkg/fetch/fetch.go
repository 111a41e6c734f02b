// Package fetch downloads web pages whose metadata describes a work.
//
// [Client.Page] validates the URL, consults the cache, retries transient
// failures with backoff and stores successful bodies for the configured
// TTL:
//
//	c := fetch.NewClient(cache.NewNullCache(), nil, 24*time.Hour)
//	body, err := c.Page(ctx, "https://www.flickr.com/photos/someone/123/", false)
//
// The body is typically handed to io.ReadHTML.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/matzehuels/libcredit/pkg/cache"
	apierrors "github.com/matzehuels/libcredit/pkg/errors"
	"github.com/matzehuels/libcredit/pkg/httputil"
	"github.com/matzehuels/libcredit/pkg/observability"
)

// MaxPageSize bounds the number of bytes read from one page.
const MaxPageSize = 8 << 20

var (
	// ErrNotFound is returned when the page does not exist.
	ErrNotFound = httputil.ErrNotFound

	// ErrNetwork is returned when the page cannot be retrieved.
	ErrNetwork = httputil.ErrNetwork
)

// Client fetches pages through a cache.
type Client struct {
	http     *http.Client
	cache    cache.Cache
	keyer    cache.Keyer
	ttl      time.Duration
	attempts int
	backoff  time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.http = h } }

// WithRetry sets the number of attempts and the initial backoff.
func WithRetry(attempts int, backoff time.Duration) Option {
	return func(c *Client) { c.attempts, c.backoff = attempts, backoff }
}

// NewClient creates a Client. A nil cache disables caching and a nil keyer
// selects the default keys.
func NewClient(c cache.Cache, keyer cache.Keyer, ttl time.Duration, opts ...Option) *Client {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	client := &Client{
		http:     httputil.NewClient(),
		cache:    c,
		keyer:    keyer,
		ttl:      ttl,
		attempts: 3,
		backoff:  time.Second,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Page returns the body of the page at rawURL. With refresh set, the cache
// is bypassed but still updated.
func (c *Client) Page(ctx context.Context, rawURL string, refresh bool) ([]byte, error) {
	if err := apierrors.ValidateURL(rawURL); err != nil {
		return nil, err
	}

	key := c.keyer.PageKey(rawURL)
	if !refresh {
		if data, ok, err := c.cache.Get(ctx, key); err == nil && ok {
			return data, nil
		}
	}

	var body []byte
	err := httputil.Retry(ctx, c.attempts, c.backoff, func() error {
		var err error
		body, err = c.get(ctx, rawURL)
		return err
	})
	if err != nil {
		return nil, err
	}

	_ = c.cache.Set(ctx, key, body, c.ttl)
	return body, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.5")

	host, path := hostPath(rawURL)
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, &httputil.RetryableError{Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := httputil.CheckStatus(resp.StatusCode, resp.Header.Get("Retry-After")); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxPageSize))
	if err != nil {
		return nil, &httputil.RetryableError{Err: fmt.Errorf("%w: read body: %v", ErrNetwork, err)}
	}
	return body, nil
}

func hostPath(rawURL string) (string, string) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", ""
	}
	return u.Host, u.Path
}
