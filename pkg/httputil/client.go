package httputil

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/matzehuels/libcredit/pkg/buildinfo"
	apierrors "github.com/matzehuels/libcredit/pkg/errors"
)

// DefaultTimeout bounds a single request.
const DefaultTimeout = 10 * time.Second

var (
	// ErrNotFound is returned for 404 and 410 responses.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")
)

// UserAgent identifies libcredit to the sites it fetches.
func UserAgent() string {
	return "libcredit/" + buildinfo.Version + " (+https://github.com/matzehuels/libcredit)"
}

type userAgent struct {
	next http.RoundTripper
}

func (t userAgent) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", UserAgent())
	}
	return t.next.RoundTrip(req)
}

// NewClient returns an HTTP client with [DefaultTimeout] that sets the
// libcredit User-Agent on requests that have none.
func NewClient() *http.Client {
	return &http.Client{
		Timeout:   DefaultTimeout,
		Transport: userAgent{next: http.DefaultTransport},
	}
}

// CheckStatus classifies an HTTP status code. 2xx is success; 404 and 410
// wrap [ErrNotFound]; 429 is a [apierrors.RateLimitedError] built from
// retryAfter; 5xx wraps [ErrNetwork] in a [RetryableError]; anything else
// wraps [ErrNetwork].
func CheckStatus(code int, retryAfter string) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound, code == http.StatusGone:
		return fmt.Errorf("%w: status %d", ErrNotFound, code)
	case code == http.StatusTooManyRequests:
		secs, _ := strconv.Atoi(retryAfter)
		return &apierrors.RateLimitedError{RetryAfter: secs}
	case code >= 500:
		return &RetryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, code)}
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
