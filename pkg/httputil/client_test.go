package httputil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apierrors "github.com/matzehuels/libcredit/pkg/errors"
)

func TestCheckStatus(t *testing.T) {
	tests := []struct {
		code      int
		wantNil   bool
		notFound  bool
		retryable bool
	}{
		{200, true, false, false},
		{204, true, false, false},
		{404, false, true, false},
		{410, false, true, false},
		{403, false, false, false},
		{500, false, false, true},
		{503, false, false, true},
	}

	for _, tt := range tests {
		err := CheckStatus(tt.code, "")
		if (err == nil) != tt.wantNil {
			t.Errorf("CheckStatus(%d) = %v", tt.code, err)
			continue
		}
		if errors.Is(err, ErrNotFound) != tt.notFound {
			t.Errorf("CheckStatus(%d) not-found = %v", tt.code, !tt.notFound)
		}
		if errors.As(err, new(*RetryableError)) != tt.retryable {
			t.Errorf("CheckStatus(%d) retryable = %v", tt.code, !tt.retryable)
		}
	}
}

func TestCheckStatusRateLimited(t *testing.T) {
	err := CheckStatus(http.StatusTooManyRequests, "30")
	var rl *apierrors.RateLimitedError
	if !errors.As(err, &rl) || rl.RetryAfter != 30 {
		t.Errorf("CheckStatus(429) = %v", err)
	}
}

func TestNewClientUserAgent(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.UserAgent())
	}))
	defer srv.Close()

	c := NewClient()
	resp, err := c.Get(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	req.Header.Set("User-Agent", "custom/1")
	resp, err = c.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if len(got) != 2 || !strings.HasPrefix(got[0], "libcredit/") || got[1] != "custom/1" {
		t.Errorf("user agents = %q", got)
	}
}
