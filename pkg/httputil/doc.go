// Package httputil provides the HTTP plumbing shared by the page fetcher.
//
// # Overview
//
//   - [NewClient]: an http.Client with a timeout and a User-Agent
//   - [CheckStatus]: maps response codes to [ErrNotFound], [ErrNetwork] and
//     [RetryableError]
//   - [Retry]: automatic retry with exponential backoff
//
// # Retry
//
// [Retry] re-runs an operation when it fails with a [RetryableError]:
//
//   - Network errors
//   - 5xx server errors
//
// Any other error is returned immediately:
//
//	err := httputil.Retry(ctx, 3, time.Second, func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    defer resp.Body.Close()
//	    return httputil.CheckStatus(resp.StatusCode, resp.Header.Get("Retry-After"))
//	})
//
// # Configuration
//
// Default settings are suitable for most use cases:
//
//   - Request timeout: 10 seconds
//   - Max attempts: 3
//   - Base backoff: 1 second
package httputil
