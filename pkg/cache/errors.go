package cache

import "errors"

// Sentinel errors for caching operations.
var (
	// ErrInvalidKey is returned by Set for an empty key.
	ErrInvalidKey = errors.New("invalid cache key")

	// ErrUnavailable wraps failures to reach a remote backend.
	ErrUnavailable = errors.New("cache unavailable")
)
