// Package cache stores fetched pages and rendered credits.
//
// # Overview
//
// [Cache] is a small byte-oriented key/value interface with per-entry TTLs.
// Three backends implement it:
//
//   - [FileCache]: one JSON file per entry, for the CLI
//   - [RedisCache]: a shared Redis keyspace, for the API server
//   - [NullCache]: never stores anything
//
// [Instrument] wraps any backend so that hits, misses and writes reach the
// observability cache hooks.
//
// # Keys
//
// A [Keyer] derives keys so that different kinds of entries never collide:
//
//	k := cache.NewDefaultKeyer()
//	k.PageKey("http://example.org/photo")         // page:<sha256>
//	k.CreditKey(graphHash, cache.CreditKeyOpts{}) // credit:<sha256>
//
// [NewScopedKeyer] adds a prefix, which lets several deployments share one
// Redis database.
package cache

import (
	"context"
	"strings"
	"time"
)

// Cache is a byte-oriented key/value store with expiring entries.
type Cache interface {
	// Get returns the stored value and whether it was found. Expired
	// entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Clearer is implemented by caches that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) error
}

// Keyer derives cache keys.
type Keyer interface {
	// PageKey is the key of a fetched page body.
	PageKey(url string) string

	// CreditKey is the key of a rendered credit for a graph.
	CreditKey(graphHash string, opts CreditKeyOpts) string
}

// CreditKeyOpts lists the render settings that change a rendered credit.
type CreditKeyOpts struct {
	Subject     string `json:"subject,omitempty"`
	Format      string `json:"format,omitempty"`
	Language    string `json:"language,omitempty"`
	SourceDepth int    `json:"source_depth"`
	MaxDepth    int    `json:"max_depth,omitempty"`
	Markup      string `json:"markup,omitempty"`
	Catalog     string `json:"catalog,omitempty"`
}

// DefaultKeyer produces "page:" and "credit:" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// PageKey hashes the URL so keys are safe for every backend.
func (DefaultKeyer) PageKey(url string) string { return hashKey("page", url) }

// CreditKey hashes the graph hash together with the render options.
func (DefaultKeyer) CreditKey(graphHash string, opts CreditKeyOpts) string {
	return hashKey("credit", graphHash, opts)
}

// KeyType returns the entry kind of key ("page", "credit" or "other"),
// looking past any scope prefix added by [ScopedKeyer]. It is the type
// label reported to observability hooks.
func KeyType(key string) string {
	parts := strings.Split(key, ":")
	for _, p := range parts[:len(parts)-1] {
		if p == "page" || p == "credit" {
			return p
		}
	}
	return "other"
}
