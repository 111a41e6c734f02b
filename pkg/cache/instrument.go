package cache

import (
	"context"
	"time"

	"github.com/matzehuels/libcredit/pkg/observability"
)

// Instrumented reports cache traffic to the registered observability
// hooks. Create one with [Instrument].
type Instrumented struct {
	Cache
}

// Instrument wraps c so that hits, misses and writes are reported.
func Instrument(c Cache) *Instrumented {
	return &Instrumented{Cache: c}
}

func (c *Instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok, err := c.Cache.Get(ctx, key)
	if err == nil {
		if ok {
			observability.Cache().OnCacheHit(ctx, KeyType(key))
		} else {
			observability.Cache().OnCacheMiss(ctx, KeyType(key))
		}
	}
	return data, ok, err
}

func (c *Instrumented) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	err := c.Cache.Set(ctx, key, data, ttl)
	if err == nil {
		observability.Cache().OnCacheSet(ctx, KeyType(key), len(data))
	}
	return err
}

// Clear forwards to the wrapped cache when it implements [Clearer].
func (c *Instrumented) Clear(ctx context.Context) error {
	if cl, ok := c.Cache.(Clearer); ok {
		return cl.Clear(ctx)
	}
	return nil
}

var (
	_ Cache   = (*Instrumented)(nil)
	_ Clearer = (*Instrumented)(nil)
)
