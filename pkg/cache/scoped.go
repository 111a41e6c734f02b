package cache

// ScopedKeyer wraps a Keyer with a prefix so that several deployments can
// share one cache backend.
//
// Example usage:
//
//	staging := NewScopedKeyer(NewDefaultKeyer(), "staging:")
//	staging.PageKey(url) // staging:page:<sha256>
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// PageKey generates a prefixed key for fetched pages.
func (k *ScopedKeyer) PageKey(url string) string {
	return k.prefix + k.inner.PageKey(url)
}

// CreditKey generates a prefixed key for rendered credits.
func (k *ScopedKeyer) CreditKey(graphHash string, opts CreditKeyOpts) string {
	return k.prefix + k.inner.CreditKey(graphHash, opts)
}
