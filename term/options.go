package term

// Options configures an Engine.
//
// CacheSize – 0 keeps every memoized count (unbounded map); a positive value
//
//	bounds the memo with an LRU of that many entries.
type Options struct {
	CacheSize int
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// WithCacheSize bounds the memo cache to size entries, evicting the least
// recently used counts. Panics on size <= 0.
func WithCacheSize(size int) Option {
	if size <= 0 {
		panic("term: WithCacheSize(size<=0)")
	}
	return func(o *Options) {
		o.CacheSize = size
	}
}

// DefaultOptions returns an unbounded cache configuration.
func DefaultOptions() Options {
	return Options{CacheSize: 0}
}
