package term

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// slaterKey identifies one count A(N, ℓ, ℓb, MS, ML).
type slaterKey struct {
	n, l, lb, ms, ml int
}

// memo stores computed counts. Implementations are safe for concurrent use;
// a key may be computed twice by racing callers but always to the same value.
type memo interface {
	get(k slaterKey) (int, bool)
	put(k slaterKey, v int)
	len() int
}

// mapMemo keeps every entry.
type mapMemo struct {
	mu sync.RWMutex
	m  map[slaterKey]int
}

func newMapMemo() *mapMemo {
	return &mapMemo{m: make(map[slaterKey]int)}
}

func (c *mapMemo) get(k slaterKey) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.m[k]
	return v, ok
}

func (c *mapMemo) put(k slaterKey, v int) {
	c.mu.Lock()
	c.m[k] = v
	c.mu.Unlock()
}

func (c *mapMemo) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// lruMemo bounds the number of entries.
type lruMemo struct {
	c *lru.Cache[slaterKey, int]
}

func newLRUMemo(size int) *lruMemo {
	// lru.New only fails for size <= 0, which WithCacheSize rejects.
	c, err := lru.New[slaterKey, int](size)
	if err != nil {
		panic("term: " + err.Error())
	}
	return &lruMemo{c: c}
}

func (c *lruMemo) get(k slaterKey) (int, bool) { return c.c.Get(k) }

func (c *lruMemo) put(k slaterKey, v int) { c.c.Add(k, v) }

func (c *lruMemo) len() int { return c.c.Len() }
