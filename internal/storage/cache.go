package storage

// KeyValue is an integer key-value store.
type KeyValue interface {
	Get(key string) (int, bool, error)
	Set(key string, value int) error
}

type cachedEntry struct {
	value int
	ok    bool
}

// CachedStore reads each key from the backing store once and serves later
// reads from memory. Writes go through to the backing store and update the
// cached value even when the write fails.
type CachedStore struct {
	inner   KeyValue
	entries map[string]cachedEntry
}

// NewCachedStore wraps inner.
func NewCachedStore(inner KeyValue) *CachedStore {
	return &CachedStore{
		inner:   inner,
		entries: make(map[string]cachedEntry),
	}
}

// Get returns the cached value, loading it on first use. A failed load is
// reported once and then remembered as absent.
func (c *CachedStore) Get(key string) (int, bool, error) {
	if e, ok := c.entries[key]; ok {
		return e.value, e.ok, nil
	}

	v, ok, err := c.inner.Get(key)
	if err != nil {
		c.entries[key] = cachedEntry{}
		return 0, false, err
	}
	c.entries[key] = cachedEntry{value: v, ok: ok}
	return v, ok, nil
}

// Set writes value through and caches it.
func (c *CachedStore) Set(key string, value int) error {
	c.entries[key] = cachedEntry{value: value, ok: true}
	return c.inner.Set(key, value)
}
