package index

import (
	"log/slog"
	"sync"

	"github.com/atenea/rumbo/core"
)

// Cache holds built indexes keyed by catalog fingerprint. A catalog is
// indexed at most once; a changed catalog hashes to a new key and gets a
// brand-new index, so readers of an old index are never raced.
type Cache struct {
	mu      sync.RWMutex
	entries map[core.ID]*Index
	opts    []Option
	logger  *slog.Logger
}

// NewCache creates an index cache. The options are applied to every index
// the cache builds.
func NewCache(opts ...Option) *Cache {
	return &Cache{
		entries: make(map[core.ID]*Index),
		opts:    opts,
		logger:  slog.Default(),
	}
}

// Get returns the index for the catalog, building it on first use.
func (c *Cache) Get(catalog *core.Catalog) (*Index, error) {
	if catalog == nil {
		return nil, ErrCatalogRequired
	}
	key := catalog.Fingerprint()

	c.mu.RLock()
	idx, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return idx, nil
	}

	idx, err := New(catalog, c.opts...)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another builder may have won the race; keep the first index so
	// everyone shares one immutable value.
	if existing, ok := c.entries[key]; ok {
		return existing, nil
	}
	c.entries[key] = idx
	c.logger.Debug("index cached", "fingerprint", uint64(key), "documents", catalog.Len())
	return idx, nil
}

// Len returns the number of cached indexes.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
