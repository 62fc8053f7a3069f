package syncdb

import (
	"context"
	goerrors "errors"

	"github.com/sirupsen/logrus"
	"mcpkg.io/mcpkg/pkg/errors"
	"mcpkg.io/mcpkg/pkg/pack"
)

type CacheState int

const (
	Empty CacheState = iota
	Loaded
)

func (s CacheState) String() string {
	if s == Loaded {
		return "loaded"
	}
	return "empty"
}

// RefreshFunc rebuilds the pack database, it is called when there is no local pack database.
type RefreshFunc func(ctx context.Context) error

// Cache holds the pack database in memory once it has been read.
type Cache struct {
	store   *Store
	refresh RefreshFunc
	state   CacheState
	packs   *pack.PackSet
}

func NewCache(store *Store) *Cache {
	return &Cache{store: store, state: Empty}
}

// SetRefresher sets the function used to rebuild a missing pack database.
func (c *Cache) SetRefresher(refresh RefreshFunc) {
	c.refresh = refresh
}

func (c *Cache) State() CacheState {
	return c.state
}

// EnsureLoaded returns the cached pack set, reading the pack database on first use.
// A missing pack database is rebuilt by the refresher before it is read again.
func (c *Cache) EnsureLoaded(ctx context.Context) (*pack.PackSet, error) {
	if c.state == Loaded {
		return c.packs, nil
	}

	packs, err := c.store.Load()
	if goerrors.Is(err, errors.NoLocalCache) && c.refresh != nil {
		logrus.Warn("Can't find a locally stored packdb.json. Attempting to fetch now...")
		if err := c.refresh(ctx); err != nil {
			return nil, err
		}
		// the refresh may have filled the cache already.
		if c.state == Loaded {
			return c.packs, nil
		}
		packs, err = c.store.Load()
	}
	if err != nil {
		return nil, err
	}

	c.set(packs)
	return packs, nil
}

// Invalidate drops the cached pack set, the next EnsureLoaded reads the pack database again.
func (c *Cache) Invalidate() {
	c.state = Empty
	c.packs = nil
}

func (c *Cache) set(packs *pack.PackSet) {
	c.packs = packs
	c.state = Loaded
}
