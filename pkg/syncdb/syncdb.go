// Package syncdb keeps the local pack database in sync with the vendor catalogs
// and answers queries against it.
package syncdb

import (
	"context"
	goerrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"mcpkg.io/mcpkg/pkg/errors"
	"mcpkg.io/mcpkg/pkg/pack"
	"mcpkg.io/mcpkg/pkg/reporter"
)

// CatalogFetcher fetches the vendor category listing of a pack type.
type CatalogFetcher interface {
	FetchCatalog(ctx context.Context, packType pack.PackType) (io.ReadCloser, error)
}

// SyncDB is the local pack database.
type SyncDB struct {
	store     *Store
	cache     *Cache
	fetcher   CatalogFetcher
	logWriter io.Writer
}

type Option func(*SyncDB)

// WithFetcher sets the fetcher used by Refresh.
// With a fetcher, a missing pack database is fetched on first use.
func WithFetcher(fetcher CatalogFetcher) Option {
	return func(db *SyncDB) {
		db.fetcher = fetcher
	}
}

// WithCache sets the cache holding the loaded pack set.
func WithCache(cache *Cache) Option {
	return func(db *SyncDB) {
		db.cache = cache
	}
}

// WithLogWriter sets the writer of the progress messages.
func WithLogWriter(logWriter io.Writer) Option {
	return func(db *SyncDB) {
		db.logWriter = logWriter
	}
}

// NewSyncDB creates the pack database stored at 'path'.
func NewSyncDB(path string, opts ...Option) *SyncDB {
	db := &SyncDB{
		store:     NewStore(path),
		logWriter: os.Stderr,
	}
	for _, opt := range opts {
		opt(db)
	}
	if db.cache == nil {
		db.cache = NewCache(db.store)
	}
	if db.fetcher != nil {
		db.cache.SetRefresher(db.Refresh)
	}
	return db
}

func (db *SyncDB) Store() *Store {
	return db.store
}

func (db *SyncDB) Cache() *Cache {
	return db.cache
}

// Import converts the vendor category listing 'src' and merges it on top of the stored pack database.
// The imported packs win over the stored ones. The merged pack set is stored and cached.
// A stored pack database that can not be decoded is replaced by the imported packs.
func (db *SyncDB) Import(src io.Reader, packType pack.PackType) (*pack.PackSet, error) {
	imported, err := ConvertCatalog(src, packType)
	if err != nil {
		return nil, reporter.NewErrorEvent(
			reporter.MalformedCatalog,
			err,
			fmt.Sprintf("failed to import the %s catalog.", packType),
		)
	}

	combined := pack.NewPackSet()
	if db.store.Exists() {
		existing, err := db.store.Load()
		switch {
		case goerrors.Is(err, errors.MalformedCatalog):
			logrus.Warnf("the pack database '%s' is malformed and will be rebuilt: %v", db.store.Path(), err)
		case err != nil:
			return nil, err
		default:
			combined = existing
		}
	}
	combined.Union(imported)

	if err := db.store.Save(combined); err != nil {
		return nil, err
	}
	logrus.Debugf("imported %d %s packs, %d packs in '%s'", imported.Len(), packType, combined.Len(), db.store.Path())

	db.cache.set(combined)
	return combined, nil
}

// Refresh fetches the catalogs of all pack types one after another and imports them.
// Each catalog is stored before the next one is fetched.
func (db *SyncDB) Refresh(ctx context.Context) error {
	if db.fetcher == nil {
		return reporter.NewErrorEvent(reporter.Bug, fmt.Errorf("no catalog fetcher"), "internal bug: the pack database can not be refreshed.")
	}

	for _, packType := range pack.PackTypes {
		reporter.ReportEventTo(
			reporter.NewEvent(reporter.FetchingCatalog, fmt.Sprintf("downloading %s metadata", packType)),
			db.logWriter,
		)
		if err := db.refreshOne(ctx, packType); err != nil {
			return err
		}
	}

	reporter.ReportEventTo(reporter.NewEvent(reporter.FetchComplete, "fetch complete"), db.logWriter)
	return nil
}

func (db *SyncDB) refreshOne(ctx context.Context, packType pack.PackType) error {
	src, err := db.fetcher.FetchCatalog(ctx, packType)
	if err != nil {
		return err
	}
	defer src.Close()

	_, err = db.Import(src, packType)
	return err
}

// LocalPackList returns the whole local pack database.
func (db *SyncDB) LocalPackList(ctx context.Context) (*pack.PackSet, error) {
	return db.cache.EnsureLoaded(ctx)
}
