package geodb

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/juju/errors"
)

type cachedResult struct {
	record *Record
	found  bool
}

type cachedReader struct {
	inner Reader
	cache *lru.Cache
}

// NewCached wraps a reader with an LRU cache of the given size so that
// inputs which repeat addresses hit the database only once per address.
// Negative results are cached as well.
func NewCached(inner Reader, size int) (Reader, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, errors.Annotate(err, "Cannot create lookup cache")
	}

	return &cachedReader{inner: inner, cache: cache}, nil
}

func (cr *cachedReader) Lookup(address string) (*Record, error) {
	if item, ok := cr.cache.Get(address); ok {
		cached := item.(cachedResult)
		if !cached.found {
			return nil, ErrNotFound
		}

		return cached.record, nil
	}

	record, err := cr.inner.Lookup(address)
	switch {
	case err == nil:
		cr.cache.Add(address, cachedResult{record: record, found: true})
	case errors.Cause(err) == ErrNotFound:
		cr.cache.Add(address, cachedResult{})
	}

	return record, err
}

func (cr *cachedReader) Close() error {
	return cr.inner.Close()
}
