package geodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingReader struct {
	lookups int
	closed  bool
	records map[string]*Record
}

func (cr *countingReader) Lookup(address string) (*Record, error) {
	cr.lookups++

	if record, ok := cr.records[address]; ok {
		return record, nil
	}

	return nil, ErrNotFound
}

func (cr *countingReader) Close() error {
	cr.closed = true
	return nil
}

func TestCachedReaderHit(t *testing.T) {
	inner := &countingReader{
		records: map[string]*Record{
			"8.8.8.8": {CountryName: "United States", CountryISO: "US"},
		},
	}

	cached, err := NewCached(inner, 16)
	assert.Nil(t, err)

	for i := 0; i < 3; i++ {
		record, err := cached.Lookup("8.8.8.8")
		assert.Nil(t, err)
		assert.Equal(t, "US", record.CountryISO)
	}

	assert.Equal(t, 1, inner.lookups)
}

func TestCachedReaderCachesNegative(t *testing.T) {
	inner := &countingReader{}

	cached, err := NewCached(inner, 16)
	assert.Nil(t, err)

	for i := 0; i < 3; i++ {
		record, err := cached.Lookup("127.0.0.1")
		assert.Equal(t, ErrNotFound, err)
		assert.Nil(t, record)
	}

	assert.Equal(t, 1, inner.lookups)
}

func TestCachedReaderDistinctAddresses(t *testing.T) {
	inner := &countingReader{
		records: map[string]*Record{
			"8.8.8.8": {CountryISO: "US"},
			"8.8.4.4": {CountryISO: "US"},
		},
	}

	cached, err := NewCached(inner, 16)
	assert.Nil(t, err)

	cached.Lookup("8.8.8.8")
	cached.Lookup("8.8.4.4")
	cached.Lookup("8.8.8.8")

	assert.Equal(t, 2, inner.lookups)
}

func TestCachedReaderIncorrectSize(t *testing.T) {
	_, err := NewCached(&countingReader{}, 0)
	assert.NotNil(t, err)
}

func TestCachedReaderClose(t *testing.T) {
	inner := &countingReader{}

	cached, err := NewCached(inner, 16)
	assert.Nil(t, err)

	assert.Nil(t, cached.Close())
	assert.True(t, inner.closed)
}
