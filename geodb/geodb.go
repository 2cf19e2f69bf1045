package geodb

import (
	"github.com/juju/errors"
)

// Supported database formats.
const (
	FormatMaxMind     = "maxmind"
	FormatIP2Location = "ip2location"
)

// ErrNotFound is returned by Lookup when the database has no record for
// the given address, or when the address is not a syntactically valid IP.
var ErrNotFound = errors.New("address not found")

// Record is a geolocation result for a single IP address. String fields
// are empty and Has* flags are false when the database did not have the
// corresponding data.
type Record struct {
	CountryName string
	CountryISO  string
	RegionName  string
	CityName    string

	Latitude       float64
	Longitude      float64
	HasCoordinates bool

	AccuracyRadius uint16
	HasRadius      bool
}

// Both adapters yield a zero record instead of an error for addresses
// their database knows nothing about.
func (r *Record) empty() bool {
	return r.CountryName == "" &&
		r.CountryISO == "" &&
		r.RegionName == "" &&
		r.CityName == "" &&
		!r.HasCoordinates &&
		!r.HasRadius
}

// Reader is a handle to an opened geolocation database.
type Reader interface {
	Lookup(address string) (*Record, error)
	Close() error
}

// Open opens the database at the given path with the adapter for the
// given format.
func Open(format, path string) (Reader, error) {
	switch format {
	case FormatMaxMind:
		return OpenMaxMind(path)
	case FormatIP2Location:
		return OpenIP2Location(path)
	}

	return nil, errors.Errorf("Unknown database format %s", format)
}
