package geodb

import (
	"net"
	"os"
	"strings"

	ip2location "github.com/ip2location/ip2location-go"

	"github.com/juju/errors"
)

// The ip2location package keeps a single database handle in package
// state, so only one reader can be open at a time. Fine for this tool:
// the database is opened once per run.
type ip2locationReader struct{}

// OpenIP2Location opens an IP2Location BIN city database.
func OpenIP2Location(path string) (Reader, error) {
	// ip2location.Open does not report failures, so check the path
	// ourselves to keep database errors fatal.
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Annotate(err, "Cannot open database")
	}

	ip2location.Open(path)

	return &ip2locationReader{}, nil
}

func (i2l *ip2locationReader) Lookup(address string) (*Record, error) {
	if net.ParseIP(address) == nil {
		return nil, ErrNotFound
	}

	all := ip2location.Get_all(address)

	record := &Record{
		CountryName: ip2locationValue(all.Country_long),
		CountryISO:  ip2locationValue(all.Country_short),
		RegionName:  ip2locationValue(all.Region),
		CityName:    ip2locationValue(all.City),
	}

	if all.Latitude != 0 && all.Longitude != 0 {
		record.Latitude = float64(all.Latitude)
		record.Longitude = float64(all.Longitude)
		record.HasCoordinates = true
	}

	if record.empty() {
		return nil, ErrNotFound
	}

	return record, nil
}

func (i2l *ip2locationReader) Close() error {
	ip2location.Close()
	return nil
}

// Missing attributes come back as sentinel strings, not as errors.
func ip2locationValue(value string) string {
	if value == "-" ||
		strings.EqualFold(value, "Invalid database file.") ||
		strings.Contains(value, "This parameter is unavailable") {
		return ""
	}

	return value
}
