package geodb

import (
	"net"

	maxminddb "github.com/oschwald/geoip2-golang"
	log "github.com/sirupsen/logrus"

	"github.com/juju/errors"
)

type maxMindReader struct {
	db *maxminddb.Reader
}

// OpenMaxMind opens a MaxMind GeoLite2/GeoIP2 City database.
func OpenMaxMind(path string) (Reader, error) {
	db, err := maxminddb.Open(path)
	if err != nil {
		return nil, errors.Annotate(err, "Cannot open database")
	}

	return &maxMindReader{db: db}, nil
}

func (mm *maxMindReader) Lookup(address string) (*Record, error) {
	ip := net.ParseIP(address)
	if ip == nil {
		return nil, ErrNotFound
	}

	city, err := mm.db.City(ip)
	if err != nil {
		return nil, errors.Annotatef(err, "Cannot read record for %s", address)
	}

	record := &Record{
		CountryName: city.Country.Names["en"],
		CountryISO:  city.Country.IsoCode,
		CityName:    city.City.Names["en"],
	}

	if n := len(city.Subdivisions); n > 0 {
		// the most specific subdivision is the last one
		record.RegionName = city.Subdivisions[n-1].Names["en"]
	}

	if city.Location.Latitude != 0 && city.Location.Longitude != 0 {
		record.Latitude = city.Location.Latitude
		record.Longitude = city.Location.Longitude
		record.HasCoordinates = true
	}

	if city.Location.AccuracyRadius != 0 {
		record.AccuracyRadius = city.Location.AccuracyRadius
		record.HasRadius = true
	}

	if record.empty() {
		log.WithFields(log.Fields{
			"ip": address,
		}).Debug("Cannot resolve ip.")

		return nil, ErrNotFound
	}

	return record, nil
}

func (mm *maxMindReader) Close() error {
	return mm.db.Close()
}
