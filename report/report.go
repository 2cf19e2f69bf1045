// Package report aggregates geolocation lookup results into the final
// textual report: it applies the exclusion and search filters, groups
// surviving records by the configured key, sorts the groups and
// renders them.
package report

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/JordanLinden/geolocate-ips/geodb"

	"github.com/juju/errors"
)

// Record attributes results can be grouped by.
const (
	GroupByAddress = "ip_address"
	GroupByCountry = "country"
	GroupByRegion  = "state/region"
	GroupByCity    = "city"
)

const (
	unknownName = "Unknown"
	nullValue   = "Null"
)

// Options configure a single aggregation run.
type Options struct {
	// GroupBy is one of the GroupBy* constants.
	GroupBy string

	// Search keeps only records whose country/state/city/address
	// matches. Nil keeps everything.
	Search *regexp.Regexp

	// Exclude lists addresses to skip entirely. Excluded addresses
	// never reach the search filter or the unresolved list.
	Exclude []string
}

// group is one report entry: a key with its accumulated display lines,
// in insertion order.
type group struct {
	key   string
	lines []string
}

// Report holds the aggregated results of one run.
type Report struct {
	groupBy    string
	groups     []*group
	index      map[string]*group
	unresolved []string
}

// Build looks up every address with the given reader and aggregates
// the results. Per-address failures land in the unresolved list; any
// other reader error aborts the run.
func Build(reader geodb.Reader, addresses []string, opts Options) (*Report, error) {
	excluded := make(map[string]struct{}, len(opts.Exclude))
	for _, address := range opts.Exclude {
		excluded[address] = struct{}{}
	}

	rep := &Report{
		groupBy: opts.GroupBy,
		index:   make(map[string]*group),
	}

	for _, address := range addresses {
		if _, ok := excluded[address]; ok {
			log.WithFields(log.Fields{
				"ip": address,
			}).Debug("Address is excluded.")

			continue
		}

		record, err := reader.Lookup(address)
		if err != nil {
			if errors.Cause(err) == geodb.ErrNotFound {
				log.WithFields(log.Fields{
					"ip": address,
				}).Debug("Cannot resolve ip.")

				rep.unresolved = append(rep.unresolved, address)

				continue
			}

			return nil, errors.Annotatef(err, "Cannot look up %s", address)
		}

		rep.add(address, record, opts.Search)
	}

	return rep, nil
}

// Unresolved returns the addresses no record was found for, in input
// order.
func (r *Report) Unresolved() []string {
	return r.unresolved
}

// Groups returns the number of report entries.
func (r *Report) Groups() int {
	return len(r.groups)
}

func (r *Report) add(address string, record *geodb.Record, search *regexp.Regexp) {
	country := displayName(record.CountryName)
	state := displayName(record.RegionName)
	city := displayName(record.CityName)

	iso := ""
	if record.CountryISO != "" {
		iso = " (" + record.CountryISO + ")"
	}
	countryFull := country + iso

	if search != nil &&
		!search.MatchString(countryFull) &&
		!search.MatchString(state) &&
		!search.MatchString(city) &&
		!search.MatchString(address) {
		return
	}

	switch r.groupBy {
	case GroupByCountry:
		r.group(countryFull).append(address)
	case GroupByRegion:
		// the ISO suffix is the country code, not a region code;
		// kept that way to stay compatible with existing reports
		r.group(state + iso).append(address)
	case GroupByCity:
		r.group(city + iso).append(address)
	default:
		r.group(address).append(detailBlock(record, countryFull, state, city)...)
	}
}

func (r *Report) group(key string) *group {
	if got, ok := r.index[key]; ok {
		return got
	}

	created := &group{key: key}
	r.index[key] = created
	r.groups = append(r.groups, created)

	return created
}

func (g *group) append(lines ...string) {
	g.lines = append(g.lines, lines...)
}

// detailBlock is the fixed 5-line value accumulated per contributing
// address when grouping by ip_address.
func detailBlock(record *geodb.Record, countryFull, state, city string) []string {
	mapsURL := nullValue
	if record.HasCoordinates {
		mapsURL = fmt.Sprintf(
			"https://maps.google.com/maps?q=%03.9f,%03.9f&z=15",
			record.Latitude, record.Longitude)
	}

	radius := nullValue
	if record.HasRadius {
		radius = strconv.Itoa(int(record.AccuracyRadius))
	}

	return []string{
		"Maps URL:   " + mapsURL,
		"Radius(km): " + radius,
		"Country:    " + countryFull,
		"State:      " + state,
		"City:       " + city,
	}
}

func displayName(name string) string {
	if name == "" {
		return unknownName
	}

	return name
}

// sorted returns the groups in render order: descending by group size
// in attribute modes, descending by the third line of the detail block
// (the country line) in address mode. The sort is stable, ties keep
// insertion order.
func (r *Report) sorted() []*group {
	groups := make([]*group, len(r.groups))
	copy(groups, r.groups)

	if r.groupBy == GroupByAddress {
		sort.SliceStable(groups, func(i, j int) bool {
			return groups[i].lines[2] > groups[j].lines[2]
		})
	} else {
		sort.SliceStable(groups, func(i, j int) bool {
			return len(groups[i].lines) > len(groups[j].lines)
		})
	}

	return groups
}

// Render writes the report to w. Every group key is followed by its
// lines indented 4 spaces; an empty report prints a placeholder
// instead. With showMissing, unresolved addresses are listed at the
// end when there are any.
func (r *Report) Render(w io.Writer, showMissing bool) {
	if len(r.groups) == 0 {
		fmt.Fprintln(w, "No records found")
	} else {
		for _, g := range r.sorted() {
			fmt.Fprintf(w, "\n%s\n", g.key)
			for _, line := range g.lines {
				fmt.Fprintf(w, "    %s\n", line)
			}
		}
	}

	if showMissing && len(r.unresolved) > 0 {
		fmt.Fprintln(w, "\nIP addresses not found:")
		for _, address := range r.unresolved {
			fmt.Fprintf(w, "    %s\n", address)
		}
	}
}
