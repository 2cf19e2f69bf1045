package main

import (
	"fmt"
	"os"
	"regexp"

	log "github.com/sirupsen/logrus"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/JordanLinden/geolocate-ips/config"
	"github.com/JordanLinden/geolocate-ips/geodb"
	"github.com/JordanLinden/geolocate-ips/iplist"
	"github.com/JordanLinden/geolocate-ips/report"
)

const defaultDatabasePath = "/var/lib/GeoIP/GeoLite2-City.mmdb"

var (
	app = kingpin.New(
		"geolocate-ips",
		"Geolocate IP addresses with MaxMind's GeoLite2-City database.")

	singleIP = app.Flag("ip", "A single ip address to search for.").
			String()
	fromFile = app.Flag("file", "Path to a text file containing multiple ip addresses.").
			String()
	dbPath = app.Flag("db", "Path to the geolocation binary database. Defaults to "+defaultDatabasePath+".").
		String()
	dbFormat = app.Flag("db-format", "Geolocation database format.").
			Enum(geodb.FormatMaxMind, geodb.FormatIP2Location)
	groupBy = app.Flag("group", "Record attribute to group by.").
		Default(report.GroupByAddress).
		Enum(report.GroupByAddress, report.GroupByCountry, report.GroupByRegion, report.GroupByCity)
	search = app.Flag("search", "Regular expression to search for, returns only matching records.").
		String()
	filtered = app.Flag("filter", "Ip address to exclude from results. Can be given multiple times.").
			Strings()
	limit = app.Flag("limit", "Maximum number of ip addresses to process.").
		Default("0").
		Int()
	showMissing = app.Flag("show-missing", "Display ip addresses not found in the records.").
			Bool()
	configFile = app.Flag("config", "Path to a TOML file with default settings.").
			String()
	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Bool()
)

func init() {
	app.Version("1.0")
	log.SetFormatter(&log.TextFormatter{})
	log.SetLevel(log.WarnLevel)
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	if (*singleIP == "") == (*fromFile == "") {
		app.FatalUsage("exactly one of --ip or --file is required")
	}

	conf := &config.Config{}
	if *configFile != "" {
		parsed, err := config.ParseFile(*configFile)
		if err != nil {
			app.FatalUsage("%s", err.Error())
		}
		conf = parsed
	}

	var addresses []string
	if *singleIP != "" {
		addresses = []string{*singleIP}
	} else {
		list, err := iplist.FromFile(*fromFile, *limit)
		if err != nil {
			app.FatalUsage("%s", err.Error())
		}
		addresses = list
	}

	var searchPattern *regexp.Regexp
	if *search != "" {
		pattern, err := regexp.Compile("(?i)" + *search)
		if err != nil {
			app.FatalUsage("incorrect search pattern: %s", err.Error())
		}
		searchPattern = pattern
	}

	os.Exit(run(conf, addresses, searchPattern))
}

// run owns the reader so that it is closed on every exit path; main
// turns the returned code into the process exit status afterwards.
func run(conf *config.Config, addresses []string, searchPattern *regexp.Regexp) int {
	path := *dbPath
	if path == "" {
		path = conf.Database
	}
	if path == "" {
		path = defaultDatabasePath
	}

	format := *dbFormat
	if format == "" {
		format = conf.DatabaseFormat
	}
	if format == "" {
		format = geodb.FormatMaxMind
	}

	reader, err := geodb.Open(format, path)
	if err != nil {
		fmt.Println("ERROR:", err)
		return 2
	}
	defer reader.Close()

	if conf.CacheSize > 0 {
		cached, err := geodb.NewCached(reader, conf.CacheSize)
		if err != nil {
			fmt.Println("ERROR:", err)
			return 2
		}
		reader = cached
	}

	rep, err := report.Build(reader, addresses, report.Options{
		GroupBy: *groupBy,
		Search:  searchPattern,
		Exclude: append(conf.Filter, *filtered...),
	})
	if err != nil {
		fmt.Println("ERROR:", err)
		return 2
	}

	rep.Render(os.Stdout, *showMissing)

	return 0
}
