// Geolocate-ips resolves IP addresses against a geolocation database
// and prints an aggregated report.
//
// Idea is simple: you have a pile of IP addresses, say a log file full
// of them, and you want to know where they come from. Feed the file to
// this tool and it looks every address up in a local GeoLite2-City (or
// IP2Location) database, filters and groups the results and prints a
// plain text report.
//
// Tool itself is organized into a few logical parts:
//
// Geodb
//
// geodb wraps the binary database readers behind a single Reader
// interface. Adapters exist for MaxMind GeoLite2 and IP2Location BIN
// databases, plus an LRU-caching wrapper for inputs which repeat
// addresses.
//
// Iplist
//
// iplist turns the input source (a literal address or a text file)
// into the ordered list of candidate addresses to look up.
//
// Report
//
// report is the aggregation core: exclusion and search filters,
// grouping by address/country/state/city, sorting and rendering.
//
// A main package wires these together behind a CLI.
package main
