// Package iplist resolves the input source of a run into an ordered
// list of candidate IP addresses.
package iplist

import (
	"io/ioutil"
	"os"
	"regexp"

	"github.com/juju/errors"
)

// Syntactic pre-filter only: octets above 255 pass here and are
// rejected by the lookup step instead.
var addressPattern = regexp.MustCompile(`(\d{1,3}\.){3}\d{1,3}`)

// Extract scans text for IPv4-shaped substrings in order of
// appearance. A limit below 1 means unbounded, otherwise only the
// first limit matches are returned.
func Extract(text string, limit int) []string {
	if limit < 1 {
		limit = -1
	}

	return addressPattern.FindAllString(text, limit)
}

// FromFile reads the file at path and extracts candidate addresses
// from it. A missing, unreadable or empty file is an error.
func FromFile(path string, limit int) ([]string, error) {
	stat, err := os.Stat(path)
	if err != nil || stat.IsDir() {
		return nil, errors.Errorf("file path is invalid or not found")
	}

	if stat.Size() == 0 {
		return nil, errors.Errorf("file is empty")
	}

	content, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Annotatef(err, "Cannot read file %s", path)
	}

	return Extract(string(content), limit), nil
}
