package geodb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenUnknownFormat(t *testing.T) {
	_, err := Open("qqq", "/tmp/whatever.mmdb")
	assert.NotNil(t, err)
}

func TestOpenMaxMindMissingFile(t *testing.T) {
	_, err := Open(FormatMaxMind, filepath.Join(t.TempDir(), "nope.mmdb"))
	assert.NotNil(t, err)
}

func TestOpenIP2LocationMissingFile(t *testing.T) {
	_, err := Open(FormatIP2Location, filepath.Join(t.TempDir(), "nope.bin"))
	assert.NotNil(t, err)
}

func TestIP2LocationValue(t *testing.T) {
	assert.Equal(t, "", ip2locationValue("-"))
	assert.Equal(t, "", ip2locationValue("Invalid database file."))
	assert.Equal(t, "", ip2locationValue(
		"This parameter is unavailable for selected data file. Please upgrade the data file."))
	assert.Equal(t, "London", ip2locationValue("London"))
}

func TestRecordEmpty(t *testing.T) {
	assert.True(t, (&Record{}).empty())
	assert.False(t, (&Record{CountryISO: "US"}).empty())
	assert.False(t, (&Record{HasRadius: true, AccuracyRadius: 10}).empty())
}
