// Package config reads the optional TOML file with per-user defaults.
// Command line flags always win over config values.
package config

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/juju/errors"
)

var VALID_FORMATS = map[string]bool{
	"maxmind":     true,
	"ip2location": true,
}

// Config holds run defaults: the database path and format, the size of
// the lookup cache (0 disables caching) and addresses to always
// exclude (merged with --filter).
type Config struct {
	Database       string   `toml:"database"`
	DatabaseFormat string   `toml:"database_format"`
	CacheSize      int      `toml:"cache_size"`
	Filter         []string `toml:"filter"`
}

func Parse(file io.Reader) (*Config, error) {
	conf := &Config{}

	buf, err := ioutil.ReadAll(file)
	if err != nil {
		return nil, errors.Annotate(err, "Cannot read config file")
	}

	if _, err := toml.Decode(string(buf), conf); err != nil {
		return nil, errors.Annotate(err, "Cannot parse config file")
	}

	if err = validate(conf); err != nil {
		return nil, errors.Annotate(err, "Invalid value")
	}

	return conf, nil
}

func ParseFile(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Annotatef(err, "Cannot open config file %s", path)
	}
	defer file.Close()

	return Parse(file)
}

func validate(conf *Config) error {
	if conf.DatabaseFormat != "" {
		if _, ok := VALID_FORMATS[conf.DatabaseFormat]; !ok {
			return errors.Errorf("Unknown database format %s", conf.DatabaseFormat)
		}
	}

	if conf.CacheSize < 0 {
		return errors.Errorf("Incorrect cache size %d", conf.CacheSize)
	}

	return nil
}
