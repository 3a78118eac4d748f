// Package config loads Spectra's batch/interactive driver configuration
// from a TOML file, the way internal/tqw loads TunaQuest's world data from
// TOML-based TQW files: a struct with `toml` tags decoded straight off disk.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// ErrInvalidOutputWidth is returned by Validate when OutputWidth is not
// positive.
var ErrInvalidOutputWidth = errors.New("output width must be greater than zero")

// Config holds every setting spectra-batch needs beyond its command-line
// flags. KeySeparator is checked by Validate, but spectra-batch splits
// strokes on keys.StrokeSep and does not read this field.
type Config struct {
	RuleLibraryFile string `toml:"rule_library_file"`
	IndexCacheFile  string `toml:"index_cache_file"`
	KeySeparator    string `toml:"key_separator"`
	UnorderedKeys   string `toml:"unordered_keys"`
	OutputWidth     int    `toml:"output_width"`
}

// Default returns the configuration spectra-batch falls back to when no
// config file is given, or a given file omits a setting.
func Default() Config {
	return Config{
		RuleLibraryFile: "rules.json",
		IndexCacheFile:  "index.db",
		KeySeparator:    "/",
		UnorderedKeys:   "*",
		OutputWidth:     80,
	}
}

// Load reads a TOML config file at path, layering its settings over
// Default(): a field the file doesn't mention keeps its default value.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate reports whether cfg has a usable set of values.
func (c Config) Validate() error {
	if c.OutputWidth <= 0 {
		return ErrInvalidOutputWidth
	}
	if c.KeySeparator == "" {
		return errors.New("key separator must not be empty")
	}
	return nil
}
