// Package config loads todosort settings from the environment and optional
// TOML or dotenv files.
package config

import (
	"fmt"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigdotenv"
	"github.com/cristalhq/aconfig/aconfigtoml"
	"golang.org/x/text/language"

	"github.com/chris/todosort/internal/strategy"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "TODOSORT"

type Config struct {
	Sort     string    `env:"SORT" toml:"sort" default:"titleAsc" usage:"Initial sort key"`
	Locale   string    `env:"LOCALE" toml:"locale" default:"ja" usage:"Collation locale for titles (BCP 47)"`
	TimeZone string    `env:"TIME_ZONE" toml:"time_zone" usage:"IANA time zone for timestamps (default: local)"`
	Log      LogConfig `env:"LOG" toml:"log"`
}

// Load reads configuration from the environment and, when file is not empty,
// from a .toml or .env file. A missing file is not an error.
func Load(file string) (*Config, error) {
	cfg := new(Config)

	var files []string
	if file != "" {
		files = []string{file}
	}

	loader := aconfig.LoaderFor(cfg, aconfig.Config{
		SkipFlags:          true,
		EnvPrefix:          EnvPrefix,
		AllowUnknownFields: false,
		AllowUnknownEnvs:   true,
		DontGenerateTags:   false,
		FailOnFileNotFound: false,
		Files:              files,
		FileDecoders: map[string]aconfig.FileDecoder{
			".toml": aconfigtoml.New(),
			".env":  aconfigdotenv.New(),
		},
	})

	if err := loader.Load(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if _, err := cfg.SortKey(); err != nil {
		return fmt.Errorf("invalid sort: %w", err)
	}
	if _, err := cfg.LocaleTag(); err != nil {
		return err
	}
	if _, err := cfg.Location(); err != nil {
		return err
	}
	if _, err := cfg.Log.level(); err != nil {
		return err
	}
	return nil
}

// SortKey returns the configured initial sort key
func (cfg *Config) SortKey() (strategy.Key, error) {
	return strategy.ParseKey(cfg.Sort)
}

// LocaleTag returns the configured collation locale
func (cfg *Config) LocaleTag() (language.Tag, error) {
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", cfg.Locale, err)
	}
	return tag, nil
}

// Location returns the configured time zone, or time.Local when unset
func (cfg *Config) Location() (*time.Location, error) {
	if cfg.TimeZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", cfg.TimeZone, err)
	}
	return loc, nil
}
