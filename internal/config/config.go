// Package config loads CLI defaults from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds the settings the CLI reads from the environment.
type Config struct {
	LogLevel      string `env:"SHEETS_LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"SHEETS_LOG_FORMAT" envDefault:"text"`
	LogFile       string `env:"SHEETS_LOG_FILE"`
	LogMaxSize    int    `env:"SHEETS_LOG_MAX_SIZE" envDefault:"50"`
	LogMaxBackups int    `env:"SHEETS_LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAge     int    `env:"SHEETS_LOG_MAX_AGE" envDefault:"28"`
	CSVDelimiter  string `env:"SHEETS_CSV_DELIMITER" envDefault:","`
	CSVEncoding   string `env:"SHEETS_CSV_ENCODING"`
}

// Load reads the configuration from the environment. Variables in envfile,
// when it exists, override the environment.
func Load(envfile string) (Config, error) {
	if envfile != "" {
		if _, err := os.Stat(envfile); err == nil {
			if err := godotenv.Overload(envfile); err != nil {
				return Config{}, fmt.Errorf("config: load %s: %w", envfile, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if _, err := cfg.Delimiter(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Delimiter returns the csv delimiter as a rune. "\t" and "tab" mean a tab.
func (c Config) Delimiter() (rune, error) {
	switch c.CSVDelimiter {
	case "", ",":
		return ',', nil
	case `\t`, "tab":
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(c.CSVDelimiter)
	if r == utf8.RuneError || size != len(c.CSVDelimiter) {
		return 0, fmt.Errorf("config: delimiter %q is not a single character", c.CSVDelimiter)
	}
	return r, nil
}
