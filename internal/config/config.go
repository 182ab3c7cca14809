// Package config holds the settings of the fsum command.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mode selects how non-finite input values are treated.
type Mode string

const (
	// ModeChecked rejects NaN and infinite inputs.
	ModeChecked Mode = "checked"
	// ModeIEEE propagates NaN and infinities the way IEEE 754 addition does.
	ModeIEEE Mode = "ieee"
	// ModeCore passes values straight to the summation core. Non-finite
	// inputs give unspecified results.
	ModeCore Mode = "core"
)

// Format selects how the result is printed.
type Format string

const (
	// FormatShortest prints the shortest decimal that round-trips.
	FormatShortest Format = "g"
	// FormatExponent prints the shortest round-tripping decimal in exponent form.
	FormatExponent Format = "e"
	// FormatHex prints an exact hexadecimal float.
	FormatHex Format = "x"
)

// Config is the file form of the command settings. Empty fields keep their
// defaults.
type Config struct {
	Mode     Mode   `yaml:"mode"`
	Format   Format `yaml:"format"`
	LogLevel string `yaml:"logLevel"`
	Naive    bool   `yaml:"naive"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		Mode:     ModeChecked,
		Format:   FormatShortest,
		LogLevel: "info",
	}
}

var logLevels = []string{"trace", "debug", "info", "warning", "error", "panic", "fatal"}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	switch c.Mode {
	case ModeChecked, ModeIEEE, ModeCore:
	default:
		errs = append(errs, fmt.Errorf("mode must be one of checked, ieee and core but got %q", c.Mode))
	}

	switch c.Format {
	case FormatShortest, FormatExponent, FormatHex:
	default:
		errs = append(errs, fmt.Errorf("format must be one of g, e and x but got %q", c.Format))
	}

	if !isLogLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("logLevel must be case-insensitive equal to one of %s but got %q",
			strings.Join(logLevels, ", "), c.LogLevel))
	}

	return errors.Join(errs...)
}

func isLogLevel(s string) bool {
	for _, l := range logLevels {
		if strings.EqualFold(s, l) {
			return true
		}
	}

	return false
}

// Load decodes YAML from r over the defaults and validates the result.
func Load(r io.Reader) (*Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error decoding YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromYAMLFile loads configuration from a YAML file.
func LoadFromYAMLFile(file string) (*Config, error) {
	fd, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	cfg, err := Load(fd)
	if err != nil {
		return nil, fmt.Errorf("error loading %#v: %w", file, err)
	}

	return cfg, nil
}
